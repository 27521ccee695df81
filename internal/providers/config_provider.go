package providers

import (
	"fmt"
	"github.com/spf13/viper"
	"path/filepath"
	"strings"

	"florbot/internal/structures"
)

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	filename := filepath.Base(flags.ConfigPath)
	viper.AddConfigPath(filepath.Dir(flags.ConfigPath))
	viper.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	viper.SetConfigType("yaml")

	viper.BindEnv("logger.level", "FLORBOT_LOG_LEVEL")
	viper.BindEnv("bot.prefix", "FLORBOT_PREFIX")
	viper.BindEnv("bot.ownerNumber", "FLORBOT_OWNER_NUMBER")
	viper.BindEnv("persistence.backupInterval", "FLORBOT_BACKUP_INTERVAL")
	viper.BindEnv("cache.enabled", "FLORBOT_CACHE_ENABLED")
	viper.BindEnv("cache.size", "FLORBOT_CACHE_SIZE")
	viper.BindEnv("ai.apiKey", "FLORBOT_OPENAI_KEY")
	viper.BindEnv("ai.model", "FLORBOT_OPENAI_MODEL")

	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	err = viper.Unmarshal(&conf)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	cnfValidator := NewCnfValidator(&conf)
	err = cnfValidator.Validate()
	if err != nil {
		return nil, err
	}

	if conf.Bot.Prefix == "" {
		conf.Bot.Prefix = "."
	}
	if conf.AI.Model == "" {
		conf.AI.Model = "gpt-4o-mini"
	}

	conf.AppName = "FlorBot"
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	return &conf, nil
}
