package structures

import "time"

type CliFlags struct {
	ConfigPath string
	DebugMode  bool
}

type Server struct {
	Host string `yaml:"host" validate:"required"`
	Port int    `yaml:"port" validate:"required|uint|min:1"`
}

type Persistence struct {
	FilePath       string        `yaml:"filePath" validate:"required|unixPath"`
	BackupDir      string        `yaml:"backupDir"`
	BackupInterval time.Duration `yaml:"backupInterval"`
	BackupKeep     int           `yaml:"backupKeep"`
}

type LoggerConfig struct {
	Level string `yaml:"level" validate:"required|in:trace,debug,info,warn,error,fatal,panic"`
	Mode  uint32 `yaml:"mode" validate:"required|uint"`
	Dir   string `yaml:"dir" validate:"required|unixPath"`
}

type BotConfig struct {
	SessionPath string `yaml:"sessionPath" validate:"required|unixPath"`
	Prefix      string `yaml:"prefix"`
	OwnerNumber string `yaml:"ownerNumber"`
	CatalogPath string `yaml:"catalogPath"`
}

type AIConfig struct {
	APIKey string `yaml:"apiKey"`
	Model  string `yaml:"model"`
}

type CacheConfig struct {
	Enabled bool          `yaml:"enabled"`
	Size    int           `yaml:"size"`
	TTL     time.Duration `yaml:"ttl"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

type Config struct {
	AppName     string
	Debug       bool
	Path        string
	Bot         BotConfig     `yaml:"bot"`
	WebServer   Server        `yaml:"webServer"`
	Persistence Persistence   `yaml:"persistence"`
	Logger      LoggerConfig  `yaml:"logger"`
	Cache       CacheConfig   `yaml:"cache"`
	Metrics     MetricsConfig `yaml:"metrics"`
	AI          AIConfig      `yaml:"ai"`
}
