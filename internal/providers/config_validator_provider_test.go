package providers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"florbot/internal/structures"
)

func validTestConfig() *structures.Config {
	return &structures.Config{
		Bot: structures.BotConfig{
			SessionPath: "/var/lib/florbot/session",
			Prefix:      ".",
		},
		WebServer: structures.Server{
			Host: "127.0.0.1",
			Port: 8080,
		},
		Persistence: structures.Persistence{
			FilePath: "/var/lib/florbot/economia.json",
		},
		Logger: structures.LoggerConfig{
			Level: "info",
			Mode:  0644,
			Dir:   "/var/log/florbot",
		},
	}
}

func TestCnfValidator_ValidConfig(t *testing.T) {
	v := NewCnfValidator(validTestConfig())
	assert.NoError(t, v.Validate())
}

func TestCnfValidator_MissingPersistencePath(t *testing.T) {
	conf := validTestConfig()
	conf.Persistence.FilePath = ""

	assert.Error(t, NewCnfValidator(conf).Validate())
}

func TestCnfValidator_RelativePersistencePath(t *testing.T) {
	conf := validTestConfig()
	conf.Persistence.FilePath = "economia.json"

	assert.Error(t, NewCnfValidator(conf).Validate())
}

func TestCnfValidator_BadLogLevel(t *testing.T) {
	conf := validTestConfig()
	conf.Logger.Level = "noisy"

	assert.Error(t, NewCnfValidator(conf).Validate())
}

func TestCnfValidator_MissingServerPort(t *testing.T) {
	conf := validTestConfig()
	conf.WebServer.Port = 0

	assert.Error(t, NewCnfValidator(conf).Validate())
}
