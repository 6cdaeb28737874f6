package config

import (
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_Config_EnvironmentOverrideWorksCorrect(t *testing.T) {
	override := Config{
		Server: ServerConfig{
			Port:        8080,
			MetricsPort: 9200,
		},
		Auth: AuthConfig{
			JWTSecret:              "overrideSecret",
			TokenTTL:               3 * time.Hour,
			BlockOwnerApplications: true,
		},
		DB: DBConfig{
			ConnectionString: "newConnectionString",
		},
		Logger: LoggerConfig{
			AppName:  "override-app",
			LogLevel: "DEBUG",
		},
	}
	os.Setenv("MODE", "test")

	os.Setenv("PORT", strconv.Itoa(override.Server.Port))
	os.Setenv("METRICS_PORT", strconv.Itoa(override.Server.MetricsPort))
	os.Setenv("JWT_SECRET", override.Auth.JWTSecret)
	os.Setenv("TOKEN_TTL", "3h")
	os.Setenv("BLOCK_OWNER_APPLICATIONS", "true")
	os.Setenv("DB_CONNECTION_STRING", override.DB.ConnectionString)
	os.Setenv("APP_NAME", override.Logger.AppName)
	os.Setenv("LOG_LEVEL", string(override.Logger.LogLevel))

	cfg := Get()

	assert.Equal(t, override.Server.Port, cfg.Server.Port)
	assert.Equal(t, override.Server.MetricsPort, cfg.Server.MetricsPort)
	assert.Equal(t, override.Auth.JWTSecret, cfg.Auth.JWTSecret)
	assert.Equal(t, override.Auth.TokenTTL, cfg.Auth.TokenTTL)
	assert.Equal(t, override.Auth.BlockOwnerApplications, cfg.Auth.BlockOwnerApplications)
	assert.Equal(t, override.DB.ConnectionString, cfg.DB.ConnectionString)
	assert.Equal(t, override.Logger.AppName, cfg.Logger.AppName)
	assert.Equal(t, override.Logger.LogLevel, cfg.Logger.LogLevel)
}
