package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type ServerConfig struct {
	Port              int           `mapstructure:"port"`
	MetricsPort       int           `mapstructure:"metrics_port"`
	AllowedOrigins    []string      `mapstructure:"allowed_origins"`
	RequestTimeout    time.Duration `mapstructure:"request_timeout"`
	RequestsPerSecond float64       `mapstructure:"requests_per_second"`
	RequestsBurst     int           `mapstructure:"requests_burst"`
}

func (config ServerConfig) validate() error {

	if config.Port <= 0 {
		return fmt.Errorf("missing variable: server port")
	}

	if config.MetricsPort == config.Port {
		return fmt.Errorf("metrics port must differ from server port")
	}

	if config.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be greater than zero")
	}

	return nil
}

func (config ServerConfig) bindEnvironmentVariables() error {
	var errs []error

	if err := viper.BindEnv("server.port", "PORT"); err != nil {
		errs = append(errs, err)
	}

	if err := viper.BindEnv("server.metrics_port", "METRICS_PORT"); err != nil {
		errs = append(errs, err)
	}

	if err := viper.BindEnv("server.allowed_origins", "ALLOWED_ORIGINS"); err != nil {
		errs = append(errs, err)
	}

	if err := viper.BindEnv("server.request_timeout", "REQUEST_TIMEOUT"); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return createMultiError(errs)
	}

	return nil
}
