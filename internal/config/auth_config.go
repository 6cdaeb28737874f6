package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type AuthConfig struct {
	JWTSecret              string        `mapstructure:"jwt_secret"`
	TokenTTL               time.Duration `mapstructure:"token_ttl"`
	BlockOwnerApplications bool          `mapstructure:"block_owner_applications"`
}

func (config AuthConfig) validate() error {

	if config.JWTSecret == "" {
		return fmt.Errorf("missing variable: jwt secret")
	}

	if config.TokenTTL <= 0 {
		return fmt.Errorf("token ttl must be greater than zero")
	}

	return nil
}

func (config AuthConfig) bindEnvironmentVariables() error {
	var errs []error

	if err := viper.BindEnv("auth.jwt_secret", "JWT_SECRET"); err != nil {
		errs = append(errs, err)
	}

	if err := viper.BindEnv("auth.token_ttl", "TOKEN_TTL"); err != nil {
		errs = append(errs, err)
	}

	if err := viper.BindEnv("auth.block_owner_applications", "BLOCK_OWNER_APPLICATIONS"); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return createMultiError(errs)
	}

	return nil
}
