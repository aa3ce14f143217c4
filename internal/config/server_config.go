package config

import (
	"github.com/spf13/viper"
)

type ServerConfig struct {
	Port           int    `mapstructure:"port"`
	FrontendOrigin string `mapstructure:"frontend_origin"`
}

func (config ServerConfig) bindEnvironmentVariables() error {
	var errs []error

	if err := viper.BindEnv("server.port", "PORT"); err != nil {
		errs = append(errs, err)
	}

	if err := viper.BindEnv("server.frontend_origin", "FRONTEND_URL"); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return createMultiError(errs)
	}

	return nil
}
