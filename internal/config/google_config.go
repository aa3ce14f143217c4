package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type GoogleConfig struct {
	ClientID     string `mapstructure:"client_id"`
	ClientSecret string `mapstructure:"client_secret"`
	RedirectURI  string `mapstructure:"redirect_uri"`
	TimeZone     string `mapstructure:"time_zone"`
}

func (config GoogleConfig) validate() error {

	var missingFields []string

	if config.ClientID == "" {
		missingFields = append(missingFields, "client_id")
	}

	if config.ClientSecret == "" {
		missingFields = append(missingFields, "client_secret")
	}

	if config.RedirectURI == "" {
		missingFields = append(missingFields, "redirect_uri")
	}

	if len(missingFields) > 0 {
		return fmt.Errorf("missing required variables: %s", strings.Join(missingFields, ", "))
	}

	return nil
}

func (config GoogleConfig) bindEnvironmentVariables() error {
	var errs []error

	if err := viper.BindEnv("google.client_id", "GOOGLE_CLIENT_ID"); err != nil {
		errs = append(errs, err)
	}

	if err := viper.BindEnv("google.client_secret", "GOOGLE_CLIENT_SECRET"); err != nil {
		errs = append(errs, err)
	}

	if err := viper.BindEnv("google.redirect_uri", "GOOGLE_REDIRECT_URI"); err != nil {
		errs = append(errs, err)
	}

	if err := viper.BindEnv("google.time_zone", "GOOGLE_TIME_ZONE"); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return createMultiError(errs)
	}

	return nil
}
