package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type BaserowTables struct {
	Users              int `mapstructure:"users"`
	Jobs               int `mapstructure:"jobs"`
	Candidates         int `mapstructure:"candidates"`
	WhatsappCandidates int `mapstructure:"whatsapp_candidates"`
	Schedules          int `mapstructure:"schedules"`
}

type BaserowConfig struct {
	BaseURL              string        `mapstructure:"base_url"`
	APIKey               string        `mapstructure:"api_key"`
	MaxRequestsPerSecond float32       `mapstructure:"max_requests_per_second"`
	Tables               BaserowTables `mapstructure:"tables"`
}

func (config BaserowConfig) validate() error {

	var missingFields []string

	if config.BaseURL == "" {
		missingFields = append(missingFields, "base_url")
	}

	if config.APIKey == "" {
		missingFields = append(missingFields, "api_key")
	}

	if config.Tables.Users == 0 {
		missingFields = append(missingFields, "tables.users")
	}

	if config.Tables.Jobs == 0 {
		missingFields = append(missingFields, "tables.jobs")
	}

	if config.Tables.Candidates == 0 {
		missingFields = append(missingFields, "tables.candidates")
	}

	if config.Tables.WhatsappCandidates == 0 {
		missingFields = append(missingFields, "tables.whatsapp_candidates")
	}

	if config.Tables.Schedules == 0 {
		missingFields = append(missingFields, "tables.schedules")
	}

	if len(missingFields) > 0 {
		return fmt.Errorf("missing required variables: %s", strings.Join(missingFields, ", "))
	}

	return nil
}

func (config BaserowConfig) bindEnvironmentVariables() error {
	var errs []error

	if err := viper.BindEnv("baserow.base_url", "BASEROW_BASE_URL"); err != nil {
		errs = append(errs, err)
	}

	if err := viper.BindEnv("baserow.api_key", "BASEROW_API_KEY"); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return createMultiError(errs)
	}

	return nil
}
