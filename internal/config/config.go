package config

import (
	"errors"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	Logger   LoggerConfig   `mapstructure:"logger"`
	Server   ServerConfig   `mapstructure:"server"`
	Baserow  BaserowConfig  `mapstructure:"baserow"`
	Google   GoogleConfig   `mapstructure:"google"`
	Webhooks WebhooksConfig `mapstructure:"webhooks"`
	Session  SessionConfig  `mapstructure:"session"`
	Cleaner  CleanerConfig  `mapstructure:"cleaner"`
}

var configFile = "./configs/config.yaml"

func Get() *Config {

	if value, _ := os.LookupEnv("CONFIG_PATH"); value != "" {
		configFile = value
	} else if value, _ := os.LookupEnv("MODE"); value == "test" {
		configFile = "../../configs/config.yaml"
	}

	config, err := loadConfig(configFile)
	if err != nil {
		log.Fatal(err)
	}

	return config
}

func loadConfig(file string) (*Config, error) {

	viper.SetConfigFile(file)
	viper.AutomaticEnv()

	viper.SetDefault("server.port", 3001)
	viper.SetDefault("google.time_zone", "America/Sao_Paulo")
	viper.SetDefault("session.ttl", "12h")

	err := bindEnvironmentVariables()
	if err != nil {
		return nil, err
	}

	if err := viper.ReadInConfig(); err != nil {
		log.Fatalf("Error reading config file, %s", err)
	}

	config := Config{}
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	err = config.validate()
	if err != nil {
		return nil, err
	}

	return &config, nil
}

func bindEnvironmentVariables() error {
	var errs []error

	server, baserow, google := ServerConfig{}, BaserowConfig{}, GoogleConfig{}
	webhooks, logger := WebhooksConfig{}, LoggerConfig{}

	if err := server.bindEnvironmentVariables(); err != nil {
		errs = append(errs, fmt.Errorf("ServerConfig: %w", err))
	}

	if err := baserow.bindEnvironmentVariables(); err != nil {
		errs = append(errs, fmt.Errorf("BaserowConfig: %w", err))
	}

	if err := google.bindEnvironmentVariables(); err != nil {
		errs = append(errs, fmt.Errorf("GoogleConfig: %w", err))
	}

	if err := webhooks.bindEnvironmentVariables(); err != nil {
		errs = append(errs, fmt.Errorf("WebhooksConfig: %w", err))
	}

	if err := logger.bindEnvironmentVariables(); err != nil {
		errs = append(errs, fmt.Errorf("LoggerConfig: %w", err))
	}

	if len(errs) > 0 {
		return createMultiError(errs)
	}

	return nil
}

func (config Config) validate() error {
	var errs []error

	if err := config.Baserow.validate(); err != nil {
		errs = append(errs, fmt.Errorf("BaserowConfig: %w", err))
	}

	if err := config.Google.validate(); err != nil {
		errs = append(errs, fmt.Errorf("GoogleConfig: %w", err))
	}

	if err := config.Logger.validate(); err != nil {
		errs = append(errs, fmt.Errorf("LoggerConfig: %w", err))
	}

	if len(errs) > 0 {
		return createMultiError(errs)
	}

	return nil
}

func createMultiError(errs []error) error {
	return fmt.Errorf("multiple errors occurred: %w", errors.Join(errs...))
}
