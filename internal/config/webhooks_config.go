package config

import (
	"github.com/spf13/viper"
)

// Both endpoints are optional: without a schedule URL no automation is
// notified, without a screening URL résumé uploads are rejected.
type WebhooksConfig struct {
	ScheduleURL  string `mapstructure:"schedule_url"`
	ScreeningURL string `mapstructure:"screening_url"`
}

func (config WebhooksConfig) bindEnvironmentVariables() error {
	var errs []error

	if err := viper.BindEnv("webhooks.schedule_url", "SCHEDULE_WEBHOOK_URL"); err != nil {
		errs = append(errs, err)
	}

	if err := viper.BindEnv("webhooks.screening_url", "SCREENING_WEBHOOK_URL"); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return createMultiError(errs)
	}

	return nil
}
