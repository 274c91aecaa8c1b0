package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	ServiceEnvironment string `envconfig:"SERVICE_ENVIRONMENT" default:"development"`
	ServiceAPIPort     string `envconfig:"SERVICE_API_PORT" default:"8080"`
	ServiceHost        string `envconfig:"SERVICE_HOST" default:"localhost:8080"`
	DefaultTimezone    string `envconfig:"DEFAULT_TIMEZONE" default:"Asia/Dhaka"`
	StreamFrameDelayMS int    `envconfig:"STREAM_FRAME_DELAY_MS" default:"250"`
	ValidateFinalPlan  bool   `envconfig:"VALIDATE_FINAL_PLAN" default:"true"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
