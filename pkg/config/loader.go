package config

import (
	"fmt"
	"os"
	"strconv"
)

// Load reads the tracker service's configuration from the process
// environment. Callers are expected to have already loaded any .env file
// into the environment (see cmd/trackerd/main.go) via godotenv.
func Load() (*Config, error) {
	cfg := &Config{
		Origin:            getEnvOrDefault("ORIGIN", "http://localhost:8080"),
		PostingDomain:     os.Getenv("POSTING_DOMAIN"),
		NotifyFrom:        getEnvOrDefault("NOTIFY_FROM", "tracker@localhost"),
		SigningKey:        os.Getenv("SIGNING_KEY"),
		WebhooksBrokerURL: os.Getenv("WEBHOOKS_BROKER_URL"),
		OAuthClientID:     os.Getenv("OAUTH_CLIENT_ID"),
		OAuthClientSecret: os.Getenv("OAUTH_CLIENT_SECRET"),
		HTTPPort:          getEnvOrDefault("HTTP_PORT", "8080"),
		GinMode:           getEnvOrDefault("GIN_MODE", "debug"),
	}

	touch, err := parseBoolOrDefault("TOUCH_TRACKER_ON_ADMIN_EDIT", false)
	if err != nil {
		return nil, NewValidationError("TOUCH_TRACKER_ON_ADMIN_EDIT", err)
	}
	cfg.TouchTrackerOnAdminEdit = touch

	smtpPort, err := strconv.Atoi(getEnvOrDefault("SMTP_PORT", "587"))
	if err != nil {
		return nil, NewValidationError("SMTP_PORT", fmt.Errorf("%w: %v", ErrInvalidValue, err))
	}
	cfg.SMTP = SMTPConfig{
		Host:     os.Getenv("SMTP_HOST"),
		Port:     smtpPort,
		User:     os.Getenv("SMTP_USER"),
		Password: os.Getenv("SMTP_PASSWORD"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the loaded configuration is internally consistent
// and that anything required for the process to run safely is present.
func (c *Config) Validate() error {
	if c.Origin == "" {
		return NewValidationError("ORIGIN", ErrMissingRequiredField)
	}
	if c.NotifyFrom == "" {
		return NewValidationError("NOTIFY_FROM", ErrMissingRequiredField)
	}
	return nil
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func parseBoolOrDefault(key string, defaultVal bool) (bool, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	return strconv.ParseBool(val)
}
