package config

import (
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// DefaultBackendURL is used when the dashboard runs next to a local
// development backend and no explicit base URL is configured.
const DefaultBackendURL = "http://localhost:8080"

type Config struct {
	BackendBaseURL string        `validate:"required,url"`
	ServerPort     string        `validate:"required"`
	SessionKey     string        `validate:"required"`
	RequestTimeout time.Duration `validate:"required"`
	AuthGrace      time.Duration `validate:"min=0"`
}

func LoadConfig() (*Config, error) {
	config := &Config{
		BackendBaseURL: os.Getenv("BACKEND_BASE_URL"),
		ServerPort:     os.Getenv("SERVER_PORT"),
		SessionKey:     os.Getenv("SESSION_KEY"),
		RequestTimeout: 10 * time.Second,
		AuthGrace:      2 * time.Second,
	}

	if config.BackendBaseURL == "" {
		config.BackendBaseURL = DefaultBackendURL
	}

	if v := os.Getenv("REQUEST_TIMEOUT_SECONDS"); v != "" {
		seconds, err := strconv.Atoi(v)
		if err != nil {
			return nil, errors.Wrap(err, "invalid REQUEST_TIMEOUT_SECONDS")
		}
		config.RequestTimeout = time.Duration(seconds) * time.Second
	}

	if v := os.Getenv("AUTH_GRACE_SECONDS"); v != "" {
		seconds, err := strconv.Atoi(v)
		if err != nil {
			return nil, errors.Wrap(err, "invalid AUTH_GRACE_SECONDS")
		}
		config.AuthGrace = time.Duration(seconds) * time.Second
	}

	validate := validator.New()
	if err := validate.Struct(config); err != nil {
		return nil, errors.Wrap(err, "failed to validate config")
	}

	return config, nil
}
