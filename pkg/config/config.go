package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const EnvPrefix = "douceur"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

type Config struct {
	App      AppConfig
	Store    StoreConfig
	Checkout CheckoutConfig
	Reset    ResetConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"DOUCEUR_APP_ENV" default:"dev"`
	Port         string `envconfig:"DOUCEUR_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"DOUCEUR_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"DOUCEUR_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// StoreConfig locates the embedded key-value database that stands in for
// the browser's local storage.
type StoreConfig struct {
	Path string `envconfig:"DOUCEUR_STORE_PATH" default:"douceur.db"`
}

// CheckoutConfig carries the simulated confirmation timings. The delays are
// illustrative stand-ins for a real payment call and have no timeout or
// retry policy.
type CheckoutConfig struct {
	ConfirmDelay        time.Duration `envconfig:"DOUCEUR_CHECKOUT_CONFIRM_DELAY" default:"1500ms"`
	SuccessDisplayDelay time.Duration `envconfig:"DOUCEUR_CHECKOUT_SUCCESS_DISPLAY_DELAY" default:"2s"`
}

type ResetConfig struct {
	SendDelay time.Duration `envconfig:"DOUCEUR_RESET_SEND_DELAY" default:"1s"`
}
