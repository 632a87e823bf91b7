package cookie

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/cookiekit/pkg/config"
	"github.com/dmitrymomot/cookiekit/pkg/logger"
)

// Config holds accessor configuration. The attribute fields become the
// defaults used when Set or Remove get nil attributes; leaving them all
// empty keeps the "; path=/" fallback. LogLevel turns on text logging to
// stderr.
type Config struct {
	Path     string `env:"COOKIE_PATH" envDefault:""`
	Domain   string `env:"COOKIE_DOMAIN" envDefault:""`
	Expires  string `env:"COOKIE_EXPIRES" envDefault:""`
	Secure   bool   `env:"COOKIE_SECURE" envDefault:"false"`
	LogLevel string `env:"COOKIE_LOG_LEVEL" envDefault:""` // empty disables logging
}

// DefaultConfig returns default accessor configuration
func DefaultConfig() Config {
	return Config{}
}

// LoadConfig reads Config from the environment and the default .env file.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// NewFromConfig creates an Accessor from the provided Config.
// Only non-zero values from the config are applied.
func NewFromConfig(store Store, cfg Config, opts ...Option) (*Accessor, error) {
	if cfg.Expires != "" {
		if _, err := http.ParseTime(cfg.Expires); err != nil {
			return nil, errors.Join(ErrInvalidConfig, fmt.Errorf("COOKIE_EXPIRES %q: %w", cfg.Expires, err))
		}
	}

	configOpts := make([]Option, 0, 2)

	defaults := Attributes{
		Path:    cfg.Path,
		Domain:  cfg.Domain,
		Expires: cfg.Expires,
		Secure:  cfg.Secure,
	}
	if !defaults.IsZero() {
		configOpts = append(configOpts, WithDefaults(defaults))
	}

	if cfg.LogLevel != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
			return nil, errors.Join(ErrInvalidConfig, fmt.Errorf("COOKIE_LOG_LEVEL %q: %w", cfg.LogLevel, err))
		}
		configOpts = append(configOpts, WithLogger(logger.New(
			logger.WithTextFormatter(),
			logger.WithLevel(level),
			logger.WithAttr(logger.Component("cookie")),
		)))
	}

	// Append any additional options provided
	configOpts = append(configOpts, opts...)

	a := New(store, configOpts...)
	a.log.Debug("cookie accessor configured",
		logger.Store(a.store),
		slog.Bool("defaults", a.defaults != nil),
	)
	return a, nil
}
