// Package config loads typed configuration from environment variables.
//
// It combines github.com/joho/godotenv, which reads .env files into the
// process environment, with github.com/caarlos0/env/v11, which parses the
// environment into structs using `env` and `envDefault` field tags.
//
// Each configuration type is parsed once and cached for the life of the
// process. ForceReloadConfig and ResetCache drop cached copies, which tests
// use after changing the environment.
//
//	type CookieConfig struct {
//	    Path   string `env:"COOKIE_PATH" envDefault:"/"`
//	    Secure bool   `env:"COOKIE_SECURE"`
//	}
//
//	config.MustLoadEnv(".env", ".env.local")
//
//	var cfg CookieConfig
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatal(err)
//	}
//
// Errors wrap ErrParsingConfig, ErrLoadingEnvFile or ErrNilPointer and can be
// checked with errors.Is.
package config
