// Package config loads application settings from environment variables into
// typed structs.
//
// Struct fields are described with github.com/caarlos0/env tags. Before the
// first parse, variables from a .env file (or the files given with
// WithEnvFiles) are loaded with github.com/joho/godotenv; variables already
// present in the process environment win over file values.
//
//	type AuthConfig struct {
//		BaseURL string        `env:"AUTH_API_URL" envDefault:"http://localhost:3000"`
//		Timeout time.Duration `env:"AUTH_API_TIMEOUT" envDefault:"10s"`
//	}
//
//	var cfg AuthConfig
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
// Each struct type is parsed once per prefix; later calls return the cached
// copy. Reset drops the cache, which is mostly useful in tests.
package config
