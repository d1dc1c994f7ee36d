// Package config loads typed configuration from the environment.
//
// Structs describe their variables with caarlos0/env tags, the same tags every
// component Config in this module carries:
//
//	type Config struct {
//		Address string        `env:"ADDRESS" envDefault:":8080"`
//		Contact contact.Config
//		Resend  resend.Config  `envPrefix:""`
//	}
//
//	cfg, err := config.Load[Config]()
//
// Values from a local .env file are loaded first; variables already present in
// the process environment take precedence. A missing .env file is not an error.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrParse indicates the environment could not be decoded into the target struct.
var ErrParse = errors.New("config: failed to parse environment")

// Load reads the given .env files (".env" when none given) and parses the
// process environment into a new T.
func Load[T any](files ...string) (T, error) {
	var cfg T
	if err := loadDotenv(files...); err != nil {
		return cfg, err
	}
	if err := env.Parse(&cfg); err != nil {
		return cfg, errors.Join(ErrParse, err)
	}
	return cfg, nil
}

// Parse decodes the given variables into a new T, ignoring the process
// environment and .env files.
func Parse[T any](environ map[string]string) (T, error) {
	var cfg T
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return cfg, errors.Join(ErrParse, err)
	}
	return cfg, nil
}

func loadDotenv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("config: load %s: %w", f, err)
		}
	}
	return nil
}
