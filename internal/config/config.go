package config

import (
	"errors"
	"github.com/caarlos0/env/v11"
	"github.com/ilam072/pr-stats/internal/validator"
	"github.com/joho/godotenv"
	"io/fs"
)

type Config struct {
	GitHub GitHubConfig
	Log    LogConfig
}

type GitHubConfig struct {
	Token string `env:"GITHUB_TOKEN"`
}

type LogConfig struct {
	Level string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=trace debug info warn error"`
}

// Load reads .env when present, then the process environment.
func Load() (*Config, error) {
	cfg := &Config{}

	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	if err := validator.New().Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}

	return cfg
}
