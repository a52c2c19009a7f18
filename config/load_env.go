package config

import (
	"log/slog"
	"os"

	"github.com/subosito/gotenv"
)

// AppEnv returns the current application environment, defaulting to "dev".
func AppEnv() string {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	return env
}

// LoadEnv loads config/envs/.env.<env> into the process environment.
// A missing file is fine; the OS environment is used as-is.
func LoadEnv(env string) {
	envFile := "config/envs/.env." + env
	if err := gotenv.Load(envFile); err != nil {
		slog.Warn("No .env file found, using OS environment",
			slog.String("env", env))
	}
}
