package config

import (
	"log/slog"
	"os"

	"github.com/subosito/gotenv"
)

const envDir = "config/envs/"

// AppEnv returns APP_ENV, defaulting to dev.
func AppEnv() string {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	return env
}

// LoadEnv loads config/envs/.env.<env> into the process environment.
// Variables already present in the environment win.
func LoadEnv(env string) {
	envFile := envDir + ".env." + env
	if err := gotenv.Load(envFile); err != nil {
		slog.Warn("[Config] No .env file found, using OS environment",
			slog.String("file", envFile))
	}
}
