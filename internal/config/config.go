package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

const DefaultAddr = ":8080"

// Config holds process settings. The OpenAI key is never part of it: every
// submission brings its own.
type Config struct {
	Addr          string
	LogLevel      string
	OpenAIBaseURL string
	Lambda        bool
}

// Load reads the environment, first applying a .env file from the working
// directory when one exists.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	cfg := &Config{
		Addr:          getenvDefault("ADDR", DefaultAddr),
		LogLevel:      getenvDefault("LOG_LEVEL", "info"),
		OpenAIBaseURL: os.Getenv("OPENAI_BASE_URL"),
		Lambda:        os.Getenv("AWS_LAMBDA_RUNTIME_API") != "",
	}
	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
