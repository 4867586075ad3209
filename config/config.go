package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	sandboxBaseURL    = "https://connect.squareupsandbox.com"
	productionBaseURL = "https://connect.squareup.com"
)

type Config struct {
	Port          string
	Environment   string // "sandbox" or "production"
	AccessToken   string
	ApplicationID string
	SquareBaseURL string
	AllowedOrigin string
	WellKnownDir  string
}

// LoadConfig reads configuration from the environment. The Square access token
// for the selected environment is required; its absence is a startup failure.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	env := strings.ToLower(getEnv("SQUARE_ENVIRONMENT", "sandbox"))
	if env != "sandbox" && env != "production" {
		return nil, fmt.Errorf("invalid SQUARE_ENVIRONMENT %q: must be sandbox or production", env)
	}

	prefix := "SQUARE_" + strings.ToUpper(env)
	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		Environment:   env,
		AccessToken:   os.Getenv(prefix + "_ACCESS_TOKEN"),
		ApplicationID: os.Getenv(prefix + "_APPLICATION_ID"),
		SquareBaseURL: sandboxBaseURL,
		AllowedOrigin: getEnv("ALLOWED_ORIGIN", "http://localhost:3000"),
		WellKnownDir:  getEnv("WELL_KNOWN_DIR", "./.well-known"),
	}
	if env == "production" {
		cfg.SquareBaseURL = productionBaseURL
	}

	if cfg.AccessToken == "" {
		return nil, fmt.Errorf("missing required environment variable %s_ACCESS_TOKEN", prefix)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
