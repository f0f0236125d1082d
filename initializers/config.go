package initializers

import (
	"os"
	"path/filepath"
)

const (
	defaultAPIBaseURL = "http://localhost:8080"
	defaultPort       = "8080"
)

type Config struct {
	// APIBaseURL is the gateway origin all storefront requests go to.
	APIBaseURL string
	// SessionFile is where the logged-in identity is persisted between runs.
	SessionFile string
	// Port and JWTSecret are only read by the sandbox backend.
	Port      string
	JWTSecret string
}

func LoadConfig() Config {
	cfg := Config{
		APIBaseURL:  getEnv("SUPERMARKET_API_URL", defaultAPIBaseURL),
		SessionFile: os.Getenv("SUPERMARKET_SESSION_FILE"),
		Port:        getEnv("PORT", defaultPort),
		JWTSecret:   getEnv("JWT_SECRET", "dev-only-secret-change-me"),
	}

	if cfg.SessionFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			cfg.SessionFile = "session.json"
		} else {
			cfg.SessionFile = filepath.Join(home, ".supermarket", "session.json")
		}
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
