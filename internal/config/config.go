package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// DefaultOpenWeatherBaseURL is the OpenWeatherMap current-weather API root
const DefaultOpenWeatherBaseURL = "https://api.openweathermap.org/data/2.5"

// Preference store backends
const (
	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

// Config holds application configuration
type Config struct {
	OpenWeatherAPIKey  string
	OpenWeatherBaseURL string
	PreferenceStore    string // "sqlite" | "postgres" | "memory"
	PreferenceDBPath   string // SQLite file (PreferenceStore=sqlite)
	DatabaseURL        string // Postgres DSN (PreferenceStore=postgres)
	Port               string
	Env                string
	LogLevel           string
	LogFormat          string // "auto" | "console" | "json"

	envFileLoaded bool
}

// Load reads configuration from the environment after loading any .env files.
// A missing .env file is not an error. Load does not log; call LogStartup
// once logging is configured.
func Load(envFiles ...string) *Config {
	loaded := godotenv.Load(envFiles...) == nil

	cfg := &Config{
		envFileLoaded:      loaded,
		OpenWeatherAPIKey:  strings.TrimSpace(getEnv("OPENWEATHER_API_KEY", "")),
		OpenWeatherBaseURL: strings.TrimRight(getEnv("OPENWEATHER_BASE_URL", DefaultOpenWeatherBaseURL), "/"),
		PreferenceStore:    strings.ToLower(getEnv("PREFERENCE_STORE", StoreSQLite)),
		PreferenceDBPath:   getEnv("PREFERENCE_DB_PATH", "./weathercard.db"),
		DatabaseURL:        getEnv("DATABASE_URL", ""),
		Port:               getEnv("PORT", "8080"),
		Env:                getEnv("GO_ENV", "development"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		LogFormat:          getEnv("LOG_FORMAT", "auto"),
	}

	return cfg
}

// LogStartup reports configuration problems through the configured logger
func (c *Config) LogStartup() {
	if !c.envFileLoaded {
		log.Debug().Msg("no .env file found, using system environment")
	}
	if c.OpenWeatherAPIKey == "" {
		log.Warn().Msg("OPENWEATHER_API_KEY is not set, every lookup will fail until it is configured")
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
