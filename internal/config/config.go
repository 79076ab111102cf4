package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"finprobe/internal/domain"
)

const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
	StoreSQLite   = "sqlite"
)

type Config struct {
	Env            string
	ListenAddr     string
	LogLevel       string
	Store          string
	DatabaseURL    string
	SQLitePath     string
	SessionTTL     time.Duration
	SweepInterval  time.Duration
	MaxUploadBytes int64
	MaxConns       int
	UploadRate     float64
	UploadBurst    int
	RulesFile      string
	Thresholds     domain.Thresholds
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Load reads the environment, optionally seeded from a .env file, and the
// rules file named by RULES_FILE.
func Load() (Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	cfg := Config{
		Env:            getenv("APP_ENV", "development"),
		ListenAddr:     getenv("LISTEN_ADDR", ":8080"),
		LogLevel:       getenv("LOG_LEVEL", "info"),
		Store:          getenv("STORE", StoreMemory),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		SQLitePath:     getenv("SQLITE_PATH", "./data/finprobe.db"),
		SessionTTL:     getenvDuration("SESSION_TTL", 2*time.Hour),
		SweepInterval:  getenvDuration("SWEEP_INTERVAL", time.Minute),
		MaxUploadBytes: int64(getenvInt("MAX_UPLOAD_BYTES", 10<<20)),
		MaxConns:       getenvInt("MAX_CONNS", 64),
		UploadRate:     getenvFloat("UPLOAD_RATE", 5),
		UploadBurst:    getenvInt("UPLOAD_BURST", 10),
		RulesFile:      os.Getenv("RULES_FILE"),
	}

	th, err := LoadThresholds(cfg.RulesFile)
	if err != nil {
		return cfg, err
	}
	cfg.Thresholds = th

	switch cfg.Store {
	case StoreMemory, StoreSQLite:
	case StorePostgres:
		if cfg.DatabaseURL == "" {
			return cfg, fmt.Errorf("STORE=postgres requires DATABASE_URL")
		}
	default:
		return cfg, fmt.Errorf("unknown STORE %q", cfg.Store)
	}
	return cfg, nil
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		var out int
		_, err := fmt.Sscanf(v, "%d", &out)
		if err == nil {
			return out
		}
	}
	return def
}

func getenvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		var out float64
		_, err := fmt.Sscanf(v, "%g", &out)
		if err == nil {
			return out
		}
	}
	return def
}

func getenvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
