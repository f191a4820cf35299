package config

import (
	"errors"
	"io/fs"
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultDatabasePath is the default location of the SQLite database.
const DefaultDatabasePath = "./booktodo.db"

// DefaultDemoResetSchedule re-seeds the demo catalogue every 15 minutes.
const DefaultDemoResetSchedule = "*/15 * * * *"

type (
	Config struct {
		HTTP
		Global
		Database
		Demo
	}

	HTTP struct {
		Port    int32
		Host    string
		GinMode string // debug, release or test
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
	Database struct {
		Path        string
		LogLevel    string // silent, error, warn, info
		SeedOnEmpty bool   // Install the default catalogue when the table is empty
	}
	Demo struct {
		Enabled       bool   // Block write operations
		ResetSchedule string // Cron format, re-seeds the catalogue
	}
)

// envFiles are loaded in order; variables already set are never overridden.
var envFiles = []string{".env.local", ".env"}

func loadEnvFiles() {
	for _, f := range envFiles {
		err := godotenv.Load(f)
		if err == nil || errors.Is(err, fs.ErrNotExist) {
			continue
		}
		log.Printf("Ignoring env file %s: %v", f, err)
	}
}

func NewConfig() *Config {
	loadEnvFiles()
	return newConfig(viper.New())
}

func newConfig(v *viper.Viper) *Config {
	v.AutomaticEnv()
	v.SetDefault("port", 8188)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("gin_mode", "release")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("database_log_level", "warn")
	v.SetDefault("seed_on_empty", false)

	// Demo mode defaults
	v.SetDefault("demo_mode", false)
	v.SetDefault("demo_reset_schedule", DefaultDemoResetSchedule)

	return &Config{
		HTTP: HTTP{
			Port:    v.GetInt32("PORT"),
			Host:    v.GetString("HOST"),
			GinMode: v.GetString("GIN_MODE"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Database: Database{
			Path:        v.GetString("DATABASE_PATH"),
			LogLevel:    v.GetString("DATABASE_LOG_LEVEL"),
			SeedOnEmpty: v.GetBool("SEED_ON_EMPTY"),
		},
		Demo: Demo{
			Enabled:       v.GetBool("DEMO_MODE"),
			ResetSchedule: v.GetString("DEMO_RESET_SCHEDULE"),
		},
	}
}
