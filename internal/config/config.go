// Package config provides application configuration through environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/allisson/go-env"
	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	// StoreProtocol is the scheme used to reach the document store ("http" or "https").
	StoreProtocol string
	// StoreHost is the document store host.
	StoreHost string
	// StorePort is the document store port.
	StorePort int
	// StoreUsername is the basic-auth username for the document store.
	StoreUsername string
	// StorePassword is the basic-auth password for the document store.
	StorePassword string
	// StoreTimeout is the transport-level timeout for store requests.
	StoreTimeout time.Duration

	// SubjectsDatabase is the database holding subject and limits documents.
	SubjectsDatabase string
	// SubjectsView is the design document carrying the identities view.
	SubjectsView string
	// EntitiesDatabase is the database holding platform entities (actions, triggers, rules).
	EntitiesDatabase string
	// ActivationsDatabase is the database holding activation records.
	ActivationsDatabase string

	// LogsDir is the directory holding per-component platform logs.
	LogsDir string

	// LogLevel is the logging level (e.g., "debug", "info", "warn", "error").
	LogLevel string
}

// Load loads configuration from environment variables and .env file.
func Load() *Config {
	// Try to load .env file recursively
	loadDotEnv()

	return &Config{
		// Document store connection
		StoreProtocol: env.GetString("STORE_PROTOCOL", "http"),
		StoreHost:     env.GetString("STORE_HOST", "localhost"),
		StorePort:     env.GetInt("STORE_PORT", 5984),
		StoreUsername: env.GetString("STORE_USERNAME", ""),
		StorePassword: env.GetString("STORE_PASSWORD", ""),
		StoreTimeout:  env.GetDuration("STORE_TIMEOUT_SECONDS", 30, time.Second),

		// Databases and views
		SubjectsDatabase:    env.GetString("SUBJECTS_DATABASE", "subjects"),
		SubjectsView:        env.GetString("SUBJECTS_VIEW", "subjects.v2.0.0"),
		EntitiesDatabase:    env.GetString("ENTITIES_DATABASE", "whisks"),
		ActivationsDatabase: env.GetString("ACTIVATIONS_DATABASE", "activations"),

		// Platform logs
		LogsDir: env.GetString("LOGS_DIR", "/var/log/platform"),

		// Logging
		LogLevel: env.GetString("LOG_LEVEL", "info"),
	}
}

// StoreURL returns the base URL of the document store.
func (c *Config) StoreURL() string {
	return fmt.Sprintf("%s://%s:%d", c.StoreProtocol, c.StoreHost, c.StorePort)
}

// loadDotEnv searches for a .env file recursively from the current directory
// up to the root directory and loads it if found.
func loadDotEnv() {
	// Get current working directory
	cwd, err := os.Getwd()
	if err != nil {
		return
	}

	// Search for .env file recursively up the directory tree
	dir := cwd
	for {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			// .env file found, load it
			_ = godotenv.Load(envPath)
			return
		}

		// Move to parent directory
		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root directory
			break
		}
		dir = parent
	}
}
