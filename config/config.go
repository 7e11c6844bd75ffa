package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment
// variables or a .env file.
//
// It is composed of smaller structs that represent different concerns of the
// system: the HTTP server and the upstream IsThereAnyDeal (ITAD) API.
//
// Example YAML/ENV equivalent:
//
//	SERVER_PORT=8080
//	ALLOWED_ORIGIN=https://store.steampowered.com
//	ITAD_API_KEY=xxxxxxxx
//	ITAD_BASE_URL=https://api.isthereanydeal.com
//	ITAD_TIMEOUT_SECONDS=8
type Config struct {
	Server ServerConfig // HTTP server configuration
	ITAD   ITADConfig   // Upstream price-tracking API settings
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port          string // The TCP port the HTTP server will listen on (e.g., "8080")
	AllowedOrigin string // The single origin allowed by the CORS gate
}

// ITADConfig defines how to reach the IsThereAnyDeal API.
//
// Fields:
//   - APIKey: secret key appended to every upstream call. May legitimately be
//     empty at boot; the stats handler rejects requests with a 500 until it
//     is configured. It must never appear in logs or responses.
//   - BaseURL: API root, without a trailing slash.
//   - Timeout: bounded per-call timeout for upstream requests.
type ITADConfig struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and used throughout the application.
// All services should import this package and read from AppConfig instead of
// reloading environment variables directly.
var AppConfig Config

// LoadConfig initializes the global AppConfig by reading from a .env file
// or directly from environment variables.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Behavior:
//   - Sets defaults for all fields except ITAD_API_KEY, which has no
//     sensible default and is deliberately NOT validated here: a missing key
//     is a per-request 500, not a boot failure, so the health endpoints stay
//     reachable for probes even when the secret is absent.
//   - Reads environment variables automatically with viper.AutomaticEnv().
//   - Calls validateConfig() to ensure the remaining required fields are
//     present.
func LoadConfig() {
	// Default values
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("ALLOWED_ORIGIN", "https://store.steampowered.com")

	viper.SetDefault("ITAD_BASE_URL", "https://api.isthereanydeal.com")
	viper.SetDefault("ITAD_TIMEOUT_SECONDS", 8)

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	// Read environment variables automatically
	viper.AutomaticEnv()

	// Populate global config instance
	AppConfig = Config{
		Server: ServerConfig{
			Port:          viper.GetString("SERVER_PORT"),
			AllowedOrigin: viper.GetString("ALLOWED_ORIGIN"),
		},
		ITAD: ITADConfig{
			APIKey:  viper.GetString("ITAD_API_KEY"),
			BaseURL: viper.GetString("ITAD_BASE_URL"),
			Timeout: time.Duration(viper.GetInt("ITAD_TIMEOUT_SECONDS")) * time.Second,
		},
	}

	// Validate critical fields
	validateConfig()
}

// validateConfig ensures required variables are present and terminates
// the application if they are missing.
//
// This avoids unexpected runtime failures due to incomplete configuration.
// ITAD_API_KEY is exempt on purpose; see LoadConfig.
func validateConfig() {
	var missing []string

	if AppConfig.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if AppConfig.Server.AllowedOrigin == "" {
		missing = append(missing, "ALLOWED_ORIGIN")
	}
	if AppConfig.ITAD.BaseURL == "" {
		missing = append(missing, "ITAD_BASE_URL")
	}
	if AppConfig.ITAD.Timeout <= 0 {
		missing = append(missing, "ITAD_TIMEOUT_SECONDS")
	}

	if len(missing) > 0 {
		log.Fatalf("missing required environment variables: %v\n", missing)
	}
}
