package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything the server needs from the environment.
type Config struct {
	SupabaseURL string
	SupabaseKey string
	Port        string
	LogLevel    string
}

// Load reads configuration from a .env file (if present) and the process
// environment. SUPABASE_SERVICE_KEY takes precedence over SUPABASE_ANON_KEY.
func Load() (*Config, error) {
	// A missing .env file is fine; the variables may come from the system.
	_ = godotenv.Load()

	cfg := &Config{
		SupabaseURL: os.Getenv("SUPABASE_URL"),
		SupabaseKey: os.Getenv("SUPABASE_SERVICE_KEY"),
		Port:        os.Getenv("PORT"),
		LogLevel:    os.Getenv("LOG_LEVEL"),
	}

	if cfg.SupabaseKey == "" {
		cfg.SupabaseKey = os.Getenv("SUPABASE_ANON_KEY")
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	if cfg.SupabaseURL == "" {
		return nil, fmt.Errorf("SUPABASE_URL is not set")
	}
	if cfg.SupabaseKey == "" {
		return nil, fmt.Errorf("neither SUPABASE_SERVICE_KEY nor SUPABASE_ANON_KEY is set")
	}

	return cfg, nil
}
