package config

import (
	"fmt"

	supa "github.com/supabase-community/supabase-go"
)

// NewSupabase builds a Supabase client from the loaded configuration.
// Callers own the client; there is no package-level instance, so tests and
// multiple environments can construct their own.
func NewSupabase(cfg *Config) (*supa.Client, error) {
	client, err := supa.NewClient(cfg.SupabaseURL, cfg.SupabaseKey, nil)
	if err != nil {
		return nil, fmt.Errorf("initializing supabase client: %w", err)
	}
	return client, nil
}
