package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig   `json:"server"`
	Supabase SupabaseConfig `json:"supabase"`
	CDN      CDNConfig      `json:"cdn"`
	Feed     FeedConfig     `json:"feed"`
}

// ServerConfig for HTTP server settings
type ServerConfig struct {
	Port         string `json:"port"`
	ReadTimeout  int    `json:"read_timeout_seconds"`
	WriteTimeout int    `json:"write_timeout_seconds"`
}

// SupabaseConfig for the hosted backend. The anon key is safe to ship to
// clients; the service key never belongs here.
type SupabaseConfig struct {
	URL     string `json:"url"`
	AnonKey string `json:"anon_key"`
}

// CDNConfig for the image transformation host
type CDNConfig struct {
	BaseURL string `json:"base_url"`
}

// FeedConfig tunes the gig feed queries
type FeedConfig struct {
	PageSize     int    `json:"page_size"`
	RolesLimit   int    `json:"roles_limit"`
	CreatedSince string `json:"created_since"`
}

// Load reads configuration from file and environment variables
// Environment variables override file values using the pattern MUBLIN_SECTION_KEY
func Load(configPath string) (*Config, error) {
	config := &Config{}

	// Load from file if it exists
	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err == nil {
			if err := json.Unmarshal(data, config); err != nil {
				return nil, fmt.Errorf("failed to parse config file: %w", err)
			}
		}
	}

	// Apply defaults
	applyDefaults(config)

	// Override with environment variables
	applyEnvOverrides(config)

	return config, nil
}

func applyDefaults(config *Config) {
	if config.Server.Port == "" {
		config.Server.Port = "8080"
	}
	if config.Server.ReadTimeout == 0 {
		config.Server.ReadTimeout = 30
	}
	if config.Server.WriteTimeout == 0 {
		config.Server.WriteTimeout = 30
	}
	if config.CDN.BaseURL == "" {
		config.CDN.BaseURL = "https://ik.imagekit.io/mublin/"
	}
	if config.Feed.PageSize == 0 {
		config.Feed.PageSize = 10
	}
	if config.Feed.RolesLimit == 0 {
		config.Feed.RolesLimit = 20
	}
	if config.Feed.CreatedSince == "" {
		config.Feed.CreatedSince = "2025-01-01"
	}
}

func applyEnvOverrides(config *Config) {
	// Server overrides
	if v := os.Getenv("MUBLIN_SERVER_PORT"); v != "" {
		config.Server.Port = v
	}

	// Supabase overrides; the plain names match the hosted project's
	// conventional .env entries
	if v := os.Getenv("MUBLIN_SUPABASE_URL"); v != "" {
		config.Supabase.URL = v
	}
	if v := os.Getenv("MUBLIN_SUPABASE_ANON_KEY"); v != "" {
		config.Supabase.AnonKey = v
	}
	if v := os.Getenv("SUPABASE_URL"); v != "" && config.Supabase.URL == "" {
		config.Supabase.URL = v
	}
	if v := os.Getenv("SUPABASE_KEY"); v != "" && config.Supabase.AnonKey == "" {
		config.Supabase.AnonKey = v
	}

	// CDN override
	if v := os.Getenv("MUBLIN_CDN_BASE_URL"); v != "" {
		config.CDN.BaseURL = v
	}

	// Feed overrides
	if v := os.Getenv("MUBLIN_FEED_PAGE_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			config.Feed.PageSize = n
		}
	}
	if v := os.Getenv("MUBLIN_FEED_CREATED_SINCE"); v != "" {
		config.Feed.CreatedSince = v
	}
}

// CreatedSinceTime parses the feed cutoff date.
func (c *FeedConfig) CreatedSinceTime() (time.Time, error) {
	t, err := time.Parse("2006-01-02", c.CreatedSince)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid feed.created_since %q: %w", c.CreatedSince, err)
	}
	return t, nil
}

// Validate checks if required configurations are present
func (c *Config) Validate() error {
	var missing []string

	if c.Supabase.URL == "" {
		missing = append(missing, "supabase.url")
	}
	if c.Supabase.AnonKey == "" {
		missing = append(missing, "supabase.anon_key")
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}

	if _, err := c.Feed.CreatedSinceTime(); err != nil {
		return err
	}

	return nil
}
