package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress        string
	DatabaseURI       string
	AuthSecret        string
	SessionTTL        time.Duration
	GenAIAPIKey       string
	GenAIBaseURL      string
	GenAIModel        string
	PublicBaseURL     string
	StoreFile         string
	AdminEmail        string
	AdminPassword     string
	NotifyNewOrders   bool
	FeedRetryInterval time.Duration
	ShutdownTimeout   time.Duration
	Profile           *Profile
}

const (
	defaultRunAddress        = ":8080"
	defaultSessionTTL        = 24 * time.Hour
	defaultGenAIBaseURL      = "https://generativelanguage.googleapis.com"
	defaultGenAIModel        = "gemini-1.5-flash"
	defaultPublicBaseURL     = "http://localhost:8080"
	defaultFeedRetryInterval = 3 * time.Second
	defaultShutdownTimeout   = 10 * time.Second
)

const (
	keyDatabaseURI = "DATABASE_URI"
	keyAuthSecret  = "AUTH_SECRET"
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:        getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:       getString(lookup, keyDatabaseURI, ""),
		AuthSecret:        getString(lookup, keyAuthSecret, ""),
		SessionTTL:        getDuration(lookup, "SESSION_TTL", defaultSessionTTL),
		GenAIAPIKey:       getString(lookup, "GENAI_API_KEY", ""),
		GenAIBaseURL:      getString(lookup, "GENAI_BASE_URL", defaultGenAIBaseURL),
		GenAIModel:        getString(lookup, "GENAI_MODEL", defaultGenAIModel),
		PublicBaseURL:     getString(lookup, "PUBLIC_BASE_URL", defaultPublicBaseURL),
		StoreFile:         getString(lookup, "STORE_FILE", ""),
		AdminEmail:        getString(lookup, "ADMIN_EMAIL", ""),
		AdminPassword:     getString(lookup, "ADMIN_PASSWORD", ""),
		NotifyNewOrders:   getBool(lookup, "NOTIFY_NEW_ORDERS", true),
		FeedRetryInterval: getDuration(lookup, "FEED_RETRY_INTERVAL", defaultFeedRetryInterval),
		ShutdownTimeout:   getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	fs := flag.NewFlagSet("storefront", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		sessionTTLStr      = cfg.SessionTTL.String()
		retryIntervalStr   = cfg.FeedRetryInterval.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.AuthSecret, "auth-secret", cfg.AuthSecret, "Secret for signing session tokens")
	fs.StringVar(&cfg.PublicBaseURL, "public-url", cfg.PublicBaseURL, "Public base URL used in confirmation links")
	fs.StringVar(&cfg.StoreFile, "store-file", cfg.StoreFile, "YAML store profile")
	fs.StringVar(&sessionTTLStr, "session-ttl", sessionTTLStr, "Admin session lifetime")
	fs.StringVar(&retryIntervalStr, "feed-retry", retryIntervalStr, "Delay before resubscribing to the order feed")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")
	fs.BoolVar(&cfg.NotifyNewOrders, "notify", cfg.NotifyNewOrders, "Publish new-order alerts")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.SessionTTL, err = time.ParseDuration(sessionTTLStr); err != nil {
		return nil, fmt.Errorf("invalid session ttl: %w", err)
	}

	if cfg.FeedRetryInterval, err = time.ParseDuration(retryIntervalStr); err != nil {
		return nil, fmt.Errorf("invalid feed retry interval: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if secretFile, ok := lookup("AUTH_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read auth secret file: %w", err)
		}
		cfg.AuthSecret = strings.TrimSpace(string(content))
	}

	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = defaultSessionTTL
	}

	if cfg.FeedRetryInterval <= 0 {
		cfg.FeedRetryInterval = defaultFeedRetryInterval
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if missing := cfg.missing(); missing != nil {
		return nil, missing
	}

	if cfg.StoreFile != "" {
		if cfg.Profile, err = LoadProfile(cfg.StoreFile); err != nil {
			return nil, err
		}
	} else {
		cfg.Profile = DefaultProfile()
	}

	return cfg, nil
}

// AssistEnabled reports whether a generative-text key was configured.
func (c *Config) AssistEnabled() bool {
	return c.GenAIAPIKey != ""
}

func (c *Config) missing() *MissingError {
	keys := []RequiredKey{
		{Name: keyDatabaseURI, Present: c.DatabaseURI != ""},
		{Name: keyAuthSecret, Present: c.AuthSecret != ""},
	}
	for _, k := range keys {
		if !k.Present {
			return &MissingError{Keys: keys}
		}
	}
	return nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getBool(lookup envLookup, key string, def bool) bool {
	if v, ok := lookup(key); ok && v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
