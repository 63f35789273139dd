// Package config provides application configuration loading and validation.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the complete application configuration.
type Config struct {
	Server  ServerConfig
	Pairs   PairsConfig
	Refresh RefreshConfig
	Fetcher FetcherConfig
	Redis   RedisConfig
	Cache   CacheConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int  `mapstructure:"port"`
	ServeSwagger bool `mapstructure:"serve_swagger"`
	ServeMetrics bool `mapstructure:"serve_metrics"`
}

// PairsConfig points at the currency pair list. Entries of List use the same
// "BASE->QUOTE" syntax as the file and are appended after it.
type PairsConfig struct {
	File string   `mapstructure:"file"`
	List []string `mapstructure:"list"`
}

// RefreshConfig holds the per-pair refresh schedule.
type RefreshConfig struct {
	IntervalSec int `mapstructure:"interval_sec"`
}

// FetcherConfig holds settings for the remote rate source.
type FetcherConfig struct {
	BaseURL    string `mapstructure:"base_url"`
	APIKey     string `mapstructure:"api_key"`
	TimeoutSec int    `mapstructure:"timeout_sec"`
}

// RedisConfig holds the optional fetch cache connection.
type RedisConfig struct {
	CacheAddr string `mapstructure:"cache_addr"` // Empty disables the shared fetch cache.
}

// CacheConfig holds caching settings.
type CacheConfig struct {
	FetchTTLSec int `mapstructure:"fetch_ttl_sec"`
}

// RefreshInterval returns the refresh period as a duration.
func (c *Config) RefreshInterval() time.Duration {
	return time.Duration(c.Refresh.IntervalSec) * time.Second
}

// FetchTimeout returns the rate source call bound as a duration.
func (c *Config) FetchTimeout() time.Duration {
	return time.Duration(c.Fetcher.TimeoutSec) * time.Second
}

// FetchCacheTTL returns the Redis fetch cache TTL as a duration.
func (c *Config) FetchCacheTTL() time.Duration {
	return time.Duration(c.Cache.FetchTTLSec) * time.Second
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8888)
	v.SetDefault("server.serve_swagger", true)
	v.SetDefault("server.serve_metrics", true)
	v.SetDefault("pairs.file", "./resources/pairs.txt")
	v.SetDefault("pairs.list", []string{})
	v.SetDefault("refresh.interval_sec", 60)
	v.SetDefault("fetcher.base_url", "https://api.exchangeratesapi.io")
	v.SetDefault("fetcher.api_key", "")
	v.SetDefault("fetcher.timeout_sec", 10)
	v.SetDefault("redis.cache_addr", "")
	v.SetDefault("cache.fetch_ttl_sec", 30)
}

// LoadConfig reads configuration from config files, environment variables, and defaults.
func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		fmt.Printf("No .env file found or error loading it: %v\n", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// Config search paths
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("./internal/config")

	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	v.SetEnvPrefix("CURRENCYSVC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// It's okay if no config file, we have defaults and env
		fmt.Printf("Config file not found: %v\n", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// Validate checks that all required configuration fields are set and valid.
func (c *Config) Validate() error {
	var errs []error
	if c.Server.Port <= 0 {
		errs = append(errs, fmt.Errorf("server.port must be positive, got %d", c.Server.Port))
	}

	if c.Pairs.File == "" && len(c.Pairs.List) == 0 {
		errs = append(errs, fmt.Errorf("pairs.file or pairs.list is required"))
	}

	if c.Refresh.IntervalSec <= 0 {
		errs = append(errs, fmt.Errorf("refresh.interval_sec must be positive, got %d", c.Refresh.IntervalSec))
	}

	if c.Fetcher.BaseURL == "" {
		errs = append(errs, fmt.Errorf("fetcher.base_url is required (set CURRENCYSVC_FETCHER_BASE_URL)"))
	}
	if c.Fetcher.TimeoutSec <= 0 {
		errs = append(errs, fmt.Errorf("fetcher.timeout_sec must be positive, got %d", c.Fetcher.TimeoutSec))
	}

	if c.Redis.CacheAddr != "" && c.Cache.FetchTTLSec <= 0 {
		errs = append(errs, fmt.Errorf("cache.fetch_ttl_sec must be positive, got %d", c.Cache.FetchTTLSec))
	}

	return errors.Join(errs...)
}
