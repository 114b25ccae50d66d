package config

import (
	"os"
	"strconv"
	"time"

	"hddwatch/pricereport/pkg/errors"
)

// Config represents the application configuration
type Config struct {
	// Redis configuration (report snapshot stream; disabled when addr is empty)
	RedisAddr         string
	RedisDB           int
	RedisStream       string
	RedisStreamMaxLen int

	// Memcache configuration (rate-limit block cache; disabled when addr is empty)
	MemcacheAddr string

	// Scrape settings
	SearchTerm     string
	MaxPages       int
	NeweggPageSize int
	MinDelay       time.Duration
	MaxDelay       time.Duration
	RenderTimeout  time.Duration

	// Retailer endpoints
	AmazonBaseURL      string
	NeweggBaseURL      string
	ServerPartDealsURL string

	// Report output
	OutputPath string

	// Environment
	Environment string
}

// LoadConfig loads the configuration from environment variables with defaults
func LoadConfig() Config {
	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
	redisMaxLen, _ := strconv.Atoi(getEnv("REDIS_STREAM_MAX_LEN", "100"))
	maxPages, _ := strconv.Atoi(getEnv("MAX_PAGES_PER_SITE", "4"))
	neweggPageSize, _ := strconv.Atoi(getEnv("NEWEGG_PAGE_SIZE", "96"))
	minDelay, _ := strconv.Atoi(getEnv("MIN_DELAY_SECONDS", "4"))
	maxDelay, _ := strconv.Atoi(getEnv("MAX_DELAY_SECONDS", "8"))
	renderTimeout, _ := strconv.Atoi(getEnv("RENDER_TIMEOUT_SECONDS", "90"))

	return Config{
		RedisAddr:          getEnv("REDIS_ADDR", ""),
		RedisDB:            redisDB,
		RedisStream:        getEnv("REDIS_STREAM", "pricereport"),
		RedisStreamMaxLen:  redisMaxLen,
		MemcacheAddr:       getEnv("MEMCACHE_ADDR", ""),
		SearchTerm:         getEnv("SEARCH_TERM", "internal hard drive"),
		MaxPages:           maxPages,
		NeweggPageSize:     neweggPageSize,
		MinDelay:           time.Duration(minDelay) * time.Second,
		MaxDelay:           time.Duration(maxDelay) * time.Second,
		RenderTimeout:      time.Duration(renderTimeout) * time.Second,
		AmazonBaseURL:      getEnv("AMAZON_BASE_URL", "https://www.amazon.com"),
		NeweggBaseURL:      getEnv("NEWEGG_BASE_URL", "https://www.newegg.com"),
		ServerPartDealsURL: getEnv("SPD_COLLECTION_URL", "https://serverpartdeals.com/collections/manufacturer-recertified-drives"),
		OutputPath:         getEnv("OUTPUT_PATH", "pages/hdd_prices_report.html"),
		Environment:        getEnv("PRICEREPORT_ENVIRONMENT", "development"),
	}
}

// Validate checks the loaded configuration for values the pipeline cannot
// run with
func (c *Config) Validate() error {
	if c.SearchTerm == "" {
		return errors.NewConfiguration("SEARCH_TERM must not be empty", nil)
	}
	if c.MaxPages < 1 {
		return errors.NewConfiguration("MAX_PAGES_PER_SITE must be at least 1", nil)
	}
	if c.MinDelay > c.MaxDelay {
		return errors.NewConfiguration("MIN_DELAY_SECONDS must not exceed MAX_DELAY_SECONDS", nil)
	}
	if c.OutputPath == "" {
		return errors.NewConfiguration("OUTPUT_PATH must not be empty", nil)
	}
	return nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
