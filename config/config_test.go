package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hddwatch/pricereport/pkg/errors"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()

	assert.Equal(t, "", cfg.RedisAddr)
	assert.Equal(t, "pricereport", cfg.RedisStream)
	assert.Equal(t, 100, cfg.RedisStreamMaxLen)
	assert.Equal(t, "", cfg.MemcacheAddr)
	assert.Equal(t, "internal hard drive", cfg.SearchTerm)
	assert.Equal(t, 4, cfg.MaxPages)
	assert.Equal(t, 96, cfg.NeweggPageSize)
	assert.Equal(t, 4*time.Second, cfg.MinDelay)
	assert.Equal(t, 8*time.Second, cfg.MaxDelay)
	assert.Equal(t, 90*time.Second, cfg.RenderTimeout)
	assert.Equal(t, "https://www.amazon.com", cfg.AmazonBaseURL)
	assert.Equal(t, "pages/hdd_prices_report.html", cfg.OutputPath)
	assert.Equal(t, "development", cfg.Environment)
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("SEARCH_TERM", "nas hard drive")
	t.Setenv("MAX_PAGES_PER_SITE", "2")
	t.Setenv("MIN_DELAY_SECONDS", "1")
	t.Setenv("MAX_DELAY_SECONDS", "2")
	t.Setenv("OUTPUT_PATH", "/tmp/report.html")

	cfg := LoadConfig()

	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, "nas hard drive", cfg.SearchTerm)
	assert.Equal(t, 2, cfg.MaxPages)
	assert.Equal(t, 1*time.Second, cfg.MinDelay)
	assert.Equal(t, 2*time.Second, cfg.MaxDelay)
	assert.Equal(t, "/tmp/report.html", cfg.OutputPath)
}

func TestValidate(t *testing.T) {
	valid := LoadConfig()
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty search term", func(c *Config) { c.SearchTerm = "" }},
		{"zero max pages", func(c *Config) { c.MaxPages = 0 }},
		{"inverted delays", func(c *Config) { c.MinDelay = 10 * time.Second; c.MaxDelay = 2 * time.Second }},
		{"empty output path", func(c *Config) { c.OutputPath = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := LoadConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.IsType(err, errors.ErrorTypeConfiguration))
		})
	}
}
