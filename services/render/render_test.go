package render

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hddwatch/pricereport/internal/adapter"
	"hddwatch/pricereport/internal/report"
)

func sampleData() report.ReportData {
	return report.ReportData{
		Rows: []report.Row{
			{
				Rank:       1,
				Retailer:   "Newegg",
				Title:      "Seagate IronWolf 4TB NAS HDD",
				URL:        "https://www.newegg.com/p/N1",
				ProductID:  "N1",
				CapacityTB: "4",
				Price:      "99.99",
				PricePerTB: "25.00",
			},
			{
				Rank:       2,
				Retailer:   "Amazon",
				Title:      "WD Blue 2TB Internal HDD",
				URL:        "https://www.amazon.com/dp/A1",
				ProductID:  "A1",
				CapacityTB: "2",
				Price:      "60.00",
				PricePerTB: "30.00",
			},
		},
		Statuses: []report.SourceStatus{
			{Source: adapter.SourceAmazon, OK: true, RecordCount: 1},
			{Source: adapter.SourceNewegg, OK: true, RecordCount: 1},
			{Source: adapter.SourceServerPartDeals, OK: false, Error: "blocking page detected: captcha"},
		},
	}
}

func TestWriteReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "report.html")
	generatedAt := time.Date(2026, 8, 30, 14, 30, 0, 0, time.UTC)

	require.NoError(t, WriteReport(path, sampleData(), generatedAt))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	html := string(content)

	assert.Contains(t, html, "2026-08-30 14:30:00 UTC")
	assert.Contains(t, html, "Seagate IronWolf 4TB NAS HDD")
	assert.Contains(t, html, "https://www.newegg.com/p/N1")
	assert.Contains(t, html, "25.00")
	assert.Contains(t, html, "2/3")
	assert.Contains(t, html, "blocking page detected: captcha")
	// Rows are embedded as JSON for the client-side sort script
	assert.Contains(t, html, `"price_per_tb":"30.00"`)

	// Theme toggle ships with the static artifact
	assert.Contains(t, html, `id="themeToggle"`)
	assert.Contains(t, html, "dark-theme")
}

func TestWriteReportEmptyRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.html")

	data := report.ReportData{
		Statuses: []report.SourceStatus{
			{Source: adapter.SourceAmazon, OK: false, Error: "rate limited"},
		},
	}
	require.NoError(t, WriteReport(path, data, time.Now()))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "rate limited")
}
