package worker

import (
	"fmt"
	"strings"
	"time"

	"hddwatch/pricereport/config"
	"hddwatch/pricereport/internal/adapter"
	"hddwatch/pricereport/services/browser"
	"hddwatch/pricereport/services/cache"
	"hddwatch/pricereport/services/transport"
)

// rateLimitBlock is how long a retailer is left alone after pushing back
const rateLimitBlock = 500 * time.Second

// NewSourceJobs wires one job per retailer: Amazon over plain HTTP with
// paginated search results, Newegg and ServerPartDeals through the headless
// renderer since their grids populate from JavaScript.
func NewSourceJobs(cfg config.Config, cacheSvc cache.CacheService, renderer *browser.Renderer) []SourceJob {
	query := strings.ReplaceAll(strings.TrimSpace(cfg.SearchTerm), " ", "+")

	return []SourceJob{
		{
			Adapter: adapter.NewAdapter(adapter.SourceAmazon),
			Fetcher: &transport.HTTPFetcher{
				Source: string(adapter.SourceAmazon),
				BuildURL: func(page int) string {
					return fmt.Sprintf("%s/s?k=%s&i=computers&rh=n%%3A1254762011&ref=nb_sb_noss&page=%d",
						cfg.AmazonBaseURL, query, page)
				},
				CacheSvc:  cacheSvc,
				CacheKey:  "amazon_rate_limited",
				BlockTime: rateLimitBlock,
			},
			MaxPages: cfg.MaxPages,
		},
		{
			Adapter: adapter.NewAdapter(adapter.SourceNewegg),
			Fetcher: &transport.BrowserFetcher{
				Source: string(adapter.SourceNewegg),
				URL: fmt.Sprintf("%s/p/pl?d=%s&PageSize=%d",
					cfg.NeweggBaseURL, query, cfg.NeweggPageSize),
				WaitSelector: "div.item-cell",
				Renderer:     renderer,
			},
			MaxPages: 1,
		},
		{
			Adapter: adapter.NewAdapter(adapter.SourceServerPartDeals),
			Fetcher: &transport.BrowserFetcher{
				Source:       string(adapter.SourceServerPartDeals),
				URL:          cfg.ServerPartDealsURL,
				WaitSelector: "a.boost-pfs-filter-product-item-title",
				Scroll:       true,
				Renderer:     renderer,
			},
			MaxPages: 1,
		},
	}
}
