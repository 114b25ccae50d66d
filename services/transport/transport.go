// Package transport supplies raw page content to the extraction pipeline.
// Everything that blocks lives here: HTTP requests, headless rendering, and
// rate-limit bookkeeping. The parsing core never issues a request.
package transport

import (
	"context"
	"io"
	"time"

	"hddwatch/pricereport/helpers"
	"hddwatch/pricereport/pkg/errors"
	"hddwatch/pricereport/services/browser"
	"hddwatch/pricereport/services/cache"
)

// PageFetcher returns raw page content for one retailer page number.
// Implementations for single-page sources ignore the page argument.
type PageFetcher interface {
	FetchPage(ctx context.Context, page int) (io.Reader, error)
}

// HTTPFetcher fetches search pages over plain HTTP with randomized browser
// headers. When the retailer pushes back with a rate-limit status, the block
// is remembered in the cache service so subsequent runs back off.
type HTTPFetcher struct {
	Source    string
	BuildURL  func(page int) string
	CacheSvc  cache.CacheService
	CacheKey  string
	BlockTime time.Duration
}

// FetchPage fetches one search result page
func (f *HTTPFetcher) FetchPage(ctx context.Context, page int) (io.Reader, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.NewNetwork(f.Source, "fetch cancelled", err)
	}

	// Honor an active rate-limit block
	if f.CacheSvc != nil && f.CacheKey != "" {
		if _, err := f.CacheSvc.Get(f.CacheKey); err == nil {
			return nil, errors.NewRateLimit(f.Source, f.BlockTime)
		}
	}

	body, err := helpers.FetchWithRandomHeaders(f.BuildURL(page))
	if err != nil {
		if errors.IsType(err, errors.ErrorTypeRateLimit) {
			if f.CacheSvc != nil && f.CacheKey != "" {
				f.CacheSvc.Set(f.CacheKey, []byte("blocked"), f.BlockTime)
			}
			return nil, errors.NewRateLimit(f.Source, f.BlockTime)
		}
		return nil, errors.NewNetwork(f.Source, "fetch failed", err)
	}
	return body, nil
}

// BrowserFetcher renders a single JS-heavy page via headless Chrome. Page
// numbers beyond the first yield no content; these sources load everything
// on one large page.
type BrowserFetcher struct {
	Source       string
	URL          string
	WaitSelector string
	Scroll       bool
	Renderer     *browser.Renderer
}

// FetchPage renders the configured page
func (f *BrowserFetcher) FetchPage(ctx context.Context, page int) (io.Reader, error) {
	if page > 1 {
		return nil, nil
	}
	return f.Renderer.RenderPage(ctx, f.URL, f.WaitSelector, f.Scroll)
}
