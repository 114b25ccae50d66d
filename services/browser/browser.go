// Package browser drives a headless Chrome instance for retailers whose
// product grids only populate from JavaScript.
package browser

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/chromedp/chromedp"

	"hddwatch/pricereport/pkg/errors"
)

// Renderer owns one Chrome exec allocator; each page render runs in its own
// tab context derived from it.
type Renderer struct {
	allocCtx context.Context
	cancel   context.CancelFunc
	timeout  time.Duration
}

// NewRenderer creates a renderer with a fresh headless Chrome allocator
func NewRenderer(userAgent string, timeout time.Duration) *Renderer {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.WindowSize(1920, 1080),
		chromedp.UserAgent(userAgent),
	)

	allocCtx, cancel := chromedp.NewExecAllocator(context.Background(), opts...)
	return &Renderer{
		allocCtx: allocCtx,
		cancel:   cancel,
		timeout:  timeout,
	}
}

// Close shuts down the allocator and any remaining tabs
func (r *Renderer) Close() {
	r.cancel()
}

// RenderPage navigates to url, optionally scrolls to trigger lazy product
// grids, waits for waitSelector to become visible, and returns the rendered
// HTML. Cancelling ctx aborts the render.
func (r *Renderer) RenderPage(ctx context.Context, url, waitSelector string, scroll bool) (io.Reader, error) {
	// Suppress chromedp log noise
	tabCtx, cancelTab := chromedp.NewContext(r.allocCtx,
		chromedp.WithLogf(func(string, ...interface{}) {}))
	defer cancelTab()

	tabCtx, cancelTimeout := context.WithTimeout(tabCtx, r.timeout)
	defer cancelTimeout()

	stop := context.AfterFunc(ctx, cancelTab)
	defer stop()

	actions := []chromedp.Action{
		chromedp.Navigate(url),
		chromedp.Sleep(3 * time.Second),
	}
	if scroll {
		for i := 0; i < 3; i++ {
			actions = append(actions,
				chromedp.Evaluate(`window.scrollBy(0, document.body.scrollHeight * 0.6)`, nil),
				chromedp.Sleep(1500*time.Millisecond),
			)
		}
	}
	if waitSelector != "" {
		actions = append(actions, chromedp.WaitVisible(waitSelector, chromedp.ByQuery))
	}

	var html string
	actions = append(actions, chromedp.OuterHTML("html", &html))

	if err := chromedp.Run(tabCtx, actions...); err != nil {
		return nil, errors.NewNetwork(url, "headless render failed", err)
	}
	return strings.NewReader(html), nil
}
