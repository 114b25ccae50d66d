package adapter

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// baseAdapter provides functionality shared by all adapter variants
type baseAdapter struct {
	source  Source
	baseURL string
}

// Source returns the retailer this adapter extracts for
func (a *baseAdapter) Source() Source {
	return a.source
}

// resolveURL resolves an extracted href against the retailer's base URL
func (a *baseAdapter) resolveURL(href string) string {
	href = strings.TrimSpace(href)
	switch {
	case href == "":
		return ""
	case strings.HasPrefix(href, "//"):
		return "https:" + href
	case strings.HasPrefix(href, "/"):
		return a.baseURL + href
	default:
		return href
	}
}

// applyHandlers applies a series of handlers to a selection, returning the
// first non-empty result
func applyHandlers(s *goquery.Selection, handlers []ElementHandlerFunc) string {
	for _, handler := range handlers {
		if handler == nil {
			continue
		}
		if result := handler(s); result != "" {
			return result
		}
	}
	return ""
}

// selectionText extracts trimmed text for a selector, "" when absent
func selectionText(s *goquery.Selection, selector string) string {
	if selector == "" {
		return ""
	}
	sel := s.Find(selector)
	if sel.Length() == 0 {
		return ""
	}
	return strings.TrimSpace(sel.First().Text())
}
