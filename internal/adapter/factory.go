package adapter

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"hddwatch/pricereport/helpers"
)

// CreateAdapters creates the adapters for all supported retailers
func CreateAdapters() []Adapter {
	configurations := []AdapterConfig{
		amazonConfig(),
		neweggConfig(),
		serverPartDealsConfig(),
	}

	var adapters []Adapter
	for _, config := range configurations {
		adapters = append(adapters, NewConfigurableAdapter(config))
	}
	return adapters
}

// NewAdapter creates the adapter for a single retailer, or nil for an
// unknown source
func NewAdapter(source Source) Adapter {
	switch source {
	case SourceAmazon:
		return NewConfigurableAdapter(amazonConfig())
	case SourceNewegg:
		return NewConfigurableAdapter(neweggConfig())
	case SourceServerPartDeals:
		return NewConfigurableAdapter(serverPartDealsConfig())
	default:
		return nil
	}
}

func amazonConfig() AdapterConfig {
	return AdapterConfig{
		Source:  SourceAmazon,
		BaseURL: "https://www.amazon.com",
		Selectors: Selectors{
			ListingList:     `div[data-component-type="s-search-result"]`,
			ListingFallback: "div.s-result-item[data-asin]",
			SkipSelector:    "span.s-label-popover-default, span.puis-sponsored-label-text",
			SkipText:        "Sponsored",
			TitleHandlers: []ElementHandlerFunc{
				func(s *goquery.Selection) string {
					container := s.Find(`div[data-cy="title-recipe"]`)
					if container.Length() == 0 {
						return ""
					}
					if span := container.Find("h2 span").First(); span.Length() > 0 {
						return span.Text()
					}
					return container.Find("a.a-link-normal").First().Text()
				},
			},
			LinkHandlers: []ElementHandlerFunc{
				func(s *goquery.Selection) string {
					href, _ := s.Find(`div[data-cy="title-recipe"] a.a-link-normal`).First().Attr("href")
					return href
				},
			},
			PriceHandlers: []ElementHandlerFunc{
				func(s *goquery.Selection) string {
					return strings.TrimSpace(s.Find("span.a-price > span.a-offscreen").First().Text())
				},
				func(s *goquery.Selection) string {
					whole := strings.TrimSpace(s.Find("span.a-price-whole").First().Text())
					fraction := strings.TrimSpace(s.Find("span.a-price-fraction").First().Text())
					if whole == "" || fraction == "" {
						return ""
					}
					return strings.TrimSuffix(whole, ".") + "." + fraction
				},
				func(s *goquery.Selection) string {
					return strings.TrimSpace(s.Find("span.a-price").First().Text())
				},
			},
		},
		EmptyMarkers: []string{"no results for"},
		LinkFilter: func(href string) bool {
			return strings.HasPrefix(href, "/") &&
				(strings.Contains(href, "/dp/") || strings.Contains(href, "/gp/product/"))
		},
		ProductID: func(s *goquery.Selection, url string) string {
			if asin, exists := s.Attr("data-asin"); exists && asin != "" {
				return asin
			}
			marker := "/dp/"
			if !strings.Contains(url, marker) {
				marker = "/gp/product/"
			}
			id, err := helpers.GetSplitPart(url, marker, 1)
			if err != nil {
				return ""
			}
			id, _, _ = strings.Cut(id, "/")
			id, _, _ = strings.Cut(id, "?")
			return id
		},
	}
}

func neweggConfig() AdapterConfig {
	return AdapterConfig{
		Source:  SourceNewegg,
		BaseURL: "https://www.newegg.com",
		Selectors: Selectors{
			ListingList: "div.item-cell",
			Title:       "a.item-title",
			Link:        "a.item-title",
			PriceHandlers: []ElementHandlerFunc{
				func(s *goquery.Selection) string {
					current := s.Find("li.price-current")
					if current.Length() == 0 {
						return ""
					}
					dollars := strings.TrimSpace(current.Find("strong").First().Text())
					cents := strings.TrimSpace(current.Find("sup").First().Text())
					if dollars == "" {
						return strings.TrimSpace(current.Text())
					}
					return dollars + cents
				},
			},
		},
		EmptyMarkers: []string{
			"did not match any products",
			"we couldn't find any matches",
		},
		LinkFilter: func(href string) bool {
			return strings.HasPrefix(href, "http")
		},
		ProductID: func(_ *goquery.Selection, url string) string {
			id, err := helpers.GetSplitPart(url, "/p/", 1)
			if err != nil {
				return ""
			}
			id, _, _ = strings.Cut(id, "?")
			return strings.Trim(id, "/")
		},
	}
}

func serverPartDealsConfig() AdapterConfig {
	return AdapterConfig{
		Source:  SourceServerPartDeals,
		BaseURL: "https://serverpartdeals.com",
		Selectors: Selectors{
			ListingList: "div.boost-pfs-filter-product-item-inner",
			Title:       "a.boost-pfs-filter-product-item-title",
			Link:        "a.boost-pfs-filter-product-item-title",
			Price:       "span.boost-pfs-filter-product-item-regular-price",
		},
		ProductID: func(_ *goquery.Selection, url string) string {
			id, err := helpers.GetSplitPart(url, "/products/", 1)
			if err != nil {
				return ""
			}
			id, _, _ = strings.Cut(id, "?")
			return strings.Trim(id, "/")
		},
	}
}
