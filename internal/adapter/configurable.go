package adapter

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"hddwatch/pricereport/internal/units"
	"hddwatch/pricereport/pkg/errors"
)

// ConfigurableAdapter is a selector-driven adapter; one instance per
// retailer, configured in the factory. Each field is extracted in isolation
// so one retailer's layout drift degrades to absent fields instead of
// failing the whole listing or its siblings.
type ConfigurableAdapter struct {
	baseAdapter
	selectors    Selectors
	emptyMarkers []string
	linkFilter   LinkFilterFunc
	productID    ProductIDExtractorFunc
}

// NewConfigurableAdapter creates a new adapter from a retailer configuration
func NewConfigurableAdapter(config AdapterConfig) *ConfigurableAdapter {
	return &ConfigurableAdapter{
		baseAdapter: baseAdapter{
			source:  config.Source,
			baseURL: config.BaseURL,
		},
		selectors:    config.Selectors,
		emptyMarkers: config.EmptyMarkers,
		linkFilter:   config.LinkFilter,
		productID:    config.ProductID,
	}
}

// ExtractListings extracts one partial record per listing container found in
// the document. A non-empty page on which no listing container matches is
// reported as a source failure so the caller can mark the retailer's status;
// it never aborts the pipeline.
func (a *ConfigurableAdapter) ExtractListings(doc *goquery.Document) ([]PartialRecord, error) {
	listings := doc.Find(a.selectors.ListingList)
	if listings.Length() == 0 && a.selectors.ListingFallback != "" {
		listings = doc.Find(a.selectors.ListingFallback)
	}

	if listings.Length() == 0 {
		if a.isEmptyResults(doc) {
			return nil, nil
		}
		return nil, errors.NewSource(string(a.source), "no listing containers matched a non-empty page")
	}

	var records []PartialRecord
	listings.Each(func(_ int, s *goquery.Selection) {
		if a.shouldSkip(s) {
			return
		}
		records = append(records, a.extractListing(s))
	})
	return records, nil
}

// isEmptyResults reports whether the page legitimately contains no listings,
// either because the content is blank or because the retailer's "no results"
// marker is present.
func (a *ConfigurableAdapter) isEmptyResults(doc *goquery.Document) bool {
	text := strings.TrimSpace(doc.Text())
	if text == "" {
		return true
	}
	lower := strings.ToLower(text)
	for _, marker := range a.emptyMarkers {
		if strings.Contains(lower, strings.ToLower(marker)) {
			return true
		}
	}
	return false
}

// shouldSkip filters out listings that are not products (sponsored slots)
func (a *ConfigurableAdapter) shouldSkip(s *goquery.Selection) bool {
	if a.selectors.SkipSelector == "" {
		return false
	}
	skipSel := s.Find(a.selectors.SkipSelector)
	if skipSel.Length() == 0 {
		return false
	}
	if a.selectors.SkipText == "" {
		return true
	}
	return strings.Contains(skipSel.Text(), a.selectors.SkipText)
}

// extractListing maps a single listing container to a partial record. Every
// field is attempted independently; failures leave the field absent.
func (a *ConfigurableAdapter) extractListing(s *goquery.Selection) PartialRecord {
	rec := PartialRecord{Source: a.source}

	if len(a.selectors.TitleHandlers) > 0 {
		rec.Title = strings.TrimSpace(applyHandlers(s, a.selectors.TitleHandlers))
	} else {
		rec.Title = selectionText(s, a.selectors.Title)
	}

	var href string
	if len(a.selectors.LinkHandlers) > 0 {
		href = applyHandlers(s, a.selectors.LinkHandlers)
	} else if a.selectors.Link != "" {
		href, _ = s.Find(a.selectors.Link).First().Attr("href")
	}
	href = strings.TrimSpace(href)
	if href != "" && (a.linkFilter == nil || a.linkFilter(href)) {
		rec.URL = a.resolveURL(href)
	}

	if rec.URL != "" && a.productID != nil {
		rec.ProductID = a.productID(s, rec.URL)
	}

	var priceText string
	if len(a.selectors.PriceHandlers) > 0 {
		priceText = applyHandlers(s, a.selectors.PriceHandlers)
	} else {
		priceText = selectionText(s, a.selectors.Price)
	}
	if priceText != "" {
		if cents, err := units.ParsePrice(priceText); err == nil {
			rec.PriceCents = &cents
		}
	}

	if rec.Title != "" {
		if bytes, err := units.ParseCapacity(rec.Title); err == nil {
			rec.CapacityBytes = &bytes
		}
	}

	return rec
}
