package adapter

import "github.com/PuerkitoBio/goquery"

// Source identifies a supported retailer
type Source string

const (
	SourceAmazon          Source = "Amazon"
	SourceNewegg          Source = "Newegg"
	SourceServerPartDeals Source = "ServerPartDeals"
)

// PartialRecord is one listing as extracted from a retailer page, before
// validation. String fields use "" for absent; the numeric fields are
// pointers because zero is a meaningful (and invalid) value distinct from
// absent.
type PartialRecord struct {
	Source        Source
	Title         string
	CapacityBytes *int64
	PriceCents    *int64
	URL           string
	ProductID     string
}

// Adapter is the contract every retailer extraction variant implements.
// ExtractListings walks the listing containers of one raw page and emits a
// partial record per listing; a malformed listing yields absent fields, not
// an error. The only error case is a page the adapter cannot work with at
// all (non-empty content, zero listing containers).
type Adapter interface {
	ExtractListings(doc *goquery.Document) ([]PartialRecord, error)
	Source() Source
}

// ElementHandlerFunc customizes extraction for one field of a listing
type ElementHandlerFunc func(*goquery.Selection) string

// ProductIDExtractorFunc derives a stable product identifier from a listing
// container and its resolved URL
type ProductIDExtractorFunc func(s *goquery.Selection, url string) string

// LinkFilterFunc rejects hrefs that do not point at a product page
type LinkFilterFunc func(href string) bool

// Selectors contains CSS selectors for the elements of a retailer's listing
// markup. Handler chains, when set, take precedence over the plain
// selectors; each handler is tried in order until one returns a value.
type Selectors struct {
	ListingList     string
	ListingFallback string

	// Listings matching SkipSelector whose text contains SkipText are
	// dropped (sponsored placements and the like).
	SkipSelector string
	SkipText     string

	Title string
	Link  string
	Price string

	TitleHandlers []ElementHandlerFunc
	LinkHandlers  []ElementHandlerFunc
	PriceHandlers []ElementHandlerFunc
}

// AdapterConfig contains configuration for one retailer adapter
type AdapterConfig struct {
	Source    Source
	BaseURL   string
	Selectors Selectors

	// EmptyMarkers are page texts meaning "search ran fine, no results",
	// which is distinct from an unrecognized page structure.
	EmptyMarkers []string

	LinkFilter LinkFilterFunc
	ProductID  ProductIDExtractorFunc
}
