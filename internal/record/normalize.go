// Package record validates partial records from site adapters and computes
// the derived price-per-terabyte metric.
package record

import (
	"fmt"
	"math"

	"hddwatch/pricereport/internal/adapter"
)

// bytesPerTB is the decimal terabyte used for the ranking metric
const bytesPerTB = 1_000_000_000_000

// maxPriceCents is the largest price the metric can be derived for without
// overflowing int64 (about $92,000); a scraped price above it is a
// parsing glitch, not a listing.
const maxPriceCents = math.MaxInt64 / bytesPerTB

// pricePerTBScale is how many sort-key units make up one cent per TB. The
// sort key carries four fractional digits so equal-seeming values still
// order reproducibly without floating point.
const pricePerTBScale = 10_000

// Reason classifies why a partial record was rejected
type Reason string

const (
	MissingCapacity Reason = "missing_capacity"
	MissingPrice    Reason = "missing_price"
	MissingIdentity Reason = "missing_identity"
	InvalidPrice    Reason = "invalid_price"
)

// Rejection explains why a partial record was dropped. Rejections are
// logged and counted; they never abort the source or the run.
type Rejection struct {
	Reason Reason
	Source adapter.Source
	Title  string
}

// Error implements the error interface
func (r *Rejection) Error() string {
	if r.Title == "" {
		return fmt.Sprintf("record rejected (%s): %s", r.Reason, r.Source)
	}
	return fmt.Sprintf("record rejected (%s): %s %q", r.Reason, r.Source, r.Title)
}

// ReasonOf returns the rejection reason carried by err, if any
func ReasonOf(err error) (Reason, bool) {
	if rej, ok := err.(*Rejection); ok {
		return rej.Reason, true
	}
	return "", false
}

// NormalizedRecord is a fully validated listing with its derived metric.
// PricePerTB holds price per decimal terabyte in 1/10000-cent units
// (priceCents * 10^12 / capacityBytes carried to four fractional digits);
// it is the primary sort key of the report.
type NormalizedRecord struct {
	Source        adapter.Source `json:"source"`
	Retailer      string         `json:"retailer"`
	Title         string         `json:"title"`
	URL           string         `json:"url"`
	ProductID     string         `json:"product_id"`
	CapacityBytes int64          `json:"capacity_bytes"`
	PriceCents    int64          `json:"price_cents"`
	PricePerTB    int64          `json:"price_per_tb"`
}

// Normalize validates a partial record and computes its derived fields.
// A record missing capacity, price, or identifying information is rejected,
// never defaulted.
func Normalize(p adapter.PartialRecord) (NormalizedRecord, error) {
	if p.CapacityBytes == nil || *p.CapacityBytes <= 0 {
		return NormalizedRecord{}, &Rejection{Reason: MissingCapacity, Source: p.Source, Title: p.Title}
	}
	if p.PriceCents == nil {
		return NormalizedRecord{}, &Rejection{Reason: MissingPrice, Source: p.Source, Title: p.Title}
	}
	if *p.PriceCents <= 0 || *p.PriceCents > maxPriceCents {
		return NormalizedRecord{}, &Rejection{Reason: InvalidPrice, Source: p.Source, Title: p.Title}
	}
	if p.Title == "" || p.URL == "" {
		return NormalizedRecord{}, &Rejection{Reason: MissingIdentity, Source: p.Source, Title: p.Title}
	}

	return NormalizedRecord{
		Source:        p.Source,
		Retailer:      string(p.Source),
		Title:         p.Title,
		URL:           p.URL,
		ProductID:     p.ProductID,
		CapacityBytes: *p.CapacityBytes,
		PriceCents:    *p.PriceCents,
		PricePerTB:    pricePerTB(*p.PriceCents, *p.CapacityBytes),
	}, nil
}

// pricePerTB computes the sort key with integer arithmetic only, avoiding
// float rounding drift across mixed-magnitude inputs.
func pricePerTB(priceCents, capacityBytes int64) int64 {
	num := priceCents * bytesPerTB
	whole := num / capacityBytes
	frac := (num % capacityBytes) * pricePerTBScale / capacityBytes
	return whole*pricePerTBScale + frac
}

// CentsPerTB returns the metric rounded to whole cents per terabyte
func (r NormalizedRecord) CentsPerTB() int64 {
	return (r.PricePerTB + pricePerTBScale/2) / pricePerTBScale
}
