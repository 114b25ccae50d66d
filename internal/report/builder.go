package report

import (
	"fmt"
	"strings"
)

// Row is one ranked listing shaped for the report template and its
// client-side sort/filter script.
type Row struct {
	Rank       int    `json:"rank"`
	Retailer   string `json:"retailer"`
	Title      string `json:"title"`
	URL        string `json:"url"`
	ProductID  string `json:"product_id,omitempty"`
	CapacityTB string `json:"capacity_tb"`
	Price      string `json:"price"`
	PricePerTB string `json:"price_per_tb"`
}

// ReportData is the serializable structure handed to the rendering layer:
// the ranked rows plus the per-source statuses, so the report can show
// "3/4 sources succeeded" without re-deriving it.
type ReportData struct {
	Rows     []Row          `json:"rows"`
	Statuses []SourceStatus `json:"statuses"`
}

// SourcesOK returns how many sources completed without a fatal error
func (d ReportData) SourcesOK() int {
	n := 0
	for _, s := range d.Statuses {
		if s.OK {
			n++
		}
	}
	return n
}

// Build shapes an aggregated dataset for the rendering collaborator. The
// dataset's ordering is preserved; normalized records are never mutated.
func Build(ds ReportDataset) ReportData {
	data := ReportData{
		Rows:     make([]Row, 0, len(ds.Records)),
		Statuses: append([]SourceStatus{}, ds.Statuses...),
	}

	for i, rec := range ds.Records {
		data.Rows = append(data.Rows, Row{
			Rank:       i + 1,
			Retailer:   rec.Retailer,
			Title:      rec.Title,
			URL:        rec.URL,
			ProductID:  rec.ProductID,
			CapacityTB: formatCapacityTB(rec.CapacityBytes),
			Price:      formatCents(rec.PriceCents),
			PricePerTB: formatCents(rec.CentsPerTB()),
		})
	}
	return data
}

// formatCents renders integer cents as a dollar amount with two decimals
func formatCents(cents int64) string {
	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}

// formatCapacityTB renders capacity in decimal terabytes with up to two
// decimals, trailing zeros trimmed ("4", "0.51", "1.5").
func formatCapacityTB(bytes int64) string {
	hundredths := (bytes*100 + 500_000_000_000) / 1_000_000_000_000
	s := fmt.Sprintf("%d.%02d", hundredths/100, hundredths%100)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
