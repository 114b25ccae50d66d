// Package report merges per-source extraction outcomes into one ordered
// dataset and shapes it for the rendering layer.
package report

import (
	"sort"

	"hddwatch/pricereport/internal/adapter"
	"hddwatch/pricereport/internal/record"
)

// SourceStatus is the outcome of one adapter run, independent of individual
// record outcomes. OK with zero records means "ran fine, found nothing";
// not OK means the page could not be worked with at all.
type SourceStatus struct {
	Source      adapter.Source `json:"source"`
	OK          bool           `json:"ok"`
	RecordCount int            `json:"record_count"`
	Error       string         `json:"error,omitempty"`
}

// SourceOutcome carries one adapter run into aggregation: its normalized
// records plus the fatal error, if any.
type SourceOutcome struct {
	Source  adapter.Source
	Records []record.NormalizedRecord
	Err     error
}

// ReportDataset is the merged result of one pipeline run. Records are
// ordered by price per TB ascending, ties broken by retailer then title;
// statuses are ordered by source name. Immutable once built.
type ReportDataset struct {
	Records  []record.NormalizedRecord
	Statuses []SourceStatus
}

// Aggregate merges per-source outcomes into one dataset. One source failing
// never suppresses records from the others, and the result is identical for
// any permutation of the outcomes.
func Aggregate(outcomes []SourceOutcome) ReportDataset {
	ds := ReportDataset{
		Records:  []record.NormalizedRecord{},
		Statuses: []SourceStatus{},
	}

	for _, out := range outcomes {
		status := SourceStatus{
			Source:      out.Source,
			OK:          out.Err == nil,
			RecordCount: len(out.Records),
		}
		if out.Err != nil {
			status.Error = out.Err.Error()
		}
		ds.Statuses = append(ds.Statuses, status)
		ds.Records = append(ds.Records, out.Records...)
	}

	sort.Slice(ds.Statuses, func(i, j int) bool {
		return ds.Statuses[i].Source < ds.Statuses[j].Source
	})
	sort.Slice(ds.Records, func(i, j int) bool {
		return lessRecord(ds.Records[i], ds.Records[j])
	})
	return ds
}

// lessRecord is the report ordering: price per TB ascending, then retailer,
// then title. The remaining fields keep the order total so aggregation does
// not depend on which adapter ran first.
func lessRecord(a, b record.NormalizedRecord) bool {
	if a.PricePerTB != b.PricePerTB {
		return a.PricePerTB < b.PricePerTB
	}
	if a.Retailer != b.Retailer {
		return a.Retailer < b.Retailer
	}
	if a.Title != b.Title {
		return a.Title < b.Title
	}
	if a.ProductID != b.ProductID {
		return a.ProductID < b.ProductID
	}
	return a.URL < b.URL
}
