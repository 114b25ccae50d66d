// Package worker runs the scraping pipeline: transport feeds raw pages to
// the site adapters, extracted records are normalized, and everything is
// merged into one report dataset.
package worker

import (
	"time"

	"context"

	"github.com/PuerkitoBio/goquery"

	"hddwatch/pricereport/helpers"
	"hddwatch/pricereport/internal/adapter"
	"hddwatch/pricereport/internal/record"
	"hddwatch/pricereport/internal/report"
	"hddwatch/pricereport/logger"
	"hddwatch/pricereport/pkg/errors"
	"hddwatch/pricereport/services/transport"
)

// SourceJob couples a retailer adapter with the transport that supplies its
// raw pages and the page budget for that retailer.
type SourceJob struct {
	Adapter  adapter.Adapter
	Fetcher  transport.PageFetcher
	MaxPages int
}

// Pipeline executes all source jobs sequentially. Adapters are safe to run
// in parallel, but the transport is the bottleneck, so one retailer at a
// time keeps the request pacing honest.
type Pipeline struct {
	jobs     []SourceJob
	minDelay time.Duration
	maxDelay time.Duration
}

// NewPipeline creates a pipeline over the given source jobs
func NewPipeline(jobs []SourceJob, minDelay, maxDelay time.Duration) *Pipeline {
	return &Pipeline{
		jobs:     jobs,
		minDelay: minDelay,
		maxDelay: maxDelay,
	}
}

// Run executes every source job and returns the built report data. A source
// failing never aborts the run; the worst outcome is an empty dataset with
// every status not OK, which is still a successful run.
func (p *Pipeline) Run(ctx context.Context) report.ReportData {
	log := logger.ForPipeline()
	start := time.Now()

	outcomes := make([]report.SourceOutcome, 0, len(p.jobs))
	for _, job := range p.jobs {
		outcomes = append(outcomes, p.runJob(ctx, job))
	}

	ds := report.Aggregate(outcomes)
	data := report.Build(ds)

	log.Info().
		Int("records", len(data.Rows)).
		Int("sources_ok", data.SourcesOK()).
		Int("sources", len(data.Statuses)).
		Dur("elapsed", time.Since(start)).
		Msg("Pipeline run complete")
	return data
}

// runJob extracts and normalizes all listings for one retailer. Failures on
// the first page mark the source as failed; failure on a later page keeps
// what was already collected.
func (p *Pipeline) runJob(ctx context.Context, job SourceJob) report.SourceOutcome {
	source := job.Adapter.Source()
	log := logger.ForSource(string(source))

	outcome := report.SourceOutcome{Source: source}
	rejected := 0

	maxPages := job.MaxPages
	if maxPages < 1 {
		maxPages = 1
	}

	for page := 1; page <= maxPages; page++ {
		if page > 1 {
			helpers.PoliteDelay(p.minDelay, p.maxDelay)
		}

		body, err := job.Fetcher.FetchPage(ctx, page)
		if err != nil {
			if page == 1 {
				outcome.Err = err
			} else {
				log.Warn().Err(err).Int("page", page).Msg("Stopping pagination")
			}
			break
		}
		if body == nil {
			break
		}

		doc, err := goquery.NewDocumentFromReader(body)
		if err != nil {
			if page == 1 {
				outcome.Err = errors.NewSource(string(source), "HTML parse failed: "+err.Error())
			}
			break
		}

		if keyword, blocked := helpers.DetectBlock(doc); blocked {
			if page == 1 {
				outcome.Err = errors.NewSource(string(source), "blocking page detected: "+keyword)
			} else {
				log.Warn().Str("keyword", keyword).Int("page", page).Msg("Block detected, stopping pagination")
			}
			break
		}

		partials, err := job.Adapter.ExtractListings(doc)
		if err != nil {
			if page == 1 {
				outcome.Err = err
			}
			break
		}
		if len(partials) == 0 {
			// End of results
			break
		}

		for _, partial := range partials {
			rec, err := record.Normalize(partial)
			if err != nil {
				rejected++
				log.Debug().Err(err).Msg("Record rejected")
				continue
			}
			outcome.Records = append(outcome.Records, rec)
		}
	}

	log.Info().
		Int("records", len(outcome.Records)).
		Int("rejected", rejected).
		Bool("ok", outcome.Err == nil).
		Msg("Source finished")
	return outcome
}
