// Package render is the templating collaborator: it embeds the built report
// data into a single static HTML artifact. The pipeline core hands it a
// ReportData and knows nothing about files or markup.
package render

import (
	_ "embed"
	"encoding/json"
	"html/template"
	"os"
	"path/filepath"
	"time"

	"hddwatch/pricereport/internal/report"
)

//go:embed report.gohtml
var reportTemplate string

var tmpl = template.Must(template.New("report").Parse(reportTemplate))

// pageData is the template context for one rendered report
type pageData struct {
	LastUpdated string
	Rows        []report.Row
	Statuses    []report.SourceStatus
	SourcesOK   int
	AnyFailed   bool
	RowsJSON    template.JS
}

// WriteReport renders the static report and writes it to path, creating the
// parent directory if needed.
func WriteReport(path string, data report.ReportData, generatedAt time.Time) error {
	rowsJSON, err := json.Marshal(data.Rows)
	if err != nil {
		return err
	}

	page := pageData{
		LastUpdated: generatedAt.Format("2006-01-02 15:04:05 MST"),
		Rows:        data.Rows,
		Statuses:    data.Statuses,
		SourcesOK:   data.SourcesOK(),
		AnyFailed:   data.SourcesOK() < len(data.Statuses),
		RowsJSON:    template.JS(rowsJSON),
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return tmpl.Execute(f, page)
}
