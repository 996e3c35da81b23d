// Package sample provides the embedded fallback datasets substituted when a
// remote sheet is unreachable. The fixtures go through the same parser as
// remote data so the fallback path never diverges from the real one.
package sample

import (
	_ "embed"
	"fmt"

	"github.com/opsboard/opsboard/internal/csvparse"
	"github.com/opsboard/opsboard/internal/model"
)

//go:embed data/quotations.csv
var quotationsCSV string

//go:embed data/events.csv
var eventsCSV string

// Quotations returns the fallback quotation table.
func Quotations() (model.Table, error) {
	t, err := csvparse.Parse(quotationsCSV)
	if err != nil {
		return model.Table{}, fmt.Errorf("sample: quotations fixture: %w", err)
	}
	return t, nil
}

// Events returns the fallback maintenance-event table.
func Events() (model.Table, error) {
	t, err := csvparse.Parse(eventsCSV)
	if err != nil {
		return model.Table{}, fmt.Errorf("sample: events fixture: %w", err)
	}
	return t, nil
}

// Table returns the fallback table for the given pipeline.
func Table(p model.Pipeline) (model.Table, error) {
	switch p {
	case model.PipelineQuotations:
		return Quotations()
	case model.PipelineEvents:
		return Events()
	default:
		return model.Table{}, fmt.Errorf("sample: unknown pipeline %q", p)
	}
}
