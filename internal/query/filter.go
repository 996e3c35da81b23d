// Package query is the pure query engine over loaded datasets: filtering,
// sorting and derived aggregates. Every function takes its inputs
// explicitly and never mutates them, so repeated re-computation over the
// same snapshot needs no coordination.
package query

import (
	"strconv"
	"strings"

	"github.com/opsboard/opsboard/internal/model"
)

// FilterQuotations returns the subset of rows passing every present filter
// field, in their original order.
func FilterQuotations(rows []model.Quotation, f model.QuotationFilter) []model.Quotation {
	out := make([]model.Quotation, 0, len(rows))
	for _, q := range rows {
		if matchQuotation(q, f) {
			out = append(out, q)
		}
	}
	return out
}

func matchQuotation(q model.Quotation, f model.QuotationFilter) bool {
	if f.Search != "" && !strings.Contains(q.SearchText, strings.ToLower(f.Search)) {
		return false
	}
	if f.Provider != "" && q.Provider != f.Provider {
		return false
	}
	if f.Brand != "" && q.Brand != f.Brand {
		return false
	}
	if f.ComponentType != "" && q.ComponentType != f.ComponentType {
		return false
	}
	if f.Model != "" && q.Model != f.Model {
		return false
	}
	if f.Diameter != "" && q.Diameter != f.Diameter {
		return false
	}
	if f.ItemType != "" && q.ItemType != f.ItemType {
		return false
	}
	if f.Year != "" {
		if q.Date == "" || model.Year(q.Date) != f.Year {
			return false
		}
	}
	if f.PriceRange != "" {
		if min, max, open, ok := parsePriceRange(f.PriceRange); ok {
			if q.UnitPrice < min {
				return false
			}
			if !open && q.UnitPrice > max {
				return false
			}
		}
	}
	return true
}

// parsePriceRange interprets "min-max" and "min+" range strings. Both
// bounds are inclusive; open reports the "min+" form. A string in neither
// form imposes no constraint.
func parsePriceRange(s string) (min, max float64, open, ok bool) {
	if v, found := strings.CutSuffix(s, "+"); found {
		min, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, 0, false, false
		}
		return min, 0, true, true
	}
	lo, hi, found := strings.Cut(s, "-")
	if !found {
		return 0, 0, false, false
	}
	minV, err1 := strconv.ParseFloat(lo, 64)
	maxV, err2 := strconv.ParseFloat(hi, 64)
	if err1 != nil || err2 != nil {
		return 0, 0, false, false
	}
	return minV, maxV, false, true
}

// FilterEvents returns the subset of events passing every present filter
// field, in their original order. Records whose detection date does not
// parse are excluded whenever a date bound is set.
func FilterEvents(rows []model.Event, f model.EventFilter) []model.Event {
	out := make([]model.Event, 0, len(rows))
	for _, ev := range rows {
		if matchEvent(ev, f) {
			out = append(out, ev)
		}
	}
	return out
}

func matchEvent(ev model.Event, f model.EventFilter) bool {
	if f.Search != "" && !strings.Contains(ev.SearchText, strings.ToLower(f.Search)) {
		return false
	}
	if f.EventType != "" && ev.CardType != f.EventType {
		return false
	}
	if f.Location != "" && ev.Location != f.Location {
		return false
	}
	if f.Author != "" && ev.Author != f.Author {
		return false
	}
	if f.Tag != "" && ev.EquipmentTag != f.Tag {
		return false
	}
	if !f.From.IsZero() || !f.To.IsZero() {
		if !ev.DetectedAt.Valid {
			return false
		}
		if !f.From.IsZero() && ev.DetectedAt.Time.Before(f.From) {
			return false
		}
		if !f.To.IsZero() && ev.DetectedAt.Time.After(f.To) {
			return false
		}
	}
	return true
}
