package query

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/opsboard/opsboard/internal/model"
)

// newCollator builds the Spanish collator used for alphabetical orderings.
// The sheets are es-CL content; byte-order comparison would misplace
// accented descriptions.
func newCollator() *collate.Collator {
	return collate.New(language.Spanish)
}

// SortQuotations returns a new, stably sorted slice; the input is never
// reordered. Ties keep their original relative order.
func SortQuotations(rows []model.Quotation, spec model.QuotationSort) []model.Quotation {
	out := append([]model.Quotation(nil), rows...)
	col := newCollator()

	sort.SliceStable(out, func(i, j int) bool {
		var cmp int
		switch spec.Field {
		case model.QuotationSortPrice:
			switch {
			case out[i].UnitPrice < out[j].UnitPrice:
				cmp = -1
			case out[i].UnitPrice > out[j].UnitPrice:
				cmp = 1
			}
		case model.QuotationSortAlphabetical:
			cmp = col.CompareString(
				strings.ToLower(out[i].Description),
				strings.ToLower(out[j].Description),
			)
		}
		if spec.Direction == model.SortDesc {
			cmp = -cmp
		}
		return cmp < 0
	})
	return out
}

// SortEvents returns a new, stably sorted slice. Date ordering compares
// parsed detection dates; events without a parseable date sort after all
// dated ones regardless of direction. The prioridad and estado fields are
// shims over card type and author (the schema has no such columns).
func SortEvents(rows []model.Event, spec model.EventSort) []model.Event {
	out := append([]model.Event(nil), rows...)
	col := newCollator()

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]

		if spec.Field == model.EventSortDate {
			if a.DetectedAt.Valid != b.DetectedAt.Valid {
				return a.DetectedAt.Valid // undated always last
			}
			if !a.DetectedAt.Valid {
				return false
			}
			var cmp int
			switch {
			case a.DetectedAt.Time.Before(b.DetectedAt.Time):
				cmp = -1
			case a.DetectedAt.Time.After(b.DetectedAt.Time):
				cmp = 1
			}
			if spec.Direction == model.SortDesc {
				cmp = -cmp
			}
			return cmp < 0
		}

		var av, bv string
		switch spec.Field {
		case model.EventSortType, model.EventSortPriority:
			av, bv = a.CardType, b.CardType
		case model.EventSortAuthor, model.EventSortStatus:
			av, bv = a.Author, b.Author
		default:
			return false
		}
		cmp := col.CompareString(av, bv)
		if spec.Direction == model.SortDesc {
			cmp = -cmp
		}
		return cmp < 0
	})
	return out
}
