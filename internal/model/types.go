package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Record represents a single parsed spreadsheet row as a mapping from
// column name to cell value. All cells are strings; numeric and date
// interpretation happens at a defined boundary, not at parse time.
type Record map[string]string

// Table is an ordered set of records plus the header that defines their
// key set. Header order is irrelevant for lookups but preserved for export.
type Table struct {
	Header  []string
	Records []Record
}

// JoinedText concatenates the record's values in header order, separated by
// single spaces. Free-text search matches against this blob, so a record
// matches when the term appears anywhere in any column.
func (r Record) JoinedText(header []string) string {
	vals := make([]string, len(header))
	for i, col := range header {
		vals[i] = r[col]
	}
	return strings.Join(vals, " ")
}

// Pipeline identifies one of the two ingestion pipelines.
type Pipeline string

const (
	PipelineQuotations Pipeline = "quotations"
	PipelineEvents     Pipeline = "events"
)

// Source reports where a dataset came from.
type Source string

const (
	SourceRemote   Source = "remote"
	SourceFallback Source = "fallback"
)

// Dataset is one immutable snapshot of a fully loaded pipeline. It is
// replaced wholesale on reload; nothing mutates it in place.
type Dataset struct {
	ID       uuid.UUID
	Pipeline Pipeline
	Source   Source
	LoadedAt time.Time
	Table    Table
}

// Placeholder cell values used by the sheets to mean "no value". They are
// retained in records but excluded from facet and top-N aggregations.
const (
	PlaceholderUnspecified   = "No especificado"
	PlaceholderNotApplicable = "No aplica"
)

// SortDirection flips the comparator sign.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// QuotationSortField enumerates the supported quotation orderings.
type QuotationSortField string

const (
	QuotationSortPrice        QuotationSortField = "price"
	QuotationSortAlphabetical QuotationSortField = "alphabetical"
)

// EventSortField enumerates the supported event orderings. Prioridad and
// estado are compatibility shims: the sheet schema has no priority or
// status column, so they order by card type and author respectively.
type EventSortField string

const (
	EventSortDate     EventSortField = "fecha"
	EventSortType     EventSortField = "tipo"
	EventSortAuthor   EventSortField = "autor"
	EventSortPriority EventSortField = "prioridad"
	EventSortStatus   EventSortField = "estado"
)

// QuotationSort is a (field, direction) ordering for quotations.
type QuotationSort struct {
	Field     QuotationSortField
	Direction SortDirection
}

// EventSort is a (field, direction) ordering for events.
type EventSort struct {
	Field     EventSortField
	Direction SortDirection
}

// QuotationFilter narrows a quotation set. Absent (zero) fields impose no
// constraint; present fields combine with logical AND.
type QuotationFilter struct {
	Search        string // case-insensitive substring over all columns
	Provider      string
	Brand         string
	ComponentType string
	Model         string
	Diameter      string
	ItemType      string
	Year          string // compared against the dash-split date column
	PriceRange    string // "min-max" or "min+", inclusive
}

// EventFilter narrows an event set the same way.
type EventFilter struct {
	Search    string
	EventType string
	Location  string
	Author    string
	Tag       string
	From      time.Time // zero = open lower bound
	To        time.Time // zero = open upper bound
}

// TopCount is one entry of a top-N ranking.
type TopCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// PriceBucket is one fixed histogram bucket with its record count.
type PriceBucket struct {
	Label string  `json:"label"`
	Max   float64 `json:"max"` // inclusive upper bound; 0 means unbounded
	Count int     `json:"count"`
}

// Statistics summarizes a quotation set. Average, min and max consider only
// records with a positive unit price; total value sums the total-price
// column over all records. The asymmetry is deliberate source behavior.
type Statistics struct {
	TotalItems     int     `json:"total_items"`
	TotalProviders int     `json:"total_providers"`
	AvgPrice       float64 `json:"avg_price"`
	TotalValue     float64 `json:"total_value"`
	MaxPrice       float64 `json:"max_price"`
	MinPrice       float64 `json:"min_price"`
}

// EventStatistics summarizes an event set. The status split and cost
// figures are derived, not read from the sheet: the schema carries no
// status or cost columns, so the original dashboard reports a fixed
// 60/20/remainder split and a flat per-event cost. Kept as documented.
type EventStatistics struct {
	TotalEvents       int     `json:"total_events"`
	CompletedEvents   int     `json:"completed_events"`
	PendingEvents     int     `json:"pending_events"`
	InProgressEvents  int     `json:"in_progress_events"`
	AvgCompletionTime float64 `json:"avg_completion_time"`
	TotalCost         float64 `json:"total_cost"`
}
