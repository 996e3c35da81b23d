package query

import (
	"sort"

	"github.com/opsboard/opsboard/internal/model"
)

// UniqueValues returns the sorted distinct non-empty values of a column,
// excluding the "No especificado" placeholder. Case-sensitive.
func UniqueValues(records []model.Record, column string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, rec := range records {
		v := rec[column]
		if v == "" || v == model.PlaceholderUnspecified {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// TopN ranks the most frequent non-empty values of a column, descending by
// count and truncated to limit. Ties keep first-encountered order. Values
// listed in exclude are skipped entirely.
func TopN(records []model.Record, column string, limit int, exclude ...string) []model.TopCount {
	skip := make(map[string]struct{}, len(exclude)+1)
	skip[""] = struct{}{}
	for _, v := range exclude {
		skip[v] = struct{}{}
	}

	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	var order []string
	for _, rec := range records {
		v := rec[column]
		if _, drop := skip[v]; drop {
			continue
		}
		if _, ok := counts[v]; !ok {
			firstSeen[v] = len(order)
			order = append(order, v)
		}
		counts[v]++
	}

	ranked := make([]model.TopCount, 0, len(order))
	for _, v := range order {
		ranked = append(ranked, model.TopCount{Value: v, Count: counts[v]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return firstSeen[ranked[i].Value] < firstSeen[ranked[j].Value]
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// TopProviders ranks providers by line-item count.
func TopProviders(records []model.Record, limit int) []model.TopCount {
	return TopN(records, model.ColProvider, limit)
}

// TopBrands ranks brands by line-item count, skipping the placeholder.
func TopBrands(records []model.Record, limit int) []model.TopCount {
	return TopN(records, model.ColBrand, limit, model.PlaceholderUnspecified)
}

// priceBucketBounds are the fixed histogram boundaries, scanned in
// ascending order; a price lands in the first bucket whose bound it does
// not exceed, and anything above the last bound lands in the open bucket.
var priceBucketBounds = []struct {
	label string
	max   float64
}{
	{"0-10000", 10_000},
	{"10000-50000", 50_000},
	{"50000-100000", 100_000},
	{"100000-500000", 500_000},
}

const openBucketLabel = "500000+"

// PriceHistogram counts quotations per fixed unit-price bucket. Every row
// lands in exactly one bucket, so the bucket counts always sum to the row
// count.
func PriceHistogram(rows []model.Quotation) []model.PriceBucket {
	buckets := make([]model.PriceBucket, 0, len(priceBucketBounds)+1)
	for _, b := range priceBucketBounds {
		buckets = append(buckets, model.PriceBucket{Label: b.label, Max: b.max})
	}
	buckets = append(buckets, model.PriceBucket{Label: openBucketLabel})

	for _, q := range rows {
		placed := false
		for i, b := range priceBucketBounds {
			if q.UnitPrice <= b.max {
				buckets[i].Count++
				placed = true
				break
			}
		}
		if !placed {
			buckets[len(buckets)-1].Count++
		}
	}
	return buckets
}

// Statistics summarizes a quotation set. Average, min and max consider only
// rows with a positive unit price; total value sums the total-price column
// over all rows, zero and malformed cells included. That asymmetry matches
// the sheet's established reporting.
func Statistics(rows []model.Quotation) model.Statistics {
	stats := model.Statistics{TotalItems: len(rows)}

	providers := make(map[string]struct{})
	var sum float64
	var positive int
	for _, q := range rows {
		if q.Provider != "" {
			providers[q.Provider] = struct{}{}
		}
		stats.TotalValue += q.TotalPrice

		if q.UnitPrice <= 0 {
			continue
		}
		positive++
		sum += q.UnitPrice
		if stats.MinPrice == 0 || q.UnitPrice < stats.MinPrice {
			stats.MinPrice = q.UnitPrice
		}
		if q.UnitPrice > stats.MaxPrice {
			stats.MaxPrice = q.UnitPrice
		}
	}
	stats.TotalProviders = len(providers)
	if positive > 0 {
		stats.AvgPrice = sum / float64(positive)
	}
	return stats
}

// Derived event-status proportions. The sheet has no status column; the
// dashboard has always reported a fixed split and flat cost per event.
const (
	completedShare          = 0.6
	pendingShare            = 0.2
	simulatedCompletionTime = 4.5
	simulatedEventCost      = 150_000
)

// EventStatistics summarizes an event set, including the documented
// simulated status split and cost figures.
func EventStatistics(rows []model.Event) model.EventStatistics {
	n := len(rows)
	completed := int(float64(n) * completedShare)
	pending := int(float64(n) * pendingShare)
	return model.EventStatistics{
		TotalEvents:       n,
		CompletedEvents:   completed,
		PendingEvents:     pending,
		InProgressEvents:  n - completed - pending,
		AvgCompletionTime: simulatedCompletionTime,
		TotalCost:         float64(n) * simulatedEventCost,
	}
}
