package httpserver

import (
	"fmt"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/opsboard/opsboard/internal/export"
	"github.com/opsboard/opsboard/internal/media"
	"github.com/opsboard/opsboard/internal/model"
	"github.com/opsboard/opsboard/internal/query"
	"github.com/opsboard/opsboard/internal/store"
)

const topLimit = 5

// snapshotOr503 fetches the pipeline's current snapshot, answering 503
// when no load has completed yet.
func snapshotOr503(c *gin.Context, p *store.Pipeline) (*store.Snapshot, bool) {
	snap := p.Snapshot()
	if snap == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "dataset not loaded yet"})
		return nil, false
	}
	return snap, true
}

func datasetMeta(snap *store.Snapshot) gin.H {
	return gin.H{
		"id":        snap.Dataset.ID.String(),
		"source":    snap.Dataset.Source,
		"loaded_at": snap.Dataset.LoadedAt,
	}
}

// quotationFilter reads the quotation filter fields from query params.
// Absent params leave the corresponding field unconstrained.
func quotationFilter(c *gin.Context) model.QuotationFilter {
	return model.QuotationFilter{
		Search:        c.Query("q"),
		Provider:      c.Query("provider"),
		Brand:         c.Query("brand"),
		ComponentType: c.Query("type"),
		Model:         c.Query("model"),
		Diameter:      c.Query("diameter"),
		ItemType:      c.Query("item_type"),
		Year:          c.Query("year"),
		PriceRange:    c.Query("price_range"),
	}
}

func sortDirection(c *gin.Context) model.SortDirection {
	if c.Query("order") == string(model.SortDesc) {
		return model.SortDesc
	}
	return model.SortAsc
}

// quotationView applies the request's filter and sort to the snapshot's
// typed rows.
func quotationView(c *gin.Context, snap *store.Snapshot) []model.Quotation {
	rows := query.FilterQuotations(snap.Quotations, quotationFilter(c))
	if field := c.Query("sort"); field != "" {
		rows = query.SortQuotations(rows, model.QuotationSort{
			Field:     model.QuotationSortField(field),
			Direction: sortDirection(c),
		})
	}
	return rows
}

func quotationRecords(rows []model.Quotation) []model.Record {
	recs := make([]model.Record, len(rows))
	for i, q := range rows {
		recs[i] = q.Row
	}
	return recs
}

func (s *Server) handleQuotations(c *gin.Context) {
	snap, ok := snapshotOr503(c, s.store.Quotations)
	if !ok {
		return
	}
	rows := quotationView(c, snap)

	c.JSON(http.StatusOK, gin.H{
		"dataset": datasetMeta(snap),
		"total":   len(snap.Quotations),
		"count":   len(rows),
		"rows":    quotationRecords(rows),
	})
}

func (s *Server) handleQuotationFacets(c *gin.Context) {
	snap, ok := snapshotOr503(c, s.store.Quotations)
	if !ok {
		return
	}
	recs := snap.Dataset.Table.Records

	years := make(map[string]struct{})
	for _, q := range snap.Quotations {
		if q.Date == "" {
			continue
		}
		if y := model.Year(q.Date); y != "" {
			years[y] = struct{}{}
		}
	}
	yearList := make([]string, 0, len(years))
	for y := range years {
		yearList = append(yearList, y)
	}
	sort.Strings(yearList)

	c.JSON(http.StatusOK, gin.H{
		"dataset":    datasetMeta(snap),
		"providers":  query.UniqueValues(recs, model.ColProvider),
		"brands":     query.UniqueValues(recs, model.ColBrand),
		"types":      query.UniqueValues(recs, model.ColComponentType),
		"models":     query.UniqueValues(recs, model.ColModel),
		"diameters":  query.UniqueValues(recs, model.ColDiameter),
		"item_types": query.UniqueValues(recs, model.ColItemType),
		"years":      yearList,
	})
}

func (s *Server) handleQuotationStats(c *gin.Context) {
	snap, ok := snapshotOr503(c, s.store.Quotations)
	if !ok {
		return
	}
	rows := query.FilterQuotations(snap.Quotations, quotationFilter(c))
	recs := quotationRecords(rows)

	c.JSON(http.StatusOK, gin.H{
		"dataset":       datasetMeta(snap),
		"statistics":    query.Statistics(rows),
		"top_providers": query.TopProviders(recs, topLimit),
		"top_brands":    query.TopBrands(recs, topLimit),
		"histogram":     query.PriceHistogram(rows),
	})
}

func (s *Server) handleQuotationExport(c *gin.Context) {
	snap, ok := snapshotOr503(c, s.store.Quotations)
	if !ok {
		return
	}
	rows := quotationView(c, snap)
	writeCSV(c, model.PipelineQuotations, snap.Dataset.Table.Header, quotationRecords(rows))
}

// eventFilter reads the event filter fields from query params. Date bounds
// use the ISO form date inputs submit.
func eventFilter(c *gin.Context) model.EventFilter {
	f := model.EventFilter{
		Search:    c.Query("q"),
		EventType: c.Query("type"),
		Location:  c.Query("location"),
		Author:    c.Query("author"),
		Tag:       c.Query("tag"),
	}
	if v := c.Query("from"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			f.From = t
		}
	}
	if v := c.Query("to"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			f.To = t
		}
	}
	return f
}

func eventView(c *gin.Context, snap *store.Snapshot) []model.Event {
	rows := query.FilterEvents(snap.Events, eventFilter(c))
	if field := c.Query("sort"); field != "" {
		rows = query.SortEvents(rows, model.EventSort{
			Field:     model.EventSortField(field),
			Direction: sortDirection(c),
		})
	}
	return rows
}

func eventRecords(rows []model.Event) []model.Record {
	recs := make([]model.Record, len(rows))
	for i, ev := range rows {
		recs[i] = ev.Row
	}
	return recs
}

func (s *Server) handleEvents(c *gin.Context) {
	snap, ok := snapshotOr503(c, s.store.Events)
	if !ok {
		return
	}
	rows := eventView(c, snap)

	views := make([]gin.H, len(rows))
	for i, ev := range rows {
		records, solutions := media.EventMedia(ev)
		views[i] = gin.H{
			"record": ev.Row,
			"media": gin.H{
				"records":   records,
				"solutions": solutions,
			},
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"dataset": datasetMeta(snap),
		"total":   len(snap.Events),
		"count":   len(rows),
		"rows":    views,
	})
}

func (s *Server) handleEventFacets(c *gin.Context) {
	snap, ok := snapshotOr503(c, s.store.Events)
	if !ok {
		return
	}
	recs := snap.Dataset.Table.Records

	c.JSON(http.StatusOK, gin.H{
		"dataset":   datasetMeta(snap),
		"types":     query.UniqueValues(recs, model.ColCardType),
		"locations": query.UniqueValues(recs, model.ColLocation),
		"authors":   query.UniqueValues(recs, model.ColAuthor),
		"tags":      query.UniqueValues(recs, model.ColEquipmentTag),
	})
}

func (s *Server) handleEventStats(c *gin.Context) {
	snap, ok := snapshotOr503(c, s.store.Events)
	if !ok {
		return
	}
	rows := query.FilterEvents(snap.Events, eventFilter(c))

	c.JSON(http.StatusOK, gin.H{
		"dataset":    datasetMeta(snap),
		"statistics": query.EventStatistics(rows),
	})
}

func (s *Server) handleEventExport(c *gin.Context) {
	snap, ok := snapshotOr503(c, s.store.Events)
	if !ok {
		return
	}
	rows := eventView(c, snap)
	writeCSV(c, model.PipelineEvents, snap.Dataset.Table.Header, eventRecords(rows))
}

func writeCSV(c *gin.Context, p model.Pipeline, header []string, records []model.Record) {
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename(p)))
	if err := export.Write(c.Writer, header, records); err != nil {
		c.Status(http.StatusInternalServerError)
	}
}
