// Package export serializes a filtered/sorted view back to CSV in the
// source's own dialect: comma separated, every field wrapped in double
// quotes, header order preserved. Output parses back to the same records
// through csvparse as long as cell values contain no quote characters,
// which the sheets never do.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/opsboard/opsboard/internal/model"
)

// Default download filenames per pipeline.
const (
	QuotationsFilename = "cotizaciones_filtradas.csv"
	EventsFilename     = "eventos_filtrados.csv"
)

// Filename returns the default download name for a pipeline.
func Filename(p model.Pipeline) string {
	if p == model.PipelineEvents {
		return EventsFilename
	}
	return QuotationsFilename
}

// Write serializes records to w using the given header order.
func Write(w io.Writer, header []string, records []model.Record) error {
	var b strings.Builder

	b.WriteString(strings.Join(header, ","))
	b.WriteByte('\n')

	for _, rec := range records {
		for i, col := range header {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteByte('"')
			b.WriteString(rec[col])
			b.WriteByte('"')
		}
		b.WriteByte('\n')
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("export: write: %w", err)
	}
	return nil
}

// Text serializes records to a string.
func Text(header []string, records []model.Record) string {
	var b strings.Builder
	_ = Write(&b, header, records)
	return b.String()
}
