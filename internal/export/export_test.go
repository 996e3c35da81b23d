package export

import (
	"strings"
	"testing"

	"github.com/opsboard/opsboard/internal/csvparse"
	"github.com/opsboard/opsboard/internal/model"
)

func TestWrite_QuoteWrapsEveryField(t *testing.T) {
	header := []string{"Name", "Price"}
	records := []model.Record{{"Name": "Acme, Inc.", "Price": "100"}}

	got := Text(header, records)
	want := "Name,Price\n\"Acme, Inc.\",\"100\"\n"
	if got != want {
		t.Fatalf("Text = %q, want %q", got, want)
	}
}

func TestWrite_MissingColumnsEmitEmpty(t *testing.T) {
	header := []string{"A", "B"}
	records := []model.Record{{"A": "1"}}

	got := Text(header, records)
	if !strings.Contains(got, "\"1\",\"\"") {
		t.Fatalf("Text = %q, want empty quoted cell for missing column", got)
	}
}

func TestRoundTrip(t *testing.T) {
	raw := strings.Join([]string{
		"Name,Price,Qty",
		"\"Acme, Inc.\",100,5",
		"Bolt,288,15",
		"\"PG 13,5 y G1\",595546,1",
	}, "\n")

	table, err := csvparse.Parse(raw)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	reparsed, err := csvparse.Parse(Text(table.Header, table.Records))
	if err != nil {
		t.Fatalf("reparse: %v", err)
	}

	if len(reparsed.Records) != len(table.Records) {
		t.Fatalf("round trip lost records: %d -> %d", len(table.Records), len(reparsed.Records))
	}
	for i, col := range table.Header {
		if reparsed.Header[i] != col {
			t.Errorf("header[%d] = %q, want %q", i, reparsed.Header[i], col)
		}
	}
	for i, rec := range table.Records {
		for _, col := range table.Header {
			if reparsed.Records[i][col] != rec[col] {
				t.Errorf("record %d %q = %q, want %q", i, col, reparsed.Records[i][col], rec[col])
			}
		}
	}
}

func TestFilename(t *testing.T) {
	if Filename(model.PipelineQuotations) != QuotationsFilename {
		t.Error("wrong quotations filename")
	}
	if Filename(model.PipelineEvents) != EventsFilename {
		t.Error("wrong events filename")
	}
}
