package sample

import (
	"testing"

	"github.com/opsboard/opsboard/internal/model"
)

func TestQuotations(t *testing.T) {
	table, err := Quotations()
	if err != nil {
		t.Fatalf("Quotations: %v", err)
	}
	if len(table.Records) != 5 {
		t.Fatalf("got %d records, want 5", len(table.Records))
	}
	if len(table.Header) != 15 {
		t.Fatalf("got %d columns, want 15", len(table.Header))
	}

	// Embedded commas must survive the quote-aware splitter.
	first := table.Records[0]
	if first[model.ColDescription] != "Servicio de traslado, alojamiento y colación" {
		t.Errorf("description = %q", first[model.ColDescription])
	}
	last := table.Records[4]
	if last[model.ColDiameter] != "PG 13,5 y G1" {
		t.Errorf("diameter = %q", last[model.ColDiameter])
	}
	if last[model.ColUnitPrice] != "595546" {
		t.Errorf("unit price = %q", last[model.ColUnitPrice])
	}
}

func TestEvents(t *testing.T) {
	table, err := Events()
	if err != nil {
		t.Fatalf("Events: %v", err)
	}
	if len(table.Records) != 3 {
		t.Fatalf("got %d records, want 3", len(table.Records))
	}
	if len(table.Header) != 19 {
		t.Fatalf("got %d columns, want 19", len(table.Header))
	}

	second := table.Records[1]
	if second[model.ColCardType] != "Tarjeta de seguridad" {
		t.Errorf("card type = %q", second[model.ColCardType])
	}
	if second[model.ColEquipmentTag] != "110-CP-03" {
		t.Errorf("tag = %q", second[model.ColEquipmentTag])
	}
	if second[model.EventRecordCol(2)] != "" {
		t.Errorf("registro 2 = %q, want empty", second[model.EventRecordCol(2)])
	}
}

func TestTable_UnknownPipeline(t *testing.T) {
	if _, err := Table(model.Pipeline("bogus")); err == nil {
		t.Fatal("expected error for unknown pipeline")
	}
}
