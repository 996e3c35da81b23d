package boards

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleYAML = `
boards:
  - id: energia-electrica
    title: Energía Eléctrica
    url: https://bi.example.com/embed/energia
    category: servicios
  - id: agua
    title: Agua
    url: https://bi.example.com/embed/agua
`

func TestParse(t *testing.T) {
	reg, err := Parse([]byte(sampleYAML))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(reg.Boards) != 2 {
		t.Fatalf("got %d boards, want 2", len(reg.Boards))
	}
	if reg.Boards[0].ID != "energia-electrica" || reg.Boards[0].Category != "servicios" {
		t.Errorf("first board = %+v", reg.Boards[0])
	}

	b, ok := reg.Get("agua")
	if !ok || b.Title != "Agua" {
		t.Errorf("Get(agua) = %+v, %v", b, ok)
	}
	if _, ok := reg.Get("vapor"); ok {
		t.Error("Get(vapor) should miss")
	}
}

func TestParse_Invalid(t *testing.T) {
	for name, data := range map[string]string{
		"missing url":  "boards:\n  - id: x\n    title: X\n",
		"duplicate id": "boards:\n  - id: x\n    url: u\n  - id: x\n    url: v\n",
		"bad yaml":     "boards: [",
	} {
		if _, err := Parse([]byte(data)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestLoad_MissingFile(t *testing.T) {
	reg, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(reg.Boards) != 0 {
		t.Errorf("missing file should yield empty registry")
	}

	reg, err = Load("")
	if err != nil || len(reg.Boards) != 0 {
		t.Errorf("empty path should yield empty registry")
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "boards.yml")
	if err := os.WriteFile(path, []byte(sampleYAML), 0o644); err != nil {
		t.Fatal(err)
	}

	reg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(reg.Boards) != 2 {
		t.Errorf("got %d boards, want 2", len(reg.Boards))
	}
}
