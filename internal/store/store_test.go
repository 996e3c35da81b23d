package store

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/opsboard/opsboard/internal/fetch"
	"github.com/opsboard/opsboard/internal/model"
)

func csvServer(t *testing.T, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestLoad_Remote(t *testing.T) {
	srv := csvServer(t, "Nombre del Proveedor,Precio Unitario Neto en CLP\nAcme,100\n")

	p := NewPipeline(model.PipelineQuotations, fetch.NewClient(srv.URL, 0))
	snap, applied, err := p.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !applied {
		t.Fatal("first load should apply")
	}
	if snap.Dataset.Source != model.SourceRemote {
		t.Errorf("source = %q, want remote", snap.Dataset.Source)
	}
	if len(snap.Quotations) != 1 || snap.Quotations[0].Provider != "Acme" {
		t.Errorf("typed rows = %v", snap.Quotations)
	}
	if p.Snapshot() != snap {
		t.Error("Snapshot should return the applied snapshot")
	}
}

func TestLoad_FallbackOnFetchFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	p := NewPipeline(model.PipelineQuotations, fetch.NewClient(srv.URL, 0))
	snap, applied, err := p.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !applied {
		t.Fatal("fallback load should still apply")
	}
	if snap.Dataset.Source != model.SourceFallback {
		t.Errorf("source = %q, want fallback", snap.Dataset.Source)
	}
	if len(snap.Quotations) != 5 {
		t.Errorf("fallback rows = %d, want 5 sample quotations", len(snap.Quotations))
	}
}

func TestLoad_FallbackOnUnparseableBody(t *testing.T) {
	srv := csvServer(t, "   \n")

	p := NewPipeline(model.PipelineEvents, fetch.NewClient(srv.URL, 0))
	snap, _, err := p.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if snap.Dataset.Source != model.SourceFallback {
		t.Errorf("source = %q, want fallback", snap.Dataset.Source)
	}
	if len(snap.Events) != 3 {
		t.Errorf("fallback rows = %d, want 3 sample events", len(snap.Events))
	}
}

func TestLoad_StaleTokenDiscarded(t *testing.T) {
	firstArrived := make(chan struct{})
	releaseFirst := make(chan struct{})
	var requests atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if requests.Add(1) == 1 {
			close(firstArrived)
			<-releaseFirst
			_, _ = w.Write([]byte("Nombre del Proveedor\nOldData\n"))
			return
		}
		_, _ = w.Write([]byte("Nombre del Proveedor\nNewData\n"))
	}))
	t.Cleanup(srv.Close)

	p := NewPipeline(model.PipelineQuotations, fetch.NewClient(srv.URL, 0))

	type result struct {
		applied bool
		err     error
	}
	firstDone := make(chan result, 1)
	go func() {
		_, applied, err := p.Load(context.Background())
		firstDone <- result{applied, err}
	}()

	<-firstArrived

	// A second reload supersedes the in-flight one.
	if _, applied, err := p.Load(context.Background()); err != nil || !applied {
		t.Fatalf("second load applied=%v err=%v, want applied", applied, err)
	}

	close(releaseFirst)
	first := <-firstDone
	if first.err != nil {
		t.Fatalf("first load: %v", first.err)
	}
	if first.applied {
		t.Fatal("superseded load must not apply")
	}

	snap := p.Snapshot()
	if len(snap.Quotations) != 1 || snap.Quotations[0].Provider != "NewData" {
		t.Errorf("current snapshot = %v, want the newer load's data", snap.Quotations)
	}
}

func TestLoadAll(t *testing.T) {
	quotes := csvServer(t, "Nombre del Proveedor\nAcme\n")
	events := csvServer(t, "Autor\nAna\n")

	s := New(fetch.NewClient(quotes.URL, 0), fetch.NewClient(events.URL, 0))
	if err := s.LoadAll(context.Background()); err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if s.Quotations.Snapshot() == nil || s.Events.Snapshot() == nil {
		t.Fatal("both pipelines should hold snapshots")
	}
	if s.Quotations.Snapshot().Dataset.ID == s.Events.Snapshot().Dataset.ID {
		t.Error("snapshots should have distinct IDs")
	}
}
