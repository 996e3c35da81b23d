package tui

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newStubAPI(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/quotations/stats", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("q") == "bomba" {
			w.Write([]byte(`{"statistics":{"total_items":1,"total_providers":1,"avg_price":15000,"total_value":15000,"max_price":15000,"min_price":15000},"top_providers":[],"top_brands":[],"histogram":[]}`))
			return
		}
		w.Write([]byte(`{"statistics":{"total_items":3,"total_providers":2,"avg_price":10000,"total_value":45000,"max_price":15000,"min_price":5000},"top_providers":[{"value":"Acme","count":2}],"top_brands":[{"value":"KSB","count":1}],"histogram":[{"label":"0-10000","max":10000,"count":2}]}`))
	})
	mux.HandleFunc("/api/events/stats", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"statistics":{"total_events":2,"completed_events":1,"pending_events":0,"in_progress_events":1,"avg_completion_time":4.5,"total_cost":300000}}`))
	})
	mux.HandleFunc("/api/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok","uptime":"1m0s","pipelines":{"quotations":{"loaded":true,"source":"remote","rows":3},"events":{"loaded":true,"source":"fallback","rows":2}}}`))
	})
	mux.HandleFunc("/api/refresh", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		w.Write([]byte(`{}`))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestClientQuotationStats(t *testing.T) {
	srv := newStubAPI(t)
	c := NewClient(srv.URL, time.Second)

	stats, err := c.QuotationStats(context.Background(), "")
	if err != nil {
		t.Fatalf("QuotationStats: %v", err)
	}
	if stats.Statistics.TotalItems != 3 {
		t.Errorf("TotalItems = %d, want 3", stats.Statistics.TotalItems)
	}
	if len(stats.TopProviders) != 1 || stats.TopProviders[0].Value != "Acme" {
		t.Errorf("TopProviders = %v", stats.TopProviders)
	}
}

func TestClientQuotationStats_Search(t *testing.T) {
	srv := newStubAPI(t)
	c := NewClient(srv.URL, time.Second)

	stats, err := c.QuotationStats(context.Background(), "bomba")
	if err != nil {
		t.Fatalf("QuotationStats: %v", err)
	}
	if stats.Statistics.TotalItems != 1 {
		t.Errorf("filtered TotalItems = %d, want 1", stats.Statistics.TotalItems)
	}
}

func TestClientEventStats(t *testing.T) {
	srv := newStubAPI(t)
	c := NewClient(srv.URL, time.Second)

	stats, err := c.EventStats(context.Background())
	if err != nil {
		t.Fatalf("EventStats: %v", err)
	}
	if stats.Statistics.TotalCost != 300000 {
		t.Errorf("TotalCost = %v, want 300000", stats.Statistics.TotalCost)
	}
}

func TestClientHealth(t *testing.T) {
	srv := newStubAPI(t)
	c := NewClient(srv.URL, time.Second)

	h, err := c.Health(context.Background())
	if err != nil {
		t.Fatalf("Health: %v", err)
	}
	if h.Pipelines["events"].Source != "fallback" {
		t.Errorf("events source = %q, want fallback", h.Pipelines["events"].Source)
	}
}

func TestClientRefresh(t *testing.T) {
	srv := newStubAPI(t)
	c := NewClient(srv.URL, time.Second)

	if err := c.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
}

func TestClientErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)
	c := NewClient(srv.URL, time.Second)

	if _, err := c.Health(context.Background()); err == nil {
		t.Error("expected error on 500 response")
	}
}
