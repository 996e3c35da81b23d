// Package store owns the in-memory dataset snapshots. Each pipeline holds
// exactly one immutable snapshot, replaced wholesale by Load; queries read
// whatever snapshot is current. Reloads are stamped with a monotonically
// increasing token and a resolving load is applied only while its token is
// still the newest issued, so a slow response can never clobber a newer
// one.
package store

import (
	"context"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/opsboard/opsboard/internal/csvparse"
	"github.com/opsboard/opsboard/internal/fetch"
	"github.com/opsboard/opsboard/internal/model"
	"github.com/opsboard/opsboard/internal/sample"
)

// Snapshot is one loaded dataset plus its typed rows, built once at load
// time.
type Snapshot struct {
	Dataset    model.Dataset
	Quotations []model.Quotation
	Events     []model.Event
}

// Pipeline manages the snapshot lifecycle for a single data source.
type Pipeline struct {
	name   model.Pipeline
	client *fetch.Client

	seq atomic.Uint64 // newest issued reload token

	mu      sync.RWMutex
	current *Snapshot
}

// NewPipeline creates an empty pipeline store for the given source.
func NewPipeline(name model.Pipeline, client *fetch.Client) *Pipeline {
	return &Pipeline{name: name, client: client}
}

// Name returns the pipeline identifier.
func (p *Pipeline) Name() model.Pipeline { return p.name }

// Snapshot returns the current snapshot, or nil before the first load.
func (p *Pipeline) Snapshot() *Snapshot {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.current
}

// Load fetches, parses and installs a fresh snapshot. A fetch or parse
// failure falls back to the embedded sample dataset so callers always end
// up with a usable snapshot; only a broken fixture can make Load fail.
// The applied result is false when a newer reload was issued while this
// one was in flight; the stale snapshot is discarded.
func (p *Pipeline) Load(ctx context.Context) (snap *Snapshot, applied bool, err error) {
	token := p.seq.Add(1)

	table, source := p.loadTable(ctx)
	if source == model.SourceFallback {
		fallback, ferr := sample.Table(p.name)
		if ferr != nil {
			return nil, false, fmt.Errorf("store: %s: fallback dataset: %w", p.name, ferr)
		}
		table = fallback
	}

	snap = buildSnapshot(p.name, source, table)

	p.mu.Lock()
	defer p.mu.Unlock()
	if token != p.seq.Load() {
		log.Printf("store: %s: discarding stale reload (token %d)", p.name, token)
		return snap, false, nil
	}
	p.current = snap
	return snap, true, nil
}

// loadTable fetches and parses the remote document, reporting whether the
// fallback should be used instead.
func (p *Pipeline) loadTable(ctx context.Context) (model.Table, model.Source) {
	text, err := p.client.Fetch(ctx)
	if err != nil {
		log.Printf("store: %s: fetch failed, using fallback dataset: %v", p.name, err)
		return model.Table{}, model.SourceFallback
	}

	table, err := csvparse.Parse(text)
	if err != nil {
		log.Printf("store: %s: parse failed, using fallback dataset: %v", p.name, err)
		return model.Table{}, model.SourceFallback
	}
	return table, model.SourceRemote
}

func buildSnapshot(name model.Pipeline, source model.Source, table model.Table) *Snapshot {
	snap := &Snapshot{
		Dataset: model.Dataset{
			ID:       uuid.New(),
			Pipeline: name,
			Source:   source,
			LoadedAt: time.Now(),
			Table:    table,
		},
	}
	switch name {
	case model.PipelineQuotations:
		snap.Quotations = model.Quotations(table)
	case model.PipelineEvents:
		snap.Events = model.Events(table)
	}
	return snap
}

// Store bundles both pipelines.
type Store struct {
	Quotations *Pipeline
	Events     *Pipeline
}

// New creates a store over the two configured CSV endpoints.
func New(quotations, events *fetch.Client) *Store {
	return &Store{
		Quotations: NewPipeline(model.PipelineQuotations, quotations),
		Events:     NewPipeline(model.PipelineEvents, events),
	}
}

// LoadAll loads both pipelines concurrently.
func (s *Store) LoadAll(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, p := range []*Pipeline{s.Quotations, s.Events} {
		g.Go(func() error {
			_, _, err := p.Load(ctx)
			return err
		})
	}
	return g.Wait()
}
