package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/opsboard/opsboard/internal/boards"
	"github.com/opsboard/opsboard/internal/fetch"
	"github.com/opsboard/opsboard/internal/httpserver"
	"github.com/opsboard/opsboard/internal/store"
)

// runServer loads both datasets and serves the dashboard API until
// interrupted.
func runServer(cfg appConfig) error {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	registry, err := boards.Load(cfg.BoardsPath)
	if err != nil {
		return fmt.Errorf("failed to load board registry: %w", err)
	}

	st := store.New(
		fetch.NewClient(cfg.QuotationsURL, cfg.FetchTimeout),
		fetch.NewClient(cfg.EventsURL, cfg.FetchTimeout),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initial load before accepting traffic; failures inside the pipelines
	// fall back to the embedded samples, so this only errors on a broken
	// build.
	if err := st.LoadAll(ctx); err != nil {
		return fmt.Errorf("initial dataset load failed: %w", err)
	}

	apiServer := httpserver.NewServer(cfg.APIAddr, st, registry, cfg.SessionSecret)
	if err := apiServer.Start(); err != nil {
		return fmt.Errorf("failed to start API server: %w", err)
	}
	defer apiServer.Stop()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		fmt.Println("\nShutting down gracefully... (press Ctrl+C again to force)")
		cancel()

		// Shutdown deadline starts now — not at boot.
		deadline := time.NewTimer(10 * time.Second)
		defer deadline.Stop()

		select {
		case <-sigCh:
			fmt.Println("\nForce shutdown.")
		case <-deadline.C:
			fmt.Println("Shutdown timed out, forcing exit.")
		}
		os.Exit(1)
	}()

	printStartupBanner(cfg, st)

	g, gctx := errgroup.WithContext(ctx)

	// Periodic reload loop
	if cfg.ReloadInterval > 0 {
		g.Go(func() error {
			ticker := time.NewTicker(cfg.ReloadInterval)
			defer ticker.Stop()
			for {
				select {
				case <-gctx.Done():
					return nil
				case <-ticker.C:
					if err := st.LoadAll(gctx); err != nil {
						log.Printf("server: periodic reload failed: %v", err)
					}
				}
			}
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Printf("server: errgroup exited with error: %v", err)
	}

	signal.Stop(sigCh)
	return nil
}

func printStartupBanner(cfg appConfig, st *store.Store) {
	fmt.Printf("OpsBoard %s listening on %s\n", version, cfg.APIAddr)
	for _, p := range []*store.Pipeline{st.Quotations, st.Events} {
		if snap := p.Snapshot(); snap != nil {
			fmt.Printf("  %-10s %d rows (%s)\n", p.Name(), len(snap.Dataset.Table.Records), snap.Dataset.Source)
		}
	}
	if cfg.ConfigPath != "" {
		fmt.Printf("  config:    %s\n", cfg.ConfigPath)
	}
	if cfg.ReloadInterval > 0 {
		fmt.Printf("  reload:    every %v\n", cfg.ReloadInterval)
	}
}
