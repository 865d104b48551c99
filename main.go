package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"pricecheck/internal/config"
	"pricecheck/internal/coordinator"
	"pricecheck/internal/fetcher"
	"pricecheck/internal/holdings"
	"pricecheck/internal/renderer"
	"pricecheck/internal/report"
	"pricecheck/internal/sites"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Create context with cancellation for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\nReceived interrupt signal, shutting down...")
		cancel()
	}()

	// Input-side errors are fatal: no output file is written
	list, err := holdings.Load(cfg.HoldingsFile)
	if err != nil {
		log.Fatalf("Failed to load holdings: %v", err)
	}
	if len(list) == 0 {
		log.Fatalf("No holdings found in %s", cfg.HoldingsFile)
	}

	r := renderer.NewHTTP(cfg.FetchTimeout, cfg.UserAgent)
	defer r.Close()

	// Create one fetcher per holding, routed by source site
	fetchers := make([]fetcher.Fetcher, 0, len(list))
	for _, h := range list {
		f, err := sites.ForHolding(h, r)
		if err != nil {
			log.Fatalf("Cannot fetch %s: %v", h.Symbol, err)
		}
		fetchers = append(fetchers, f)
	}

	coord := coordinator.New(fetchers, coordinator.Options{
		MaxConcurrent: cfg.MaxConcurrent,
		FailFast:      cfg.FailFast,
	})

	fmt.Printf("Looking up prices for %d holdings...\n", len(fetchers))
	results, err := coord.Run(ctx)
	if err != nil {
		log.Fatalf("Run aborted: %v", err)
	}

	fetched := 0
	for _, result := range results {
		if result.Err != nil {
			slog.Error("price lookup failed", "symbol", result.Symbol, "error", result.Err)
			continue
		}
		fmt.Printf("%s: %s\n", result.Symbol, result.Price)
		fetched++
	}

	if err := report.Write(cfg.OutputFile, results); err != nil {
		log.Fatalf("Failed to write %s: %v", cfg.OutputFile, err)
	}

	fmt.Printf("Wrote %d of %d prices to %s\n", fetched, len(results), cfg.OutputFile)
}
