// Package history computes summary statistics across every available
// report snapshot, giving auditors a compliance trend over time.
//
// History is derived, never stored: each collection re-reads the
// snapshot directory, so the result always reflects what the pipeline
// has produced so far. Snapshots are loaded with bounded concurrency
// since each load is an independent file read.
package history

import (
	"context"
	"errors"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/complyview/complyview/internal/model"
	"github.com/complyview/complyview/internal/stats"
	"github.com/complyview/complyview/internal/store"
)

// Entry pairs a snapshot descriptor with the summary computed from it.
type Entry struct {
	// Report identifies the snapshot the summary was computed from.
	Report model.ReportDescriptor `json:"report"`

	// Summary holds the snapshot's headline statistics.
	Summary stats.Summary `json:"summary"`
}

// Collector loads snapshots and summarizes them.
//
// Design decision: We keep the Collector separate from the Store rather
// than adding a History method to the store because the store is a pure
// snapshot locator while history adds concurrency and aggregation
// policy on top of it.
type Collector struct {
	// store provides snapshot listing and loading.
	store *store.Store

	// concurrency is the maximum number of snapshots loaded in parallel.
	concurrency int

	// logger is used for per-snapshot warnings.
	logger *slog.Logger
}

// Option configures a Collector.
type Option func(*Collector)

// WithConcurrency sets the maximum number of parallel snapshot loads.
// Non-positive values are ignored and the default of 4 is kept.
func WithConcurrency(n int) Option {
	return func(c *Collector) {
		if n > 0 {
			c.concurrency = n
		}
	}
}

// WithLogger sets a custom logger for the collector.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Collector) {
		c.logger = logger
	}
}

// NewCollector creates a Collector over the given store.
func NewCollector(s *store.Store, opts ...Option) *Collector {
	c := &Collector{
		store:       s,
		concurrency: 4,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.logger == nil {
		c.logger = slog.Default()
	}

	return c
}

// Collect summarizes every listed snapshot, preserving the listing
// order (filename timestamp, most recent first).
//
// Snapshots that fail to load are skipped with a warning rather than
// failing the whole collection; one malformed file must not hide the
// history of every other snapshot. The error return is non-nil only
// when the context is cancelled.
//
// Design decision: We use errgroup.SetLimit rather than a worker pool
// because it is simpler and handles the concurrency limit correctly.
// Results land in an index-addressed slice so ordering never depends on
// goroutine scheduling.
func (c *Collector) Collect(ctx context.Context) ([]Entry, error) {
	descriptors := c.store.List()

	c.logger.Debug("collecting report history",
		"snapshots", len(descriptors),
		"concurrency", c.concurrency,
	)

	results := make([]*Entry, len(descriptors))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)

	for i, desc := range descriptors {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			report, err := c.store.Get(desc.Filename)
			if err != nil {
				// A snapshot listed a moment ago can be malformed or
				// already deleted; both are per-file conditions.
				if errors.Is(err, store.ErrMalformedReport) || errors.Is(err, store.ErrNotFound) {
					c.logger.Warn("skipping snapshot in history",
						"filename", desc.Filename,
						"error", err,
					)
					return nil
				}
				return err
			}

			results[i] = &Entry{
				Report:  desc,
				Summary: stats.Summarize(report),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(results))
	for _, e := range results {
		if e != nil {
			entries = append(entries, *e)
		}
	}

	return entries, nil
}
