// Package crawl provides documentation crawling orchestration.
// It coordinates category discovery, fetching, content extraction,
// markdown conversion and persistence of documentation pages, then
// emits the end-of-run manifest artifacts.
package crawl

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/fwojciec/gdndoc"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Frontier sizing for work-list deduplication.
const (
	// frontierExpectedUnits is the expected number of work units for Bloom filter sizing.
	frontierExpectedUnits = 10000
	// frontierFalsePositiveRate is the acceptable false positive rate for deduplication.
	frontierFalsePositiveRate = 0.01
)

// Crawler orchestrates a full documentation crawl: discovery over the
// landing and category pages, per-item fetch/extract/convert/persist,
// and manifest emission. Per-item failures are recorded and the run
// continues; only landing-page discovery failure is fatal.
type Crawler struct {
	Fetcher    gdndoc.Fetcher
	Discoverer gdndoc.LinkDiscoverer
	Extractor  gdndoc.ContentExtractor
	Converter  gdndoc.Converter
	Store      gdndoc.Persister
	Manifests  gdndoc.ManifestWriter
	Logger     *slog.Logger

	// SourceURL is the landing page of the documentation site.
	SourceURL string

	// Concurrency bounds the item worker pool. The default of 1 keeps
	// processing strictly sequential; higher values stay polite because
	// the rate limit lives in the shared Fetcher, not per worker.
	Concurrency int

	// Now is the clock used for the manifest timestamp.
	// Defaults to time.Now.
	Now func() time.Time
}

// Result holds the outcome of a crawl operation.
type Result struct {
	Written int
	Skipped int
	Failed  int
	Bytes   int
}

// ProgressEvent reports progress during a crawl operation.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

// Progress event types.
const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressSkipped
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting crawl progress.
type ProgressFunc func(event ProgressEvent)

// unitResult pairs a record with its discovery-order position.
type unitResult struct {
	position int
	record   gdndoc.OutputRecord
	bytes    int
}

// Run executes the crawl. The progress callback, if provided, receives
// events as processing proceeds. The returned error is non-nil only
// for fatal conditions: an unreachable or unparseable landing page, or
// a failure writing the manifest artifacts.
func (c *Crawler) Run(ctx context.Context, progress ProgressFunc) (*Result, error) {
	logger := c.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	runID := uuid.NewString()
	logger = logger.With("run_id", runID)

	units, err := c.discover(ctx, logger)
	if err != nil {
		return nil, err
	}

	total := len(units)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	records, bytes := c.processAll(ctx, units, logger, progress)

	res := Result{Bytes: bytes}
	for _, rec := range records {
		switch rec.Status {
		case gdndoc.StatusWritten:
			res.Written++
		case gdndoc.StatusSkipped:
			res.Skipped++
		case gdndoc.StatusFailed:
			res.Failed++
		}
	}

	now := c.Now
	if now == nil {
		now = time.Now
	}
	m := gdndoc.BuildManifest(records, c.SourceURL, now())
	m.Metadata.RunID = runID
	if c.Manifests != nil {
		if err := c.Manifests.WriteManifest(ctx, m); err != nil {
			return nil, fmt.Errorf("write manifest: %w", err)
		}
		if err := c.Manifests.WriteIndex(ctx, m); err != nil {
			return nil, fmt.Errorf("write index: %w", err)
		}
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}

	logger.Info("crawl finished",
		"written", res.Written,
		"skipped", res.Skipped,
		"failed", res.Failed,
		"bytes", res.Bytes,
	)

	return &res, nil
}

// discover builds the deduplicated work list in first-seen order. The
// landing page is fatal when unreachable or empty; a category listing
// page that fails to fetch or exposes no nested items falls back to
// the category entry itself, which the site uses for categories whose
// documentation lives directly on the entry page.
func (c *Crawler) discover(ctx context.Context, logger *slog.Logger) ([]gdndoc.WorkUnit, error) {
	landing, err := c.Fetcher.Fetch(ctx, c.SourceURL)
	if err != nil {
		return nil, fmt.Errorf("landing page: %w", err)
	}

	refs, err := c.Discoverer.DiscoverCategories(landing)
	if err != nil {
		return nil, fmt.Errorf("landing page: %w", err)
	}
	if len(refs) == 0 {
		return nil, gdndoc.Errorf(gdndoc.ENOTFOUND, "no categories discovered on %s", c.SourceURL)
	}
	logger.Info("discovered categories", "count", len(refs))

	frontier := NewFrontier(frontierExpectedUnits, frontierFalsePositiveRate)
	for _, ref := range refs {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		html, err := c.Fetcher.Fetch(ctx, ref.URL)
		if err != nil {
			logger.Warn("category page fetch failed",
				"version", ref.Version,
				"category", ref.Name,
				"err", err,
			)
			frontier.Push(ref.Unit())
			continue
		}

		items, err := c.Discoverer.DiscoverItems(html, ref)
		if err != nil || len(items) == 0 {
			frontier.Push(ref.Unit())
			continue
		}
		for _, unit := range items {
			frontier.Push(unit)
		}
	}

	return frontier.Drain(), nil
}

// processAll runs the per-item pipeline over the work list and returns
// records in discovery order regardless of worker completion order.
func (c *Crawler) processAll(ctx context.Context, units []gdndoc.WorkUnit, logger *slog.Logger, progress ProgressFunc) ([]gdndoc.OutputRecord, int) {
	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}

	total := len(units)
	resultCh := make(chan unitResult, total)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, unit := range units {
			g.Go(func() error {
				rec, n := c.processUnit(gctx, unit)
				resultCh <- unitResult{position: i, record: rec, bytes: n}
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	records := make([]gdndoc.OutputRecord, total)
	var totalBytes int
	var completed atomic.Int64
	for result := range resultCh {
		completed.Add(1)
		records[result.position] = result.record
		totalBytes += result.bytes

		rec := result.record
		switch rec.Status {
		case gdndoc.StatusFailed:
			logger.Warn("item failed",
				"version", rec.Version,
				"category", rec.Category,
				"item", rec.Item,
				"code", gdndoc.ErrorCode(rec.Err),
				"err", rec.Err,
			)
			if progress != nil {
				progress(ProgressEvent{
					Type:      ProgressFailed,
					Completed: int(completed.Load()),
					Total:     total,
					URL:       units[result.position].URL,
					Error:     rec.Err,
				})
			}
		case gdndoc.StatusSkipped:
			if progress != nil {
				progress(ProgressEvent{
					Type:      ProgressSkipped,
					Completed: int(completed.Load()),
					Total:     total,
					URL:       units[result.position].URL,
				})
			}
		default:
			if progress != nil {
				progress(ProgressEvent{
					Type:      ProgressCompleted,
					Completed: int(completed.Load()),
					Total:     total,
					URL:       units[result.position].URL,
				})
			}
		}
	}

	return records, totalBytes
}

// processUnit runs the fetch/extract/convert/persist pipeline for one
// work unit, returning the record and the number of markdown bytes
// written. The existence check comes first so resumed runs never
// re-fetch pages that are already on disk.
func (c *Crawler) processUnit(ctx context.Context, unit gdndoc.WorkUnit) (gdndoc.OutputRecord, int) {
	if rec, ok := c.Store.Existing(unit); ok {
		return rec, 0
	}

	html, err := c.Fetcher.Fetch(ctx, unit.URL)
	if err != nil {
		return failedRecord(unit, err), 0
	}

	fragment, err := c.Extractor.Extract(html)
	if err != nil {
		return failedRecord(unit, err), 0
	}

	markdown, err := c.Converter.Convert(fragment)
	if err != nil {
		return failedRecord(unit, err), 0
	}

	rec := c.Store.Persist(ctx, unit, markdown)
	if rec.Status != gdndoc.StatusWritten {
		return rec, 0
	}
	rec.ContentHash = ComputeHash(markdown)
	return rec, len(markdown)
}

func failedRecord(unit gdndoc.WorkUnit, err error) gdndoc.OutputRecord {
	return gdndoc.OutputRecord{
		Version:  unit.Version,
		Category: unit.Category,
		Item:     unit.Item,
		Status:   gdndoc.StatusFailed,
		Err:      err,
	}
}
