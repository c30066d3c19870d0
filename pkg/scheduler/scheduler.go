// Package scheduler drives many per-feed fetches under a bounded
// concurrency and a hard wall-clock deadline. Batches run one after
// another with all tasks of a batch in flight concurrently; once the
// deadline fires no new batch starts, and whatever the run never
// reached is reported as timed out.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/worldmonitor/newsdigest/pkg/domain"
)

// Task pairs a feed with the digest category its items land in
type Task struct {
	Category string
	Feed     domain.Feed
}

// Fetcher retrieves the items of a single feed, never failing
type Fetcher interface {
	Fetch(ctx context.Context, fd domain.Feed, variant string) []domain.ParsedItem
}

// Scheduler executes fetch tasks in bounded batches under a deadline
type Scheduler struct {
	fetcher   Fetcher
	batchSize int
	deadline  time.Duration
}

// New creates a scheduler running batchSize tasks concurrently with a
// global deadline per run
func New(fetcher Fetcher, batchSize int, deadline time.Duration) *Scheduler {
	if batchSize <= 0 {
		batchSize = 20
	}
	if deadline <= 0 {
		deadline = 25 * time.Second
	}
	return &Scheduler{fetcher: fetcher, batchSize: batchSize, deadline: deadline}
}

// Run fetches all tasks and returns items grouped by category plus a
// status for every feed attempted. The deadline starts counting here;
// a batch already in flight when it fires is allowed to finish through
// the cancellation propagated into each fetch.
func (s *Scheduler) Run(ctx context.Context, variant string, tasks []Task) (map[string][]domain.ParsedItem, map[string]domain.FeedStatus) {
	ctx, cancel := context.WithTimeout(ctx, s.deadline)
	defer cancel()

	results := make(map[string][]domain.ParsedItem)
	statuses := make(map[string]domain.FeedStatus, len(tasks))
	var mu sync.Mutex // guards results and statuses across batch workers

	started := time.Now()
	for offset := 0; offset < len(tasks); offset += s.batchSize {
		if ctx.Err() != nil {
			lgr.Printf("[WARN] deadline reached after %v, skipping %d remaining feeds",
				time.Since(started).Round(time.Millisecond), len(tasks)-offset)
			break
		}

		end := min(offset+s.batchSize, len(tasks))
		batch := tasks[offset:end]

		var g errgroup.Group
		for _, task := range batch {
			g.Go(func() error {
				s.runTask(ctx, variant, task, results, statuses, &mu)
				return nil
			})
		}
		g.Wait() //nolint:errcheck // tasks never return errors
	}

	// anything the run never got to is a timeout, not an empty feed
	for _, task := range tasks {
		if _, ok := statuses[task.Feed.Name]; !ok {
			statuses[task.Feed.Name] = domain.StatusTimeout
		}
	}

	return results, statuses
}

// runTask fetches one feed and records its outcome. A panicking fetch
// is isolated here so it cannot take down sibling tasks in the batch.
func (s *Scheduler) runTask(ctx context.Context, variant string, task Task,
	results map[string][]domain.ParsedItem, statuses map[string]domain.FeedStatus, mu *sync.Mutex) {

	defer func() {
		if r := recover(); r != nil {
			lgr.Printf("[ERROR] feed task panicked for %s: %v", task.Feed.Name, r)
			mu.Lock()
			statuses[task.Feed.Name] = domain.StatusEmpty
			mu.Unlock()
		}
	}()

	items := s.fetcher.Fetch(ctx, task.Feed, variant)

	status := domain.StatusEmpty
	if len(items) > 0 {
		status = domain.StatusOK
	}

	mu.Lock()
	statuses[task.Feed.Name] = status
	results[task.Category] = append(results[task.Category], items...)
	mu.Unlock()
}
