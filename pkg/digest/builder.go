// Package digest assembles categorized, ranked digests from many feeds
// and serves them through a cache with a last-known-good fallback.
package digest

import (
	"context"
	"sort"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/worldmonitor/newsdigest/pkg/domain"
	"github.com/worldmonitor/newsdigest/pkg/scheduler"
)

// intelCategory is reserved for the fixed intelligence sources the
// full variant carries on top of its regular categories
const intelCategory = "intel"

// Registry provides the feed tables for each variant
type Registry interface {
	FeedsFor(variant string) map[string][]domain.Feed
	IntelSources() []domain.Feed
}

// TaskRunner executes fetch tasks and reports per-feed outcomes
type TaskRunner interface {
	Run(ctx context.Context, variant string, tasks []scheduler.Task) (map[string][]domain.ParsedItem, map[string]domain.FeedStatus)
}

// Builder orchestrates one digest build: select feeds, run them
// through the scheduler, rank and cap each category. It has no cache
// or network knowledge of its own.
type Builder struct {
	registry       Registry
	runner         TaskRunner
	maxPerCategory int
}

// NewBuilder creates a digest builder capping each category at
// maxPerCategory items
func NewBuilder(registry Registry, runner TaskRunner, maxPerCategory int) *Builder {
	if maxPerCategory <= 0 {
		maxPerCategory = 20
	}
	return &Builder{registry: registry, runner: runner, maxPerCategory: maxPerCategory}
}

// Build produces a fresh digest for variant and lang. Feeds with no
// declared language are always included; feeds with one only when it
// matches the requested lang.
func (b *Builder) Build(ctx context.Context, variant, lang string) *domain.Digest {
	var tasks []scheduler.Task

	for category, feeds := range b.registry.FeedsFor(variant) {
		for _, f := range feeds {
			if f.Lang == "" || f.Lang == lang {
				tasks = append(tasks, scheduler.Task{Category: category, Feed: f})
			}
		}
	}

	if variant == "full" {
		for _, f := range b.registry.IntelSources() {
			if f.Lang == "" || f.Lang == lang {
				tasks = append(tasks, scheduler.Task{Category: intelCategory, Feed: f})
			}
		}
	}

	lgr.Printf("[INFO] building %s/%s digest from %d feeds", variant, lang, len(tasks))
	results, statuses := b.runner.Run(ctx, variant, tasks)

	categories := make(map[string]domain.CategoryBucket, len(results))
	for category, items := range results {
		sort.Slice(items, func(i, j int) bool { return items[i].PublishedAt > items[j].PublishedAt })
		if len(items) > b.maxPerCategory {
			items = items[:b.maxPerCategory]
		}
		categories[category] = domain.CategoryBucket{Items: items}
	}

	return &domain.Digest{
		Categories:   categories,
		FeedStatuses: statuses,
		GeneratedAt:  time.Now(),
	}
}
