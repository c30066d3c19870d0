package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/worldmonitor/newsdigest/pkg/domain"
)

// feedKeyPrefix namespaces per-feed cache entries in the shared store
const feedKeyPrefix = "rss:feed:v1:"

// Store is the shared cache the fetcher memoizes parsed feeds in
type Store interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// FeedParser parses a raw feed document into classified items
type FeedParser interface {
	Parse(doc string, f domain.Feed, variant string) []domain.ParsedItem
}

// Fetcher retrieves one feed over HTTP with a per-feed timeout and
// memoizes the parsed result in the shared store. It never reports
// errors to the caller: anything that goes wrong is an empty result.
type Fetcher struct {
	client    *http.Client
	store     Store
	parser    FeedParser
	timeout   time.Duration
	ttl       time.Duration
	userAgent string
}

// FetcherConfig holds fetcher dependencies and knobs
type FetcherConfig struct {
	Store     Store
	Parser    FeedParser
	Timeout   time.Duration // per-feed fetch timeout
	TTL       time.Duration // cache TTL for parsed items
	UserAgent string
}

// NewFetcher creates a fetcher with a shared HTTP transport
func NewFetcher(cfg FetcherConfig) *Fetcher {
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	return &Fetcher{
		client: &http.Client{
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		store:     cfg.Store,
		parser:    cfg.Parser,
		timeout:   cfg.Timeout,
		ttl:       cfg.TTL,
		userAgent: cfg.UserAgent,
	}
}

// Fetch returns the classified items for one feed, from cache when
// possible. The caller's ctx carries the digest-wide cancellation; the
// per-feed timeout is layered on top of it. A non-success response is
// parsed as "nothing usable" and cached, so the feed is not hammered
// again until the cache entry expires. Network errors and timeouts are
// not cached and retry naturally on the next build.
func (f *Fetcher) Fetch(ctx context.Context, fd domain.Feed, variant string) []domain.ParsedItem {
	key := feedKeyPrefix + fd.URL

	if cached, found, err := f.store.Get(ctx, key); err != nil {
		lgr.Printf("[WARN] feed cache read failed for %s: %v", fd.Name, err)
	} else if found {
		var items []domain.ParsedItem
		if err := json.Unmarshal(cached, &items); err != nil {
			lgr.Printf("[WARN] bad cache entry for %s: %v", fd.Name, err)
		} else {
			return items
		}
	}

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	body, err := f.fetch(ctx, fd.URL)
	if err != nil {
		lgr.Printf("[DEBUG] fetch failed for %s: %v", fd.Name, err)
		return nil
	}

	// non-success responses still produce a cacheable nil result
	var items []domain.ParsedItem
	if body != "" {
		items = f.parser.Parse(body, fd, variant)
	}

	if data, err := json.Marshal(items); err == nil {
		if err := f.store.Set(ctx, key, data, f.ttl); err != nil {
			lgr.Printf("[WARN] feed cache write failed for %s: %v", fd.Name, err)
		}
	}

	return items
}

// fetch performs the single outbound request. A non-success status
// yields an empty body and no error, everything else is an error.
func (f *Fetcher) fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", f.userAgent)
	addBrowserHeaders(req)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch URL: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // read-only body

	if resp.StatusCode != http.StatusOK {
		return "", nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}
	return string(data), nil
}
