package digest

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/worldmonitor/newsdigest/pkg/cache"
	"github.com/worldmonitor/newsdigest/pkg/domain"
)

// digestKeyPrefix namespaces digest entries in the shared store
const digestKeyPrefix = "news:digest:v1:"

// validVariants is the inbound allow-list; anything else becomes full
var validVariants = map[string]bool{"full": true, "tech": true, "finance": true, "happy": true}

// Store is the shared cache digests are memoized in
type Store interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// DigestBuilder produces a fresh digest for a variant and language
type DigestBuilder interface {
	Build(ctx context.Context, variant, lang string) *domain.Digest
}

// Service is the engine's sole entry point. It fronts the builder with
// digest-level caching and an in-process last-known-good fallback, and
// it never fails: the worst case answer is an empty digest skeleton.
type Service struct {
	builder  DigestBuilder
	store    Store
	fallback *cache.Fallback[*domain.Digest]
	ttl      time.Duration
}

// NewService creates the digest service. fallbackCap bounds the
// last-known-good map; ttl is the shared-store digest TTL.
func NewService(builder DigestBuilder, store Store, ttl time.Duration, fallbackCap int) *Service {
	if ttl <= 0 {
		ttl = 900 * time.Second
	}
	if fallbackCap <= 0 {
		fallbackCap = 50
	}
	return &Service{
		builder:  builder,
		store:    store,
		fallback: cache.NewFallback[*domain.Digest](fallbackCap),
		ttl:      ttl,
	}
}

// GetDigest returns the digest for variant and lang, from cache when
// fresh enough. Unknown variants fall back to full, empty lang to en.
func (s *Service) GetDigest(ctx context.Context, variant, lang string) (result *domain.Digest) {
	if !validVariants[variant] {
		variant = "full"
	}
	if lang == "" {
		lang = "en"
	}

	key := digestKeyPrefix + variant + ":" + lang
	fallbackKey := variant + ":" + lang

	// a panic anywhere below degrades to stale data, never to a failure
	defer func() {
		if r := recover(); r != nil {
			lgr.Printf("[ERROR] digest build panicked for %s: %v", fallbackKey, r)
			result = s.lastKnownGood(fallbackKey)
		}
	}()

	if data, found, err := s.store.Get(ctx, key); err != nil {
		lgr.Printf("[WARN] digest cache read failed for %s: %v", fallbackKey, err)
	} else if found {
		var d domain.Digest
		if err := json.Unmarshal(data, &d); err != nil {
			lgr.Printf("[WARN] bad digest cache entry for %s: %v", fallbackKey, err)
		} else {
			s.fallback.Set(fallbackKey, &d)
			return &d
		}
	}

	d := s.builder.Build(ctx, variant, lang)

	if data, err := json.Marshal(d); err == nil {
		if err := s.store.Set(ctx, key, data, s.ttl); err != nil {
			lgr.Printf("[WARN] digest cache write failed for %s: %v", fallbackKey, err)
		}
	}
	s.fallback.Set(fallbackKey, d)

	return d
}

// lastKnownGood returns the stale in-process digest for the key, or an
// empty skeleton when there has never been one
func (s *Service) lastKnownGood(key string) *domain.Digest {
	if d, ok := s.fallback.Get(key); ok {
		lgr.Printf("[INFO] serving stale digest for %s", key)
		return d
	}
	return domain.EmptyDigest()
}
