package feed

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worldmonitor/newsdigest/pkg/domain"
)

func TestGenerator_GenerateRSS(t *testing.T) {
	older := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC).UnixMilli()
	newer := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC).UnixMilli()

	d := &domain.Digest{
		Categories: map[string]domain.CategoryBucket{
			"politics": {Items: []domain.ParsedItem{
				{Source: "BBC World", Title: "Army mobilizes at border", Link: "http://example.com/1",
					PublishedAt: older, IsAlert: true, Level: domain.LevelHigh, Category: "security", Confidence: 0.8},
			}},
			"tech": {Items: []domain.ParsedItem{
				{Source: "The Verge", Title: "New gadget announced", Link: "http://example.com/2",
					PublishedAt: newer, Level: domain.LevelUnspecified, Category: "none"},
			}},
		},
		FeedStatuses: map[string]domain.FeedStatus{"BBC World": domain.StatusOK},
		GeneratedAt:  time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC),
	}

	g := NewGenerator("http://localhost:8080/")
	rss, err := g.GenerateRSS(d, "full")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(rss, "<?xml"))
	assert.Contains(t, rss, "<rss version=\"2.0\"")
	assert.Contains(t, rss, "News Digest - full")
	assert.Contains(t, rss, "http://localhost:8080/rss/full")

	// alert marker on high level items only
	assert.Contains(t, rss, "[HIGH] Army mobilizes at border")
	assert.Contains(t, rss, "New gadget announced")
	assert.NotContains(t, rss, "[UNSPECIFIED]")

	// newest item first across categories
	assert.Less(t, strings.Index(rss, "New gadget announced"), strings.Index(rss, "Army mobilizes"))
}

func TestGenerator_GenerateRSS_EmptyDigest(t *testing.T) {
	g := NewGenerator("http://localhost:8080")
	rss, err := g.GenerateRSS(domain.EmptyDigest(), "happy")
	require.NoError(t, err)
	assert.Contains(t, rss, "News Digest - happy")
	assert.NotContains(t, rss, "<item>")
}
