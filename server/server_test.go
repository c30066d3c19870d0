package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worldmonitor/newsdigest/pkg/domain"
)

type stubConfig struct{}

func (stubConfig) GetServerConfig() (string, time.Duration) { return ":0", 5 * time.Second }

// stubDigest records the last requested variant/lang and returns a canned digest
type stubDigest struct {
	variant string
	lang    string
	digest  *domain.Digest
}

func (s *stubDigest) GetDigest(_ context.Context, variant, lang string) *domain.Digest {
	s.variant = variant
	s.lang = lang
	return s.digest
}

type stubGenerator struct {
	out string
	err error
}

func (s *stubGenerator) GenerateRSS(_ *domain.Digest, _ string) (string, error) {
	return s.out, s.err
}

func sampleDigest() *domain.Digest {
	return &domain.Digest{
		Categories: map[string]domain.CategoryBucket{
			"tech": {Items: []domain.ParsedItem{{
				Source:      "Hacker News",
				Title:       "a headline",
				Link:        "https://example.com/1",
				PublishedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC).UnixMilli(),
			}}},
		},
		FeedStatuses: map[string]domain.FeedStatus{"Hacker News": domain.StatusOK},
		GeneratedAt:  time.Date(2025, 6, 1, 12, 0, 5, 0, time.UTC),
	}
}

func newTestServer(digest *stubDigest, gen *stubGenerator) *httptest.Server {
	srv := New(stubConfig{}, digest, gen, "test", false)
	return httptest.NewServer(srv.router)
}

func TestServer_DigestHandler(t *testing.T) {
	digest := &stubDigest{digest: sampleDigest()}
	ts := newTestServer(digest, &stubGenerator{})
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/v1/digest?variant=tech&lang=en")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	assert.Equal(t, "tech", digest.variant)
	assert.Equal(t, "en", digest.lang)

	var got domain.Digest
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.Len(t, got.Categories["tech"].Items, 1)
	assert.Equal(t, "a headline", got.Categories["tech"].Items[0].Title)
	assert.Equal(t, domain.StatusOK, got.FeedStatuses["Hacker News"])
}

func TestServer_DigestHandler_NoParams(t *testing.T) {
	digest := &stubDigest{digest: domain.EmptyDigest()}
	ts := newTestServer(digest, &stubGenerator{})
	defer ts.Close()

	// the service normalizes missing variant and lang itself
	resp, err := http.Get(ts.URL + "/api/v1/digest")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, digest.variant)
	assert.Empty(t, digest.lang)
}

func TestServer_StatusHandler(t *testing.T) {
	ts := newTestServer(&stubDigest{digest: domain.EmptyDigest()}, &stubGenerator{})
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/v1/status")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var status map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&status))
	assert.Equal(t, "ok", status["status"])
	assert.Equal(t, "test", status["version"])
}

func TestServer_RSSHandler(t *testing.T) {
	digest := &stubDigest{digest: sampleDigest()}
	gen := &stubGenerator{out: `<?xml version="1.0" encoding="UTF-8"?><rss version="2.0"></rss>`}
	ts := newTestServer(digest, gen)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/rss/tech?lang=de")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/rss+xml; charset=utf-8", resp.Header.Get("Content-Type"))
	assert.Equal(t, "tech", digest.variant)
	assert.Equal(t, "de", digest.lang)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(body), "<?xml"))
}

func TestServer_RSSHandler_GeneratorError(t *testing.T) {
	digest := &stubDigest{digest: sampleDigest()}
	gen := &stubGenerator{err: errors.New("marshal failed")}
	ts := newTestServer(digest, gen)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/rss/full")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var errResp map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
	assert.Contains(t, errResp["error"], "marshal failed")
}

func TestServer_Ping(t *testing.T) {
	ts := newTestServer(&stubDigest{digest: domain.EmptyDigest()}, &stubGenerator{})
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/ping")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "pong", strings.TrimSpace(string(body)))
}

func TestServer_RunAndShutdown(t *testing.T) {
	srv := New(stubConfig{}, &stubDigest{digest: domain.EmptyDigest()}, &stubGenerator{}, "test", false)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestRenderJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)

	RenderJSON(rec, req, http.StatusTeapot, map[string]string{"k": "v"})
	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.JSONEq(t, `{"k":"v"}`, rec.Body.String())
}
