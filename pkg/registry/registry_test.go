package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_FeedsFor(t *testing.T) {
	r := New()

	full := r.FeedsFor("full")
	require.NotNil(t, full)
	assert.NotEmpty(t, full["politics"])
	assert.NotEmpty(t, full["tech"])

	assert.Nil(t, r.FeedsFor("bogus"))

	// every built-in variant is non-empty
	for _, variant := range []string{"full", "tech", "finance", "happy"} {
		assert.NotEmpty(t, r.FeedsFor(variant), "variant %s", variant)
	}
}

func TestRegistry_IntelSources(t *testing.T) {
	r := New()
	intel := r.IntelSources()
	require.NotEmpty(t, intel)
	for _, f := range intel {
		assert.NotEmpty(t, f.Name)
		assert.NotEmpty(t, f.URL)
	}
}

func TestLoad(t *testing.T) {
	content := `
variants:
  full:
    politics:
      - name: Test Feed
        url: https://example.com/rss
      - name: French Feed
        url: https://example.com/fr
        lang: fr
intel:
  - name: Intel Feed
    url: https://example.com/intel
`
	path := filepath.Join(t.TempDir(), "registry.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	r, err := Load(path)
	require.NoError(t, err)

	feeds := r.FeedsFor("full")
	require.Len(t, feeds["politics"], 2)
	assert.Equal(t, "Test Feed", feeds["politics"][0].Name)
	assert.Equal(t, "fr", feeds["politics"][1].Lang)
	require.Len(t, r.IntelSources(), 1)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load("/nonexistent/registry.yml")
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "empty.yml")
	require.NoError(t, os.WriteFile(path, []byte("intel: []\n"), 0o600))
	_, err = Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no variants")
}

func TestGN(t *testing.T) {
	u := gn("site:apnews.com")
	assert.Contains(t, u, "news.google.com/rss/search")
	assert.Contains(t, u, "site%3Aapnews.com")
}
