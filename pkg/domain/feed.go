package domain

// Feed describes a single feed endpoint from the registry.
// Identity is the URL; Lang is empty for language-neutral feeds.
type Feed struct {
	Name string `yaml:"name" json:"name"`
	URL  string `yaml:"url" json:"url"`
	Lang string `yaml:"lang,omitempty" json:"lang,omitempty"`
}

// FeedStatus is the per-feed outcome of one digest build
type FeedStatus string

const (
	StatusOK      FeedStatus = "ok"      // at least one item parsed
	StatusEmpty   FeedStatus = "empty"   // fetch or parse yielded nothing
	StatusTimeout FeedStatus = "timeout" // never reached before the global deadline
)
