// Package registry holds the static mapping from audience variant to
// topical categories to feed endpoints. The built-in tables can be
// replaced wholesale by a YAML file at startup.
package registry

import (
	"fmt"
	"net/url"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/worldmonitor/newsdigest/pkg/domain"
)

// Registry is a read-only lookup table of feeds per variant and category
type Registry struct {
	variants map[string]map[string][]domain.Feed
	intel    []domain.Feed
}

// New returns a registry backed by the built-in feed tables
func New() *Registry {
	return &Registry{variants: variantFeeds, intel: intelSources}
}

// registryFile is the YAML shape of an external registry override
type registryFile struct {
	Variants map[string]map[string][]domain.Feed `yaml:"variants"`
	Intel    []domain.Feed                       `yaml:"intel"`
}

// Load reads a registry override from a YAML file. Environment
// variables in the file are expanded before parsing.
func Load(path string) (*Registry, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read registry file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var rf registryFile
	if err := yaml.Unmarshal([]byte(expanded), &rf); err != nil {
		return nil, fmt.Errorf("parse registry file: %w", err)
	}

	if len(rf.Variants) == 0 {
		return nil, fmt.Errorf("registry file %s defines no variants", path)
	}

	return &Registry{variants: rf.Variants, intel: rf.Intel}, nil
}

// FeedsFor returns the category to feeds mapping for a variant,
// nil if the variant is unknown
func (r *Registry) FeedsFor(variant string) map[string][]domain.Feed {
	return r.variants[variant]
}

// IntelSources returns the fixed intelligence sources appended to the
// full variant under the reserved intel category
func (r *Registry) IntelSources() []domain.Feed {
	return r.intel
}

// gn builds a Google News RSS search URL for the given query
func gn(q string) string {
	return "https://news.google.com/rss/search?q=" + url.QueryEscape(q) + "&hl=en-US&gl=US&ceid=US:en"
}
