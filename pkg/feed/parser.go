// Package feed implements fetching, extraction, and parsing of RSS and
// Atom feeds into classified digest items.
package feed

import (
	"html"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"github.com/worldmonitor/newsdigest/pkg/domain"
)

// classSourceKeyword marks items classified by the keyword classifier
const classSourceKeyword = "keyword"

// Classifier assigns a threat level and category to a headline
type Classifier interface {
	Classify(title, variant string) domain.Classification
}

// Parser turns raw feed documents into classified items
type Parser struct {
	classifier   Classifier
	itemsPerFeed int
	sanitizer    *bluemonday.Policy
}

// NewParser creates a feed parser taking at most itemsPerFeed items
// from each document
func NewParser(classifier Classifier, itemsPerFeed int) *Parser {
	return &Parser{
		classifier:   classifier,
		itemsPerFeed: itemsPerFeed,
		sanitizer:    bluemonday.StrictPolicy(),
	}
}

// dateLayouts covers the publish date formats seen across real feeds
var dateLayouts = []string{
	time.RFC1123Z,
	time.RFC1123,
	time.RFC822Z,
	time.RFC822,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999Z07:00",
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"Mon, 2 Jan 2006 15:04:05 MST",
	"2006-01-02 15:04:05",
}

// Parse extracts and classifies items from a raw feed document.
// Returns nil when the document yields nothing usable; fragments
// without a title are skipped, everything else is best-effort.
func (p *Parser) Parse(doc string, f domain.Feed, variant string) []domain.ParsedItem {
	fragments, atom := ExtractItems(doc, p.itemsPerFeed)

	var items []domain.ParsedItem
	for _, fragment := range fragments {
		title := p.cleanTitle(Field(fragment, "title"))
		if title == "" {
			continue
		}

		var link string
		if atom {
			link = atomHref(fragment)
		} else {
			link = Field(fragment, "link")
		}

		var pubDate string
		if atom {
			pubDate = Field(fragment, "published")
			if pubDate == "" {
				pubDate = Field(fragment, "updated")
			}
		} else {
			pubDate = Field(fragment, "pubDate")
		}

		threat := p.classifier.Classify(title, variant)

		items = append(items, domain.ParsedItem{
			Source:      f.Name,
			Title:       title,
			Link:        link,
			PublishedAt: parsePublished(pubDate).UnixMilli(),
			IsAlert:     threat.Level == domain.LevelCritical || threat.Level == domain.LevelHigh,
			Level:       threat.Level,
			Category:    threat.Category,
			Confidence:  threat.Confidence,
			ClassSource: classSourceKeyword,
		})
	}

	return items
}

// cleanTitle strips markup feeds embed inside titles. The sanitizer
// escapes text back to entities, so unescape to recover the literals.
func (p *Parser) cleanTitle(title string) string {
	if title == "" {
		return ""
	}
	return strings.TrimSpace(html.UnescapeString(p.sanitizer.Sanitize(title)))
}

// parsePublished parses a feed timestamp, falling back to the current
// time so an unparseable date never fails the item
func parsePublished(s string) time.Time {
	if s == "" {
		return time.Now()
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Now()
}
