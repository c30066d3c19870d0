package feed

import (
	"encoding/xml"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/worldmonitor/newsdigest/pkg/domain"
)

// RSS represents the root RSS 2.0 element
type RSS struct {
	XMLName xml.Name    `xml:"rss"`
	Version string      `xml:"version,attr"`
	Atom    string      `xml:"xmlns:atom,attr"`
	Channel *RSSChannel `xml:"channel"`
}

// RSSChannel represents an RSS channel
type RSSChannel struct {
	XMLName       xml.Name   `xml:"channel"`
	Title         string     `xml:"title"`
	Link          string     `xml:"link"`
	Description   string     `xml:"description"`
	AtomLink      *AtomLink  `xml:"http://www.w3.org/2005/Atom link"`
	LastBuildDate string     `xml:"lastBuildDate"`
	Items         []*RSSItem `xml:"item"`
}

// AtomLink represents an Atom link element within RSS
type AtomLink struct {
	Href string `xml:"href,attr"`
	Rel  string `xml:"rel,attr"`
	Type string `xml:"type,attr"`
}

// RSSItem represents an item in an RSS feed
type RSSItem struct {
	Title       string   `xml:"title"`
	Link        string   `xml:"link"`
	GUID        string   `xml:"guid"`
	Description string   `xml:"description"`
	PubDate     string   `xml:"pubDate"`
	Categories  []string `xml:"category"`
}

// Generator renders a digest back out as an RSS 2.0 feed
type Generator struct {
	baseURL string
}

// NewGenerator creates a new feed generator
func NewGenerator(baseURL string) *Generator {
	return &Generator{
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// GenerateRSS creates an RSS 2.0 feed from a digest's items, most
// recent first across all categories. Alert items get a level marker
// in the title.
func (g *Generator) GenerateRSS(d *domain.Digest, variant string) (string, error) {
	items := make([]domain.ParsedItem, 0, len(d.Categories)*8)
	for _, bucket := range d.Categories {
		items = append(items, bucket.Items...)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].PublishedAt > items[j].PublishedAt })

	rssItems := make([]*RSSItem, 0, len(items))
	for _, item := range items {
		rssItems = append(rssItems, g.convertToRSSItem(item))
	}

	feed := &RSS{
		Version: "2.0",
		Atom:    "http://www.w3.org/2005/Atom",
		Channel: &RSSChannel{
			Title:       fmt.Sprintf("News Digest - %s", variant),
			Link:        g.baseURL + "/",
			Description: fmt.Sprintf("Aggregated %s digest", variant),
			AtomLink: &AtomLink{
				Href: fmt.Sprintf("%s/rss/%s", g.baseURL, variant),
				Rel:  "self",
				Type: "application/rss+xml",
			},
			LastBuildDate: d.GeneratedAt.Format(time.RFC1123Z),
			Items:         rssItems,
		},
	}

	output, err := xml.MarshalIndent(feed, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal RSS: %w", err)
	}

	return xml.Header + string(output), nil
}

// convertToRSSItem converts a digest item to an RSS item
func (g *Generator) convertToRSSItem(item domain.ParsedItem) *RSSItem {
	title := item.Title
	if item.IsAlert {
		title = fmt.Sprintf("[%s] %s", strings.ToUpper(string(item.Level)), title)
	}

	desc := fmt.Sprintf("Source: %s", item.Source)
	if item.Category != "none" && item.Category != "" {
		desc += fmt.Sprintf(" | Threat: %s/%s (%.0f%%)", item.Level, item.Category, item.Confidence*100)
	}

	return &RSSItem{
		Title:       title,
		Link:        item.Link,
		GUID:        item.Link,
		Description: desc,
		PubDate:     time.UnixMilli(item.PublishedAt).UTC().Format(time.RFC1123Z),
		Categories:  []string{item.Category},
	}
}
