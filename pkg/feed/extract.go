package feed

import (
	"regexp"
	"strconv"
	"strings"
	"sync"
)

// itemRe and entryRe locate item fragments in the two feed dialects.
// Matching is best-effort on the raw document text: feed sources send
// truncated, double-encoded, or otherwise broken XML often enough that
// a validating parser would reject usable content.
var (
	itemRe  = regexp.MustCompile(`(?is)<item[\s>](.*?)</item>`)
	entryRe = regexp.MustCompile(`(?is)<entry[\s>](.*?)</entry>`)

	atomHrefRe = regexp.MustCompile(`<link[^>]+href=["']([^"']+)["']`)

	decimalRefRe = regexp.MustCompile(`&#(\d+);`)
	hexRefRe     = regexp.MustCompile(`&#x([0-9a-fA-F]+);`)
)

// tagPattern holds the two matchers for one tag, CDATA-wrapped content
// checked before plain content
type tagPattern struct {
	cdata *regexp.Regexp
	plain *regexp.Regexp
}

func compileTagPattern(tag string) tagPattern {
	return tagPattern{
		cdata: regexp.MustCompile(`(?is)<` + tag + `[^>]*>\s*<!\[CDATA\[(.*?)\]\]>\s*</` + tag + `>`),
		plain: regexp.MustCompile(`(?i)<` + tag + `[^>]*>([^<]*)</` + tag + `>`),
	}
}

// patterns for the tags the parser asks for on every fragment are
// compiled once up front; anything else is compiled on first use
var (
	tagPatterns = map[string]tagPattern{
		"title":     compileTagPattern("title"),
		"link":      compileTagPattern("link"),
		"pubDate":   compileTagPattern("pubDate"),
		"published": compileTagPattern("published"),
		"updated":   compileTagPattern("updated"),
	}
	extraPatterns   = map[string]tagPattern{}
	extraPatternsMu sync.Mutex
)

func patternsFor(tag string) tagPattern {
	if p, ok := tagPatterns[tag]; ok {
		return p
	}
	extraPatternsMu.Lock()
	defer extraPatternsMu.Unlock()
	if p, ok := extraPatterns[tag]; ok {
		return p
	}
	p := compileTagPattern(regexp.QuoteMeta(tag))
	extraPatterns[tag] = p
	return p
}

// ExtractItems returns up to max raw item fragments from a feed
// document and whether the document is Atom. RSS <item> elements are
// tried first, <entry> elements only when no items are present.
func ExtractItems(doc string, max int) (fragments []string, atom bool) {
	matches := itemRe.FindAllStringSubmatch(doc, max)
	if len(matches) == 0 {
		matches = entryRe.FindAllStringSubmatch(doc, max)
		atom = true
	}

	fragments = make([]string, 0, len(matches))
	for _, m := range matches {
		fragments = append(fragments, m[1])
	}
	return fragments, atom
}

// Field extracts the text content of a tag from an item fragment.
// CDATA-wrapped content wins over plain content and is returned as-is;
// plain content is entity-decoded. Returns "" when the tag is absent.
func Field(fragment, tag string) string {
	p := patternsFor(tag)

	if m := p.cdata.FindStringSubmatch(fragment); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := p.plain.FindStringSubmatch(fragment); m != nil {
		return decodeEntities(strings.TrimSpace(m[1]))
	}
	return ""
}

// atomHref extracts the href attribute of a <link> element, the way
// Atom encodes item links
func atomHref(fragment string) string {
	if m := atomHrefRe.FindStringSubmatch(fragment); m != nil {
		return m[1]
	}
	return ""
}

// decodeEntities resolves the five standard named entities and numeric
// character references. Named entities decode sequentially with &amp;
// first, so double-encoded input like &amp;lt; collapses all the way.
// Unknown or malformed references are left untouched.
func decodeEntities(s string) string {
	s = strings.ReplaceAll(s, "&amp;", "&")
	s = strings.ReplaceAll(s, "&lt;", "<")
	s = strings.ReplaceAll(s, "&gt;", ">")
	s = strings.ReplaceAll(s, "&quot;", `"`)
	s = strings.ReplaceAll(s, "&apos;", "'")
	s = decimalRefRe.ReplaceAllStringFunc(s, func(ref string) string {
		n, err := strconv.ParseInt(ref[2:len(ref)-1], 10, 32)
		if err != nil {
			return ref
		}
		return string(rune(n))
	})
	s = hexRefRe.ReplaceAllStringFunc(s, func(ref string) string {
		n, err := strconv.ParseInt(ref[3:len(ref)-1], 16, 32)
		if err != nil {
			return ref
		}
		return string(rune(n))
	})
	return s
}
