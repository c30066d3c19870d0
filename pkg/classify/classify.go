// Package classify assigns a threat level and category to headlines by
// keyword matching. It is deliberately simple: no I/O, no state, rule
// tables checked most severe first so the strongest match wins.
package classify

import (
	"strings"

	"github.com/worldmonitor/newsdigest/pkg/domain"
)

// Classifier provides keyword-based headline classification
type Classifier struct{}

// New creates a new classifier instance
func New() *Classifier {
	return &Classifier{}
}

// rule maps a keyword set to its classification outcome
type rule struct {
	level      domain.ThreatLevel
	category   string
	confidence float64
	keywords   []string
}

// rules are ordered by severity; the first matching rule wins
var rules = []rule{
	{domain.LevelCritical, "security", 0.9, []string{
		"nuclear strike", "mass casualty", "invasion", "declares war", "chemical attack",
		"dirty bomb", "martial law",
	}},
	{domain.LevelHigh, "security", 0.8, []string{
		"army", "mobilizes", "missile", "airstrike", "air strike", "troops", "offensive",
		"warship", "artillery", "drone attack", "attack on", "bombing", "hostage",
		"terror", "insurgent", "coup",
	}},
	{domain.LevelHigh, "cyber", 0.8, []string{
		"cyberattack", "ransomware", "data breach", "zero-day", "zero day", "malware",
		"hacked", "exploit",
	}},
	{domain.LevelMedium, "security", 0.6, []string{
		"sanctions", "border clash", "protest", "riot", "unrest", "escalation",
		"military exercise", "warning shot",
	}},
	{domain.LevelMedium, "health", 0.6, []string{
		"outbreak", "epidemic", "pandemic", "quarantine", "contamination",
	}},
	{domain.LevelMedium, "disaster", 0.6, []string{
		"earthquake", "hurricane", "wildfire", "flooding", "tsunami", "eruption",
	}},
	{domain.LevelLow, "economy", 0.5, []string{
		"recession", "default", "inflation surge", "market crash", "bank failure",
		"layoffs",
	}},
	{domain.LevelLow, "politics", 0.4, []string{
		"election", "impeach", "resigns", "no-confidence", "parliament dissolved",
	}},
}

// Classify labels a headline for the given audience variant. The happy
// variant never raises alerts, everything else shares one rule table.
func (c *Classifier) Classify(title, variant string) domain.Classification {
	if variant == "happy" {
		return domain.Classification{Level: domain.LevelUnspecified, Category: "none", Confidence: 0}
	}

	text := strings.ToLower(title)
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(text, kw) {
				return domain.Classification{Level: r.level, Category: r.category, Confidence: r.confidence}
			}
		}
	}

	return domain.Classification{Level: domain.LevelUnspecified, Category: "none", Confidence: 0}
}
