package domain

// ThreatLevel is the closed set of severity labels a classifier can assign
type ThreatLevel string

// threat levels, most severe first
const (
	LevelCritical    ThreatLevel = "critical"
	LevelHigh        ThreatLevel = "high"
	LevelMedium      ThreatLevel = "medium"
	LevelLow         ThreatLevel = "low"
	LevelUnspecified ThreatLevel = "unspecified"
)

// Classification is the result of classifying a single headline
type Classification struct {
	Level      ThreatLevel `json:"level"`
	Category   string      `json:"category"`
	Confidence float64     `json:"confidence"`
}

// ParsedItem is one classified headline extracted from a feed.
// Immutable once created; PublishedAt is epoch milliseconds.
type ParsedItem struct {
	Source      string      `json:"source"`
	Title       string      `json:"title"`
	Link        string      `json:"link"`
	PublishedAt int64       `json:"publishedAt"`
	IsAlert     bool        `json:"isAlert"`
	Level       ThreatLevel `json:"level"`
	Category    string      `json:"category"`
	Confidence  float64     `json:"confidence"`
	ClassSource string      `json:"classificationSource"`
}
