package domain

import "time"

// CategoryBucket holds the ranked items for one topical category,
// ordered by descending publish time and capped by the builder.
type CategoryBucket struct {
	Items []ParsedItem `json:"items"`
}

// Digest is the complete output of one aggregation run
type Digest struct {
	Categories   map[string]CategoryBucket `json:"categories"`
	FeedStatuses map[string]FeedStatus     `json:"feedStatuses"`
	GeneratedAt  time.Time                 `json:"generatedAt"`
}

// EmptyDigest returns a valid zero-content digest, used when every
// other way of producing one has failed
func EmptyDigest() *Digest {
	return &Digest{
		Categories:   map[string]CategoryBucket{},
		FeedStatuses: map[string]FeedStatus{},
		GeneratedAt:  time.Now(),
	}
}
