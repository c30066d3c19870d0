package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/worldmonitor/newsdigest/pkg/domain"
)

func TestClassifier_Classify(t *testing.T) {
	c := New()

	tests := []struct {
		name     string
		title    string
		variant  string
		level    domain.ThreatLevel
		category string
	}{
		{"military headline", "Army mobilizes at border", "full", domain.LevelHigh, "security"},
		{"benign headline", "Local bakery opens", "full", domain.LevelUnspecified, "none"},
		{"critical headline", "Invasion begins as forces cross the frontier", "full", domain.LevelCritical, "security"},
		{"cyber headline", "Major hospital hit by ransomware", "tech", domain.LevelHigh, "cyber"},
		{"case insensitive", "MISSILE test reported", "full", domain.LevelHigh, "security"},
		{"economic headline", "Tech giant announces layoffs", "finance", domain.LevelLow, "economy"},
		{"happy variant suppresses", "Army mobilizes at border", "happy", domain.LevelUnspecified, "none"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := c.Classify(tt.title, tt.variant)
			assert.Equal(t, tt.level, res.Level)
			assert.Equal(t, tt.category, res.Category)
		})
	}
}

func TestClassifier_ConfidenceBounds(t *testing.T) {
	c := New()

	res := c.Classify("Nuclear strike feared after escalation", "full")
	assert.Equal(t, domain.LevelCritical, res.Level)
	assert.InDelta(t, 0.9, res.Confidence, 0.001)

	res = c.Classify("Quiet day in the village", "full")
	assert.Zero(t, res.Confidence)
}
