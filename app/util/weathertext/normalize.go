package weathertext

import "strings"

// Ordered replacements collapsing near-synonym labels onto the smaller
// vocabulary the classifier keys on. Applying them a second time is a no-op.
var normalizeRules = []struct {
	from string
	to   string
}{
	{"clear sky", "clear"},
	{"mostly clear", "clear"},
	{"thick clouds", "cloudy"},
	{"mostly cloudy", "cloudy"},
	{"light shower", "rain"},
	{"rain showers", "rain"},
}

// Normalize canonicalizes a free-text weather label. Unknown text passes
// through unchanged and the classifier falls back to unknown.
func Normalize(raw string) string {
	if raw == "" {
		return ""
	}

	label := strings.ToLower(raw)
	for _, rule := range normalizeRules {
		label = strings.ReplaceAll(label, rule.from, rule.to)
	}

	return strings.TrimSpace(label)
}
