package weathertext

import (
	"strings"

	"github.com/elliotchance/pie/v2"
)

// Priority-ordered: a label mentioning both rain and clouds is rain. First
// match wins, so the order is a deliberate tie-break.
var categoryRules = []struct {
	category Category
	keywords []string
}{
	{CategoryThunder, []string{"thunder", "storm"}},
	{CategorySnow, []string{"snow", "sleet"}},
	{CategoryRain, []string{"rain", "drizzle", "shower"}},
	{CategoryFog, []string{"fog", "mist", "haze"}},
	{CategoryClear, []string{"clear", "sunny", "sun"}},
	{CategoryCloudy, []string{"cloud", "overcast"}},
}

// Categorize maps a normalized label to its weather category.
func Categorize(label string) Category {
	if label == "" {
		return CategoryUnknown
	}

	for _, rule := range categoryRules {
		matched := pie.Any(rule.keywords, func(keyword string) bool {
			return strings.Contains(label, keyword)
		})
		if matched {
			return rule.category
		}
	}

	return CategoryUnknown
}
