package phrase

import (
	"strings"

	"github.com/elliotchance/pie/v2"

	"heartline/app/util/weathertext"
)

// Daylight vocabulary that must never show up after dark. A conservative
// denylist, not a semantic checker: lines that dodge these words slip through.
var nightDenylist = []string{"sunlight", "sunshine", "sunburn"}

// Incompatible reports whether a candidate line conflicts with the current
// time segment and weather category. Only night-time conflicts are flagged.
func Incompatible(line string, segment weathertext.Segment, category weathertext.Category) bool {
	if line == "" {
		return false
	}

	if segment != weathertext.SegmentNight {
		return false
	}

	lowered := strings.ToLower(line)

	// Explicit guard for "sunny" talk on a clear night, kept separate from
	// the general denylist below.
	if category == weathertext.CategoryClear && strings.Contains(lowered, "sunny") {
		return true
	}

	return pie.Any(nightDenylist, func(word string) bool {
		return strings.Contains(lowered, word)
	})
}
