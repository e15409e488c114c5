package weathertext

// Category is the closed weather classification derived from free text.
type Category string

const (
	CategoryClear   Category = "clear"
	CategoryCloudy  Category = "cloudy"
	CategoryRain    Category = "rain"
	CategoryThunder Category = "thunder"
	CategorySnow    Category = "snow"
	CategoryFog     Category = "fog"
	CategoryUnknown Category = "unknown"
)

// Severe reports whether the category should nudge the persona to speak up.
func (c Category) Severe() bool {
	return c == CategoryRain || c == CategoryThunder || c == CategorySnow
}

// Segment is the closed time-of-day classification derived from hour-of-day.
type Segment string

const (
	SegmentDay     Segment = "day"
	SegmentEvening Segment = "evening"
	SegmentNight   Segment = "night"
)
