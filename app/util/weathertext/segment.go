package weathertext

// SegmentOf maps a local clock hour to its time-of-day segment. The three
// ranges partition the 24-hour clock: day [6,18), evening [18,21), night
// otherwise.
func SegmentOf(hour int) Segment {
	switch {
	case hour >= 6 && hour < 18:
		return SegmentDay
	case hour >= 18 && hour < 21:
		return SegmentEvening
	default:
		return SegmentNight
	}
}
