package decision

import "time"

// Options tune a single decision call. Zero values fall back to the
// service-wide config defaults.
type Options struct {
	// MinCooldown is the minimum silence between utterances of the same
	// persona. Values below one minute are raised to one minute.
	MinCooldown time.Duration

	// BaseRate overrides the persona's default speak probability.
	BaseRate *float64

	// DaytimeOnly suppresses all output outside 06:00-23:00. Defaults to true.
	DaytimeOnly *bool

	// SessionStart marks the first turn of a session and boosts the
	// speak probability a little.
	SessionStart bool
}

// Outcome names the terminal state of one decision call.
type Outcome string

const (
	OutcomeNoSnapshot         Outcome = "no_snapshot"
	OutcomeSuppressedWindow   Outcome = "suppressed_time_window"
	OutcomeSuppressedCooldown Outcome = "suppressed_cooldown"
	OutcomeSilent             Outcome = "silent"
	OutcomeSpoken             Outcome = "spoken"
)
