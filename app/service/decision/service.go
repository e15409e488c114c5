package decision

import (
	"log/slog"
	"math/rand/v2"
	"time"

	"heartline/app/client/heart"
	"heartline/app/config"
	"heartline/app/service/phrase"
	"heartline/app/service/speakstate"
	"heartline/app/util/weathertext"

	"github.com/samber/do"
)

const (
	minCooldownFloor   = time.Minute
	tempOverrideChance = 0.4

	// Outside this hour window the personas stay silent (when daytimeOnly).
	quietBeforeHour = 6
	quietAfterHour  = 23
)

// Service decides, per conversational turn, whether a persona utters a
// weather-flavored remark and which one. Exactly one decision is expected at
// a time per persona; the store below is only guarded against the file-level
// races, not against two overlapping decisions for the same persona.
type Service struct {
	cfg   *config.Config
	store speakstate.Store

	// Injected so tests can pin the clock and force either draw branch.
	now       func() time.Time
	randFloat func() float64
}

func New(di *do.Injector) (*Service, error) {
	return &Service{
		cfg:       do.MustInvoke[*config.Config](di),
		store:     do.MustInvoke[*speakstate.Service](di),
		now:       time.Now,
		randFloat: rand.Float64,
	}, nil
}

// Decide is the sole entry point of the core. It returns the chosen line and
// the terminal state of the call; the line is empty unless the outcome is
// OutcomeSpoken. A nil snapshot means "nothing to say" and touches no state.
func (s *Service) Decide(persona heart.Persona, snapshot *heart.Snapshot, opts Options) (string, Outcome) {
	if snapshot == nil {
		return "", OutcomeNoSnapshot
	}

	now := s.now()
	hour := now.Hour()
	segment := weathertext.SegmentOf(hour)

	daytimeOnly := true
	if opts.DaytimeOnly != nil {
		daytimeOnly = *opts.DaytimeOnly
	} else if s.cfg.Decision.DaytimeOnly != nil {
		daytimeOnly = *s.cfg.Decision.DaytimeOnly
	}

	if daytimeOnly && (hour < quietBeforeHour || hour >= quietAfterHour) {
		return "", OutcomeSuppressedWindow
	}

	if s.onCooldown(persona, now, opts) {
		return "", OutcomeSuppressedCooldown
	}

	normalized := weathertext.Normalize(snapshot.Weather)
	category := weathertext.Categorize(normalized)

	lastWeather, _ := s.store.Get(speakstate.LastWeatherKey())
	p := s.probability(persona, category, normalized, lastWeather, snapshot.TempC, opts)

	if s.randFloat() >= p {
		// Remember the latest observed label even on silence so the next
		// "weather changed" boost compares against it.
		s.store.Set(speakstate.LastWeatherKey(), normalized)
		return "", OutcomeSilent
	}

	line := s.pickLine(persona, snapshot, category, segment)

	s.store.Set(speakstate.LastWeatherKey(), normalized)
	s.store.Set(speakstate.LastSpeakAtKey(persona), now.Format(time.RFC3339))

	slog.Debug("Persona speaks",
		"persona", persona,
		"category", category,
		"segment", segment,
		"probability", p,
	)

	return line, OutcomeSpoken
}

func (s *Service) onCooldown(persona heart.Persona, now time.Time, opts Options) bool {
	cooldown := opts.MinCooldown
	if cooldown <= 0 {
		cooldown = time.Duration(s.cfg.Decision.CooldownMinutes) * time.Minute
	}
	if cooldown < minCooldownFloor {
		cooldown = minCooldownFloor
	}

	raw, ok := s.store.Get(speakstate.LastSpeakAtKey(persona))
	if !ok {
		return false
	}

	lastAt, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		// A garbled timestamp counts as never having spoken.
		return false
	}

	elapsed := now.Sub(lastAt)
	if elapsed < 0 {
		elapsed = -elapsed
	}

	return elapsed < cooldown
}

// pickLine prefers a compatible pre-authored phrase, falls back to the stock
// catalog line, then lets an extreme-temperature remark take over: always for
// quiet categories, only sometimes when the weather itself is worth a line.
func (s *Service) pickLine(
	persona heart.Persona,
	snapshot *heart.Snapshot,
	category weathertext.Category,
	segment weathertext.Segment,
) string {
	var line string

	if scripted, ok := snapshot.ScriptedPhrase(persona); ok && !phrase.Incompatible(scripted, segment, category) {
		line = scripted
	}

	if line == "" {
		line = phrase.WeatherLine(persona, category, segment)
	}

	if tempLine, ok := phrase.TemperatureLine(persona, segment, snapshot.TempC); ok {
		if category.Severe() {
			if s.randFloat() < tempOverrideChance {
				line = tempLine
			}
		} else {
			line = tempLine
		}
	}

	return line
}
