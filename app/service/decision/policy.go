package decision

import (
	"heartline/app/client/heart"
	"heartline/app/util/weathertext"
)

const (
	fallbackBaseRate = 0.15

	severeWeatherBoost  = 0.08
	changedWeatherBoost = 0.07
	sessionStartBoost   = 0.05
	extremeTempBoost    = 0.05

	coldExtremeC = 8.0
	hotExtremeC  = 33.0
)

var defaultBaseRates = map[heart.Persona]float64{
	heart.PersonaArisa:   0.20,
	heart.PersonaKonatsu: 0.10,
}

func extremeTemp(tempC *float64) bool {
	return tempC != nil && (*tempC <= coldExtremeC || *tempC >= hotExtremeC)
}

func (s *Service) baseRate(persona heart.Persona, override *float64) float64 {
	if override != nil {
		return *override
	}

	if rate, ok := s.cfg.Decision.BaseRates[string(persona)]; ok {
		return rate
	}

	if rate, ok := defaultBaseRates[persona]; ok {
		return rate
	}

	return fallbackBaseRate
}

// probability computes the chance the persona speaks this turn. All boosts
// are additive and independent; the result is clamped to [0,1] before the
// random draw ever sees it.
func (s *Service) probability(
	persona heart.Persona,
	category weathertext.Category,
	normalized string,
	lastWeather string,
	tempC *float64,
	opts Options,
) float64 {
	p := s.baseRate(persona, opts.BaseRate)

	if category.Severe() {
		p += severeWeatherBoost
	}

	if lastWeather != "" && lastWeather != normalized {
		p += changedWeatherBoost
	}

	if opts.SessionStart {
		p += sessionStartBoost
	}

	if extremeTemp(tempC) {
		p += extremeTempBoost
	}

	return clamp01(p)
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}

	return x
}
