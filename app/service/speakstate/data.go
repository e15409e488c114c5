package speakstate

import "heartline/app/client/heart"

// Store is the persisted key-value state the decision core reads and writes.
// The host application owns the medium; implementations must be best-effort,
// a broken store must never block the conversational flow.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string)
}

const lastWeatherKey = "heart:lastWeather"

// LastWeatherKey is the shared key holding the last observed normalized label.
func LastWeatherKey() string {
	return lastWeatherKey
}

// LastSpeakAtKey is the per-persona key holding the last utterance timestamp.
func LastSpeakAtKey(persona heart.Persona) string {
	return "heart:lastSpeakAt:" + string(persona)
}
