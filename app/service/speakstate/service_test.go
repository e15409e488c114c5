package speakstate

import (
	"os"
	"path/filepath"
	"testing"

	"heartline/app/client/heart"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreRoundtrip(t *testing.T) {
	store := NewAt(filepath.Join(t.TempDir(), "speakstate.json"))

	_, ok := store.Get(LastWeatherKey())
	assert.False(t, ok)

	store.Set(LastWeatherKey(), "rain")
	store.Set(LastSpeakAtKey(heart.PersonaArisa), "2026-03-14T14:30:00Z")

	value, ok := store.Get(LastWeatherKey())
	require.True(t, ok)
	assert.Equal(t, "rain", value)

	value, ok = store.Get(LastSpeakAtKey(heart.PersonaArisa))
	require.True(t, ok)
	assert.Equal(t, "2026-03-14T14:30:00Z", value)

	_, ok = store.Get(LastSpeakAtKey(heart.PersonaKonatsu))
	assert.False(t, ok, "per-persona keys must not leak across personas")
}

func TestStoreSurvivesProcessRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "speakstate.json")

	NewAt(path).Set(LastWeatherKey(), "cloudy")

	value, ok := NewAt(path).Get(LastWeatherKey())
	require.True(t, ok)
	assert.Equal(t, "cloudy", value)
}

func TestStoreSwallowsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "speakstate.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	store := NewAt(path)

	_, ok := store.Get(LastWeatherKey())
	assert.False(t, ok, "a corrupt file reads as empty state")

	// A write resets the file instead of failing.
	store.Set(LastWeatherKey(), "fog")

	value, ok := store.Get(LastWeatherKey())
	require.True(t, ok)
	assert.Equal(t, "fog", value)
}

func TestStoreKeys(t *testing.T) {
	assert.Equal(t, "heart:lastWeather", LastWeatherKey())
	assert.Equal(t, "heart:lastSpeakAt:arisa", LastSpeakAtKey(heart.PersonaArisa))
	assert.Equal(t, "heart:lastSpeakAt:konatsu", LastSpeakAtKey(heart.PersonaKonatsu))
}
