package phrase

import (
	"math"
	"testing"

	"heartline/app/client/heart"
	"heartline/app/util/weathertext"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allSegments = []weathertext.Segment{
	weathertext.SegmentDay,
	weathertext.SegmentEvening,
	weathertext.SegmentNight,
}

var allCategories = []weathertext.Category{
	weathertext.CategoryClear,
	weathertext.CategoryCloudy,
	weathertext.CategoryRain,
	weathertext.CategoryThunder,
	weathertext.CategorySnow,
	weathertext.CategoryFog,
	weathertext.CategoryUnknown,
}

func TestWeatherLineIsTotal(t *testing.T) {
	for _, persona := range heart.AllPersonas {
		for _, segment := range allSegments {
			for _, category := range allCategories {
				line := WeatherLine(persona, category, segment)
				require.NotEmpty(t, line, "persona=%s segment=%s category=%s", persona, segment, category)
			}
		}
	}
}

func TestWeatherLinesAreSelfConsistent(t *testing.T) {
	// Night catalog entries must pass the filter they are the fallback for.
	for _, persona := range heart.AllPersonas {
		for _, category := range allCategories {
			line := WeatherLine(persona, category, weathertext.SegmentNight)
			assert.False(t, Incompatible(line, weathertext.SegmentNight, category),
				"night line %q contradicts itself", line)
		}
	}
}

func TestTemperatureLineBands(t *testing.T) {
	tests := []struct {
		name  string
		tempC float64
		want  bool
	}{
		{"deep cold", -3, true},
		{"cold boundary", 8, true},
		{"chilly", 10, true},
		{"chilly boundary", 12, true},
		{"mild low", 12.5, false},
		{"moderate", 20, false},
		{"warm", 29.9, false},
		{"hot boundary", 30, true},
		{"very hot boundary", 33, true},
		{"scorching", 38, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			temp := tt.tempC
			line, ok := TemperatureLine(heart.PersonaArisa, weathertext.SegmentDay, &temp)
			assert.Equal(t, tt.want, ok)
			assert.Equal(t, tt.want, line != "")
		})
	}
}

func TestTemperatureLineExtremeBandsWinOverMildOnes(t *testing.T) {
	cold, chilly := 5.0, 11.0
	coldLine, _ := TemperatureLine(heart.PersonaKonatsu, weathertext.SegmentDay, &cold)
	chillyLine, _ := TemperatureLine(heart.PersonaKonatsu, weathertext.SegmentDay, &chilly)
	assert.NotEqual(t, coldLine, chillyLine)

	scorching, hot := 35.0, 31.0
	scorchingLine, _ := TemperatureLine(heart.PersonaArisa, weathertext.SegmentDay, &scorching)
	hotLine, _ := TemperatureLine(heart.PersonaArisa, weathertext.SegmentDay, &hot)
	assert.NotEqual(t, scorchingLine, hotLine)
}

func TestTemperatureLineRejectsUnusableValues(t *testing.T) {
	_, ok := TemperatureLine(heart.PersonaArisa, weathertext.SegmentDay, nil)
	assert.False(t, ok)

	nan := math.NaN()
	_, ok = TemperatureLine(heart.PersonaArisa, weathertext.SegmentDay, &nan)
	assert.False(t, ok)

	inf := math.Inf(1)
	_, ok = TemperatureLine(heart.PersonaArisa, weathertext.SegmentDay, &inf)
	assert.False(t, ok)
}

func TestIncompatible(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		segment  weathertext.Segment
		category weathertext.Category
		want     bool
	}{
		{"empty line", "", weathertext.SegmentNight, weathertext.CategoryClear, false},
		{"sunlight at night", "The sunlight feels warm", weathertext.SegmentNight, weathertext.CategoryRain, true},
		{"sunshine at night", "So much sunshine today!", weathertext.SegmentNight, weathertext.CategoryCloudy, true},
		{"sunny on a clear night", "Such a sunny day", weathertext.SegmentNight, weathertext.CategoryClear, true},
		{"sunny on a rainy night passes", "Such a sunny mood", weathertext.SegmentNight, weathertext.CategoryRain, false},
		{"sunlight during the day", "The sunlight feels warm", weathertext.SegmentDay, weathertext.CategoryClear, false},
		{"sunlight in the evening", "The sunlight feels warm", weathertext.SegmentEvening, weathertext.CategoryClear, false},
		{"plain night line", "The stars are out", weathertext.SegmentNight, weathertext.CategoryClear, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Incompatible(tt.line, tt.segment, tt.category))
		})
	}
}
