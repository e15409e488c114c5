package phrase

import (
	"math"

	"heartline/app/client/heart"
	"heartline/app/util/weathertext"
)

// personaLines holds one stock line per weather category, arisa's voice first.
type personaLines struct {
	arisa   string
	konatsu string
}

var weatherLines = map[weathertext.Segment]map[weathertext.Category]personaLines{
	weathertext.SegmentDay: {
		weathertext.CategoryClear:   {"The sky feels so high today", "The sunlight's a little strong, huh"},
		weathertext.CategoryCloudy:  {"This kind of sky makes me sleepy", "The sky looks heavy today"},
		weathertext.CategoryRain:    {"The sound of rain is calming", "It's wet out there, be careful"},
		weathertext.CategoryThunder: {"The thunder sounds close... stay safe", "The sky is really rumbling"},
		weathertext.CategorySnow:    {"Everything goes quiet when it's white outside", "Definitely glove weather"},
		weathertext.CategoryFog:     {"The air feels damp and soft", "Can't see very far today"},
		weathertext.CategoryUnknown: {"The air smells a little different", "Might be the pressure shifting"},
	},
	weathertext.SegmentEvening: {
		weathertext.CategoryClear:   {"The sunset is beautiful", "The whole sky has gone orange"},
		weathertext.CategoryCloudy:  {"The evening clouds are hanging low", "The wind's died down, maybe"},
		weathertext.CategoryRain:    {"You can smell the rain on the ground", "It's getting quieter out there"},
		weathertext.CategoryThunder: {"That lightning is a little scary", "You can feel it in your chest"},
		weathertext.CategorySnow:    {"Snow is drifting in the streetlights", "Watch your step out there"},
		weathertext.CategoryFog:     {"The town looks a little blurry", "The lights are all smudged"},
		weathertext.CategoryUnknown: {"The sky changes so slowly at this hour", "The air is turning over"},
	},
	weathertext.SegmentNight: {
		weathertext.CategoryClear:   {"The stars are really clear tonight", "The sky is so quiet"},
		weathertext.CategoryCloudy:  {"The night sky feels heavy", "The wind has stopped"},
		weathertext.CategoryRain:    {"Rain at night slows my heartbeat", "All I can hear is umbrellas"},
		weathertext.CategoryThunder: {"Night thunder echoes in my chest", "That flash... it was close"},
		weathertext.CategorySnow:    {"The snow swallows every sound", "The air feels so tight"},
		weathertext.CategoryFog:     {"The night fog is so still", "Walking mixes you into the white"},
		weathertext.CategoryUnknown: {"The air is soft tonight", "The sky's in a good mood, maybe"},
	},
}

// WeatherLine returns a persona- and segment-flavored stock line for the
// category. The table covers every category including unknown, so this is
// total for in-domain inputs.
func WeatherLine(persona heart.Persona, category weathertext.Category, segment weathertext.Segment) string {
	segmentTable, ok := weatherLines[segment]
	if !ok {
		segmentTable = weatherLines[weathertext.SegmentNight]
	}

	lines, ok := segmentTable[category]
	if !ok {
		lines = segmentTable[weathertext.CategoryUnknown]
	}

	return lines.pick(persona)
}

func (l personaLines) pick(persona heart.Persona) string {
	if persona == heart.PersonaArisa {
		return l.arisa
	}

	return l.konatsu
}

// TemperatureLine returns a remark only for extreme temperatures. Bands are
// checked coldest/hottest first so a value at or below 8 never lands in the
// milder band. Moderate, absent or non-finite values produce nothing.
func TemperatureLine(persona heart.Persona, segment weathertext.Segment, tempC *float64) (string, bool) {
	if tempC == nil || math.IsNaN(*tempC) || math.IsInf(*tempC, 0) {
		return "", false
	}

	t := *tempC
	arisa := persona == heart.PersonaArisa

	switch {
	case t <= 8:
		if arisa {
			return "My fingers are going numb...", true
		}
		return "So cold... I don't want to go outside", true
	case t <= 12:
		if arisa {
			return "The chill in the air feels kind of nice", true
		}
		return "It's getting pretty chilly", true
	case t >= 33:
		if arisa {
			return "It's so hot I might melt...", true
		}
		return "I want ice cream...", true
	case t >= 30:
		if arisa {
			return "This heat makes it hard to breathe", true
		}
		return "Don't push yourself out there", true
	default:
		return "", false
	}
}
