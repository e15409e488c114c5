package heart

import "encoding/json"

// Persona is the id of a virtual character that may produce an utterance.
type Persona string

const (
	PersonaArisa   Persona = "arisa"
	PersonaKonatsu Persona = "konatsu"
)

var AllPersonas = []Persona{PersonaArisa, PersonaKonatsu}

func (p Persona) Valid() bool {
	for _, known := range AllPersonas {
		if p == known {
			return true
		}
	}

	return false
}

// Snapshot is one exported heart record (today.json). Timestamp fields are
// informational only and never consumed by the decision logic.
type Snapshot struct {
	UpdatedAt string
	TimeISO   string
	TimeLocal string

	// Weather is the free-text weather label, empty when absent.
	Weather string

	// TempC is nil when the snapshot carries no usable temperature.
	TempC *float64

	// Phrase maps persona id to an optional pre-authored line.
	Phrase map[Persona]string
}

// ScriptedPhrase returns the pre-authored line for the persona, if any.
func (s *Snapshot) ScriptedPhrase(p Persona) (string, bool) {
	if s == nil || s.Phrase == nil {
		return "", false
	}

	line, ok := s.Phrase[p]
	if !ok || line == "" {
		return "", false
	}

	return line, true
}

type rawSnapshot struct {
	UpdatedAt json.RawMessage `json:"updated_at"`
	TimeISO   json.RawMessage `json:"time_iso"`
	TimeLocal json.RawMessage `json:"time_local"`
	Weather   json.RawMessage `json:"weather"`
	TempC     json.RawMessage `json:"temp_c"`
	Phrase    json.RawMessage `json:"phrase"`
}

// UnmarshalJSON decodes every field independently so that a wrong-typed or
// missing field degrades to "absent" instead of failing the whole snapshot.
func (s *Snapshot) UnmarshalJSON(data []byte) error {
	var raw rawSnapshot
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	s.UpdatedAt = lenientString(raw.UpdatedAt)
	s.TimeISO = lenientString(raw.TimeISO)
	s.TimeLocal = lenientString(raw.TimeLocal)
	s.Weather = lenientString(raw.Weather)
	s.TempC = lenientNumber(raw.TempC)
	s.Phrase = lenientPhrases(raw.Phrase)

	return nil
}

func lenientString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		return ""
	}

	return value
}

func lenientNumber(raw json.RawMessage) *float64 {
	if len(raw) == 0 {
		return nil
	}

	var value float64
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil
	}

	return &value
}

func lenientPhrases(raw json.RawMessage) map[Persona]string {
	if len(raw) == 0 {
		return nil
	}

	var values map[Persona]json.RawMessage
	if err := json.Unmarshal(raw, &values); err != nil {
		return nil
	}

	result := make(map[Persona]string, len(values))
	for persona, rawLine := range values {
		if line := lenientString(rawLine); line != "" {
			result[persona] = line
		}
	}

	return result
}
