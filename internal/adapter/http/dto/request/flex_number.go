package request

import (
	"encoding/json"
	"strconv"
	"strings"
)

// FlexNumber accepts the loose numeric input a form field produces: a JSON
// number, a numeric string, an empty string or null. Empty and null mean the
// field was cleared (Value nil); text that fails to parse is coerced to zero
// instead of rejected. Unmarshalling never returns an error: strict range
// checks belong to submit-time validation, not the parsing boundary.
//
// Present distinguishes an absent field from a cleared one. It is only set by
// UnmarshalJSON, which encoding/json invokes for every field that appears in
// the payload, JSON null included, as long as the struct field is a value and
// not a pointer.
type FlexNumber struct {
	Present bool
	Value   *float64
}

func (f *FlexNumber) UnmarshalJSON(b []byte) error {
	f.Present = true
	f.Value = nil

	var asNumber float64
	if err := json.Unmarshal(b, &asNumber); err == nil {
		f.Value = &asNumber
		return nil
	}

	var asString string
	if err := json.Unmarshal(b, &asString); err == nil {
		asString = strings.TrimSpace(asString)
		if asString == "" {
			return nil
		}
		if parsed, err := strconv.ParseFloat(asString, 64); err == nil {
			f.Value = &parsed
			return nil
		}
		zero := 0.0
		f.Value = &zero
		return nil
	}

	// null, or a shape that is not a number at all: cleared.
	if strings.TrimSpace(string(b)) == "null" {
		return nil
	}
	zero := 0.0
	f.Value = &zero
	return nil
}

// FloatOrZero resolves the cleared state to an explicit zero, the way the
// line-item inputs do.
func (f *FlexNumber) FloatOrZero() *float64 {
	if f.Value != nil {
		return f.Value
	}
	zero := 0.0
	return &zero
}
