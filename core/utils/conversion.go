package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// blankMarker is the spelling spreadsheet tooling writes for an empty cell.
const blankMarker = "nan"

// Clean trims a raw value and maps the "nan" marker, in any case, to the empty string.
func Clean(s string) string {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, blankMarker) {
		return ""
	}
	return s
}

// ToFloatPtr parses a cleaned value. The empty string yields nil.
func ToFloatPtr(s string) (*float64, error) {
	s = Clean(s)
	if s == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid number %q", s)
	}
	return &f, nil
}

// ToIntPtr parses a cleaned value as an integer, accepting whole floats like "3.0".
func ToIntPtr(s string) (*int, error) {
	f, err := ToFloatPtr(s)
	if err != nil || f == nil {
		return nil, err
	}
	i := int(*f)
	if float64(i) != *f {
		return nil, fmt.Errorf("invalid integer %q", s)
	}
	return &i, nil
}

// ToString converts various types to their display string.
// Nil pointers become the empty string and floats use the shortest representation.
func ToString(val any) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case *string:
		if v == nil {
			return ""
		}
		return *v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case *float64:
		if v == nil {
			return ""
		}
		return strconv.FormatFloat(*v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case *int:
		if v == nil {
			return ""
		}
		return strconv.Itoa(*v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// Float returns a pointer to f.
func Float(f float64) *float64 {
	return &f
}

// Int returns a pointer to i.
func Int(i int) *int {
	return &i
}
