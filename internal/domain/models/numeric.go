package models

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// FlexFloat is a float64 that also accepts quoted numeric strings on the wire.
// Admin forms submit weights and quantities as text, so "245.50" and 245.5
// must decode to the same value.
type FlexFloat float64

// UnmarshalJSON accepts a JSON number, a numeric string, or null/"" (zero).
func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*f = 0
		return nil
	}

	s := string(data)
	if s[0] == '"' {
		unquoted, err := strconv.Unquote(s)
		if err != nil {
			return fmt.Errorf("invalid numeric string %s: %w", s, err)
		}
		s = strings.TrimSpace(strings.ReplaceAll(unquoted, ",", ""))
		if s == "" {
			*f = 0
			return nil
		}
	}

	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid numeric value %q: %w", s, err)
	}

	*f = FlexFloat(value)
	return nil
}

// MarshalJSON always emits a plain JSON number.
func (f FlexFloat) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatFloat(float64(f), 'f', -1, 64)), nil
}

// Float64 returns the underlying value.
func (f FlexFloat) Float64() float64 { return float64(f) }

// FlexInt is an int that also accepts quoted numeric strings on the wire.
type FlexInt int

// UnmarshalJSON accepts a JSON integer, a numeric string, or null/"" (zero).
func (i *FlexInt) UnmarshalJSON(data []byte) error {
	var f FlexFloat
	if err := f.UnmarshalJSON(data); err != nil {
		return err
	}
	*i = FlexInt(f)
	return nil
}

// MarshalJSON always emits a plain JSON integer.
func (i FlexInt) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Itoa(int(i))), nil
}

// Int returns the underlying value.
func (i FlexInt) Int() int { return int(i) }
