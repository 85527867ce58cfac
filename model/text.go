package model

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrNotScalar is returned when a text field receives a JSON object or array
var ErrNotScalar = errors.New("expected a string, number or boolean")

// Text is a request field that accepts any JSON scalar and keeps its textual form.
// Strings are used as-is, booleans keep their literal spelling, numbers are written
// in their shortest decimal form (5.0 -> "5", 1e3 -> "1000"), and null behaves
// like an absent key.
type Text string

// UnmarshalJSON implements json.Unmarshaler
func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*t = ""
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Text(s)
	case '{', '[':
		return ErrNotScalar
	case 't', 'f':
		*t = Text(data)
	default:
		*t = Text(formatNumber(string(data)))
	}
	return nil
}

// formatNumber renders a JSON number literal the way a browser's String(n) would.
// Magnitudes outside [1e-6, 1e21) use exponent form such as "1e+21" or "1.5e-7".
func formatNumber(literal string) string {
	v, err := strconv.ParseFloat(literal, 64)
	switch {
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		return "0"
	case err != nil:
		return literal
	}

	if abs := math.Abs(v); abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}

	mantissa, exp, _ := strings.Cut(strconv.FormatFloat(v, 'e', -1, 64), "e")
	sign, digits := exp[:1], strings.TrimLeft(exp[1:], "0")
	return mantissa + "e" + sign + digits
}

// Trimmed returns the value without leading and trailing whitespace
func (t Text) Trimmed() string {
	return strings.TrimSpace(string(t))
}

// OptionalText is an attribute that is either present with a value or absent.
// Absent values are stored as SQL NULL and encoded as JSON null.
type OptionalText struct {
	text    string
	present bool
}

// Some returns a present OptionalText holding s
func Some(s string) OptionalText {
	return OptionalText{text: s, present: true}
}

// None returns an absent OptionalText
func None() OptionalText {
	return OptionalText{}
}

// OptionalFromText trims t and treats a blank result as absent
func OptionalFromText(t Text) OptionalText {
	v := t.Trimmed()
	if v == "" {
		return None()
	}
	return Some(v)
}

// IsPresent reports whether a value is set
func (o OptionalText) IsPresent() bool {
	return o.present
}

// OrElse returns the value, or fallback when absent
func (o OptionalText) OrElse(fallback string) string {
	if !o.present {
		return fallback
	}
	return o.text
}

// Value implements driver.Valuer
func (o OptionalText) Value() (driver.Value, error) {
	if !o.present {
		return nil, nil
	}
	return o.text, nil
}

// Scan implements sql.Scanner
func (o *OptionalText) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*o = None()
	case string:
		*o = Some(v)
	case []byte:
		*o = Some(string(v))
	default:
		return fmt.Errorf("cannot scan %T into OptionalText", src)
	}
	return nil
}

// GormDataType tells gorm to map the field to a text column
func (OptionalText) GormDataType() string {
	return "text"
}

// MarshalJSON implements json.Marshaler
func (o OptionalText) MarshalJSON() ([]byte, error) {
	if !o.present {
		return []byte("null"), nil
	}
	return json.Marshal(o.text)
}

// UnmarshalJSON implements json.Unmarshaler
func (o *OptionalText) UnmarshalJSON(data []byte) error {
	var t Text
	if err := t.UnmarshalJSON(data); err != nil {
		return err
	}
	*o = OptionalFromText(t)
	return nil
}
