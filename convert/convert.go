// Package convert provides ready-made value converters for common document
// value representations: datetimes, timestamps, durations, booleans, and
// textual numbers. All of them fail with an error on unconvertible input;
// the transcoder engine treats such failures as fatal misconfiguration.
package convert

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Datetime converts between a textual datetime property and time.Time.
// Layout defaults to RFC3339Nano.
type Datetime struct {
	Layout string
}

func (c Datetime) layout() string {
	if c.Layout == "" {
		return time.RFC3339Nano
	}

	return c.Layout
}

func (c Datetime) Decode(raw any) (any, error) {
	s, ok := raw.(string)
	if !ok {
		return nil, fmt.Errorf("convert: datetime: expected string, got %T", raw)
	}

	t, err := time.Parse(c.layout(), s)
	if err != nil {
		return nil, fmt.Errorf("convert: datetime: %w", err)
	}

	return t, nil
}

func (c Datetime) Encode(value any) (any, error) {
	t, ok := value.(time.Time)
	if !ok {
		return nil, fmt.Errorf("convert: datetime: expected time.Time, got %T", value)
	}

	return t.Format(c.layout()), nil
}

// Timestamp converts between a Unix-seconds number and time.Time.
type Timestamp struct{}

func (Timestamp) Decode(raw any) (any, error) {
	n, ok := asInt64(raw)
	if !ok {
		return nil, fmt.Errorf("convert: timestamp: expected integer, got %T", raw)
	}

	return time.Unix(n, 0).UTC(), nil
}

func (Timestamp) Encode(value any) (any, error) {
	t, ok := value.(time.Time)
	if !ok {
		return nil, fmt.Errorf("convert: timestamp: expected time.Time, got %T", value)
	}

	return t.Unix(), nil
}

// Duration converts between a textual duration ("2h45m") and time.Duration.
type Duration struct{}

func (Duration) Decode(raw any) (any, error) {
	s, ok := raw.(string)
	if !ok {
		return nil, fmt.Errorf("convert: duration: expected string, got %T", raw)
	}

	d, err := time.ParseDuration(s)
	if err != nil {
		return nil, fmt.Errorf("convert: duration: %w", err)
	}

	return d, nil
}

func (Duration) Encode(value any) (any, error) {
	d, ok := value.(time.Duration)
	if !ok {
		return nil, fmt.Errorf("convert: duration: expected time.Duration, got %T", value)
	}

	return d.String(), nil
}

// Seconds converts between a floating-point seconds number and
// time.Duration.
type Seconds struct{}

func (Seconds) Decode(raw any) (any, error) {
	f, ok := asFloat64(raw)
	if !ok {
		return nil, fmt.Errorf("convert: seconds: expected number, got %T", raw)
	}

	return time.Duration(f * float64(time.Second)), nil
}

func (Seconds) Encode(value any) (any, error) {
	d, ok := value.(time.Duration)
	if !ok {
		return nil, fmt.Errorf("convert: seconds: expected time.Duration, got %T", value)
	}

	return d.Seconds(), nil
}

// TextualBool converts between a textual boolean (yes/no, on/off,
// true/false, case-insensitive) and bool. Encoding emits True/False, which
// default to "true"/"false".
type TextualBool struct {
	True  string
	False string
}

func (c TextualBool) Decode(raw any) (any, error) {
	s, ok := raw.(string)
	if !ok {
		return nil, fmt.Errorf("convert: textual bool: expected string, got %T", raw)
	}

	switch strings.ToLower(s) {
	case "yes", "on", "true":
		return true, nil
	case "no", "off", "false":
		return false, nil
	default:
		return nil, fmt.Errorf("convert: textual bool: unrecognized value %q", s)
	}
}

func (c TextualBool) Encode(value any) (any, error) {
	b, ok := value.(bool)
	if !ok {
		return nil, fmt.Errorf("convert: textual bool: expected bool, got %T", value)
	}

	if b {
		return orDefault(c.True, "true"), nil
	}

	return orDefault(c.False, "false"), nil
}

// NumericBool converts between a 0/1 number and bool.
type NumericBool struct{}

func (NumericBool) Decode(raw any) (any, error) {
	n, ok := asInt64(raw)
	if !ok {
		return nil, fmt.Errorf("convert: numeric bool: expected integer, got %T", raw)
	}

	switch n {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return nil, fmt.Errorf("convert: numeric bool: expected 0 or 1, got %d", n)
	}
}

func (NumericBool) Encode(value any) (any, error) {
	b, ok := value.(bool)
	if !ok {
		return nil, fmt.Errorf("convert: numeric bool: expected bool, got %T", value)
	}

	if b {
		return int64(1), nil
	}

	return int64(0), nil
}

// TextNumber converts between a textual number representation and float64.
type TextNumber struct{}

func (TextNumber) Decode(raw any) (any, error) {
	s, ok := raw.(string)
	if !ok {
		return nil, fmt.Errorf("convert: text number: expected string, got %T", raw)
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("convert: text number: %w", err)
	}

	return f, nil
}

func (TextNumber) Encode(value any) (any, error) {
	f, ok := asFloat64(value)
	if !ok {
		return nil, fmt.Errorf("convert: text number: expected number, got %T", value)
	}

	return strconv.FormatFloat(f, 'f', -1, 64), nil
}

// asInt64 coerces the numeric representations JSON decoding and Go callers
// commonly produce. Floats must be whole.
func asInt64(v any) (int64, bool) {
	switch tv := v.(type) {
	case int:
		return int64(tv), true
	case int64:
		return tv, true
	case float64:
		n := int64(tv)
		if float64(n) != tv {
			return 0, false
		}

		return n, true
	default:
		return 0, false
	}
}

func asFloat64(v any) (float64, bool) {
	switch tv := v.(type) {
	case int:
		return float64(tv), true
	case int64:
		return float64(tv), true
	case float64:
		return tv, true
	default:
		return 0, false
	}
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}

	return s
}
