package jsonptr

import (
	"encoding/json"
	"strings"
	"time"
)

// Layouts tried, in order, when reading time text
var lenientLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	DefaultDateTimeLayout,
	DefaultDateLayout,
	"2006-01",
	"2006",
}

// ParseTime reads s with the first layout that accepts it: RFC 3339,
// ISO local date-time, "2006-01-02 15:04:05", date, year-month and year.
// Text without a zone is read as UTC.
func ParseTime(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range lenientLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// DateTime is a time.Time that encodes as "2006-01-02 15:04:05" and decodes
// leniently. Text that is not a time decodes to the zero value.
type DateTime struct {
	time.Time
}

// MarshalJSON implements json.Marshaler
func (d DateTime) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Format(DefaultDateTimeLayout))
}

// UnmarshalJSON implements json.Unmarshaler
func (d *DateTime) UnmarshalJSON(data []byte) error {
	d.Time = decodeLenientTime(data)
	return nil
}

// Date is a time.Time that encodes as "2006-01-02" and decodes leniently
type Date struct {
	time.Time
}

// MarshalJSON implements json.Marshaler
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Format(DefaultDateLayout))
}

// UnmarshalJSON implements json.Unmarshaler
func (d *Date) UnmarshalJSON(data []byte) error {
	t := decodeLenientTime(data)
	if !t.IsZero() {
		y, mo, day := t.Date()
		t = time.Date(y, mo, day, 0, 0, 0, 0, t.Location())
	}
	d.Time = t
	return nil
}

func decodeLenientTime(data []byte) time.Time {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return time.Time{}
	}
	t, _ := ParseTime(s)
	return t
}
