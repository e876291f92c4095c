package claimset

import (
	"strings"
	"time"
)

// Date-only forms are UTC; date-time forms without a zone use the local zone.
var (
	dateLayouts = []string{
		"2006-01-02",
		"2006-01",
		"2006",
	}
	zonedLayouts = []string{
		time.RFC3339Nano,
		"2006-01-02T15:04Z07:00",
	}
	localLayouts = []string{
		"2006-01-02T15:04:05.999999999",
		"2006-01-02T15:04",
	}
)

// ParseTimestamp parses a W3C date/time string.
func ParseTimestamp(s string, loc *time.Location) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if loc == nil {
		loc = time.Local
	}
	// Accept a space separator and a lowercase zulu marker.
	if len(s) > 10 && s[10] == ' ' {
		s = s[:10] + "T" + s[11:]
	}
	if strings.HasSuffix(s, "z") {
		s = s[:len(s)-1] + "Z"
	}

	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, true
		}
	}
	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ToNumericDate converts a date/time string to epoch seconds, floor(ms/1000).
func ToNumericDate(s string, loc *time.Location) NumericDate {
	t, ok := ParseTimestamp(s, loc)
	if !ok {
		return NaN()
	}
	ms := t.UnixMilli()
	sec := ms / 1000
	if ms%1000 < 0 {
		sec--
	}
	return NumericDate(sec)
}

// FormatTimestamp renders t the way the form's "now" buttons do: UTC, millisecond precision.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z")
}
