package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// TimeOfDay is a clock time with minute precision, stored as minutes since
// midnight (0 .. 1439). It is deliberately not a time.Time: bookings carry
// no date and no timezone, only a position within a day.
type TimeOfDay int

// ParseTimeOfDay parses a zero-padded "HH:MM" string (24-hour clock) into a
// TimeOfDay. Anything else, including trailing characters, is rejected with
// an error wrapping ErrValidation.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	hh, mm, ok := strings.Cut(s, ":")
	hour, hourOK := clockField(hh)
	minute, minuteOK := clockField(mm)
	if !ok || !hourOK || !minuteOK {
		return 0, fmt.Errorf("%w: time must be in HH:MM format, got %q", ErrValidation, s)
	}
	if hour > 23 || minute > 59 {
		return 0, fmt.Errorf("%w: time out of range: %q", ErrValidation, s)
	}
	return TimeOfDay(hour*60 + minute), nil
}

// clockField parses exactly two ASCII digits.
func clockField(s string) (int, bool) {
	if len(s) != 2 || s[0] < '0' || s[0] > '9' || s[1] < '0' || s[1] > '9' {
		return 0, false
	}
	return int(s[0]-'0')*10 + int(s[1]-'0'), true
}

// Minutes returns the number of minutes since midnight.
func (t TimeOfDay) Minutes() int { return int(t) }

// Hour returns the hour component (0..23).
func (t TimeOfDay) Hour() int { return int(t) / 60 }

// Minute returns the minute component (0..59).
func (t TimeOfDay) Minute() int { return int(t) % 60 }

// String renders the time as zero-padded 24-hour "HH:MM".
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// Format12H renders the time in 12-hour clock form, e.g. "9:30 AM".
// This matches the labels used on the schedule grid.
func (t TimeOfDay) Format12H() string {
	period := "AM"
	if t.Hour() >= 12 {
		period = "PM"
	}
	hour := t.Hour() % 12
	if hour == 0 {
		hour = 12
	}
	return fmt.Sprintf("%d:%02d %s", hour, t.Minute(), period)
}

// MarshalJSON encodes the time as an "HH:MM" JSON string.
func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON decodes an "HH:MM" JSON string.
func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseTimeOfDay(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
