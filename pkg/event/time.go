package event

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Time is a wall-clock pair of two-digit strings. After validation both
// fields are zero-padded and in range ("00"-"23" / "00"-"59").
type Time struct {
	Hours   string `json:"hours"`
	Minutes string `json:"minutes"`
}

// Midnight is the form's initial time value.
var Midnight = Time{Hours: "00", Minutes: "00"}

// MinuteOfDay returns hours*60+minutes, the time-of-day sort key.
func (t Time) MinuteOfDay() int {
	return parseClockInt(t.Hours)*60 + parseClockInt(t.Minutes)
}

// String renders the normalized "HH:MM" form.
func (t Time) String() string {
	v := ValidateTime(t.Hours, t.Minutes)
	return v.Hours + ":" + v.Minutes
}

// UnmarshalJSON accepts both the {hours, minutes} object shape and the
// legacy pre-formatted "HH:MM" string, re-validating either way.
func (t *Time) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err == nil {
		*t = TimeFrom(raw)
		return nil
	}
	type plain Time
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return fmt.Errorf("event: cannot parse time %s: %w", string(b), err)
	}
	*t = ValidateTime(p.Hours, p.Minutes)
	return nil
}

// TimeFrom parses a pre-formatted "HH:MM" value, applying the same
// clamp-and-repair policy as ValidateTime.
func TimeFrom(s string) Time {
	hours, minutes, _ := strings.Cut(s, ":")
	return ValidateTime(hours, minutes)
}

// ValidateTime parses each field as an integer (non-numeric input
// coerces to 0), clamps hours to [0,23] and minutes to [0,59], and
// re-pads both to two digits. Out-of-range input is silently corrected,
// never rejected.
func ValidateTime(hoursRaw, minutesRaw string) Time {
	h := clampInt(parseClockInt(hoursRaw), 0, 23)
	m := clampInt(parseClockInt(minutesRaw), 0, 59)
	return Time{
		Hours:   fmt.Sprintf("%02d", h),
		Minutes: fmt.Sprintf("%02d", m),
	}
}

// FormatEventTime normalizes either a pre-formatted "HH:MM" string or a
// Time value to the zero-padded "HH:MM" form.
func FormatEventTime(v any) string {
	switch t := v.(type) {
	case string:
		return TimeFrom(t).String()
	case Time:
		return t.String()
	case *Time:
		if t != nil {
			return t.String()
		}
	}
	return Midnight.String()
}

func parseClockInt(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}
	return n
}

func clampInt(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
