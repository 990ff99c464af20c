package entities

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseTimezoneLocation resolves the configured timezone. It accepts:
// - IANA names like "Europe/Berlin"
// - "UTC" / "GMT" / "Local"
// - fixed offsets: "UTC+3", "UTC-7", "UTC+5:30", "+3", "-03:30"
//
// Fixed offsets map to time.FixedZone and ignore DST.
func ParseTimezoneLocation(tz string) (*time.Location, error) {
	tz = strings.TrimSpace(tz)
	switch {
	case tz == "", strings.EqualFold(tz, "UTC"), strings.EqualFold(tz, "Etc/UTC"), strings.EqualFold(tz, "GMT"):
		return time.UTC, nil
	case strings.EqualFold(tz, "Local"):
		return time.Local, nil
	}

	if loc, err := time.LoadLocation(tz); err == nil {
		return loc, nil
	}

	offset, ok := parseUTCOffset(tz)
	if !ok {
		return nil, fmt.Errorf("unsupported timezone %q", tz)
	}
	return time.FixedZone(offsetName(offset), offset), nil
}

// parseUTCOffset returns the offset in seconds for "+3", "-03:30" or "UTC+5:30".
func parseUTCOffset(tz string) (int, bool) {
	s := tz
	if len(s) >= 3 && strings.EqualFold(s[:3], "UTC") {
		s = strings.TrimSpace(s[3:])
		if s == "" {
			return 0, true
		}
	}
	if len(s) < 2 || (s[0] != '+' && s[0] != '-') {
		return 0, false
	}

	sign := 1
	if s[0] == '-' {
		sign = -1
	}

	hours, minutes, found := strings.Cut(s[1:], ":")
	if !found {
		minutes = "0"
	}

	h, err := strconv.Atoi(hours)
	if err != nil || h < 0 || h > 14 {
		return 0, false
	}
	m, err := strconv.Atoi(minutes)
	if err != nil || m < 0 || m >= 60 {
		return 0, false
	}

	return sign * (h*3600 + m*60), true
}

func offsetName(offset int) string {
	sign := '+'
	if offset < 0 {
		sign = '-'
		offset = -offset
	}
	return fmt.Sprintf("UTC%c%02d:%02d", sign, offset/3600, (offset%3600)/60)
}

// civilDay maps t to midnight UTC of its calendar date in loc.
// Day arithmetic on the result is immune to DST transitions.
func civilDay(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SameDay reports whether a and b fall on the same calendar day in loc.
func SameDay(a, b time.Time, loc *time.Location) bool {
	return civilDay(a, loc).Equal(civilDay(b, loc))
}

// CalendarDaysBetween returns the number of calendar days from a to b in loc.
// It is negative when b is on an earlier day.
func CalendarDaysBetween(a, b time.Time, loc *time.Location) int {
	return int(civilDay(b, loc).Sub(civilDay(a, loc)).Hours() / 24)
}
