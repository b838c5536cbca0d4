package util

import "time"

// isoMillis matches the ISO-8601 layout browsers produce with toISOString.
const isoMillis = "2006-01-02T15:04:05.000Z07:00"

// NowUTC exposes time.Now for deterministic testing.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// FormatISO renders t in UTC with millisecond precision.
func FormatISO(t time.Time) string {
	return t.UTC().Format(isoMillis)
}

// FromUnix converts epoch seconds to an ISO timestamp.
func FromUnix(sec int64) string {
	return FormatISO(time.Unix(sec, 0))
}
