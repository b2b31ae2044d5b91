package utils

import "time"

func NowUnixSeconds() int64 { return time.Now().Unix() }

// NightsBetween counts whole nights between check-in and check-out.
// Returns 0 when the range is inverted or empty.
func NightsBetween(checkIn, checkOut time.Time) int {
	if !checkOut.After(checkIn) {
		return 0
	}
	nights := int(checkOut.Sub(checkIn).Hours() / 24)
	if nights < 1 {
		return 1
	}
	return nights
}

// DaysUntilCheckIn measures how far ahead of check-in a booking is made.
// Both instants are supplied by the caller; the result is negative when the
// check-in date is already in the past.
func DaysUntilCheckIn(bookedAt, checkIn time.Time) int {
	return int(checkIn.Sub(bookedAt).Hours() / 24)
}

func FormatRFC3339(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}
