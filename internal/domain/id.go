package domain

import (
	"strconv"
	"strings"
	"time"
)

// minTimestampDigits distinguishes a millisecond epoch timestamp from the
// small sequential ids of the original seed data (d1, d2, RPT-001, ...).
const minTimestampDigits = 11

// ParseIDTimestamp extracts the creation timestamp embedded in a
// time-derived id such as "d1712345678901" or "d1712345678901.0042".
// Leading non-digit characters (the entity prefix) and any fractional
// uniqueness suffix are ignored. ok is false when the numeric portion is
// too short to be a millisecond timestamp.
func ParseIDTimestamp(id string) (t time.Time, ok bool) {
	start := strings.IndexFunc(id, isDigit)
	if start < 0 {
		return time.Time{}, false
	}
	digits := id[start:]
	if dot := strings.IndexByte(digits, '.'); dot >= 0 {
		digits = digits[:dot]
	}
	end := strings.IndexFunc(digits, func(r rune) bool { return !isDigit(r) })
	if end >= 0 {
		digits = digits[:end]
	}
	if len(digits) < minTimestampDigits {
		return time.Time{}, false
	}
	ms, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return time.Time{}, false
	}
	return time.UnixMilli(ms), true
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }
