// Package seed picks the random seed a session deals its boards from.
package seed

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// Daily returns a deterministic seed for a date using HMAC(salt, YYYY-MM-DD).
// Everyone with the same salt gets the same boards on the same day.
func Daily(date time.Time, salt string) int64 {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	// first 8 bytes; the sign bit is dropped so the seed stays non-negative
	return int64(binary.BigEndian.Uint64(sum[:8]) >> 1)
}

// Resolve returns *fixed when set (zero included), the daily seed when daily
// is set, and the clock otherwise.
func Resolve(fixed *int64, daily bool, salt string, now time.Time) int64 {
	switch {
	case fixed != nil:
		return *fixed
	case daily:
		return Daily(now, salt)
	default:
		return now.UnixNano()
	}
}
