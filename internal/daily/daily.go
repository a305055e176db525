// apps/go-server/internal/daily/daily.go
//
// Deterministic daily selection shared by every game's daily mode.
// The puzzle for a date is stable for the whole UTC day and changes at the
// UTC day boundary: HMAC(salt, YYYY-MM-DD) reduced modulo the catalog size.

package daily

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

// Index returns a deterministic catalog index for a date using
// HMAC(salt, DateKey) % n. n must be positive; zero and below map to 0.
func Index(date time.Time, salt string, n int) int {
	if n <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	// take first 8 bytes to uint64 for modulus distribution
	v := binary.BigEndian.Uint64(sum[:8])
	return int(v % uint64(n))
}
