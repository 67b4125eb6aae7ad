package front

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

// NewID generates a client-side identifier of the form
// {prefix}-{timestamp}-{random}. Uniqueness rests on the random suffix,
// not on any validation; the server never rewrites these ids.
func NewID(prefix string) string {
	var b [4]byte
	if _, err := rand.Read(b[:]); err != nil {
		// crypto/rand only fails when the platform source is broken;
		// the timestamp still keeps ids unique enough to proceed.
		return fmt.Sprintf("%s-%d-0", prefix, time.Now().UnixMilli())
	}
	return fmt.Sprintf("%s-%d-%s", prefix, time.Now().UnixMilli(), hex.EncodeToString(b[:]))
}
