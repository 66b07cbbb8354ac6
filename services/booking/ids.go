package booking

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	mathrand "math/rand"
	"time"
)

const bookingNumberPrefix = "RB"

// GenerateBookingNumber produces a short human-readable identifier:
// prefix + last six digits of the current epoch millis + a zero-padded
// three-digit random suffix. Uniqueness is weak (two requests in the same
// millisecond window can collide), which is acceptable for a low-volume
// booking form.
func GenerateBookingNumber() string {
	millis := time.Now().UnixMilli()
	return fmt.Sprintf("%s%06d%03d", bookingNumberPrefix, millis%1_000_000, mathrand.Intn(1000))
}

// GenerateCancellationToken produces a 64-character hex string from 32 bytes
// of cryptographically secure randomness. The token is a capability: anyone
// holding it may cancel the booking, so it must be unguessable.
func GenerateCancellationToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate cancellation token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
