package booking

import (
	"net/url"
	"regexp"
	"testing"
	"time"
)

var bookingNumberPattern = regexp.MustCompile(`^RB\d{6}\d{3}$`)

func TestGenerateBookingNumberPattern(t *testing.T) {
	for i := 0; i < 10; i++ {
		n := GenerateBookingNumber()
		if !bookingNumberPattern.MatchString(n) {
			t.Fatalf("booking number %q does not match expected pattern", n)
		}
	}
}

func TestGenerateBookingNumberDistinctAcrossMillis(t *testing.T) {
	first := GenerateBookingNumber()
	// The time-derived component changes every millisecond, so numbers
	// generated in different windows cannot collide.
	time.Sleep(3 * time.Millisecond)
	second := GenerateBookingNumber()
	if first == second {
		t.Fatalf("booking numbers from different millisecond windows collided: %q", first)
	}
}

func TestGenerateCancellationToken(t *testing.T) {
	seen := make(map[string]bool)
	hexPattern := regexp.MustCompile(`^[0-9a-f]{64}$`)

	for i := 0; i < 100; i++ {
		tok, err := GenerateCancellationToken()
		if err != nil {
			t.Fatalf("GenerateCancellationToken error: %v", err)
		}
		if !hexPattern.MatchString(tok) {
			t.Fatalf("token %q is not 64 lowercase hex characters", tok)
		}
		if url.QueryEscape(tok) != tok {
			t.Fatalf("token %q changes under URL query encoding", tok)
		}
		if seen[tok] {
			t.Fatalf("duplicate token generated: %q", tok)
		}
		seen[tok] = true
	}
}
