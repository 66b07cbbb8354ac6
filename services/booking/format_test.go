package booking

import (
	"strings"
	"testing"

	"ridebook/models"
)

func TestDisplayRideTimeScheduled(t *testing.T) {
	got := DisplayRideTime(models.RideTypeScheduled, "2025-03-01T10:00:00Z")
	if got == "2025-03-01T10:00:00Z" {
		t.Fatal("scheduled ride time rendered as the raw ISO string")
	}
	if !strings.Contains(got, "March 1, 2025") {
		t.Fatalf("formatted time %q missing full date", got)
	}
	if !strings.Contains(got, "10:00 AM") {
		t.Fatalf("formatted time %q missing short time", got)
	}
}

func TestDisplayRideTimeSentinel(t *testing.T) {
	// The sentinel wins regardless of ride type.
	for _, rideType := range []string{models.RideTypeImmediate, models.RideTypeScheduled} {
		if got := DisplayRideTime(rideType, "As soon as possible"); got != ImmediatePhrase {
			t.Fatalf("DisplayRideTime(%s, sentinel) = %q, want %q", rideType, got, ImmediatePhrase)
		}
	}
	if got := DisplayRideTime(models.RideTypeScheduled, "as SOON as Possible"); got != ImmediatePhrase {
		t.Fatalf("sentinel comparison is case-sensitive: got %q", got)
	}
}

func TestDisplayRideTimeImmediateType(t *testing.T) {
	if got := DisplayRideTime(models.RideTypeImmediate, "2025-03-01T10:00:00Z"); got != ImmediatePhrase {
		t.Fatalf("immediate ride rendered %q, want %q", got, ImmediatePhrase)
	}
}

func TestDisplayRideTimeUnparseableFallsThrough(t *testing.T) {
	if got := DisplayRideTime(models.RideTypeScheduled, "next tuesday"); got != "next tuesday" {
		t.Fatalf("unparseable scheduled time rendered %q, want raw input", got)
	}
}
