package booking

import (
	"strings"
	"time"

	"ridebook/models"
)

// ImmediatePhrase is the sentinel the booking form sends for rides that
// should be dispatched right away. It doubles as the display text.
const ImmediatePhrase = "As soon as possible"

const rideTimeLayout = "Monday, January 2, 2006 at 3:04 PM"

// DisplayRideTime renders the requested pickup time for notification bodies.
// Scheduled rides with a parseable timestamp get a full date and short time;
// everything else reads as immediate dispatch. A scheduled value that fails
// to parse is shown verbatim rather than failing the booking.
func DisplayRideTime(rideType, dateTime string) string {
	if rideType != models.RideTypeScheduled {
		return ImmediatePhrase
	}
	dateTime = strings.TrimSpace(dateTime)
	if dateTime == "" || strings.EqualFold(dateTime, ImmediatePhrase) {
		return ImmediatePhrase
	}
	t, err := time.Parse(time.RFC3339, dateTime)
	if err != nil {
		return dateTime
	}
	return t.UTC().Format(rideTimeLayout)
}
