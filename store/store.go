package store

import "ridebook/models"

// BookingStore keeps active bookings keyed by their cancellation token.
// A record is present if and only if the ride is still active.
type BookingStore interface {
	Put(token string, b models.Booking)
	Get(token string) (models.Booking, bool)
	Has(token string) bool
	// Remove deletes the record for token if present and reports whether a
	// record was removed. Lookup and deletion happen in one critical section,
	// so concurrent callers racing on the same token see exactly one removal.
	Remove(token string) (models.Booking, bool)
	Len() int
	Clear()
}
