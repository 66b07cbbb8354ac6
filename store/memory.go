package store

import (
	"sync"

	"ridebook/models"
)

// MemoryBookingStore is the process-lifetime implementation of BookingStore.
// Records live until cancelled or until the process exits; there is no
// eviction and no persistence.
type MemoryBookingStore struct {
	mu       sync.RWMutex
	bookings map[string]models.Booking
}

// NewMemoryBookingStore returns an empty in-memory store.
func NewMemoryBookingStore() *MemoryBookingStore {
	return &MemoryBookingStore{
		bookings: make(map[string]models.Booking),
	}
}

func (s *MemoryBookingStore) Put(token string, b models.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookings[token] = b
}

func (s *MemoryBookingStore) Get(token string) (models.Booking, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.bookings[token]
	return b, ok
}

func (s *MemoryBookingStore) Has(token string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.bookings[token]
	return ok
}

func (s *MemoryBookingStore) Remove(token string) (models.Booking, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bookings[token]
	if ok {
		delete(s.bookings, token)
	}
	return b, ok
}

func (s *MemoryBookingStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.bookings)
}

func (s *MemoryBookingStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookings = make(map[string]models.Booking)
}
