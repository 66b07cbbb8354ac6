package booking

import (
	"context"
	"time"

	"go.uber.org/zap"

	"ridebook/models"
	"ridebook/services/notification"
	"ridebook/store"
)

// BookingService defines the booking and cancellation lifecycle.
type BookingService interface {
	// Book records a ride request and dispatches the customer confirmation
	// and admin notice. It returns the booking number shown to the customer.
	Book(ctx context.Context, input models.BookRideInput) (string, error)
	// Cancel looks up the token, dispatches both cancellation notices, then
	// removes the record. It returns the cancelled booking for display.
	Cancel(ctx context.Context, token string) (models.Booking, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Store       store.BookingStore
	Mailer      notification.Mailer
	AdminEmail  string
	BaseURL     string
	SendTimeout time.Duration
	Logger      *zap.Logger
}

const defaultSendTimeout = 15 * time.Second

func (s *DefaultBookingService) sendTimeout() time.Duration {
	if s.SendTimeout > 0 {
		return s.SendTimeout
	}
	return defaultSendTimeout
}
