package booking

import (
	"context"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"ridebook/models"
	"ridebook/services/notification"
)

// Book generates the booking identifiers, persists the record keyed by its
// cancellation token, and dispatches the customer confirmation and the admin
// notice. Both sends are awaited before responding; if either fails, the
// record stays in the store so the customer can still cancel by token, and
// the failure is surfaced to the caller.
func (s *DefaultBookingService) Book(ctx context.Context, input models.BookRideInput) (string, error) {
	number := GenerateBookingNumber()
	token, err := GenerateCancellationToken()
	if err != nil {
		return "", err
	}

	record := models.Booking{
		BookingNumber:  number,
		PickupLocation: input.PickupLocation,
		Destination:    input.Destination,
		RideType:       input.Type,
		DateTime:       input.DateTime,
		VehicleType:    input.VehicleType,
		Name:           input.Name,
		Phone:          input.Phone,
		Email:          input.Email,
		CreatedAt:      time.Now().UTC().Format(time.RFC3339),
	}

	rideTime := DisplayRideTime(record.RideType, record.DateTime)
	cancelURL := s.cancellationURL(token)

	// Persist before sending: a send failure must not orphan the ride, and
	// the cancellation link keeps working either way.
	s.Store.Put(token, record)

	sendCtx, cancel := context.WithTimeout(ctx, s.sendTimeout())
	defer cancel()

	g, gctx := errgroup.WithContext(sendCtx)
	g.Go(func() error {
		return s.Mailer.Send(gctx, notification.BookingConfirmation(record, rideTime, cancelURL))
	})
	g.Go(func() error {
		return s.Mailer.Send(gctx, notification.BookingAdminNotice(s.AdminEmail, record, rideTime))
	})
	if err := g.Wait(); err != nil {
		s.Logger.Error("Booking notifications failed",
			zap.String("bookingNumber", number),
			zap.Error(err))
		return "", &SendError{Stage: "book", Err: err}
	}

	s.Logger.Info("Ride booked",
		zap.String("bookingNumber", number),
		zap.String("pickup", record.PickupLocation),
		zap.String("destination", record.Destination))
	return number, nil
}

// cancellationURL embeds the token as a query parameter on the service's own
// base address.
func (s *DefaultBookingService) cancellationURL(token string) string {
	q := url.Values{}
	q.Set("token", token)
	return strings.TrimRight(s.BaseURL, "/") + "/api/cancel-ride?" + q.Encode()
}
