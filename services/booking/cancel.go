package booking

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"ridebook/models"
	"ridebook/services/notification"
)

// Cancel handles a cancellation link. Ordering is the inverse of Book: the
// record is removed only after both notices were dispatched, so a failed send
// leaves the same link retryable. Success is decided by the atomic removal —
// of two concurrent cancellations for one token, exactly one observes the
// removal and reports success.
func (s *DefaultBookingService) Cancel(ctx context.Context, token string) (models.Booking, error) {
	record, ok := s.Store.Get(token)
	if !ok {
		return models.Booking{}, ErrNotFound
	}

	rideTime := DisplayRideTime(record.RideType, record.DateTime)

	sendCtx, cancel := context.WithTimeout(ctx, s.sendTimeout())
	defer cancel()

	g, gctx := errgroup.WithContext(sendCtx)
	g.Go(func() error {
		return s.Mailer.Send(gctx, notification.CancellationConfirmation(record, rideTime))
	})
	g.Go(func() error {
		return s.Mailer.Send(gctx, notification.CancellationAdminNotice(s.AdminEmail, record, rideTime))
	})
	if err := g.Wait(); err != nil {
		s.Logger.Error("Cancellation notifications failed",
			zap.String("bookingNumber", record.BookingNumber),
			zap.Error(err))
		return models.Booking{}, &SendError{Stage: "cancel", Err: err}
	}

	if _, removed := s.Store.Remove(token); !removed {
		// A concurrent request cancelled first; report not-found to this one.
		return models.Booking{}, ErrNotFound
	}

	s.Logger.Info("Ride cancelled", zap.String("bookingNumber", record.BookingNumber))
	return record, nil
}
