package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"ridebook/models"
	"ridebook/services/booking"
	"ridebook/utils"
)

// BookingHandler exposes the booking and cancellation endpoints.
type BookingHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// BookRide handles POST /api/book-ride.
func (h *BookingHandler) BookRide(c *gin.Context) {
	var input models.BookRideInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid booking input: "+err.Error())
		return
	}

	number, err := h.Service.Book(c.Request.Context(), input)
	if err != nil {
		h.Logger.Error("Book ride failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to book ride. Please try again later.")
		return
	}

	c.JSON(http.StatusOK, models.BookRideResponse{
		Success:       true,
		Message:       "Ride booked successfully! A confirmation email has been sent.",
		BookingNumber: number,
	})
}

// CancelRide handles GET /api/cancel-ride?token=<hex>. The response is a
// small HTML page since the link is opened from an email client.
func (h *BookingHandler) CancelRide(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.String(http.StatusBadRequest, "Missing cancellation token.")
		return
	}

	record, err := h.Service.Cancel(c.Request.Context(), token)
	switch {
	case errors.Is(err, booking.ErrNotFound):
		c.String(http.StatusNotFound, "Booking not found or already cancelled.")
	case err != nil:
		h.Logger.Error("Cancel ride failed", zap.Error(err))
		c.String(http.StatusInternalServerError, "Failed to cancel ride. Please try again using the same link.")
	default:
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(cancellationPage(record)))
	}
}

func cancellationPage(b models.Booking) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><title>Ride Cancelled</title></head>
<body style="font-family:sans-serif;max-width:480px;margin:40px auto;">
	<h2>✅ Ride Cancelled</h2>
	<p>Your booking <b>%s</b> has been cancelled.</p>
	<p>%s → %s</p>
	<p>A confirmation email is on its way to %s.</p>
</body>
</html>`, b.BookingNumber, b.PickupLocation, b.Destination, b.Email)
}
