package models

// Ride types accepted by the booking form.
const (
	RideTypeImmediate = "immediate"
	RideTypeScheduled = "scheduled"
)

// Booking represents one active ride request awaiting pickup or cancellation.
// The cancellation token is deliberately not a field here: it is the store key,
// never a stored value.
type Booking struct {
	BookingNumber  string `json:"bookingNumber"`
	PickupLocation string `json:"pickupLocation"`
	Destination    string `json:"destination"`
	RideType       string `json:"type"`
	DateTime       string `json:"dateTime"`
	VehicleType    string `json:"vehicleType"`
	Name           string `json:"name"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
	CreatedAt      string `json:"createdAt"` // ISO-8601 (RFC3339), server-assigned
}

// BookRideInput is the request body accepted by POST /api/book-ride.
type BookRideInput struct {
	PickupLocation string `json:"pickupLocation" binding:"required"`
	Destination    string `json:"destination" binding:"required"`
	DateTime       string `json:"dateTime" binding:"required"`
	Phone          string `json:"phone" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Type           string `json:"type" binding:"required,oneof=immediate scheduled"`
	VehicleType    string `json:"vehicleType" binding:"required"`
	Name           string `json:"name" binding:"required"`
}

// BookRideResponse is the success envelope returned after a booking.
type BookRideResponse struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	BookingNumber string `json:"bookingNumber"`
}
