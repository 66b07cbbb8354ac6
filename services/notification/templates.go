package notification

import (
	"fmt"

	"ridebook/models"
)

// BookingConfirmation is the customer-facing confirmation. It is the only
// message that carries the cancellation link.
func BookingConfirmation(b models.Booking, rideTime, cancelURL string) Email {
	html := fmt.Sprintf(`
		<h2>🚕 Your Ride is Booked!</h2>
		<p>Hi %s, thank you for booking with us.</p>
		<p><b>Booking Number:</b> %s</p>
		<ul>
			<li><b>Pickup:</b> %s</li>
			<li><b>Destination:</b> %s</li>
			<li><b>Pickup Time:</b> %s</li>
			<li><b>Vehicle:</b> %s</li>
		</ul>
		<p>Need to cancel? Use the link below — no account required:</p>
		<p><a href="%s">Cancel this ride</a></p>
		<p>Keep this email: the link is the only way to cancel your booking.</p>
	`, b.Name, b.BookingNumber, b.PickupLocation, b.Destination, rideTime, b.VehicleType, cancelURL)

	return Email{
		To:      b.Email,
		Subject: fmt.Sprintf("Ride Booking Confirmed [%s]", b.BookingNumber),
		HTML:    html,
	}
}

// BookingAdminNotice informs the administrator of a new booking. It never
// includes the cancellation link.
func BookingAdminNotice(to string, b models.Booking, rideTime string) Email {
	html := fmt.Sprintf(`
		<h2>🆕 New Ride Booking</h2>
		<p><b>Booking Number:</b> %s</p>
		<ul>
			<li><b>Customer:</b> %s</li>
			<li><b>Phone:</b> %s</li>
			<li><b>Email:</b> %s</li>
			<li><b>Pickup:</b> %s</li>
			<li><b>Destination:</b> %s</li>
			<li><b>Pickup Time:</b> %s</li>
			<li><b>Vehicle:</b> %s</li>
		</ul>
		<p>Booked at %s.</p>
	`, b.BookingNumber, b.Name, b.Phone, b.Email, b.PickupLocation, b.Destination, rideTime, b.VehicleType, b.CreatedAt)

	return Email{
		To:      to,
		Subject: fmt.Sprintf("New Booking [%s]", b.BookingNumber),
		HTML:    html,
	}
}

// CancellationConfirmation tells the customer their ride was cancelled.
func CancellationConfirmation(b models.Booking, rideTime string) Email {
	html := fmt.Sprintf(`
		<h2>❌ Ride Cancelled</h2>
		<p>Hi %s, your ride has been cancelled.</p>
		<p><b>Booking Number:</b> %s</p>
		<ul>
			<li><b>Pickup:</b> %s</li>
			<li><b>Destination:</b> %s</li>
			<li><b>Pickup Time:</b> %s</li>
		</ul>
		<p>We hope to see you again soon.</p>
	`, b.Name, b.BookingNumber, b.PickupLocation, b.Destination, rideTime)

	return Email{
		To:      b.Email,
		Subject: fmt.Sprintf("Ride Cancelled [%s]", b.BookingNumber),
		HTML:    html,
	}
}

// CancellationAdminNotice informs the administrator of a cancellation.
func CancellationAdminNotice(to string, b models.Booking, rideTime string) Email {
	html := fmt.Sprintf(`
		<h2>❌ Booking Cancelled</h2>
		<p><b>Booking Number:</b> %s</p>
		<ul>
			<li><b>Customer:</b> %s</li>
			<li><b>Phone:</b> %s</li>
			<li><b>Pickup:</b> %s</li>
			<li><b>Destination:</b> %s</li>
			<li><b>Pickup Time:</b> %s</li>
		</ul>
	`, b.BookingNumber, b.Name, b.Phone, b.PickupLocation, b.Destination, rideTime)

	return Email{
		To:      to,
		Subject: fmt.Sprintf("Booking Cancelled [%s]", b.BookingNumber),
		HTML:    html,
	}
}
