package notification

import "context"

// Email is a fully rendered message ready for dispatch.
type Email struct {
	To      string
	Subject string
	HTML    string
}

// Mailer defines the outbound mail-transport capability.
type Mailer interface {
	Send(ctx context.Context, msg Email) error
}
