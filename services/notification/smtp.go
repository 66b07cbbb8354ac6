package notification

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	gomail "gopkg.in/gomail.v2"
)

// SMTPMailer is the production Mailer. It authenticates with a mail identity
// and app password against an SMTP relay.
type SMTPMailer struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	Logger   *zap.Logger
}

// NewSMTPMailer builds an SMTPMailer. If from is empty the username is used
// as the sender address.
func NewSMTPMailer(host string, port int, username, password, from string, logger *zap.Logger) *SMTPMailer {
	if from == "" {
		from = username
	}
	return &SMTPMailer{
		Host:     host,
		Port:     port,
		Username: username,
		Password: password,
		From:     from,
		Logger:   logger,
	}
}

// Send dials the relay and delivers one message. Missing credentials are a
// send failure, not a startup failure: the booking endpoints stay up and the
// caller sees the error.
func (m *SMTPMailer) Send(ctx context.Context, msg Email) error {
	if m.Username == "" || m.Password == "" {
		return fmt.Errorf("mail transport credentials are not configured")
	}

	mail := gomail.NewMessage()
	mail.SetHeader("From", m.From)
	mail.SetHeader("To", msg.To)
	mail.SetHeader("Subject", msg.Subject)
	mail.SetBody("text/html", msg.HTML)

	dialer := gomail.NewDialer(m.Host, m.Port, m.Username, m.Password)

	// gomail has no context support, so the dial runs in its own goroutine
	// and the caller's deadline wins.
	errCh := make(chan error, 1)
	go func() {
		errCh <- dialer.DialAndSend(mail)
	}()

	select {
	case <-ctx.Done():
		return fmt.Errorf("sending mail to %s: %w", msg.To, ctx.Err())
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("sending mail to %s: %w", msg.To, err)
		}
	}

	m.Logger.Info("Email dispatched", zap.String("to", msg.To), zap.String("subject", msg.Subject))
	return nil
}
