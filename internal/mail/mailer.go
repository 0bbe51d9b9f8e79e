// Package mail sends advisory notification emails. An unconfigured or
// unreachable SMTP server must never fail the request that triggered the
// email.
package mail

import (
	"fmt"
	"log"

	gomail "gopkg.in/gomail.v2"
)

// Sender dispatches a single HTML email. Implementations report delivery
// errors but callers are expected to treat them as advisory.
type Sender interface {
	Send(to, subject, html string) error
}

// Mailer is an SMTP-backed Sender. A Mailer with no dialer (missing
// credentials) is valid and skips delivery.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
}

var _ Sender = (*Mailer)(nil)

// New builds a Mailer. When user or password is empty the mailer is
// disabled: Send logs and returns nil.
func New(host string, port int, user, password, from string) *Mailer {
	m := &Mailer{from: from}
	if user == "" || password == "" {
		log.Println("mail: SMTP credentials not set, email disabled")
		return m
	}
	m.dialer = gomail.NewDialer(host, port, user, password)
	return m
}

// Send delivers one HTML email. Delivery failures are returned so the call
// site can log them, but no caller treats them as fatal.
func (m *Mailer) Send(to, subject, html string) error {
	if m == nil || m.dialer == nil {
		log.Printf("mail: not configured, skipping email to %s (%s)", to, subject)
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", html)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send email to %s: %w", to, err)
	}
	return nil
}
