package utils

import (
	"log"

	"gopkg.in/gomail.v2"
)

// Mailer sends emails through the configured SMTP server
type Mailer struct {
	host     string
	port     int
	username string
	password string
}

// NewMailer returns nil when no SMTP host is configured, in which case
// callers skip sending mail
func NewMailer(host string, port int, username, password string) *Mailer {
	if host == "" {
		return nil
	}
	return &Mailer{host: host, port: port, username: username, password: password}
}

// Send sends an HTML email
func (m *Mailer) Send(to string, subject string, body string) error {
	mailer := gomail.NewMessage()
	mailer.SetHeader("From", m.username)
	mailer.SetHeader("To", to)
	mailer.SetHeader("Subject", subject)
	mailer.SetBody("text/html", body)

	dialer := gomail.NewDialer(m.host, m.port, m.username, m.password)

	if err := dialer.DialAndSend(mailer); err != nil {
		log.Printf("Failed to send email: %v", err)
		return err
	}

	log.Printf("Email sent successfully to %s", to)
	return nil
}
