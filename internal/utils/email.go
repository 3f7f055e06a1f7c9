package utils

import (
	"academy_backend/internal/config"

	"gopkg.in/gomail.v2"
)

// EmailSender delivers mail over SMTP. Enabled() is false when no SMTP
// host is configured, in which case callers skip sending entirely.
type EmailSender struct {
	cfg *config.Config
}

func NewEmailSender(cfg *config.Config) *EmailSender {
	return &EmailSender{cfg: cfg}
}

func (e *EmailSender) Enabled() bool {
	return e.cfg.Email.SMTPHost != ""
}

func (e *EmailSender) Send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", e.cfg.Email.FromEmail)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(
		e.cfg.Email.SMTPHost,
		e.cfg.Email.SMTPPort,
		e.cfg.Email.SMTPUsername,
		e.cfg.Email.SMTPPassword,
	)

	return d.DialAndSend(m)
}
