// Package mailer delivers confirmation codes over SMTP. Delivery is
// best-effort: signup must succeed even when the mail server is down or
// unconfigured, so callers log failures and move on.
package mailer

import (
	"fmt"
	"log/slog"

	"gopkg.in/gomail.v2"

	"reviewdb/config"
)

type Mailer interface {
	SendConfirmationCode(toEmail, username, code string) error
}

type SMTPMailer struct {
	cfg    *config.EmailConfig
	logger *slog.Logger
}

func NewSMTPMailer(cfg *config.EmailConfig, logger *slog.Logger) *SMTPMailer {
	return &SMTPMailer{cfg: cfg, logger: logger}
}

// SendConfirmationCode emails the signup confirmation code. When SMTP is
// not configured the send is skipped with a warning instead of failing.
func (m *SMTPMailer) SendConfirmationCode(toEmail, username, code string) error {
	if m.cfg.SMTPHost == "" || m.cfg.FromEmail == "" {
		m.logger.Warn("smtp not configured, skipping confirmation email",
			slog.String("username", username))
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.FromEmail)
	msg.SetHeader("To", toEmail)
	msg.SetHeader("Subject", "Your confirmation code")
	msg.SetBody("text/plain", fmt.Sprintf(
		"Hello %s,\n\nYour confirmation code is: %s\n\nExchange it at /api/v1/auth/token for an access token.\n",
		username, code))

	d := gomail.NewDialer(m.cfg.SMTPHost, m.cfg.SMTPPort, m.cfg.SMTPUser, m.cfg.SMTPPass)
	if err := d.DialAndSend(msg); err != nil {
		return fmt.Errorf("send confirmation email: %w", err)
	}

	m.logger.Info("confirmation email sent", slog.String("username", username))
	return nil
}
