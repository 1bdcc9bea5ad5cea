package mailer

import (
	"fmt"

	"github.com/beyondborder/backend/internal/config"
	"gopkg.in/gomail.v2"
)

// Mailer delivers lead alerts to the configured admin mailbox. Delivery is
// best-effort; callers log failures and move on.
type Mailer interface {
	SendLeadAlert(subject, body string) error
}

type smtpMailer struct {
	dialer *gomail.Dialer
	from   string
	to     string
}

// New returns nil when SMTP is not configured; the notification service
// treats a nil Mailer as "email disabled".
func New(cfg *config.Config) Mailer {
	if cfg.SMTPHost == "" || cfg.AdminEmail == "" {
		return nil
	}
	from := cfg.MailFrom
	if from == "" {
		from = cfg.SMTPUser
	}
	return &smtpMailer{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		from:   from,
		to:     cfg.AdminEmail,
	}
}

func (m *smtpMailer) SendLeadAlert(subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", m.to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)
	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send lead alert: %w", err)
	}
	return nil
}
