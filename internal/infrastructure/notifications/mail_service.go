package notifications

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/Yatnesh1410/MovieAPI/domain"
)

// MailServiceImpl implements domain.MailService over SMTP
type MailServiceImpl struct {
	dialer *gomail.Dialer
	from   string
}

// NewMailService creates a new SMTP mail service. With an empty host the
// service logs messages instead of dialing, which keeps local development
// and tests free of an SMTP dependency.
func NewMailService(host string, port int, username, password, from string) domain.MailService {
	var dialer *gomail.Dialer
	if host != "" {
		dialer = gomail.NewDialer(host, port, username, password)
	}
	return &MailServiceImpl{
		dialer: dialer,
		from:   from,
	}
}

// SendEmail implements domain.MailService
func (m *MailServiceImpl) SendEmail(to, subject, body string) error {
	if m.dialer == nil {
		fmt.Printf("[MOCK EMAIL] To: %s, Subject: %s, Body: %s\n", to, subject, body)
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
