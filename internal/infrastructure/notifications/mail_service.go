package notifications

import (
	"fmt"

	"github.com/wneessen/go-mail"

	"github.com/you/accountsvc/domain"
)

// MailServiceImpl implements domain.NotificationService over SMTP
type MailServiceImpl struct {
	client *mail.Client
	from   string
}

// NewMailService creates a new SMTP notification service. With an empty host
// the service runs in mock mode and logs messages instead of sending them.
func NewMailService(host string, port int, username, password, from string) (domain.NotificationService, error) {
	if host == "" {
		return &MailServiceImpl{from: from}, nil
	}

	client, err := mail.NewClient(host,
		mail.WithPort(port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(username),
		mail.WithPassword(password),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create mail client: %w", err)
	}

	return &MailServiceImpl{client: client, from: from}, nil
}

// SendEmail implements domain.NotificationService
func (m *MailServiceImpl) SendEmail(to, subject, body string) error {
	if m.client == nil {
		fmt.Printf("[MOCK EMAIL] To: %s, Subject: %s, Body: %s\n", to, subject, body)
		return nil
	}

	msg := mail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("failed to set recipient: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, body)

	if err := m.client.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
