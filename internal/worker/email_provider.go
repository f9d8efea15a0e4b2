package worker

import (
	"context"
	"fmt"
	"net/smtp"
	"sync"

	"go.uber.org/zap"
)

// SMTPEmailProvider implements EmailProvider using SMTP
type SMTPEmailProvider struct {
	host     string
	port     int
	user     string
	password string
	fromAddr string
}

// NewSMTPEmailProvider creates a new SMTP email provider
func NewSMTPEmailProvider(host string, port int, user, password, fromAddr string) *SMTPEmailProvider {
	return &SMTPEmailProvider{
		host:     host,
		port:     port,
		user:     user,
		password: password,
		fromAddr: fromAddr,
	}
}

// SendEmail sends an email via SMTP
func (p *SMTPEmailProvider) SendEmail(ctx context.Context, email, subject, body string) error {
	message := fmt.Sprintf(
		"To: %s\r\nSubject: %s\r\n\r\n%s",
		email,
		subject,
		body,
	)

	auth := smtp.PlainAuth("", p.user, p.password, p.host)

	addr := fmt.Sprintf("%s:%d", p.host, p.port)
	if err := smtp.SendMail(addr, auth, p.fromAddr, []string{email}, []byte(message)); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// MockEmailProvider is a mock implementation for development and testing
type MockEmailProvider struct {
	mu         sync.Mutex
	sentEmails []SentEmail
}

// SentEmail represents an email that was recorded instead of sent
type SentEmail struct {
	To      string
	Subject string
	Body    string
}

// NewMockEmailProvider creates a new mock email provider
func NewMockEmailProvider() *MockEmailProvider {
	return &MockEmailProvider{
		sentEmails: make([]SentEmail, 0),
	}
}

// SendEmail records the email instead of sending it
func (p *MockEmailProvider) SendEmail(ctx context.Context, email, subject, body string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.sentEmails = append(p.sentEmails, SentEmail{
		To:      email,
		Subject: subject,
		Body:    body,
	})

	zap.L().Info("mock email recorded", zap.String("to", email), zap.String("subject", subject))
	return nil
}

// GetSentEmails returns all recorded emails
func (p *MockEmailProvider) GetSentEmails() []SentEmail {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]SentEmail, len(p.sentEmails))
	copy(out, p.sentEmails)
	return out
}
