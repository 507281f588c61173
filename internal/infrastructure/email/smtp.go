// Package email delivers operator notifications over SMTP.
package email

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
}

// SMTPSender sends multipart (plain + HTML) messages to a fixed recipient.
type SMTPSender struct {
	config SMTPConfig
	to     string
	send   func(m ...*gomail.Message) error
}

func NewSMTPSender(config SMTPConfig, to string) *SMTPSender {
	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)
	return &SMTPSender{
		config: config,
		to:     to,
		send:   dialer.DialAndSend,
	}
}

// Send builds and delivers one message. The SMTP exchange itself is not
// cancellable, so ctx is only checked before dialing.
func (s *SMTPSender) Send(ctx context.Context, subject, htmlBody, plainBody string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.config.FromAddress, s.config.FromName)
	m.SetHeader("To", s.to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.send(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
