// Package email sends alert mails over SMTP.
package email

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gopkg.in/mail.v2"
	"liyu1981.xyz/haccp-alert-service/pkg/common"
	"liyu1981.xyz/haccp-alert-service/pkg/models"
)

var ErrNoRecipients = errors.New("no recipients")

const defaultDialTimeout = 10 * time.Second

// Client implements haccp.Mailer. SMTP settings are passed per call since
// administrators can change them at runtime.
type Client struct {
	send func(d *mail.Dialer, m *mail.Message) error
}

func NewClient() *Client {
	return &Client{send: func(d *mail.Dialer, m *mail.Message) error {
		return d.DialAndSend(m)
	}}
}

// NewDialer builds the dialer for cfg: implicit TLS on port 465, mandatory
// STARTTLS otherwise.
func NewDialer(cfg models.SMTPConfig, timeout time.Duration) *mail.Dialer {
	dialer := mail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password)
	dialer.SSL = cfg.Secure()
	if !dialer.SSL {
		dialer.StartTLSPolicy = mail.MandatoryStartTLS
	}
	dialer.Timeout = timeout
	return dialer
}

// BuildMessage addresses one message to every recipient.
func BuildMessage(cfg models.SMTPConfig, to []string, subject, body string) *mail.Message {
	message := mail.NewMessage()

	message.SetHeader("From", cfg.Sender())
	message.SetHeader("To", to...)
	message.SetHeader("Subject", subject)

	message.SetBody("text/plain", body)

	return message
}

func (c *Client) SendMail(ctx context.Context, cfg models.SMTPConfig, to []string, subject, body string) error {
	if len(to) == 0 {
		return ErrNoRecipients
	}

	timeout := defaultDialTimeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
	}
	if timeout <= 0 {
		return context.DeadlineExceeded
	}

	dialer := NewDialer(cfg, timeout)
	message := BuildMessage(cfg, to, subject, body)

	// the SMTP library is blocking, so the context is honoured by racing it
	done := make(chan error, 1)
	go func() {
		done <- c.send(dialer, message)
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("send mail via %s:%d: %w", cfg.Host, cfg.Port, err)
		}
		common.GetLoggerWith(common.LoggerNameNotifier).
			Info("Mail sent", zap.String("host", cfg.Host), zap.Int("recipients", len(to)))
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
