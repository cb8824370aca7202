// internal/services/mailer.go
package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"mime"
	"mime/multipart"
	"net/mail"
	"net/smtp"
	"net/textproto"

	"github.com/sirupsen/logrus"

	"github.com/ChinmayIngle26/College-hub-sub000/internal/config"
)

var ErrMailerNotConfigured = errors.New("email service not configured")

type EmailMessage struct {
	To      string
	Subject string
	HTML    string
	Text    string
}

// Mailer delivers a single message. Configured is fixed at construction.
type Mailer interface {
	Send(ctx context.Context, msg EmailMessage) error
	Configured() bool
}

// NewMailer picks the transport once at startup. Partial settings produce a
// mailer that refuses every send.
func NewMailer(cfg config.EmailConfig) Mailer {
	if !cfg.Complete() {
		logrus.WithField("provider", cfg.Provider).
			Warn("Email settings incomplete, parent notifications will not be sent")
		return unconfiguredMailer{}
	}

	from := mail.Address{Name: cfg.FromName, Address: cfg.FromEmail}
	if cfg.Provider == "sendgrid" {
		return NewSendGridMailer(cfg.SendGridAPIKey, from)
	}
	return NewSMTPMailer(cfg.SMTPAddr(), cfg.SMTPHost, cfg.SMTPUsername, cfg.SMTPPassword, from)
}

type unconfiguredMailer struct{}

func (unconfiguredMailer) Send(context.Context, EmailMessage) error { return ErrMailerNotConfigured }
func (unconfiguredMailer) Configured() bool                         { return false }

type sendMailFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

type SMTPMailer struct {
	addr     string
	auth     smtp.Auth
	from     mail.Address
	sendMail sendMailFunc
}

func NewSMTPMailer(addr, host, username, password string, from mail.Address) *SMTPMailer {
	return &SMTPMailer{
		addr:     addr,
		auth:     smtp.PlainAuth("", username, password, host),
		from:     from,
		sendMail: smtp.SendMail,
	}
}

func (m *SMTPMailer) Configured() bool { return true }

func (m *SMTPMailer) Send(ctx context.Context, msg EmailMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	body, err := buildMIMEMessage(m.from, msg)
	if err != nil {
		return err
	}

	if err := m.sendMail(m.addr, m.auth, m.from.Address, []string{msg.To}, body); err != nil {
		return fmt.Errorf("smtp send to %s failed: %w", msg.To, err)
	}
	return nil
}

// buildMIMEMessage renders a multipart/alternative message with a text and
// an HTML part.
func buildMIMEMessage(from mail.Address, msg EmailMessage) ([]byte, error) {
	var body bytes.Buffer
	w := multipart.NewWriter(&body)

	parts := []struct {
		contentType string
		content     string
	}{
		{"text/plain; charset=UTF-8", msg.Text},
		{"text/html; charset=UTF-8", msg.HTML},
	}
	for _, p := range parts {
		if p.content == "" {
			continue
		}
		pw, err := w.CreatePart(textproto.MIMEHeader{
			"Content-Type":              {p.contentType},
			"Content-Transfer-Encoding": {"8bit"},
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create mime part: %w", err)
		}
		if _, err := pw.Write([]byte(p.content)); err != nil {
			return nil, fmt.Errorf("failed to write mime part: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("failed to close mime writer: %w", err)
	}

	var out bytes.Buffer
	fmt.Fprintf(&out, "From: %s\r\n", from.String())
	fmt.Fprintf(&out, "To: %s\r\n", msg.To)
	fmt.Fprintf(&out, "Subject: %s\r\n", mime.QEncoding.Encode("UTF-8", msg.Subject))
	out.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&out, "Content-Type: multipart/alternative; boundary=%q\r\n\r\n", w.Boundary())
	out.Write(body.Bytes())

	return out.Bytes(), nil
}
