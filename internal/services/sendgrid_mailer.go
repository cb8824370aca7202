// internal/services/sendgrid_mailer.go
package services

import (
	"context"
	"fmt"
	"net/http"
	"net/mail"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

const (
	sendgridHost     = "https://api.sendgrid.com"
	sendgridEndpoint = "/v3/mail/send"
)

type SendGridMailer struct {
	key  string
	host string
	from *sgmail.Email
}

func NewSendGridMailer(apiKey string, from mail.Address) *SendGridMailer {
	return &SendGridMailer{
		key:  apiKey,
		host: sendgridHost,
		from: sgmail.NewEmail(from.Name, from.Address),
	}
}

func (m *SendGridMailer) Configured() bool { return true }

func (m *SendGridMailer) Send(ctx context.Context, msg EmailMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	req := sendgrid.GetRequest(m.key, sendgridEndpoint, m.host)
	req.Method = http.MethodPost
	req.Body = sgmail.GetRequestBody(m.prepare(msg))

	res, err := sendgrid.API(req)
	if err != nil {
		return fmt.Errorf("sendgrid send to %s failed: %w", msg.To, err)
	}
	if res.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("sendgrid send to %s failed: status %d: %s", msg.To, res.StatusCode, res.Body)
	}
	return nil
}

func (m *SendGridMailer) prepare(msg EmailMessage) *sgmail.SGMailV3 {
	p := sgmail.NewPersonalization()
	p.Subject = msg.Subject
	p.AddTos(sgmail.NewEmail("", msg.To))

	v3 := sgmail.NewV3Mail()
	v3.SetFrom(m.from)
	v3.AddPersonalizations(p)

	var contents []*sgmail.Content
	if msg.Text != "" {
		contents = append(contents, sgmail.NewContent("text/plain", msg.Text))
	}
	contents = append(contents, sgmail.NewContent("text/html", msg.HTML))
	v3.AddContent(contents...)

	return v3
}
