// Package email sends the contact-form notification through Resend.
package email

import (
	"bytes"
	"context"
	"errors"
	"html/template"
	"log"
	"strings"
	texttemplate "text/template"

	"elextrio-site/internal/config"
	"elextrio-site/internal/domain/contact"

	"github.com/resend/resend-go/v2"
)

const notProvided = "Not provided"

var htmlBody = template.Must(template.New("contact_html").Funcs(template.FuncMap{
	"lines": func(s string) template.HTML {
		return template.HTML(strings.ReplaceAll(template.HTMLEscapeString(s), "\n", "<br>"))
	},
}).Parse(`<h2>New Contact Form Submission</h2>
<p><strong>Name:</strong> {{.Name}}</p>
<p><strong>Email:</strong> {{.Email}}</p>
<p><strong>Phone:</strong> {{.Phone}}</p>
<p><strong>Company:</strong> {{.Company}}</p>
<p><strong>Message:</strong></p>
<p>{{lines .Message}}</p>
`))

var textBody = texttemplate.Must(texttemplate.New("contact_text").Parse(`New Contact Form Submission
Name: {{.Name}}
Email: {{.Email}}
Phone: {{.Phone}}
Company: {{.Company}}
Message:
{{.Message}}
`))

// ResendSender delivers notifications, or only logs them when no API key is set.
type ResendSender struct {
	client *resend.Client
	from   string
	to     string
	logger *log.Logger
}

func NewResendSender(cfg config.EmailConfig, logger *log.Logger) *ResendSender {
	s := &ResendSender{from: cfg.From, to: cfg.NotificationEmail, logger: logger}
	if cfg.ResendAPIKey != "" {
		s.client = resend.NewClient(cfg.ResendAPIKey)
	} else if logger != nil {
		logger.Printf("[Email] RESEND_API_KEY not set, email sending will be simulated")
	}
	return s
}

func (s *ResendSender) Simulated() bool {
	return s.client == nil
}

// SendContactNotification reports whether the notification counts as sent.
// A simulated send counts as sent.
func (s *ResendSender) SendContactNotification(ctx context.Context, sub contact.Submission) (bool, error) {
	view := sub
	if view.Phone == "" {
		view.Phone = notProvided
	}
	if view.Company == "" {
		view.Company = notProvided
	}

	var html, text bytes.Buffer
	if err := htmlBody.Execute(&html, view); err != nil {
		return false, err
	}
	if err := textBody.Execute(&text, view); err != nil {
		return false, err
	}

	return s.send(ctx, &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{s.to},
		Subject: "New Contact Form Submission from " + sub.Name,
		Html:    html.String(),
		Text:    text.String(),
		ReplyTo: sub.Email,
	})
}

// SendTest delivers a fixed message; sitectl uses it to check the configuration.
func (s *ResendSender) SendTest(ctx context.Context, to string) (bool, error) {
	if to == "" {
		to = s.to
	}
	return s.send(ctx, &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{to},
		Subject: "Test email from elextrio-site",
		Html:    "<p>This is a <b>test email</b> to verify email delivery is working correctly.</p>",
		Text:    "This is a test email to verify email delivery is working correctly.",
	})
}

func (s *ResendSender) send(ctx context.Context, req *resend.SendEmailRequest) (bool, error) {
	if s.client == nil {
		if s.logger != nil {
			s.logger.Printf("[Email] simulated send to=%s subject=%q", strings.Join(req.To, ","), req.Subject)
		}
		return true, nil
	}

	sent, err := s.client.Emails.SendWithContext(ctx, req)
	if err != nil {
		return false, err
	}
	if sent == nil || sent.Id == "" {
		return false, errors.New("resend returned no message id")
	}
	if s.logger != nil {
		s.logger.Printf("[Email] sent id=%s to=%s", sent.Id, strings.Join(req.To, ","))
	}
	return true, nil
}
