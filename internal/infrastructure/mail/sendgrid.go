// Package mail delivers contact messages through SendGrid.
package mail

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"

	"gestobra/internal/core/apperror"
	"gestobra/internal/domain/contact"
	"gestobra/pkg/logger"
)

// Collaborator names SendGrid in TRANSPORT_FAILURE details.
const Collaborator = "sendgrid"

const (
	defaultHost = "https://api.sendgrid.com"
	endpoint    = "/v3/mail/send"
)

// Config of the SendGrid client.
type Config struct {
	APIKey   string
	From     string
	FromName string
	// To is the company inbox that receives contact messages
	To string
	// Host overrides the API host (tests)
	Host string
}

// SendGridClient implements contact.Mailer.
type SendGridClient struct {
	cfg Config
}

var _ contact.Mailer = (*SendGridClient)(nil)

func NewSendGridClient(cfg Config) *SendGridClient {
	if cfg.Host == "" {
		cfg.Host = defaultHost
	}
	return &SendGridClient{cfg: cfg}
}

// Send delivers msg to the configured inbox; Reply-To is the sender.
func (c *SendGridClient) Send(ctx context.Context, msg contact.Message) error {
	if c.cfg.APIKey == "" {
		return apperror.NewTransportFailure(Collaborator, "Mail delivery is not configured", nil)
	}

	request := sendgrid.GetRequest(c.cfg.APIKey, endpoint, c.cfg.Host)
	request.Method = "POST"
	request.Body = sgmail.GetRequestBody(c.build(msg))

	response, err := sendgrid.MakeRequestWithContext(ctx, request)
	if err != nil {
		return apperror.NewTransportFailure(Collaborator, err.Error(), err)
	}

	if response.StatusCode >= 400 {
		logger.Warn(ctx, "sendgrid rejected message",
			"status", response.StatusCode,
			"body", response.Body,
		)
		return apperror.NewTransportFailure(Collaborator,
			fmt.Sprintf("sendgrid send failed: status=%d, body=%s", response.StatusCode, response.Body), nil).
			WithDetail("status", response.StatusCode)
	}

	logger.Info(ctx, "mail sent", "status", response.StatusCode, "to", c.cfg.To)
	return nil
}

func (c *SendGridClient) build(msg contact.Message) *sgmail.SGMailV3 {
	from := sgmail.NewEmail(c.cfg.FromName, c.cfg.From)
	to := sgmail.NewEmail("", c.cfg.To)
	subject := fmt.Sprintf("Contacto web: %s", msg.Name)

	var b strings.Builder
	fmt.Fprintf(&b, "Nombre: %s\n", msg.Name)
	fmt.Fprintf(&b, "Email: %s\n", msg.Email)
	if msg.Phone != "" {
		fmt.Fprintf(&b, "Teléfono: %s\n", msg.Phone)
	}
	b.WriteString("\n")
	b.WriteString(msg.Message)
	plain := b.String()

	m := sgmail.NewSingleEmail(from, subject, to, plain, fmt.Sprintf("<pre>%s</pre>", html.EscapeString(plain)))
	m.SetReplyTo(sgmail.NewEmail(msg.Name, msg.Email))
	return m
}
