package email

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mailjet/mailjet-apiv3-go/v4"
)

// MailjetProvider sends through the Mailjet v3.1 send API.
type MailjetProvider struct {
	apiKey    string
	secretKey string
	client    *mailjet.Client
	timeout   time.Duration
}

// NewMailjetProvider builds a provider. baseURL is the API root, such as
// https://api.mailjet.com; the SDK appends the versioned send path.
func NewMailjetProvider(apiKey, secretKey, baseURL string, timeout time.Duration) *MailjetProvider {
	if baseURL == "" {
		baseURL = DefaultMailjetURL
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &MailjetProvider{
		apiKey:    apiKey,
		secretKey: secretKey,
		client:    mailjet.NewMailjetClient(apiKey, secretKey, strings.TrimRight(baseURL, "/")+"/v3"),
		timeout:   timeout,
	}
}

func (p *MailjetProvider) Validate() error {
	if p.apiKey == "" || p.secretKey == "" {
		return ErrNotConfigured
	}
	return nil
}

func (p *MailjetProvider) Send(ctx context.Context, msg *Message) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if len(msg.To) == 0 {
		return fmt.Errorf("no recipients specified")
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	messages := mailjet.MessagesV31{Info: []mailjet.InfoMessagesV31{toMailjet(msg)}}
	if _, err := p.client.SendMailV31(&messages, mailjet.WithContext(ctx)); err != nil {
		return fmt.Errorf("mailjet send: %w", err)
	}
	return nil
}

func toMailjet(msg *Message) mailjet.InfoMessagesV31 {
	to := make(mailjet.RecipientsV31, 0, len(msg.To))
	for _, addr := range msg.To {
		to = append(to, mailjet.RecipientV31{Email: addr.Email, Name: addr.Name})
	}

	out := mailjet.InfoMessagesV31{
		From:     &mailjet.RecipientV31{Email: msg.From.Email, Name: msg.From.Name},
		To:       &to,
		Subject:  msg.Subject,
		TextPart: msg.Text,
		HTMLPart: msg.HTML,
	}
	if msg.ReplyTo != nil {
		out.ReplyTo = &mailjet.RecipientV31{Email: msg.ReplyTo.Email, Name: msg.ReplyTo.Name}
	}
	return out
}
