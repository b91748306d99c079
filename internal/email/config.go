package email

import (
	"fmt"
	"strings"
	"time"
)

const (
	ProviderMailjet = "mailjet"
	ProviderSMTP    = "smtp"
	ProviderNone    = "none"

	DefaultMailjetURL = "https://api.mailjet.com"
)

// Config selects and configures the outbound transport.
type Config struct {
	Provider string

	MailjetAPIKey    string
	MailjetSecretKey string
	MailjetBaseURL   string

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string

	// FromEmail and FromName override the locale sender when set.
	FromEmail string
	FromName  string

	Timeout time.Duration
}

// NewProvider builds the provider named by cfg.Provider. A provider that is
// selected but missing credentials is still returned; its Validate reports
// the problem at send time.
func NewProvider(cfg Config) (Provider, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case ProviderMailjet:
		return NewMailjetProvider(cfg.MailjetAPIKey, cfg.MailjetSecretKey, cfg.MailjetBaseURL, cfg.Timeout), nil
	case ProviderSMTP:
		return NewSMTPProvider(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword), nil
	case ProviderNone, "":
		return NoopProvider{}, nil
	default:
		return nil, fmt.Errorf("unknown email provider %q", cfg.Provider)
	}
}
