package email

import (
	"context"
	"errors"
)

// ErrNotConfigured is returned by providers missing credentials.
var ErrNotConfigured = errors.New("email provider is not configured")

// Provider delivers a single message.
type Provider interface {
	Send(ctx context.Context, msg *Message) error

	// Validate reports whether the provider has what it needs to send.
	Validate() error
}

// NoopProvider is used when email is switched off.
type NoopProvider struct{}

func (NoopProvider) Send(context.Context, *Message) error { return ErrNotConfigured }

func (NoopProvider) Validate() error { return ErrNotConfigured }
