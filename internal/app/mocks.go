package app

import (
	"context"
	"sync"

	"tutorlux_backend/internal/email"
	"tutorlux_backend/internal/logger"
)

// MockEmailProvider logs messages instead of sending them. It is selected
// with EMAIL_PROVIDER=log for local development and keeps what it saw.
type MockEmailProvider struct {
	mu   sync.Mutex
	sent []*email.Message
}

func (m *MockEmailProvider) Send(ctx context.Context, msg *email.Message) error {
	m.mu.Lock()
	m.sent = append(m.sent, msg)
	m.mu.Unlock()

	to := make([]string, 0, len(msg.To))
	for _, addr := range msg.To {
		to = append(to, addr.Email)
	}
	logger.CtxInfo(ctx, "email not sent (log provider)",
		"kind", msg.Kind,
		"to", to,
		"subject", msg.Subject,
	)
	return nil
}

func (m *MockEmailProvider) Validate() error { return nil }

// Sent returns a copy of the messages seen so far.
func (m *MockEmailProvider) Sent() []*email.Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*email.Message, len(m.sent))
	copy(out, m.sent)
	return out
}
