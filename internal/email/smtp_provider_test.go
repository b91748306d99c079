package email

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

type fakeDialer struct {
	sent []*gomail.Message
	err  error
}

func (d *fakeDialer) DialAndSend(m ...*gomail.Message) error {
	d.sent = append(d.sent, m...)
	return d.err
}

func TestSMTPProvider_Send(t *testing.T) {
	d := &fakeDialer{}
	p := &SMTPProvider{host: "localhost", port: 25, dialer: d}

	err := p.Send(context.Background(), &Message{
		From:    Address{Email: "support@tutorlux.com", Name: "Jo Lee"},
		To:      []Address{{Email: "ann@example.com", Name: "Ann Roe"}},
		ReplyTo: &Address{Email: "jo@example.com", Name: "Jo Lee"},
		Subject: "Lesson",
		Text:    "Hi",
	})

	require.NoError(t, err)
	require.Len(t, d.sent, 1)

	m := d.sent[0]
	assert.Equal(t, []string{"Lesson"}, m.GetHeader("Subject"))
	require.Len(t, m.GetHeader("To"), 1)
	assert.Contains(t, m.GetHeader("To")[0], "ann@example.com")
	require.Len(t, m.GetHeader("Reply-To"), 1)
	assert.Contains(t, m.GetHeader("Reply-To")[0], "jo@example.com")
}

func TestSMTPProvider_Errors(t *testing.T) {
	p := &SMTPProvider{host: "", port: 25, dialer: &fakeDialer{}}
	assert.ErrorIs(t, p.Validate(), ErrNotConfigured)

	p = &SMTPProvider{host: "localhost", port: 0, dialer: &fakeDialer{}}
	assert.Error(t, p.Validate())

	d := &fakeDialer{err: errors.New("connection refused")}
	p = &SMTPProvider{host: "localhost", port: 25, dialer: d}
	err := p.Send(context.Background(), &Message{To: []Address{{Email: "a@b.com"}}, Text: "x"})
	assert.ErrorContains(t, err, "connection refused")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = p.Send(ctx, &Message{To: []Address{{Email: "a@b.com"}}})
	assert.ErrorIs(t, err, context.Canceled)
}
