package email

import (
	"fmt"

	"tutorlux_backend/internal/i18n"
)

// Recipient identifies a person on either side of a message.
type Recipient struct {
	Email     string
	FirstName string
	LastName  string
}

func (r Recipient) FullName() string {
	return r.FirstName + " " + r.LastName
}

// ContactRequest is a user writing to a tutor.
type ContactRequest struct {
	From       Recipient
	TutorEmail string
	TutorName  string
	Message    string
	Locale     string
}

// Composer turns domain events into messages.
type Composer struct {
	templates *TemplateManager
	fromEmail string
	fromName  string
}

// NewComposer builds a composer. fromEmail and fromName replace the locale
// sender when non-empty.
func NewComposer(fromEmail, fromName string) *Composer {
	return &Composer{
		templates: NewTemplateManager(),
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (c *Composer) sender(t *i18n.Translations, name string) Address {
	addr := Address{Email: t.Email.FromEmail, Name: name}
	if c.fromEmail != "" {
		addr.Email = c.fromEmail
	}
	return addr
}

// Welcome builds the sign-up greeting. It is always written in English.
func (c *Composer) Welcome(user Recipient) (*Message, error) {
	t := i18n.Default()
	values := map[string]string{
		"name":    user.FirstName,
		"appName": t.Email.AppName,
	}

	fromName := t.Email.FromName
	if c.fromName != "" {
		fromName = c.fromName
	}

	html, err := c.templates.Render(TemplateWelcome, WelcomeData{
		Heading:        i18n.Fill(t.Email.WelcomeHeading, values),
		Greeting:       t.Email.Greeting,
		Name:           user.FirstName,
		WelcomeMessage: t.Email.WelcomeMessage,
		Description:    i18n.Fill(t.Email.DescriptionMessage, values),
		GettingStarted: t.Email.GettingStartedHeading,
		Steps:          t.Email.Steps,
		Help:           t.Email.HelpMessage,
		Closing:        t.Email.ClosingMessage,
		Signature:      i18n.Fill(t.Email.Signature, values),
	})
	if err != nil {
		return nil, fmt.Errorf("render welcome email: %w", err)
	}

	return &Message{
		Kind:    KindWelcome,
		From:    c.sender(t, fromName),
		To:      []Address{{Email: user.Email, Name: user.FullName()}},
		Subject: t.Email.WelcomeSubject,
		Text:    i18n.Fill(t.Email.WelcomeText, values),
		HTML:    html,
	}, nil
}

// Contact builds the message a user sends to a tutor. It goes out under the
// platform address with the user's name, and replies go to the user.
func (c *Composer) Contact(req ContactRequest) *Message {
	t := i18n.For(req.Locale)
	userName := req.From.FullName()

	return &Message{
		Kind:    KindContact,
		From:    c.sender(t, userName),
		To:      []Address{{Email: req.TutorEmail, Name: req.TutorName}},
		ReplyTo: &Address{Email: req.From.Email, Name: userName},
		Subject: i18n.Fill(t.Contact.Subject, map[string]string{"userName": userName}),
		Text:    req.Message + "\n\n---\n\nP.S. " + t.Contact.Postscript,
	}
}
