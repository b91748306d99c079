package email

import "net/mail"

// Address is a mailbox with an optional display name.
type Address struct {
	Email string
	Name  string
}

func (a Address) String() string {
	return (&mail.Address{Name: a.Name, Address: a.Email}).String()
}

// Kinds of outbound message, used for logging and metrics.
const (
	KindWelcome = "welcome"
	KindContact = "contact"
)

// Message is a provider independent email.
type Message struct {
	Kind    string
	From    Address
	To      []Address
	ReplyTo *Address
	Subject string
	Text    string
	HTML    string
}
