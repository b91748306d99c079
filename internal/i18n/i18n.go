// Package i18n holds the strings used in outbound email.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// Email holds the sender identity and welcome email copy for one locale.
// Fields may contain the {name} and {appName} placeholders.
type Email struct {
	FromEmail string
	FromName  string
	AppName   string

	WelcomeSubject string
	WelcomeText    string

	WelcomeHeading        string
	Greeting              string
	WelcomeMessage        string
	DescriptionMessage    string
	GettingStartedHeading string
	Steps                 []string
	HelpMessage           string
	ClosingMessage        string
	Signature             string
}

// Contact holds the copy for a user to tutor message. Subject may contain
// the {userName} placeholder.
type Contact struct {
	Subject    string
	Postscript string
}

type Translations struct {
	Locale  string
	Email   Email
	Contact Contact
}

var (
	supported = []language.Tag{language.English, language.French}
	matcher   = language.NewMatcher(supported)

	tables = map[language.Tag]*Translations{
		language.English: &en,
		language.French:  &fr,
	}
)

// For returns the table best matching locale, which may be a bare tag
// ("fr"), a regional tag ("fr-LU") or an Accept-Language header value.
// Anything unrecognised falls back to English.
func For(locale string) *Translations {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		return &en
	}

	tags, _, err := language.ParseAcceptLanguage(locale)
	if err != nil || len(tags) == 0 {
		return &en
	}

	_, idx, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return &en
	}
	return tables[supported[idx]]
}

// Default is the English table.
func Default() *Translations {
	return &en
}

// Fill replaces {key} placeholders in s.
func Fill(s string, values map[string]string) string {
	if len(values) == 0 {
		return s
	}
	pairs := make([]string, 0, len(values)*2)
	for k, v := range values {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(s)
}
