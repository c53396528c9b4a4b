// Package mailer sends the transactional mail of the site.
package mailer

import (
	"bytes"
	"context"
	"errors"
	"html/template"
)

var ErrNoRecipient = errors.New("mail has no recipient")

type Message struct {
	To      string
	Subject string
	HTML    string
}

// Sender delivers a single message.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

var resourceSubjects = map[string]string{
	"en": "Please find the link to the reading",
	"fa": "لینک منابع این قسمت",
}

var resourceTemplate = template.Must(template.New("resources").Parse(`<div style="font-family: sans-serif; padding: 20px; border: 1px solid #e0e0e0; border-radius: 8px; max-width: 600px; margin: 0 auto;">
  <h1 style="color: #333; font-size: 24px; margin-bottom: 20px;">Hi there,</h1>
  <p style="color: #555; font-size: 16px; line-height: 1.6; margin-bottom: 20px;">
    Here is the link to the readings: <a href="{{.Link}}" style="color: #007bff; text-decoration: underline;">{{.Link}}</a>
  </p>
  <p style="color: #555; font-size: 16px; line-height: 1.6; margin-bottom: 0;">Enjoy the episode!</p>
</div>`))

// ResourceMessage builds the mail carrying an episode's resources link. The
// subject follows lang, falling back to English.
func ResourceMessage(lang, to, link string) (Message, error) {
	if to == "" {
		return Message{}, ErrNoRecipient
	}

	subject, ok := resourceSubjects[lang]
	if !ok {
		subject = resourceSubjects["en"]
	}

	var body bytes.Buffer
	if err := resourceTemplate.Execute(&body, struct{ Link string }{link}); err != nil {
		return Message{}, err
	}

	return Message{To: to, Subject: subject, HTML: body.String()}, nil
}
