package mailer

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"
)

// Resend sends mail through the Resend API from a fixed address.
type Resend struct {
	client *resend.Client
	from   string
}

func NewResend(apiKey, from string) *Resend {
	return NewResendWithClient(resend.NewClient(apiKey), from)
}

func NewResendWithClient(client *resend.Client, from string) *Resend {
	return &Resend{client: client, from: from}
}

func (r *Resend) Send(ctx context.Context, msg Message) error {
	if msg.To == "" {
		return ErrNoRecipient
	}

	_, err := r.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    r.from,
		To:      []string{msg.To},
		Subject: msg.Subject,
		Html:    msg.HTML,
	})
	if err != nil {
		return fmt.Errorf("resend: %w", err)
	}
	return nil
}
