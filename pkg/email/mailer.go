package email

import (
	"context"
	"regexp"
)

// EmailSender delivers a single email.
type EmailSender interface {
	SendEmail(ctx context.Context, params SendEmailParams) error
}

// SendEmailParams describes one outbound email.
type SendEmailParams struct {
	SendTo   string `json:"send_to"`
	Subject  string `json:"subject"`
	BodyHTML string `json:"body_html"`
	Tag      string `json:"tag,omitempty"`
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Validate checks the minimum fields required for delivery.
func (p SendEmailParams) Validate() error {
	if p.SendTo == "" || !emailRegex.MatchString(p.SendTo) {
		return ErrInvalidRecipient
	}
	return nil
}

// NoopSender discards all email. Used when delivery credentials are not
// configured and in tests.
type NoopSender struct{}

func (NoopSender) SendEmail(context.Context, SendEmailParams) error { return nil }
