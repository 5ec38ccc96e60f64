package services

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"

	"github.com/harentsoaR/beastfit-api/internal/logging"
)

// Notifier delivers a message to the gym staff.
type Notifier interface {
	Publish(ctx context.Context, subject, body string) error
}

// LogNotifier writes notifications to the log. Used when no mail provider
// is configured.
type LogNotifier struct {
	log logging.Logger
}

func NewLogNotifier(log logging.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) Publish(ctx context.Context, subject, body string) error {
	n.log.Info(ctx, "staff notification", "subject", subject, "body", body)
	return nil
}

// EmailNotifier sends staff notifications through Resend.
type EmailNotifier struct {
	client *resend.Client
	from   string
	to     string
}

func NewEmailNotifier(apiKey, from, to string) *EmailNotifier {
	return &EmailNotifier{client: resend.NewClient(apiKey), from: from, to: to}
}

func (n *EmailNotifier) Publish(_ context.Context, subject, body string) error {
	_, err := n.client.Emails.Send(&resend.SendEmailRequest{
		From:    n.from,
		To:      []string{n.to},
		Subject: subject,
		Text:    body,
	})
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
