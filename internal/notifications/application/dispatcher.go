// Package application defines the outbound notification ports.
package application

import "context"

// EmailMessage is a candidate-facing email notification.
type EmailMessage struct {
	To      string
	Subject string
	Body    string
}

// Dispatcher delivers notifications. All delivery is fire-and-forget from
// the caller's perspective; errors are reported so callers can log them but
// never abort the operation that triggered the notification.
type Dispatcher interface {
	SendEmail(ctx context.Context, msg EmailMessage) error
	PostChatMessage(ctx context.Context, text string) error
}
