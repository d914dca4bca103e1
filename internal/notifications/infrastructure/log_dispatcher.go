// Package infrastructure provides notification dispatcher implementations.
package infrastructure

import (
	"context"
	"log/slog"

	"github.com/hiredeck/hiredeck/internal/notifications/application"
)

// LogDispatcher writes notifications to the log instead of delivering them.
// Used in development and when no delivery transport is configured.
type LogDispatcher struct {
	logger *slog.Logger
}

// NewLogDispatcher creates a log-only dispatcher.
func NewLogDispatcher(logger *slog.Logger) *LogDispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogDispatcher{logger: logger}
}

// SendEmail logs the email instead of sending it.
func (d *LogDispatcher) SendEmail(_ context.Context, msg application.EmailMessage) error {
	d.logger.Info("email notification",
		"to", msg.To,
		"subject", msg.Subject,
	)
	return nil
}

// PostChatMessage logs the chat message instead of posting it.
func (d *LogDispatcher) PostChatMessage(_ context.Context, text string) error {
	d.logger.Info("chat notification", "text", text)
	return nil
}
