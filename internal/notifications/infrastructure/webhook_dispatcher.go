package infrastructure

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/hiredeck/hiredeck/internal/notifications/application"
)

// WebhookDispatcher posts chat messages to an incoming webhook and logs
// emails for an external mailer to pick up. The webhook payload follows the
// common {"text": ...} incoming-webhook shape.
type WebhookDispatcher struct {
	webhookURL string
	emailFrom  string
	client     *http.Client
	logger     *slog.Logger
}

// NewWebhookDispatcher creates a dispatcher posting to webhookURL.
func NewWebhookDispatcher(webhookURL, emailFrom string, client *http.Client, logger *slog.Logger) *WebhookDispatcher {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &WebhookDispatcher{
		webhookURL: webhookURL,
		emailFrom:  emailFrom,
		client:     client,
		logger:     logger,
	}
}

// SendEmail hands the email to the delivery log. Actual SMTP delivery is an
// external concern; the dispatcher records intent.
func (d *WebhookDispatcher) SendEmail(_ context.Context, msg application.EmailMessage) error {
	d.logger.Info("email queued for delivery",
		"from", d.emailFrom,
		"to", msg.To,
		"subject", msg.Subject,
	)
	return nil
}

// PostChatMessage posts the text to the configured incoming webhook.
func (d *WebhookDispatcher) PostChatMessage(ctx context.Context, text string) error {
	payload, err := json.Marshal(map[string]string{"text": text})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.webhookURL, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}
	return nil
}
