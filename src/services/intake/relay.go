package intake

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"Backend-Brightlane-Leadkit/src/models"
)

// Relay forwards accepted events to the CRM side.
type Relay interface {
	Relay(ctx context.Context, ev models.LeadEvent) error
}

// WebhookRelay posts the event as JSON to a webhook URL.
type WebhookRelay struct {
	url    string
	client *http.Client
}

func NewWebhookRelay(url string, client *http.Client) *WebhookRelay {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &WebhookRelay{url: url, client: client}
}

func (r *WebhookRelay) Relay(ctx context.Context, ev models.LeadEvent) error {
	b, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.url, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := r.client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return fmt.Errorf("webhook returned status %s", res.Status)
	}
	return nil
}

// LogRelay is used when no webhook is configured: the lead is only logged.
type LogRelay struct{}

func (LogRelay) Relay(_ context.Context, ev models.LeadEvent) error {
	log.Printf("[intake] %s from %s (plan %s), no webhook configured", ev.Type, ev.Email, ev.PlanKey)
	return nil
}
