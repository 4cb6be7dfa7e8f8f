package automod

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Posts flag notifications back to the originating platform via a configured
// incoming-webhook URL.
type WebhookNotifier struct {
	Client     *http.Client
	WebhookURL string
}

type webhookFlagBody struct {
	PostID        int64          `json:"post_id"`
	UserID        int64          `json:"user_id"`
	PeerID        string         `json:"peer_id"`
	ViolationType *ViolationType `json:"violation_type,omitempty"`
	Severity      *int           `json:"severity,omitempty"`
	Reason        *string        `json:"reason,omitempty"`
	Confidence    *float64       `json:"confidence,omitempty"`
}

func (n *WebhookNotifier) NotifyFlag(ctx context.Context, item ContentItem, verdict Verdict) error {
	body, err := json.Marshal(webhookFlagBody{
		PostID:        item.PostID,
		UserID:        item.UserID,
		PeerID:        item.PeerID,
		ViolationType: verdict.ViolationType,
		Severity:      verdict.Severity,
		Reason:        verdict.Reason,
		Confidence:    verdict.Confidence,
	})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.WebhookURL, bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	req.Header.Add("Content-Type", "application/json")
	client := n.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("failed flag webhook POST request. status=%d", resp.StatusCode)
	}
	return nil
}
