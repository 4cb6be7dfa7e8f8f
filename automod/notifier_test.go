package automod

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWebhookNotifier(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	var received webhookFlagBody
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal("application/json", r.Header.Get("Content-Type"))
		raw, err := io.ReadAll(r.Body)
		assert.NoError(err)
		assert.NoError(json.Unmarshal(raw, &received))
		w.WriteHeader(200)
	}))
	defer srv.Close()

	n := &WebhookNotifier{WebhookURL: srv.URL}
	cat := ViolationPII
	sev := 4
	reason := "Contains personal identifiable information"
	err := n.NotifyFlag(ctx, ContentItem{PostID: 99, UserID: 7, PeerID: "peer-0007"}, Verdict{
		Flagged:       true,
		ViolationType: &cat,
		Severity:      &sev,
		Reason:        &reason,
	})
	assert.NoError(err)
	assert.Equal(int64(99), received.PostID)
	assert.Equal(ViolationPII, *received.ViolationType)
	assert.Equal(4, *received.Severity)
}

func TestWebhookNotifierFailureStatus(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(500)
	}))
	defer srv.Close()

	n := &WebhookNotifier{WebhookURL: srv.URL}
	err := n.NotifyFlag(ctx, ContentItem{PostID: 1}, NotFlagged())
	assert.Error(err)
}
