package advisory

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/circleofpeers/peerguard/util"

	"github.com/carlmjohnson/versioninfo"
)

// Returned when an operation requires the advisory service but no client is
// configured. Only reply generation surfaces this to callers; moderation and
// verification both have deterministic fallbacks.
var ErrNotConfigured = errors.New("advisory service not configured")

// Client for an OpenAI-compatible chat-completion API. The service is treated
// as an opaque, potentially unreliable collaborator: every method can fail,
// and callers are expected to degrade gracefully.
type Client struct {
	Client *http.Client
	Host   string
	APIKey string
	Model  string
}

func NewClient(host, apiKey, model string) *Client {
	return &Client{
		Client: util.RobustHTTPClient(),
		Host:   host,
		APIKey: apiKey,
		Model:  model,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (c *Client) chat(ctx context.Context, system, user string, temperature float64, maxTokens int) (string, error) {
	start := time.Now()
	body, err := json.Marshal(chatRequest{
		Model: c.Model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Temperature: temperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Host+"/v1/chat/completions", bytes.NewBuffer(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.APIKey)
	req.Header.Set("User-Agent", "peerguard/"+versioninfo.Short())

	resp, err := c.Client.Do(req)
	if err != nil {
		requestCount.WithLabelValues("error").Inc()
		return "", fmt.Errorf("advisory request failed: %w", err)
	}
	defer resp.Body.Close()
	requestDuration.Observe(time.Since(start).Seconds())

	if resp.StatusCode != http.StatusOK {
		requestCount.WithLabelValues(fmt.Sprint(resp.StatusCode)).Inc()
		return "", fmt.Errorf("advisory request failed. status=%d", resp.StatusCode)
	}
	requestCount.WithLabelValues("200").Inc()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	var out chatResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("decoding advisory response: %w", err)
	}
	if len(out.Choices) == 0 {
		return "", fmt.Errorf("advisory response contained no choices")
	}
	return out.Choices[0].Message.Content, nil
}

const verificationSystemPrompt = "You are a professional verification specialist for a private executive forum. You provide accurate, conservative assessments with detailed reasoning and confidence scores."

// Runs a verification analysis prompt through the reasoning service and
// returns the raw completion text. Implements verification.Completer.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	return c.chat(ctx, verificationSystemPrompt, prompt, 0.1, 1000)
}
