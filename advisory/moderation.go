package advisory

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/circleofpeers/peerguard/automod"
)

const moderationSystemPrompt = "You are a content moderator for a professional executive forum. Be strict but fair."

const moderationPromptTemplate = `Analyze this post for violations. Return JSON with:
- flagged: boolean
- violation_type: string (solicitation, pii, harassment, confidential, off_topic, spam, identity_leak, inappropriate)
- severity: integer (1-5, 5 being most severe)
- reason: string
- confidence: float (0-1)

Post content: %q`

var moderationObject = regexp.MustCompile(`(?s)\{.*\}`)

// Classifies text through the advisory service. Implements
// automod.AdvisoryClassifier: errors here are real failures, distinguishable
// from a not-flagged verdict, and the moderation engine handles them fail-open.
func (c *Client) ClassifyText(ctx context.Context, text string) (automod.Verdict, error) {
	out, err := c.chat(ctx, moderationSystemPrompt, fmt.Sprintf(moderationPromptTemplate, text), 0.1, 0)
	if err != nil {
		return automod.NotFlagged(), err
	}

	blob := moderationObject.FindString(out)
	if blob == "" {
		return automod.NotFlagged(), fmt.Errorf("no structured verdict in advisory response")
	}
	var verdict automod.Verdict
	if err := json.Unmarshal([]byte(blob), &verdict); err != nil {
		return automod.NotFlagged(), fmt.Errorf("decoding advisory verdict: %w", err)
	}
	if verdict.ViolationType != nil && !automod.ValidViolationType(*verdict.ViolationType) {
		return automod.NotFlagged(), fmt.Errorf("advisory returned unknown violation type: %s", *verdict.ViolationType)
	}
	return verdict, nil
}
