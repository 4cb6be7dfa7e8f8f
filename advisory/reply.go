package advisory

import (
	"context"
	"fmt"

	"github.com/circleofpeers/peerguard/automod"
)

// A generated peer response for a discussion thread.
type Reply struct {
	Content      string `json:"content"`
	ContextAware bool   `json:"context_aware"`
	ResponseType string `json:"response_type"`
}

const replySystemPrompt = "You are Peer #0000, a strategic advisor and peer in an executive forum."

const replyPromptTemplate = `You are Peer #0000, an assistant in a private C-level executive forum.
Provide a thoughtful, strategic response that adds value to this discussion.
Keep it professional, constructive, and focused on leadership/strategy.

Room context: %s
Discussion: %q

Respond as a helpful peer.`

var roomContexts = map[int64]string{
	1: "HR & People - Leadership, talent management, organizational culture",
	2: "Finance & Capital - Financial strategy, fundraising, M&A",
	3: "Corporate Strategy - Growth planning, competitive dynamics, transformation",
	4: "Sales & GTM - Go-to-market strategy, customer acquisition",
	5: "Mergers & Acquisitions - Due diligence, integration, deal strategy",
	6: "Leadership & Mental Load - Executive challenges, work-life balance",
}

// Returns the discussion context for a room, or a generic default for unknown
// or absent rooms.
func RoomContext(roomID *int64) string {
	if roomID != nil {
		if ctx, ok := roomContexts[*roomID]; ok {
			return ctx
		}
	}
	return "General executive discussion"
}

// Generates a context-aware peer response for a thread. This operation has no
// fallback path: without a configured reasoning service the caller receives an
// explicit error.
func (c *Client) GenerateReply(ctx context.Context, item automod.ContentItem) (Reply, error) {
	prompt := fmt.Sprintf(replyPromptTemplate, RoomContext(item.RoomID), item.Content)
	out, err := c.chat(ctx, replySystemPrompt, prompt, 0.7, 300)
	if err != nil {
		return Reply{}, err
	}
	return Reply{
		Content:      out,
		ContextAware: true,
		ResponseType: "peer_insight",
	}, nil
}
