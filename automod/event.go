package automod

import (
	"context"
)

// Platform event kinds delivered via webhook.
const (
	EventPostCreated = "post_created"
	EventPostEdited  = "post_edited"
	EventUserFlagged = "user_flagged"
)

// A platform webhook event wrapping a content item.
type Event struct {
	EventType  string  `json:"event_type"`
	PostID     int64   `json:"post_id"`
	UserID     int64   `json:"user_id"`
	PeerID     string  `json:"peer_id"`
	Content    string  `json:"content"`
	RoomID     *int64  `json:"room_id,omitempty"`
	ThreadID   *int64  `json:"thread_id,omitempty"`
	FlagReason *string `json:"flag_reason,omitempty"`
}

func (evt *Event) ContentItem() ContentItem {
	return ContentItem{
		PostID:   evt.PostID,
		UserID:   evt.UserID,
		PeerID:   evt.PeerID,
		Content:  evt.Content,
		RoomID:   evt.RoomID,
		ThreadID: evt.ThreadID,
	}
}

// Deferred moderation of a webhook event. The triggering request has already
// been acknowledged (unflagged) by the time this runs, so the real verdict is
// only observable through the flag notifier side-channel. Callers that need a
// synchronous verdict must use ModerateContent directly.
func (eng *Engine) ProcessEvent(ctx context.Context, evt Event) {
	defer func() {
		if r := recover(); r != nil {
			eng.Logger.Error("event processing exception", "err", r, "postID", evt.PostID, "type", evt.EventType)
		}
	}()
	eventProcessCount.WithLabelValues(evt.EventType).Inc()

	item := evt.ContentItem()
	verdict := eng.ModerateContent(ctx, item)
	if !verdict.Flagged {
		return
	}
	eng.Logger.Info("deferred moderation flagged post", "postID", evt.PostID, "type", evt.EventType, "violation", verdict.ViolationType)
	if eng.Notifier == nil {
		return
	}
	if err := eng.Notifier.NotifyFlag(ctx, item, verdict); err != nil {
		flagNotifyErrorCount.Inc()
		eng.Logger.Error("failed to notify platform of flag", "err", err, "postID", evt.PostID)
	}
}
