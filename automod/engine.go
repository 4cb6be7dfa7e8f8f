package automod

import (
	"context"
	"log/slog"
	"strings"
	"time"
)

// External classification service. Failures must be distinguishable from a
// legitimate not-flagged verdict, which is why this returns an error rather
// than a benign verdict.
type AdvisoryClassifier interface {
	ClassifyText(ctx context.Context, text string) (Verdict, error)
}

// Reports flagged content back to the originating platform. Best-effort:
// callers log failures but never propagate them.
type FlagNotifier interface {
	NotifyFlag(ctx context.Context, item ContentItem, verdict Verdict) error
}

// Runtime for moderating content: dispatches to the deterministic rule groups
// and, when they abstain, to an optional advisory classifier.
//
// All state is request-scoped; a single Engine is safe for unbounded
// concurrent use.
type Engine struct {
	Logger *slog.Logger
	Rules  RuleSet
	// optional; nil means deterministic rules only
	Advisory AdvisoryClassifier
	// optional; used by deferred event processing
	Notifier FlagNotifier
}

// Moderates a single content item and always returns a complete verdict.
//
// Deterministic rules are authoritative: the advisory classifier is consulted
// only when no rule group matches, and its verdict is returned as-is without
// consistency validation. Any advisory failure is handled fail-open as
// not-flagged; availability wins over precision here, and the error is never
// surfaced to the caller.
func (eng *Engine) ModerateContent(ctx context.Context, item ContentItem) Verdict {
	// similar to an HTTP server, we want to recover any panics from rule execution
	defer func() {
		if r := recover(); r != nil {
			eng.Logger.Error("moderation execution exception", "err", r, "postID", item.PostID)
		}
	}()
	// empty content returns a benign verdict before any collaborator call
	if strings.TrimSpace(item.Content) == "" {
		moderationCount.WithLabelValues("rules", "empty").Inc()
		return NotFlagged()
	}
	start := time.Now()

	match := eng.Rules.Classify(item.Content)
	if match != nil {
		eng.Logger.Info("content flagged by rule", "postID", item.PostID, "group", match.Group, "severity", match.Severity)
		moderationDuration.WithLabelValues("rules").Observe(time.Since(start).Seconds())
		moderationCount.WithLabelValues("rules", "flagged").Inc()
		return match.Verdict()
	}

	if eng.Advisory == nil {
		moderationDuration.WithLabelValues("rules").Observe(time.Since(start).Seconds())
		moderationCount.WithLabelValues("rules", "clean").Inc()
		return NotFlagged()
	}

	verdict, err := eng.Advisory.ClassifyText(ctx, item.Content)
	moderationDuration.WithLabelValues("advisory").Observe(time.Since(start).Seconds())
	if err != nil {
		// fail open: an unavailable advisory service must not block posting
		advisoryErrorCount.Inc()
		eng.Logger.Warn("advisory classification failed, failing open", "err", err, "postID", item.PostID)
		moderationCount.WithLabelValues("advisory", "error").Inc()
		return NotFlagged()
	}
	if verdict.Flagged {
		moderationCount.WithLabelValues("advisory", "flagged").Inc()
	} else {
		moderationCount.WithLabelValues("advisory", "clean").Inc()
	}
	return verdict
}
