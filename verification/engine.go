package verification

import (
	"context"
	"log/slog"
	"time"
)

// External reasoning service. Returns unstructured text which may or may not
// embed a structured verdict object.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Runtime for applicant verification: builds the analysis prompt, consults the
// advisory reasoning service, and synthesizes a canonical verdict. Stateless
// and safe for concurrent use.
type Engine struct {
	Logger *slog.Logger
	// optional; nil means every request uses the deterministic fallback
	Completer Completer
}

// Verifies an applicant and always returns a complete verdict; this never
// returns an error to the caller. Any collaborator failure (unavailable,
// timeout, malformed response) routes to the deterministic fallback path.
//
// applicationData is carried for the platform's benefit but is not part of
// the analysis prompt.
func (eng *Engine) Verify(ctx context.Context, user UserInfo, applicationData map[string]any, criteria []Criterion) (verdict Verdict) {
	defer func() {
		if r := recover(); r != nil {
			eng.Logger.Error("verification execution exception", "err", r, "email", user.Email)
			verdict = Fallback(user)
		}
	}()
	start := time.Now()

	if eng.Completer == nil {
		verificationCount.WithLabelValues("fallback").Inc()
		return Fallback(user)
	}

	prompt := BuildVerificationPrompt(user, criteria)
	resp, err := eng.Completer.Complete(ctx, prompt)
	verificationDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		eng.Logger.Warn("advisory verification failed, using fallback", "err", err)
		verificationCount.WithLabelValues("fallback").Inc()
		return Fallback(user)
	}

	verdict = Synthesize(resp, user)
	verificationCount.WithLabelValues("advisory").Inc()
	return verdict
}
