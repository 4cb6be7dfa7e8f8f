package verification

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubCompleter struct {
	resp  string
	err   error
	calls int
}

func (s *stubCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.resp, nil
}

var testCriteria = []Criterion{
	{Name: "Executive Role", Description: "C-level or equivalent senior leadership", Weight: 0.5},
	{Name: "Professional Consistency", Description: "Profile fields corroborate each other", Weight: 0.3},
	{Name: "Contact Credibility", Description: "Corporate email and professional profile", Weight: 0.2},
}

func TestVerifyAdvisoryPath(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	stub := &stubCompleter{resp: `{"recommendation": "approve", "confidence_score": 0.9}`}
	eng := Engine{Logger: slog.Default(), Completer: stub}

	v := eng.Verify(ctx, completeUser(), nil, testCriteria)
	assert.Equal(1, stub.calls)
	assert.Equal(RecommendApprove, v.Recommendation)
	assert.Equal(0.9, v.ConfidenceScore)
}

// A collaborator timeout must produce a complete verdict via the fallback
// path; Verify never returns an error.
func TestVerifyCompleterFailure(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	stub := &stubCompleter{err: errors.New("request timed out")}
	eng := Engine{Logger: slog.Default(), Completer: stub}

	v := eng.Verify(ctx, UserInfo{Email: "a@gmail.com"}, nil, testCriteria)
	assert.Equal(RecommendReject, v.Recommendation)
	assert.Equal(0.0, v.ConfidenceScore)
	assert.Len(v.RiskFactors, 4)
	assert.Contains(v.Analysis.Notes, "Fallback analysis")
}

type panickyCompleter struct{}

func (panickyCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	panic("completer exploded")
}

// Even a panicking collaborator must not leave the caller with a zero verdict:
// the recover path hands back the deterministic fallback.
func TestVerifyCompleterPanic(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	eng := Engine{Logger: slog.Default(), Completer: panickyCompleter{}}
	v := eng.Verify(ctx, UserInfo{Email: "a@gmail.com"}, nil, testCriteria)
	assert.Equal(RecommendReject, v.Recommendation)
	assert.Equal(0.0, v.ConfidenceScore)
	assert.Len(v.RiskFactors, 4)
	assert.Contains(v.Analysis.Notes, "Fallback analysis")
}

func TestVerifyNoCompleterConfigured(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	eng := Engine{Logger: slog.Default()}
	v := eng.Verify(ctx, completeUser(), nil, testCriteria)
	assert.Equal(0.5, v.ConfidenceScore)
	assert.Equal(RecommendReview, v.Recommendation)
}

// Unparsable advisory output goes through the fallback with the raw text
// recorded, not through the parse path.
func TestVerifyUnparsableResponse(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	stub := &stubCompleter{resp: "I cannot produce JSON today."}
	eng := Engine{Logger: slog.Default(), Completer: stub}

	v := eng.Verify(ctx, completeUser(), nil, testCriteria)
	assert.Equal(RecommendReview, v.Recommendation)
	assert.Contains(v.Analysis.Notes, "I cannot produce JSON today.")
}
