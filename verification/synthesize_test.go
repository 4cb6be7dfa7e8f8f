package verification

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func completeUser() UserInfo {
	return UserInfo{
		Name:        "Avery Executive",
		Email:       "avery@acme-corp.com",
		Company:     "Acme Corp",
		Title:       "Chief Operating Officer",
		LinkedInURL: "https://linkedin.com/in/avery",
		Bio:         "20 years of operations leadership",
		Location:    "Chicago, IL",
	}
}

func TestFallbackNoPenalties(t *testing.T) {
	assert := assert.New(t)

	v := Fallback(completeUser())
	assert.Equal(0.5, v.ConfidenceScore)
	assert.Equal(RecommendReview, v.Recommendation)
	assert.Empty(v.RiskFactors)
	assert.False(v.Analysis.ExecutiveRoleVerified)
	assert.Equal(TierMedium, v.Analysis.ProfessionalCredibility)
	assert.Equal(TierMedium, v.Analysis.RiskLevel)
	assert.Contains(v.Analysis.Notes, "Fallback analysis")
}

func TestFallbackAllPenalties(t *testing.T) {
	assert := assert.New(t)

	v := Fallback(UserInfo{Email: "a@gmail.com"})
	assert.Equal(0.0, v.ConfidenceScore)
	assert.Equal(RecommendReject, v.Recommendation)

	// one risk factor per penalty, in fixed check order
	names := make([]string, len(v.RiskFactors))
	for i, f := range v.RiskFactors {
		names[i] = f.Name
	}
	assert.Equal([]string{"Missing Job Title", "Missing Company", "Missing LinkedIn", "Personal Email"}, names)
	assert.Equal(TierHigh, v.RiskFactors[0].Severity)
	assert.Equal(TierHigh, v.RiskFactors[1].Severity)
	assert.Equal(TierMedium, v.RiskFactors[2].Severity)
	assert.Equal(TierMedium, v.RiskFactors[3].Severity)

	assert.False(v.Analysis.ExecutiveRoleVerified)
	assert.Equal(TierLow, v.Analysis.ProfessionalCredibility)
	assert.Equal(TierHigh, v.Analysis.RiskLevel)
}

func TestFallbackPersonalEmailDomain(t *testing.T) {
	assert := assert.New(t)

	user := completeUser()
	user.Email = "avery@hotmail.com"
	v := Fallback(user)
	assert.InDelta(0.4, v.ConfidenceScore, 1e-9)
	if assert.Len(v.RiskFactors, 1) {
		assert.Equal("Personal Email", v.RiskFactors[0].Name)
		assert.Contains(v.RiskFactors[0].Description, "hotmail.com")
	}

	// corporate domains don't count against the applicant
	user.Email = "avery@acme-corp.com"
	assert.Empty(Fallback(user).RiskFactors)
}

// Filling in any single missing field never decreases the score, and never
// flips the recommendation between approve and reject in one step.
func TestFallbackMonotonic(t *testing.T) {
	assert := assert.New(t)

	base := UserInfo{Email: "a@gmail.com"}
	fills := []func(*UserInfo){
		func(u *UserInfo) { u.Title = "CEO" },
		func(u *UserInfo) { u.Company = "Acme" },
		func(u *UserInfo) { u.LinkedInURL = "https://linkedin.com/in/a" },
		func(u *UserInfo) { u.Email = "a@acme.com" },
	}

	// every subset of missing fields, improved one field at a time
	for mask := 0; mask < 1<<len(fills); mask++ {
		user := base
		for i, fill := range fills {
			if mask&(1<<i) != 0 {
				fill(&user)
			}
		}
		before := Fallback(user)
		for i, fill := range fills {
			if mask&(1<<i) != 0 {
				continue
			}
			improved := user
			fill(&improved)
			after := Fallback(improved)
			assert.GreaterOrEqual(after.ConfidenceScore, before.ConfidenceScore)
			if before.Recommendation == RecommendReject {
				assert.NotEqual(RecommendApprove, after.Recommendation)
			}
			if before.Recommendation == RecommendApprove {
				assert.NotEqual(RecommendReject, after.Recommendation)
			}
		}
	}
}

func TestFallbackScoreBounds(t *testing.T) {
	assert := assert.New(t)

	// deduction-only scoring from the midpoint: always within [0.0, 0.5]
	users := []UserInfo{
		{},
		{Email: "a@gmail.com"},
		{Title: "CTO"},
		{Title: "CTO", Company: "Acme"},
		completeUser(),
	}
	for _, u := range users {
		v := Fallback(u)
		assert.GreaterOrEqual(v.ConfidenceScore, 0.0)
		assert.LessOrEqual(v.ConfidenceScore, 0.5)
	}
}

func TestSynthesizeRoundTrip(t *testing.T) {
	assert := assert.New(t)

	raw := `{
		"recommendation": "approve",
		"confidence_score": 0.85,
		"risk_factors": [
			{"name": "Sparse Bio", "description": "Short professional bio", "severity": "low"}
		],
		"analysis": {
			"executive_role_verified": true,
			"professional_credibility": "high",
			"risk_level": "low",
			"notes": "Strong LinkedIn presence"
		}
	}`
	v := Synthesize(raw, UserInfo{})
	assert.Equal(RecommendApprove, v.Recommendation)
	assert.Equal(0.85, v.ConfidenceScore)
	if assert.Len(v.RiskFactors, 1) {
		assert.Equal("Sparse Bio", v.RiskFactors[0].Name)
		assert.Equal(TierLow, v.RiskFactors[0].Severity)
	}
	assert.True(v.Analysis.ExecutiveRoleVerified)
	assert.Equal("high", v.Analysis.ProfessionalCredibility)
	assert.Equal("Strong LinkedIn presence", v.Analysis.Notes)
}

func TestSynthesizeEmbeddedInProse(t *testing.T) {
	assert := assert.New(t)

	raw := "Here is my assessment of the applicant:\n" +
		`{"recommendation": "review_required", "confidence_score": 0.6}` +
		"\nLet me know if you need more detail."
	v := Synthesize(raw, UserInfo{})
	assert.Equal(RecommendReview, v.Recommendation)
	assert.Equal(0.6, v.ConfidenceScore)
}

func TestSynthesizeDefaults(t *testing.T) {
	assert := assert.New(t)

	v := Synthesize(`{}`, UserInfo{})
	assert.Equal(RecommendReview, v.Recommendation)
	assert.Equal(0.5, v.ConfidenceScore)
	assert.NotNil(v.RiskFactors)
	assert.Empty(v.RiskFactors)
	assert.Equal(Analysis{}, v.Analysis)
}

// An accepted advisory verdict is trusted verbatim: the fallback path's
// score/recommendation bounds are not re-applied.
func TestSynthesizeTrustsAdvisoryVerbatim(t *testing.T) {
	assert := assert.New(t)

	v := Synthesize(`{"recommendation": "reject", "confidence_score": 0.9}`, UserInfo{})
	assert.Equal(RecommendReject, v.Recommendation)
	assert.Equal(0.9, v.ConfidenceScore)
}

func TestSynthesizeConfidenceCoercion(t *testing.T) {
	assert := assert.New(t)

	v := Synthesize(`{"confidence_score": "0.8"}`, UserInfo{})
	assert.Equal(0.8, v.ConfidenceScore)

	// clamped into [0, 1]
	v = Synthesize(`{"confidence_score": 1.7}`, UserInfo{})
	assert.Equal(1.0, v.ConfidenceScore)
	v = Synthesize(`{"confidence_score": -0.2}`, UserInfo{})
	assert.Equal(0.0, v.ConfidenceScore)

	// uncoercible score routes to the fallback path
	v = Synthesize(`{"confidence_score": true}`, UserInfo{Email: "a@gmail.com"})
	assert.Equal(RecommendReject, v.Recommendation)
	assert.Contains(v.Analysis.Notes, "Failed to parse advisory response")
}

func TestSynthesizeUnparsable(t *testing.T) {
	assert := assert.New(t)

	long := "I am unable to provide a structured answer. " + strings.Repeat("More prose. ", 40)
	v := Synthesize(long, completeUser())

	// fallback verdict with the truncated raw text in the notes
	assert.Equal(0.5, v.ConfidenceScore)
	assert.Equal(RecommendReview, v.Recommendation)
	expected := fmt.Sprintf("Failed to parse advisory response: %s", long[:200])
	assert.Equal(expected, v.Analysis.Notes)
}

func TestEmailDomain(t *testing.T) {
	assert := assert.New(t)

	fixtures := []struct {
		email  string
		domain string
	}{
		{"a@GMail.COM", "gmail.com"},
		{"a@acme.com", "acme.com"},
		{"not-an-email", ""},
		{"", ""},
	}
	for _, fix := range fixtures {
		assert.Equal(fix.domain, emailDomain(fix.email), fix.email)
	}
}
