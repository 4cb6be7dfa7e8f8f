package verification

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Consumer email providers which count against applicant credibility.
var personalEmailDomains = map[string]bool{
	"gmail.com":   true,
	"yahoo.com":   true,
	"hotmail.com": true,
	"outlook.com": true,
}

// Raw advisory text included in fallback notes is truncated to this many
// characters to bound verdict size.
const noteTruncateLen = 200

var embeddedObject = regexp.MustCompile(`(?s)\{.*\}`)

// Canonicalizes an advisory response into a verdict. If the text contains a
// decodable verdict object it is accepted verbatim (aside from clamping the
// confidence score into [0,1] and defaulting absent fields); the
// score/recommendation monotonicity bounds are NOT re-validated on this path.
// If decoding fails, the deterministic fallback is used instead, with the
// truncated raw text recorded in the analysis notes.
func Synthesize(advisoryText string, user UserInfo) Verdict {
	verdict, err := parseVerdict(advisoryText)
	if err != nil {
		parseFailureCount.Inc()
		v := Fallback(user)
		v.Analysis.Notes = fmt.Sprintf("Failed to parse advisory response: %s", truncate(advisoryText, noteTruncateLen))
		return v
	}
	return verdict
}

// wire shape of an advisory verdict; pointer fields so absent keys can be
// defaulted, and a loose confidence type so numeric strings coerce
type rawVerdict struct {
	Recommendation  *Recommendation `json:"recommendation"`
	ConfidenceScore any             `json:"confidence_score"`
	RiskFactors     []RiskFactor    `json:"risk_factors"`
	Analysis        *Analysis       `json:"analysis"`
}

// Locates a single structured object embedded anywhere in free text (the
// advisory service may wrap its verdict in prose) and decodes it. This is the
// only place raw advisory output is interpreted; any failure is reported
// through the error so the fallback path stays a clean branch.
func parseVerdict(text string) (Verdict, error) {
	blob := embeddedObject.FindString(text)
	if blob == "" {
		return Verdict{}, fmt.Errorf("no structured object found in advisory response")
	}
	var raw rawVerdict
	if err := json.Unmarshal([]byte(blob), &raw); err != nil {
		return Verdict{}, fmt.Errorf("decoding advisory verdict: %w", err)
	}

	out := Verdict{
		Recommendation:  RecommendReview,
		ConfidenceScore: 0.5,
		RiskFactors:     []RiskFactor{},
	}
	if raw.Recommendation != nil {
		out.Recommendation = *raw.Recommendation
	}
	if raw.ConfidenceScore != nil {
		score, err := coerceFloat(raw.ConfidenceScore)
		if err != nil {
			return Verdict{}, fmt.Errorf("coercing confidence score: %w", err)
		}
		out.ConfidenceScore = clamp01(score)
	}
	if raw.RiskFactors != nil {
		out.RiskFactors = raw.RiskFactors
	}
	if raw.Analysis != nil {
		out.Analysis = *raw.Analysis
	}
	return out, nil
}

func coerceFloat(v any) (float64, error) {
	switch val := v.(type) {
	case float64:
		return val, nil
	case string:
		return strconv.ParseFloat(strings.TrimSpace(val), 64)
	case json.Number:
		return val.Float64()
	default:
		return 0, fmt.Errorf("unsupported confidence score type %T", v)
	}
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// Deterministic verdict computed purely from input completeness, used when the
// advisory service is unavailable or its output is unusable.
//
// Scoring is deduction-only from the 0.5 midpoint, so the result can never
// exceed 0.5 and is floored at 0.0. One risk factor is appended per triggered
// penalty, in fixed check order: title, company, profile URL, email domain.
func Fallback(user UserInfo) Verdict {
	score := 0.5
	factors := []RiskFactor{}

	if user.Title == "" {
		factors = append(factors, RiskFactor{
			Name:        "Missing Job Title",
			Description: "No job title provided",
			Severity:    TierHigh,
		})
		score -= 0.2
	}
	if user.Company == "" {
		factors = append(factors, RiskFactor{
			Name:        "Missing Company",
			Description: "No company information provided",
			Severity:    TierHigh,
		})
		score -= 0.2
	}
	if user.LinkedInURL == "" {
		factors = append(factors, RiskFactor{
			Name:        "Missing LinkedIn",
			Description: "No LinkedIn profile provided",
			Severity:    TierMedium,
		})
		score -= 0.1
	}
	if domain := emailDomain(user.Email); domain != "" && personalEmailDomains[domain] {
		factors = append(factors, RiskFactor{
			Name:        "Personal Email",
			Description: fmt.Sprintf("Using personal email domain: %s", domain),
			Severity:    TierMedium,
		})
		score -= 0.1
	}

	if score < 0 {
		score = 0
	}

	var recommendation Recommendation
	switch {
	case score >= 0.7:
		recommendation = RecommendApprove
	case score <= 0.3:
		recommendation = RecommendReject
	default:
		recommendation = RecommendReview
	}

	highCount := 0
	for _, f := range factors {
		if f.Severity == TierHigh {
			highCount++
		}
	}
	riskLevel := TierMedium
	if highCount >= 2 {
		riskLevel = TierHigh
	}
	credibility := TierLow
	if score >= 0.5 {
		credibility = TierMedium
	}

	return Verdict{
		Recommendation:  recommendation,
		ConfidenceScore: score,
		RiskFactors:     factors,
		Analysis: Analysis{
			ExecutiveRoleVerified:   score >= 0.6,
			ProfessionalCredibility: credibility,
			RiskLevel:               riskLevel,
			Notes:                   "Fallback analysis performed due to advisory service unavailability",
		},
	}
}

func emailDomain(email string) string {
	_, domain, found := strings.Cut(email, "@")
	if !found {
		return ""
	}
	return strings.ToLower(domain)
}
