package verification

// Recommendation for an applicant, one of a closed set.
type Recommendation string

const (
	RecommendApprove Recommendation = "approve"
	RecommendReject  Recommendation = "reject"
	RecommendReview  Recommendation = "review_required"
)

// Severity tiers for risk factors and analysis levels.
const (
	TierHigh   = "high"
	TierMedium = "medium"
	TierLow    = "low"
)

// A single risk identified during verification. Risk factors are produced in
// check-evaluation order, not ranked by importance.
type RiskFactor struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Severity    string `json:"severity"`
}

// Summary analysis bundle attached to every verdict.
type Analysis struct {
	ExecutiveRoleVerified   bool   `json:"executive_role_verified"`
	ProfessionalCredibility string `json:"professional_credibility"`
	RiskLevel               string `json:"risk_level"`
	Notes                   string `json:"notes"`
}

// Complete verification outcome. Every public entry point in this package
// returns one of these; there is no error path visible to callers.
type Verdict struct {
	Recommendation  Recommendation `json:"recommendation"`
	ConfidenceScore float64        `json:"confidence_score"`
	RiskFactors     []RiskFactor   `json:"risk_factors"`
	Analysis        Analysis       `json:"analysis"`
}

// Applicant profile fields as submitted at registration.
type UserInfo struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Company     string `json:"company"`
	Title       string `json:"title"`
	LinkedInURL string `json:"linkedin_url"`
	Bio         string `json:"bio"`
	Location    string `json:"location"`
}

// A named verification criterion. Weights are advisory context for the
// external reasoning service; they are not normalized or validated locally.
type Criterion struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Weight      float64 `json:"weight"`
}
