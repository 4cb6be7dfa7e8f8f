package verification

import (
	"fmt"
	"strings"
)

func orNotProvided(s string) string {
	if s == "" {
		return "Not provided"
	}
	return s
}

// Builds the verification analysis prompt: the applicant's profile fields, the
// weighted criteria list, and the response contract the advisory service is
// asked to honor. Criteria weights are passed through as advisory context
// only.
func BuildVerificationPrompt(user UserInfo, criteria []Criterion) string {
	var b strings.Builder

	b.WriteString(`You are a verification specialist for a private forum of C-level executives. Your role is to thoroughly analyze applications and provide detailed assessments with confidence scores.

**User Information:**
`)
	fmt.Fprintf(&b, "- Name: %s\n", orNotProvided(user.Name))
	fmt.Fprintf(&b, "- Email: %s\n", orNotProvided(user.Email))
	fmt.Fprintf(&b, "- Company: %s\n", orNotProvided(user.Company))
	fmt.Fprintf(&b, "- Title: %s\n", orNotProvided(user.Title))
	fmt.Fprintf(&b, "- LinkedIn: %s\n", orNotProvided(user.LinkedInURL))
	fmt.Fprintf(&b, "- Bio: %s\n", orNotProvided(user.Bio))
	fmt.Fprintf(&b, "- Location: %s\n", orNotProvided(user.Location))

	b.WriteString("\n**Verification Criteria:**\n")
	for _, c := range criteria {
		fmt.Fprintf(&b, "- %s: %s (Weight: %g)\n", c.Name, c.Description, c.Weight)
	}

	b.WriteString(`
**Analysis Instructions:**
1. Evaluate if this person appears to be a legitimate C-level executive or equivalent senior leader
2. Check for consistency in professional information
3. Identify any risk factors or red flags
4. Assess the overall credibility and suitability for the platform

**Response Format:**
Provide your analysis in the following JSON format:
{
    "recommendation": "approve|reject|review_required",
    "confidence_score": 0.0-1.0,
    "risk_factors": [
        {
            "name": "Risk factor name",
            "description": "Description of the risk",
            "severity": "high|medium|low"
        }
    ],
    "analysis": {
        "executive_role_verified": true/false,
        "professional_credibility": "high|medium|low",
        "risk_level": "high|medium|low",
        "notes": "Additional analysis notes"
    }
}

**Important Guidelines:**
- Only approve if there's strong evidence of C-level or equivalent executive role
- Reject if there are significant red flags or inconsistencies
- Request review if the case is unclear or borderline
- Be conservative in approvals to maintain platform quality
`)

	return b.String()
}
