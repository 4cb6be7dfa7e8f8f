package automod

import (
	"regexp"
	"strings"
)

// Confidence reported when a deterministic rule group is the deciding source.
const RuleConfidence = 0.9

// A single ordered group of content probes with fixed classification metadata.
// Groups are pure predicate-plus-metadata values; all policy precedence lives
// in the ordering of RuleSet.Groups, not in conditional branches.
type RuleGroup struct {
	Name     string
	Category ViolationType
	Severity int
	Reason   string
	// structural probes (PII syntax) match the raw text; phrase probes match
	// the lowercased text
	CaseSensitive bool
	Probes        []*regexp.Regexp
}

func (g *RuleGroup) matches(raw, lowered string) bool {
	text := lowered
	if g.CaseSensitive {
		text = raw
	}
	for _, p := range g.Probes {
		if p.MatchString(text) {
			return true
		}
	}
	return false
}

// Result of a deterministic rule match.
type Match struct {
	Group    string
	Category ViolationType
	Severity int
	Reason   string
}

// Holds the ordered rule groups and dispatches text to them.
type RuleSet struct {
	Groups []RuleGroup
}

// Evaluates the groups in order and returns the first match, or nil when no
// group matches. Nil means "no match", not "not flagged": the caller decides
// whether to delegate to an advisory classifier or return a benign verdict.
//
// Empty or whitespace-only text short-circuits before any probe runs.
func (r *RuleSet) Classify(text string) *Match {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	lowered := strings.ToLower(text)
	for i := range r.Groups {
		g := &r.Groups[i]
		if g.matches(text, lowered) {
			ruleGroupHitCount.WithLabelValues(g.Name).Inc()
			return &Match{
				Group:    g.Name,
				Category: g.Category,
				Severity: g.Severity,
				Reason:   g.Reason,
			}
		}
	}
	return nil
}

// Builds a flagged verdict from a rule match. Deterministic rules are
// authoritative, so the confidence is always RuleConfidence.
func (m *Match) Verdict() Verdict {
	sev := m.Severity
	reason := m.Reason
	conf := RuleConfidence
	cat := m.Category
	return Verdict{
		Flagged:       true,
		ViolationType: &cat,
		Severity:      &sev,
		Reason:        &reason,
		Confidence:    &conf,
	}
}
