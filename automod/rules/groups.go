package rules

import (
	"regexp"

	"github.com/circleofpeers/peerguard/automod"
)

// Phrase probes are matched against lowercased text; keep them lowercase here.
var solicitationProbes = compileAll(
	`connect you with`,
	`business opportunity`,
	`let me introduce you to`,
	`sales pitch`,
	`promotional offer`,
	`investment opportunity`,
	`get rich quick`,
	`make money fast`,
)

// Structural probes: email, phone (dashed/dotted separators), US SSN, ZIP+4.
// These are case-sensitive because they match syntax, not words.
var piiProbes = compileAll(
	`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`,
	`\b\d{3}[-.]?\d{3}[-.]?\d{4}\b`,
	`\b\d{3}-\d{2}-\d{4}\b`,
	`\b\d{5}[-.]?\d{4}\b`,
)

var harassmentProbes = compileAll(
	`you're an idiot`,
	`you're all stupid`,
	`this is worthless`,
	`shut up`,
	`you're incompetent`,
	`this is garbage`,
)

var confidentialProbes = compileAll(
	`confidential`,
	`internal only`,
	`not for public`,
	`company secret`,
	`proprietary information`,
)

func compileAll(patterns ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		out[i] = regexp.MustCompile(p)
	}
	return out
}

// Returns the deterministic rule groups in policy-precedence order.
//
// The ordering is a policy decision, not arbitrary: solicitation runs first
// because commercial pitches are the platform's most common unwanted content,
// and PII runs before harassment so that privacy leaks are flagged even inside
// hostile text. First matching group wins; later groups are never evaluated.
func DefaultRules() automod.RuleSet {
	return automod.RuleSet{
		Groups: []automod.RuleGroup{
			{
				Name:     "solicitation",
				Category: automod.ViolationSolicitation,
				Severity: 3,
				Reason:   "Contains promotional or sales content",
				Probes:   solicitationProbes,
			},
			{
				Name:          "pii",
				Category:      automod.ViolationPII,
				Severity:      4,
				Reason:        "Contains personal identifiable information",
				CaseSensitive: true,
				Probes:        piiProbes,
			},
			{
				Name:     "harassment",
				Category: automod.ViolationHarassment,
				Severity: 5,
				Reason:   "Contains hostile or inappropriate language",
				Probes:   harassmentProbes,
			},
			{
				Name:     "confidential",
				Category: automod.ViolationConfidential,
				Severity: 4,
				Reason:   "Contains confidential or proprietary information",
				Probes:   confidentialProbes,
			},
		},
	}
}
