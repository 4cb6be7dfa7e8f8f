package automod

import (
	"context"
	"log/slog"
	"regexp"
)

// Test helper which returns an engine with a minimal two-group rule set and no
// advisory classifier configured. Intentionally exported, for use in other
// packages.
func EngineTestFixture() Engine {
	rules := RuleSet{
		Groups: []RuleGroup{
			{
				Name:     "solicitation",
				Category: ViolationSolicitation,
				Severity: 3,
				Reason:   "Contains promotional or sales content",
				Probes:   []*regexp.Regexp{regexp.MustCompile(`business opportunity`)},
			},
			{
				Name:          "pii",
				Category:      ViolationPII,
				Severity:      4,
				Reason:        "Contains personal identifiable information",
				CaseSensitive: true,
				Probes:        []*regexp.Regexp{regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)},
			},
		},
	}
	return Engine{
		Logger: slog.Default(),
		Rules:  rules,
	}
}

// Advisory classifier stub returning a fixed verdict or error, and counting
// invocations.
type StubAdvisory struct {
	Verdict Verdict
	Err     error
	Calls   int
}

func (s *StubAdvisory) ClassifyText(ctx context.Context, text string) (Verdict, error) {
	s.Calls++
	if s.Err != nil {
		return NotFlagged(), s.Err
	}
	return s.Verdict, nil
}

// Flag notifier stub recording every notification.
type StubNotifier struct {
	Flags []ContentItem
	Err   error
}

func (s *StubNotifier) NotifyFlag(ctx context.Context, item ContentItem, verdict Verdict) error {
	if s.Err != nil {
		return s.Err
	}
	s.Flags = append(s.Flags, item)
	return nil
}
