package automod

// Closed set of violation categories exposed to the platform. The deterministic
// rule groups only ever produce the first four; the rest are reachable only
// through the advisory classifier.
type ViolationType string

const (
	ViolationSolicitation  ViolationType = "solicitation"
	ViolationPII           ViolationType = "pii"
	ViolationHarassment    ViolationType = "harassment"
	ViolationConfidential  ViolationType = "confidential"
	ViolationOffTopic      ViolationType = "off_topic"
	ViolationSpam          ViolationType = "spam"
	ViolationIdentityLeak  ViolationType = "identity_leak"
	ViolationInappropriate ViolationType = "inappropriate"
)

// Human-readable descriptions, keyed by violation type. Used for validating
// user-submitted flags and for admin-facing output.
var ViolationDescriptions = map[ViolationType]string{
	ViolationSolicitation:  "Promotion or sales content",
	ViolationPII:           "Personal identifiable information",
	ViolationHarassment:    "Hostile or inappropriate tone",
	ViolationConfidential:  "Company confidential information",
	ViolationOffTopic:      "Content unrelated to discussion",
	ViolationSpam:          "Repeated or automated content",
	ViolationIdentityLeak:  "Revealing personal identity",
	ViolationInappropriate: "Inappropriate content for professional forum",
}

func ValidViolationType(v ViolationType) bool {
	_, ok := ViolationDescriptions[v]
	return ok
}

// A single post as received from the platform. Immutable once constructed.
type ContentItem struct {
	PostID   int64  `json:"post_id"`
	UserID   int64  `json:"user_id"`
	PeerID   string `json:"peer_id"`
	Content  string `json:"content"`
	RoomID   *int64 `json:"room_id,omitempty"`
	ThreadID *int64 `json:"thread_id,omitempty"`
}

// Outcome of moderating a single content item.
//
// Invariant: ViolationType, Severity, and Reason are populated if and only if
// Flagged is true.
type Verdict struct {
	Flagged       bool           `json:"flagged"`
	ViolationType *ViolationType `json:"violation_type,omitempty"`
	Severity      *int           `json:"severity,omitempty"`
	Reason        *string        `json:"reason,omitempty"`
	Confidence    *float64       `json:"confidence,omitempty"`
}

// NotFlagged is the benign verdict: used for empty content, for fail-open on
// advisory errors, and as the immediate ack for deferred events.
func NotFlagged() Verdict {
	return Verdict{Flagged: false}
}
