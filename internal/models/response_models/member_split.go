package response_models

type MemberShare struct {
	MemberKey string  `json:"member_key"`
	Amount    float64 `json:"amount"`
}

// MemberSplit allocates a total across members. Shares keeps positional order
// so "the last member takes the remainder" stays well defined. The shares
// always sum to TotalAmount exactly.
type MemberSplit struct {
	TotalAmount float64       `json:"total_amount"`
	Shares      []MemberShare `json:"shares"`

	// FallbackApplied marks a custom split whose shares did not sum to the
	// total and was replaced by an equal split. The call still succeeds;
	// callers wanting strict validation check this flag.
	FallbackApplied bool   `json:"fallback_applied,omitempty"`
	Warning         string `json:"warning,omitempty"`
}
