// Package analysis wraps the LLM generation call and classifies its outcome.
package analysis

import "context"

// Fixed decoding parameters. Low temperature and a hard output budget favor
// deterministic, complete structured reports over creativity.
const (
	Temperature     float32 = 0.1
	MaxOutputTokens int32   = 4048
)

// StopReason is the internal finish-reason vocabulary. Each provider maps
// its SDK's raw codes onto it at its own boundary, so the rest of the
// system never sees provider-specific strings.
type StopReason int

const (
	StopUnspecified StopReason = iota
	StopNormal
	StopSafety
	StopRecitation
	StopMaxTokens
	StopOther
)

func (r StopReason) String() string {
	switch r {
	case StopNormal:
		return "STOP"
	case StopSafety:
		return "SAFETY"
	case StopRecitation:
		return "RECITATION"
	case StopMaxTokens:
		return "MAX_OUTPUT_TOKENS"
	case StopOther:
		return "OTHER"
	default:
		return "UNSPECIFIED"
	}
}

// Candidate is one generated output. RawReason carries the provider's own
// reason string for display in diagnostics.
type Candidate struct {
	Text       string
	StopReason StopReason
	RawReason  string
}

// Completion is the normalized shape of one generation response.
type Completion struct {
	Candidates []Candidate
}

// Provider is the narrow boundary to an LLM backend. Implementations apply
// the fixed decoding parameters above.
type Provider interface {
	Generate(ctx context.Context, systemInstruction, userMessage string) (*Completion, error)
	Name() string
	Close() error
}
