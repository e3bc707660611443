package analysis

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
)

// Outcome classifies one generation attempt.
type Outcome int

const (
	OutcomeComplete Outcome = iota
	OutcomeSafetyBlocked
	OutcomeRecitationBlocked
	OutcomeTruncated
	OutcomeEmpty
	OutcomeNoCandidates
	OutcomeTransportError
)

func (o Outcome) String() string {
	switch o {
	case OutcomeComplete:
		return "COMPLETE"
	case OutcomeSafetyBlocked:
		return "SAFETY_BLOCKED"
	case OutcomeRecitationBlocked:
		return "RECITATION_BLOCKED"
	case OutcomeTruncated:
		return "TRUNCATED"
	case OutcomeEmpty:
		return "EMPTY"
	case OutcomeNoCandidates:
		return "NO_CANDIDATES"
	default:
		return "TRANSPORT_ERROR"
	}
}

// Fixed fallback strings shown in place of model output.
const (
	MsgNoCandidates      = "(The API returned no candidates. This may be due to a temporary issue.)"
	MsgSafetyBlocked     = "(Agent response was blocked by safety filters. Try again, or disable real-time search.)"
	MsgRecitationBlocked = "(Agent response was blocked due to potential data recitation. Try modifying your query.)"
	MsgTruncated         = "(Generation stopped due to hitting the output token limit. The analysis is incomplete.)"
)

// Result is the classified outcome of one generation call. DisplayText is
// always populated; RawText holds model text only for complete or partially
// truncated outputs.
type Result struct {
	RawText     string
	Outcome     Outcome
	DisplayText string
}

// Client wraps a Provider and folds every failure mode into a displayable
// Result.
type Client struct {
	provider Provider
}

// NewClient creates an analysis client over the given provider.
func NewClient(p Provider) *Client {
	return &Client{provider: p}
}

// Generate runs one generation call. It never returns an error; transport
// failures become a Result with a human-readable summary.
func (c *Client) Generate(ctx context.Context, systemInstruction, userMessage string) Result {
	resp, err := c.provider.Generate(ctx, systemInstruction, userMessage)
	if err != nil {
		log.Warn().Err(err).Str("provider", c.provider.Name()).Msg("Generation call failed")
		return Result{
			Outcome:     OutcomeTransportError,
			DisplayText: fmt.Sprintf("(Error calling the %s API: %v)", c.provider.Name(), err),
		}
	}
	return Classify(resp)
}

// Classify applies the outcome ladder to a completion. Ordering matters: a
// safety or recitation stop wins over the empty-text condition because the
// more specific cause is the actionable one.
func Classify(resp *Completion) Result {
	if resp == nil || len(resp.Candidates) == 0 {
		return Result{Outcome: OutcomeNoCandidates, DisplayText: MsgNoCandidates}
	}

	cand := resp.Candidates[0]
	text := strings.TrimSpace(cand.Text)

	switch cand.StopReason {
	case StopSafety:
		return Result{Outcome: OutcomeSafetyBlocked, DisplayText: MsgSafetyBlocked}
	case StopRecitation:
		return Result{Outcome: OutcomeRecitationBlocked, DisplayText: MsgRecitationBlocked}
	case StopMaxTokens:
		display := MsgTruncated
		if text != "" {
			display = text + "\n\n" + MsgTruncated
		}
		return Result{RawText: text, Outcome: OutcomeTruncated, DisplayText: display}
	}

	if text == "" {
		reason := cand.RawReason
		if reason == "" {
			reason = cand.StopReason.String()
		}
		return Result{
			Outcome:     OutcomeEmpty,
			DisplayText: fmt.Sprintf("(Generation finished with reason: %s. No text was generated.)", reason),
		}
	}

	return Result{RawText: text, Outcome: OutcomeComplete, DisplayText: text}
}
