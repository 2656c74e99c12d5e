package workflow

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/hiremind/hiremind-cli/internal/hiremind"
)

// CandidateMatcher is the slice of the API client the match flow needs.
type CandidateMatcher interface {
	MatchCandidates(ctx context.Context, req *hiremind.MatchRequest) ([]*hiremind.MatchResult, error)
}

// MatchState is the tagged state of the match flow.
type MatchState int

const (
	MatchIdle MatchState = iota
	MatchInProgress
	MatchResults
	MatchEmpty
)

func (s MatchState) String() string {
	switch s {
	case MatchIdle:
		return "idle"
	case MatchInProgress:
		return "matching"
	case MatchResults:
		return "results"
	case MatchEmpty:
		return "empty"
	default:
		return "unknown"
	}
}

// MatchFlow drives one matching round: idle -> matching -> results or empty.
// An empty result set is informational, not a failure. A failed call returns
// to idle with the job description retained, so the user can resubmit the
// same form.
type MatchFlow struct {
	matcher CandidateMatcher
	logger  *zap.Logger

	state   MatchState
	jd      *hiremind.JobDescription
	results []*hiremind.MatchResult
	lastErr string
}

func NewMatchFlow(matcher CandidateMatcher, logger *zap.Logger) *MatchFlow {
	return &MatchFlow{
		matcher: matcher,
		logger:  logger,
		state:   MatchIdle,
	}
}

func (f *MatchFlow) State() MatchState { return f.state }

// JobDescription returns the current form. It survives failed submissions.
func (f *MatchFlow) JobDescription() *hiremind.JobDescription { return f.jd }

// Results returns the ranked results in server-provided order. Only
// meaningful in the results state.
func (f *MatchFlow) Results() []*hiremind.MatchResult { return f.results }

// LastError returns the message of the most recent failure, empty when the
// last submission went through.
func (f *MatchFlow) LastError() string { return f.lastErr }

// SetJobDescription replaces the form. Rejected while a call is in flight.
func (f *MatchFlow) SetJobDescription(jd *hiremind.JobDescription) error {
	if f.state == MatchInProgress {
		return fmt.Errorf("a matching call is in progress")
	}

	f.jd = jd
	return nil
}

// Submit fires the matching call with the current form. Only one call is in
// flight at a time; the matching state is the gate. Results keep the server
// order, the client never re-sorts.
func (f *MatchFlow) Submit(ctx context.Context, topN int) ([]*hiremind.MatchResult, error) {
	if f.state == MatchInProgress {
		return nil, fmt.Errorf("a matching call is in progress")
	}

	if f.jd == nil {
		return nil, fmt.Errorf("no job description to submit")
	}

	f.state = MatchInProgress
	f.lastErr = ""
	f.results = nil

	results, err := f.matcher.MatchCandidates(ctx, &hiremind.MatchRequest{
		JobDescription: f.jd,
		TopN:           topN,
	})
	if err != nil {
		f.state = MatchIdle
		f.lastErr = err.Error()
		return nil, err
	}

	f.results = results

	if len(results) == 0 {
		f.state = MatchEmpty
		f.logger.Info("no candidates matched the job description")
		return results, nil
	}

	f.state = MatchResults

	f.logger.Info("matching finished",
		zap.Int("results", len(results)),
	)

	return results, nil
}

// Reset returns the flow to idle, discarding the form and the results.
func (f *MatchFlow) Reset() {
	f.state = MatchIdle
	f.jd = nil
	f.results = nil
	f.lastErr = ""
}
