package hiremind

import (
	"context"
	"fmt"
	"net/url"

	"github.com/mitchellh/mapstructure"
)

// MatchRequest is the matching call payload. TopN limits how many results
// the service returns; zero lets the service pick its default.
type MatchRequest struct {
	JobDescription *JobDescription `json:"jobDescription"`
	TopN           int             `json:"topN,omitempty"`
}

// MatchResult is a scored pairing of a candidate against a job description.
// MatchScore is always present, unlike Candidate.MatchScore. The matched and
// missing skill sets are expected to be disjoint by the service; the client
// does not enforce that.
type MatchResult struct {
	Candidate     *Candidate `json:"candidate"`
	MatchScore    float64    `json:"matchScore"`
	MatchedSkills []string   `json:"matchedSkills"`
	MissingSkills []string   `json:"missingSkills"`
	Reasoning     string     `json:"reasoning"`
}

// ResumeAnalysis is the quality feedback the service produces for a single
// stored resume.
type ResumeAnalysis struct {
	OverallScore    int      `json:"overallScore"`
	Strengths       []string `json:"strengths"`
	Improvements    []string `json:"improvements"`
	Recommendations []string `json:"recommendations"`
}

type explainPayload struct {
	Explanation string `json:"explanation"`
}

type explainRequest struct {
	CandidateID    string          `json:"candidateId"`
	JobDescription *JobDescription `json:"jobDescription"`
}

// MatchCandidates submits a job description and returns the ranked results in
// the server-provided order, highest score first. The client does not
// re-sort. An empty result set is not an error and comes back as an empty
// slice, never nil.
func (c *Client) MatchCandidates(ctx context.Context, req *MatchRequest) ([]*MatchResult, error) {
	if req == nil || req.JobDescription == nil {
		return nil, fmt.Errorf("a job description is required")
	}

	results, err := post[[]*MatchResult](ctx, c, matchPath, req)
	if err != nil {
		return nil, err
	}

	if results == nil {
		results = []*MatchResult{}
	}

	return results, nil
}

// ExplainMatch asks the service why a candidate scored the way it did.
// Returns an empty string when the service omits the field.
func (c *Client) ExplainMatch(ctx context.Context, candidateID string, jd *JobDescription) (string, error) {
	if candidateID == "" {
		return "", fmt.Errorf("candidate id is required")
	}

	payload, err := post[explainPayload](ctx, c, matchPath+"/explain", &explainRequest{
		CandidateID:    candidateID,
		JobDescription: jd,
	})
	if err != nil {
		return "", err
	}

	return payload.Explanation, nil
}

// AnalyzeResume requests quality feedback for a stored resume. The payload is
// loosely shaped on the wire, so it is decoded by field name rather than with
// a fixed schema.
func (c *Client) AnalyzeResume(ctx context.Context, candidateID string) (*ResumeAnalysis, error) {
	if candidateID == "" {
		return nil, fmt.Errorf("candidate id is required")
	}

	raw, err := post[map[string]any](ctx, c, matchPath+"/analyze/"+url.PathEscape(candidateID), nil)
	if err != nil {
		return nil, err
	}

	var analysis ResumeAnalysis
	cfg := &mapstructure.DecoderConfig{
		Result:  &analysis,
		TagName: "json",
	}

	decoder, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return nil, err
	}

	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("decoding analysis: %w", err)
	}

	return &analysis, nil
}
