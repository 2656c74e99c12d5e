package hiremind

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// Candidate is a resume-derived profile record owned by the remote service.
// The client never constructs one synthetically; instances only come from
// deserialized extraction or matching responses.
type Candidate struct {
	ID         string           `json:"id"`
	Name       string           `json:"name"`
	Email      string           `json:"email,omitempty"`
	Phone      string           `json:"phone,omitempty"`
	Location   string           `json:"location,omitempty"`
	Skills     []string         `json:"skills"`
	Experience []ExperienceItem `json:"experience"`
	Education  []EducationItem  `json:"education"`
	Summary    string           `json:"summary,omitempty"`
	ResumeURL  string           `json:"resumeUrl,omitempty"`
	UploadedAt string           `json:"uploadedAt"`
	// MatchScore is only set once the candidate went through a matching run.
	// No default is substituted when it is absent.
	MatchScore *float64 `json:"matchScore,omitempty"`
}

type ExperienceItem struct {
	Company     string `json:"company"`
	Position    string `json:"position"`
	Duration    string `json:"duration"`
	Description string `json:"description,omitempty"`
	StartDate   string `json:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty"`
}

type EducationItem struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Field       string `json:"field,omitempty"`
	Year        string `json:"year"`
}

// CandidateStats is a read-only aggregate snapshot recomputed by the service
// on every fetch.
type CandidateStats struct {
	Total         int     `json:"total"`
	ThisWeek      int     `json:"thisWeek"`
	ThisMonth     int     `json:"thisMonth"`
	AvgMatchScore float64 `json:"avgMatchScore"`
}

// GetAllCandidates returns every candidate known to the service. An absent
// payload yields an empty slice, never nil.
func (c *Client) GetAllCandidates(ctx context.Context) ([]*Candidate, error) {
	candidates, err := get[[]*Candidate](ctx, c, candidatesPath, nil)
	if err != nil {
		return nil, err
	}

	if candidates == nil {
		candidates = []*Candidate{}
	}

	return candidates, nil
}

// GetCandidateByID returns a single candidate. A missing candidate is an
// error; there is no fallback value.
func (c *Client) GetCandidateByID(ctx context.Context, id string) (*Candidate, error) {
	if id == "" {
		return nil, fmt.Errorf("candidate id is required")
	}

	candidate, err := get[*Candidate](ctx, c, candidatesPath+"/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}

	if candidate == nil {
		return nil, &ServiceError{
			Message:    "candidate not found",
			StatusCode: http.StatusNotFound,
		}
	}

	return candidate, nil
}

// DeleteCandidate removes the candidate on the service side.
func (c *Client) DeleteCandidate(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("candidate id is required")
	}

	return del(ctx, c, candidatesPath+"/"+url.PathEscape(id))
}

// GetCandidateStats fetches the aggregate counters. An absent payload yields
// zero-valued stats, the same snapshot an empty directory would produce.
func (c *Client) GetCandidateStats(ctx context.Context) (*CandidateStats, error) {
	stats, err := get[*CandidateStats](ctx, c, candidatesPath+"/stats", nil)
	if err != nil {
		return nil, err
	}

	if stats == nil {
		stats = &CandidateStats{}
	}

	return stats, nil
}

// SearchCandidates asks the service to filter candidates by name or skill.
// The server owns filtering; no second local pass happens here. A blank query
// degenerates to the full unfiltered list, and no results is not an error.
func (c *Client) SearchCandidates(ctx context.Context, query string) ([]*Candidate, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return c.GetAllCandidates(ctx)
	}

	q := url.Values{}
	q.Set("q", query)

	candidates, err := get[[]*Candidate](ctx, c, candidatesPath+"/search", q)
	if err != nil {
		return nil, err
	}

	if candidates == nil {
		candidates = []*Candidate{}
	}

	return candidates, nil
}
