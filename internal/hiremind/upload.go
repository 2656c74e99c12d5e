package hiremind

import (
	"context"
	"fmt"
	"io"
)

// uploadFieldName is the multipart field the service expects the resume under.
const uploadFieldName = "file"

// UploadResult is the extraction outcome for one uploaded resume.
type UploadResult struct {
	CandidateID string     `json:"candidateId"`
	Candidate   *Candidate `json:"candidate"`
	Message     string     `json:"message"`
}

// UploadResume submits a resume file for extraction. The caller is expected
// to have validated type and size beforehand; the service performs its own
// checks regardless. Failures are not retried here.
func (c *Client) UploadResume(ctx context.Context, filename string, r io.Reader) (*UploadResult, error) {
	result, err := uploadFile[*UploadResult](ctx, c, uploadPath, uploadFieldName, filename, r)
	if err != nil {
		return nil, err
	}

	if result == nil {
		return nil, fmt.Errorf("extraction response is missing a result")
	}

	return result, nil
}
