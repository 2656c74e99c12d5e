package workflow

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/hiremind/hiremind-cli/internal/hiremind"
	"github.com/hiremind/hiremind-cli/internal/validation"
)

type stubIntake struct {
	result *hiremind.UploadResult
	err    error
	calls  int
}

func (s *stubIntake) UploadResume(_ context.Context, _ string, _ io.Reader) (*hiremind.UploadResult, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func validFile() validation.FileInfo {
	return validation.FileInfo{
		Name:     "ada.pdf",
		MIMEType: "application/pdf",
		Size:     1024,
	}
}

func TestUploadFlowStartsIdle(t *testing.T) {
	flow := NewUploadFlow(&stubIntake{}, zap.NewNop(), 0)

	assert.Equal(t, UploadIdle, flow.State())
}

func TestSelectFileWrongTypeStaysIdle(t *testing.T) {
	flow := NewUploadFlow(&stubIntake{}, zap.NewNop(), 0)

	err := flow.SelectFile(validation.FileInfo{Name: "notes.txt", MIMEType: "text/plain", Size: 10})

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Please upload a PDF or DOCX file", vErr.Message)
	assert.Equal(t, UploadIdle, flow.State())
}

func TestSelectFileTypeIsCheckedBeforeSize(t *testing.T) {
	flow := NewUploadFlow(&stubIntake{}, zap.NewNop(), 0)

	// Wrong type and too large at once: the messages are mutually
	// exclusive and the type message wins.
	err := flow.SelectFile(validation.FileInfo{Name: "huge.txt", MIMEType: "text/plain", Size: 50 * 1024 * 1024})

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Please upload a PDF or DOCX file", vErr.Message)
}

func TestSelectFileTooLargeStaysIdle(t *testing.T) {
	flow := NewUploadFlow(&stubIntake{}, zap.NewNop(), 0)

	err := flow.SelectFile(validation.FileInfo{Name: "huge.pdf", MIMEType: "application/pdf", Size: 5*1024*1024 + 1})

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "File size must be less than 5MB", vErr.Message)
	assert.Equal(t, UploadIdle, flow.State())
}

func TestSelectFileValidMovesToFileSelected(t *testing.T) {
	flow := NewUploadFlow(&stubIntake{}, zap.NewNop(), 0)

	require.NoError(t, flow.SelectFile(validFile()))
	assert.Equal(t, UploadFileSelected, flow.State())
	assert.Equal(t, "ada.pdf", flow.SelectedFile().Name)
	assert.Empty(t, flow.LastError())
}

func TestUploadWithoutSelectionFails(t *testing.T) {
	intake := &stubIntake{}
	flow := NewUploadFlow(intake, zap.NewNop(), 0)

	_, err := flow.Upload(context.Background(), nil)

	require.Error(t, err)
	assert.Zero(t, intake.calls, "no service call may be fired without a selection")
}

func TestUploadSuccess(t *testing.T) {
	intake := &stubIntake{result: &hiremind.UploadResult{
		CandidateID: "c1",
		Candidate:   &hiremind.Candidate{ID: "c1", Name: "Ada"},
		Message:     "Resume uploaded and parsed successfully",
	}}
	flow := NewUploadFlow(intake, zap.NewNop(), 0)

	require.NoError(t, flow.SelectFile(validFile()))

	result, err := flow.Upload(context.Background(), nil)

	require.NoError(t, err)
	assert.Equal(t, UploadSucceeded, flow.State())
	assert.Equal(t, "c1", result.CandidateID)
	assert.Same(t, result, flow.Result())
}

func TestUploadFailureReturnsToFileSelectedWithFileRetained(t *testing.T) {
	intake := &stubIntake{err: &hiremind.ServiceError{
		Message:    "File too large. Maximum size is 5MB.",
		StatusCode: 413,
	}}
	flow := NewUploadFlow(intake, zap.NewNop(), 0)

	require.NoError(t, flow.SelectFile(validFile()))

	_, err := flow.Upload(context.Background(), nil)

	require.Error(t, err)
	assert.Equal(t, UploadFileSelected, flow.State(), "a failed upload must not fall back to idle")
	assert.Equal(t, "ada.pdf", flow.SelectedFile().Name, "the original file stays selected for a retry")
	assert.Contains(t, flow.LastError(), "File too large")
}

func TestUploadRetryAfterFailure(t *testing.T) {
	intake := &stubIntake{err: &hiremind.ServiceError{Message: "boom", StatusCode: 500}}
	flow := NewUploadFlow(intake, zap.NewNop(), 0)

	require.NoError(t, flow.SelectFile(validFile()))

	_, err := flow.Upload(context.Background(), nil)
	require.Error(t, err)

	intake.err = nil
	intake.result = &hiremind.UploadResult{CandidateID: "c1"}

	result, err := flow.Upload(context.Background(), nil)

	require.NoError(t, err)
	assert.Equal(t, UploadSucceeded, flow.State())
	assert.Equal(t, "c1", result.CandidateID)
	assert.Equal(t, 2, intake.calls)
}

func TestUploadFromSucceededIsTerminal(t *testing.T) {
	intake := &stubIntake{result: &hiremind.UploadResult{CandidateID: "c1"}}
	flow := NewUploadFlow(intake, zap.NewNop(), 0)

	require.NoError(t, flow.SelectFile(validFile()))

	_, err := flow.Upload(context.Background(), nil)
	require.NoError(t, err)

	_, err = flow.Upload(context.Background(), nil)
	require.Error(t, err)
	assert.Equal(t, 1, intake.calls)
}

func TestResetReturnsToIdleUnconditionally(t *testing.T) {
	intake := &stubIntake{result: &hiremind.UploadResult{CandidateID: "c1"}}
	flow := NewUploadFlow(intake, zap.NewNop(), 0)

	require.NoError(t, flow.SelectFile(validFile()))
	_, err := flow.Upload(context.Background(), nil)
	require.NoError(t, err)

	flow.Reset()

	assert.Equal(t, UploadIdle, flow.State())
	assert.Empty(t, flow.SelectedFile().Name)
	assert.Nil(t, flow.Result())
	assert.Empty(t, flow.LastError())
}

func TestUploadFlowCustomSizeLimit(t *testing.T) {
	flow := NewUploadFlow(&stubIntake{}, zap.NewNop(), 2)

	err := flow.SelectFile(validation.FileInfo{Name: "big.pdf", MIMEType: "application/pdf", Size: 3 * 1024 * 1024})

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "File size must be less than 2MB", vErr.Message)
}
