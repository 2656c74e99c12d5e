// Package workflow holds the per-screen state machines that sequence
// validation, service calls and result projection. Each flow allows a single
// in-flight operation at a time; the in-progress state is the gate, there are
// no locks. Flows are not safe for concurrent use.
package workflow

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/hiremind/hiremind-cli/internal/hiremind"
	"github.com/hiremind/hiremind-cli/internal/validation"
)

// ResumeIntake is the slice of the API client the upload flow needs.
type ResumeIntake interface {
	UploadResume(ctx context.Context, filename string, r io.Reader) (*hiremind.UploadResult, error)
}

// ValidationError is a local, pre-network failure. It blocks the action
// entirely and never reaches the service.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// UploadState is the tagged state of the upload flow. Exactly one state holds
// at a time; combinations like "uploading and succeeded" are unrepresentable.
type UploadState int

const (
	UploadIdle UploadState = iota
	UploadFileSelected
	UploadInProgress
	UploadSucceeded
)

func (s UploadState) String() string {
	switch s {
	case UploadIdle:
		return "idle"
	case UploadFileSelected:
		return "file_selected"
	case UploadInProgress:
		return "uploading"
	case UploadSucceeded:
		return "succeeded"
	default:
		return "unknown"
	}
}

// UploadFlow drives one resume from selection through extraction:
// idle -> file_selected -> uploading -> succeeded. A failed upload returns to
// file_selected with the file retained, so the user can retry without
// re-picking it. Reset returns to idle from any state.
type UploadFlow struct {
	intake    ResumeIntake
	logger    *zap.Logger
	maxSizeMB int

	state   UploadState
	file    validation.FileInfo
	result  *hiremind.UploadResult
	lastErr string
}

// NewUploadFlow creates an upload flow. A non-positive maxSizeMB selects the
// default limit.
func NewUploadFlow(intake ResumeIntake, logger *zap.Logger, maxSizeMB int) *UploadFlow {
	if maxSizeMB <= 0 {
		maxSizeMB = validation.DefaultMaxFileSizeMB
	}

	return &UploadFlow{
		intake:    intake,
		logger:    logger,
		maxSizeMB: maxSizeMB,
		state:     UploadIdle,
	}
}

func (f *UploadFlow) State() UploadState { return f.state }

// SelectedFile returns the current selection. Only meaningful outside idle.
func (f *UploadFlow) SelectedFile() validation.FileInfo { return f.file }

// Result returns the extraction outcome once the flow succeeded.
func (f *UploadFlow) Result() *hiremind.UploadResult { return f.result }

// LastError returns the message of the most recent failure, validation or
// service alike. Empty when the last action succeeded.
func (f *UploadFlow) LastError() string { return f.lastErr }

// SelectFile validates the pick and moves the flow to file_selected. The type
// check runs first, then the size check; the two messages are mutually
// exclusive. An invalid file leaves the flow in idle with the specific
// message.
func (f *UploadFlow) SelectFile(file validation.FileInfo) error {
	if f.state == UploadInProgress {
		return fmt.Errorf("an upload is in progress")
	}

	if !validation.IsValidResumeFile(file) {
		f.state = UploadIdle
		f.lastErr = "Please upload a PDF or DOCX file"
		return &ValidationError{Message: f.lastErr}
	}

	if !validation.IsValidFileSize(file, f.maxSizeMB) {
		f.state = UploadIdle
		f.lastErr = fmt.Sprintf("File size must be less than %dMB", f.maxSizeMB)
		return &ValidationError{Message: f.lastErr}
	}

	f.state = UploadFileSelected
	f.file = file
	f.result = nil
	f.lastErr = ""

	f.logger.Debug("file selected",
		zap.String("name", file.Name),
		zap.Int64("size", file.Size),
	)

	return nil
}

// Upload fires the extraction call. It only runs from file_selected: the
// transition is triggered by explicit confirmation, never automatically on
// selection. On failure the flow returns to file_selected with the original
// file still selected and the normalized message recorded verbatim.
func (f *UploadFlow) Upload(ctx context.Context, r io.Reader) (*hiremind.UploadResult, error) {
	switch f.state {
	case UploadInProgress:
		return nil, fmt.Errorf("an upload is in progress")
	case UploadSucceeded:
		return nil, fmt.Errorf("this file was already uploaded; reset the flow first")
	case UploadIdle:
		return nil, fmt.Errorf("no file selected")
	}

	f.state = UploadInProgress
	f.lastErr = ""

	result, err := f.intake.UploadResume(ctx, f.file.Name, r)
	if err != nil {
		f.state = UploadFileSelected
		f.lastErr = err.Error()
		return nil, err
	}

	f.state = UploadSucceeded
	f.result = result

	f.logger.Info("resume extracted",
		zap.String("candidate_id", result.CandidateID),
	)

	return result, nil
}

// Reset unconditionally returns to idle, discarding the selection and any
// extracted result.
func (f *UploadFlow) Reset() {
	f.state = UploadIdle
	f.file = validation.FileInfo{}
	f.result = nil
	f.lastErr = ""
}
