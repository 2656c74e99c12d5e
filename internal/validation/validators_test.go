package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hiremind/hiremind-cli/internal/hiremind"
)

const docxMIME = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

func TestIsValidResumeFile(t *testing.T) {
	cases := []struct {
		name string
		file FileInfo
		want bool
	}{
		{"pdf mime", FileInfo{Name: "resume", MIMEType: "application/pdf"}, true},
		{"docx mime", FileInfo{Name: "resume", MIMEType: docxMIME}, true},
		{"pdf extension without mime", FileInfo{Name: "resume.pdf", MIMEType: "application/octet-stream"}, true},
		{"uppercase extension", FileInfo{Name: "RESUME.PDF", MIMEType: ""}, true},
		{"docx extension without mime", FileInfo{Name: "resume.docx", MIMEType: ""}, true},
		{"plain text", FileInfo{Name: "resume.txt", MIMEType: "text/plain"}, false},
		{"doc is not docx", FileInfo{Name: "resume.doc", MIMEType: "application/msword"}, false},
		{"no name no mime", FileInfo{}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsValidResumeFile(tc.file))
		})
	}
}

func TestIsValidFileSizeBoundary(t *testing.T) {
	limit := int64(5 * 1024 * 1024)

	assert.True(t, IsValidFileSize(FileInfo{Size: limit}, DefaultMaxFileSizeMB), "exactly at the limit is valid")
	assert.False(t, IsValidFileSize(FileInfo{Size: limit + 1}, DefaultMaxFileSizeMB), "one byte over is invalid")
	assert.True(t, IsValidFileSize(FileInfo{Size: 0}, DefaultMaxFileSizeMB))
	assert.True(t, IsValidFileSize(FileInfo{Size: 2 * 1024 * 1024}, 2))
	assert.False(t, IsValidFileSize(FileInfo{Size: 2*1024*1024 + 1}, 2))
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("ada@example.com"))
	assert.True(t, IsValidEmail("a.b+c@sub.example.org"))
	assert.False(t, IsValidEmail("ada@example"))
	assert.False(t, IsValidEmail("ada example@example.com"))
	assert.False(t, IsValidEmail(""))
}

func TestIsValidPhone(t *testing.T) {
	assert.True(t, IsValidPhone("+1 (555) 123-4567"))
	assert.True(t, IsValidPhone("5551234567"))
	assert.False(t, IsValidPhone("555-1234"), "needs at least 10 digits")
	assert.False(t, IsValidPhone("call me maybe"))
	assert.False(t, IsValidPhone(""))
}

func TestValidateJobDescriptionAccumulatesAllErrors(t *testing.T) {
	res := ValidateJobDescription(&hiremind.JobDescription{})

	require.False(t, res.Valid)
	require.Len(t, res.Errors, 3)
	assert.Contains(t, res.Errors, "Job title is required")
	assert.Contains(t, res.Errors, "Job description must be at least 50 characters")
	assert.Contains(t, res.Errors, "At least one skill is required")
}

func TestValidateJobDescriptionValid(t *testing.T) {
	res := ValidateJobDescription(&hiremind.JobDescription{
		Title:       "Engineer",
		Description: strings.Repeat("x", 50),
		Skills:      []string{"Go"},
	})

	assert.True(t, res.Valid)
	assert.Empty(t, res.Errors)
}

func TestValidateJobDescriptionTrimsBeforeMeasuring(t *testing.T) {
	res := ValidateJobDescription(&hiremind.JobDescription{
		Title:       "Engineer",
		Description: strings.Repeat("x", 49) + strings.Repeat(" ", 10),
		Skills:      []string{"Go"},
	})

	require.False(t, res.Valid)
	assert.Equal(t, []string{"Job description must be at least 50 characters"}, res.Errors)
}

func TestValidateJobDescriptionNilInput(t *testing.T) {
	res := ValidateJobDescription(nil)

	assert.False(t, res.Valid)
	assert.Len(t, res.Errors, 3)
}
