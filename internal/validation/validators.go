// Package validation holds the pure, synchronous predicates applied to user
// input before anything touches the network. None of them have side effects
// and none of them ever panic.
package validation

import (
	"regexp"
	"strings"

	"github.com/hiremind/hiremind-cli/internal/hiremind"
)

const (
	// DefaultMaxFileSizeMB is the default resume size ceiling.
	DefaultMaxFileSizeMB = 5

	// minDescriptionLength is the shortest usable job description, after
	// trimming.
	minDescriptionLength = 50

	mimePDF  = "application/pdf"
	mimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

var (
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRegex = regexp.MustCompile(`^[\d\s\-\+\(\)]+$`)
	digitRegex = regexp.MustCompile(`\D`)
)

// FileInfo describes a file picked for upload: the name as selected by the
// user, the MIME type declared by the OS or browser, and the size in bytes.
type FileInfo struct {
	Name     string
	MIMEType string
	Size     int64
}

// IsValidResumeFile reports whether the file looks like a PDF or DOCX resume.
// Either the declared MIME type or the file extension is accepted: declared
// types are unreliable across platforms, so the extension is an intentional
// fallback, not a secondary check.
func IsValidResumeFile(file FileInfo) bool {
	switch file.MIMEType {
	case mimePDF, mimeDOCX:
		return true
	}

	name := strings.ToLower(file.Name)
	return strings.HasSuffix(name, ".pdf") || strings.HasSuffix(name, ".docx")
}

// IsValidFileSize reports whether the file fits under the limit. A file of
// exactly maxSizeMB megabytes is valid.
func IsValidFileSize(file FileInfo, maxSizeMB int) bool {
	return file.Size <= int64(maxSizeMB)*1024*1024
}

// IsValidEmail is a structural check, not a deliverability check.
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// IsValidPhone accepts digits, spaces and common punctuation, and requires at
// least 10 digits once everything else is stripped.
func IsValidPhone(phone string) bool {
	if !phoneRegex.MatchString(phone) {
		return false
	}

	return len(digitRegex.ReplaceAllString(phone, "")) >= 10
}

// Result is the outcome of validating a job description. An empty Errors
// list implies Valid.
type Result struct {
	Valid  bool
	Errors []string
}

// ValidateJobDescription accumulates every violation instead of stopping at
// the first one, so the caller can surface the whole list at once.
func ValidateJobDescription(jd *hiremind.JobDescription) Result {
	var errs []string

	if jd == nil {
		jd = &hiremind.JobDescription{}
	}

	if strings.TrimSpace(jd.Title) == "" {
		errs = append(errs, "Job title is required")
	}

	if len(strings.TrimSpace(jd.Description)) < minDescriptionLength {
		errs = append(errs, "Job description must be at least 50 characters")
	}

	if len(jd.Skills) == 0 {
		errs = append(errs, "At least one skill is required")
	}

	return Result{
		Valid:  len(errs) == 0,
		Errors: errs,
	}
}
