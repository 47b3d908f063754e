// Package validation holds the boundary checks applied before any core work.
package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"docqa/internal/model"
)

const (
	// MaxQuestionChars is the question length ceiling in characters.
	MaxQuestionChars = 500
	// MaxUploadBytes is the default document size ceiling (10 MiB).
	MaxUploadBytes = 10 * 1024 * 1024
)

// Error codes shared with the HTTP layer.
const (
	CodeFileRequired    = "FILE_REQUIRED"
	CodeFileTooLarge    = "FILE_TOO_LARGE"
	CodeUnsupportedType = "UNSUPPORTED_FILE_TYPE"
	CodeMissingContent  = "MISSING_CONTENT"
	CodeMissingQuestion = "MISSING_QUESTION"
	CodeQuestionTooLong = "QUESTION_TOO_LONG"
	CodeInvalidJSONBody = "INVALID_BODY"
)

// Error is a client input problem. Title is the short error label and Message
// the human-readable hint shown to users.
type Error struct {
	Code    string
	Title   string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Title, e.Message)
}

// ValidateUpload checks the declared media type and size of an upload.
// maxBytes <= 0 falls back to MaxUploadBytes.
func ValidateUpload(contentType string, size, maxBytes int64) (model.MediaType, error) {
	if maxBytes <= 0 {
		maxBytes = MaxUploadBytes
	}
	mt := model.ParseMediaType(contentType)
	if mt == model.MediaTypeUnknown {
		return mt, &Error{
			Code:    CodeUnsupportedType,
			Title:   "Invalid file type",
			Message: "Invalid file type. Only PDF and Excel files are allowed.",
		}
	}
	if size > maxBytes {
		return mt, TooLarge(maxBytes)
	}
	return mt, nil
}

// TooLarge is the error for uploads above maxBytes.
func TooLarge(maxBytes int64) *Error {
	return &Error{
		Code:    CodeFileTooLarge,
		Title:   "File too large",
		Message: fmt.Sprintf("File size must be less than %dMB", maxBytes/(1024*1024)),
	}
}

// ValidateQuestion checks an ask request before any prompt is built.
func ValidateQuestion(req model.QARequest) error {
	if strings.TrimSpace(req.Content) == "" {
		return &Error{Code: CodeMissingContent, Title: "Missing content", Message: "Please upload a document first"}
	}
	if strings.TrimSpace(req.Question) == "" {
		return &Error{Code: CodeMissingQuestion, Title: "Missing question", Message: "Please provide a question"}
	}
	if utf8.RuneCountInString(req.Question) > MaxQuestionChars {
		return &Error{
			Code:    CodeQuestionTooLong,
			Title:   "Question too long",
			Message: fmt.Sprintf("Please keep your question under %d characters", MaxQuestionChars),
		}
	}
	return nil
}
