// Package extractor converts uploaded document buffers into plain text.
package extractor

import (
	"errors"
	"fmt"
	"strings"

	"docqa/internal/model"
)

var (
	// ErrUnsupportedType is returned before any parsing when the declared
	// media type is not a PDF or spreadsheet.
	ErrUnsupportedType = errors.New("unsupported file type")
	// ErrNoTextContent is returned when a document parses but carries no
	// extractable text, e.g. a scanned PDF without a text layer.
	ErrNoTextContent = errors.New("no text content found in document")
)

// ParseError reports a low-level decoding failure. Error() is safe to show to
// clients; the library error is only reachable through Unwrap for logging.
type ParseError struct {
	Format model.MediaType
	Cause  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s file", e.Format.Label())
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Extractor turns a document buffer into plain text.
type Extractor interface {
	Extract(data []byte, mt model.MediaType) (string, error)
}

// Default dispatches on media type to the PDF and spreadsheet readers.
// It is stateless and safe for concurrent use.
type Default struct{}

// New returns the default extractor.
func New() *Default {
	return &Default{}
}

var _ Extractor = (*Default)(nil)

// Extract returns the trimmed text of data. The declared media type alone
// selects the parser; the buffer is never sniffed.
func (d *Default) Extract(data []byte, mt model.MediaType) (string, error) {
	var (
		text string
		err  error
	)
	switch mt {
	case model.MediaTypePDF:
		text, err = guard(mt, func() (string, error) { return extractPDF(data) })
	case model.MediaTypeXLSX:
		text, err = guard(mt, func() (string, error) { return extractXLSX(data) })
	case model.MediaTypeXLS:
		text, err = guard(mt, func() (string, error) { return extractXLS(data) })
	default:
		return "", ErrUnsupportedType
	}
	if err != nil {
		return "", err
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrNoTextContent
	}
	return text, nil
}

// guard converts parser panics on corrupt input into a ParseError and wraps
// plain parser errors the same way.
func guard(mt model.MediaType, fn func() (string, error)) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = &ParseError{Format: mt, Cause: fmt.Errorf("panic: %v", r)}
		}
	}()

	text, err = fn()
	if err != nil {
		var pe *ParseError
		if errors.Is(err, ErrNoTextContent) || errors.As(err, &pe) {
			return "", err
		}
		return "", &ParseError{Format: mt, Cause: err}
	}
	return text, nil
}
