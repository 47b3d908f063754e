// Package prompt composes the text sent to the question-answering provider.
package prompt

import "strings"

const (
	// MaxContentChars is the hard character ceiling for embedded document text.
	MaxContentChars = 30000
	// TruncationMarker is appended when content exceeds MaxContentChars.
	TruncationMarker = "... [content truncated]"

	header = "Based on the following document content, please answer the question accurately and concisely."
	footer = "Please provide a clear and helpful answer based on the information in the document. If the answer cannot be found in the document, please state that clearly."
)

// Truncate cuts content to MaxContentChars characters and appends the
// truncation marker when anything was dropped. Characters are Unicode code
// points, so multi-byte text is never split mid-rune.
func Truncate(content string) string {
	count := 0
	for i := range content {
		if count == MaxContentChars {
			return content[:i] + TruncationMarker
		}
		count++
	}
	return content
}

// Build returns the prompt for question about content. It is pure: identical
// inputs always give byte-identical output.
func Build(content, question string) string {
	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n\nDocument Content:\n")
	b.WriteString(Truncate(content))
	b.WriteString("\n\nQuestion: ")
	b.WriteString(question)
	b.WriteString("\n\n")
	b.WriteString(footer)
	return b.String()
}
