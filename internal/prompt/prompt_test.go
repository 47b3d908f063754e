package prompt

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// documentSection returns the text between the content label and the question.
func documentSection(t *testing.T, p string) string {
	t.Helper()
	start := strings.Index(p, "Document Content:\n")
	end := strings.LastIndex(p, "\n\nQuestion: ")
	require.True(t, start >= 0 && end > start)
	return p[start+len("Document Content:\n") : end]
}

func TestBuild_Template(t *testing.T) {
	got := Build("Sheet: Sheet1\nName,Age", "Who is listed?")

	want := "Based on the following document content, please answer the question accurately and concisely.\n\n" +
		"Document Content:\nSheet: Sheet1\nName,Age\n\n" +
		"Question: Who is listed?\n\n" +
		"Please provide a clear and helpful answer based on the information in the document. " +
		"If the answer cannot be found in the document, please state that clearly."
	assert.Equal(t, want, got)
}

func TestBuild_Truncation(t *testing.T) {
	tests := []struct {
		name      string
		length    int
		truncated bool
	}{
		{name: "short", length: 10},
		{name: "exactly at limit", length: MaxContentChars},
		{name: "one over", length: MaxContentChars + 1, truncated: true},
		{name: "far over", length: 3 * MaxContentChars, truncated: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := strings.Repeat("x", tt.length)
			section := documentSection(t, Build(content, "q"))

			if tt.truncated {
				assert.True(t, strings.HasSuffix(section, TruncationMarker))
				assert.Equal(t, MaxContentChars+len(TruncationMarker), len(section))
				assert.Equal(t, content[:MaxContentChars], strings.TrimSuffix(section, TruncationMarker))
			} else {
				assert.Equal(t, content, section)
				assert.NotContains(t, section, TruncationMarker)
			}
		})
	}
}

func TestTruncate_CountsRunes(t *testing.T) {
	content := strings.Repeat("é", MaxContentChars+5)

	got := Truncate(content)

	require.True(t, strings.HasSuffix(got, TruncationMarker))
	body := strings.TrimSuffix(got, TruncationMarker)
	assert.True(t, utf8.ValidString(body))
	assert.Equal(t, MaxContentChars, utf8.RuneCountInString(body))
}

func TestBuild_Idempotent(t *testing.T) {
	content := strings.Repeat("abc ", 9000)
	q := "What repeats?"

	assert.Equal(t, Build(content, q), Build(content, q))
}

func TestBuild_QuestionVerbatim(t *testing.T) {
	q := "  What about \"quotes\" and\nnewlines?  "

	assert.Contains(t, Build("doc", q), "Question: "+q+"\n\n")
}
