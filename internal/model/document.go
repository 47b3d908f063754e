package model

import "time"

// UploadedDocument is the transient value handed to the extractor for one call.
// It is never persisted.
type UploadedDocument struct {
	Data         []byte
	MediaType    MediaType
	OriginalName string
	Size         int64
}

// ExtractedContent is the plain text produced from an upload. The caller owns
// it and sends it back on later questions; there is no server-side session.
type ExtractedContent struct {
	Text       string    `json:"content"`
	SourceName string    `json:"original_name"`
	MediaType  MediaType `json:"mime_type"`
	Size       int64     `json:"size"`
}

// QARequest is a single question about previously extracted content.
type QARequest struct {
	Content  string `json:"content"`
	Question string `json:"question"`
}

// QAResponse carries the provider's answer plus request metadata.
type QAResponse struct {
	Answer         string    `json:"answer"`
	QuestionLength int       `json:"question_length"`
	ResponseLength int       `json:"response_length"`
	Timestamp      time.Time `json:"timestamp"`
}
