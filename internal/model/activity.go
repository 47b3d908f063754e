package model

import "time"

// ActivityKind distinguishes the two request types recorded in the ledger.
type ActivityKind string

const (
	ActivityUpload ActivityKind = "upload"
	ActivityAsk    ActivityKind = "ask"
)

// Activity is one ledger entry. It holds request metadata only: never the
// document text, the question or the answer.
type Activity struct {
	ID             string       `json:"id"`
	Kind           ActivityKind `json:"kind"`
	MediaType      string       `json:"media_type,omitempty"`
	SizeBytes      int64        `json:"size_bytes"`
	ContentLength  int          `json:"content_length"`
	QuestionLength int          `json:"question_length"`
	AnswerLength   int          `json:"answer_length"`
	Outcome        string       `json:"outcome"`
	DurationMS     int64        `json:"duration_ms"`
	CreatedAt      time.Time    `json:"created_at"`
}

// ActivitySummary aggregates ledger entries per kind.
type ActivitySummary struct {
	Uploads       int `json:"uploads"`
	UploadsFailed int `json:"uploads_failed"`
	Asks          int `json:"asks"`
	AsksFailed    int `json:"asks_failed"`
}
