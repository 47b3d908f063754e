package handler

import (
	"time"

	"docqa/internal/model"
	"docqa/internal/service"
)

// isoMillis matches the timestamp layout browsers produce with toISOString.
const isoMillis = "2006-01-02T15:04:05.000Z07:00"

func timestamp(t time.Time) string {
	return t.UTC().Format(isoMillis)
}

// ErrorResponse is the envelope returned for every failure.
type ErrorResponse struct {
	RequestID string `json:"request_id"`
	Error     string `json:"error"`
	Code      string `json:"code"`
	Message   string `json:"message"`
	Details   string `json:"details,omitempty"`
}

type UploadMetadata struct {
	OriginalName  string `json:"originalName"`
	MimeType      string `json:"mimeType"`
	Size          int64  `json:"size"`
	ContentLength int    `json:"contentLength"`
}

type UploadResponse struct {
	Success  bool           `json:"success"`
	Content  string         `json:"content"`
	Metadata UploadMetadata `json:"metadata"`
}

type AskMetadata struct {
	QuestionLength int    `json:"questionLength"`
	ResponseLength int    `json:"responseLength"`
	Timestamp      string `json:"timestamp"`
}

type AskResponse struct {
	Success  bool        `json:"success"`
	Answer   string      `json:"answer"`
	Metadata AskMetadata `json:"metadata"`
}

type HealthResponse struct {
	Status      string  `json:"status"`
	Timestamp   string  `json:"timestamp"`
	Uptime      float64 `json:"uptime"`
	Environment string  `json:"environment"`
}

type MemoryStats struct {
	Alloc      uint64 `json:"alloc"`
	TotalAlloc uint64 `json:"totalAlloc"`
	Sys        uint64 `json:"sys"`
	HeapInuse  uint64 `json:"heapInuse"`
	NumGC      uint32 `json:"numGC"`
}

type StatsResponse struct {
	Uptime     float64                `json:"uptime"`
	Memory     MemoryStats            `json:"memory"`
	Goroutines int                    `json:"goroutines"`
	NumCPU     int                    `json:"numCPU"`
	Platform   string                 `json:"platform"`
	GoVersion  string                 `json:"goVersion"`
	Timestamp  string                 `json:"timestamp"`
	Activity   *model.ActivitySummary `json:"activity,omitempty"`
}

// ActivityListResponse mirrors service.ActivityListResult for the API docs.
type ActivityListResponse = service.ActivityListResult
