// Package gemini is the answer client for the Google Gemini generateContent API.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"

	"docqa/internal/config"
)

const (
	generateContentPath = "%s/models/%s:generateContent"
	defaultTimeout      = 30 * time.Second
	maxResponseSize     = 4 * 1024 * 1024

	temperature     = 0.7
	topK            = 40
	topP            = 0.95
	maxOutputTokens = 2048
	blockThreshold  = "BLOCK_MEDIUM_AND_ABOVE"
)

var safetyCategories = []string{
	"HARM_CATEGORY_HARASSMENT",
	"HARM_CATEGORY_HATE_SPEECH",
	"HARM_CATEGORY_SEXUALLY_EXPLICIT",
	"HARM_CATEGORY_DANGEROUS_CONTENT",
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
	SafetySettings   []safetySetting  `json:"safetySettings"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopK            int     `json:"topK"`
	TopP            float64 `json:"topP"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type safetySetting struct {
	Category  string `json:"category"`
	Threshold string `json:"threshold"`
}

type generateResponse struct {
	Candidates []struct {
		Content *struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// Client sends prompts to Gemini. It is safe for concurrent use.
type Client struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
	log        *zap.Logger
}

// NewClient builds a client from cfg. A missing API key is not an error here;
// Ask reports ErrMissingCredential so that startup does not depend on it.
func NewClient(cfg config.GeminiConfig, log *zap.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = config.DefaultGeminiBaseURL
	}
	model := cfg.Model
	if model == "" {
		model = config.DefaultGeminiModel
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		apiKey:  cfg.APIKey,
		baseURL: baseURL,
		model:   model,
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		log: log.Named("gemini"),
	}
}

// Ask sends prompt as the sole content part and returns the first candidate's
// text. No retries are attempted; callers own the retry policy.
func (c *Client) Ask(ctx context.Context, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", ErrMissingCredential
	}

	body, err := json.Marshal(newGenerateRequest(prompt))
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf(generateContentPath, c.baseURL, c.model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", c.apiKey)

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if isTimeout(err) {
			c.log.Warn("gemini request timed out", zap.Duration("elapsed", time.Since(start)))
			return "", ErrTimeout
		}
		c.log.Error("gemini request failed", zap.Error(err))
		return "", &TransportError{Cause: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		if isTimeout(err) {
			return "", ErrTimeout
		}
		return "", &TransportError{Cause: fmt.Errorf("read response: %w", err)}
	}

	c.log.Debug("gemini response received",
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)),
	)

	if resp.StatusCode != http.StatusOK {
		c.log.Warn("gemini returned non-200 status",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", truncate(respBody, 512)),
		)
		return "", statusError(resp.StatusCode)
	}
	text, err := parseAnswer(respBody)
	if errors.Is(err, ErrMalformedResponse) {
		c.log.Warn("gemini response could not be used", zap.Error(err), zap.Int("body_bytes", len(respBody)))
	}
	return text, err
}

func newGenerateRequest(prompt string) generateRequest {
	safety := make([]safetySetting, 0, len(safetyCategories))
	for _, cat := range safetyCategories {
		safety = append(safety, safetySetting{Category: cat, Threshold: blockThreshold})
	}
	return generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: generationConfig{
			Temperature:     temperature,
			TopK:            topK,
			TopP:            topP,
			MaxOutputTokens: maxOutputTokens,
		},
		SafetySettings: safety,
	}
}

// statusError maps a non-200 HTTP status to the client's error taxonomy.
func statusError(status int) error {
	switch status {
	case http.StatusBadRequest:
		return ErrInvalidRequest
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrModelUnavailable
	case http.StatusTooManyRequests:
		return ErrRateLimited
	default:
		return &UpstreamError{StatusCode: status}
	}
}

// parseAnswer validates a 200 body once, yielding the answer text, a
// ProviderError or ErrMalformedResponse.
func parseAnswer(body []byte) (string, error) {
	var r generateResponse
	if err := json.Unmarshal(body, &r); err != nil {
		return "", &malformedError{cause: err}
	}

	if len(r.Candidates) > 0 && r.Candidates[0].Content != nil && len(r.Candidates[0].Content.Parts) > 0 {
		if text := r.Candidates[0].Content.Parts[0].Text; text != "" {
			return text, nil
		}
	}
	if r.Error != nil {
		return "", &ProviderError{Code: r.Error.Code, Status: r.Error.Status, Message: r.Error.Message}
	}
	return "", ErrMalformedResponse
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}

func truncate(b []byte, n int) []byte {
	if len(b) <= n {
		return b
	}
	return b[:n]
}
