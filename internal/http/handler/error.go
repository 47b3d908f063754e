package handler

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"docqa/internal/config"
	"docqa/internal/extractor"
	"docqa/internal/gemini"
	"docqa/internal/http/middleware"
	"docqa/internal/model"
	"docqa/internal/service"
	"docqa/internal/validation"
)

const unexpectedMessage = "An unexpected error occurred"

// Env carries the settings shared by all handlers.
type Env struct {
	Name           string
	StartedAt      time.Time
	MaxUploadBytes int64
	Log            *zap.Logger
}

// exposeDetails reports whether internal error text may reach clients.
func (e Env) exposeDetails() bool {
	return e.Name == config.EnvDevelopment
}

func (e Env) logger() *zap.Logger {
	if e.Log == nil {
		return zap.NewNop()
	}
	return e.Log
}

// writeError writes the standard envelope. cause is included as details in
// development only.
func (e Env) writeError(c *fiber.Ctx, status int, code, title, message string, cause error) error {
	res := ErrorResponse{
		RequestID: middleware.GetRequestID(c),
		Error:     title,
		Code:      code,
		Message:   message,
	}
	if cause != nil && e.exposeDetails() {
		res.Details = cause.Error()
	}
	return c.Status(status).JSON(res)
}

// writeValidation renders a *validation.Error as a 400.
func (e Env) writeValidation(c *fiber.Ctx, ve *validation.Error) error {
	return e.writeError(c, fiber.StatusBadRequest, ve.Code, ve.Title, ve.Message, nil)
}

// writeServiceError maps a failure from the service to a status and envelope.
// title is the operation-level label, e.g. "Failed to process file".
func (e Env) writeServiceError(c *fiber.Ctx, title string, err error) error {
	var ve *validation.Error
	if errors.As(err, &ve) {
		return e.writeValidation(c, ve)
	}

	code := service.Outcome(err)
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, gemini.ErrRateLimited):
		status = fiber.StatusTooManyRequests
	case errors.Is(err, gemini.ErrForbidden), errors.Is(err, gemini.ErrMissingCredential):
		status = fiber.StatusForbidden
	}

	message := clientMessage(code, err)

	e.logger().Warn("request failed",
		zap.String("request_id", middleware.GetRequestID(c)),
		zap.String("code", code),
		zap.Int("status", status),
		zap.Error(err),
	)
	return e.writeError(c, status, code, title, message, err)
}

// clientMessages holds the user-facing text per outcome code.
var clientMessages = map[string]string{
	service.OutcomeUnsupportedType:   "Unsupported file type",
	service.OutcomeNoTextContent:     "No text content found in document",
	service.OutcomeMissingCredential: "Gemini API key is not configured",
	service.OutcomeTimeout:           "Request to Gemini API timed out. Please try again.",
	service.OutcomeMalformedResponse: "Invalid response structure from Gemini API",
	service.OutcomeInvalidRequest:    "Invalid API request. Please check your API key.",
	service.OutcomeForbidden:         "API key is invalid or doesn't have proper permissions.",
	service.OutcomeModelUnavailable:  "Model not found. Please contact support.",
	service.OutcomeRateLimited:       "API rate limit exceeded. Please try again later.",
	service.OutcomeTransportError:    "Failed to get response from AI. Please try again.",
}

// clientMessage picks the message sent for a failed operation. Provider and
// upstream errors carry their own safe text; anything unclassified is masked.
func clientMessage(code string, err error) string {
	if msg, ok := clientMessages[code]; ok {
		return msg
	}

	var pe *extractor.ParseError
	switch {
	case errors.As(err, &pe):
		if pe.Format == model.MediaTypePDF {
			return "Failed to parse PDF file. Please ensure it contains readable text."
		}
		return "Failed to parse Excel file. Please ensure it's a valid file."
	case code == service.OutcomeProviderError, code == service.OutcomeUpstreamError:
		return err.Error()
	default:
		return unexpectedMessage
	}
}

// ErrorHandler returns a Fiber global error handler that standardizes error responses.
func ErrorHandler(env Env) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
		}

		switch status {
		case fiber.StatusRequestEntityTooLarge:
			ve := validation.TooLarge(env.MaxUploadBytes)
			return env.writeValidation(c, ve)
		case fiber.StatusBadRequest:
			return env.writeError(c, status, "BAD_REQUEST", "Bad request", "The request could not be understood", err)
		case fiber.StatusNotFound:
			if strings.HasPrefix(c.Path(), "/api/") {
				return env.writeError(c, status, "NOT_FOUND", "Not found", "The requested API endpoint does not exist", nil)
			}
			return env.writeError(c, status, "NOT_FOUND", "Not found", "resource not found", nil)
		case fiber.StatusMethodNotAllowed:
			return env.writeError(c, status, "METHOD_NOT_ALLOWED", "Method not allowed", "method not allowed", nil)
		default:
			if status < fiber.StatusInternalServerError {
				return env.writeError(c, status, "REQUEST_ERROR", "Request error", fe.Message, nil)
			}
			env.logger().Error("unhandled error",
				zap.String("request_id", middleware.GetRequestID(c)),
				zap.Error(err),
			)
			return env.writeError(c, status, "INTERNAL_ERROR", "Internal server error", unexpectedMessage, err)
		}
	}
}
