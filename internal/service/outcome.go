package service

import (
	"errors"

	"docqa/internal/extractor"
	"docqa/internal/gemini"
	"docqa/internal/validation"
)

// Outcome codes recorded in metrics and the activity ledger, and used by the
// HTTP layer as the machine-readable error code.
const (
	OutcomeOK                = "OK"
	OutcomeUnsupportedType   = "UNSUPPORTED_TYPE"
	OutcomeParseFailure      = "PARSE_FAILURE"
	OutcomeNoTextContent     = "NO_TEXT_CONTENT"
	OutcomeMissingCredential = "MISSING_CREDENTIAL"
	OutcomeTimeout           = "TIMEOUT"
	OutcomeProviderError     = "PROVIDER_ERROR"
	OutcomeMalformedResponse = "MALFORMED_RESPONSE"
	OutcomeInvalidRequest    = "INVALID_REQUEST"
	OutcomeForbidden         = "FORBIDDEN"
	OutcomeModelUnavailable  = "MODEL_UNAVAILABLE"
	OutcomeRateLimited       = "RATE_LIMITED"
	OutcomeUpstreamError     = "UPSTREAM_ERROR"
	OutcomeTransportError    = "TRANSPORT_ERROR"
	OutcomeInternal          = "INTERNAL_ERROR"
)

// Outcome classifies err into one of the outcome codes. Validation errors
// keep their own code.
func Outcome(err error) string {
	if err == nil {
		return OutcomeOK
	}

	var (
		ve *validation.Error
		pe *extractor.ParseError
		pr *gemini.ProviderError
		ue *gemini.UpstreamError
		te *gemini.TransportError
	)
	switch {
	case errors.As(err, &ve):
		return ve.Code
	case errors.Is(err, extractor.ErrUnsupportedType):
		return OutcomeUnsupportedType
	case errors.As(err, &pe):
		return OutcomeParseFailure
	case errors.Is(err, extractor.ErrNoTextContent):
		return OutcomeNoTextContent
	case errors.Is(err, gemini.ErrMissingCredential):
		return OutcomeMissingCredential
	case errors.Is(err, gemini.ErrTimeout):
		return OutcomeTimeout
	case errors.As(err, &pr):
		return OutcomeProviderError
	case errors.Is(err, gemini.ErrMalformedResponse):
		return OutcomeMalformedResponse
	case errors.Is(err, gemini.ErrInvalidRequest):
		return OutcomeInvalidRequest
	case errors.Is(err, gemini.ErrForbidden):
		return OutcomeForbidden
	case errors.Is(err, gemini.ErrModelUnavailable):
		return OutcomeModelUnavailable
	case errors.Is(err, gemini.ErrRateLimited):
		return OutcomeRateLimited
	case errors.As(err, &ue):
		return OutcomeUpstreamError
	case errors.As(err, &te):
		return OutcomeTransportError
	default:
		return OutcomeInternal
	}
}
