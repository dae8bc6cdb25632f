// Package gemini wraps the Google Gemini API behind a small gateway:
// prompt building, text and image generation, and a fixed error taxonomy.
// Provider errors are classified here, at the single boundary point, so the
// rest of the bot never inspects message text.
package gemini

import (
	"errors"
	"fmt"
	"strings"
)

// FailureKind is the fixed taxonomy for provider failures
type FailureKind int

const (
	KindUnknown FailureKind = iota
	KindInvalidAPIKey
	KindForbidden
	KindQuotaExceeded
	KindContentBlocked
	KindNetworkError
	KindModelUnavailable
	KindEmptyResponse
)

// String returns the string representation of the failure kind
func (k FailureKind) String() string {
	switch k {
	case KindInvalidAPIKey:
		return "invalid_api_key"
	case KindForbidden:
		return "forbidden"
	case KindQuotaExceeded:
		return "quota_exceeded"
	case KindContentBlocked:
		return "content_blocked"
	case KindNetworkError:
		return "network_error"
	case KindModelUnavailable:
		return "model_unavailable"
	case KindEmptyResponse:
		return "empty_response"
	default:
		return "unknown"
	}
}

// UserMessage returns the user-facing description for the failure kind
func (k FailureKind) UserMessage() string {
	switch k {
	case KindInvalidAPIKey:
		return "Gemini AI API key is not configured properly."
	case KindForbidden:
		return "API access forbidden - check your API key permissions."
	case KindQuotaExceeded:
		return "API quota exceeded. Please try again later."
	case KindContentBlocked:
		return "Your request was blocked by content safety filters. Please try a different prompt."
	case KindNetworkError:
		return "Network error occurred. Please try again later."
	case KindModelUnavailable:
		return "The model is currently unavailable. Please try again later."
	case KindEmptyResponse:
		return "Gemini AI returned an empty response. Please try again."
	default:
		return "An unexpected error occurred while processing your request."
	}
}

// Error is a classified gateway failure
type Error struct {
	Kind FailureKind
	Err  error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("gemini: %s", e.Kind)
	}
	return fmt.Sprintf("gemini: %s: %v", e.Kind, e.Err)
}

// Unwrap returns the underlying provider error
func (e *Error) Unwrap() error {
	return e.Err
}

// newError builds a classified error with no provider cause
func newError(kind FailureKind, msg string) *Error {
	return &Error{Kind: kind, Err: errors.New(msg)}
}

// KindOf extracts the failure kind from an error, KindUnknown otherwise
func KindOf(err error) FailureKind {
	var ge *Error
	if errors.As(err, &ge) {
		return ge.Kind
	}
	return KindUnknown
}

// classify maps a raw provider error onto the taxonomy. The SDK surfaces
// most failures as free text, so this matches substrings the way the
// provider phrases them; unmatched errors stay KindUnknown.
func classify(err error) *Error {
	msg := strings.ToLower(err.Error())

	switch {
	case strings.Contains(msg, "api_key") || strings.Contains(msg, "api key") || strings.Contains(msg, "401") || strings.Contains(msg, "unauthenticated"):
		return &Error{Kind: KindInvalidAPIKey, Err: err}
	case strings.Contains(msg, "403") || strings.Contains(msg, "permission_denied") || strings.Contains(msg, "forbidden"):
		return &Error{Kind: KindForbidden, Err: err}
	case strings.Contains(msg, "429") || strings.Contains(msg, "quota") || strings.Contains(msg, "resource_exhausted"):
		return &Error{Kind: KindQuotaExceeded, Err: err}
	case strings.Contains(msg, "safety") || strings.Contains(msg, "blocked"):
		return &Error{Kind: KindContentBlocked, Err: err}
	case strings.Contains(msg, "network") || strings.Contains(msg, "connection") || strings.Contains(msg, "timeout") || strings.Contains(msg, "fetch") || strings.Contains(msg, "dial"):
		return &Error{Kind: KindNetworkError, Err: err}
	case strings.Contains(msg, "model"):
		return &Error{Kind: KindModelUnavailable, Err: err}
	default:
		return &Error{Kind: KindUnknown, Err: err}
	}
}
