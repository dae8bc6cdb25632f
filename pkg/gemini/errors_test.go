package gemini

import (
	"errors"
	"fmt"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		msg  string
		want FailureKind
	}{
		{"quota by status code", "googleapi: Error 429: Resource has been exhausted", KindQuotaExceeded},
		{"quota by word", "quota exceeded for this project", KindQuotaExceeded},
		{"missing api key", "API_KEY_INVALID: please pass a valid API key", KindInvalidAPIKey},
		{"unauthenticated", "rpc error: code = Unauthenticated", KindInvalidAPIKey},
		{"forbidden", "googleapi: Error 403: permission denied", KindForbidden},
		{"safety", "candidate was blocked due to safety", KindContentBlocked},
		{"network", "dial tcp: connection refused", KindNetworkError},
		{"timeout", "context deadline exceeded (Client.Timeout)", KindNetworkError},
		{"model", "model not found", KindModelUnavailable},
		{"unknown", "something inexplicable happened", KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classify(errors.New(tt.msg))
			if got.Kind != tt.want {
				t.Errorf("classify(%q).Kind = %v, want %v", tt.msg, got.Kind, tt.want)
			}
		})
	}
}

func TestClassifyPreservesCause(t *testing.T) {
	cause := errors.New("googleapi: Error 429")
	classified := classify(cause)

	if !errors.Is(classified, cause) {
		t.Error("classified error should wrap the provider error")
	}
}

func TestKindOf(t *testing.T) {
	err := newError(KindContentBlocked, "blocked")
	if KindOf(err) != KindContentBlocked {
		t.Errorf("KindOf() = %v, want KindContentBlocked", KindOf(err))
	}

	wrapped := fmt.Errorf("handler: %w", err)
	if KindOf(wrapped) != KindContentBlocked {
		t.Error("KindOf() should see through wrapping")
	}

	if KindOf(errors.New("plain")) != KindUnknown {
		t.Error("KindOf() on an unclassified error should be KindUnknown")
	}
}

func TestUserMessages(t *testing.T) {
	kinds := []FailureKind{
		KindUnknown,
		KindInvalidAPIKey,
		KindForbidden,
		KindQuotaExceeded,
		KindContentBlocked,
		KindNetworkError,
		KindModelUnavailable,
		KindEmptyResponse,
	}

	seen := make(map[string]FailureKind)
	for _, k := range kinds {
		msg := k.UserMessage()
		if msg == "" {
			t.Errorf("UserMessage for %v is empty", k)
		}
		if prev, dup := seen[msg]; dup {
			t.Errorf("kinds %v and %v share the message %q", prev, k, msg)
		}
		seen[msg] = k
	}
}
