package gemini

import (
	"context"
	"testing"
)

// TestClientSurface verifies the gateway method set and signatures
// (compile-time check)
func TestClientSurface(t *testing.T) {
	var _ func(*Client, context.Context, string) (string, error) = (*Client).Ask
	var _ func(*Client, context.Context, string, string) error = (*Client).GenerateImage
	var _ func(*Client, context.Context, string) (*Sentiment, error) = (*Client).AnalyzeSentiment
	var _ func(*Client) error = (*Client).Close

	t.Log("✅ Gateway methods exist with correct signatures")
}

func TestNewClientRequiresAPIKey(t *testing.T) {
	c, err := NewClient(context.Background(), "")
	if err == nil {
		t.Fatal("NewClient with empty API key should fail")
	}
	if c != nil {
		t.Error("NewClient should not return a client on failure")
	}
	if kind := KindOf(err); kind != KindInvalidAPIKey {
		t.Errorf("KindOf() = %v, want KindInvalidAPIKey", kind)
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	c := &Client{}
	if err := c.Close(); err != nil {
		t.Errorf("Close() failed: %v", err)
	}
	if err := c.Close(); err != nil {
		t.Errorf("second Close() failed: %v", err)
	}
}
