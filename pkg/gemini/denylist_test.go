package gemini

import "testing"

func TestDeniedKeyword(t *testing.T) {
	tests := []struct {
		name   string
		prompt string
		want   string
	}{
		{"clean prompt", "a calm mountain lake at sunrise", ""},
		{"lowercase match", "some nsfw drawing", "nsfw"},
		{"uppercase match", "an NSFW scene", "nsfw"},
		{"embedded match", "ultraviolence in the streets", "violence"},
		{"gore", "a GORE-filled battlefield", "gore"},
		{"empty prompt", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DeniedKeyword(tt.prompt); got != tt.want {
				t.Errorf("DeniedKeyword(%q) = %q, want %q", tt.prompt, got, tt.want)
			}
		})
	}
}
