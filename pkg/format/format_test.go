package format

import (
	"strings"
	"testing"
)

func TestChunkShortText(t *testing.T) {
	chunks := Chunk("hola", 4000)
	if len(chunks) != 1 {
		t.Fatalf("Chunk() returned %d chunks, want 1", len(chunks))
	}
	if chunks[0] != "hola" {
		t.Errorf("Chunk()[0] = %q, want %q", chunks[0], "hola")
	}
}

func TestChunkExactBoundary(t *testing.T) {
	text := strings.Repeat("a", 4000)
	chunks := Chunk(text, 4000)
	if len(chunks) != 1 {
		t.Errorf("text of exactly max length should be one chunk, got %d", len(chunks))
	}
}

func TestChunkLongText(t *testing.T) {
	text := strings.Repeat("x", 8001)
	chunks := Chunk(text, 4000)

	if len(chunks) != 3 {
		t.Fatalf("Chunk() returned %d chunks, want 3", len(chunks))
	}

	wantLens := []int{4000, 4000, 1}
	for i, want := range wantLens {
		if len(chunks[i]) != want {
			t.Errorf("chunk %d length = %d, want %d", i, len(chunks[i]), want)
		}
	}

	if strings.Join(chunks, "") != text {
		t.Error("concatenated chunks should reconstruct the original text")
	}
}

func TestChunkDeterministic(t *testing.T) {
	text := strings.Repeat("abc", 3000)
	first := Chunk(text, 4000)
	second := Chunk(text, 4000)

	if len(first) != len(second) {
		t.Fatal("Chunk() is not deterministic")
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("chunk %d differs between runs", i)
		}
	}
}

func TestChunkEmpty(t *testing.T) {
	chunks := Chunk("", 4000)
	if len(chunks) != 1 || chunks[0] != "" {
		t.Error("empty input should yield a single empty chunk")
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"short", "pregunta", 1000, "pregunta"},
		{"exact", strings.Repeat("a", 10), 10, strings.Repeat("a", 10)},
		{"over", strings.Repeat("a", 12), 10, strings.Repeat("a", 10) + "..."},
		{"empty", "", 10, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.in, tt.max); got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
			}
		})
	}
}
