// Package format renders AI responses into Discord-sized pieces.
package format

// Discord display limits used by the command handlers
const (
	// EmbedDescriptionLimit is the chunk size for long AI responses
	// (the embed description hard limit is 4096; 4000 leaves headroom)
	EmbedDescriptionLimit = 4000

	// FieldEchoLimit bounds a question or prompt echoed back in an embed field
	FieldEchoLimit = 1000
)

// Chunk splits text into pieces of at most max bytes each.
// Boundaries are fixed offsets, so the same input always produces the
// same chunks and their concatenation reconstructs the input exactly.
// Text within the limit comes back as a single chunk.
func Chunk(text string, max int) []string {
	if max <= 0 || len(text) <= max {
		return []string{text}
	}

	chunks := make([]string, 0, (len(text)+max-1)/max)
	for i := 0; i < len(text); i += max {
		end := i + max
		if end > len(text) {
			end = len(text)
		}
		chunks = append(chunks, text[i:end])
	}
	return chunks
}

// Truncate bounds s to max characters, appending "..." when it was cut
func Truncate(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
