package gemini

import "strings"

// promptDenylist blocks image prompts before any provider call is made
var promptDenylist = []string{
	"nsfw",
	"nude",
	"explicit",
	"gore",
	"violence",
	"hate",
}

// DeniedKeyword returns the first denylisted keyword found in the prompt,
// matched case-insensitively, or "" if the prompt is clean.
func DeniedKeyword(prompt string) string {
	lower := strings.ToLower(prompt)
	for _, kw := range promptDenylist {
		if strings.Contains(lower, kw) {
			return kw
		}
	}
	return ""
}
