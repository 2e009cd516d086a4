package llm

import (
	"regexp"
	"strings"
	"unicode"
)

var listMarker = regexp.MustCompile(`(?:\d+\.\s|-)`)

// FormatResponse tidies a model reply for display. Paragraphs that look like
// lists become "- item" lines, long paragraphs are re-joined sentence by
// sentence, anything else is kept as is.
func FormatResponse(text string) string {
	paragraphs := strings.Split(text, "\n\n")
	out := make([]string, 0, len(paragraphs))

	for _, p := range paragraphs {
		p = strings.TrimSpace(p)
		switch {
		case strings.Contains(p, "1.") || strings.Contains(p, "-"):
			var items []string
			for _, item := range listMarker.Split(p, -1) {
				if item = strings.TrimSpace(item); item != "" {
					items = append(items, "- "+item)
				}
			}
			out = append(out, strings.Join(items, "\n"))
		case len(p) > 200:
			out = append(out, strings.Join(splitSentences(p), " "))
		default:
			out = append(out, p)
		}
	}

	return strings.Join(out, "\n\n")
}

// splitSentences breaks s after '.', '!' or '?' when whitespace follows.
func splitSentences(s string) []string {
	var sentences []string
	runes := []rune(s)
	start := 0
	for i := 0; i < len(runes); i++ {
		if !strings.ContainsRune(".!?", runes[i]) || i+1 >= len(runes) || !unicode.IsSpace(runes[i+1]) {
			continue
		}
		if sentence := strings.TrimSpace(string(runes[start : i+1])); sentence != "" {
			sentences = append(sentences, sentence)
		}
		j := i + 1
		for j < len(runes) && unicode.IsSpace(runes[j]) {
			j++
		}
		start = j
		i = j - 1
	}
	if sentence := strings.TrimSpace(string(runes[start:])); sentence != "" {
		sentences = append(sentences, sentence)
	}
	return sentences
}
