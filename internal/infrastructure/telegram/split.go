package telegram

import (
	"strings"
	"unicode/utf8"
)

const maxMessageLength = 4096

// splitMessage cuts text into chunks of at most limit runes, preferring line
// breaks so HTML tags on one line stay intact.
func splitMessage(text string, limit int) []string {
	var chunks []string
	for utf8.RuneCountInString(text) > limit {
		end := byteOffsetOfRune(text, limit)
		cut := end
		if idx := strings.LastIndex(text[:end], "\n"); idx > 0 {
			cut = idx + 1
		}
		chunks = append(chunks, text[:cut])
		text = text[cut:]
	}
	if text != "" || len(chunks) == 0 {
		chunks = append(chunks, text)
	}
	return chunks
}

func byteOffsetOfRune(s string, n int) int {
	for i := range s {
		if n == 0 {
			return i
		}
		n--
	}
	return len(s)
}
