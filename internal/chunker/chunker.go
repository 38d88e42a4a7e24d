// Package chunker splits long texts into pieces a translation model can take.
package chunker

import (
	"strings"
	"unicode/utf8"
)

// DefaultMaxRunes is the largest chunk handed to a translation model in one call.
const DefaultMaxRunes = 512

// Separator joins translated chunks back together.
const Separator = " "

// Split cuts text into consecutive chunks of at most maxRunes runes.
// Chunks are cut on rune boundaries, never inside a UTF-8 sequence.
func Split(text string, maxRunes int) []string {
	if text == "" {
		return nil
	}

	if maxRunes <= 0 {
		maxRunes = DefaultMaxRunes
	}

	if utf8.RuneCountInString(text) <= maxRunes {
		return []string{text}
	}

	var chunks []string
	start, count := 0, 0
	for i := range text {
		if count == maxRunes {
			chunks = append(chunks, text[start:i])
			start, count = i, 0
		}
		count++
	}
	chunks = append(chunks, text[start:])

	return chunks
}

// Join reassembles translated chunks.
func Join(chunks []string) string {
	return strings.Join(chunks, Separator)
}
