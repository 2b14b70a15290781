package text

import "strings"

// wrapLines breaks content into lines no wider than maxWidth using greedy
// word wrapping. Hard newlines always start a new line. A single word wider
// than maxWidth is broken mid-word so every rune remains visible.
func wrapLines(content string, maxWidth float64, widthOf func(string) float64) []string {
	var lines []string
	for _, paragraph := range strings.Split(content, "\n") {
		lines = append(lines, wrapParagraph(paragraph, maxWidth, widthOf)...)
	}
	return lines
}

func wrapParagraph(paragraph string, maxWidth float64, widthOf func(string) float64) []string {
	words := strings.Fields(paragraph)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	var current string
	for _, word := range words {
		if widthOf(word) > maxWidth {
			if current != "" {
				lines = append(lines, current)
				current = ""
			}
			broken := breakWord(word, maxWidth, widthOf)
			lines = append(lines, broken[:len(broken)-1]...)
			current = broken[len(broken)-1]
			continue
		}
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if widthOf(candidate) <= maxWidth {
			current = candidate
		} else {
			lines = append(lines, current)
			current = word
		}
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}

// breakWord splits a single over-wide word into maximal chunks that fit.
// The final chunk may still accept trailing words on the same line.
func breakWord(word string, maxWidth float64, widthOf func(string) float64) []string {
	var chunks []string
	var current string
	for _, r := range word {
		candidate := current + string(r)
		if current != "" && widthOf(candidate) > maxWidth {
			chunks = append(chunks, current)
			current = string(r)
		} else {
			current = candidate
		}
	}
	chunks = append(chunks, current)
	return chunks
}
