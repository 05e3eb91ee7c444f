package telegram

import (
	"strings"
	"unicode/utf8"
)

// SplitMessage splits a message into chunks of maxLen characters,
// trying to split at newlines when possible.
func SplitMessage(text string, maxLen int) []string {
	if utf8.RuneCountInString(text) <= maxLen {
		return []string{text}
	}

	var parts []string
	runes := []rune(text)
	for len(runes) > 0 {
		if len(runes) <= maxLen {
			parts = append(parts, string(runes))
			break
		}

		splitAt := maxLen
		chunk := string(runes[:maxLen])
		if i := strings.LastIndex(chunk, "\n"); i >= 0 {
			if n := utf8.RuneCountInString(chunk[:i]); n > maxLen/2 {
				splitAt = n + 1
			}
		}

		parts = append(parts, string(runes[:splitAt]))
		runes = runes[splitAt:]
	}

	return parts
}

// PackBlocks joins display blocks into as few messages of at most maxLen
// characters as possible, with a blank line between blocks. Oversized blocks
// are split first.
func PackBlocks(blocks []string, maxLen int) []string {
	var out []string
	var cur string
	curLen := 0

	for _, block := range blocks {
		for _, piece := range SplitMessage(block, maxLen) {
			n := utf8.RuneCountInString(piece)
			switch {
			case curLen == 0:
				cur, curLen = piece, n
			case curLen+2+n <= maxLen:
				cur += "\n\n" + piece
				curLen += 2 + n
			default:
				out = append(out, cur)
				cur, curLen = piece, n
			}
		}
	}
	if curLen > 0 {
		out = append(out, cur)
	}
	return out
}
