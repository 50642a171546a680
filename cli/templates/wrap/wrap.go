// Package wrap splits text into lines of limited width keeping whitespace.
//
// The algorithm is greedy: words and whitespace runs are packed into a line
// while they fit. Whitespace is kept at line boundaries, hyphenated words may
// be split after a hyphen and words longer than the width are cut.
package wrap

import (
	"strings"
	"unicode"
)

const tabSize = 8

// Wrap splits text into lines of at most width characters. Tabs are
// expanded and every other whitespace character becomes a space. Empty text
// produces no lines.
func Wrap(text string, width int) []string {
	if width < 1 {
		width = 1
	}
	return wrapChunks(split(normalizeSpaces(expandTabs(text))), width)
}

// expandTabs replaces tabs with spaces up to the next tab stop. Columns are
// reset by line breaks.
func expandTabs(text string) string {
	if !strings.ContainsRune(text, '\t') {
		return text
	}
	var b strings.Builder
	column := 0
	for _, r := range text {
		switch r {
		case '\t':
			spaces := tabSize - column%tabSize
			b.WriteString(strings.Repeat(" ", spaces))
			column += spaces
		case '\n', '\r':
			b.WriteRune(r)
			column = 0
		default:
			b.WriteRune(r)
			column++
		}
	}
	return b.String()
}

func normalizeSpaces(text string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return ' '
		}
		return r
	}, text)
}

// split cuts text into whitespace runs and words. Hyphenated words are split
// after the hyphen and a dash run between words is a chunk of its own.
func split(text string) [][]rune {
	var chunks [][]rune
	runes := []rune(text)
	for start := 0; start < len(runes); {
		end := start + 1
		switch {
		case runes[start] == ' ':
			for end < len(runes) && runes[end] == ' ' {
				end++
			}
		case isEmDash(runes, start):
			for runes[end] == '-' {
				end++
			}
		default:
			for end < len(runes) && runes[end] != ' ' && !isEmDash(runes, end) {
				if isWordHyphen(runes, end) {
					end++
					break
				}
				end++
			}
		}
		chunks = append(chunks, runes[start:end])
		start = end
	}
	return chunks
}

// isWordHyphen reports whether a word may be broken after runes[i]: the
// hyphen follows two letters (or a letter-hyphen-letter) and precedes a
// letter, optionally separated from the next letter by another hyphen.
func isWordHyphen(runes []rune, i int) bool {
	if i < 2 || runes[i] != '-' {
		return false
	}
	letterAt := func(j int) bool {
		return j >= 0 && j < len(runes) && isLetter(runes[j])
	}
	before := (letterAt(i-2) && letterAt(i-1)) ||
		(letterAt(i-3) && runes[i-2] == '-' && letterAt(i-1))
	if !before || !letterAt(i+1) {
		return false
	}
	return letterAt(i+2) || (i+2 < len(runes) && runes[i+2] == '-' && letterAt(i+3))
}

// isEmDash reports whether runes[i] starts a run of two or more hyphens
// placed right after a word character or punctuation and followed by a word
// character, as in "this--that".
func isEmDash(runes []rune, i int) bool {
	if i < 1 || runes[i] != '-' || !isWordPunct(runes[i-1]) {
		return false
	}
	end := i
	for end < len(runes) && runes[end] == '-' {
		end++
	}
	return end-i >= 2 && end < len(runes) && isWordChar(runes[end])
}

func isWordChar(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

func isWordPunct(r rune) bool {
	return isWordChar(r) || strings.ContainsRune(`!"'&.,?`, r)
}

// isLetter matches word characters except decimal digits.
func isLetter(r rune) bool {
	return isWordChar(r) && !unicode.IsDigit(r)
}

func wrapChunks(chunks [][]rune, width int) []string {
	var lines []string
	for len(chunks) > 0 {
		var line []rune
		for len(chunks) > 0 && len(line)+len(chunks[0]) <= width {
			line = append(line, chunks[0]...)
			chunks = chunks[1:]
		}

		if len(chunks) > 0 && len(chunks[0]) > width {
			// The chunk can't fit any line: cut it.
			end := width - len(line)
			chunk := chunks[0]
			if hyphen := lastIndexRune(chunk[:end], '-'); hyphen > 0 &&
				hasNonHyphen(chunk[:hyphen]) {
				end = hyphen + 1
			}
			line = append(line, chunk[:end]...)
			chunks[0] = chunk[end:]
		}

		if len(line) > 0 {
			lines = append(lines, string(line))
		}
	}
	return lines
}

func lastIndexRune(runes []rune, r rune) int {
	for i := len(runes) - 1; i >= 0; i-- {
		if runes[i] == r {
			return i
		}
	}
	return -1
}

func hasNonHyphen(runes []rune) bool {
	for _, r := range runes {
		if r != '-' {
			return true
		}
	}
	return false
}
