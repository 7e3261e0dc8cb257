package cataloguing

import "unicode/utf8"

// isApostrophe reports whether r is one of the recognized apostrophe glyphs:
// the straight quote, the curly single quotes, and the two Windows-1252 code
// points historically miscoded as apostrophes.
func isApostrophe(r rune) bool {
	switch r {
	case '\'', '\u0091', '\u0092', '‘', '’':
		return true
	}
	return false
}

// isWordASCII classifies an already-folded rune: ASCII letter, ASCII digit,
// or (mode-dependent) hyphen.
func isWordASCII(r rune, includeHyphens bool) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == '-':
		return includeHyphens
	}
	return false
}

// isWordRune reports whether r is word-forming: a letter, digit, or
// apostrophe after accent folding, plus the hyphen when includeHyphens is
// set. Lone combining marks and characters that fold to non-word text are
// not word-forming.
func isWordRune(r rune, includeHyphens bool) bool {
	if isWordASCII(r, includeHyphens) || isApostrophe(r) {
		return true
	}
	if r < utf8.RuneSelf {
		return false
	}

	folded := fold(string(r))
	if folded == "" {
		return false
	}
	for _, fr := range folded {
		if !isWordASCII(fr, includeHyphens) && !isApostrophe(fr) {
			return false
		}
	}
	return true
}
