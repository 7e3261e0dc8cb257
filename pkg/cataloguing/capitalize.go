package cataloguing

import (
	"strings"
	"unicode"
)

// capitalizeWord lowercases word and capitalizes its leading letter, with
// two extra rules for names: when prefix handling is on, "mc" names get
// their third letter capitalized and "mac" names their fourth (if the word
// is a known Mac surname); words shaped like "o'hara" get the letter after
// the apostrophe capitalized regardless.
func (e *Engine) capitalizeWord(word string) string {
	lower := strings.ToLower(word)

	divide := 0
	if e.handlePrefixes {
		if strings.HasPrefix(lower, "mc") {
			divide = 2
		} else if strings.HasPrefix(lower, "mac") && e.lists.MacSurnames().Contains(lower) {
			divide = 3
		}
	}
	if hasApostropheNamePrefix(fold(lower)) {
		divide = 2
	}

	rs := []rune(lower)
	return upperFirst(rs[:divide]) + upperFirst(rs[divide:])
}

// hasApostropheNamePrefix reports whether s starts with a single letter, an
// apostrophe, and at least two more letters ("o'hara"). s is expected to be
// lowercased and accent-folded.
func hasApostropheNamePrefix(s string) bool {
	rs := []rune(s)
	return len(rs) >= 4 &&
		isLowerLetter(rs[0]) &&
		isApostrophe(rs[1]) &&
		isLowerLetter(rs[2]) &&
		isLowerLetter(rs[3])
}

func isLowerLetter(r rune) bool {
	return r >= 'a' && r <= 'z'
}

func upperFirst(rs []rune) string {
	if len(rs) == 0 {
		return ""
	}
	return string(unicode.ToUpper(rs[0])) + string(rs[1:])
}
