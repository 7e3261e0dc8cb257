package cataloguing

import (
	"strings"

	roman "github.com/brandenc40/romannumeral"
)

// isRomanNumeral reports whether word is a valid Roman numeral, case
// insensitively. Empty and malformed strings are not numerals.
func isRomanNumeral(word string) bool {
	if word == "" {
		return false
	}
	_, err := roman.StringToInt(strings.ToUpper(word))
	return err == nil
}
