// Package numwords converts integers to English cardinal text.
//
// Output follows the conventional British reading: hyphenated compounds for
// 21–99 ("forty-two"), "and" between hundreds and a remainder ("one hundred
// and five"), thousand groups joined with ", " and a final group below one
// hundred joined with " and " ("one thousand and one"). Negative numbers are
// prefixed with "minus".
//
// All functions are safe for concurrent use.
package numwords

import "strings"

var units = [...]string{
	"zero", "one", "two", "three", "four", "five", "six", "seven",
	"eight", "nine", "ten", "eleven", "twelve", "thirteen", "fourteen",
	"fifteen", "sixteen", "seventeen", "eighteen", "nineteen",
}

var tens = [...]string{
	"", "ten", "twenty", "thirty", "forty", "fifty", "sixty", "seventy",
	"eighty", "ninety",
}

// scales[i] names the 10^(3i) group; int64 tops out within quintillions.
var scales = [...]string{
	"", "thousand", "million", "billion", "trillion", "quadrillion",
	"quintillion",
}

// Convert returns the English cardinal text for n.
//
//	Convert(123)  → "one hundred and twenty-three"
//	Convert(1001) → "one thousand and one"
func Convert(n int64) string {
	if n == 0 {
		return "zero"
	}
	if n < 0 {
		return "minus " + Convert(-n)
	}

	type group struct {
		value int64
		scale int
	}

	// Split into 3-digit groups, highest scale first.
	var groups []group
	for scale := 0; n > 0; scale++ {
		if rest := n % 1000; rest > 0 {
			groups = append([]group{{value: rest, scale: scale}}, groups...)
		}
		n /= 1000
	}

	parts := make([]string, len(groups))
	for i, g := range groups {
		text := belowThousand(g.value)
		if g.scale > 0 {
			text += " " + scales[g.scale]
		}
		parts[i] = text
	}

	if len(parts) == 1 {
		return parts[0]
	}

	head := strings.Join(parts[:len(parts)-1], ", ")
	if last := groups[len(groups)-1]; last.scale == 0 && last.value < 100 {
		return head + " and " + parts[len(parts)-1]
	}
	return head + ", " + parts[len(parts)-1]
}

func belowThousand(n int64) string {
	if n < 100 {
		return belowHundred(n)
	}
	text := units[n/100] + " hundred"
	if rest := n % 100; rest > 0 {
		text += " and " + belowHundred(rest)
	}
	return text
}

func belowHundred(n int64) string {
	if n < 20 {
		return units[n]
	}
	text := tens[n/10]
	if rest := n % 10; rest > 0 {
		text += "-" + units[rest]
	}
	return text
}
