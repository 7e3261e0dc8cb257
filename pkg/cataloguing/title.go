package cataloguing

import (
	"strconv"
	"strings"

	"github.com/mwhitmore/book-cataloguing/pkg/numwords"
)

// CapitalizeTitle capitalizes a book title, preserving every
// non-alphanumeric character. Words recognized as Roman numerals are
// uppercased. Small words like "of" stay lowercase unless they open or close
// the title, open a subtitle, or precede a colon.
//
//	CapitalizeTitle("the hobbit: or, there and back again")
//	  → "The Hobbit: Or, There and Back Again"
func (e *Engine) CapitalizeTitle(title string) string {
	spans, totalWords := Segment(title, false)
	titleWords := e.lists.TitleWords()

	var b strings.Builder
	b.Grow(len(title))
	wordIndex := 0
	first := true // current word opens the title or a subtitle

	for i, span := range spans {
		if !span.IsWord {
			b.WriteString(span.Text)
			continue
		}

		// A colon in the following span makes this the last word of
		// its capitalization unit and the next word the first of a
		// subtitle.
		beforeColon := false
		if i < len(spans)-1 {
			beforeColon = strings.Contains(spans[i+1].Text, ":")
		}

		switch {
		case isRomanNumeral(span.Text):
			b.WriteString(strings.ToUpper(span.Text))
		case first ||
			!titleWords.Contains(strings.ToLower(span.Text)) ||
			wordIndex == totalWords-1 ||
			beforeColon:
			b.WriteString(e.capitalizeWord(span.Text))
		default:
			b.WriteString(strings.ToLower(span.Text))
		}

		wordIndex++
		first = beforeColon
	}

	return b.String()
}

// SortableTitle derives the sort key for a title: lowercased, leading
// article removed, digit runs expanded to words, punctuation collapsed, and
// finally re-capitalized. A title with no ASCII letters or digits, or
// consisting only of an article, yields the empty string.
//
//	SortableTitle("The 3 Musketeers") → "Three Musketeers"
func (e *Engine) SortableTitle(title string) string {
	return e.sortableTitle(title, true)
}

func (e *Engine) sortableTitle(title string, correctCase bool) string {
	title = strings.ToLower(title)
	if !containsAlnum(title) {
		return ""
	}

	if e.smartNumbers {
		title = expandNumbers(title)
	}

	spans, _ := Segment(title, false)

	// Drop surrounding whitespace or punctuation, one span per side.
	if len(spans) > 0 && !spans[0].IsWord {
		spans = spans[1:]
	}
	if n := len(spans); n > 0 && !spans[n-1].IsWord {
		spans = spans[:n-1]
	}

	if len(spans) > 0 && isLeadingArticle(spans[0].Text) {
		spans = spans[1:]
		if len(spans) == 0 {
			// The article was the whole title.
			return ""
		}
		// Drop the separator that followed the article.
		spans = spans[1:]
	}

	var b strings.Builder
	for _, span := range spans {
		switch {
		case span.IsWord:
			b.WriteString(span.Text)
		case strings.Contains(span.Text, " "):
			b.WriteByte(' ')
		}
	}

	out := b.String()
	if correctCase {
		out = e.CapitalizeTitle(out)
	}
	return out
}

func isLeadingArticle(word string) bool {
	return word == "a" || word == "an" || word == "the"
}

// containsAlnum reports whether s contains an ASCII letter or digit.
func containsAlnum(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' {
			return true
		}
	}
	return false
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// expandNumbers rewrites every maximal digit run in s as lowercase English
// words with no "and", after removing thousands-separator commas. Both
// rewrites are single left-to-right passes over the input.
func expandNumbers(s string) string {
	s = stripNumberCommas(s)

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		if !isDigit(s[i]) {
			b.WriteByte(s[i])
			i++
			continue
		}

		j := i
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		run := s[i:j]
		if n, err := strconv.ParseInt(run, 10, 64); err == nil {
			b.WriteString(spellNumber(n))
		} else {
			// Too large for int64; keep the digits.
			b.WriteString(run)
		}
		i = j
	}
	return b.String()
}

// stripNumberCommas removes each comma that sits directly between two
// digits, so "1,234,567" reads as one number.
func stripNumberCommas(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	var prev byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == ',' && isDigit(prev) && i+1 < len(s) && isDigit(s[i+1]) {
			continue
		}
		b.WriteByte(c)
		prev = c
	}
	return b.String()
}

// spellNumber converts n to words and removes the "and" tokens from the
// expansion ("one hundred and twenty-three" → "one hundred twenty-three").
func spellNumber(n int64) string {
	words := strings.Fields(numwords.Convert(n))
	kept := words[:0]
	for _, w := range words {
		if w != "and" {
			kept = append(kept, w)
		}
	}
	return strings.Join(kept, " ")
}
