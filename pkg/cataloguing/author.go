package cataloguing

import (
	"errors"
	"strings"
)

// ErrNoName reports an author name with no name words left once recognized
// titles (like "mr" or "lord") are removed.
var ErrNoName = errors.New("cataloguing: author name contains no name words")

// AuthorName is the sortable decomposition of an author's name. First is
// empty when the name has no words besides the last name.
type AuthorName struct {
	Last  string
	First string
}

// String renders the decomposition as "Last, First", or just "Last" when
// there is no first-name part.
func (n AuthorName) String() string {
	if n.First == "" {
		return n.Last
	}
	return n.Last + ", " + n.First
}

// CapitalizeAuthor capitalizes an author's name, preserving every
// non-alphanumeric character. Roman numerals are uppercased and small name
// words such as "van" and "de" stay lowercase.
//
//	CapitalizeAuthor("ludwig van beethoven") → "Ludwig van Beethoven"
//	CapitalizeAuthor("CORMAC MCCARTHY")      → "Cormac McCarthy"
func (e *Engine) CapitalizeAuthor(author string) string {
	spans, _ := Segment(author, false)
	authorWords := e.lists.AuthorWords()

	var b strings.Builder
	b.Grow(len(author))
	for _, span := range spans {
		switch {
		case !span.IsWord:
			b.WriteString(span.Text)
		case isRomanNumeral(span.Text):
			b.WriteString(strings.ToUpper(span.Text))
		case authorWords.Contains(strings.ToLower(span.Text)):
			b.WriteString(strings.ToLower(span.Text))
		default:
			b.WriteString(e.capitalizeWord(span.Text))
		}
	}
	return b.String()
}

// SeparateAuthorName decomposes a name into its last and first parts for
// sorting. Recognized titles are removed; a trailing "jr"/"sr" (which gains
// a period) or Roman numeral makes the last name two words; initials gain a
// period; "mc" prefixes sort as "mac"; apostrophes are dropped; small name
// words directly before the last name are absorbed into it.
//
//	SeparateAuthorName("Ludwig van Beethoven")
//	  → AuthorName{Last: "van Beethoven", First: "Ludwig"}
//
// A name consisting only of titles returns ErrNoName.
func (e *Engine) SeparateAuthorName(author string) (AuthorName, error) {
	return e.separateAuthorName(author, true)
}

func (e *Engine) separateAuthorName(author string, correctCase bool) (AuthorName, error) {
	spans, _ := Segment(strings.ToLower(author), true)

	authorTitles := e.lists.AuthorTitles()
	tokens := make([]string, 0, len(spans))
	for _, span := range spans {
		if !authorTitles.Contains(span.Text) {
			tokens = append(tokens, span.Text)
		}
	}
	if len(tokens) == 0 {
		return AuthorName{}, ErrNoName
	}

	// Decide how many trailing tokens form the last name.
	lastLen := 1
	n := len(tokens)
	switch {
	case tokens[n-1] == "jr" || tokens[n-1] == "sr":
		tokens[n-1] += "."
		lastLen = 2
	case isRomanNumeral(tokens[n-1]):
		lastLen = 2
	}

	for i, tok := range tokens {
		if len([]rune(tok)) == 1 {
			// A single character is an initial.
			tok += "."
		} else if strings.HasPrefix(tok, "mc") {
			// McCarthy sorts adjacent to MacCarthy.
			tok = "mac" + tok[2:]
		}
		if correctCase {
			tok = e.CapitalizeAuthor(tok)
		}
		tokens[i] = stripApostrophes(tok)
	}

	split := n - lastLen
	if split < 0 {
		split = 0
	}

	// Absorb words like "von" and "de la" into the last name.
	authorWords := e.lists.AuthorWords()
	for split > 0 && authorWords.Contains(tokens[split-1]) {
		split--
	}

	last := strings.Join(tokens[split:], " ")
	if split == 0 {
		return AuthorName{Last: last}, nil
	}
	return AuthorName{
		Last:  last,
		First: strings.Join(tokens[:split], " "),
	}, nil
}

// SortableAuthor derives the "Last, First" sort string for an author name.
//
//	SortableAuthor("Ludwig van Beethoven") → "van Beethoven, Ludwig"
func (e *Engine) SortableAuthor(author string) (string, error) {
	name, err := e.SeparateAuthorName(author)
	if err != nil {
		return "", err
	}
	return name.String(), nil
}

// stripApostrophes removes every recognized apostrophe glyph; sort keys
// ignore them.
func stripApostrophes(s string) string {
	return strings.Map(func(r rune) rune {
		if isApostrophe(r) {
			return -1
		}
		return r
	}, s)
}
