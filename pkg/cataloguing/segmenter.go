package cataloguing

// Span is a maximal substring of the input whose runes are uniformly
// word-forming or uniformly not, under the active mode.
type Span struct {
	Text   string
	IsWord bool
}

// Segment splits text into an ordered sequence of spans alternating between
// word-forming and non-word-forming runs, plus the number of word spans.
//
// In lossless mode (alphaOnly false) concatenating the span texts in order
// reproduces text exactly. With alphaOnly set, hyphens count as word-forming
// and non-word spans are dropped from the result; the word count is
// unaffected by the mode's filtering.
func Segment(text string, alphaOnly bool) ([]Span, int) {
	rs := []rune(text)
	if len(rs) == 0 {
		return nil, 0
	}

	var spans []Span
	wordCount := 0
	start := 0
	current := isWordRune(rs[0], alphaOnly)
	if current {
		wordCount++
	}

	for i := 1; i <= len(rs); i++ {
		if i < len(rs) && isWordRune(rs[i], alphaOnly) == current {
			continue
		}

		// Close the current span. In alphaOnly mode only word spans
		// are kept.
		if current || !alphaOnly {
			spans = append(spans, Span{Text: string(rs[start:i]), IsWord: current})
		}

		if i < len(rs) {
			start = i
			current = !current
			if current {
				wordCount++
			}
		}
	}

	return spans, wordCount
}
