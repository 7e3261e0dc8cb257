package cataloguing

import (
	"sync"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldPool hands out NFKD → strip-combining-marks pipelines. Transformers
// carry internal state, so each caller borrows its own.
var foldPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			norm.NFKD,
			runes.Remove(runes.In(unicode.Mn)),
		)
	},
}

// fold strips accents: canonical/compatibility decomposition with combining
// marks removed. Used only for matching, never for output text.
func fold(s string) string {
	if isASCII(s) {
		return s
	}

	t := foldPool.Get().(transform.Transformer)
	defer func() {
		t.Reset()
		foldPool.Put(t)
	}()

	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}
