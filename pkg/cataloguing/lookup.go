package cataloguing

import (
	"bufio"
	"bytes"
	"embed"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync/atomic"

	"github.com/blevesearch/vellum"
)

//go:embed wordlists/*.txt
var defaultLists embed.FS

// WordSet is an immutable lowercase word set compiled into an FST. A nil
// *WordSet behaves as the empty set.
type WordSet struct {
	fst *vellum.FST
	n   int
}

// newWordSet builds a set from the given words. Words are lowercased and
// deduplicated; the zero-length input yields an empty but usable set.
func newWordSet(words []string) (*WordSet, error) {
	uniq := make(map[string]struct{}, len(words))
	for _, w := range words {
		uniq[strings.ToLower(w)] = struct{}{}
	}

	sorted := make([]string, 0, len(uniq))
	for w := range uniq {
		sorted = append(sorted, w)
	}
	sort.Strings(sorted)

	var buf bytes.Buffer
	builder, err := vellum.New(&buf, nil)
	if err != nil {
		return nil, err
	}
	for _, w := range sorted {
		if err := builder.Insert([]byte(w), 0); err != nil {
			return nil, err
		}
	}
	if err := builder.Close(); err != nil {
		return nil, err
	}

	fst, err := vellum.Load(buf.Bytes())
	if err != nil {
		return nil, err
	}

	return &WordSet{fst: fst, n: len(sorted)}, nil
}

// Contains reports whether the lowercase word is in the set.
func (s *WordSet) Contains(word string) bool {
	if s == nil || s.fst == nil {
		return false
	}
	_, ok, _ := s.fst.Get([]byte(word))
	return ok
}

// Len returns the number of words in the set.
func (s *WordSet) Len() int {
	if s == nil {
		return 0
	}
	return s.n
}

// Registry holds the four replaceable lookup categories. Each category is an
// immutable WordSet behind an atomic pointer: a reload builds a complete
// replacement and swaps it in, so a call in progress observes either the
// entirely-old or the entirely-new contents.
type Registry struct {
	titleWords   atomic.Pointer[WordSet]
	authorWords  atomic.Pointer[WordSet]
	macSurnames  atomic.Pointer[WordSet]
	authorTitles atomic.Pointer[WordSet]
	generation   atomic.Uint64
}

// NewRegistry creates a registry populated with the embedded default lists.
func NewRegistry() (*Registry, error) {
	r := &Registry{}
	if err := r.LoadTitleWords(""); err != nil {
		return nil, err
	}
	if err := r.LoadAuthorWords(""); err != nil {
		return nil, err
	}
	if err := r.LoadMacSurnames(""); err != nil {
		return nil, err
	}
	if err := r.LoadAuthorTitles(""); err != nil {
		return nil, err
	}
	return r, nil
}

// LoadTitleWords replaces the set of words (like "the" and "of") that stay
// lowercase inside a title. An empty path loads the embedded default list.
func (r *Registry) LoadTitleWords(path string) error {
	return r.load(&r.titleWords, path, "wordlists/title_words.txt")
}

// LoadAuthorWords replaces the set of words (like "van" and "de") that stay
// lowercase in author names and may join a multi-word surname. An empty path
// loads the embedded default list.
func (r *Registry) LoadAuthorWords(path string) error {
	return r.load(&r.authorWords, path, "wordlists/author_words.txt")
}

// LoadMacSurnames replaces the set of surnames (like "macdonald") whose
// fourth letter is capitalized. An empty path loads the embedded default
// list.
func (r *Registry) LoadMacSurnames(path string) error {
	return r.load(&r.macSurnames, path, "wordlists/mac_surnames.txt")
}

// LoadAuthorTitles replaces the set of words (like "mr" and "lord") that are
// titles rather than part of an author's name. An empty path loads the
// embedded default list.
func (r *Registry) LoadAuthorTitles(path string) error {
	return r.load(&r.authorTitles, path, "wordlists/author_titles.txt")
}

// TitleWords returns the current title small-word set.
func (r *Registry) TitleWords() *WordSet { return r.titleWords.Load() }

// AuthorWords returns the current author small-word set.
func (r *Registry) AuthorWords() *WordSet { return r.authorWords.Load() }

// MacSurnames returns the current Mac-surname set.
func (r *Registry) MacSurnames() *WordSet { return r.macSurnames.Load() }

// AuthorTitles returns the current author-title set.
func (r *Registry) AuthorTitles() *WordSet { return r.authorTitles.Load() }

// Generation counts successful reloads across all categories. Cached values
// derived from the registry are tagged with it.
func (r *Registry) Generation() uint64 { return r.generation.Load() }

// load reads a replacement list and swaps it in. On any error the previous
// contents stay in place.
func (r *Registry) load(slot *atomic.Pointer[WordSet], path, embedded string) error {
	var (
		words []string
		err   error
	)
	if path == "" {
		words, err = readEmbeddedList(embedded)
	} else {
		words, err = readListFile(path)
	}
	if err != nil {
		return err
	}

	set, err := newWordSet(words)
	if err != nil {
		return fmt.Errorf("building word set: %w", err)
	}

	slot.Store(set)
	r.generation.Add(1)
	return nil
}

func readEmbeddedList(name string) ([]string, error) {
	f, err := defaultLists.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readList(f)
}

func readListFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readList(f)
}

// readList reads one lowercase word per line, skipping blanks and comments.
func readList(f io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		words = append(words, strings.ToLower(word))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}
