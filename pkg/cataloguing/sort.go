package cataloguing

import (
	"sort"
	"strconv"
)

// TitleSortFunc stable-sorts items by the sortable-title key of key(item),
// computed without case correction. With reverse set the ascending order is
// reversed; equal keys keep their original relative order either way.
func TitleSortFunc[T any](e *Engine, items []T, key func(T) string, reverse bool) {
	keys := make([]string, len(items))
	for i, item := range items {
		keys[i] = e.titleKey(key(item))
	}
	sortByKeys(items, keys, reverse)
}

// AuthorSortFunc stable-sorts items by the author-name decomposition of
// key(item): last name first, then first name, with an absent first name
// ordering before any present one. Names with no name words sort first.
func AuthorSortFunc[T any](e *Engine, items []T, key func(T) string, reverse bool) {
	keys := make([]string, len(items))
	for i, item := range items {
		keys[i] = e.authorKey(key(item))
	}
	sortByKeys(items, keys, reverse)
}

// SortTitles sorts a plain slice of titles in place.
func (e *Engine) SortTitles(titles []string, reverse bool) {
	TitleSortFunc(e, titles, identity, reverse)
}

// SortAuthors sorts a plain slice of author names in place.
func (e *Engine) SortAuthors(authors []string, reverse bool) {
	AuthorSortFunc(e, authors, identity, reverse)
}

func identity(s string) string { return s }

// titleKey returns the cached sortable-title key for title.
func (e *Engine) titleKey(title string) string {
	if e.keys == nil {
		return e.sortableTitle(title, false)
	}

	ck := e.cacheKey('t', title)
	if key, ok := e.keys.Get(ck); ok {
		return key
	}
	key := e.sortableTitle(title, false)
	e.keys.Add(ck, key)
	return key
}

// authorKey returns the cached author sort key: the decomposition encoded
// as last name, NUL, first name. NUL orders below every word character, so
// lexicographic comparison of the encoding matches comparison of the
// (last, first) pair. An undecomposable name yields the empty key.
func (e *Engine) authorKey(author string) string {
	if e.keys == nil {
		return encodeAuthorKey(e, author)
	}

	ck := e.cacheKey('a', author)
	if key, ok := e.keys.Get(ck); ok {
		return key
	}
	key := encodeAuthorKey(e, author)
	e.keys.Add(ck, key)
	return key
}

func encodeAuthorKey(e *Engine, author string) string {
	name, err := e.separateAuthorName(author, false)
	if err != nil {
		return ""
	}
	if name.First == "" {
		return name.Last
	}
	return name.Last + "\x00" + name.First
}

// cacheKey tags cached entries with the registry generation so a lookup-set
// reload never serves keys computed against replaced contents.
func (e *Engine) cacheKey(kind byte, s string) string {
	return string(kind) + strconv.FormatUint(e.lists.Generation(), 10) + "\x00" + s
}

// keyedSorter pairs items with their precomputed keys so swaps keep them
// aligned.
type keyedSorter[T any] struct {
	items []T
	keys  []string
}

func (s *keyedSorter[T]) Len() int           { return len(s.items) }
func (s *keyedSorter[T]) Less(i, j int) bool { return s.keys[i] < s.keys[j] }

func (s *keyedSorter[T]) Swap(i, j int) {
	s.items[i], s.items[j] = s.items[j], s.items[i]
	s.keys[i], s.keys[j] = s.keys[j], s.keys[i]
}

func sortByKeys[T any](items []T, keys []string, reverse bool) {
	sorter := sort.Interface(&keyedSorter[T]{items: items, keys: keys})
	if reverse {
		sorter = sort.Reverse(sorter)
	}
	sort.Stable(sorter)
}
