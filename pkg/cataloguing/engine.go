// Package cataloguing normalizes and sorts bibliographic titles and author
// names. It produces display-cased text following title-capitalization
// conventions and canonical sort keys that strip leading articles, expand
// numerals into words, and reorder author names into "Last, First" form.
package cataloguing

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// keyCacheSize is the maximum number of cached sort keys. Entries are small
// strings; 64k of them stay well under 10MB.
const keyCacheSize = 65_536

// Config controls engine behavior.
type Config struct {
	// HandlePrefixes enables Mc/Mac name-prefix capitalization
	// ("mcdonald" → "McDonald").
	HandlePrefixes bool
	// SmartNumbers expands digit runs into words in sortable titles
	// ("3" → "three").
	SmartNumbers bool
	// Cache enables LRU caching of derived sort keys.
	Cache bool
}

// DefaultConfig returns the standard configuration: prefix handling, smart
// numbers, and caching all enabled.
func DefaultConfig() Config {
	return Config{
		HandlePrefixes: true,
		SmartNumbers:   true,
		Cache:          true,
	}
}

// Engine applies the capitalization and sort-key rules against the lookup
// sets of a Registry. Engines are cheap to create and safe for concurrent
// use.
type Engine struct {
	lists          *Registry
	handlePrefixes bool
	smartNumbers   bool
	keys           *lru.Cache[string, string]
}

// New creates an engine with DefaultConfig.
func New(lists *Registry) *Engine {
	return NewWithConfig(lists, DefaultConfig())
}

// NewWithConfig creates an engine with the given configuration.
func NewWithConfig(lists *Registry, cfg Config) *Engine {
	e := &Engine{
		lists:          lists,
		handlePrefixes: cfg.HandlePrefixes,
		smartNumbers:   cfg.SmartNumbers,
	}
	if cfg.Cache {
		e.keys, _ = lru.New[string, string](keyCacheSize)
	}
	return e
}

// Registry returns the lookup registry the engine reads from.
func (e *Engine) Registry() *Registry {
	return e.lists
}

// CacheEnabled reports whether sort-key caching is enabled.
func (e *Engine) CacheEnabled() bool {
	return e.keys != nil
}

// CacheLen returns the number of cached sort keys (0 when disabled).
func (e *Engine) CacheLen() int {
	if e.keys == nil {
		return 0
	}
	return e.keys.Len()
}

// ClearCache drops all cached sort keys.
func (e *Engine) ClearCache() {
	if e.keys != nil {
		e.keys.Purge()
	}
}
