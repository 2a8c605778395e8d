// Package layoutcache implements the two correlated caches that make width
// and layout measurement cheap: a sorted, prefix-free index of known
// terminal escape sequences, and a small LRU of prompt string to measured
// layout.
package layoutcache

import "sort"

// promptCacheCapacity is the hard capacity of the prompt LRU.
const promptCacheCapacity = 8

// Layout is a prompt's measured line layout.
type Layout struct {
	LineCount     int
	MaxLineWidth  int
	LastLineWidth int
}

type promptEntry struct {
	prompt string
	layout Layout
}

// Cache holds the escape-sequence prefix index and the prompt layout LRU.
// A *Cache is not safe for concurrent use without external synchronization;
// the core itself runs single-threaded, so a host that shares the
// singleton across goroutines must add its own mutex.
type Cache struct {
	escCache    []string
	promptCache []promptEntry
}

// New returns an empty Cache.
func New() *Cache {
	return &Cache{}
}

// Default is the process-wide singleton: both the escape-sequence index
// and the prompt LRU live for the process and are cleared only in
// response to terminal-variable changes.
var Default = New()

// AddEscapeCode inserts s into the prefix-free sorted index. It is a no-op
// if s is already present, and it never inserts a string that would break
// the prefix-free invariant: a string that is a prefix of an existing
// entry, or that has an existing entry as its own prefix, is rejected.
func (c *Cache) AddEscapeCode(s string) {
	if s == "" {
		return
	}
	i := sort.SearchStrings(c.escCache, s)
	if i < len(c.escCache) && c.escCache[i] == s {
		return // already present
	}
	// Reject if an existing neighbor is a prefix of s, or s is a prefix of
	// an existing neighbor — either would violate prefix-freeness.
	if i > 0 && isPrefix(c.escCache[i-1], s) {
		return
	}
	if i < len(c.escCache) && isPrefix(s, c.escCache[i]) {
		return
	}
	c.escCache = append(c.escCache, "")
	copy(c.escCache[i+1:], c.escCache[i:])
	c.escCache[i] = s
}

// FindEscapeCode returns the length of the registered escape sequence that
// is a prefix of s, or 0 if none is registered. It relies on the
// prefix-free invariant: the upper-bound predecessor is the only candidate
// that could match, because a longer registered code sorts after a
// shorter one sharing the same prefix.
func (c *Cache) FindEscapeCode(s string) int {
	i := sort.Search(len(c.escCache), func(i int) bool { return c.escCache[i] > s })
	if i == 0 {
		return 0
	}
	candidate := c.escCache[i-1]
	if isPrefix(candidate, s) {
		return len(candidate)
	}
	return 0
}

func isPrefix(prefix, s string) bool {
	if len(prefix) > len(s) {
		return false
	}
	return s[:len(prefix)] == prefix
}

// FindPromptLayout returns the cached layout for prompt, promoting it to
// the front of the LRU on a hit.
func (c *Cache) FindPromptLayout(prompt string) (Layout, bool) {
	for i, e := range c.promptCache {
		if e.prompt == prompt {
			if i != 0 {
				rest := append(c.promptCache[:i:i], c.promptCache[i+1:]...)
				c.promptCache = append([]promptEntry{e}, rest...)
			}
			return e.layout, true
		}
	}
	return Layout{}, false
}

// AddPromptLayout inserts (prompt, layout) at the front of the LRU,
// evicting the least-recently-used entry if the cache would exceed its
// capacity of 8.
func (c *Cache) AddPromptLayout(prompt string, layout Layout) {
	entry := promptEntry{prompt: prompt, layout: layout}
	c.promptCache = append([]promptEntry{entry}, c.promptCache...)
	if len(c.promptCache) > promptCacheCapacity {
		c.promptCache = c.promptCache[:promptCacheCapacity]
	}
}

// Clear empties both caches. Idempotent. The host calls this whenever
// locale, $TERM, or any capability variable changes.
func (c *Cache) Clear() {
	c.escCache = nil
	c.promptCache = nil
}

// Len reports the number of cached prompt layouts, for tests.
func (c *Cache) Len() int {
	return len(c.promptCache)
}
