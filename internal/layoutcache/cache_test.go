package layoutcache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddEscapeCodeStaysSortedAndPrefixFree(t *testing.T) {
	c := New()
	c.AddEscapeCode("\x1b[2J")
	c.AddEscapeCode("\x1b[0m")
	c.AddEscapeCode("\x1b]0;x\x07")

	assert.True(t, sortedAndPrefixFree(c.escCache))
}

func TestAddEscapeCodeRejectsPrefixViolations(t *testing.T) {
	c := New()
	c.AddEscapeCode("\x1b[2")
	c.AddEscapeCode("\x1b[2J") // "\x1b[2" is a prefix of this, must be rejected
	assert.Equal(t, []string{"\x1b[2"}, c.escCache)

	c2 := New()
	c2.AddEscapeCode("\x1b[2J")
	c2.AddEscapeCode("\x1b[2") // this is a prefix of the existing entry
	assert.Equal(t, []string{"\x1b[2J"}, c2.escCache)
}

func TestAddEscapeCodeNoopOnDuplicate(t *testing.T) {
	c := New()
	c.AddEscapeCode("\x1b[2J")
	c.AddEscapeCode("\x1b[2J")
	assert.Equal(t, 1, len(c.escCache))
}

func TestFindEscapeCode(t *testing.T) {
	c := New()
	c.AddEscapeCode("\x1b[2J")
	assert.Equal(t, 4, c.FindEscapeCode("\x1b[2Jhello"))
	assert.Equal(t, 0, c.FindEscapeCode("\x1b[3J"))
	assert.Equal(t, 0, c.FindEscapeCode(""))
}

func TestPromptLRUEvictsOldestAndPromotesOnHit(t *testing.T) {
	c := New()
	for i := 1; i <= 9; i++ {
		c.AddPromptLayout(promptName(i), Layout{LineCount: i})
	}
	// Capacity is 8: P1 must have been evicted.
	_, ok := c.FindPromptLayout(promptName(1))
	assert.False(t, ok)
	assert.Equal(t, 8, c.Len())

	// Hitting P2 promotes it to the front.
	_, ok = c.FindPromptLayout(promptName(2))
	assert.True(t, ok)
	assert.Equal(t, promptName(2), c.promptCache[0].prompt)

	c.AddPromptLayout(promptName(10), Layout{LineCount: 10})
	// P3 (the new least-recently-used) is evicted, not P2.
	_, ok = c.FindPromptLayout(promptName(3))
	assert.False(t, ok)
	_, ok = c.FindPromptLayout(promptName(2))
	assert.True(t, ok)
}

func TestClearEmptiesBothCaches(t *testing.T) {
	c := New()
	c.AddEscapeCode("\x1b[2J")
	c.AddPromptLayout("$ ", Layout{LineCount: 1})
	c.Clear()
	assert.Equal(t, 0, len(c.escCache))
	assert.Equal(t, 0, c.Len())
}

func promptName(i int) string {
	return string(rune('A' + i))
}

func sortedAndPrefixFree(entries []string) bool {
	for i := 1; i < len(entries); i++ {
		if entries[i-1] >= entries[i] {
			return false
		}
	}
	for i := range entries {
		for j := range entries {
			if i == j {
				continue
			}
			if len(entries[i]) <= len(entries[j]) && entries[j][:len(entries[i])] == entries[i] {
				return false
			}
		}
	}
	return true
}
