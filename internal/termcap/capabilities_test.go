package termcap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKnownSequencesOmitsEmpty(t *testing.T) {
	c := Capabilities{CursorAddress: "\x1b[%d;%dH", ClrEOL: "\x1b[K"}
	got := c.KnownSequences()
	assert.ElementsMatch(t, []string{"\x1b[%d;%dH", "\x1b[K"}, got)
}

func TestSupportsSoftWrapTrick(t *testing.T) {
	cases := []struct {
		name string
		caps Capabilities
		want bool
	}{
		{"both set", Capabilities{AutoRightMargin: true, EatNewlineGlitch: true}, true},
		{"missing am", Capabilities{EatNewlineGlitch: true}, false},
		{"missing xenl", Capabilities{AutoRightMargin: true}, false},
		{"neither", Capabilities{}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.caps.SupportsSoftWrapTrick())
		})
	}
}

func TestSnapshotEqual(t *testing.T) {
	a := Capabilities{AutoRightMargin: true}.Snapshot("xterm-256color")
	b := Capabilities{AutoRightMargin: true}.Snapshot("xterm-256color")
	c := Capabilities{AutoRightMargin: false}.Snapshot("xterm-256color")
	d := Capabilities{AutoRightMargin: true}.Snapshot("screen")

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(d))
}

func TestMinimalCapabilities(t *testing.T) {
	c := minimalCapabilities()
	assert.Equal(t, "\r", c.CarriageReturn)
	assert.False(t, c.SupportsSoftWrapTrick())
}
