package ansi

import (
	"bytes"
	"testing"

	"github.com/kelvinrow/screenline/internal/model"
	"github.com/kelvinrow/screenline/internal/termcap"
	"github.com/stretchr/testify/assert"
)

func TestWriterMoveUpNoopWithoutCapability(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, termcap.Capabilities{})
	assert.NoError(t, w.MoveUp(2))
	assert.NoError(t, w.Flush())
	assert.Empty(t, buf.String())
}

func TestWriterMoveUpRepeatsCapability(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, termcap.Capabilities{CursorUp: "\x1b[A"})
	assert.NoError(t, w.MoveUp(3))
	assert.NoError(t, w.Flush())
	assert.Equal(t, "\x1b[A\x1b[A\x1b[A", buf.String())
}

func TestWriterMoveDownNoopWithZeroCount(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, termcap.Capabilities{CursorDown: "\x1b[B"})
	assert.NoError(t, w.MoveDown(0))
	assert.NoError(t, w.Flush())
	assert.Empty(t, buf.String())
}

func TestWriterMoveLeftAndRight(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, termcap.Capabilities{CursorLeft: "\x1b[D", CursorRight: "\x1b[C"})
	assert.NoError(t, w.MoveLeft(2))
	assert.NoError(t, w.MoveRight(1))
	assert.NoError(t, w.Flush())
	assert.Equal(t, "\x1b[D\x1b[D\x1b[C", buf.String())
}

func TestWriterSetStyleEmptyResetsAttributes(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, termcap.Capabilities{ExitAttributeMode: "\x1b[0m"})
	assert.NoError(t, w.SetStyle(model.NewStyle()))
	assert.NoError(t, w.Flush())
	assert.Equal(t, "\x1b[0m", buf.String())
}

func TestWriterSetStyleForeground(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, termcap.Capabilities{SetAForeground: "setaf"})
	assert.NoError(t, w.SetStyle(model.NewStyleWithFg(model.ColorRed)))
	assert.NoError(t, w.Flush())
	assert.Contains(t, buf.String(), "38;5;")
}

func TestWriterCarriageReturnFallback(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, termcap.Capabilities{})
	assert.NoError(t, w.CarriageReturn())
	assert.NoError(t, w.Flush())
	assert.Equal(t, "\r", buf.String())
}

func TestWriterClrEOLNoopWithoutCapability(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, termcap.Capabilities{})
	assert.NoError(t, w.ClrEOL())
	assert.NoError(t, w.Flush())
	assert.Empty(t, buf.String())
}
