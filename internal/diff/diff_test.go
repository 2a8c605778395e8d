package diff

import (
	"bytes"
	"testing"

	"github.com/kelvinrow/screenline/internal/ansi"
	"github.com/kelvinrow/screenline/internal/model"
	"github.com/kelvinrow/screenline/internal/termcap"
	"github.com/stretchr/testify/assert"
)

func gridFromString(s string) model.Grid {
	g := model.NewGrid()
	var l model.Line
	for _, r := range s {
		l.Append(model.NewCell(r, model.NewStyle()))
	}
	g.AppendLine(l)
	return g
}

func fullCaps() termcap.Capabilities {
	return termcap.Capabilities{
		CursorUp:          "\x1b[A",
		CursorDown:        "\x1b[B",
		CursorLeft:        "\x1b[D",
		CursorRight:       "\x1b[C",
		ClrEOL:            "\x1b[K",
		ClrEOS:            "\x1b[J",
		ExitAttributeMode: "\x1b[0m",
		CarriageReturn:    "\r",
	}
}

func TestEmitWritesNewContentFromEmptyActual(t *testing.T) {
	var buf bytes.Buffer
	writer := ansi.NewWriter(&buf, fullCaps())
	desired := gridFromString("hi")

	var state State
	err := Emit(writer, desired, model.NewGrid(), model.NewCursor(2, 0), 20, fullCaps(), &state)
	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "hi")
}

func TestEmitSecondIdenticalRenderWritesNoCells(t *testing.T) {
	writerBuf := func() (*ansi.Writer, *bytes.Buffer) {
		var b bytes.Buffer
		return ansi.NewWriter(&b, fullCaps()), &b
	}

	desired := gridFromString("hi")
	var state State

	w1, b1 := writerBuf()
	err := Emit(w1, desired, model.NewGrid(), model.NewCursor(2, 0), 20, fullCaps(), &state)
	assert.NoError(t, err)
	assert.Contains(t, b1.String(), "hi")

	// Second render: actual now equals desired from the previous pass.
	w2, b2 := writerBuf()
	err = Emit(w2, desired, desired, model.NewCursor(2, 0), 20, fullCaps(), &state)
	assert.NoError(t, err)
	assert.NotContains(t, b2.String(), "h")
	assert.NotContains(t, b2.String(), "i")
}

func TestEmitClearsExtraActualRows(t *testing.T) {
	var buf bytes.Buffer
	writer := ansi.NewWriter(&buf, fullCaps())
	desired := gridFromString("hi")
	actual := model.NewGrid()
	actual.AppendLine(gridFromString("hi").Lines[0])
	actual.AppendLine(gridFromString("stale line").Lines[0])

	var state State
	err := Emit(writer, desired, actual, model.NewCursor(2, 0), 20, fullCaps(), &state)
	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "\x1b[K")
}

func TestEmitMultiRowMovesRelativelyNotAbsolutely(t *testing.T) {
	var buf bytes.Buffer
	writer := ansi.NewWriter(&buf, fullCaps())

	desired := model.NewGrid()
	desired.AppendLine(gridFromString("hi").Lines[0])
	desired.AppendLine(gridFromString("bye").Lines[0])

	var state State
	err := Emit(writer, desired, model.NewGrid(), model.NewCursor(3, 1), 20, fullCaps(), &state)
	assert.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "\x1b[B", "should move down a row with the relative capability")
	assert.NotContains(t, out, "H", "should never emit an absolute cursor-address sequence")
}

func TestEmitNeedClearScreenClearsAndResetsFlag(t *testing.T) {
	var buf bytes.Buffer
	writer := ansi.NewWriter(&buf, fullCaps())
	desired := gridFromString("hi")

	state := State{NeedClearScreen: true}
	err := Emit(writer, desired, model.NewGrid(), model.NewCursor(2, 0), 20, fullCaps(), &state)
	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "\x1b[J")
	assert.False(t, state.NeedClearScreen)
}
