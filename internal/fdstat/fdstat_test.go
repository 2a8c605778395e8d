package fdstat

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTakeAndEqualForSameFile(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "fdstat")
	assert.NoError(t, err)
	defer f.Close()

	a := Take(int(f.Fd()))
	b := Take(int(f.Fd()))
	assert.True(t, a.Equal(b))
}

func TestTakeInvalidDescriptor(t *testing.T) {
	s := Take(-1)
	assert.False(t, s.Equal(s))
}

func TestForeignOutputDetection(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "fdstat")
	assert.NoError(t, err)
	defer f.Close()

	pair := TakePair(int(f.Fd()))
	pair.CompleteAfterWrite(int(f.Fd()))
	assert.False(t, pair.ForeignOutputSince(int(f.Fd())))

	_, err = f.WriteString("some other process wrote this")
	assert.NoError(t, err)
	assert.True(t, pair.ForeignOutputSince(int(f.Fd())))
}

func TestForeignOutputWithNoPriorRenderIsFalse(t *testing.T) {
	var pair Pair
	assert.False(t, pair.ForeignOutputSince(0))
}
