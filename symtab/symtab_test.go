package symtab

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOffsetAssignsInInsertionOrder(t *testing.T) {
	tab := New()

	assert.Equal(t, 8, tab.Offset("a"))
	assert.Equal(t, 16, tab.Offset("b"))
	// Revisiting "a" must reuse its original offset, not allocate again.
	assert.Equal(t, 8, tab.Offset("a"))
	assert.Equal(t, 2, tab.Len())
}

func TestFindMissing(t *testing.T) {
	tab := New()
	_, ok := tab.Find("x")
	assert.False(t, ok)
}

func TestFrameSizeRoundsUpTo16(t *testing.T) {
	tab := New()
	assert.Equal(t, 0, tab.FrameSize())

	tab.Offset("a")
	assert.Equal(t, 16, tab.FrameSize())

	tab.Offset("b")
	assert.Equal(t, 16, tab.FrameSize())

	tab.Offset("c")
	assert.Equal(t, 32, tab.FrameSize())
}
