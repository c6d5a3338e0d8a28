package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewNumIsLeaf(t *testing.T) {
	n := NewNum(7)
	assert.True(t, n.IsLeaf())
	assert.Equal(t, int64(7), n.Val)
	assert.Nil(t, n.Lhs)
	assert.Nil(t, n.Rhs)
}

func TestNewLVarIsLeaf(t *testing.T) {
	n := NewLVar(16)
	assert.True(t, n.IsLeaf())
	assert.Equal(t, 16, n.Offset)
}

func TestNewBinaryOwnsBothChildren(t *testing.T) {
	n := NewBinary(Add, NewNum(1), NewNum(2))
	assert.False(t, n.IsLeaf())
	assert.Equal(t, Add, n.Kind)
	assert.Equal(t, int64(1), n.Lhs.Val)
	assert.Equal(t, int64(2), n.Rhs.Val)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "Add", Add.String())
	assert.Equal(t, "Assign", Assign.String())
	assert.Equal(t, "LVar", LVar.String())
	assert.Equal(t, "Nil", Nil.String())
}
