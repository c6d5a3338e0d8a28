package parser

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ysakasin/ninecc/ast"
	"github.com/ysakasin/ninecc/lexer"
)

func parseOne(t *testing.T, src string) *ast.Node {
	t.Helper()
	toks, err := lexer.Tokenize(src)
	require.NoError(t, err)
	nodes, err := Program(toks)
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	return nodes[0]
}

func TestAddAssociatesLeft(t *testing.T) {
	got := parseOne(t, "1 + 2 - 3;")
	want := ast.NewBinary(ast.Sub,
		ast.NewBinary(ast.Add, ast.NewNum(1), ast.NewNum(2)),
		ast.NewNum(3),
	)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("AST mismatch (-want +got):\n%s", diff)
	}
}

func TestMulBindsTighterThanAdd(t *testing.T) {
	got := parseOne(t, "1 + 2 * 3;")
	want := ast.NewBinary(ast.Add,
		ast.NewNum(1),
		ast.NewBinary(ast.Mul, ast.NewNum(2), ast.NewNum(3)),
	)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("AST mismatch (-want +got):\n%s", diff)
	}
}

func TestAssignAssociatesRight(t *testing.T) {
	got := parseOne(t, "a = b = 1;")
	want := ast.NewBinary(ast.Assign,
		ast.NewLVar(8),
		ast.NewBinary(ast.Assign, ast.NewLVar(16), ast.NewNum(1)),
	)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("AST mismatch (-want +got):\n%s", diff)
	}
}

func TestUnaryMinusDesugarsToSubFromZero(t *testing.T) {
	got := parseOne(t, "-3*+5 + 20;")
	want := ast.NewBinary(ast.Add,
		ast.NewBinary(ast.Mul,
			ast.NewBinary(ast.Sub, ast.NewNum(0), ast.NewNum(3)),
			ast.NewNum(5),
		),
		ast.NewNum(20),
	)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("AST mismatch (-want +got):\n%s", diff)
	}
}

func TestGreaterThanDesugarsToLessWithSwappedOperands(t *testing.T) {
	got := parseOne(t, "1 > 2;")
	want := ast.NewBinary(ast.Lt, ast.NewNum(2), ast.NewNum(1))
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("AST mismatch (-want +got):\n%s", diff)
	}
}

func TestGreaterEqualDesugarsToLessEqualWithSwappedOperands(t *testing.T) {
	got := parseOne(t, "1 >= 2;")
	want := ast.NewBinary(ast.Le, ast.NewNum(2), ast.NewNum(1))
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("AST mismatch (-want +got):\n%s", diff)
	}
}

func TestLocalVariablesReuseOffsetOnSecondOccurrence(t *testing.T) {
	toks, err := lexer.Tokenize("a = 2 * 3; b = 3 + -2; a * b;")
	require.NoError(t, err)
	nodes, err := Program(toks)
	require.NoError(t, err)
	require.Len(t, nodes, 3)

	third := nodes[2]
	assert.Equal(t, ast.Mul, third.Kind)
	assert.Equal(t, 8, third.Lhs.Offset)
	assert.Equal(t, 16, third.Rhs.Offset)
}

func TestParenthesesOverridePrecedence(t *testing.T) {
	got := parseOne(t, "(1+2)*3;")
	want := ast.NewBinary(ast.Mul,
		ast.NewBinary(ast.Add, ast.NewNum(1), ast.NewNum(2)),
		ast.NewNum(3),
	)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("AST mismatch (-want +got):\n%s", diff)
	}
}

func TestMultipleStatements(t *testing.T) {
	toks, err := lexer.Tokenize("1 + 2; 3 + -4 * 3;")
	require.NoError(t, err)
	nodes, err := Program(toks)
	require.NoError(t, err)
	require.Len(t, nodes, 2)
}

func TestMissingSemicolonIsFatal(t *testing.T) {
	toks, err := lexer.Tokenize("1 + 1")
	require.NoError(t, err)
	_, err = Program(toks)
	assert.Error(t, err)
}

func TestMissingCloseParenIsFatal(t *testing.T) {
	toks, err := lexer.Tokenize("(1 + 1;")
	require.NoError(t, err)
	_, err = Program(toks)
	assert.Error(t, err)
}

func TestAssignToNonLValueIsFatal(t *testing.T) {
	toks, err := lexer.Tokenize("1 = 2;")
	require.NoError(t, err)
	_, err = Program(toks)
	assert.Error(t, err)
}

func TestParsingIsIdempotent(t *testing.T) {
	src := "a = 2 * 3; b = 3 + -2; a * b;"

	toks1, err := lexer.Tokenize(src)
	require.NoError(t, err)
	nodes1, err := Program(toks1)
	require.NoError(t, err)

	toks2, err := lexer.Tokenize(src)
	require.NoError(t, err)
	nodes2, err := Program(toks2)
	require.NoError(t, err)

	if diff := cmp.Diff(nodes1, nodes2); diff != "" {
		t.Errorf("re-parsing the same input produced a different AST (-first +second):\n%s", diff)
	}
}
