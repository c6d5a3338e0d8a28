// generator.go contains the per-AST-node code for emitting assembly.
//
// Every expression evaluation leaves exactly one 64-bit value on the
// runtime stack; every binary operator pops its two operands into rdi
// (right) and rax (left), computes into rax, and pushes rax back.

package compiler

import (
	"fmt"
	"strings"

	"github.com/ysakasin/ninecc/ast"
	"github.com/ysakasin/ninecc/compileerr"
)

// gen recursively emits code for n, leaving its value on top of the
// runtime stack.
func (c *Compiler) gen(n *ast.Node) (string, error) {
	switch n.Kind {
	case ast.Num:
		return fmt.Sprintf("  push %d\n", n.Val), nil

	case ast.LVar:
		addr, err := c.genLval(n)
		if err != nil {
			return "", err
		}
		var b strings.Builder
		b.WriteString(addr)
		b.WriteString("  pop rax\n")
		b.WriteString("  mov rax, [rax]\n")
		b.WriteString("  push rax\n")
		return b.String(), nil

	case ast.Assign:
		lval, err := c.genLval(n.Lhs)
		if err != nil {
			return "", err
		}
		rhs, err := c.gen(n.Rhs)
		if err != nil {
			return "", err
		}
		var b strings.Builder
		b.WriteString(lval)
		b.WriteString(rhs)
		b.WriteString("  pop rdi\n")
		b.WriteString("  pop rax\n")
		b.WriteString("  mov [rax], rdi\n")
		b.WriteString("  push rdi\n")
		return b.String(), nil

	default:
		return c.genBinary(n)
	}
}

// genLval emits the *address* of an LVar node, refusing any other
// kind: the target of an assignment must be a variable.
func (c *Compiler) genLval(n *ast.Node) (string, error) {
	if n.Kind != ast.LVar {
		return "", compileerr.Codegenf("left-hand side of assignment is not a variable")
	}
	return fmt.Sprintf("  mov rax, rbp\n  sub rax, %d\n  push rax\n", n.Offset), nil
}

// genBinary emits both operands (lhs before rhs), pops them into
// rax/rdi, runs the operator-specific instructions, and pushes the
// result back.
func (c *Compiler) genBinary(n *ast.Node) (string, error) {
	lhs, err := c.gen(n.Lhs)
	if err != nil {
		return "", err
	}
	rhs, err := c.gen(n.Rhs)
	if err != nil {
		return "", err
	}

	op, err := binaryOp(n.Kind)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(lhs)
	b.WriteString(rhs)
	b.WriteString("  pop rdi\n")
	b.WriteString("  pop rax\n")
	b.WriteString(op)
	b.WriteString("  push rax\n")
	return b.String(), nil
}

// binaryOp returns the operator-specific instructions for a binary
// AST kind, operating on rax (left) and rdi (right) and leaving the
// result in rax.
func binaryOp(kind ast.Kind) (string, error) {
	switch kind {
	case ast.Add:
		return "  add rax, rdi\n", nil
	case ast.Sub:
		return "  sub rax, rdi\n", nil
	case ast.Mul:
		return "  imul rax, rdi\n", nil
	case ast.Div:
		return "  cqo\n  idiv rdi\n", nil
	case ast.Eq:
		return "  cmp rax, rdi\n  sete al\n  movzb rax, al\n", nil
	case ast.Ne:
		return "  cmp rax, rdi\n  setne al\n  movzb rax, al\n", nil
	case ast.Lt:
		return "  cmp rax, rdi\n  setl al\n  movzb rax, al\n", nil
	case ast.Le:
		return "  cmp rax, rdi\n  setle al\n  movzb rax, al\n", nil
	default:
		return "", compileerr.Codegenf("unhandled node kind %s", kind)
	}
}
