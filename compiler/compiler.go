// The compiler package contains the core of our compiler.
//
// In brief we go through a three-step process:
//
//  1. Use the lexer to tokenize the expression.
//
//  2. Feed the tokens to the parser, which produces a statement forest
//     and, as a side effect, binds every identifier it sees to a
//     stack-frame offset.
//
//  3. Walk each statement's tree, generating output for each node, and
//     wrap the result in the function prologue/epilogue.
package compiler

import (
	"strconv"
	"strings"

	"github.com/ysakasin/ninecc/ast"
	"github.com/ysakasin/ninecc/lexer"
	"github.com/ysakasin/ninecc/parser"
)

// defaultFrameSize reserves one 8-byte slot for each of the 26
// single-letter identifiers a..z (26*8 = 208), matching the fixed
// frame the reference implementation hard-codes.
const defaultFrameSize = 208

// FrameMode selects how the prologue sizes the stack frame.
type FrameMode int

const (
	// FixedFrame always reserves defaultFrameSize bytes, regardless of
	// how many locals the program actually binds.
	FixedFrame FrameMode = iota

	// FitFrame sizes the frame from the symbol table's actual length,
	// rounded up to 16 bytes for ABI alignment.
	FitFrame
)

// Option configures a Compiler.
type Option func(*Compiler)

// WithDebug toggles a debug comment banner in the emitted assembly.
func WithDebug(v bool) Option {
	return func(c *Compiler) { c.debug = v }
}

// WithFrameMode selects how the stack frame is sized.
func WithFrameMode(mode FrameMode) Option {
	return func(c *Compiler) { c.frameMode = mode }
}

// Compiler holds our object-state: the source expression and the
// options controlling how it's compiled.
type Compiler struct {
	expression string
	debug      bool
	frameMode  FrameMode
}

// New creates a new compiler over the given source program.
func New(input string, opts ...Option) *Compiler {
	c := &Compiler{expression: input}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetDebug changes the debug-flag for our output, matching the
// teacher's mutable-setter API for programs that build a Compiler
// before deciding whether to debug it.
func (c *Compiler) SetDebug(val bool) {
	c.debug = val
}

// Compile converts the input program into x86-64 assembly text, or
// returns the first lex/parse/codegen failure encountered.
func (c *Compiler) Compile() (string, error) {
	tokens, err := lexer.Tokenize(c.expression)
	if err != nil {
		return "", err
	}

	p := parser.New(tokens)
	code, err := p.Program()
	if err != nil {
		return "", err
	}

	frameSize := defaultFrameSize
	if c.frameMode == FitFrame {
		frameSize = p.Symbols().FrameSize()
	}

	body, err := c.genProgram(code)
	if err != nil {
		return "", err
	}

	return c.assemble(frameSize, body), nil
}

// genProgram walks every statement's AST, appending the per-statement
// driver's "pop rax" after each one to keep the runtime stack
// balanced; the very last pop leaves the final statement's value in
// rax, which becomes the process exit status.
func (c *Compiler) genProgram(code []*ast.Node) (string, error) {
	var b strings.Builder
	for _, n := range code {
		out, err := c.gen(n)
		if err != nil {
			return "", err
		}
		b.WriteString(out)
		b.WriteString("  pop rax\n")
	}
	return b.String(), nil
}

// assemble wraps the statement bodies with the function envelope:
// prologue (push rbp / mov rbp,rsp / sub rsp,frameSize) and epilogue
// (mov rsp,rbp / pop rbp / ret).
func (c *Compiler) assemble(frameSize int, body string) string {
	var b strings.Builder

	b.WriteString(".intel_syntax noprefix\n")
	b.WriteString(".globl main\n")
	if c.debug {
		b.WriteString("# debug: ")
		b.WriteString(strings.ReplaceAll(c.expression, "\n", " "))
		b.WriteString("\n")
	}
	b.WriteString("main:\n")
	b.WriteString("  push rbp\n")
	b.WriteString("  mov rbp, rsp\n")
	b.WriteString("  sub rsp, ")
	b.WriteString(strconv.Itoa(frameSize))
	b.WriteString("\n")

	b.WriteString(body)

	b.WriteString("  mov rsp, rbp\n")
	b.WriteString("  pop rbp\n")
	b.WriteString("  ret\n")

	return b.String()
}
