// Package parser implements the recursive-descent, precedence-climbing
// parser that turns a token stream into an ordered sequence of
// statement ASTs.
//
//	program    = stmt*
//	stmt       = expr ";"
//	expr       = assign
//	assign     = equality ("=" assign)?
//	equality   = relational (("==" | "!=") relational)*
//	relational = add (("<" | "<=" | ">" | ">=") add)*
//	add        = mul (("+" | "-") mul)*
//	mul        = unary (("*" | "/") unary)*
//	unary      = ("+" | "-")? primary
//	primary    = "(" expr ")" | ident | num
package parser

import (
	"github.com/ysakasin/ninecc/ast"
	"github.com/ysakasin/ninecc/compileerr"
	"github.com/ysakasin/ninecc/symtab"
	"github.com/ysakasin/ninecc/token"
)

// Parser threads a cursor over the token stream and the symbol table
// being built up as identifiers are bound, mirroring the single
// mutable-cursor design the reference implementation uses.
type Parser struct {
	tokens []token.Token
	pos    int
	syms   *symtab.Table
}

// New builds a Parser over an already-tokenized input.
func New(tokens []token.Token) *Parser {
	return &Parser{tokens: tokens, syms: symtab.New()}
}

// Symbols returns the symbol table accumulated while parsing. Valid
// only after Program has returned.
func (p *Parser) Symbols() *symtab.Table {
	return p.syms
}

func (p *Parser) atEnd() bool {
	return p.pos >= len(p.tokens)
}

func (p *Parser) front() (token.Token, bool) {
	if p.atEnd() {
		return token.Token{}, false
	}
	return p.tokens[p.pos], true
}

// consumeOp pops the front token if it is a Reserved token matching
// literal exactly, reporting whether it did.
func (p *Parser) consumeOp(literal string) bool {
	tok, ok := p.front()
	if !ok || tok.Kind != token.Reserved || tok.Lexeme != literal {
		return false
	}
	p.pos++
	return true
}

// expectOp consumes literal or fails with a Parse-stage error.
func (p *Parser) expectOp(literal string) error {
	if p.consumeOp(literal) {
		return nil
	}
	return compileerr.Parsef("expected %q", literal)
}

// Program parses program = stmt* and returns the ordered statement
// forest, or the first parse failure encountered.
func Program(tokens []token.Token) ([]*ast.Node, error) {
	return New(tokens).Program()
}

// Program runs program = stmt* against the Parser's own token cursor,
// leaving Symbols() populated with every identifier bound along the
// way.
func (p *Parser) Program() ([]*ast.Node, error) {
	var code []*ast.Node
	for !p.atEnd() {
		n, err := p.stmt()
		if err != nil {
			return nil, err
		}
		code = append(code, n)
	}
	return code, nil
}

// stmt = expr ";"
func (p *Parser) stmt() (*ast.Node, error) {
	n, err := p.expr()
	if err != nil {
		return nil, err
	}
	if err := p.expectOp(";"); err != nil {
		return nil, compileerr.Parsef("statement must end with ';'")
	}
	return n, nil
}

// expr = assign
func (p *Parser) expr() (*ast.Node, error) {
	return p.assign()
}

// assign = equality ("=" assign)?  -- right-associative
func (p *Parser) assign() (*ast.Node, error) {
	n, err := p.equality()
	if err != nil {
		return nil, err
	}
	if p.consumeOp("=") {
		if n.Kind != ast.LVar {
			return nil, compileerr.Parsef("left-hand side of '=' must be a variable")
		}
		rhs, err := p.assign()
		if err != nil {
			return nil, err
		}
		return ast.NewBinary(ast.Assign, n, rhs), nil
	}
	return n, nil
}

// equality = relational (("==" | "!=") relational)*
func (p *Parser) equality() (*ast.Node, error) {
	n, err := p.relational()
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case p.consumeOp("=="):
			rhs, err := p.relational()
			if err != nil {
				return nil, err
			}
			n = ast.NewBinary(ast.Eq, n, rhs)
		case p.consumeOp("!="):
			rhs, err := p.relational()
			if err != nil {
				return nil, err
			}
			n = ast.NewBinary(ast.Ne, n, rhs)
		default:
			return n, nil
		}
	}
}

// relational = add (("<" | "<=" | ">" | ">=") add)*
//
// ">" and ">=" are desugared by swapping operands and reusing Lt/Le,
// so only four comparison kinds exist in the AST.
func (p *Parser) relational() (*ast.Node, error) {
	n, err := p.add()
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case p.consumeOp("<="):
			rhs, err := p.add()
			if err != nil {
				return nil, err
			}
			n = ast.NewBinary(ast.Le, n, rhs)
		case p.consumeOp("<"):
			rhs, err := p.add()
			if err != nil {
				return nil, err
			}
			n = ast.NewBinary(ast.Lt, n, rhs)
		case p.consumeOp(">="):
			rhs, err := p.add()
			if err != nil {
				return nil, err
			}
			n = ast.NewBinary(ast.Le, rhs, n)
		case p.consumeOp(">"):
			rhs, err := p.add()
			if err != nil {
				return nil, err
			}
			n = ast.NewBinary(ast.Lt, rhs, n)
		default:
			return n, nil
		}
	}
}

// add = mul (("+" | "-") mul)*
func (p *Parser) add() (*ast.Node, error) {
	n, err := p.mul()
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case p.consumeOp("+"):
			rhs, err := p.mul()
			if err != nil {
				return nil, err
			}
			n = ast.NewBinary(ast.Add, n, rhs)
		case p.consumeOp("-"):
			rhs, err := p.mul()
			if err != nil {
				return nil, err
			}
			n = ast.NewBinary(ast.Sub, n, rhs)
		default:
			return n, nil
		}
	}
}

// mul = unary (("*" | "/") unary)*
func (p *Parser) mul() (*ast.Node, error) {
	n, err := p.unary()
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case p.consumeOp("*"):
			rhs, err := p.unary()
			if err != nil {
				return nil, err
			}
			n = ast.NewBinary(ast.Mul, n, rhs)
		case p.consumeOp("/"):
			rhs, err := p.unary()
			if err != nil {
				return nil, err
			}
			n = ast.NewBinary(ast.Div, n, rhs)
		default:
			return n, nil
		}
	}
}

// unary = ("+" | "-")? primary
//
// Unary "+x" yields x unchanged; unary "-x" yields Sub(Num(0), x) --
// there is no dedicated negation node.
func (p *Parser) unary() (*ast.Node, error) {
	switch {
	case p.consumeOp("+"):
		return p.primary()
	case p.consumeOp("-"):
		rhs, err := p.primary()
		if err != nil {
			return nil, err
		}
		return ast.NewBinary(ast.Sub, ast.NewNum(0), rhs), nil
	default:
		return p.primary()
	}
}

// primary = "(" expr ")" | ident | num
func (p *Parser) primary() (*ast.Node, error) {
	if p.consumeOp("(") {
		n, err := p.expr()
		if err != nil {
			return nil, err
		}
		if !p.consumeOp(")") {
			return nil, compileerr.Parsef("expected ')'")
		}
		return n, nil
	}

	tok, ok := p.front()
	if !ok {
		return nil, compileerr.Parsef("unexpected end of input")
	}

	switch tok.Kind {
	case token.Ident:
		p.pos++
		return ast.NewLVar(p.syms.Offset(tok.Lexeme)), nil
	case token.Num:
		p.pos++
		return ast.NewNum(tok.Value), nil
	default:
		return nil, compileerr.Parsef("unexpected token %q", tok.Lexeme)
	}
}
