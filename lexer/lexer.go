// Package lexer turns a source string into a stream of tokens.
package lexer

import (
	"strconv"
	"strings"

	"github.com/ysakasin/ninecc/compileerr"
	"github.com/ysakasin/ninecc/token"
)

// twoCharOps are tried before their one-character prefixes.
var twoCharOps = []string{"==", "!=", "<=", ">="}

// oneCharOps is the fixed single-character alphabet.
const oneCharOps = "=<>+-*/();"

// Lexer holds our object-state: a cursor over the rune slice of the
// original input.
type Lexer struct {
	position     int    // current character position
	readPosition int    // next character position
	ch           rune   // current character
	characters   []rune // rune slice of input string
}

// New builds a Lexer instance from the full source string.
func New(input string) *Lexer {
	l := &Lexer{characters: []rune(input)}
	l.readChar()
	return l
}

// read one character forward
func (l *Lexer) readChar() {
	if l.readPosition >= len(l.characters) {
		l.ch = rune(0)
	} else {
		l.ch = l.characters[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition++
}

func (l *Lexer) peekChar() rune {
	if l.readPosition >= len(l.characters) {
		return rune(0)
	}
	return l.characters[l.readPosition]
}

func isWhitespace(ch rune) bool {
	return ch == rune(' ') || ch == rune('\t') || ch == rune('\n') || ch == rune('\r')
}

func isDigit(ch rune) bool {
	return rune('0') <= ch && ch <= rune('9')
}

func isAlpha(ch rune) bool {
	return (rune('a') <= ch && ch <= rune('z')) || (rune('A') <= ch && ch <= rune('Z'))
}

func isAlnum(ch rune) bool {
	return isAlpha(ch) || isDigit(ch)
}

func (l *Lexer) skipWhitespace() {
	for isWhitespace(l.ch) {
		l.readChar()
	}
}

// NextToken reads the next token, skipping leading whitespace. It
// returns a token.EOF token with a nil error once the input is
// exhausted; any lexical failure is returned as a *compileerr.Error.
func (l *Lexer) NextToken() (token.Token, error) {
	l.skipWhitespace()

	switch {
	case l.ch == rune(0):
		return token.Token{Kind: token.EOF}, nil

	case isAlpha(l.ch):
		return l.readIdentifier(), nil

	case isDigit(l.ch):
		return l.readNumber()

	default:
		return l.readOperator()
	}
}

// readIdentifier greedily consumes ASCII-alphanumeric characters
// starting from an ASCII-alphabetic one.
func (l *Lexer) readIdentifier() token.Token {
	var b strings.Builder
	for isAlnum(l.ch) {
		b.WriteRune(l.ch)
		l.readChar()
	}
	return token.NewIdent(b.String())
}

// readNumber greedily consumes digits and decodes them as a signed
// 64-bit integer.
func (l *Lexer) readNumber() (token.Token, error) {
	var b strings.Builder
	for isDigit(l.ch) {
		b.WriteRune(l.ch)
		l.readChar()
	}
	lit := b.String()
	v, err := strconv.ParseInt(lit, 10, 64)
	if err != nil {
		return token.Token{}, compileerr.InvalidNumberErr(lit)
	}
	return token.NewNum(v, lit), nil
}

// readOperator tries the two-character operators before their
// one-character prefixes, then falls back to the fixed one-character
// alphabet. Anything else is a lexing failure.
func (l *Lexer) readOperator() (token.Token, error) {
	two := string([]rune{l.ch, l.peekChar()})
	for _, op := range twoCharOps {
		if two == op {
			l.readChar()
			l.readChar()
			return token.NewReserved(op), nil
		}
	}

	if l.ch == '!' {
		// A lone "!" (i.e. not followed by "=") is invalid.
		return token.Token{}, compileerr.InvalidOperatorErr(l.ch)
	}

	if strings.ContainsRune(oneCharOps, l.ch) {
		op := string(l.ch)
		l.readChar()
		return token.NewReserved(op), nil
	}

	rest := string(l.characters[l.position:])
	return token.Token{}, compileerr.InvalidSyntaxErr(rest)
}

// Tokenize fully drains a Lexer over input into an ordered slice of
// tokens (EOF excluded), or returns the first lexing failure
// encountered.
func Tokenize(input string) ([]token.Token, error) {
	l := New(input)
	var tokens []token.Token
	for {
		tok, err := l.NextToken()
		if err != nil {
			return nil, err
		}
		if tok.Kind == token.EOF {
			return tokens, nil
		}
		tokens = append(tokens, tok)
	}
}
