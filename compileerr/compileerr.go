// Package compileerr gives the three pipeline stages (lexing, parsing,
// code generation) a single error shape so the CLI layer has exactly
// one place to decide whether to abort the process.
package compileerr

import (
	"fmt"

	"github.com/pkg/errors"
)

// Stage identifies which pipeline phase raised an Error.
type Stage string

const (
	Lex     Stage = "lex"
	Parse   Stage = "parse"
	Codegen Stage = "codegen"
)

// LexKind refines a Lex-stage Error into the three failure kinds the
// lexer can raise.
type LexKind string

const (
	InvalidOperator LexKind = "invalid_operator"
	InvalidNumber   LexKind = "invalid_number"
	InvalidSyntax   LexKind = "invalid_syntax"
)

// Error wraps a stage-tagged compiler failure. Cause, when non-nil, is
// preserved with a stack trace via github.com/pkg/errors so the
// original failure site can be recovered in tests or logs.
type Error struct {
	Stage Stage
	Kind  LexKind // only set when Stage == Lex
	Msg   string
	Cause error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %s", e.Stage, e.Msg, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Stage, e.Msg)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Lexf builds a Lex-stage error with no specific LexKind.
func Lexf(format string, args ...interface{}) error {
	msg := fmt.Sprintf(format, args...)
	return &Error{Stage: Lex, Msg: msg, Cause: errors.New(msg)}
}

// InvalidOperatorErr reports a lone operator character that does not
// form part of any recognised token, e.g. a bare "!".
func InvalidOperatorErr(ch rune) error {
	msg := fmt.Sprintf("invalid character: %c", ch)
	return &Error{Stage: Lex, Kind: InvalidOperator, Msg: msg, Cause: errors.New(msg)}
}

// InvalidNumberErr reports a digit run that could not be parsed as a
// signed 64-bit integer.
func InvalidNumberErr(literal string) error {
	msg := fmt.Sprintf("invalid number: %s", literal)
	return &Error{Stage: Lex, Kind: InvalidNumber, Msg: msg, Cause: errors.New(msg)}
}

// InvalidSyntaxErr reports a character outside the recognised lexical
// alphabet entirely.
func InvalidSyntaxErr(rest string) error {
	msg := fmt.Sprintf("failed to tokenize at: %s", rest)
	return &Error{Stage: Lex, Kind: InvalidSyntax, Msg: msg, Cause: errors.New(msg)}
}

// Parsef builds a Parse-stage error.
func Parsef(format string, args ...interface{}) error {
	msg := fmt.Sprintf(format, args...)
	return &Error{Stage: Parse, Msg: msg, Cause: errors.New(msg)}
}

// Codegenf builds a Codegen-stage error.
func Codegenf(format string, args ...interface{}) error {
	msg := fmt.Sprintf(format, args...)
	return &Error{Stage: Codegen, Msg: msg, Cause: errors.New(msg)}
}

// Wrap attaches stage context to an existing error, preserving its
// stack trace.
func Wrap(stage Stage, err error, msg string) error {
	if err == nil {
		return nil
	}
	return &Error{Stage: stage, Msg: msg, Cause: errors.WithMessage(err, msg)}
}
