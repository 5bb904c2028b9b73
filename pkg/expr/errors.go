package expr

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrorKind classifies evaluation failures.
type ErrorKind int

const (
	// LexicalReject is a character that matches no token rule.
	LexicalReject ErrorKind = iota + 1
	// StackUnderflow is an operator or function applied to too few operands.
	StackUnderflow
	// UnknownSymbol is an identifier that is neither a constant nor a function.
	UnknownSymbol
	// MalformedResult is a postfix run that leaves other than one value.
	MalformedResult
	// DomainError is an argument outside an operation's domain, e.g. (-3)!.
	DomainError
	// MismatchedParens is a parenthesis without a partner.
	MismatchedParens
	// InternalFault is an unexpected panic inside the evaluator.
	InternalFault
)

var errorKindNames = map[ErrorKind]string{
	LexicalReject:    "lexical reject",
	StackUnderflow:   "stack underflow",
	UnknownSymbol:    "unknown symbol",
	MalformedResult:  "malformed result",
	DomainError:      "domain error",
	MismatchedParens: "mismatched parentheses",
	InternalFault:    "internal fault",
}

func (k ErrorKind) String() string {
	if s, ok := errorKindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Error describes why an expression could not be evaluated.
type Error struct {
	Kind ErrorKind
	// Symbol is the offending token text or character, if any.
	Symbol string
	// Pos is the 1-based rune offset of Symbol in the normalized input, or 0.
	Pos int
}

func (e *Error) Error() string {
	switch {
	case e.Symbol != "" && e.Pos > 0:
		return fmt.Sprintf("%s: %q at %d", e.Kind, e.Symbol, e.Pos)
	case e.Symbol != "":
		return fmt.Sprintf("%s: %q", e.Kind, e.Symbol)
	default:
		return e.Kind.String()
	}
}

// KindOf returns the ErrorKind of err, looking through wrapping. It returns 0
// if err is nil or was not produced by this package.
func KindOf(err error) ErrorKind {
	if err == nil {
		return 0
	}
	if e, ok := errors.Cause(err).(*Error); ok {
		return e.Kind
	}
	return 0
}

func newError(kind ErrorKind, tok Token) *Error {
	return &Error{Kind: kind, Symbol: tok.Text, Pos: tok.Pos}
}
