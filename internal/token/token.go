package token

import (
	"pyfieldlint/internal/source"
)

// Token represents a single source token with its location and trivia.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia
}

// IsLiteral reports whether the token is a numeric, string, or singleton
// literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, FloatLit, StringLit, FStringLit, EllipsisLit, KwNone, KwTrue, KwFalse:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a Python keyword.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case KwClass, KwDef, KwAsync, KwAwait, KwPass, KwReturn, KwImport, KwFrom,
		KwAs, KwIf, KwElif, KwElse, KwFor, KwWhile, KwTry, KwExcept, KwFinally,
		KwWith, KwRaise, KwAssert, KwDel, KwGlobal, KwNonlocal, KwLambda,
		KwYield, KwBreak, KwContinue, KwAnd, KwOr, KwNot, KwIn, KwIs,
		KwNone, KwTrue, KwFalse:
		return true
	default:
		return false
	}
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// OpensLine reports whether the token can only appear at the start of a
// logical line in the shapes this tool parses.
func (t Token) OpensLine() bool {
	switch t.Kind {
	case KwClass, KwDef, At:
		return true
	default:
		return false
	}
}
