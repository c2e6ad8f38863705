package token

// Kind represents the category of a Python source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Newline terminates a logical line. It is suppressed inside brackets.
	Newline
	// Indent opens an indentation block.
	Indent
	// Dedent closes an indentation block.
	Dedent

	// Ident represents an identifier token.
	Ident

	// KwClass represents the 'class' keyword.
	KwClass // class
	// KwDef represents the 'def' keyword.
	KwDef // def
	// KwAsync represents the 'async' keyword.
	KwAsync // async
	// KwAwait represents the 'await' keyword.
	KwAwait // await
	// KwPass represents the 'pass' keyword.
	KwPass // pass
	// KwReturn represents the 'return' keyword.
	KwReturn // return
	// KwImport represents the 'import' keyword.
	KwImport // import
	// KwFrom represents the 'from' keyword.
	KwFrom // from
	// KwAs represents the 'as' keyword.
	KwAs // as
	// KwIf represents the 'if' keyword.
	KwIf // if
	// KwElif represents the 'elif' keyword.
	KwElif // elif
	// KwElse represents the 'else' keyword.
	KwElse // else
	// KwFor represents the 'for' keyword.
	KwFor // for
	// KwWhile represents the 'while' keyword.
	KwWhile // while
	// KwTry represents the 'try' keyword.
	KwTry // try
	// KwExcept represents the 'except' keyword.
	KwExcept // except
	// KwFinally represents the 'finally' keyword.
	KwFinally // finally
	// KwWith represents the 'with' keyword.
	KwWith // with
	// KwRaise represents the 'raise' keyword.
	KwRaise // raise
	// KwAssert represents the 'assert' keyword.
	KwAssert // assert
	// KwDel represents the 'del' keyword.
	KwDel // del
	// KwGlobal represents the 'global' keyword.
	KwGlobal // global
	// KwNonlocal represents the 'nonlocal' keyword.
	KwNonlocal // nonlocal
	// KwLambda represents the 'lambda' keyword.
	KwLambda // lambda
	// KwYield represents the 'yield' keyword.
	KwYield // yield
	// KwBreak represents the 'break' keyword.
	KwBreak // break
	// KwContinue represents the 'continue' keyword.
	KwContinue // continue
	// KwAnd represents the 'and' keyword.
	KwAnd // and
	// KwOr represents the 'or' keyword.
	KwOr // or
	// KwNot represents the 'not' keyword.
	KwNot // not
	// KwIn represents the 'in' keyword.
	KwIn // in
	// KwIs represents the 'is' keyword.
	KwIs // is
	// KwNone represents the 'None' literal keyword.
	KwNone // None
	// KwTrue represents the 'True' literal keyword.
	KwTrue // True
	// KwFalse represents the 'False' literal keyword.
	KwFalse // False

	// IntLit represents an integer literal token.
	IntLit
	// FloatLit represents a floating point or imaginary literal token.
	FloatLit
	// StringLit represents a string or bytes literal token.
	StringLit
	// FStringLit represents a formatted string literal token.
	FStringLit
	// EllipsisLit represents the '...' literal token.
	EllipsisLit

	// Plus represents the plus operator token.
	Plus // +
	// Minus represents the minus operator token.
	Minus // -
	// Star represents the star operator token.
	Star // *
	// DoubleStar represents the power operator token.
	DoubleStar // **
	// Slash represents the slash operator token.
	Slash // /
	// DoubleSlash represents the floor-division operator token.
	DoubleSlash // //
	// Percent represents the percent operator token.
	Percent // %
	// At represents the matmul operator / decorator marker token.
	At // @
	// Amp represents the amp operator token.
	Amp // &
	// Pipe represents the pipe operator token.
	Pipe // |
	// Caret represents the caret operator token.
	Caret // ^
	// Tilde represents the tilde operator token.
	Tilde // ~
	// Shl represents the left-shift operator token.
	Shl // <<
	// Shr represents the right-shift operator token.
	Shr // >>
	// Lt represents the less-than operator token.
	Lt // <
	// Gt represents the greater-than operator token.
	Gt // >
	// LtEq represents the less-or-equal operator token.
	LtEq // <=
	// GtEq represents the greater-or-equal operator token.
	GtEq // >=
	// EqEq represents the equality operator token.
	EqEq // ==
	// BangEq represents the inequality operator token.
	BangEq // !=
	// Assign represents the assignment token.
	Assign // =
	// Walrus represents the named-expression token.
	Walrus // :=
	// AugAssign represents any augmented assignment token (+=, -=, ...).
	AugAssign
	// LParen represents the left parenthesis token.
	LParen // (
	// RParen represents the right parenthesis token.
	RParen // )
	// LBracket represents the left square bracket token.
	LBracket // [
	// RBracket represents the right square bracket token.
	RBracket // ]
	// LBrace represents the left curly brace token.
	LBrace // {
	// RBrace represents the right curly brace token.
	RBrace // }
	// Comma represents the comma token.
	Comma // ,
	// Colon represents the colon token.
	Colon // :
	// Semicolon represents the semicolon token.
	Semicolon // ;
	// Dot represents the dot token.
	Dot // .
	// Arrow represents the return-annotation arrow token.
	Arrow // ->
	// Bang represents a bare '!' (valid only inside f-strings; kept for
	// tolerant scanning).
	Bang // !
)

// String returns a stable name for the kind, used in debug dumps.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

var kindNames = [...]string{
	Invalid:     "Invalid",
	EOF:         "EOF",
	Newline:     "Newline",
	Indent:      "Indent",
	Dedent:      "Dedent",
	Ident:       "Ident",
	KwClass:     "KwClass",
	KwDef:       "KwDef",
	KwAsync:     "KwAsync",
	KwAwait:     "KwAwait",
	KwPass:      "KwPass",
	KwReturn:    "KwReturn",
	KwImport:    "KwImport",
	KwFrom:      "KwFrom",
	KwAs:        "KwAs",
	KwIf:        "KwIf",
	KwElif:      "KwElif",
	KwElse:      "KwElse",
	KwFor:       "KwFor",
	KwWhile:     "KwWhile",
	KwTry:       "KwTry",
	KwExcept:    "KwExcept",
	KwFinally:   "KwFinally",
	KwWith:      "KwWith",
	KwRaise:     "KwRaise",
	KwAssert:    "KwAssert",
	KwDel:       "KwDel",
	KwGlobal:    "KwGlobal",
	KwNonlocal:  "KwNonlocal",
	KwLambda:    "KwLambda",
	KwYield:     "KwYield",
	KwBreak:     "KwBreak",
	KwContinue:  "KwContinue",
	KwAnd:       "KwAnd",
	KwOr:        "KwOr",
	KwNot:       "KwNot",
	KwIn:        "KwIn",
	KwIs:        "KwIs",
	KwNone:      "KwNone",
	KwTrue:      "KwTrue",
	KwFalse:     "KwFalse",
	IntLit:      "IntLit",
	FloatLit:    "FloatLit",
	StringLit:   "StringLit",
	FStringLit:  "FStringLit",
	EllipsisLit: "EllipsisLit",
	Plus:        "Plus",
	Minus:       "Minus",
	Star:        "Star",
	DoubleStar:  "DoubleStar",
	Slash:       "Slash",
	DoubleSlash: "DoubleSlash",
	Percent:     "Percent",
	At:          "At",
	Amp:         "Amp",
	Pipe:        "Pipe",
	Caret:       "Caret",
	Tilde:       "Tilde",
	Shl:         "Shl",
	Shr:         "Shr",
	Lt:          "Lt",
	Gt:          "Gt",
	LtEq:        "LtEq",
	GtEq:        "GtEq",
	EqEq:        "EqEq",
	BangEq:      "BangEq",
	Assign:      "Assign",
	Walrus:      "Walrus",
	AugAssign:   "AugAssign",
	LParen:      "LParen",
	RParen:      "RParen",
	LBracket:    "LBracket",
	RBracket:    "RBracket",
	LBrace:      "LBrace",
	RBrace:      "RBrace",
	Comma:       "Comma",
	Colon:       "Colon",
	Semicolon:   "Semicolon",
	Dot:         "Dot",
	Arrow:       "Arrow",
	Bang:        "Bang",
}
