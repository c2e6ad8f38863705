package ast

import (
	"strings"

	"pyfieldlint/internal/source"
)

// Expr is an expression node.
type Expr interface {
	Span() source.Span
	exprNode()
}

// Name is a bare identifier.
type Name struct {
	Sp source.Span
	ID string
}

// Attribute is `value.attr`.
type Attribute struct {
	Sp    source.Span
	Value Expr
	Attr  string
}

// Call is `func(args..., keywords...)`.
type Call struct {
	Sp       source.Span
	Func     Expr
	Args     []Expr
	Keywords []Keyword
}

// Keyword is one `name=value` argument; Name is empty for `**kwargs`.
type Keyword struct {
	Sp    source.Span
	Name  string
	Value Expr
}

// StringLit is one string literal, with adjacent literals already
// concatenated. Value holds the unquoted text (escape sequences are kept
// verbatim; the checker only ever asks whether Value is empty).
type StringLit struct {
	Sp      source.Span
	Raw     string
	Value   string
	FString bool
}

// NumberLit is an integer, float, or imaginary literal.
type NumberLit struct {
	Sp  source.Span
	Raw string
}

// ConstKind enumerates the singleton literals.
type ConstKind uint8

const (
	ConstNone ConstKind = iota
	ConstTrue
	ConstFalse
	ConstEllipsis
)

// ConstLit is None, True, False, or Ellipsis.
type ConstLit struct {
	Sp   source.Span
	Kind ConstKind
}

// Subscript is `value[...]`; the index is not retained.
type Subscript struct {
	Sp    source.Span
	Value Expr
}

// CollectionKind enumerates display literals.
type CollectionKind uint8

const (
	CollectionList CollectionKind = iota
	CollectionTuple
	CollectionDictOrSet
)

// Collection is a list, tuple, dict, or set display. Elements are not
// retained; for field defaults a display is simply a non-Field literal.
type Collection struct {
	Sp   source.Span
	Kind CollectionKind
}

// Opaque is any expression shape the checker does not model: operators,
// comprehensions, lambdas, conditionals, unparseable text.
type Opaque struct {
	Sp source.Span
}

func (e *Name) Span() source.Span       { return e.Sp }
func (e *Attribute) Span() source.Span  { return e.Sp }
func (e *Call) Span() source.Span       { return e.Sp }
func (e *StringLit) Span() source.Span  { return e.Sp }
func (e *NumberLit) Span() source.Span  { return e.Sp }
func (e *ConstLit) Span() source.Span   { return e.Sp }
func (e *Subscript) Span() source.Span  { return e.Sp }
func (e *Collection) Span() source.Span { return e.Sp }
func (e *Opaque) Span() source.Span     { return e.Sp }

func (*Name) exprNode()       {}
func (*Attribute) exprNode()  {}
func (*Call) exprNode()       {}
func (*StringLit) exprNode()  {}
func (*NumberLit) exprNode()  {}
func (*ConstLit) exprNode()   {}
func (*Subscript) exprNode()  {}
func (*Collection) exprNode() {}
func (*Opaque) exprNode()     {}

// IsLiteral reports whether e is a literal display or constant.
func IsLiteral(e Expr) bool {
	switch e.(type) {
	case *StringLit, *NumberLit, *ConstLit, *Collection:
		return true
	default:
		return false
	}
}

// DottedName flattens a Name or a chain of Attribute accesses over a Name
// into its dotted spelling ("pydantic.Field"). Subscripted values unwrap
// to their base, so `Generic[T]` yields "Generic".
func DottedName(e Expr) (string, bool) {
	switch v := e.(type) {
	case *Name:
		return v.ID, true
	case *Attribute:
		base, ok := DottedName(v.Value)
		if !ok {
			return "", false
		}
		return base + "." + v.Attr, true
	case *Subscript:
		return DottedName(v.Value)
	default:
		return "", false
	}
}

// CalleeName returns the dotted name of a call's target; for decorator
// factories like `validator("x")` the callee of the outer call is used.
func CalleeName(e Expr) (string, bool) {
	if c, ok := e.(*Call); ok {
		return DottedName(c.Func)
	}
	return DottedName(e)
}

// LastSegment returns the final component of a dotted name.
func LastSegment(dotted string) string {
	if i := strings.LastIndexByte(dotted, '.'); i >= 0 {
		return dotted[i+1:]
	}
	return dotted
}

// NameIs reports whether a dotted name equals target as a bare name or by
// its last dotted segment ("Field" matches both "Field" and
// "pydantic.Field"). This single matcher serves the classifier and the
// field rules alike.
func NameIs(dotted, target string) bool {
	return dotted == target || LastSegment(dotted) == target
}
