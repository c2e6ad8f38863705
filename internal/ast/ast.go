// Package ast defines the Python-subset syntax tree the parser produces.
//
// The tree models only the shapes the checker inspects: class definitions
// with their decorators, bases, and direct body statements; function
// headers (name and decorators, bodies are skipped); annotated and plain
// assignments; and the expression forms needed to classify field defaults
// (names, attribute chains, calls with keywords, literals). Everything
// else is preserved as Other/Opaque nodes with exact spans so that
// unusual source never breaks the analysis of its neighbours.
package ast

import (
	"pyfieldlint/internal/source"
)

// Module is the root of one parsed source file.
type Module struct {
	File source.FileID
	Body []Stmt
}

// Stmt is a statement in a module, class, or (skipped) function body.
type Stmt interface {
	Span() source.Span
	stmtNode()
}

// ClassDef is a class definition with its header and direct body.
type ClassDef struct {
	Sp         source.Span // from the first decorator or 'class' through the header colon
	Name       string
	NameSpan   source.Span
	Decorators []Expr
	Bases      []Expr    // positional bases in source order
	Keywords   []Keyword // header keywords such as metaclass=...
	Body       []Stmt
}

// FuncDef is a function or method definition. Only the header survives;
// the body is skipped wholesale, so assignments inside it are invisible.
type FuncDef struct {
	Sp         source.Span
	Name       string
	Async      bool
	Decorators []Expr
}

// AnnAssign is `name: annotation [= value]` with a simple name target.
type AnnAssign struct {
	Sp         source.Span
	Name       string
	NameSpan   source.Span
	Annotation Expr
	Value      Expr // nil when the field has no default
}

// Assign is a plain (unannotated) assignment statement.
type Assign struct {
	Sp source.Span
}

// Other is any statement the checker has no interest in: docstrings,
// imports, control flow, and anything that failed to parse cleanly.
type Other struct {
	Sp source.Span
}

func (s *ClassDef) Span() source.Span  { return s.Sp }
func (s *FuncDef) Span() source.Span   { return s.Sp }
func (s *AnnAssign) Span() source.Span { return s.Sp }
func (s *Assign) Span() source.Span    { return s.Sp }
func (s *Other) Span() source.Span     { return s.Sp }

func (*ClassDef) stmtNode()  {}
func (*FuncDef) stmtNode()   {}
func (*AnnAssign) stmtNode() {}
func (*Assign) stmtNode()    {}
func (*Other) stmtNode()     {}
