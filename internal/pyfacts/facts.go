// Package pyfacts condenses parsed class definitions into the flat facts
// the classifier and field rules consume. Extraction never fails: shapes
// it does not recognize simply contribute nothing.
package pyfacts

import (
	"pyfieldlint/internal/source"
)

// DefaultKind describes the shape of a field's default value.
type DefaultKind uint8

const (
	// DefaultNone means the field has no default value.
	DefaultNone DefaultKind = iota
	// DefaultFieldCall means the default is a call to Field.
	DefaultFieldCall
	// DefaultPrivateAttrCall means the default is a call to PrivateAttr.
	DefaultPrivateAttrCall
	// DefaultRelationshipCall means the default is a call to Relationship.
	DefaultRelationshipCall
	// DefaultOtherCall means the default is some other call.
	DefaultOtherCall
	// DefaultLiteral means the default is a literal or display.
	DefaultLiteral
	// DefaultOtherExpr covers every other default shape.
	DefaultOtherExpr
)

// DescriptionState records whether a Field call carries a description
// keyword and whether it is empty.
type DescriptionState uint8

const (
	// DescMissing means no description keyword was passed.
	DescMissing DescriptionState = iota
	// DescEmpty means the description is an empty string literal.
	DescEmpty
	// DescPresent means a non-empty (or non-literal) description was passed.
	DescPresent
)

// Field is one annotated assignment in a class body.
type Field struct {
	Name        string
	Span        source.Span // the field name, where diagnostics point
	ClassVar    bool        // annotated with ClassVar[...]
	HasDefault  bool
	Default     DefaultKind
	Description DescriptionState // meaningful when Default is DefaultFieldCall
}

// ClassFacts is everything the classifier and rules need to know about
// one class, with the syntax boiled away.
type ClassFacts struct {
	Name             string
	Span             source.Span // the class name
	BaseNames        []string    // dotted names of positional bases, in order
	Decorators       []string    // dotted callee names of class decorators
	Fields           []Field     // annotated assignments in the direct body
	MethodNames      []string
	MethodDecorators []string // dotted callee names across all methods
	InnerClassNames  []string
	PlainAssigns     int // unannotated assignments in the body
	OtherStmts       int // body statements of any other shape
}

// HasBases reports whether the class declares any positional base.
func (f *ClassFacts) HasBases() bool { return len(f.BaseNames) > 0 }

// AllFieldBody reports whether the class body consists solely of
// annotated assignments. Docstrings count against it, matching the
// strictest reading of a pure data holder.
func (f *ClassFacts) AllFieldBody() bool {
	return len(f.Fields) > 0 &&
		f.PlainAssigns == 0 &&
		f.OtherStmts == 0 &&
		len(f.MethodNames) == 0 &&
		len(f.InnerClassNames) == 0
}

// HasMethod reports whether the class defines a method with the given
// name.
func (f *ClassFacts) HasMethod(name string) bool {
	for _, m := range f.MethodNames {
		if m == name {
			return true
		}
	}
	return false
}

// HasInnerClass reports whether the class contains a directly nested
// class with the given name.
func (f *ClassFacts) HasInnerClass(name string) bool {
	for _, c := range f.InnerClassNames {
		if c == name {
			return true
		}
	}
	return false
}
