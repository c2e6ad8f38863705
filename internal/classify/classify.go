// Package classify decides whether a class is a data model subject to
// the field documentation rules.
//
// The heuristic is an ordered rule table evaluated short-circuit: each
// rule is a named predicate paired with a verdict, and the first
// matching rule wins. Rejects sit above accepts so an opt-out signal
// (a dataclass decorator, an __init__ method) always outranks a model
// signal. A class matching no rule is not a model.
package classify

import (
	"pyfieldlint/internal/ast"
	"pyfieldlint/internal/pyfacts"
)

type rule struct {
	name   string
	accept bool
	match  func(*pyfacts.ClassFacts) bool
}

var table = []rule{
	{"no-bases", false, func(f *pyfacts.ClassFacts) bool {
		return !f.HasBases()
	}},
	{"dataclass-decorator", false, func(f *pyfacts.ClassFacts) bool {
		return anyName(f.Decorators, "dataclass")
	}},
	{"typeddict-base", false, func(f *pyfacts.ClassFacts) bool {
		return anyName(f.BaseNames, "TypedDict")
	}},
	{"init-method", false, func(f *pyfacts.ClassFacts) bool {
		return f.HasMethod("__init__")
	}},
	{"relationship-default", false, func(f *pyfacts.ClassFacts) bool {
		return anyDefault(f, pyfacts.DefaultRelationshipCall)
	}},
	{"model-base", true, func(f *pyfacts.ClassFacts) bool {
		return anyName(f.BaseNames, "BaseModel") || anyName(f.BaseNames, "GenericModel")
	}},
	{"validator-method", true, func(f *pyfacts.ClassFacts) bool {
		return anyName(f.MethodDecorators, "validator") || anyName(f.MethodDecorators, "root_validator")
	}},
	{"config-inner-class", true, func(f *pyfacts.ClassFacts) bool {
		return f.HasInnerClass("Config")
	}},
	{"annotated-body", true, func(f *pyfacts.ClassFacts) bool {
		return f.AllFieldBody()
	}},
	{"field-call-default", true, func(f *pyfacts.ClassFacts) bool {
		return anyDefault(f, pyfacts.DefaultFieldCall)
	}},
}

// Classify reports whether the class is a data model in scope for the
// field rules.
func Classify(f *pyfacts.ClassFacts) bool {
	verdict, _ := Explain(f)
	return verdict
}

// Explain returns the verdict together with the name of the rule that
// decided it, for the `classes` debug command.
func Explain(f *pyfacts.ClassFacts) (bool, string) {
	for _, r := range table {
		if r.match(f) {
			return r.accept, r.name
		}
	}
	return false, "no-signal"
}

func anyName(names []string, target string) bool {
	for _, n := range names {
		if n != "" && ast.NameIs(n, target) {
			return true
		}
	}
	return false
}

func anyDefault(f *pyfacts.ClassFacts, kind pyfacts.DefaultKind) bool {
	for i := range f.Fields {
		if f.Fields[i].HasDefault && f.Fields[i].Default == kind {
			return true
		}
	}
	return false
}
