package pyfacts

import (
	"pyfieldlint/internal/ast"
)

// Collect extracts facts for every class in the module, including classes
// nested inside other classes, in depth-first source order. Classes
// defined inside function bodies are not visible because the parser
// skips function bodies.
func Collect(mod *ast.Module) []*ClassFacts {
	var out []*ClassFacts
	collectStmts(mod.Body, &out)
	return out
}

func collectStmts(stmts []ast.Stmt, out *[]*ClassFacts) {
	for _, s := range stmts {
		if cls, ok := s.(*ast.ClassDef); ok {
			*out = append(*out, FromClass(cls))
			collectStmts(cls.Body, out)
		}
	}
}

// FromClass condenses one class definition into its facts.
func FromClass(cls *ast.ClassDef) *ClassFacts {
	f := &ClassFacts{
		Name: cls.Name,
		Span: cls.NameSpan,
	}

	for _, b := range cls.Bases {
		if name, ok := ast.DottedName(b); ok {
			f.BaseNames = append(f.BaseNames, name)
		} else {
			// An unresolvable base still means the class inherits.
			f.BaseNames = append(f.BaseNames, "")
		}
	}

	for _, d := range cls.Decorators {
		if name, ok := ast.CalleeName(d); ok {
			f.Decorators = append(f.Decorators, name)
		}
	}

	for _, s := range cls.Body {
		switch st := s.(type) {
		case *ast.AnnAssign:
			f.Fields = append(f.Fields, fieldFacts(st))
		case *ast.FuncDef:
			f.MethodNames = append(f.MethodNames, st.Name)
			for _, d := range st.Decorators {
				if name, ok := ast.CalleeName(d); ok {
					f.MethodDecorators = append(f.MethodDecorators, name)
				}
			}
		case *ast.ClassDef:
			f.InnerClassNames = append(f.InnerClassNames, st.Name)
		case *ast.Assign:
			f.PlainAssigns++
		default:
			f.OtherStmts++
		}
	}

	return f
}

func fieldFacts(st *ast.AnnAssign) Field {
	fld := Field{
		Name:     st.Name,
		Span:     st.NameSpan,
		ClassVar: annotationIsClassVar(st.Annotation),
	}
	if st.Value == nil {
		return fld
	}

	fld.HasDefault = true
	switch v := st.Value.(type) {
	case *ast.Call:
		callee, _ := ast.DottedName(v.Func)
		switch {
		case ast.NameIs(callee, "Field"):
			fld.Default = DefaultFieldCall
			fld.Description = descriptionState(v)
		case ast.NameIs(callee, "PrivateAttr"):
			fld.Default = DefaultPrivateAttrCall
		case ast.NameIs(callee, "Relationship"):
			fld.Default = DefaultRelationshipCall
		default:
			fld.Default = DefaultOtherCall
		}
	default:
		if ast.IsLiteral(st.Value) {
			fld.Default = DefaultLiteral
		} else {
			fld.Default = DefaultOtherExpr
		}
	}
	return fld
}

func annotationIsClassVar(ann ast.Expr) bool {
	if ann == nil {
		return false
	}
	name, ok := ast.DottedName(ann)
	return ok && ast.NameIs(name, "ClassVar")
}

// descriptionState inspects a Field call's description keyword. Only the
// keyword form counts; a non-literal value is taken as present since its
// emptiness cannot be decided statically.
func descriptionState(call *ast.Call) DescriptionState {
	for _, kw := range call.Keywords {
		if kw.Name != "description" {
			continue
		}
		if s, ok := kw.Value.(*ast.StringLit); ok && s.Value == "" {
			return DescEmpty
		}
		return DescPresent
	}
	return DescMissing
}
