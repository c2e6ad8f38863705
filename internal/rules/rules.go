// Package rules evaluates the field documentation rules over classified
// data-model classes.
package rules

import (
	"fmt"

	"pyfieldlint/internal/classify"
	"pyfieldlint/internal/diag"
	"pyfieldlint/internal/pyfacts"
)

// Evaluate applies the field rules to one accepted class, reporting at
// most one diagnostic per field, in source order. Callers are expected
// to gate on classify.Classify; Evaluate itself does not.
func Evaluate(f *pyfacts.ClassFacts, r diag.Reporter) {
	for i := range f.Fields {
		fld := &f.Fields[i]
		if fld.ClassVar {
			continue
		}
		if fld.Default == pyfacts.DefaultPrivateAttrCall {
			continue
		}

		switch {
		case !fld.HasDefault:
			report(r, diag.FieldNoDefault, fld, "has no default")
		case fld.Default != pyfacts.DefaultFieldCall:
			report(r, diag.FieldDefaultNotField, fld, "has a default that is not a Field")
		case fld.Description == pyfacts.DescMissing:
			report(r, diag.FieldNoDescription, fld, "has a Field default with no description")
		case fld.Description == pyfacts.DescEmpty:
			report(r, diag.FieldEmptyDescription, fld, "has a Field default with an empty description")
		}
	}
}

// Check classifies one class and, when it is a model, evaluates its
// fields. It reports whether the class was accepted.
func Check(f *pyfacts.ClassFacts, r diag.Reporter) bool {
	if !classify.Classify(f) {
		return false
	}
	Evaluate(f, r)
	return true
}

func report(r diag.Reporter, code diag.Code, fld *pyfacts.Field, what string) {
	msg := fmt.Sprintf("found a Pydantic field %q which %s", fld.Name, what)
	r.Report(code, diag.SevWarning, fld.Span, msg, nil)
}
