// Package driver assembles the per-file pipeline (load, lex, parse,
// extract, classify, evaluate) and the parallel directory fan-out.
package driver

import (
	"fmt"

	"fortio.org/safecast"

	"pyfieldlint/internal/ast"
	"pyfieldlint/internal/classify"
	"pyfieldlint/internal/diag"
	"pyfieldlint/internal/lexer"
	"pyfieldlint/internal/parser"
	"pyfieldlint/internal/pyfacts"
	"pyfieldlint/internal/rules"
	"pyfieldlint/internal/source"
)

// CheckResult holds everything produced by checking one file.
type CheckResult struct {
	FileSet *source.FileSet
	File    *source.File
	Module  *ast.Module
	Classes []*pyfacts.ClassFacts
	Bag     *diag.Bag
}

// CheckFile loads one file and runs the full pipeline over it.
func CheckFile(path string, maxDiagnostics int) (*CheckResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return checkLoaded(fs, fileID, maxDiagnostics), nil
}

// CheckSource runs the pipeline over in-memory content, for stdin and
// tests.
func CheckSource(name string, content []byte, maxDiagnostics int) *CheckResult {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, content)
	return checkLoaded(fs, fileID, maxDiagnostics)
}

func checkLoaded(fs *source.FileSet, fileID source.FileID, maxDiagnostics int) *CheckResult {
	bag := diag.NewBag(maxDiagnostics)
	file := fs.Get(fileID)
	mod, classes := analyzeFile(file, bag, maxDiagnostics)
	return &CheckResult{
		FileSet: fs,
		File:    file,
		Module:  mod,
		Classes: classes,
		Bag:     bag,
	}
}

// analyzeFile runs lex, parse, extraction, classification and the field
// rules for one already-loaded file, reporting into bag.
func analyzeFile(file *source.File, bag *diag.Bag, maxDiagnostics int) (*ast.Module, []*pyfacts.ClassFacts) {
	reporter := diag.BagReporter{Bag: bag}

	lx := lexer.New(file, lexer.Options{
		Reporter: lexer.DiagReporter{Next: reporter},
	})

	maxErrors, err := safecast.Conv[uint](maxDiagnostics)
	if err != nil {
		panic(fmt.Errorf("maxDiagnostics overflow: %w", err))
	}
	mod := parser.Parse(file, lx, parser.Options{
		Reporter:  reporter,
		MaxErrors: maxErrors,
	})

	classes := pyfacts.Collect(mod)
	for _, facts := range classes {
		rules.Check(facts, reporter)
	}
	return mod, classes
}

// ClassVerdict pairs a class with its classifier outcome, for the
// classes debug command.
type ClassVerdict struct {
	Facts    *pyfacts.ClassFacts
	Accepted bool
	Rule     string
}

// ExplainClasses loads one file and returns the classifier verdict and
// deciding rule for every class in it.
func ExplainClasses(path string, maxDiagnostics int) (*CheckResult, []ClassVerdict, error) {
	res, err := CheckFile(path, maxDiagnostics)
	if err != nil {
		return nil, nil, err
	}
	verdicts := make([]ClassVerdict, 0, len(res.Classes))
	for _, facts := range res.Classes {
		accepted, rule := classify.Explain(facts)
		verdicts = append(verdicts, ClassVerdict{
			Facts:    facts,
			Accepted: accepted,
			Rule:     rule,
		})
	}
	return res, verdicts, nil
}
