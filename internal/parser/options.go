package parser

import (
	"pyfieldlint/internal/diag"
	"pyfieldlint/internal/source"
)

// Options configures a parse run.
type Options struct {
	Reporter  diag.Reporter // may be nil
	MaxErrors uint          // 0 means unlimited
}

func (p *Parser) report(code diag.Code, sp source.Span, msg string) {
	if p.opts.Reporter == nil {
		return
	}
	if p.opts.MaxErrors > 0 && p.errs >= p.opts.MaxErrors {
		return
	}
	p.errs++
	p.opts.Reporter.Report(code, diag.SevError, sp, msg, nil)
}
