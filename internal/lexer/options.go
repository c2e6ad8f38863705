package lexer

import (
	"pyfieldlint/internal/source"
)

// Reporter is a thin interface so the lexer does not depend on diag
// directly. The lexer only calls it; mapping to diagnostic codes happens in
// reporter_adapter.go.
type Reporter interface {
	Report(kind string, span source.Span, msg string)
}

// Report kinds emitted by the lexer.
const (
	KindUnknownChar        = "unknown_char"
	KindUnterminatedString = "unterminated_string"
	KindBadNumber          = "bad_number"
	KindInconsistentDedent = "inconsistent_dedent"
)

// Options configures a Lexer.
type Options struct {
	Reporter Reporter // may be nil: faults are ignored but lexing continues
}

func (lx *Lexer) report(kind string, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(kind, sp, msg)
	}
}
