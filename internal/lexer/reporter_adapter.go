package lexer

import (
	"pyfieldlint/internal/diag"
	"pyfieldlint/internal/source"
)

// DiagReporter adapts the lexer's thin Reporter onto diag.Reporter,
// mapping report kinds to diagnostic codes.
type DiagReporter struct {
	Next diag.Reporter
}

func (r DiagReporter) Report(kind string, span source.Span, msg string) {
	if r.Next == nil {
		return
	}
	code := diag.LexInfo
	switch kind {
	case KindUnknownChar:
		code = diag.LexUnknownChar
	case KindUnterminatedString:
		code = diag.LexUnterminatedString
	case KindBadNumber:
		code = diag.LexBadNumber
	case KindInconsistentDedent:
		code = diag.LexInconsistentDedent
	}
	r.Next.Report(code, diag.SevError, span, msg, nil)
}
