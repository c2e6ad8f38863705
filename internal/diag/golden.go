package diag

import (
	"fmt"
	"sort"
	"strings"

	"pyfieldlint/internal/source"
)

type renderedDiagnostic struct {
	Severity string
	Code     string
	Path     string
	Line     uint32
	Column   uint32
	Message  string
}

// FormatShort renders diagnostics into a stable single-line-per-entry
// representation: path:line:col: SEVERITY CODE message. It is used both by
// the CLI short format and by tests as a golden form.
func FormatShort(diags []Diagnostic, fs *source.FileSet) string {
	if fs == nil || len(diags) == 0 {
		return ""
	}

	rendered := make([]renderedDiagnostic, 0, len(diags))
	for _, d := range diags {
		f := fs.Get(d.Primary.File)
		start, _ := fs.Resolve(d.Primary)
		rendered = append(rendered, renderedDiagnostic{
			Severity: d.Severity.String(),
			Code:     d.Code.ID(),
			Path:     f.Path,
			Line:     start.Line,
			Column:   start.Col,
			Message:  d.Message,
		})
	}

	sort.SliceStable(rendered, func(i, j int) bool {
		di, dj := rendered[i], rendered[j]
		if di.Path != dj.Path {
			return di.Path < dj.Path
		}
		if di.Line != dj.Line {
			return di.Line < dj.Line
		}
		if di.Column != dj.Column {
			return di.Column < dj.Column
		}
		if di.Code != dj.Code {
			return di.Code < dj.Code
		}
		return di.Message < dj.Message
	})

	var sb strings.Builder
	for _, r := range rendered {
		fmt.Fprintf(&sb, "%s:%d:%d: %s %s %s\n", r.Path, r.Line, r.Column, r.Severity, r.Code, r.Message)
	}
	return sb.String()
}
