package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"pyfieldlint/internal/diag"
	"pyfieldlint/internal/source"
)

// Pretty renders diagnostics in a human-readable form. It walks
// bag.Items() in order (callers are expected to Sort() first) and for
// each diagnostic prints
//
//	<path>:<line>:<col>: <SEV> <CODE>: <message>
//
// followed by the source line with a caret underline covering the span,
// then any notes in the same shape.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		printEntry(w, fs, opts, d.Severity.String(), d.Code.ID(), d.Primary, d.Message)
		if opts.ShowNotes {
			for _, n := range d.Notes {
				printEntry(w, fs, opts, "NOTE", "", n.Span, n.Msg)
			}
		}
	}
}

func printEntry(w io.Writer, fs *source.FileSet, opts PrettyOpts, sev, code string, sp source.Span, msg string) {
	f := fs.Get(sp.File)
	start, end := fs.Resolve(sp)
	path := formatPath(f, fs, opts.PathMode)

	head := sev
	if code != "" {
		head = sev + " " + code
	}
	if opts.Color {
		head = severityColor(sev).Sprint(head)
	}
	fmt.Fprintf(w, "%s:%d:%d: %s: %s\n", path, start.Line, start.Col, head, msg)

	line := f.GetLine(start.Line)
	if line == "" {
		return
	}
	fmt.Fprintf(w, "  %s\n", line)

	// Underline the span within its first line only.
	startCol := int(start.Col)
	endCol := int(end.Col)
	if end.Line != start.Line || endCol <= startCol {
		endCol = startCol + 1
	}
	if startCol < 1 {
		startCol = 1
	}
	underline := strings.Repeat(" ", startCol-1) + "^"
	if n := endCol - startCol - 1; n > 0 {
		underline += strings.Repeat("~", n)
	}
	if opts.Color {
		underline = severityColor(sev).Sprint(underline)
	}
	fmt.Fprintf(w, "  %s\n", underline)
}

func severityColor(sev string) *color.Color {
	switch sev {
	case "ERROR":
		return color.New(color.FgRed, color.Bold)
	case "WARNING":
		return color.New(color.FgYellow, color.Bold)
	default:
		return color.New(color.FgCyan)
	}
}

func formatPath(f *source.File, fs *source.FileSet, mode PathMode) string {
	switch mode {
	case PathModeAbsolute:
		return f.FormatPath("absolute", "")
	case PathModeRelative:
		return f.FormatPath("relative", fs.BaseDir())
	case PathModeBasename:
		return f.FormatPath("basename", "")
	default:
		return f.FormatPath("auto", "")
	}
}

// Short renders diagnostics one per line in the stable golden form used
// by tests and the `--format short` flag.
func Short(w io.Writer, bag *diag.Bag, fs *source.FileSet) {
	io.WriteString(w, diag.FormatShort(bag.Items(), fs))
}
