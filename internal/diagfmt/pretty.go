package diagfmt

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"changeset/internal/diag"
	"changeset/internal/source"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan, color.Bold)
	codeColor    = color.New(color.Bold)
	gutterColor  = color.New(color.FgBlue)
	noteColor    = color.New(color.FgCyan)
)

// Pretty renders diagnostics in a human-readable form, one block per
// diagnostic:
//
//	<path>:<line>:<col>: <severity> [<CODE>]: <message>
//	   |
//	 N | source line
//	   | ^~~~~
//
// Call bag.Sort() first for deterministic order.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		prettyOne(w, &d, fs, opts)
	}
}

func prettyOne(w io.Writer, d *diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	f := fs.Get(d.Primary.File)
	start, end := fs.Resolve(d.Primary)

	sev := d.Severity.String()
	code := "[" + d.Code.ID() + "]"
	if opts.Color {
		sev = severityColor(d.Severity).Sprint(sev)
		code = codeColor.Sprint(code)
	}
	fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
		displayPath(f, fs, opts.PathMode), start.Line, start.Col, sev, code, d.Message)

	printSnippet(w, f, start, end, opts)

	if opts.ShowNotes {
		for _, n := range d.Notes {
			printNote(w, &n, fs, opts)
		}
	}
}

func severityColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return errorColor
	case diag.SevWarning:
		return warningColor
	default:
		return infoColor
	}
}

func displayPath(f *source.File, fs *source.FileSet, mode PathMode) string {
	switch mode {
	case PathModeAbsolute:
		if abs, err := filepath.Abs(f.Path); err == nil {
			return filepath.ToSlash(abs)
		}
		return f.Path
	case PathModeBasename:
		return filepath.Base(f.Path)
	default: // Auto and Relative both prefer the shorter relative form.
		return f.RelPath(fs.BaseDir())
	}
}

// printSnippet shows the primary line with optional context lines above and
// below, plus a caret underline covering the span. For multi-line spans the
// underline runs to the end of the first line.
func printSnippet(w io.Writer, f *source.File, start, end source.LineCol, opts PrettyOpts) {
	ctx := uint32(0)
	if opts.Context > 0 {
		ctx = uint32(opts.Context)
	}
	firstLine := uint32(1)
	if start.Line > ctx {
		firstLine = start.Line - ctx
	}
	lastLine := start.Line + ctx

	gutter := len(fmt.Sprintf("%d", lastLine))
	bar := pipe(opts)

	fmt.Fprintf(w, "%*s %s\n", gutter, "", bar)
	for line := firstLine; line <= lastLine; line++ {
		text := f.GetLine(line)
		if text == "" && line > start.Line {
			break
		}
		num := fmt.Sprintf("%*d", gutter, line)
		if opts.Color {
			num = gutterColor.Sprint(num)
		}
		fmt.Fprintf(w, "%s %s %s\n", num, bar, expandTabs(text))

		if line == start.Line {
			fmt.Fprintf(w, "%*s %s %s\n", gutter, "", bar, underline(text, start, end, opts))
		}
	}
}

// underline builds the ^~~~ marker. Columns are byte offsets into the line,
// so the prefix width is measured with runewidth after tab expansion.
func underline(line string, start, end source.LineCol, opts PrettyOpts) string {
	startByte := int(start.Col) - 1
	if startByte > len(line) {
		startByte = len(line)
	}

	endByte := len(line)
	if end.Line == start.Line && int(end.Col)-1 < endByte {
		endByte = int(end.Col) - 1
	}
	if endByte < startByte {
		endByte = startByte
	}

	pad := runewidth.StringWidth(expandTabs(line[:startByte]))
	width := runewidth.StringWidth(line[startByte:endByte])
	if width < 1 {
		width = 1
	}

	marker := "^" + strings.Repeat("~", width-1)
	if opts.Color {
		marker = errorColor.Sprint(marker)
	}
	return strings.Repeat(" ", pad) + marker
}

func printNote(w io.Writer, n *diag.Note, fs *source.FileSet, opts PrettyOpts) {
	label := "note:"
	if opts.Color {
		label = noteColor.Sprint(label)
	}
	if n.Span.Empty() {
		fmt.Fprintf(w, "  %s %s\n", label, n.Msg)
		return
	}
	f := fs.Get(n.Span.File)
	start, _ := fs.Resolve(n.Span)
	fmt.Fprintf(w, "  %s %s (%s:%d:%d)\n",
		label, n.Msg, displayPath(f, fs, opts.PathMode), start.Line, start.Col)
}

func pipe(opts PrettyOpts) string {
	if opts.Color {
		return gutterColor.Sprint("|")
	}
	return "|"
}

func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", "    ")
}
