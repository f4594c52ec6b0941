package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"reef/internal/diag"
	"reef/internal/source"
)

var (
	errColor  = color.New(color.FgRed, color.Bold)
	warnColor = color.New(color.FgYellow, color.Bold)
	infoColor = color.New(color.FgCyan, color.Bold)
	posColor  = color.New(color.Bold)
	caretCol  = color.New(color.FgRed)
)

// Pretty renders diagnostics in a human-readable form. It walks
// bag.Items() (call bag.Sort() first for position order) and prints, per
// diagnostic:
//
//	<name>:<line>:<col>: <SEV> <CODE>: <message>
//	  <source line>
//	  ^~~~ under the span
//
// followed by notes in the same shape when enabled.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		printHeading(w, fs, d.Severity, d.Code, d.Primary, d.Message, opts)
		printContext(w, fs, d.Primary, opts)
		if opts.ShowNotes {
			for _, n := range d.Notes {
				printHeading(w, fs, diag.SevInfo, diag.UnknownCode, n.Span, n.Msg, opts)
				printContext(w, fs, n.Span, opts)
			}
		}
	}
}

func sevColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return errColor
	case diag.SevWarning:
		return warnColor
	default:
		return infoColor
	}
}

func printHeading(w io.Writer, fs *source.FileSet, sev diag.Severity, code diag.Code, sp source.Span, msg string, opts PrettyOpts) {
	pos := "<unknown>"
	if !sp.IsUnknown() {
		start, _ := fs.Resolve(sp)
		pos = fmt.Sprintf("%s:%d:%d", fs.Get(sp.File).Name, start.Line, start.Col)
	}

	sevText := sev.String()
	if code != diag.UnknownCode {
		sevText = fmt.Sprintf("%s %s", sevText, code.ID())
	}
	if opts.Color {
		pos = posColor.Sprint(pos)
		sevText = sevColor(sev).Sprint(sevText)
	}
	fmt.Fprintf(w, "%s: %s: %s\n", pos, sevText, msg)
}

// printContext shows the first line the span covers with a caret run
// underneath. Underline width follows the display width of the covered
// text, not its byte count.
func printContext(w io.Writer, fs *source.FileSet, sp source.Span, opts PrettyOpts) {
	if sp.IsUnknown() {
		return
	}
	start, end := fs.Resolve(sp)
	f := fs.Get(sp.File)
	line := f.GetLine(start.Line)
	if line == "" {
		return
	}

	fmt.Fprintf(w, "  %s\n", line)

	endCol := end.Col
	if end.Line != start.Line {
		endCol = uint32(len(line)) + 1
	}

	prefix := line[:min(int(start.Col-1), len(line))]
	covered := line[len(prefix):min(int(endCol-1), len(line))]

	pad := strings.Repeat(" ", runewidth.StringWidth(prefix))
	width := runewidth.StringWidth(covered)
	if width < 1 {
		width = 1
	}
	underline := "^" + strings.Repeat("~", width-1)
	if opts.Color {
		underline = caretCol.Sprint(underline)
	}
	fmt.Fprintf(w, "  %s%s\n", pad, underline)
}
