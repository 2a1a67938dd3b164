package diag

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"mockable/internal/source"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	codeColor    = color.New(color.Faint)
)

// Printer renders diagnostics as "path:line:col: severity: message [code]"
// lines, with the severity colorized when the writer supports it.
type Printer struct {
	out io.Writer
}

func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

func (p *Printer) Print(file *source.File, d Diagnostic) {
	pos := file.Resolve(d.Span)

	severity := d.Severity.String()
	switch d.Severity {
	case SevError:
		severity = errorColor.Sprint(severity)
	case SevWarning:
		severity = warningColor.Sprint(severity)
	}

	fmt.Fprintf(p.out, "%s:%s: %s: %s %s\n",
		file.Path, pos, severity, d.Message, codeColor.Sprintf("[%s]", d.Code))
}

func (p *Printer) PrintAll(file *source.File, ds []Diagnostic) {
	for _, d := range ds {
		p.Print(file, d)
	}
}
