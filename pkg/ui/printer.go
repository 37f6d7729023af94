package ui

import (
	"fmt"
	"io"
	"strings"
)

// Printer writes CLI output, styled only in terminal format
type Printer struct {
	out    io.Writer
	format Format
	styles Styles
}

// NewPrinter creates a printer. FormatAuto is treated as text; resolve it
// with Resolve first to style terminal output.
func NewPrinter(out io.Writer, format Format) *Printer {
	return &Printer{out: out, format: format, styles: DefaultStyles()}
}

// Format returns the printer's format
func (p *Printer) Format() Format {
	return p.format
}

// Style renders text with the named style in terminal format
func (p *Printer) Style(name, text string) string {
	if p.format != FormatTerminal {
		return text
	}
	return p.styles.Get(name).Render(text)
}

// Print writes text as-is
func (p *Printer) Print(text string) {
	fmt.Fprint(p.out, text)
}

// Line writes a styled line
func (p *Printer) Line(style, format string, args ...interface{}) {
	fmt.Fprintln(p.out, p.Style(style, fmt.Sprintf(format, args...)))
}

// Summary writes a validation summary, coloring its lines by severity
func (p *Printer) Summary(text string) {
	for _, line := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		fmt.Fprintln(p.out, p.Style(summaryStyle(line), line))
	}
}

func summaryStyle(line string) string {
	switch {
	case strings.HasPrefix(line, "Rule validation passed"):
		return "Success"
	case strings.HasPrefix(line, "Rule validation failed"), strings.HasPrefix(line, "- error"):
		return "Error"
	case strings.HasPrefix(line, "- warning"):
		return "Warning"
	case strings.HasPrefix(line, "- info"):
		return "Info"
	default:
		return ""
	}
}
