package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Column widths used by Table.
const (
	nameColumnWidth    = 30
	summaryColumnWidth = 50
)

// Printer writes styled status lines for the CLI. Errors go to the error
// writer, everything else to the output writer. In plain mode no ANSI
// sequences are emitted.
type Printer struct {
	out   io.Writer
	err   io.Writer
	plain bool
	debug bool
}

// NewPrinter returns a printer writing to out and errOut.
func NewPrinter(out, errOut io.Writer, plain, debug bool) *Printer {
	return &Printer{out: out, err: errOut, plain: plain, debug: debug}
}

// Plain reports whether the printer emits uncolored output.
func (p *Printer) Plain() bool { return p.plain }

// Out returns the writer used for regular output.
func (p *Printer) Out() io.Writer { return p.out }

func (p *Printer) render(s lipgloss.Style, text string) string {
	if p.plain {
		return text
	}
	return s.Render(text)
}

// Success prints "✅ msg".
func (p *Printer) Success(format string, args ...any) {
	fmt.Fprintln(p.out, p.render(successStyle, "✅ "+fmt.Sprintf(format, args...)))
}

// Error prints "❌ msg" to the error writer.
func (p *Printer) Error(format string, args ...any) {
	fmt.Fprintln(p.err, p.render(errorStyle, "❌ "+fmt.Sprintf(format, args...)))
}

// Warn prints "⚠️  msg".
func (p *Printer) Warn(format string, args ...any) {
	fmt.Fprintln(p.out, p.render(warningStyle, "⚠️  "+fmt.Sprintf(format, args...)))
}

// Info prints a plain informational line.
func (p *Printer) Info(format string, args ...any) {
	fmt.Fprintln(p.out, p.render(infoStyle, fmt.Sprintf(format, args...)))
}

// Muted prints a dimmed line.
func (p *Printer) Muted(format string, args ...any) {
	fmt.Fprintln(p.out, p.render(mutedStyle, fmt.Sprintf(format, args...)))
}

// Header prints a bold section header.
func (p *Printer) Header(format string, args ...any) {
	fmt.Fprintln(p.out, p.render(headerStyle, fmt.Sprintf(format, args...)))
}

// Item prints an indented list entry.
func (p *Printer) Item(format string, args ...any) {
	fmt.Fprintln(p.out, "  "+p.render(textStyle, fmt.Sprintf(format, args...)))
}

// Agent prints an indented agent name in the agent's own color.
func (p *Printer) Agent(name, color, suffix string) {
	line := "  - " + p.render(AgentStyle(color), name)
	if suffix != "" {
		line += " " + p.render(mutedStyle, suffix)
	}
	fmt.Fprintln(p.out, line)
}

// Newline prints an empty line.
func (p *Printer) Newline() {
	fmt.Fprintln(p.out)
}

// Debugf prints a debug line to the error writer when debug output is on.
func (p *Printer) Debugf(format string, args ...any) {
	if !p.debug {
		return
	}
	fmt.Fprintln(p.err, p.render(mutedStyle, "[debug] "+fmt.Sprintf(format, args...)))
}

// Table prints rows of name/summary pairs in two aligned columns. Cells
// longer than their column are truncated with an ellipsis.
func (p *Printer) Table(headers [2]string, rows [][2]string) {
	line := func(a, b string, s lipgloss.Style) {
		a = pad(ansi.Truncate(a, nameColumnWidth-1, "…"), nameColumnWidth)
		b = ansi.Truncate(b, summaryColumnWidth, "…")
		fmt.Fprintln(p.out, "  "+p.render(s, a)+p.render(mutedStyle, b))
	}
	line(headers[0], headers[1], headerStyle)
	fmt.Fprintln(p.out, "  "+p.render(mutedStyle, strings.Repeat("─", nameColumnWidth+summaryColumnWidth)))
	for _, r := range rows {
		line(r[0], r[1], accentStyle)
	}
}

func pad(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
