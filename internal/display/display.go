// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package display renders filter metadata for the terminal.
package display

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/petar-djukic/script-info/pkg/types"
)

var (
	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	NameStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	DimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	ErrorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// IsTerminal reports whether w is a TTY.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Printer writes listings to w, styled when w is a terminal.
type Printer struct {
	w      io.Writer
	styled bool
}

// NewPrinter returns a Printer for w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w, styled: IsTerminal(w)}
}

func (p *Printer) render(s lipgloss.Style, text string) string {
	if !p.styled {
		return text
	}
	return s.Render(text)
}

// Filters prints one filter name per line.
func (p *Printer) Filters(names []string) error {
	for _, n := range names {
		if _, err := fmt.Fprintln(p.w, p.render(NameStyle, n)); err != nil {
			return err
		}
	}
	return nil
}

// Methods prints a header and a table of the filter's operations.
func (p *Printer) Methods(filter string, methods []types.MethodInfo) error {
	header := fmt.Sprintf("%s (%d methods)", filter, len(methods))
	if _, err := fmt.Fprintln(p.w, p.render(HeaderStyle, header)); err != nil {
		return err
	}

	rows := make([][]string, len(methods))
	for i, m := range methods {
		rows[i] = []string{m.Name, m.Body, m.Display}
	}
	_, err := io.WriteString(p.w, FormatTable([]string{"NAME", "BODY", "DISPLAY"}, rows))
	return err
}

// Link prints a source link as "label  url", or as an HTML anchor.
func (p *Printer) Link(link types.SourceLink, html bool) error {
	var err error
	if html {
		_, err = fmt.Fprintln(p.w, link.HTML())
	} else {
		_, err = fmt.Fprintf(p.w, "%s  %s\n", link.Label, p.render(DimStyle, link.URL))
	}
	return err
}

// PrintError prints a styled error to stderr.
func PrintError(msg string) {
	if IsTerminal(os.Stderr) {
		fmt.Fprintln(os.Stderr, ErrorStyle.Render("script-info: "+msg))
	} else {
		fmt.Fprintln(os.Stderr, "script-info: "+msg)
	}
}

// FormatTable formats data as a simple aligned table. Trailing padding is
// trimmed from each line.
func FormatTable(headers []string, rows [][]string) string {
	if len(headers) == 0 {
		return ""
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var b strings.Builder
	writeRow := func(cells []string) {
		var line strings.Builder
		for i, cell := range cells {
			if i >= len(widths) {
				break
			}
			if i > 0 {
				line.WriteString("  ")
			}
			fmt.Fprintf(&line, "%-*s", widths[i], cell)
		}
		b.WriteString(strings.TrimRight(line.String(), " "))
		b.WriteString("\n")
	}

	writeRow(headers)
	sep := make([]string, len(widths))
	for i, w := range widths {
		sep[i] = strings.Repeat("─", w)
	}
	writeRow(sep)
	for _, row := range rows {
		writeRow(row)
	}

	return b.String()
}
