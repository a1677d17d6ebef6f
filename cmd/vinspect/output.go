package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/wippyai/variant"
	"github.com/wippyai/variant/vyaml"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	tagStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type printer struct {
	w        io.Writer
	color    bool
	showYAML bool
}

func newPrinter(w io.Writer, cfg config) *printer {
	color := cfg.Color == "always"
	if cfg.Color == "auto" {
		if f, ok := w.(*os.File); ok {
			color = term.IsTerminal(int(f.Fd()))
		}
	}
	return &printer{w: w, color: color, showYAML: cfg.ShowYAML}
}

func (p *printer) render(s lipgloss.Style, text string) string {
	if !p.color {
		return text
	}
	return s.Render(text)
}

func (p *printer) title(label, text string) {
	fmt.Fprintf(p.w, "%s %s\n", p.render(titleStyle, label), text)
}

func (p *printer) value(v variant.Variant) {
	fmt.Fprintf(p.w, "%s %s\n", p.render(tagStyle, v.Type().String()), p.render(valueStyle, v.String()))
	if p.showYAML && v.Type() != variant.TagObject {
		data, err := vyaml.Encode(v)
		if err != nil {
			p.error(err)
			return
		}
		fmt.Fprint(p.w, string(data))
	}
}

func (p *printer) error(err error) {
	fmt.Fprintln(p.w, p.render(errorStyle, "Error: "+err.Error()))
}
