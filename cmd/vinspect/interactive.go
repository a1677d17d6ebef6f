package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/wippyai/variant"
)

var interactiveColors = &printer{color: true}

type interactiveModel struct {
	err      error
	root     variant.Variant
	filename string
	input    textinput.Model
	current  variant.Variant
	children []string
}

func newInteractiveModel(filename string, root variant.Variant) *interactiveModel {
	ti := textinput.New()
	ti.Placeholder = "path, e.g. items[0].name"
	ti.Prompt = "path: "
	ti.Width = 50
	ti.Focus()

	m := &interactiveModel{
		filename: filename,
		root:     root,
		input:    ti,
	}
	m.evaluate()
	return m
}

func (m *interactiveModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			m.complete()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.evaluate()
	return m, cmd
}

// evaluate resolves the typed path against the document.
func (m *interactiveModel) evaluate() {
	path := strings.TrimSpace(m.input.Value())
	if path == "" {
		m.current, m.err = m.root, nil
	} else {
		m.current, m.err = m.root.Lookup(path)
	}
	if m.err == nil {
		m.children = childNames(m.current)
	}
}

// complete extends the path with the first child of the last valid node
// whose name starts with the partial segment being typed.
func (m *interactiveModel) complete() {
	path := m.input.Value()
	cut := strings.LastIndexAny(path, ".[")
	base, partial := "", path
	if cut >= 0 {
		base, partial = path[:cut], path[cut+1:]
	}

	parent := m.root
	if base != "" {
		var err error
		if parent, err = m.root.Lookup(base); err != nil {
			return
		}
	}

	for _, name := range childNames(parent) {
		if strings.HasPrefix(name, "[") {
			continue
		}
		if strings.HasPrefix(name, partial) {
			if base != "" {
				name = base + "." + name
			}
			m.input.SetValue(name)
			m.input.CursorEnd()
			m.evaluate()
			return
		}
	}
}

func childNames(v variant.Variant) []string {
	switch v.Type() {
	case variant.TagDictionary:
		var names []string
		for k := range v.ToDictionary().Iter() {
			names = append(names, k.String())
		}
		sort.Strings(names)
		return names
	case variant.TagArray:
		n := v.ToArray().Len()
		names := make([]string, n)
		for i := range names {
			names[i] = fmt.Sprintf("[%d]", i)
		}
		return names
	}
	return nil
}

func (m *interactiveModel) View() string {
	p := interactiveColors
	var b strings.Builder

	b.WriteString(p.render(titleStyle, "Variant Inspector"))
	b.WriteString(" ")
	b.WriteString(m.filename)
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(p.render(errorStyle, "Error: "+m.err.Error()))
	} else {
		b.WriteString(p.render(tagStyle, m.current.Type().String()))
		b.WriteString(" ")
		b.WriteString(p.render(valueStyle, truncate(m.current.String(), 400)))
		if len(m.children) > 0 {
			b.WriteString("\n\n")
			for _, name := range m.children {
				b.WriteString("  ")
				b.WriteString(name)
				b.WriteString("\n")
			}
		}
	}

	b.WriteString("\n\n")
	b.WriteString(p.render(helpStyle, "type a path • tab complete • esc quit"))
	return b.String()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "…"
}

func runInteractive(filename string, root variant.Variant) error {
	p := tea.NewProgram(newInteractiveModel(filename, root), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
