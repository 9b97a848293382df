package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/localekit/resbridge/bridge"
	"github.com/localekit/resbridge/catalog"
	"github.com/localekit/resbridge/handle"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	idStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#87CEEB"))

	keyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type interactiveModel struct {
	err     error
	bridge  *bridge.Bridge
	table   *catalog.Table
	handles *handle.Table
	ctxh    handle.Handle
	input   textinput.Model
	dir     string
	locale  string
	locales []string
	result  string
	loaded  bool
}

type loadedMsg struct {
	err     error
	bridge  *bridge.Bridge
	table   *catalog.Table
	handles *handle.Table
	ctxh    handle.Handle
}

type resolvedMsg struct {
	err    error
	result string
}

func newInteractiveModel(dir string, locales []string, locale string) *interactiveModel {
	input := textinput.New()
	input.Placeholder = "resource id"
	input.CharLimit = 10
	input.Width = 16
	input.Focus()

	return &interactiveModel{
		input:   input,
		dir:     dir,
		locales: locales,
		locale:  locale,
	}
}

func (m *interactiveModel) Init() tea.Cmd {
	return tea.Batch(m.loadCatalog, textinput.Blink)
}

func (m *interactiveModel) loadCatalog() tea.Msg {
	bundle, table, err := buildCatalog(m.dir, m.locales)
	if err != nil {
		return loadedMsg{err: err}
	}

	handles := handle.NewTable()
	ctxh := handles.Insert(contextTypeID, catalog.NewContext(bundle, table, m.locale))

	return loadedMsg{
		bridge:  bridge.New(handles),
		table:   table,
		handles: handles,
		ctxh:    ctxh,
	}
}

func (m *interactiveModel) resolve(id uint32) tea.Cmd {
	return func() tea.Msg {
		text, err := m.bridge.Resolve(context.Background(), m.ctxh, id)
		if err != nil {
			return resolvedMsg{err: err}
		}
		return resolvedMsg{result: text}
	}
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}
		m.bridge = msg.bridge
		m.table = msg.table
		m.handles = msg.handles
		m.ctxh = msg.ctxh
		m.loaded = true
		return m, nil

	case resolvedMsg:
		if msg.err != nil {
			m.err = msg.err
			m.result = ""
		} else {
			m.err = nil
			m.result = msg.result
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			if !m.loaded {
				return m, nil
			}
			id, err := strconv.ParseUint(strings.TrimSpace(m.input.Value()), 10, 32)
			if err != nil {
				m.err = fmt.Errorf("not a resource id: %q", m.input.Value())
				m.result = ""
				return m, nil
			}
			m.input.SetValue("")
			return m, m.resolve(uint32(id))
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("resbridge: %s", m.locale)))
	b.WriteString("\n\n")

	if !m.loaded {
		b.WriteString("Loading catalog...\n")
		return b.String()
	}

	m.table.Each(func(id uint32, key string) bool {
		b.WriteString("  ")
		b.WriteString(idStyle.Render(fmt.Sprintf("%6d", id)))
		b.WriteString("  ")
		b.WriteString(keyStyle.Render(key))
		b.WriteString("\n")
		return true
	})

	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	} else if m.result != "" {
		b.WriteString(resultStyle.Render(m.result))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("enter resolve • esc quit"))
	b.WriteString("\n")

	return b.String()
}

func runInteractive(dir string, locales []string, locale string) error {
	model := newInteractiveModel(dir, locales, locale)
	p := tea.NewProgram(model, tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(*interactiveModel); ok {
		if m.handles != nil {
			m.handles.Close()
		}
		if m.err != nil && !m.loaded {
			return m.err
		}
	}
	return nil
}
