// Package tui implements zseed's interactive generation form.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zseed/internal/cli"
)

// GenerateFunc runs one generation for cfg.
type GenerateFunc func(cfg cli.Config) (cli.Summary, error)

type viewID int

const (
	viewForm viewID = iota
	viewResult
)

// generatedMsg reports the outcome of a generation run.
type generatedMsg struct {
	summary cli.Summary
	err     error
}

// Model is the root bubbletea model.
type Model struct {
	active   viewID
	form     formModel
	summary  cli.Summary
	err      error
	width    int
	version  string
	generate GenerateFunc
}

// New creates the root model with the form prefilled from cfg.
func New(version string, cfg cli.Config, generate GenerateFunc) Model {
	return Model{
		form:     newFormModel(cfg),
		version:  version,
		generate: generate,
	}
}

func (m Model) Init() tea.Cmd {
	return m.form.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.active == viewResult {
			return m.updateResult(msg)
		}

	case submitMsg:
		return m, m.run(msg.config)

	case generatedMsg:
		m.summary = msg.summary
		m.err = msg.err
		m.active = viewResult
		return m, nil
	}

	if m.active != viewForm {
		return m, nil
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	return m, cmd
}

func (m Model) updateResult(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, zstyle.KeyQuit):
		return m, tea.Quit
	case key.Matches(msg, zstyle.KeyBack), key.Matches(msg, zstyle.KeyEnter):
		m.active = viewForm
		m.err = nil
		return m, m.form.Init()
	}
	return m, nil
}

func (m Model) run(cfg cli.Config) tea.Cmd {
	generate := m.generate
	return func() tea.Msg {
		sum, err := generate(cfg)
		return generatedMsg{summary: sum, err: err}
	}
}

func (m Model) View() string {
	title := zstyle.Title.Render("zseed")
	version := zstyle.MutedText.Render(m.version)
	header := lipgloss.NewStyle().MarginLeft(2).Render(title + " " + version)

	var content, help string
	switch m.active {
	case viewForm:
		content = m.form.View()
		help = "tab next  shift+tab prev  enter generate  ctrl+c quit"
	case viewResult:
		content = m.resultView()
		help = "enter again  q quit"
	}

	return "\n" + header + "\n" + content + "\n  " + zstyle.MutedText.Render(help) + "\n"
}

func (m Model) resultView() string {
	var b strings.Builder
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString("  " + zstyle.StatusErr.Render("generation failed: "+m.err.Error()) + "\n")
		return b.String()
	}

	b.WriteString("  " + zstyle.StatusOK.Render(cli.Confirmation) + "\n\n")
	fmt.Fprintf(&b, "  %s %d\n", zstyle.MutedText.Render(fmt.Sprintf("%-10s", "customers")), m.summary.Customers)
	fmt.Fprintf(&b, "  %s %d\n", zstyle.MutedText.Render(fmt.Sprintf("%-10s", "orders")), m.summary.Orders)
	for _, f := range m.summary.Files {
		fmt.Fprintf(&b, "  %s %s\n", zstyle.MutedText.Render(fmt.Sprintf("%-10s", "wrote")), f)
	}
	return b.String()
}
