package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zseed/internal/cli"
)

const (
	fieldCustomers = iota
	fieldMinOrders
	fieldMaxOrders
	fieldStatuses
	fieldRandomStatus
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"customers",
	"min orders",
	"max orders",
	"statuses",
	"random status",
}

// formModel edits the five generation parameters.
type formModel struct {
	inputs [fieldCount]textinput.Model
	focus  int
}

// submitMsg carries the parsed configuration to generate.
type submitMsg struct {
	config cli.Config
}

func newFormModel(cfg cli.Config) formModel {
	var inputs [fieldCount]textinput.Model
	for i := range fieldCount {
		ti := textinput.New()
		ti.CharLimit = 256
		ti.Width = 40
		ti.Prompt = ""
		inputs[i] = ti
	}

	inputs[fieldCustomers].SetValue(strconv.Itoa(cfg.Customers))
	inputs[fieldMinOrders].SetValue(strconv.Itoa(cfg.MinOrders))
	inputs[fieldMaxOrders].SetValue(strconv.Itoa(cfg.MaxOrders))
	inputs[fieldStatuses].SetValue(strings.Join(cfg.Statuses, ","))
	inputs[fieldRandomStatus].SetValue(strconv.FormatBool(cfg.RandomStatus))

	m := formModel{inputs: inputs}
	m.inputs[m.focus].Focus()
	return m
}

func (m formModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m formModel) Update(msg tea.Msg) (formModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "tab", "down":
			return m.moveFocus(1), textinput.Blink
		case "shift+tab", "up":
			return m.moveFocus(-1), textinput.Blink
		}

		if key.Matches(msg, zstyle.KeyEnter) {
			return m, m.submit()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m formModel) moveFocus(delta int) formModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + fieldCount) % fieldCount
	m.inputs[m.focus].Focus()
	return m
}

// values returns the raw field contents in positional argument order.
func (m formModel) values() []string {
	vals := make([]string, fieldCount)
	for i := range fieldCount {
		vals[i] = strings.TrimSpace(m.inputs[i].Value())
	}
	return vals
}

// submit parses the fields exactly like command-line arguments so both
// surfaces apply the same defaults.
func (m formModel) submit() tea.Cmd {
	cfg, _ := cli.ParseArgs(m.values())
	return func() tea.Msg { return submitMsg{config: cfg} }
}

func (m formModel) View() string {
	s := "\n"
	for i := range fieldCount {
		label := zstyle.MutedText.Render(fmt.Sprintf("%-14s", fieldLabels[i]))
		cursor := "  "
		if i == m.focus {
			cursor = "> "
		}
		s += fmt.Sprintf("  %s%s %s\n", cursor, label, m.inputs[i].View())
	}
	return s
}
