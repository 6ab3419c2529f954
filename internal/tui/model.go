// Package tui implements the interactive strcalc prompt.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pengelbrecht/strcalc/internal/calculator"
	"github.com/pengelbrecht/strcalc/internal/input"
	"github.com/pengelbrecht/strcalc/internal/styles"
)

const maxHistory = 10

// evaluation is one input and its outcome.
type evaluation struct {
	input string
	sum   int
	err   error
}

// Model is the bubbletea model for the prompt.
type Model struct {
	input    textinput.Model
	escapes  bool
	current  evaluation
	history  []evaluation
	width    int
	quitting bool
}

// Option configures a Model.
type Option func(*Model)

// WithEscapes controls whether \n and friends are expanded before evaluation.
func WithEscapes(enabled bool) Option {
	return func(m *Model) {
		m.escapes = enabled
	}
}

// New returns a focused prompt.
func New(opts ...Option) Model {
	ti := textinput.New()
	ti.Placeholder = `1,2\n3 or //;\n1;2`
	ti.Prompt = "> "
	ti.CharLimit = 1024
	ti.Width = 50
	ti.Focus()

	m := Model{input: ti, escapes: true}
	for _, opt := range opts {
		opt(&m)
	}
	m.current = m.evaluate("")
	return m
}

// Run starts the prompt on the terminal and blocks until the user quits.
func Run(opts ...Option) error {
	_, err := tea.NewProgram(New(opts...)).Run()
	return err
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		if w := msg.Width - 4; w > 20 {
			m.input.Width = w
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			m.history = append(m.history, m.current)
			if len(m.history) > maxHistory {
				m.history = m.history[len(m.history)-maxHistory:]
			}
			m.input.Reset()
			m.current = m.evaluate("")
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != m.current.input {
		m.current = m.evaluate(m.input.Value())
	}
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(styles.RenderLabel("strcalc") + " " + styles.RenderDim("enter to record, esc to quit"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(renderResult(m.current))
	b.WriteString("\n")
	if detail := m.detail(); detail != "" {
		b.WriteString(styles.RenderDim(detail))
		b.WriteString("\n")
	}

	if len(m.history) > 0 {
		b.WriteString("\n")
		b.WriteString(styles.RenderLabel("History"))
		b.WriteString("\n")
		for i := len(m.history) - 1; i >= 0; i-- {
			h := m.history[i]
			b.WriteString(styles.RenderDim(strconv.Quote(h.input)) + "  " + renderResult(h))
			b.WriteString("\n")
		}
	}
	return b.String()
}

// Value returns the current raw input.
func (m Model) Value() string {
	return m.input.Value()
}

// Sum returns the evaluation of the current input.
func (m Model) Sum() (int, error) {
	return m.current.sum, m.current.err
}

func (m Model) evaluate(raw string) evaluation {
	text := raw
	if m.escapes {
		text = input.Unescape(raw)
	}
	sum, err := calculator.Add(text)
	return evaluation{input: raw, sum: sum, err: err}
}

// detail describes how the current input was split.
func (m Model) detail() string {
	text := m.current.input
	if m.escapes {
		text = input.Unescape(text)
	}
	expr, err := calculator.Parse(text)
	if err != nil || len(expr.Tokens()) == 0 {
		return ""
	}
	quoted := make([]string, 0, len(expr.Delimiters()))
	for _, d := range expr.Delimiters() {
		quoted = append(quoted, strconv.Quote(d))
	}
	return fmt.Sprintf("delimiters %s  tokens %d", strings.Join(quoted, " "), len(expr.Tokens()))
}

func renderResult(e evaluation) string {
	if e.err != nil {
		return styles.RenderError("✗ " + e.err.Error())
	}
	return styles.RenderSuccess("= " + strconv.Itoa(e.sum))
}
