package terminal

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pgproj/pgproj/pkg/flow"
)

// validatedMsg carries the result of an asynchronous validation attempt back
// into the update loop.
type validatedMsg struct {
	value   string
	message string
	err     error
}

// inputModel drives a free-text prompt. Each accept attempt disables the
// input while the descriptor's validator runs; a non-empty message keeps the
// prompt open with the message rendered inline.
type inputModel struct {
	ctx        context.Context
	prompt     flow.InputPrompt
	input      textinput.Model
	validating bool
	message    string
	answer     flow.InputAnswer
	err        error
	done       bool
}

func newInputModel(ctx context.Context, prompt flow.InputPrompt) inputModel {
	ti := textinput.New()
	ti.Placeholder = prompt.Placeholder
	ti.SetValue(prompt.Value)
	ti.CursorEnd()
	ti.Focus()

	return inputModel{ctx: ctx, prompt: prompt, input: ti}
}

func (m inputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch key := msg.String(); key {
		case "enter":
			if m.validating {
				return m, nil
			}
			return m.accept()

		case "esc", "ctrl+c":
			m.err = flow.ErrCancelled
			m.done = true
			return m, tea.Quit

		case "ctrl+b":
			if m.prompt.AllowBack && !m.validating {
				m.err = flow.ErrBack
				m.done = true
				return m, tea.Quit
			}

		default:
			if b, ok := buttonFor(m.prompt.Buttons, key); ok && !m.validating {
				m.answer = flow.InputAnswer{Button: b.ID}
				m.done = true
				return m, tea.Quit
			}
		}

	case validatedMsg:
		m.validating = false

		if msg.err != nil {
			// The validator itself failed; this is a fault, not an invalid
			// value.
			m.err = msg.err
			m.done = true
			return m, tea.Quit
		}

		if msg.message != "" {
			// Invalid: surface the message inline and re-enable the prompt.
			m.message = msg.message
			m.input.Focus()
			return m, nil
		}

		m.answer = flow.InputAnswer{Value: msg.value}
		m.done = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// accept starts an accept attempt: with no validator the value resolves
// immediately, otherwise the input is disabled while validation runs.
func (m inputModel) accept() (tea.Model, tea.Cmd) {
	value := m.input.Value()

	if m.prompt.Validate == nil {
		m.answer = flow.InputAnswer{Value: value}
		m.done = true
		return m, tea.Quit
	}

	m.validating = true
	m.message = ""
	m.input.Blur()

	validate := m.prompt.Validate
	ctx := m.ctx

	return m, func() tea.Msg {
		message, err := validate(ctx, value)
		return validatedMsg{value: value, message: message, err: err}
	}
}

func (m inputModel) View() string {
	if m.done {
		return ""
	}

	view := header(m.prompt.Title, m.prompt.Step, m.prompt.Total) + "\n"
	if m.prompt.Label != "" {
		view += m.prompt.Label + "\n"
	}
	view += m.input.View() + "\n"

	switch {
	case m.validating:
		view += hintStyle.Render("validating...") + "\n"
	case m.message != "":
		view += errStyle.Render(m.message) + "\n"
	}

	view += hints(m.prompt.AllowBack, m.prompt.Buttons)

	return view
}
