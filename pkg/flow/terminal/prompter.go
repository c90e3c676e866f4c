package terminal

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pgproj/pgproj/pkg/flow"
	"github.com/pkg/errors"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	stepStyle  = lipgloss.NewStyle().Faint(true)
	hintStyle  = lipgloss.NewStyle().Faint(true)
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

type (
	// Prompter renders flow prompts as bubbletea programs on a terminal.
	// It implements flow.Prompter.
	Prompter struct {
		in     io.Reader
		out    io.Writer
		active *tea.Program
	}

	// Option customizes a Prompter.
	Option func(*Prompter)
)

// WithInput overrides the input stream (defaults to os.Stdin).
func WithInput(r io.Reader) Option {
	return func(p *Prompter) { p.in = r }
}

// WithOutput overrides the output stream (defaults to os.Stdout).
func WithOutput(w io.Writer) Option {
	return func(p *Prompter) { p.out = w }
}

// New creates a terminal prompter.
//
// Example:
//
//	prompter := terminal.New()
//	defer prompter.Close()
//
//	err := flow.New(prompter).Run(ctx, firstStep)
func New(opts ...Option) *Prompter {
	p := &Prompter{in: os.Stdin, out: os.Stdout}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Select renders a single-selection list prompt and blocks until the user
// resolves it.
func (p *Prompter) Select(ctx context.Context, prompt flow.SelectPrompt) (flow.SelectAnswer, error) {
	final, err := p.run(ctx, newSelectModel(prompt))
	if err != nil {
		return flow.SelectAnswer{}, err
	}

	m, ok := final.(selectModel)
	if !ok {
		return flow.SelectAnswer{}, errors.Errorf("unexpected final model: %T", final)
	}
	if m.err != nil {
		return flow.SelectAnswer{}, m.err
	}
	if !m.done {
		// The program ended without a resolution (e.g. context cancelled).
		return flow.SelectAnswer{}, flow.ErrCancelled
	}

	return m.answer, nil
}

// Input renders a free-text prompt and blocks until the user resolves it.
func (p *Prompter) Input(ctx context.Context, prompt flow.InputPrompt) (flow.InputAnswer, error) {
	final, err := p.run(ctx, newInputModel(ctx, prompt))
	if err != nil {
		return flow.InputAnswer{}, err
	}

	m, ok := final.(inputModel)
	if !ok {
		return flow.InputAnswer{}, errors.Errorf("unexpected final model: %T", final)
	}
	if m.err != nil {
		return flow.InputAnswer{}, m.err
	}
	if !m.done {
		return flow.InputAnswer{}, flow.ErrCancelled
	}

	return m.answer, nil
}

// Close releases the live prompt, if any. The flow calls this when its run
// loop exits; it is safe to call multiple times.
func (p *Prompter) Close() error {
	p.release()
	return nil
}

// run executes a prompt program to completion. The previous program, if one
// is somehow still live, is released first so that at most one prompt is
// ever rendered.
func (p *Prompter) run(ctx context.Context, m tea.Model) (tea.Model, error) {
	p.release()

	prog := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithInput(p.in),
		tea.WithOutput(p.out),
	)
	p.active = prog
	defer func() { p.active = nil }()

	final, err := prog.Run()
	if err != nil {
		if ctx.Err() != nil {
			return nil, flow.ErrCancelled
		}
		return nil, errors.Wrap(err, "prompt failed")
	}

	return final, nil
}

func (p *Prompter) release() {
	if p.active != nil {
		p.active.Kill()
		p.active = nil
	}
}

// header renders the shared "title (step n of m)" heading.
func header(title string, step, total int) string {
	if total > 0 {
		return titleStyle.Render(title) + " " + stepStyle.Render(fmt.Sprintf("(step %d of %d)", step, total))
	}

	return titleStyle.Render(title)
}

// hints renders the footer key hints for a prompt.
func hints(allowBack bool, buttons []flow.Button, extra ...string) string {
	parts := append([]string{}, extra...)
	parts = append(parts, "enter confirm")
	if allowBack {
		parts = append(parts, "ctrl+b back")
	}
	for _, b := range buttons {
		parts = append(parts, fmt.Sprintf("%s %s", b.Key, b.Label))
	}
	parts = append(parts, "esc cancel")

	return hintStyle.Render(strings.Join(parts, " · "))
}

// buttonFor maps a pressed key to a declared prompt button.
func buttonFor(buttons []flow.Button, key string) (flow.Button, bool) {
	for _, b := range buttons {
		if b.Key == key {
			return b, true
		}
	}

	return flow.Button{}, false
}
