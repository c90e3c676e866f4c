package terminal

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pgproj/pgproj/pkg/flow"
)

const (
	listWidth  = 48
	listHeight = 14
)

// choiceItem adapts a flow.Item to the bubbles list.Item interface.
type choiceItem struct {
	item flow.Item
}

func (c choiceItem) Title() string       { return c.item.Label }
func (c choiceItem) Description() string { return c.item.Detail }
func (c choiceItem) FilterValue() string { return c.item.Label }

// selectModel drives a single-selection list prompt. The program quits as
// soon as the prompt resolves; done and err carry the outcome back to the
// prompter.
type selectModel struct {
	prompt flow.SelectPrompt
	list   list.Model
	answer flow.SelectAnswer
	err    error
	done   bool
}

func newSelectModel(prompt flow.SelectPrompt) selectModel {
	items := make([]list.Item, len(prompt.Items))
	for i, item := range prompt.Items {
		items[i] = choiceItem{item: item}
	}

	delegate := list.NewDefaultDelegate()
	l := list.New(items, delegate, listWidth, listHeight)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)

	// Pre-select the active item so re-entered steps keep their previous
	// answer as the default selection.
	if prompt.Active != "" {
		for i, item := range prompt.Items {
			if item.Label == prompt.Active {
				l.Select(i)
				break
			}
		}
	}

	return selectModel{prompt: prompt, list: l}
}

func (m selectModel) Init() tea.Cmd {
	return nil
}

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, min(msg.Height-4, listHeight))

	case tea.KeyMsg:
		switch key := msg.String(); key {
		case "enter":
			if item, ok := m.list.SelectedItem().(choiceItem); ok {
				m.answer = flow.SelectAnswer{Item: item.item}
				m.done = true
				return m, tea.Quit
			}

		case "esc", "ctrl+c":
			m.err = flow.ErrCancelled
			m.done = true
			return m, tea.Quit

		case "ctrl+b":
			if m.prompt.AllowBack {
				m.err = flow.ErrBack
				m.done = true
				return m, tea.Quit
			}

		default:
			if b, ok := buttonFor(m.prompt.Buttons, key); ok {
				m.answer = flow.SelectAnswer{Button: b.ID}
				m.done = true
				return m, tea.Quit
			}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m selectModel) View() string {
	if m.done {
		return ""
	}

	view := header(m.prompt.Title, m.prompt.Step, m.prompt.Total) + "\n"
	if m.prompt.Placeholder != "" {
		view += hintStyle.Render(m.prompt.Placeholder) + "\n"
	}
	view += m.list.View() + "\n"
	view += hints(m.prompt.AllowBack, m.prompt.Buttons)

	return view
}
