package terminal

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pgproj/pgproj/pkg/flow"
	"github.com/stretchr/testify/require"
)

func choicePrompt() flow.SelectPrompt {
	return flow.SelectPrompt{
		Title: "Select object type",
		Step:  1,
		Total: 2,
		Items: []flow.Item{
			{Label: "Table", Detail: "A new table definition"},
			{Label: "Stored Procedure", Detail: "A new stored procedure"},
		},
	}
}

func updateSelect(t *testing.T, m selectModel, msgs ...tea.Msg) selectModel {
	t.Helper()

	for _, msg := range msgs {
		next, _ := m.Update(msg)

		var ok bool
		m, ok = next.(selectModel)
		require.True(t, ok, "model type must be stable across updates")
	}

	return m
}

func TestSelectResolvesOnEnter(t *testing.T) {
	m := newSelectModel(choicePrompt())
	m = updateSelect(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	require.True(t, m.done)
	require.NoError(t, m.err)
	require.Equal(t, "Table", m.answer.Item.Label)
}

func TestSelectNavigatesWithArrowKeys(t *testing.T) {
	m := newSelectModel(choicePrompt())
	m = updateSelect(t, m,
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyEnter},
	)

	require.True(t, m.done)
	require.Equal(t, "Stored Procedure", m.answer.Item.Label)
}

func TestSelectPreselectsActiveItem(t *testing.T) {
	prompt := choicePrompt()
	prompt.Active = "Stored Procedure"

	m := newSelectModel(prompt)
	m = updateSelect(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	require.True(t, m.done)
	require.Equal(t, "Stored Procedure", m.answer.Item.Label)
}

func TestSelectDismissalCancels(t *testing.T) {
	m := newSelectModel(choicePrompt())
	m = updateSelect(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	require.True(t, m.done)
	require.ErrorIs(t, m.err, flow.ErrCancelled)
}

func TestSelectBackOnlyWhenAllowed(t *testing.T) {
	// Back is ignored on the first step.
	m := newSelectModel(choicePrompt())
	m = updateSelect(t, m, tea.KeyMsg{Type: tea.KeyCtrlB})
	require.False(t, m.done)

	// And honored when the flow offers it.
	prompt := choicePrompt()
	prompt.AllowBack = true

	m = newSelectModel(prompt)
	m = updateSelect(t, m, tea.KeyMsg{Type: tea.KeyCtrlB})
	require.True(t, m.done)
	require.ErrorIs(t, m.err, flow.ErrBack)
}

func TestSelectButtonResolvesWithID(t *testing.T) {
	prompt := choicePrompt()
	prompt.Buttons = []flow.Button{{ID: "refresh", Key: "ctrl+r", Label: "refresh list"}}

	m := newSelectModel(prompt)
	m = updateSelect(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})

	require.True(t, m.done)
	require.NoError(t, m.err)
	require.Equal(t, "refresh", m.answer.Button)
	require.Empty(t, m.answer.Item.Label)
}

func TestSelectViewShowsStepPosition(t *testing.T) {
	m := newSelectModel(choicePrompt())

	view := m.View()
	require.Contains(t, view, "Select object type")
	require.Contains(t, view, "step 1 of 2")
	require.Contains(t, view, "esc cancel")
}
