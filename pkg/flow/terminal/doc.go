// Package terminal renders flow prompts in the terminal using bubbletea.
//
// Each prompt runs as its own bubbletea program following The Elm
// Architecture (model, update, view). The prompter keeps at most one program
// live at a time: starting a new prompt releases the previous program first,
// and Close releases whatever is still running. A program ends as soon as
// its prompt resolves, so key listeners never outlive the prompt they were
// registered for.
//
// Key bindings common to both prompt kinds:
//
//	enter   resolve (select the item / submit the text)
//	esc     dismiss the prompt (cancels the flow)
//	ctrl+b  go back to the previous step (only when one exists)
//
// Custom prompt buttons are bound to the keys their descriptors declare and
// resolve the prompt with the button's ID.
package terminal
