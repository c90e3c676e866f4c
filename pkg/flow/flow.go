package flow

import (
	"context"

	"github.com/pkg/errors"
)

// Flow-control signals. Steps (and prompters acting on their behalf) return
// these to redirect the engine instead of advancing; they are expected
// outcomes, not failures. Run interprets exactly these three and treats
// every other error as a fault.
var (
	// ErrBack rewinds the flow to the previous step so the user can revise
	// an earlier answer. The current step is abandoned.
	ErrBack = errors.New("flow: back")

	// ErrResume re-runs the previous step without discarding state already
	// collected. Steps return it after handling a prompt button whose side
	// action should hand control back to the prior prompt.
	ErrResume = errors.New("flow: resume")

	// ErrCancelled terminates the flow. Callers must treat it as "user
	// aborted" rather than a failure; the shared state is incomplete.
	ErrCancelled = errors.New("flow: cancelled")
)

// Step is one stage of a multi-step flow. It prompts for a value through the
// flow, records the answer in state captured by its closure, and returns the
// step that should run next. Returning a nil Step with a nil error completes
// the flow.
type Step func(ctx context.Context, f *Flow) (Step, error)

// Flow executes a chain of steps, maintaining a navigable history so that
// back and resume signals can rewind to earlier prompts. A Flow drives one
// invocation at a time and must not be shared across concurrent flows.
type Flow struct {
	prompter Prompter
	history  []Step
}

// New creates a flow that renders prompts through the given prompter.
func New(p Prompter) *Flow {
	return &Flow{prompter: p}
}

// Run executes the flow starting from first. Each step is invoked with the
// flow; a returned next step is pushed onto the history and becomes current.
// Flow-control signals are dispatched here and nowhere else:
//
//   - ErrBack pops the current step and re-executes the one before it. If no
//     earlier step remains the flow ends without completing and Run returns
//     ErrCancelled.
//   - ErrResume pops the current step and re-executes the previous one,
//     preserving all state collected so far.
//   - ErrCancelled stops the loop; Run returns it so callers can distinguish
//     a user abort from success.
//
// Any other error is a fault and propagates unchanged. On every exit path
// the prompter is closed, releasing whatever prompt is still live.
func (f *Flow) Run(ctx context.Context, first Step) error {
	defer func() { _ = f.prompter.Close() }()

	f.history = append(f.history[:0], first)

	for len(f.history) > 0 {
		current := f.history[len(f.history)-1]

		next, err := current(ctx, f)
		switch {
		case err == nil:
			if next == nil {
				return nil
			}
			f.history = append(f.history, next)
		case errors.Is(err, ErrBack), errors.Is(err, ErrResume):
			// Abandon the current step; the previous one is now on top and
			// re-runs on the next iteration, pre-populated from state.
			f.history = f.history[:len(f.history)-1]
		case errors.Is(err, ErrCancelled):
			return ErrCancelled
		default:
			return err
		}
	}

	// Backed out past the first step; the flow never completed.
	return ErrCancelled
}

// Depth reports how many steps have been entered, including the current one.
func (f *Flow) Depth() int {
	return len(f.history)
}

// Select renders a single-selection list prompt and suspends the calling
// step until the user selects an item, triggers a button, goes back, or
// dismisses the prompt. The back control is offered only when an earlier
// step exists to return to.
func (f *Flow) Select(ctx context.Context, prompt SelectPrompt) (SelectAnswer, error) {
	prompt.AllowBack = len(f.history) > 1
	return f.prompter.Select(ctx, prompt)
}

// Input renders a free-text prompt and suspends the calling step until the
// submitted text passes validation, a button is triggered, or the prompt is
// backed out of or dismissed. Validation runs once per accept attempt; an
// invalid submission keeps the prompt open with the message shown inline.
func (f *Flow) Input(ctx context.Context, prompt InputPrompt) (InputAnswer, error) {
	prompt.AllowBack = len(f.history) > 1
	return f.prompter.Input(ctx, prompt)
}
