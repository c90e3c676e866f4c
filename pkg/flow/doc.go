// Package flow implements a multi-step interactive input flow: an ordered
// chain of steps where each step prompts the user for one value, with support
// for navigating backward, resuming a prior prompt after a side action, and
// cancelling the whole flow.
//
// # Steps
//
// A Step is a function of the flow and whatever state its closures capture.
// It runs one or more prompts, records the answer, and returns the next step
// to execute (or nil when the flow is complete). Steps have no identity
// beyond their position in the flow's history stack.
//
// # Signals
//
// Navigation is communicated through three sentinel errors rather than
// ordinary return values: ErrBack rewinds to the previous step, ErrResume
// re-runs the previous step without discarding collected state, and
// ErrCancelled terminates the flow. All three are interpreted at a single
// dispatch point inside Run; any other error is treated as a fault and
// propagates to the caller unchanged.
//
// # Prompts
//
// Steps render prompts through the Prompter interface, which decouples step
// logic from the concrete rendering mechanism. Terminal implementations live
// in the flow/terminal package; tests typically supply a scripted prompter.
// The engine guarantees at most one prompt is live at any time and that the
// final prompt is released when the flow exits, on every path.
//
// # Example
//
//	type answers struct {
//		objectType string
//		name       string
//	}
//
//	var a answers
//
//	var nameStep, typeStep flow.Step
//
//	typeStep = func(ctx context.Context, f *flow.Flow) (flow.Step, error) {
//		res, err := f.Select(ctx, flow.SelectPrompt{
//			Title: "Select object type",
//			Step:  1,
//			Total: 2,
//			Items: []flow.Item{{Label: "Table"}, {Label: "Stored Procedure"}},
//		})
//		if err != nil {
//			return nil, err
//		}
//		a.objectType = res.Item.Label
//		return nameStep, nil
//	}
//
//	nameStep = func(ctx context.Context, f *flow.Flow) (flow.Step, error) {
//		res, err := f.Input(ctx, flow.InputPrompt{Title: "Name", Step: 2, Total: 2})
//		if err != nil {
//			return nil, err
//		}
//		a.name = res.Value
//		return nil, nil
//	}
//
//	err := flow.New(prompter).Run(ctx, typeStep)
//	if errors.Is(err, flow.ErrCancelled) {
//		// user aborted; a is incomplete
//	}
package flow
