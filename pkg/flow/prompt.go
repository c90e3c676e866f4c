package flow

import "context"

type (
	// Item is a selectable entry in a choice prompt.
	Item struct {
		// Label is the value shown to (and selected by) the user
		Label string

		// Detail is an optional secondary line rendered under the label
		Detail string
	}

	// Button is an extra action offered alongside a prompt. Triggering it
	// resolves the prompt with the button's ID so the step can run a side
	// action and decide how to continue (typically by returning ErrResume).
	Button struct {
		// ID identifies the button in the prompt's answer
		ID string

		// Key is the key binding that triggers the button (e.g. "ctrl+e")
		Key string

		// Label is the hint text shown for the binding
		Label string
	}

	// SelectPrompt configures a single-selection list prompt. A descriptor
	// is immutable once passed to the prompter and is superseded by the next
	// step's prompt.
	SelectPrompt struct {
		// Title is the prompt heading
		Title string

		// Step and Total render the "step n of m" position indicator
		Step  int
		Total int

		// Items is the ordered list of selectable entries
		Items []Item

		// Active is the label of the item to pre-select, if any
		Active string

		// Placeholder is optional helper text shown with the list
		Placeholder string

		// Buttons are extra actions offered alongside the list
		Buttons []Button

		// AllowBack is set by the flow from its history depth; prompters
		// offer the back control only when it is true
		AllowBack bool
	}

	// SelectAnswer is the resolution of a choice prompt: either a selected
	// item or the ID of a triggered button, never both.
	SelectAnswer struct {
		Item   Item
		Button string
	}

	// ValidateFunc checks a submitted value and returns a user-facing
	// message when it is invalid. An empty message accepts the value. A
	// non-nil error is a fault (the validator itself failed) and aborts the
	// prompt.
	ValidateFunc func(ctx context.Context, value string) (string, error)

	// InputPrompt configures a free-text prompt.
	InputPrompt struct {
		// Title is the prompt heading
		Title string

		// Step and Total render the "step n of m" position indicator
		Step  int
		Total int

		// Value is the initial text, letting steps pre-fill a previous or
		// default answer
		Value string

		// Label describes the requested value (e.g. "Object name")
		Label string

		// Placeholder is shown while the input is empty
		Placeholder string

		// Validate is run once per accept attempt; nil accepts anything
		Validate ValidateFunc

		// Buttons are extra actions offered alongside the input
		Buttons []Button

		// AllowBack is set by the flow from its history depth
		AllowBack bool
	}

	// InputAnswer is the resolution of a text prompt: the accepted value or
	// the ID of a triggered button.
	InputAnswer struct {
		Value  string
		Button string
	}

	// Prompter renders prompts on behalf of a flow. Implementations must
	// keep at most one prompt live at a time, releasing the previous one
	// before rendering the next, and must release all prompt resources on
	// every exit path. Close releases whatever prompt is still live; the
	// flow calls it when the run loop exits.
	//
	// Select and Input block until exactly one user interaction resolves
	// the prompt. They report back-navigation as ErrBack and dismissal
	// without a selection as ErrCancelled.
	Prompter interface {
		Select(ctx context.Context, prompt SelectPrompt) (SelectAnswer, error)
		Input(ctx context.Context, prompt InputPrompt) (InputAnswer, error)
		Close() error
	}
)
