package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pgproj/pgproj/pkg/config"
	"github.com/pgproj/pgproj/pkg/flow"
	"github.com/pgproj/pgproj/pkg/flow/terminal"
	"github.com/pgproj/pgproj/pkg/project"
	"github.com/pgproj/pgproj/pkg/utils"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"
)

const wizardSteps = 3

// newCmd creates a CLI command for adding a database object to the project.
//
// Without flags the command launches a multi-step wizard: pick an object
// type, enter the target schema, then name the object. Each prompt supports
// going back to revise the previous answer (ctrl+b) and cancelling outright
// (esc). The name prompt additionally offers a shortcut back to the schema
// prompt (ctrl+e) that preserves everything entered so far.
//
// With --type and --name the wizard is skipped entirely, which makes the
// command scriptable:
//
//	pgproj new --type table --schema sales --name orders
//
// Flags:
//   - --type, -t: Object type (table, view, function, procedure)
//   - --schema, -s: Target schema (defaults to "public")
//   - --name, -n: Object name
//
// Either way the object is scaffolded from the type's template, written under
// the project source tree, and registered in pgproject.yaml.
func newCmd() *cli.Command {
	return &cli.Command{
		Name:   "new",
		Usage:  "Add a database object to the project",
		Before: requireProject,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "type",
				Aliases: []string{"t"},
				Usage:   "the object type (table, view, function, procedure)",
				Config: cli.StringConfig{
					TrimSpace: true,
				},
			},
			&cli.StringFlag{
				Name:    "schema",
				Aliases: []string{"s"},
				Usage:   "the target schema",
				Config: cli.StringConfig{
					TrimSpace: true,
				},
			},
			&cli.StringFlag{
				Name:    "name",
				Aliases: []string{"n"},
				Usage:   "the object name",
				Config: cli.StringConfig{
					TrimSpace: true,
				},
			},
		},
		Action: runNewCommand,
	}
}

func runNewCommand(ctx context.Context, cmd *cli.Command) error {
	proj, cfg, err := loadProjectConfig()
	if err != nil {
		return err
	}

	spec := project.ObjectSpec{
		Schema: cmd.String("schema"),
		Name:   cmd.String("name"),
	}

	if typeName := cmd.String("type"); typeName != "" {
		spec.Type, err = parseObjectTypeFlag(typeName)
		if err != nil {
			return err
		}
	}

	// Both flags present means the answers are already known; skip the wizard.
	if spec.Type == "" || spec.Name == "" {
		wizard := &objectWizard{proj: proj, cfg: cfg, spec: spec}

		err := flow.New(terminal.New()).Run(ctx, wizard.chooseType)
		if errors.Is(err, flow.ErrCancelled) {
			fmt.Fprintln(cmd.Writer, "Cancelled")
			return nil
		}
		if err != nil {
			return err
		}

		spec = wizard.spec
	}

	relPath, err := proj.AddObject(spec)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.Writer, "Created %s\n", relPath)
	return nil
}

// parseObjectTypeFlag resolves the --type flag value, wrapping the parse
// error with the accepted values.
func parseObjectTypeFlag(value string) (project.ObjectType, error) {
	t, err := project.ParseObjectType(value)
	if err != nil {
		return "", errors.Wrap(err, "expected one of: table, view, function, procedure")
	}

	return t, nil
}

// objectWizard collects an ObjectSpec across the wizard's steps. The
// ObjectSpec is the shared state the flow's back and resume navigation
// preserves: a re-entered step pre-fills its prompt from whatever was
// answered before.
type objectWizard struct {
	proj *project.Project
	cfg  *config.Config
	spec project.ObjectSpec
}

func (w *objectWizard) chooseType(ctx context.Context, f *flow.Flow) (flow.Step, error) {
	types := project.ObjectTypes()
	items := make([]flow.Item, len(types))
	for i, t := range types {
		items[i] = flow.Item{
			Label:  t.DisplayName(),
			Detail: filepath.ToSlash(filepath.Join(w.cfg.Dir, t.Dir())) + "/",
		}
	}

	var active string
	if w.spec.Type != "" {
		active = w.spec.Type.DisplayName()
	}

	answer, err := f.Select(ctx, flow.SelectPrompt{
		Title:  "What would you like to create?",
		Step:   1,
		Total:  wizardSteps,
		Items:  items,
		Active: active,
	})
	if err != nil {
		return nil, err
	}

	w.spec.Type, err = project.ParseObjectType(answer.Item.Label)
	if err != nil {
		return nil, err
	}

	return w.enterSchema, nil
}

func (w *objectWizard) enterSchema(ctx context.Context, f *flow.Flow) (flow.Step, error) {
	value := w.spec.Schema
	if value == "" {
		value = "public"
	}

	answer, err := f.Input(ctx, flow.InputPrompt{
		Title:    fmt.Sprintf("New %s", w.spec.Type.DisplayName()),
		Step:     2,
		Total:    wizardSteps,
		Label:    "Schema",
		Value:    value,
		Validate: validIdentifier("schema"),
	})
	if err != nil {
		return nil, err
	}

	w.spec.Schema = answer.Value
	return w.enterName, nil
}

func (w *objectWizard) enterName(ctx context.Context, f *flow.Flow) (flow.Step, error) {
	answer, err := f.Input(ctx, flow.InputPrompt{
		Title:       fmt.Sprintf("New %s in %s", w.spec.Type.DisplayName(), w.spec.Schema),
		Step:        3,
		Total:       wizardSteps,
		Label:       "Name",
		Value:       w.spec.Name,
		Placeholder: "e.g. orders",
		Validate:    w.validateName,
		Buttons: []flow.Button{
			{ID: "edit-schema", Key: "ctrl+e", Label: "edit schema"},
		},
	})
	if err != nil {
		return nil, err
	}

	if answer.Button == "edit-schema" {
		return nil, flow.ErrResume
	}

	w.spec.Name = answer.Value
	return nil, nil
}

// validateName rejects invalid identifiers and names whose definition file
// already exists in the project.
func (w *objectWizard) validateName(ctx context.Context, value string) (string, error) {
	if msg, err := validIdentifier("name")(ctx, value); msg != "" || err != nil {
		return msg, err
	}

	relPath := filepath.Join(w.cfg.Dir, w.spec.Type.Dir(), value+".sql")

	_, err := os.Stat(filepath.Join(w.proj.Root(), relPath))
	if err == nil {
		return fmt.Sprintf("%s already exists", filepath.ToSlash(relPath)), nil
	}
	if !os.IsNotExist(err) {
		return "", errors.Wrapf(err, "failed to stat %s", relPath)
	}

	return "", nil
}

func validIdentifier(kind string) flow.ValidateFunc {
	return func(_ context.Context, value string) (string, error) {
		if !utils.IsValidIdentifier(value) {
			return fmt.Sprintf("%q is not a valid %s (letters, digits, and underscores; max 63 chars)", value, kind), nil
		}

		return "", nil
	}
}
