package testutil

import (
	"bytes"
	"context"
	"testing"

	"github.com/urfave/cli/v3"
)

// RunCommand executes a command within a throwaway CLI app.
func RunCommand(t *testing.T, command *cli.Command, args []string) error {
	t.Helper()

	app := &cli.Command{
		Name:     "test",
		Commands: []*cli.Command{command},
	}

	fullArgs := append([]string{"test", command.Name}, args...)

	return app.Run(context.Background(), fullArgs)
}

// RunCommandWithOutput executes a command flattened into a test app and
// captures everything written to the command writer. Flattening (instead of
// registering a subcommand) keeps the writer on the command the action sees.
func RunCommandWithOutput(t *testing.T, command *cli.Command, args []string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	app := &cli.Command{
		Name:   "test",
		Flags:  command.Flags,
		Before: command.Before,
		Action: command.Action,
		Writer: &buf,
	}

	fullArgs := append([]string{"test"}, args...)

	err := app.Run(context.Background(), fullArgs)
	return buf.String(), err
}
