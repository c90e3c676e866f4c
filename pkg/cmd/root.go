package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/pgproj/pgproj/pkg/consts"
	"github.com/pgproj/pgproj/pkg/project"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"
	"go.uber.org/fx"
)

var currentProject *project.Project

type (
	Params struct {
		fx.In

		Args       []string
		Commands   []*cli.Command `group:"commands"`
		Ctx        context.Context
		Lifecycle  fx.Lifecycle
		Shutdowner fx.Shutdowner
		Version    *Version
	}

	Version struct {
		Version   string
		Commit    string
		Timestamp string
	}
)

// Run creates and executes the main pgproj CLI application with the given
// version and command-line arguments. This function serves as the main entry
// point for all CLI operations and handles global configuration.
//
// The function creates a CLI application with:
//   - Global --dir flag for specifying project directory
//   - Project auto-detection based on pgproject.yaml presence
//   - Command registration and routing
//   - Context propagation for cancellation support
//
// Global Flags:
//   - --dir, -d: Project directory (defaults to current directory)
//
// The application automatically detects pgproj projects by looking for
// pgproject.yaml in the specified directory. If found, it initializes the
// global currentProject variable for use by subcommands.
func Run(p Params) {
	cli.VersionPrinter = func(cmd *cli.Command) {
		fmt.Fprintln(cmd.Writer, "Version:", p.Version.Version)
		fmt.Fprintln(cmd.Writer, "Commit:", p.Version.Commit)
		fmt.Fprintln(cmd.Writer, "Date:", p.Version.Timestamp)
	}

	app := &cli.Command{
		Name:  "pgproj",
		Usage: "A tool for managing PostgreSQL database projects",
		Description: `pgproj is a CLI tool that helps you manage PostgreSQL database projects
by scaffolding schema objects, compiling sources with the SDK toolchain, and
running disposable development servers.`,
		Version: p.Version.Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "dir",
				Aliases:     []string{"d"},
				Usage:       "the project directory",
				Value:       ".",
				DefaultText: "Current directory",
				Config: cli.StringConfig{
					TrimSpace: true,
				},
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			projectDir := cmd.String("dir")

			// Change to project directory first
			if err := os.Chdir(projectDir); err != nil {
				return ctx, err
			}

			// Check if this is a pgproj project
			_, err := os.Stat(consts.ProjectFile)
			if os.IsNotExist(err) {
				return ctx, nil
			}

			if err != nil {
				return ctx, err
			}

			pwd, err := os.Getwd()
			if err != nil {
				return ctx, errors.Wrap(err, "failed to get current working directory")
			}

			currentProject = project.New(pwd)
			return ctx, nil
		},
		Commands: p.Commands,
	}

	p.Lifecycle.Append(fx.StartHook(func() {
		if err := app.Run(p.Ctx, p.Args); err != nil {
			slog.Error("Error running command", "err", err)
			_ = p.Shutdowner.Shutdown(fx.ExitCode(1))
		}

		_ = p.Shutdowner.Shutdown(fx.ExitCode(0))
	}))
}
