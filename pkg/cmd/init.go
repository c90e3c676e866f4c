package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/pgproj/pgproj/pkg/project"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"
)

// initCmd creates a CLI command for initializing a new pgproj project.
//
// The command scaffolds the standard project layout in the target directory:
// pgproject.yaml plus the sql/ source tree with a directory per object kind.
// Initialization is idempotent; existing files are never overwritten, so the
// command is safe to re-run in a partially initialized directory.
//
// Flags:
//   - --name, -n: Project name recorded in pgproject.yaml
//
// Examples:
//
//	# Initialize in the current directory
//	pgproj init
//
//	# Initialize with an explicit project name
//	pgproj init --name myapp
func initCmd() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Initialize a new pgproj project",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "name",
				Aliases: []string{"n"},
				Usage:   "the project name recorded in pgproject.yaml",
				Config: cli.StringConfig{
					TrimSpace: true,
				},
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			proj := currentProject
			if proj == nil {
				pwd, err := os.Getwd()
				if err != nil {
					return errors.Wrap(err, "failed to get current working directory")
				}

				proj = project.New(pwd)
			}

			if err := proj.Initialize(project.InitOptions{Name: cmd.String("name")}); err != nil {
				return errors.Wrap(err, "failed to initialize project")
			}

			currentProject = proj

			fmt.Fprintln(cmd.Writer, "Project initialized")
			return nil
		},
	}
}
