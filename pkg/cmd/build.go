package cmd

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pgproj/pgproj/pkg/config"
	"github.com/pgproj/pgproj/pkg/sdk"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"
)

var (
	passMark = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Render("✓")
	failMark = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Render("✗")
)

// buildCmd creates a CLI command for compiling project sources with the SDK
// toolchain.
//
// The command verifies the installed toolchain version falls within the range
// declared in pgproject.yaml, then compiles each registered source file in
// order. Compilation continues past failures so a single run reports every
// broken file; the command exits non-zero when any file failed.
//
// Flags:
//   - --skip-version-check: Build even when the toolchain version is outside
//     the declared range
//
// Examples:
//
//	pgproj build
//	pgproj build --skip-version-check
func buildCmd(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:   "build",
		Usage:  "Compile project sources with the SDK toolchain",
		Before: requireProject,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "skip-version-check",
				Usage: "build even when the toolchain version is outside the declared range",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runBuildCommand(ctx, cmd, cfg)
		},
	}
}

func runBuildCommand(ctx context.Context, cmd *cli.Command, cfg *config.Config) error {
	proj, cfg, err := effectiveConfig(cfg)
	if err != nil {
		return err
	}

	files, err := proj.SourceFiles()
	if err != nil {
		return err
	}

	if len(files) == 0 {
		fmt.Fprintln(cmd.Writer, "No source files to build")
		return nil
	}

	toolchain := sdk.New(cfg.PostgreSQL.SDK.Command)

	if !cmd.Bool("skip-version-check") {
		if err := toolchain.CheckVersion(ctx, cfg.PostgreSQL.SDK.MinVersion, cfg.PostgreSQL.SDK.MaxVersion); err != nil {
			return err
		}
	}

	report, err := toolchain.Build(ctx, files)
	if err != nil {
		return err
	}

	for _, result := range report.Results {
		rel, relErr := filepath.Rel(proj.Root(), result.File)
		if relErr != nil {
			rel = result.File
		}

		if result.Err != nil {
			fmt.Fprintf(cmd.Writer, "%s %s\n", failMark, filepath.ToSlash(rel))
			if out := strings.TrimSpace(result.Output); out != "" {
				fmt.Fprintf(cmd.Writer, "  %s\n", strings.ReplaceAll(out, "\n", "\n  "))
			}
		} else {
			fmt.Fprintf(cmd.Writer, "%s %s\n", passMark, filepath.ToSlash(rel))
		}
	}

	if failed := report.Failed(); len(failed) > 0 {
		return errors.Errorf("%d of %d files failed to compile", len(failed), len(report.Results))
	}

	fmt.Fprintf(cmd.Writer, "Compiled %d files\n", len(report.Results))
	return nil
}
