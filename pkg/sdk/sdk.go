package sdk

import (
	"context"
	"os/exec"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/pkg/errors"
)

// versionPattern extracts a semantic version from `pgsdk --version` output,
// which varies across SDK releases ("pgsdk version 1.4.2", "pgsdk/1.4.2").
var versionPattern = regexp.MustCompile(`\d+\.\d+\.\d+(?:[-+][0-9A-Za-z.-]+)?`)

type (
	// Runner executes a toolchain command and returns its combined output.
	Runner interface {
		Run(ctx context.Context, name string, args ...string) (string, error)
	}

	// Toolchain invokes the external SDK command for version discovery and
	// source compilation.
	Toolchain struct {
		command string
		runner  Runner
	}

	// Option configures a Toolchain.
	Option func(*Toolchain)

	// FileResult is the outcome of compiling a single source file.
	FileResult struct {
		// File is the path that was compiled
		File string

		// Output is the toolchain's combined stdout/stderr for this file
		Output string

		// Err is non-nil when compilation failed
		Err error
	}

	// BuildReport collects per-file results for a build run.
	BuildReport struct {
		Results []FileResult
	}

	execRunner struct{}
)

// WithRunner overrides subprocess execution. Used by tests to substitute a
// fake toolchain.
func WithRunner(r Runner) Option {
	return func(t *Toolchain) { t.runner = r }
}

// New creates a Toolchain that invokes the given command.
func New(command string, opts ...Option) *Toolchain {
	t := &Toolchain{
		command: command,
		runner:  execRunner{},
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Command returns the configured toolchain command name.
func (t *Toolchain) Command() string { return t.command }

// Version runs `<command> --version` and extracts the toolchain's semantic
// version from its output.
func (t *Toolchain) Version(ctx context.Context) (*semver.Version, error) {
	out, err := t.runner.Run(ctx, t.command, "--version")
	if err != nil {
		return nil, errors.Wrapf(err, "failed to run %s --version", t.command)
	}

	match := versionPattern.FindString(out)
	if match == "" {
		return nil, errors.Errorf("no version found in %s output: %q", t.command, strings.TrimSpace(out))
	}

	version, err := semver.NewVersion(match)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse version %q", match)
	}

	return version, nil
}

// CheckVersion verifies the installed toolchain version falls within the
// inclusive [min, max] range.
func (t *Toolchain) CheckVersion(ctx context.Context, min, max string) error {
	constraint, err := semver.NewConstraint(">= " + min + ", <= " + max)
	if err != nil {
		return errors.Wrapf(err, "invalid version range [%s, %s]", min, max)
	}

	version, err := t.Version(ctx)
	if err != nil {
		return err
	}

	if !constraint.Check(version) {
		return errors.Errorf(
			"%s version %s is outside the supported range [%s, %s]",
			t.command, version, min, max,
		)
	}

	return nil
}

// Build compiles each source file in order via `<command> build <file>`,
// continuing past failures so the report covers every file. A non-nil error
// is returned only when the run was interrupted by ctx.
func (t *Toolchain) Build(ctx context.Context, files []string) (*BuildReport, error) {
	report := &BuildReport{Results: make([]FileResult, 0, len(files))}

	for _, file := range files {
		select {
		case <-ctx.Done():
			return report, errors.Wrap(ctx.Err(), "build interrupted")
		default:
		}

		out, err := t.runner.Run(ctx, t.command, "build", file)
		if err != nil {
			err = errors.Wrapf(err, "failed to compile %s", file)
		}

		report.Results = append(report.Results, FileResult{
			File:   file,
			Output: out,
			Err:    err,
		})
	}

	return report, nil
}

// Failed returns the results whose compilation failed.
func (r *BuildReport) Failed() []FileResult {
	var failed []FileResult
	for _, result := range r.Results {
		if result.Err != nil {
			failed = append(failed, result)
		}
	}

	return failed
}

func (execRunner) Run(ctx context.Context, name string, args ...string) (string, error) {
	out, err := exec.CommandContext(ctx, name, args...).CombinedOutput()
	return string(out), err
}
