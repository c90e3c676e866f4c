package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/pgproj/pgproj/pkg/consts"
	"github.com/pgproj/pgproj/pkg/docker"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"
)

// dev creates the CLI command group for managing a local PostgreSQL
// development server.
//
// `dev up` starts a disposable PostgreSQL container matching the project's
// configured version and prints connection details. The container keeps
// running after the command exits; `dev down` stops and removes it.
func dev() *cli.Command {
	return &cli.Command{
		Name:   "dev",
		Usage:  "Manage local PostgreSQL development server",
		Before: requireProject,
		Commands: []*cli.Command{
			devUp(),
			devDown(),
		},
	}
}

// containerInfo tracks the running dev container between invocations.
type containerInfo struct {
	ID string `json:"id"`
}

func devUp() *cli.Command {
	return &cli.Command{
		Name:   "up",
		Usage:  "Start PostgreSQL development server",
		Action: runDevUpCommand,
	}
}

func devDown() *cli.Command {
	return &cli.Command{
		Name:   "down",
		Usage:  "Stop and remove PostgreSQL development server",
		Action: runDevDownCommand,
	}
}

func runDevUpCommand(ctx context.Context, cmd *cli.Command) error {
	_, cfg, err := loadProjectConfig()
	if err != nil {
		return err
	}

	if id, running := devContainerRunning(ctx); running {
		fmt.Fprintf(cmd.Writer, "PostgreSQL development server is already running (%s)\n", shortID(id))
		fmt.Fprintln(cmd.Writer, "Use 'pgproj dev down' to stop it first")
		return nil
	}

	fmt.Fprintf(cmd.Writer, "Starting PostgreSQL %s container...\n", cfg.PostgreSQL.Version)

	server := docker.NewWithOptions(docker.Options{
		Version:  cfg.PostgreSQL.Version,
		Database: cfg.Name,
	})

	if err := server.Start(ctx); err != nil {
		return err
	}
	// Don't defer server.Stop() - the container keeps running for dev down.

	dsn, err := server.GetDSN(ctx)
	if err != nil {
		_ = server.Stop(ctx)
		return err
	}

	if err := server.Ping(ctx); err != nil {
		_ = server.Stop(ctx)
		return err
	}

	if err := saveDevContainerInfo(server); err != nil {
		fmt.Fprintf(cmd.Writer, "Warning: failed to save container info: %v\n", err)
	}

	printConnectionDetails(cmd, dsn)
	return nil
}

func runDevDownCommand(ctx context.Context, cmd *cli.Command) error {
	id, running := devContainerRunning(ctx)
	if !running {
		fmt.Fprintln(cmd.Writer, "No PostgreSQL development server is currently running")
		return removeDevContainerInfo()
	}

	if out, err := exec.CommandContext(ctx, "docker", "rm", "-f", id).CombinedOutput(); err != nil {
		return errors.Wrapf(err, "failed to remove container %s: %s", shortID(id), strings.TrimSpace(string(out)))
	}

	fmt.Fprintln(cmd.Writer, "PostgreSQL development server stopped")
	return removeDevContainerInfo()
}

func printConnectionDetails(cmd *cli.Command, dsn string) {
	fmt.Fprintln(cmd.Writer, "\n"+strings.Repeat("=", 60))
	fmt.Fprintln(cmd.Writer, "PostgreSQL Development Server Started")
	fmt.Fprintln(cmd.Writer, strings.Repeat("=", 60))
	fmt.Fprintf(cmd.Writer, "DSN: %s\n", dsn)
	fmt.Fprintln(cmd.Writer, "\nUse 'pgproj dev down' to stop the server")
	fmt.Fprintln(cmd.Writer, strings.Repeat("=", 60))
}

func devContainerInfoPath() string {
	return filepath.Join(os.TempDir(), "pgproj-dev-container.json")
}

// devContainerRunning reports whether the container recorded by the last
// `dev up` still exists.
func devContainerRunning(ctx context.Context) (string, bool) {
	data, err := os.ReadFile(devContainerInfoPath())
	if err != nil {
		return "", false
	}

	var info containerInfo
	if err := json.Unmarshal(data, &info); err != nil || info.ID == "" {
		return "", false
	}

	if err := exec.CommandContext(ctx, "docker", "inspect", info.ID).Run(); err != nil {
		return "", false
	}

	return info.ID, true
}

func saveDevContainerInfo(server *docker.DevServer) error {
	id, err := server.ContainerID()
	if err != nil {
		return err
	}

	data, err := json.Marshal(containerInfo{ID: id})
	if err != nil {
		return errors.Wrap(err, "failed to marshal container info")
	}

	return errors.Wrap(
		os.WriteFile(devContainerInfoPath(), data, consts.ModeFile),
		"failed to write container info",
	)
}

func removeDevContainerInfo() error {
	if err := os.Remove(devContainerInfoPath()); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "failed to remove container info")
	}

	return nil
}

func shortID(id string) string {
	if len(id) > 12 {
		return id[:12]
	}

	return id
}
