package cmd

import (
	"path/filepath"
	"testing"

	"github.com/pgproj/pgproj/pkg/cmd/testutil"
	"github.com/pgproj/pgproj/pkg/config"
	"github.com/pgproj/pgproj/pkg/project"
	"github.com/stretchr/testify/require"
)

// withProject initializes a project in a temp dir and points the global
// project detection at it for the duration of the test.
func withProject(t *testing.T) *project.Project {
	t.Helper()

	p := project.New(t.TempDir())
	require.NoError(t, p.Initialize(project.InitOptions{Name: "testdb"}))

	prev := currentProject
	currentProject = p
	t.Cleanup(func() { currentProject = prev })

	return p
}

// withoutProject clears project detection for the duration of the test.
func withoutProject(t *testing.T) {
	t.Helper()

	prev := currentProject
	currentProject = nil
	t.Cleanup(func() { currentProject = prev })
}

func TestInitCommand_CreatesProject(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	withoutProject(t)

	out, err := testutil.RunCommandWithOutput(t, initCmd(), []string{"--name", "myapp"})
	require.NoError(t, err)
	require.Contains(t, out, "Project initialized")

	testutil.RequireValidProject(t, dir)

	cfg, err := config.LoadConfigFile(filepath.Join(dir, "pgproject.yaml"))
	require.NoError(t, err)
	require.Equal(t, "myapp", cfg.Name)
}

func TestInitCommand_IsIdempotent(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	withoutProject(t)

	_, err := testutil.RunCommandWithOutput(t, initCmd(), []string{"--name", "first"})
	require.NoError(t, err)

	// Re-running must not clobber the existing config.
	_, err = testutil.RunCommandWithOutput(t, initCmd(), nil)
	require.NoError(t, err)

	cfg, err := config.LoadConfigFile(filepath.Join(dir, "pgproject.yaml"))
	require.NoError(t, err)
	require.Equal(t, "first", cfg.Name)
}

func TestInitCommand_UsesDetectedProject(t *testing.T) {
	p := withProject(t)

	out, err := testutil.RunCommandWithOutput(t, initCmd(), nil)
	require.NoError(t, err)
	require.Contains(t, out, "Project initialized")

	testutil.RequireValidProject(t, p.Root())
}
