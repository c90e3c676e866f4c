package cmd

import (
	"testing"

	"github.com/pgproj/pgproj/pkg/cmd/testutil"
	"github.com/stretchr/testify/require"
)

func TestBuildCommand_RequiresProject(t *testing.T) {
	withoutProject(t)

	_, err := testutil.RunCommandWithOutput(t, buildCmd(nil), nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "pgproject.yaml not found")
}

func TestBuildCommand_NoSourceFiles(t *testing.T) {
	withProject(t)

	out, err := testutil.RunCommandWithOutput(t, buildCmd(nil), nil)
	require.NoError(t, err)
	require.Contains(t, out, "No source files to build")
}
