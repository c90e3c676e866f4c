package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pgproj/pgproj/pkg/parser"
	"github.com/stretchr/testify/require"
)

// RequireValidProject asserts that a project structure is correctly initialized
func RequireValidProject(t *testing.T, projectDir string) {
	t.Helper()

	// Check main directories exist
	require.DirExists(t, filepath.Join(projectDir, "sql"), "sql directory should exist")
	require.DirExists(t, filepath.Join(projectDir, "sql", "tables"), "tables directory should exist")
	require.DirExists(t, filepath.Join(projectDir, "sql", "views"), "views directory should exist")
	require.DirExists(t, filepath.Join(projectDir, "sql", "functions"), "functions directory should exist")
	require.DirExists(t, filepath.Join(projectDir, "sql", "procedures"), "procedures directory should exist")

	// Check main files exist
	require.FileExists(t, filepath.Join(projectDir, "pgproject.yaml"), "pgproject.yaml should exist")
}

// RequireFileExists asserts that a file exists and optionally checks its content
func RequireFileExists(t *testing.T, path string, checks ...func(content string)) {
	t.Helper()

	require.FileExists(t, path, "File should exist: %s", path)

	if len(checks) > 0 {
		content, err := os.ReadFile(path)
		require.NoError(t, err, "Failed to read file: %s", path)

		contentStr := string(content)
		for _, check := range checks {
			check(contentStr)
		}
	}
}

// RequireFileContains returns a check function that verifies file contains text
func RequireFileContains(t *testing.T, expected string) func(string) {
	return func(content string) {
		require.Contains(t, content, expected, "File should contain: %s", expected)
	}
}

// RequireSourceValid asserts that a project source file parses as DDL
func RequireSourceValid(t *testing.T, path string) {
	t.Helper()

	require.FileExists(t, path, "Source file should exist")

	content, err := os.ReadFile(path)
	require.NoError(t, err, "Failed to read source file")

	_, err = parser.ParseString(string(content))
	require.NoError(t, err, "Source should contain valid SQL: %s", path)
}
