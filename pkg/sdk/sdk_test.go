package sdk_test

import (
	"context"
	"strings"
	"testing"

	"github.com/pgproj/pgproj/pkg/sdk"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

type fakeRunner struct {
	versionOutput string
	failFiles     map[string]string
	calls         [][]string
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) (string, error) {
	f.calls = append(f.calls, append([]string{name}, args...))

	if len(args) > 0 && args[0] == "--version" {
		return f.versionOutput, nil
	}

	if len(args) == 2 && args[0] == "build" {
		if msg, ok := f.failFiles[args[1]]; ok {
			return msg, errors.New("exit status 1")
		}
		return "ok\n", nil
	}

	return "", errors.Errorf("unexpected invocation: %s %s", name, strings.Join(args, " "))
}

func TestVersionParsesToolchainOutput(t *testing.T) {
	tests := []struct {
		name     string
		output   string
		expected string
	}{
		{"plain", "pgsdk version 1.4.2\n", "1.4.2"},
		{"slash", "pgsdk/1.4.2 (linux/amd64)\n", "1.4.2"},
		{"prerelease", "pgsdk version 2.0.0-rc.1\n", "2.0.0-rc.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc := sdk.New("pgsdk", sdk.WithRunner(&fakeRunner{versionOutput: tt.output}))

			version, err := tc.Version(t.Context())
			require.NoError(t, err)
			require.Equal(t, tt.expected, version.String())
		})
	}
}

func TestVersionRejectsUnparseableOutput(t *testing.T) {
	tc := sdk.New("pgsdk", sdk.WithRunner(&fakeRunner{versionOutput: "pgsdk dev build\n"}))

	_, err := tc.Version(t.Context())
	require.Error(t, err)
	require.Contains(t, err.Error(), "no version found")
}

func TestCheckVersionEnforcesRange(t *testing.T) {
	tests := []struct {
		name    string
		version string
		wantErr bool
	}{
		{"below min", "0.9.0", true},
		{"at min", "1.0.0", false},
		{"inside", "1.4.2", false},
		{"at max", "2.0.0", false},
		{"above max", "2.1.0", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := &fakeRunner{versionOutput: "pgsdk version " + tt.version + "\n"}
			tc := sdk.New("pgsdk", sdk.WithRunner(runner))

			err := tc.CheckVersion(t.Context(), "1.0.0", "2.0.0")
			if tt.wantErr {
				require.Error(t, err)
				require.Contains(t, err.Error(), "outside the supported range")
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestBuildReportsPerFileResults(t *testing.T) {
	runner := &fakeRunner{
		failFiles: map[string]string{
			"sql/views/broken.sql": "syntax error at line 3\n",
		},
	}
	tc := sdk.New("pgsdk", sdk.WithRunner(runner))

	report, err := tc.Build(t.Context(), []string{
		"sql/tables/orders.sql",
		"sql/views/broken.sql",
		"sql/tables/users.sql",
	})
	require.NoError(t, err)
	require.Len(t, report.Results, 3)

	// Failures don't stop the run; later files still compile.
	require.NoError(t, report.Results[0].Err)
	require.Error(t, report.Results[1].Err)
	require.NoError(t, report.Results[2].Err)

	failed := report.Failed()
	require.Len(t, failed, 1)
	require.Equal(t, "sql/views/broken.sql", failed[0].File)
	require.Contains(t, failed[0].Output, "syntax error")
}

func TestBuildStopsWhenContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	tc := sdk.New("pgsdk", sdk.WithRunner(&fakeRunner{}))

	report, err := tc.Build(ctx, []string{"sql/tables/orders.sql"})
	require.Error(t, err)
	require.ErrorIs(t, err, context.Canceled)
	require.Empty(t, report.Results)
}
