package project_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pgproj/pgproj/pkg/config"
	"github.com/pgproj/pgproj/pkg/project"
	"github.com/stretchr/testify/require"
	"gotest.tools/v3/golden"
)

func initProject(t *testing.T) *project.Project {
	t.Helper()

	p := project.New(t.TempDir())
	require.NoError(t, p.Initialize(project.InitOptions{}))
	return p
}

func TestParseObjectType(t *testing.T) {
	tests := []struct {
		input    string
		expected project.ObjectType
	}{
		{"table", project.ObjectTable},
		{"Table", project.ObjectTable},
		{"view", project.ObjectView},
		{"function", project.ObjectFunction},
		{"procedure", project.ObjectProcedure},
		{"Stored Procedure", project.ObjectProcedure},
		{"stored-procedure", project.ObjectProcedure},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			parsed, err := project.ParseObjectType(tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.expected, parsed)
		})
	}

	_, err := project.ParseObjectType("trigger")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown object type")
}

func TestObjectTypeDisplayName(t *testing.T) {
	require.Equal(t, "Table", project.ObjectTable.DisplayName())
	require.Equal(t, "View", project.ObjectView.DisplayName())
	require.Equal(t, "Function", project.ObjectFunction.DisplayName())
	require.Equal(t, "Stored Procedure", project.ObjectProcedure.DisplayName())
}

func TestAddObjectScaffoldsTable(t *testing.T) {
	p := initProject(t)

	relPath, err := p.AddObject(project.ObjectSpec{
		Type:   project.ObjectTable,
		Schema: "sales",
		Name:   "orders",
	})
	require.NoError(t, err)
	require.Equal(t, filepath.Join("sql", "tables", "orders.sql"), relPath)

	content, err := os.ReadFile(filepath.Join(p.Root(), relPath))
	require.NoError(t, err)
	golden.Assert(t, string(content), "table_orders.sql.golden")
}

func TestAddObjectScaffoldsProcedure(t *testing.T) {
	p := initProject(t)

	relPath, err := p.AddObject(project.ObjectSpec{
		Type: project.ObjectProcedure,
		Name: "refresh_totals",
	})
	require.NoError(t, err)

	content, err := os.ReadFile(filepath.Join(p.Root(), relPath))
	require.NoError(t, err)
	golden.Assert(t, string(content), "procedure_refresh_totals.sql.golden")
}

func TestAddObjectQuotesMixedCaseIdentifiers(t *testing.T) {
	p := initProject(t)

	relPath, err := p.AddObject(project.ObjectSpec{
		Type:   project.ObjectTable,
		Schema: "Sales",
		Name:   "OrderItems",
	})
	require.NoError(t, err)

	content, err := os.ReadFile(filepath.Join(p.Root(), relPath))
	require.NoError(t, err)
	require.Contains(t, string(content), `CREATE TABLE "Sales"."OrderItems"`)
}

func TestAddObjectRegistersFileInConfig(t *testing.T) {
	p := initProject(t)

	_, err := p.AddObject(project.ObjectSpec{Type: project.ObjectView, Name: "order_totals"})
	require.NoError(t, err)

	cfg, err := config.LoadConfigFile(filepath.Join(p.Root(), "pgproject.yaml"))
	require.NoError(t, err)
	require.Equal(t, []string{"sql/views/order_totals.sql"}, cfg.Files)
}

func TestAddObjectRejectsDuplicates(t *testing.T) {
	p := initProject(t)

	spec := project.ObjectSpec{Type: project.ObjectTable, Name: "orders"}

	_, err := p.AddObject(spec)
	require.NoError(t, err)

	_, err = p.AddObject(spec)
	require.Error(t, err)
	require.Contains(t, err.Error(), "already exists")
}

func TestAddObjectValidatesNames(t *testing.T) {
	p := initProject(t)

	_, err := p.AddObject(project.ObjectSpec{Type: project.ObjectTable, Name: "bad name"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid object name")

	_, err = p.AddObject(project.ObjectSpec{Type: project.ObjectTable, Schema: "1bad", Name: "orders"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid schema name")
}
