package cmd

import (
	"testing"

	"github.com/pgproj/pgproj/pkg/cmd/testutil"
	"github.com/pgproj/pgproj/pkg/project"
	"github.com/stretchr/testify/require"
)

func TestListCommand_RequiresProject(t *testing.T) {
	withoutProject(t)

	_, err := testutil.RunCommandWithOutput(t, listCmd(), nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "pgproject.yaml not found")
}

func TestListCommand_NoSourceFiles(t *testing.T) {
	withProject(t)

	out, err := testutil.RunCommandWithOutput(t, listCmd(), nil)
	require.NoError(t, err)
	require.Contains(t, out, "No source files registered")
}

func TestListCommand_PrintsDeclaredObjects(t *testing.T) {
	p := withProject(t)

	_, err := p.AddObject(project.ObjectSpec{Type: project.ObjectTable, Schema: "sales", Name: "orders"})
	require.NoError(t, err)

	_, err = p.AddObject(project.ObjectSpec{Type: project.ObjectView, Name: "order_totals"})
	require.NoError(t, err)

	out, err := testutil.RunCommandWithOutput(t, listCmd(), nil)
	require.NoError(t, err)

	require.Contains(t, out, "table")
	require.Contains(t, out, "sales.orders")
	require.Contains(t, out, "sql/tables/orders.sql")

	require.Contains(t, out, "view")
	require.Contains(t, out, "public.order_totals")
	require.Contains(t, out, "sql/views/order_totals.sql")
}
