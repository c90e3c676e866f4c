package cmd

import (
	"context"
	"fmt"
	"path/filepath"
	"text/tabwriter"

	"github.com/pgproj/pgproj/pkg/parser"
	"github.com/pgproj/pgproj/pkg/utils"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"
)

// listCmd creates a CLI command for listing the objects declared by the
// project's source files.
//
// Each registered source file is parsed and its CREATE statements reported
// with the object kind, qualified name, and defining file. Files are
// processed in build order so the listing matches what `pgproj build`
// compiles.
//
// Example output:
//
//	TABLE      sales.orders            sql/tables/orders.sql
//	VIEW       reporting.order_totals  sql/views/order_totals.sql
//	PROCEDURE  public.refresh_totals   sql/procedures/refresh_totals.sql
func listCmd() *cli.Command {
	return &cli.Command{
		Name:   "list",
		Usage:  "List the objects declared by the project",
		Before: requireProject,
		Action: runListCommand,
	}
}

func runListCommand(ctx context.Context, cmd *cli.Command) error {
	proj, _, err := loadProjectConfig()
	if err != nil {
		return err
	}

	files, err := proj.SourceFiles()
	if err != nil {
		return err
	}

	if len(files) == 0 {
		fmt.Fprintln(cmd.Writer, "No source files registered")
		return nil
	}

	w := tabwriter.NewWriter(cmd.Writer, 0, 0, 2, ' ', 0)

	count := 0
	for _, file := range files {
		sql, err := parser.ParseFile(file)
		if err != nil {
			return err
		}

		rel, relErr := filepath.Rel(proj.Root(), file)
		if relErr != nil {
			rel = file
		}

		for _, obj := range sql.Objects() {
			fmt.Fprintf(w, "%s\t%s\t%s\n", obj.Kind, utils.QualifiedName(obj.Schema, obj.Name), filepath.ToSlash(rel))
			count++
		}
	}

	if err := w.Flush(); err != nil {
		return errors.Wrap(err, "failed to flush output")
	}

	if count == 0 {
		fmt.Fprintln(cmd.Writer, "No objects declared")
	}

	return nil
}
