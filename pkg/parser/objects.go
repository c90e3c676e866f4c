package parser

import "github.com/pgproj/pgproj/pkg/utils"

// Object is a declared server object extracted from parsed DDL.
type Object struct {
	// Kind is the object kind: "table", "view", "materialized view",
	// "function", or "procedure"
	Kind string

	// Schema is the unquoted schema name; "public" when unqualified
	Schema string

	// Name is the unquoted object name
	Name string
}

// Objects returns the server objects declared by recognized CREATE
// statements, in source order. Unrecognized statements contribute nothing.
func (s *SQL) Objects() []Object {
	var objects []Object

	for _, stmt := range s.Statements {
		switch {
		case stmt.CreateTable != nil:
			objects = append(objects, newObject("table", stmt.CreateTable.Name))
		case stmt.CreateView != nil:
			kind := "view"
			if stmt.CreateView.Materialized {
				kind = "materialized view"
			}
			objects = append(objects, newObject(kind, stmt.CreateView.Name))
		case stmt.CreateFunction != nil:
			objects = append(objects, newObject("function", stmt.CreateFunction.Name))
		case stmt.CreateProcedure != nil:
			objects = append(objects, newObject("procedure", stmt.CreateProcedure.Name))
		}
	}

	return objects
}

func newObject(kind string, name *ObjectName) Object {
	schema := "public"
	if name.Schema != nil {
		schema = utils.StripQuotes(*name.Schema)
	}

	return Object{
		Kind:   kind,
		Schema: schema,
		Name:   utils.StripQuotes(name.Name),
	}
}
