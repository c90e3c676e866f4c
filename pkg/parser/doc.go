// Package parser provides a lightweight PostgreSQL DDL parser built on
// participle.
//
// The parser recognizes the headers of CREATE statements for the object
// kinds a project scaffolds - tables, views, functions, and stored
// procedures - and extracts their schema-qualified names. Statement bodies
// and any other statement kinds are tokenized and skipped rather than
// understood: compilation and syntax checking are the SDK toolchain's job,
// this parser only needs enough structure to list a project's declared
// objects and detect name collisions.
//
// Statements must be semicolon-terminated. Dollar-quoted bodies ($$ ... $$)
// are lexed as a single token, so semicolons inside function and procedure
// bodies do not split statements.
//
// Example:
//
//	sql, err := parser.ParseString(`CREATE TABLE sales.orders (id bigint);`)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	for _, obj := range sql.Objects() {
//		fmt.Printf("%s %s.%s\n", obj.Kind, obj.Schema, obj.Name)
//	}
package parser
