package parser

import (
	"io"
	"os"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
)

var (
	// pgLexer defines the lexer for PostgreSQL DDL. Dollar-quoted bodies
	// are a single token so semicolons inside them don't end statements.
	pgLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Comment", Pattern: `--[^\r\n]*`},
		{Name: "MultilineComment", Pattern: `/\*[^*]*\*+([^/*][^*]*\*+)*/`},
		{Name: "DollarBody", Pattern: `(?s)\$\$.*?\$\$`},
		{Name: "String", Pattern: `'([^']|'')*'`},
		{Name: "QuotedIdent", Pattern: `"([^"]|"")*"`},
		{Name: "Number", Pattern: `\d+(\.\d*)?`},
		{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
		{Name: "Punct", Pattern: `[^\s]`},
		{Name: "Whitespace", Pattern: `\s+`},
	})

	// parser is the participle parser instance for PostgreSQL DDL
	parser = participle.MustBuild[SQL](
		participle.Lexer(pgLexer),
		participle.Elide("Comment", "MultilineComment", "Whitespace"),
		participle.CaseInsensitive("Ident"),
		participle.UseLookahead(6),
	)
)

type (
	// SQL is a parsed sequence of semicolon-terminated statements.
	SQL struct {
		Statements []*Statement `parser:"@@*"`
	}

	// Statement is one statement: a recognized CREATE header or an opaque
	// statement skipped token-by-token.
	Statement struct {
		CreateTable     *CreateTableStmt     `parser:"@@"`
		CreateView      *CreateViewStmt      `parser:"| @@"`
		CreateFunction  *CreateFunctionStmt  `parser:"| @@"`
		CreateProcedure *CreateProcedureStmt `parser:"| @@"`
		Other           *OtherStmt           `parser:"| @@"`
	}

	// ObjectName is a possibly schema-qualified object name.
	ObjectName struct {
		Schema *string `parser:"(@(Ident | QuotedIdent) '.')?"`
		Name   string  `parser:"@(Ident | QuotedIdent)"`
	}

	// CreateTableStmt matches a CREATE TABLE header; the column list and
	// options are skipped.
	CreateTableStmt struct {
		IfNotExists bool        `parser:"'CREATE' ('UNLOGGED' | 'TEMPORARY' | 'TEMP')? 'TABLE' @('IF' 'NOT' 'EXISTS')?"`
		Name        *ObjectName `parser:"@@ (~';')* ';'"`
	}

	// CreateViewStmt matches CREATE [OR REPLACE] [MATERIALIZED] VIEW.
	CreateViewStmt struct {
		OrReplace    bool        `parser:"'CREATE' @('OR' 'REPLACE')?"`
		Materialized bool        `parser:"@'MATERIALIZED'? 'VIEW'"`
		IfNotExists  bool        `parser:"@('IF' 'NOT' 'EXISTS')?"`
		Name         *ObjectName `parser:"@@ (~';')* ';'"`
	}

	// CreateFunctionStmt matches a CREATE [OR REPLACE] FUNCTION header.
	CreateFunctionStmt struct {
		OrReplace bool        `parser:"'CREATE' @('OR' 'REPLACE')? 'FUNCTION'"`
		Name      *ObjectName `parser:"@@ (~';')* ';'"`
	}

	// CreateProcedureStmt matches a CREATE [OR REPLACE] PROCEDURE header.
	CreateProcedureStmt struct {
		OrReplace bool        `parser:"'CREATE' @('OR' 'REPLACE')? 'PROCEDURE'"`
		Name      *ObjectName `parser:"@@ (~';')* ';'"`
	}

	// OtherStmt consumes any statement the grammar doesn't recognize.
	OtherStmt struct {
		Tokens []string `parser:"@(~';')+ ';'"`
	}
)

// Parse parses PostgreSQL DDL statements from an io.Reader.
//
// Example:
//
//	f, err := os.Open("sql/tables/orders.sql")
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer f.Close()
//
//	sql, err := parser.Parse(f)
//	if err != nil {
//		log.Fatal(err)
//	}
func Parse(r io.Reader) (*SQL, error) {
	sql, err := parser.Parse("", r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse SQL")
	}

	return sql, nil
}

// ParseString parses PostgreSQL DDL statements from a string.
func ParseString(sql string) (*SQL, error) {
	return Parse(strings.NewReader(sql))
}

// ParseFile parses PostgreSQL DDL statements from the file at path.
func ParseFile(path string) (*SQL, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open file: %s", path)
	}
	defer func() { _ = f.Close() }()

	sql, err := Parse(f)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse file: %s", path)
	}

	return sql, nil
}
