package project

import (
	"bytes"
	"embed"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/pgproj/pgproj/pkg/consts"
	"github.com/pgproj/pgproj/pkg/utils"
	"github.com/pkg/errors"
)

var (
	//go:embed embed/templates/*.sql
	templateFS embed.FS

	templates = template.Must(template.ParseFS(templateFS, "embed/templates/*.sql"))
)

// ObjectType identifies a kind of server object the project can scaffold.
type ObjectType string

const (
	ObjectTable     ObjectType = "table"
	ObjectView      ObjectType = "view"
	ObjectFunction  ObjectType = "function"
	ObjectProcedure ObjectType = "procedure"
)

// ObjectTypes returns all scaffoldable object types in display order.
func ObjectTypes() []ObjectType {
	return []ObjectType{ObjectTable, ObjectView, ObjectFunction, ObjectProcedure}
}

// ParseObjectType resolves a user-supplied type name. It accepts the
// canonical names plus common spellings like "stored procedure".
func ParseObjectType(s string) (ObjectType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "table":
		return ObjectTable, nil
	case "view":
		return ObjectView, nil
	case "function":
		return ObjectFunction, nil
	case "procedure", "stored procedure", "stored-procedure":
		return ObjectProcedure, nil
	default:
		return "", errors.Errorf("unknown object type: %s", s)
	}
}

// DisplayName returns the human-readable name for the object type.
func (t ObjectType) DisplayName() string {
	if t == ObjectProcedure {
		return "Stored Procedure"
	}

	return strings.ToUpper(string(t[:1])) + string(t[1:])
}

// Dir returns the source subdirectory objects of this type live in.
func (t ObjectType) Dir() string {
	return string(t) + "s"
}

// ObjectSpec describes a server object to scaffold.
type ObjectSpec struct {
	// Type is the kind of object to create
	Type ObjectType

	// Schema is the target PostgreSQL schema (defaults to "public")
	Schema string

	// Name is the object name; must be a valid PostgreSQL identifier
	Name string
}

// AddObject scaffolds a new server object definition: it renders the
// embedded template for the object type, writes it under the project's
// source directory, and registers the file in pgproject.yaml. The returned
// path is relative to the project root.
//
// The target file must not already exist; existing definitions are never
// overwritten.
func (p *Project) AddObject(spec ObjectSpec) (string, error) {
	if spec.Schema == "" {
		spec.Schema = "public"
	}

	if !utils.IsValidIdentifier(spec.Name) {
		return "", errors.Errorf("invalid object name: %q", spec.Name)
	}
	if !utils.IsValidIdentifier(spec.Schema) {
		return "", errors.Errorf("invalid schema name: %q", spec.Schema)
	}

	cfg, err := p.Config()
	if err != nil {
		return "", err
	}

	relPath := filepath.Join(cfg.Dir, spec.Type.Dir(), spec.Name+".sql")
	fullPath := filepath.Join(p.root, relPath)

	if _, err := os.Stat(fullPath); err == nil {
		return "", errors.Errorf("%s already exists", relPath)
	} else if !os.IsNotExist(err) {
		return "", errors.Wrapf(err, "failed to stat %s", fullPath)
	}

	// Mixed-case identifiers would fold to lowercase unquoted, so the
	// rendered DDL quotes them.
	data := ObjectSpec{
		Type:   spec.Type,
		Schema: utils.QuoteIfNeeded(spec.Schema),
		Name:   utils.QuoteIfNeeded(spec.Name),
	}

	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, string(spec.Type)+".sql", data); err != nil {
		return "", errors.Wrapf(err, "failed to render %s template", spec.Type)
	}

	if err := os.MkdirAll(filepath.Dir(fullPath), consts.ModeDir); err != nil {
		return "", errors.Wrapf(err, "failed to create directory for %s", relPath)
	}

	if err := os.WriteFile(fullPath, buf.Bytes(), consts.ModeFile); err != nil {
		return "", errors.Wrapf(err, "failed to write %s", relPath)
	}

	cfg.Files = append(cfg.Files, filepath.ToSlash(relPath))
	if err := cfg.SaveFile(filepath.Join(p.root, consts.ProjectFile)); err != nil {
		return "", errors.Wrap(err, "failed to register file in project config")
	}

	return relPath, nil
}
