package project

import (
	_ "embed"
	"os"
	"path/filepath"
	"testing/fstest"

	"github.com/pgproj/pgproj/pkg/config"
	"github.com/pgproj/pgproj/pkg/consts"
	"github.com/pkg/errors"
)

var (
	//go:embed embed/pgproject.yaml
	defaultProjectYAML []byte

	image = fstest.MapFS{
		"sql":            {Mode: os.ModeDir | 0o755},
		"sql/tables":     {Mode: os.ModeDir | 0o755},
		"sql/views":      {Mode: os.ModeDir | 0o755},
		"sql/functions":  {Mode: os.ModeDir | 0o755},
		"sql/procedures": {Mode: os.ModeDir | 0o755},
		"pgproject.yaml": {Data: defaultProjectYAML},
	}
)

type (
	// InitOptions contains options for project initialization
	InitOptions struct {
		// Name is the project name written into pgproject.yaml.
		// If empty, the default name from the embedded image is kept.
		Name string
	}

	// Project manages a PostgreSQL database project rooted at a directory.
	Project struct {
		root   string
		config *config.Config
	}
)

// New creates a new Project instance for managing PostgreSQL database
// projects. The path should point to an existing directory that will serve
// as the project root.
//
// Example:
//
//	p := project.New("/path/to/my/postgres/project")
//
//	if err := p.Initialize(project.InitOptions{}); err != nil {
//		log.Fatal(err)
//	}
func New(path string) *Project {
	return &Project{root: path}
}

// Root returns the project root directory.
func (p *Project) Root() string {
	return p.root
}

// Config returns the loaded project configuration, loading it on first use.
func (p *Project) Config() (*config.Config, error) {
	if p.config != nil {
		return p.config, nil
	}

	cfg, err := config.LoadConfigFile(filepath.Join(p.root, consts.ProjectFile))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load %s", consts.ProjectFile)
	}

	p.config = cfg
	return cfg, nil
}

// Initialize sets up the project directory structure and loads the
// configuration. This method is idempotent - it will only create missing
// files and directories, preserving any existing content. It creates the
// standard pgproj project structure: pgproject.yaml plus the sql source
// directories for each object kind.
//
// Example:
//
//	p := project.New("/path/to/my/project")
//	if err := p.Initialize(project.InitOptions{Name: "myapp"}); err != nil {
//		log.Fatal("Failed to initialize project:", err)
//	}
func (p *Project) Initialize(options InitOptions) error {
	if err := p.ensureDirectory(); err != nil {
		return err
	}

	// Walk the embedded image and create missing files/directories
	for path, entry := range image {
		fullPath := filepath.Join(p.root, path)

		if _, err := os.Stat(fullPath); err == nil {
			continue
		} else if !os.IsNotExist(err) {
			return errors.Wrapf(err, "failed to stat %s", fullPath)
		}

		if entry.Mode.IsDir() {
			if err := os.MkdirAll(fullPath, entry.Mode.Perm()); err != nil {
				return errors.Wrapf(err, "failed to create directory %s", fullPath)
			}

			continue
		}

		if err := os.MkdirAll(filepath.Dir(fullPath), consts.ModeDir); err != nil {
			return errors.Wrapf(err, "failed to create parent directory for %s", fullPath)
		}

		if err := os.WriteFile(fullPath, entry.Data, consts.ModeFile); err != nil {
			return errors.Wrapf(err, "failed to write file %s", fullPath)
		}
	}

	cfg, err := config.LoadConfigFile(filepath.Join(p.root, consts.ProjectFile))
	if err != nil {
		return errors.Wrapf(err, "failed to load %s", consts.ProjectFile)
	}

	if options.Name != "" && options.Name != cfg.Name {
		cfg.Name = options.Name

		if err := cfg.SaveFile(filepath.Join(p.root, consts.ProjectFile)); err != nil {
			return errors.Wrap(err, "failed to write updated config")
		}
	}

	p.config = cfg
	return nil
}

// SourceFiles returns the project's SQL source files in build order,
// resolved against the project root.
func (p *Project) SourceFiles() ([]string, error) {
	cfg, err := p.Config()
	if err != nil {
		return nil, err
	}

	files := make([]string, len(cfg.Files))
	for i, f := range cfg.Files {
		files[i] = filepath.Join(p.root, f)
	}

	return files, nil
}

func (p *Project) ensureDirectory() error {
	dir, err := os.Stat(p.root)
	if err != nil {
		return errors.Wrapf(err, "failed to stat dir: %s", p.root)
	}

	if !dir.IsDir() {
		return errors.Errorf("%s is not a directory", p.root)
	}

	return nil
}
