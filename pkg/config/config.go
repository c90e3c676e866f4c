package config

import (
	"io"
	"os"

	"github.com/pgproj/pgproj/pkg/consts"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type (
	// SDK describes the external SDK toolchain used to build the project.
	SDK struct {
		// Command is the toolchain binary name or path
		Command string `yaml:"command,omitempty"`

		// MinVersion and MaxVersion bound the toolchain versions the
		// project is declared to build with; builds refuse toolchains
		// outside this range
		MinVersion string `yaml:"min_version,omitempty"`
		MaxVersion string `yaml:"max_version,omitempty"`
	}

	// PostgreSQL represents PostgreSQL-specific configuration settings.
	PostgreSQL struct {
		// Version specifies the target PostgreSQL version; the dev server
		// runs this version
		Version string `yaml:"version,omitempty"`

		// SDK configures the external build toolchain
		SDK SDK `yaml:"sdk"`
	}

	// Config represents the project configuration for PostgreSQL database
	// project management.
	Config struct {
		// Name is the project name
		Name string `yaml:"name"`

		// PostgreSQL contains PostgreSQL-specific configuration settings
		PostgreSQL PostgreSQL `yaml:"postgres"`

		// Dir specifies the directory project SQL sources live under
		Dir string `yaml:"dir"`

		// Files is the ordered list of SQL source files that make up the
		// project; builds process them in this order
		Files []string `yaml:"files"`
	}
)

// LoadConfig parses a project configuration from the provided io.Reader.
//
// The function expects YAML-formatted configuration data. Missing PostgreSQL
// and SDK settings are filled with defaults so a minimal config file stays
// minimal.
//
// Example:
//
//	yamlData := `
//	name: myapp
//	dir: sql
//	`
//
//	cfg, err := config.LoadConfig(strings.NewReader(yamlData))
//	if err != nil {
//		panic(err)
//	}
//
//	fmt.Printf("SDK command: %s\n", cfg.PostgreSQL.SDK.Command)
func LoadConfig(r io.Reader) (*Config, error) {
	var cfg Config
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal project config")
	}

	if cfg.PostgreSQL.Version == "" {
		cfg.PostgreSQL.Version = consts.DefaultPostgresVersion
	}
	if cfg.PostgreSQL.SDK.Command == "" {
		cfg.PostgreSQL.SDK.Command = consts.DefaultSDKCommand
	}
	if cfg.PostgreSQL.SDK.MinVersion == "" {
		cfg.PostgreSQL.SDK.MinVersion = consts.DefaultSDKMinVersion
	}
	if cfg.PostgreSQL.SDK.MaxVersion == "" {
		cfg.PostgreSQL.SDK.MaxVersion = consts.DefaultSDKMaxVersion
	}
	if cfg.Dir == "" {
		cfg.Dir = consts.DefaultSourceDir
	}

	return &cfg, nil
}

// LoadConfigFile loads a project configuration from the specified file path.
// This is a convenience function that opens the file and calls LoadConfig.
//
// Example:
//
//	cfg, err := config.LoadConfigFile("pgproject.yaml")
//	if err != nil {
//		log.Fatal("Failed to load config:", err)
//	}
func LoadConfigFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open file: %s", path)
	}
	defer func() { _ = f.Close() }()

	return LoadConfig(f)
}

// Save writes the configuration as YAML to the provided writer.
func (c *Config) Save(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(c); err != nil {
		return errors.Wrap(err, "failed to marshal project config")
	}

	return errors.Wrap(enc.Close(), "failed to close yaml encoder")
}

// SaveFile writes the configuration to the specified file path, replacing
// any existing content.
func (c *Config) SaveFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create file: %s", path)
	}
	defer func() { _ = f.Close() }()

	return c.Save(f)
}
