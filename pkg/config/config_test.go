package config_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pgproj/pgproj/pkg/config"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	yamlData := `
name: myapp
postgres:
  version: "16"
  sdk:
    command: /usr/local/bin/pgsdk
    min_version: 1.2.0
    max_version: 1.9.0
dir: database
files:
  - database/tables/users.sql
`

	cfg, err := config.LoadConfig(strings.NewReader(yamlData))
	require.NoError(t, err)
	require.Equal(t, "myapp", cfg.Name)
	require.Equal(t, "16", cfg.PostgreSQL.Version)
	require.Equal(t, "/usr/local/bin/pgsdk", cfg.PostgreSQL.SDK.Command)
	require.Equal(t, "1.2.0", cfg.PostgreSQL.SDK.MinVersion)
	require.Equal(t, "1.9.0", cfg.PostgreSQL.SDK.MaxVersion)
	require.Equal(t, "database", cfg.Dir)
	require.Equal(t, []string{"database/tables/users.sql"}, cfg.Files)
}

func TestLoadConfigAppliesDefaults(t *testing.T) {
	cfg, err := config.LoadConfig(strings.NewReader("name: myapp\n"))
	require.NoError(t, err)
	require.Equal(t, "17", cfg.PostgreSQL.Version)
	require.Equal(t, "pgsdk", cfg.PostgreSQL.SDK.Command)
	require.Equal(t, "1.0.0", cfg.PostgreSQL.SDK.MinVersion)
	require.Equal(t, "2.0.0", cfg.PostgreSQL.SDK.MaxVersion)
	require.Equal(t, "sql", cfg.Dir)
	require.Empty(t, cfg.Files)
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	_, err := config.LoadConfig(strings.NewReader("name: [unclosed"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to unmarshal project config")
}

func TestLoadConfigFileMissing(t *testing.T) {
	_, err := config.LoadConfigFile(filepath.Join(t.TempDir(), "pgproject.yaml"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to open file")
}

func TestSaveRoundTrips(t *testing.T) {
	cfg, err := config.LoadConfig(strings.NewReader("name: myapp\n"))
	require.NoError(t, err)

	cfg.Files = append(cfg.Files, "sql/tables/orders.sql")

	var buf bytes.Buffer
	require.NoError(t, cfg.Save(&buf))

	loaded, err := config.LoadConfig(&buf)
	require.NoError(t, err)
	require.Equal(t, cfg, loaded)
}

func TestSaveFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pgproject.yaml")

	cfg, err := config.LoadConfig(strings.NewReader("name: myapp\n"))
	require.NoError(t, err)
	require.NoError(t, cfg.SaveFile(path))

	loaded, err := config.LoadConfigFile(path)
	require.NoError(t, err)
	require.Equal(t, "myapp", loaded.Name)
}
