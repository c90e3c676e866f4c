package cmd

import (
	"context"

	"github.com/pgproj/pgproj/pkg/config"
	"github.com/pgproj/pgproj/pkg/project"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"
)

// requireProject gates commands that only make sense inside a project
// directory. currentProject is set by the root Before hook when
// pgproject.yaml is present.
func requireProject(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	if currentProject == nil {
		return ctx, errors.New("pgproject.yaml not found (run 'pgproj init' first)")
	}

	return ctx, nil
}

// loadProjectConfig returns the current project's configuration, loading it
// from pgproject.yaml on first use.
func loadProjectConfig() (*project.Project, *config.Config, error) {
	if currentProject == nil {
		return nil, nil, errors.New("pgproject.yaml not found (run 'pgproj init' first)")
	}

	cfg, err := currentProject.Config()
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to load project configuration")
	}

	return currentProject, cfg, nil
}

// effectiveConfig returns the injected config when one was loaded at startup,
// falling back to the detected project's config (the injected one is nil when
// the startup directory had no pgproject.yaml, e.g. with --dir).
func effectiveConfig(cfg *config.Config) (*project.Project, *config.Config, error) {
	if currentProject == nil {
		return nil, nil, errors.New("pgproject.yaml not found (run 'pgproj init' first)")
	}

	if cfg != nil {
		return currentProject, cfg, nil
	}

	return loadProjectConfig()
}
