package docker

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pgproj/pgproj/pkg/consts"
	"github.com/pkg/errors"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	// DefaultDatabase is the database created in the dev container
	DefaultDatabase = "postgres"

	// DefaultUsername is the superuser for the dev container
	DefaultUsername = "postgres"

	// DefaultPassword is the password for the dev container superuser
	DefaultPassword = "postgres"
)

type (
	// Options represents options for running PostgreSQL in Docker
	Options struct {
		// Version is the PostgreSQL major version to run (default: consts.DefaultPostgresVersion)
		Version string

		// Database is the database to create on startup (default: postgres)
		Database string

		// Username is the superuser name (default: postgres)
		Username string

		// Password is the superuser password (default: postgres)
		Password string
	}

	// DevServer manages a PostgreSQL Docker container for development use
	DevServer struct {
		options   Options
		container *postgres.PostgresContainer
	}
)

// New creates a new DevServer with default options
//
// Example:
//
//	server := docker.New()
//
//	if err := server.Start(ctx); err != nil {
//		log.Fatal(err)
//	}
//	defer server.Stop(ctx)
func New() *DevServer {
	return &DevServer{}
}

// NewWithOptions creates a new DevServer with custom options
//
// Example:
//
//	server := docker.NewWithOptions(docker.Options{
//		Version:  "17",
//		Database: "myapp",
//	})
func NewWithOptions(opts Options) *DevServer {
	return &DevServer{options: opts}
}

// Start starts a PostgreSQL Docker container with the configured version.
func (s *DevServer) Start(ctx context.Context) error {
	if s.container != nil {
		return errors.New("dev server is already running")
	}

	version := s.options.Version
	if version == "" {
		version = consts.DefaultPostgresVersion
	}

	container, err := postgres.Run(ctx,
		fmt.Sprintf("postgres:%s-alpine", version),
		postgres.WithDatabase(orDefault(s.options.Database, DefaultDatabase)),
		postgres.WithUsername(orDefault(s.options.Username, DefaultUsername)),
		postgres.WithPassword(orDefault(s.options.Password, DefaultPassword)),
		testcontainers.WithWaitStrategy(
			// Postgres logs readiness twice: once during initdb, once for real.
			wait.
				ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(2*time.Minute),
		),
	)
	if err != nil {
		return errors.Wrap(err, "failed to start PostgreSQL container")
	}

	s.container = container
	return nil
}

// Stop stops and removes the PostgreSQL Docker container.
func (s *DevServer) Stop(ctx context.Context) error {
	if s.container == nil {
		return nil // Already stopped
	}

	err := s.container.Terminate(ctx)
	s.container = nil

	if err != nil {
		return errors.Wrap(err, "failed to stop PostgreSQL container")
	}

	return nil
}

// GetDSN returns the DSN for connecting to the dev server.
func (s *DevServer) GetDSN(ctx context.Context) (string, error) {
	if s.container == nil {
		return "", errors.New("dev server is not running")
	}

	dsn, err := s.container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return "", errors.Wrap(err, "failed to get connection string")
	}

	return dsn, nil
}

// ContainerID returns the Docker ID of the running container.
func (s *DevServer) ContainerID() (string, error) {
	if s.container == nil {
		return "", errors.New("dev server is not running")
	}

	return s.container.GetContainerID(), nil
}

// Ping verifies the dev server accepts connections.
func (s *DevServer) Ping(ctx context.Context) error {
	dsn, err := s.GetDSN(ctx)
	if err != nil {
		return err
	}

	conn, err := pgx.Connect(ctx, dsn)
	if err != nil {
		return errors.Wrap(err, "failed to connect to dev server")
	}
	defer func() { _ = conn.Close(ctx) }()

	return errors.Wrap(conn.Ping(ctx), "failed to ping dev server")
}

// IsRunning returns true if the container is currently running.
func (s *DevServer) IsRunning() bool {
	return s.container != nil
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}

	return value
}
