// Package cmd provides CLI commands for the pgproj tool.
//
// This package implements the command-line interface for pgproj, providing
// commands for project management, object scaffolding, compilation, and local
// development servers for PostgreSQL database projects.
//
// # Available Commands
//
// The cmd package currently provides:
//   - init: Initialize a new pgproj project structure
//   - new: Add a database object through a multi-step interactive wizard
//   - build: Compile project sources with the configured SDK toolchain
//   - list: List the objects declared by the project's source files
//   - dev up/down: Manage a local PostgreSQL development server
//
// # Command Structure
//
// Each command is implemented as a separate function that returns a
// *cli.Command, following the urfave/cli/v3 pattern. Commands are registered
// through the package's fx module and routed by the root application.
//
// # Global Options
//
// All commands support global flags:
//   - --dir, -d: Specify project directory (defaults to current directory)
//   - --help, -h: Display command help
//   - --version: Display version information
//
// # Example Usage
//
//	pgproj init --name myapp          # Initialize project
//	pgproj new                        # Launch the object wizard
//	pgproj new --type table --name orders --schema sales
//	pgproj build                      # Compile all project sources
//	pgproj list                       # List declared objects
//	pgproj dev up                     # Start a local PostgreSQL server
//	pgproj dev down                   # Stop it again
package cmd
