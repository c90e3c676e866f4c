package consts

import "os"

const (
	// ModeDir is the standard file mode for creating directories
	ModeDir = os.FileMode(0o755)

	// ModeFile is the standard file mode for creating files
	ModeFile = os.FileMode(0o644)

	// ProjectFile is the name of the project configuration file that marks
	// a directory as a pgproj project
	ProjectFile = "pgproject.yaml"

	// DefaultPostgresVersion is the PostgreSQL version used when the
	// project doesn't specify one
	DefaultPostgresVersion = "17"

	// DefaultSDKCommand is the external SDK toolchain binary invoked for
	// builds when the project doesn't specify one
	DefaultSDKCommand = "pgsdk"

	// DefaultSDKMinVersion and DefaultSDKMaxVersion bound the SDK toolchain
	// versions the tool is known to work with
	DefaultSDKMinVersion = "1.0.0"
	DefaultSDKMaxVersion = "2.0.0"

	// DefaultSourceDir is the directory project SQL sources live under
	DefaultSourceDir = "sql"
)
