// Package sdk wraps the external PostgreSQL SDK toolchain used to compile
// project sources.
//
// The toolchain is invoked as a subprocess. The package provides version
// discovery and range checking against the project's configured constraints,
// plus sequential compilation of source files with per-file results.
//
// # Usage Example
//
//	tc := sdk.New("pgsdk")
//
//	if err := tc.CheckVersion(ctx, "1.0.0", "2.0.0"); err != nil {
//		log.Fatal(err)
//	}
//
//	report, err := tc.Build(ctx, files)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	for _, result := range report.Results {
//		if result.Err != nil {
//			fmt.Printf("✗ %s: %v\n", result.File, result.Err)
//		} else {
//			fmt.Printf("✓ %s\n", result.File)
//		}
//	}
//
// The Runner interface abstracts subprocess execution so tests can substitute
// a fake toolchain without shelling out.
package sdk
