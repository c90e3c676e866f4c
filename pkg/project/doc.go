// Package project provides PostgreSQL database project management.
//
// A project is a directory containing a pgproject.yaml configuration file
// and a tree of SQL source files that an external SDK toolchain compiles.
// The package handles project lifecycle operations:
//
//   - Initialize: scaffold the standard project layout from an embedded
//     image (idempotent, never overwrites existing files)
//   - AddObject: scaffold a new server object definition (table, view,
//     function, stored procedure) from an embedded template and register
//     the file in the project configuration
//
// Example:
//
//	p := project.New("/path/to/project")
//	if err := p.Initialize(project.InitOptions{Name: "myapp"}); err != nil {
//		log.Fatal(err)
//	}
//
//	path, err := p.AddObject(project.ObjectSpec{
//		Type:   project.ObjectTable,
//		Schema: "sales",
//		Name:   "orders",
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	fmt.Println("created", path)
package project
