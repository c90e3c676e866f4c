// Package docker runs disposable PostgreSQL instances for local development.
//
// A DevServer stands up a PostgreSQL container matching the project's
// configured version so scaffolded objects can be applied and exercised
// against a real server without touching shared infrastructure.
//
// # Usage Example
//
//	server := docker.NewWithOptions(docker.Options{
//		Version:  "17",
//		Database: "myapp",
//	})
//
//	ctx := context.Background()
//	defer server.Stop(ctx)
//
//	if err := server.Start(ctx); err != nil {
//		log.Fatal(err)
//	}
//
//	dsn, _ := server.GetDSN(ctx)
//	fmt.Println("connect with:", dsn)
//
// Containers are managed through testcontainers, so lifecycle and port
// mapping follow its conventions. Stop terminates and removes the container.
package docker
