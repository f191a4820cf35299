// Package interfaces documents the core abstractions used throughout the application.
//
// # Interface Categories
//
// ## Data Access Interfaces
//
//   - BookStore: the book operations the HTTP layer depends on (internal/http/books.go)
//   - Pinger: database liveness for the health check (internal/http/health.go)
//
// ## Background Job Interfaces
//
//   - Seeder: catalogue replacement used by the demo resetter (internal/demo/resetter.go)
//
// # Adding a New Book Operation
//
//  1. Add the method to books.Repository, returning books.ErrBookNotFound
//     when the target row is missing.
//
//  2. Extend BookStore in internal/http/books.go and add a handler on
//     BooksController that maps ErrBookNotFound to 404.
//
//  3. Register the route in router.go for both the bare and /api groups.
//
// # Compile-Time Interface Checks
//
// All implementations should include compile-time checks to ensure they satisfy
// their interfaces:
//
//	var _ SomeInterface = (*MyImplementation)(nil)
//
// See checks.go.
package interfaces
