// Package database provides the storage layer for the application.
//
// # Architecture
//
//	database/
//	├── database.go      # Connection setup, migrations, health ping
//	└── books/           # Book data-access operations and seeding
//
// # Usage
//
//	db, err := database.NewDatabase("./booktodo.db")
//	repo := books.NewRepository(db.DB)
//	list, err := repo.GetBooks(ctx)
//
// The *gorm.DB handle is created once per process and passed to every
// repository. It is safe for concurrent use.
package database
