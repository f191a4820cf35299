package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.

import (
	"github.com/mrlokans/booktodo/internal/database"
	"github.com/mrlokans/booktodo/internal/database/books"
	"github.com/mrlokans/booktodo/internal/demo"
	"github.com/mrlokans/booktodo/internal/http"
)

// =============================================================================
// Data Access Layer
// =============================================================================

// BookStore implementations
var _ http.BookStore = (*books.Repository)(nil)

// Pinger implementations
var _ http.Pinger = (*database.Database)(nil)

// =============================================================================
// Background Jobs
// =============================================================================

// Seeder implementations
var _ demo.Seeder = (*books.Repository)(nil)
