// Package books provides the data-access operations for the reading list.
//
// Every operation returns (value, error). A missing row is always reported
// as ErrBookNotFound so callers can tell it apart from storage failures
// with errors.Is.
//
// # Usage
//
//	repo := books.NewRepository(db)
//	book, err := repo.ToggleBookCompletion(ctx, 42)
//	if errors.Is(err, books.ErrBookNotFound) {
//		// 404
//	}
package books

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/mrlokans/booktodo/internal/entities"
)

// ErrBookNotFound is returned when no book exists with the requested ID.
var ErrBookNotFound = errors.New("book not found")

// Repository handles all book database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetBooks returns every book, newest first.
func (r *Repository) GetBooks(ctx context.Context) ([]entities.Book, error) {
	books := make([]entities.Book, 0)
	err := r.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&books).Error
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	return books, nil
}

// AddBook inserts a new, not yet completed book. Title and author are
// stored as given.
func (r *Repository) AddBook(ctx context.Context, title, author string) (*entities.Book, error) {
	book := &entities.Book{
		Title:  title,
		Author: author,
	}
	if err := r.db.WithContext(ctx).Create(book).Error; err != nil {
		return nil, fmt.Errorf("create book: %w", err)
	}
	return book, nil
}

// GetBookByID retrieves a single book.
func (r *Repository) GetBookByID(ctx context.Context, id uint) (*entities.Book, error) {
	var book entities.Book
	err := r.db.WithContext(ctx).First(&book, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrBookNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get book %d: %w", id, err)
	}
	return &book, nil
}

// ToggleBookCompletion flips the completed flag of a book and returns the
// updated row.
//
// The read and the write are separate statements, so two concurrent toggles
// of the same book may collapse into one (last write wins).
func (r *Repository) ToggleBookCompletion(ctx context.Context, id uint) (*entities.Book, error) {
	book, err := r.GetBookByID(ctx, id)
	if err != nil {
		return nil, err
	}

	book.Completed = !book.Completed
	err = r.db.WithContext(ctx).Model(book).Update("completed", book.Completed).Error
	if err != nil {
		return nil, fmt.Errorf("update book %d: %w", id, err)
	}
	return book, nil
}

// DeleteBook removes a book and returns the row as it was before deletion.
func (r *Repository) DeleteBook(ctx context.Context, id uint) (*entities.Book, error) {
	book, err := r.GetBookByID(ctx, id)
	if err != nil {
		return nil, err
	}

	result := r.db.WithContext(ctx).Delete(&entities.Book{}, id)
	if result.Error != nil {
		return nil, fmt.Errorf("delete book %d: %w", id, result.Error)
	}
	// Removed by someone else between the lookup and the delete.
	if result.RowsAffected == 0 {
		return nil, ErrBookNotFound
	}
	return book, nil
}

// GetBookStats counts total and completed books with two independent
// queries. The counts are not taken from a single snapshot.
func (r *Repository) GetBookStats(ctx context.Context) (entities.BookStats, error) {
	var stats entities.BookStats

	db := r.db.WithContext(ctx)
	if err := db.Model(&entities.Book{}).Count(&stats.Total).Error; err != nil {
		return entities.BookStats{}, fmt.Errorf("count books: %w", err)
	}
	if err := db.Model(&entities.Book{}).Where("completed = ?", true).Count(&stats.Completed).Error; err != nil {
		return entities.BookStats{}, fmt.Errorf("count completed books: %w", err)
	}

	stats.Pending = stats.Total - stats.Completed
	return stats, nil
}
