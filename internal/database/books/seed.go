package books

import (
	"context"
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/mrlokans/booktodo/internal/entities"
)

// DefaultCatalogue is the reading list installed by Seed and by the demo
// resetter.
var DefaultCatalogue = []entities.Book{
	{Title: "The Great Gatsby", Author: "F. Scott Fitzgerald", Completed: false},
	{Title: "To Kill a Mockingbird", Author: "Harper Lee", Completed: true},
	{Title: "1984", Author: "George Orwell", Completed: false},
	{Title: "Pride and Prejudice", Author: "Jane Austen", Completed: true},
	{Title: "The Catcher in the Rye", Author: "J.D. Salinger", Completed: false},
	{Title: "Lord of the Flies", Author: "William Golding", Completed: true},
}

// Seed deletes every book and inserts the given ones in order. It returns the
// number of books created. Seeded rows bypass input validation.
func (r *Repository) Seed(ctx context.Context, catalogue []entities.Book) (int, error) {
	created := 0
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&entities.Book{}).Error; err != nil {
			return fmt.Errorf("clear books: %w", err)
		}

		for _, b := range catalogue {
			book := entities.Book{
				Title:     b.Title,
				Author:    b.Author,
				Completed: b.Completed,
				CreatedAt: b.CreatedAt,
			}
			// Select keeps an explicit false from being swapped for the column default.
			if err := tx.Select("Title", "Author", "Completed", "CreatedAt").Create(&book).Error; err != nil {
				return fmt.Errorf("create book %q: %w", b.Title, err)
			}
			log.Printf("Created book with id: %d", book.ID)
			created++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return created, nil
}

// IsEmpty reports whether the books table has no rows.
func (r *Repository) IsEmpty(ctx context.Context) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.Book{}).Count(&count).Error; err != nil {
		return false, fmt.Errorf("count books: %w", err)
	}
	return count == 0, nil
}
