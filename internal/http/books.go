package http

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/booktodo/internal/database/books"
	"github.com/mrlokans/booktodo/internal/entities"
)

// BookStore defines the data-access operations behind the books API.
// Not-found conditions are reported as books.ErrBookNotFound.
type BookStore interface {
	GetBooks(ctx context.Context) ([]entities.Book, error)
	AddBook(ctx context.Context, title, author string) (*entities.Book, error)
	GetBookByID(ctx context.Context, id uint) (*entities.Book, error)
	ToggleBookCompletion(ctx context.Context, id uint) (*entities.Book, error)
	DeleteBook(ctx context.Context, id uint) (*entities.Book, error)
	GetBookStats(ctx context.Context) (entities.BookStats, error)
}

type BooksController struct {
	store BookStore
}

func NewBooksController(store BookStore) *BooksController {
	return &BooksController{
		store: store,
	}
}

// ListBooks returns all books, newest first.
// GET /books
func (controller *BooksController) ListBooks(c *gin.Context) {
	list, err := controller.store.GetBooks(c.Request.Context())
	if err != nil {
		respondInternalError(c, err, "Failed to fetch books")
		return
	}
	c.JSON(http.StatusOK, list)
}

// AddBook validates the body and creates a book.
// POST /books
func (controller *BooksController) AddBook(c *gin.Context) {
	var req CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("Malformed book body [request %s]: %v", GetRequestID(c), err)
		respondValidationError(c, []FieldError{{Field: "body", Message: "Body must be a JSON object with string title and author"}})
		return
	}

	input, fieldErrs := ValidateCreateBook(req)
	if len(fieldErrs) > 0 {
		log.Printf("Rejected book input [request %s]: %d invalid field(s)", GetRequestID(c), len(fieldErrs))
		respondValidationError(c, fieldErrs)
		return
	}

	book, err := controller.store.AddBook(c.Request.Context(), input.Title, input.Author)
	if err != nil {
		respondInternalError(c, err, "Failed to add book")
		return
	}
	respondCreated(c, book)
}

// GetBook returns one book.
// GET /books/:id
func (controller *BooksController) GetBook(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	book, err := controller.store.GetBookByID(c.Request.Context(), id)
	if errors.Is(err, books.ErrBookNotFound) {
		respondNotFound(c, err, "get book")
		return
	}
	if err != nil {
		respondInternalError(c, err, "Failed to fetch book")
		return
	}
	c.JSON(http.StatusOK, book)
}

// ToggleBook flips the completion flag of a book. The request has no body.
// PATCH /books/:id
func (controller *BooksController) ToggleBook(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	book, err := controller.store.ToggleBookCompletion(c.Request.Context(), id)
	if errors.Is(err, books.ErrBookNotFound) {
		respondNotFound(c, err, "toggle book")
		return
	}
	if err != nil {
		respondInternalError(c, err, "Failed to update book")
		return
	}
	c.JSON(http.StatusOK, book)
}

// DeleteBook removes a book. A missing book is a 404, never a silent success.
// DELETE /books/:id
func (controller *BooksController) DeleteBook(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	_, err := controller.store.DeleteBook(c.Request.Context(), id)
	if errors.Is(err, books.ErrBookNotFound) {
		respondNotFound(c, err, "delete book")
		return
	}
	if err != nil {
		respondInternalError(c, err, "Failed to delete book")
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

// GetBookStats returns total, completed and pending counts.
// GET /books/stats
func (controller *BooksController) GetBookStats(c *gin.Context) {
	stats, err := controller.store.GetBookStats(c.Request.Context())
	if err != nil {
		respondInternalError(c, err, "Failed to fetch book stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}
