package http

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// MaxFieldLength is the longest title or author accepted, in characters.
const MaxFieldLength = 255

// FieldError describes one invalid input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// CreateBookRequest is the POST /books body. Pointers distinguish a missing
// field from an empty one.
type CreateBookRequest struct {
	Title  *string `json:"title"`
	Author *string `json:"author"`
}

// NewBook is a validated, trimmed CreateBookRequest.
type NewBook struct {
	Title  string
	Author string
}

// ValidateCreateBook trims title and author and checks they are present,
// non-empty and at most MaxFieldLength characters. All failing fields are
// reported, not just the first.
func ValidateCreateBook(req CreateBookRequest) (NewBook, []FieldError) {
	var errs []FieldError

	title, fieldErr := validateText("title", "Title", req.Title)
	if fieldErr != nil {
		errs = append(errs, *fieldErr)
	}
	author, fieldErr := validateText("author", "Author", req.Author)
	if fieldErr != nil {
		errs = append(errs, *fieldErr)
	}

	if len(errs) > 0 {
		return NewBook{}, errs
	}
	return NewBook{Title: title, Author: author}, nil
}

func validateText(field, label string, value *string) (string, *FieldError) {
	if value == nil {
		return "", &FieldError{Field: field, Message: label + " is required"}
	}

	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return "", &FieldError{Field: field, Message: label + " is required"}
	}
	if utf8.RuneCountInString(trimmed) > MaxFieldLength {
		return "", &FieldError{
			Field:   field,
			Message: fmt.Sprintf("%s too long (max %d characters)", label, MaxFieldLength),
		}
	}
	return trimmed, nil
}
