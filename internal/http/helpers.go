package http

import (
	"errors"
	"fmt"
	"log"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/booktodo/internal/database/books"
)

// --- Response Types ---

// ErrorResponse is the standard error response format for all API errors.
type ErrorResponse struct {
	Error   string       `json:"error"`
	Details []FieldError `json:"details,omitempty"` // validation errors only
}

// SuccessResponse is returned by operations that have no entity to echo back.
type SuccessResponse struct {
	Success bool `json:"success"`
}

const (
	msgInvalidInput = "Invalid input"
	msgBookNotFound = "Book not found"
)

// --- Error Response Helpers ---

// respondValidationError sends a 400 Bad Request with field-level details.
func respondValidationError(c *gin.Context, details []FieldError) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgInvalidInput, Details: details})
}

// respondNotFound logs the lookup miss and sends a 404 Not Found response.
func respondNotFound(c *gin.Context, err error, context string) {
	log.Printf("Not found (%s) [request %s]: %v", context, GetRequestID(c), err)
	c.JSON(http.StatusNotFound, ErrorResponse{Error: msgBookNotFound})
}

// respondInternalError logs the error and sends a 500 Internal Server Error
// response carrying only the public message.
func respondInternalError(c *gin.Context, err error, message string) {
	logInternalError(c, err, message)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: message})
}

// logInternalError records the full error server-side. Clients only ever
// see the generic message.
func logInternalError(c *gin.Context, err error, context string) {
	log.Printf("Internal error (%s) [request %s]: %v", context, GetRequestID(c), err)
}

// --- Success Response Helpers ---

// respondCreated sends a 201 Created response with data.
func respondCreated(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// --- Parameter Parsing ---

// parseIDParam extracts an ID from URL parameters.
// A value that is not an integer gets a 400. An integer that no book can
// have (negative or wider than the ID column) gets a 404 without touching
// storage. Either way it returns 0, false after responding.
func parseIDParam(c *gin.Context, paramName string) (uint, bool) {
	idStr := c.Param(paramName)
	id, err := strconv.ParseInt(idStr, 10, 64)
	if errors.Is(err, strconv.ErrRange) {
		respondNotFound(c, fmt.Errorf("%s %s: %w", paramName, idStr, books.ErrBookNotFound), "parse "+paramName)
		return 0, false
	}
	if err != nil {
		log.Printf("Invalid %s parameter %q [request %s]: %v", paramName, idStr, GetRequestID(c), err)
		respondValidationError(c, []FieldError{{
			Field:   paramName,
			Message: paramName + " must be an integer",
		}})
		return 0, false
	}
	if id < 0 || id > math.MaxUint32 {
		respondNotFound(c, fmt.Errorf("%s %d: %w", paramName, id, books.ErrBookNotFound), "parse "+paramName)
		return 0, false
	}
	return uint(id), true
}
