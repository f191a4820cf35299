package http

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/booktodo/internal/demo"
)

func newUIRouter(store BookStore, demoMode bool) *gin.Engine {
	router := gin.New()
	router.SetHTMLTemplate(loadTemplates())
	router.Use(demo.NewMiddleware(demoMode).InjectContext())
	router.GET("/", NewUIController(store).BooksPage)
	return router
}

func TestUIController_BooksPage(t *testing.T) {
	t.Run("renders empty state", func(t *testing.T) {
		_, repo, cleanup := setupBooksTestDB(t)
		defer cleanup()

		w := doRequest(newUIRouter(repo, false), "GET", "/", "")

		assert.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "Book Todo")
		assert.Contains(t, body, `data-testid="empty-list"`)
		assert.Contains(t, body, "0 total")
		assert.NotContains(t, body, `data-testid="demo-banner"`)
	})

	t.Run("renders books newest first with stats", func(t *testing.T) {
		_, repo, cleanup := setupBooksTestDB(t)
		defer cleanup()

		ctx := context.Background()
		first, err := repo.AddBook(ctx, "Old Book", "Old Author")
		require.NoError(t, err)
		time.Sleep(10 * time.Millisecond)
		second, err := repo.AddBook(ctx, "New Book", "New Author")
		require.NoError(t, err)
		_, err = repo.ToggleBookCompletion(ctx, first.ID)
		require.NoError(t, err)

		w := doRequest(newUIRouter(repo, false), "GET", "/", "")

		assert.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "by Old Author")
		assert.Contains(t, body, `data-testid="book-checkbox-`+itoa(second.ID)+`"`)
		assert.Contains(t, body, "2 total")
		assert.Contains(t, body, "1 completed")
		assert.Contains(t, body, "1 to read")
		assert.Less(t, strings.Index(body, "New Book"), strings.Index(body, "Old Book"))
	})

	t.Run("escapes book titles", func(t *testing.T) {
		_, repo, cleanup := setupBooksTestDB(t)
		defer cleanup()

		_, err := repo.AddBook(context.Background(), "<script>alert(1)</script>", "Mallory")
		require.NoError(t, err)

		w := doRequest(newUIRouter(repo, false), "GET", "/", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotContains(t, w.Body.String(), "<script>alert(1)</script>")
		assert.Contains(t, w.Body.String(), "&lt;script&gt;")
	})

	t.Run("shows demo banner in demo mode", func(t *testing.T) {
		_, repo, cleanup := setupBooksTestDB(t)
		defer cleanup()

		w := doRequest(newUIRouter(repo, true), "GET", "/", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `data-testid="demo-banner"`)
	})

	t.Run("returns 500 when books cannot be loaded", func(t *testing.T) {
		w := doRequest(newUIRouter(failingStore{err: errors.New("boom")}, false), "GET", "/", "")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "Error loading books", w.Body.String())
	})
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "Jan 2, 2024", formatDate(time.Date(2024, 1, 2, 15, 4, 5, 0, time.UTC)))
}
