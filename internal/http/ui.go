package http

import (
	"embed"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/booktodo/internal/demo"
)

//go:embed templates/*.html
var templatesFS embed.FS

// loadTemplates parses the embedded page templates.
func loadTemplates() *template.Template {
	funcMap := template.FuncMap{
		"formatDate": formatDate,
	}
	return template.Must(template.New("").Funcs(funcMap).ParseFS(templatesFS, "templates/*.html"))
}

type UIController struct {
	store BookStore
}

func NewUIController(store BookStore) *UIController {
	return &UIController{
		store: store,
	}
}

// BooksPage renders the reading list with the add-book form.
// GET /
func (controller *UIController) BooksPage(c *gin.Context) {
	ctx := c.Request.Context()

	list, err := controller.store.GetBooks(ctx)
	if err != nil {
		respondPageError(c, err, "Error loading books")
		return
	}

	stats, err := controller.store.GetBookStats(ctx)
	if err != nil {
		respondPageError(c, err, "Error loading book stats")
		return
	}

	c.HTML(http.StatusOK, "index", gin.H{
		"Books":    list,
		"Stats":    stats,
		"DemoMode": c.GetBool(demo.ContextKeyDemoMode),
	})
}

func respondPageError(c *gin.Context, err error, message string) {
	logInternalError(c, err, message)
	c.String(http.StatusInternalServerError, message)
}

func formatDate(t time.Time) string {
	return t.Format("Jan 2, 2006")
}
