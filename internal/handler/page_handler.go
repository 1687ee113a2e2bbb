package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stemsi/aptify-backend/internal/model"
)

// PageHandler renders the browser pages. Templates are loaded by the router.
type PageHandler struct{}

func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

// Index godoc
// GET /
func (h *PageHandler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", nil)
}

// Practice godoc
// GET /practice
func (h *PageHandler) Practice(c *gin.Context) {
	c.HTML(http.StatusOK, "practice.html", gin.H{"categories": model.AllCategories})
}

// Quiz godoc
// GET /quiz?type=aptitude
// Unknown or missing types render the mixed quiz.
func (h *PageHandler) Quiz(c *gin.Context) {
	req := model.NormalizeQuizRequest(c.Query("type"), model.DefaultQuestions)
	c.HTML(http.StatusOK, "quiz.html", gin.H{"quiz_type": string(req.Category)})
}

// Results godoc
// GET /results
func (h *PageHandler) Results(c *gin.Context) {
	c.HTML(http.StatusOK, "results.html", nil)
}

// Leaderboard godoc
// GET /leaderboard
// Scores are not stored, so the page renders without entries.
func (h *PageHandler) Leaderboard(c *gin.Context) {
	c.HTML(http.StatusOK, "leaderboard.html", gin.H{"entries": []any{}})
}

// About godoc
// GET /about
func (h *PageHandler) About(c *gin.Context) {
	c.HTML(http.StatusOK, "about.html", nil)
}
