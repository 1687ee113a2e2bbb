package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stemsi/aptify-backend/internal/response"
)

// HealthHandler reports liveness.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Health godoc
// GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"health": "ok"})
}
