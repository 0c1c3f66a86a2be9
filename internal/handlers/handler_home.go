package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetHealth godoc
// @Summary Health check
// @Description Reports service liveness.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]bool
// @Router /health [get]
func GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
