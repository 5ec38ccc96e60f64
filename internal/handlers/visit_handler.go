package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// TrackVisit counts every call; there is no per-visitor deduplication.
func (h *Handler) TrackVisit(c *gin.Context) {
	if err := h.Store.IncrementVisitors(c.Request.Context()); err != nil {
		h.serverError(c, "Failed to track visit", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "beastfit-api"})
}
