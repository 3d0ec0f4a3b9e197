package api

import (
	"errors"
	"net/http"

	"github.com/contractorhq/paintdesk/internal/db"
	"github.com/contractorhq/paintdesk/internal/models"
	"github.com/gin-gonic/gin"
)

// GetOverheads handles GET /api/overheads?site_id=
func (h *Handler) GetOverheads(c *gin.Context) {
	ctx := c.Request.Context()
	overheads, err := h.store.ListOverheads(ctx, c.Query("site_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch overheads"})
		return
	}
	c.JSON(http.StatusOK, overheads)
}

// CreateOverhead handles POST /api/overheads
func (h *Handler) CreateOverhead(c *gin.Context) {
	ctx := c.Request.Context()
	var payload models.Overhead
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if payload.SiteID == "" || payload.Date == "" || payload.Category == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "site_id, date and category are required"})
		return
	}

	overhead, err := h.store.CreateOverhead(ctx, payload)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create overhead"})
		return
	}
	c.JSON(http.StatusCreated, overhead)
}

// UpdateOverhead handles PUT /api/overheads/:id
func (h *Handler) UpdateOverhead(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")
	var payload models.Overhead
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if payload.SiteID == "" || payload.Date == "" || payload.Category == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "site_id, date and category are required"})
		return
	}

	overhead, err := h.store.UpdateOverhead(ctx, id, payload)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Overhead not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update overhead"})
		return
	}
	c.JSON(http.StatusOK, overhead)
}

// DeleteOverhead handles DELETE /api/overheads/:id
func (h *Handler) DeleteOverhead(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")
	if err := h.store.DeleteOverhead(ctx, id); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Overhead not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete overhead"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Overhead deleted successfully"})
}
