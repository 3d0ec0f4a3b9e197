package api

import (
	"errors"
	"net/http"

	"github.com/contractorhq/paintdesk/internal/db"
	"github.com/contractorhq/paintdesk/internal/models"
	"github.com/gin-gonic/gin"
)

// GetLabours handles GET /api/labours
func (h *Handler) GetLabours(c *gin.Context) {
	ctx := c.Request.Context()
	labours, err := h.store.ListLabours(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch labours"})
		return
	}
	c.JSON(http.StatusOK, labours)
}

// CreateLabour handles POST /api/labours
func (h *Handler) CreateLabour(c *gin.Context) {
	ctx := c.Request.Context()
	var payload models.Labour
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if payload.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	labour, err := h.store.CreateLabour(ctx, payload)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create labour"})
		return
	}
	c.JSON(http.StatusCreated, labour)
}

// UpdateLabour handles PUT /api/labours/:id
func (h *Handler) UpdateLabour(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")
	var payload models.Labour
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if payload.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	labour, err := h.store.UpdateLabour(ctx, id, payload)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Labour not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update labour"})
		return
	}
	c.JSON(http.StatusOK, labour)
}

// DeleteLabour handles DELETE /api/labours/:id
func (h *Handler) DeleteLabour(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")
	if err := h.store.DeleteLabour(ctx, id); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Labour not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete labour"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Labour deleted successfully"})
}
