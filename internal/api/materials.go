package api

import (
	"errors"
	"net/http"

	"github.com/contractorhq/paintdesk/internal/db"
	"github.com/contractorhq/paintdesk/internal/models"
	"github.com/gin-gonic/gin"
)

// GetMaterials handles GET /api/materials
func (h *Handler) GetMaterials(c *gin.Context) {
	ctx := c.Request.Context()
	materials, err := h.store.ListMaterials(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch materials"})
		return
	}
	c.JSON(http.StatusOK, materials)
}

// CreateMaterial handles POST /api/materials
func (h *Handler) CreateMaterial(c *gin.Context) {
	ctx := c.Request.Context()
	var payload models.Material
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if payload.Name == "" || payload.Unit == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name and unit are required"})
		return
	}

	material, err := h.store.CreateMaterial(ctx, payload)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create material"})
		return
	}
	c.JSON(http.StatusCreated, material)
}

// UpdateMaterial handles PUT /api/materials/:id
func (h *Handler) UpdateMaterial(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")
	var payload models.Material
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if payload.Name == "" || payload.Unit == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name and unit are required"})
		return
	}

	material, err := h.store.UpdateMaterial(ctx, id, payload)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Material not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update material"})
		return
	}
	c.JSON(http.StatusOK, material)
}

// DeleteMaterial handles DELETE /api/materials/:id
func (h *Handler) DeleteMaterial(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")
	if err := h.store.DeleteMaterial(ctx, id); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Material not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete material"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Material deleted successfully"})
}
