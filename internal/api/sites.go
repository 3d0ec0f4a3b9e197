package api

import (
	"errors"
	"net/http"

	"github.com/contractorhq/paintdesk/internal/db"
	"github.com/contractorhq/paintdesk/internal/models"
	"github.com/gin-gonic/gin"
)

func validSiteStatus(s models.SiteStatus) bool {
	switch s {
	case models.SiteStatusRunning, models.SiteStatusCompleted, models.SiteStatusOnHold:
		return true
	}
	return false
}

// GetSites handles GET /api/sites
func (h *Handler) GetSites(c *gin.Context) {
	ctx := c.Request.Context()
	sites, err := h.store.ListSites(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch sites"})
		return
	}
	c.JSON(http.StatusOK, sites)
}

// CreateSite handles POST /api/sites
func (h *Handler) CreateSite(c *gin.Context) {
	ctx := c.Request.Context()
	var payload models.Site
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if payload.Name == "" || payload.OwnerName == "" || payload.OwnerPhone == "" || payload.Location == "" || payload.StartDate == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name, owner_name, owner_phone, location and start_date are required"})
		return
	}
	if payload.Status == "" {
		payload.Status = models.SiteStatusRunning
	}
	if !validSiteStatus(payload.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid site status"})
		return
	}

	site, err := h.store.CreateSite(ctx, payload)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create site"})
		return
	}
	c.JSON(http.StatusCreated, site)
}

// UpdateSite handles PUT /api/sites/:id
func (h *Handler) UpdateSite(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")
	var payload models.Site
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if payload.Name == "" || payload.OwnerName == "" || payload.OwnerPhone == "" || payload.Location == "" || payload.StartDate == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name, owner_name, owner_phone, location and start_date are required"})
		return
	}
	if !validSiteStatus(payload.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid site status"})
		return
	}

	site, err := h.store.UpdateSite(ctx, id, payload)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Site not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update site"})
		return
	}
	c.JSON(http.StatusOK, site)
}

// DeleteSite handles DELETE /api/sites/:id
// Deleting a site also removes its daily logs and overheads.
func (h *Handler) DeleteSite(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")
	if err := h.store.DeleteSite(ctx, id); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Site not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete site"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Site deleted successfully"})
}
