package api

import (
	"errors"
	"net/http"

	"github.com/contractorhq/paintdesk/internal/db"
	"github.com/contractorhq/paintdesk/internal/models"
	"github.com/gin-gonic/gin"
)

// GetSiteLogs handles GET /api/site-logs?site_id=
func (h *Handler) GetSiteLogs(c *gin.Context) {
	ctx := c.Request.Context()
	logs, err := h.store.ListSiteLogs(ctx, c.Query("site_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch site logs"})
		return
	}
	c.JSON(http.StatusOK, logs)
}

// CreateSiteLog handles POST /api/site-logs.
// Cost totals are recomputed server-side and material stock is decremented.
func (h *Handler) CreateSiteLog(c *gin.Context) {
	ctx := c.Request.Context()
	var payload models.SiteDailyLog
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if payload.SiteID == "" || payload.LogDate == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "site_id and log_date are required"})
		return
	}

	log, err := h.store.CreateSiteLog(ctx, payload)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create site log"})
		return
	}
	c.JSON(http.StatusCreated, log)
}

// UpdateSiteLog handles PUT /api/site-logs/:id
func (h *Handler) UpdateSiteLog(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")
	var payload models.SiteDailyLog
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if payload.SiteID == "" || payload.LogDate == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "site_id and log_date are required"})
		return
	}

	log, err := h.store.UpdateSiteLog(ctx, id, payload)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Log not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update site log"})
		return
	}
	c.JSON(http.StatusOK, log)
}

// DeleteSiteLog handles DELETE /api/site-logs/:id
func (h *Handler) DeleteSiteLog(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")
	if err := h.store.DeleteSiteLog(ctx, id); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Log not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete site log"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Log deleted successfully"})
}
