package api

import (
	"errors"
	"net/http"

	"github.com/contractorhq/paintdesk/internal/db"
	"github.com/contractorhq/paintdesk/internal/report"
	"github.com/gin-gonic/gin"
)

// GetSiteReport handles GET /api/reports/site/:site_id
func (h *Handler) GetSiteReport(c *gin.Context) {
	ctx := c.Request.Context()
	siteID := c.Param("site_id")

	site, err := h.store.GetSite(ctx, siteID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Site not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch site"})
		return
	}

	logs, err := h.store.ListSiteLogs(ctx, siteID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch site logs"})
		return
	}
	overheads, err := h.store.ListOverheads(ctx, siteID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch overheads"})
		return
	}

	c.JSON(http.StatusOK, report.BuildSiteReport(*site, logs, overheads))
}

// GetInventoryReport handles GET /api/reports/inventory
func (h *Handler) GetInventoryReport(c *gin.Context) {
	ctx := c.Request.Context()
	materials, err := h.store.ListMaterials(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch materials"})
		return
	}
	c.JSON(http.StatusOK, report.BuildInventoryReport(materials))
}

// GetDailyReport handles GET /api/reports/daily?date=
// The report date defaults to the server's current date.
func (h *Handler) GetDailyReport(c *gin.Context) {
	ctx := c.Request.Context()
	date := c.Query("date")
	if date == "" {
		date = h.now().Format("2006-01-02")
	}

	logs, err := h.store.ListSiteLogs(ctx, "")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch site logs"})
		return
	}
	c.JSON(http.StatusOK, report.BuildDailyReport(date, logs))
}
