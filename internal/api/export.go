package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/contractorhq/paintdesk/internal/db"
	"github.com/contractorhq/paintdesk/internal/xlsx"
	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportSiteReport handles GET /api/export/site/:site_id
func (h *Handler) ExportSiteReport(c *gin.Context) {
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

	f, err := xlsx.BuildSiteWorkbook(*site, logs, overheads)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build workbook"})
		return
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write workbook"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=site_report_%s.xlsx", site.Name))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// ExportInventoryReport handles GET /api/export/inventory
func (h *Handler) ExportInventoryReport(c *gin.Context) {
	ctx := c.Request.Context()
	materials, err := h.store.ListMaterials(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch materials"})
		return
	}

	f, err := xlsx.BuildInventoryWorkbook(materials, h.now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build workbook"})
		return
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write workbook"})
		return
	}

	c.Header("Content-Disposition", "attachment; filename=inventory_report.xlsx")
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
