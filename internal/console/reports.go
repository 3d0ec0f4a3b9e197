package console

import (
	"context"

	"github.com/contractorhq/paintdesk/internal/client"
	"github.com/contractorhq/paintdesk/internal/models"
)

// Reports loads the three derived reports on demand. A failed load alerts
// and keeps whatever report was shown before; reports are never recomputed
// locally.
type Reports struct {
	client   *client.Client
	notifier Notifier

	selectedSiteID string
	site           *models.SiteReport
	inventory      *models.InventoryReport
	daily          *models.DailyReport
}

// NewReports creates a report loader with no site selected.
func NewReports(c *client.Client, n Notifier) *Reports {
	return &Reports{client: c, notifier: n}
}

// SelectSite sets the site the next site report is generated for.
func (r *Reports) SelectSite(siteID string) {
	r.selectedSiteID = siteID
}

// SelectedSiteID returns the current site selection, or "".
func (r *Reports) SelectedSiteID() string {
	return r.selectedSiteID
}

// LoadSiteReport fetches the report for the selected site. Requesting one
// with no site selected alerts instead of issuing a request.
func (r *Reports) LoadSiteReport(ctx context.Context) {
	if r.selectedSiteID == "" {
		r.notifier.Alert("Please select a site")
		return
	}
	rep, err := r.client.SiteReport(ctx, r.selectedSiteID)
	if err != nil {
		r.notifier.Alert("Failed to generate site report")
		return
	}
	r.site = rep
}

// LoadInventoryReport fetches the inventory valuation report.
func (r *Reports) LoadInventoryReport(ctx context.Context) {
	rep, err := r.client.InventoryReport(ctx)
	if err != nil {
		r.notifier.Alert("Failed to generate inventory report")
		return
	}
	r.inventory = rep
}

// LoadDailyReport fetches today's cost report.
func (r *Reports) LoadDailyReport(ctx context.Context) {
	rep, err := r.client.DailyReport(ctx)
	if err != nil {
		r.notifier.Alert("Failed to generate daily report")
		return
	}
	r.daily = rep
}

// Site returns the last successfully loaded site report, or nil.
func (r *Reports) Site() *models.SiteReport {
	return r.site
}

// Inventory returns the last successfully loaded inventory report, or nil.
func (r *Reports) Inventory() *models.InventoryReport {
	return r.inventory
}

// Daily returns the last successfully loaded daily report, or nil.
func (r *Reports) Daily() *models.DailyReport {
	return r.daily
}
