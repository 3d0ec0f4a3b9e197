// Package report computes the derived report payloads from entity
// collections. The functions are pure so the aggregation invariants can be
// tested without a database.
package report

import "github.com/contractorhq/paintdesk/internal/models"

// LowStockThreshold is the strict stock level below which a material counts
// as low stock, regardless of unit.
const LowStockThreshold = 5.0

// BuildSiteReport totals the logs and overheads already scoped to one site.
func BuildSiteReport(site models.Site, logs []models.SiteDailyLog, overheads []models.Overhead) models.SiteReport {
	var materialCost, labourCost, overheadCost float64
	for _, l := range logs {
		materialCost += l.TotalMaterialCost
		labourCost += l.TotalLabourCost
	}
	for _, o := range overheads {
		overheadCost += o.Amount
	}
	return models.SiteReport{
		Site:              site,
		TotalMaterialCost: materialCost,
		TotalLabourCost:   labourCost,
		TotalOverheadCost: overheadCost,
		GrandTotal:        materialCost + labourCost + overheadCost,
		LogsCount:         len(logs),
		OverheadsCount:    len(overheads),
	}
}

// BuildInventoryReport values every material at rate × stock and flags the
// low-stock ones.
func BuildInventoryReport(materials []models.Material) models.InventoryReport {
	rep := models.InventoryReport{
		Materials:     materials,
		LowStockItems: make([]models.Material, 0),
	}
	if rep.Materials == nil {
		rep.Materials = make([]models.Material, 0)
	}
	for _, m := range materials {
		rep.TotalStockValue += m.StockValue()
		if m.CurrentStock < LowStockThreshold {
			rep.LowStockItems = append(rep.LowStockItems, m)
		}
	}
	return rep
}

// BuildDailyReport keeps only the logs dated `date` and sums their totals.
func BuildDailyReport(date string, logs []models.SiteDailyLog) models.DailyReport {
	rep := models.DailyReport{
		Date: date,
		Logs: make([]models.SiteDailyLog, 0),
	}
	for _, l := range logs {
		if l.LogDate != date {
			continue
		}
		rep.Logs = append(rep.Logs, l)
		rep.TotalCost += l.TotalCost
	}
	return rep
}
