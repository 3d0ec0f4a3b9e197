package models

// SiteReport aggregates all costs booked against one site.
// GrandTotal == TotalMaterialCost + TotalLabourCost + TotalOverheadCost.
type SiteReport struct {
	Site              Site    `json:"site"`
	TotalMaterialCost float64 `json:"total_material_cost"`
	TotalLabourCost   float64 `json:"total_labour_cost"`
	TotalOverheadCost float64 `json:"total_overhead_cost"`
	GrandTotal        float64 `json:"grand_total"`
	LogsCount         int     `json:"logs_count"`
	OverheadsCount    int     `json:"overheads_count"`
}

// InventoryReport values the central material inventory.
type InventoryReport struct {
	Materials       []Material `json:"materials"`
	TotalStockValue float64    `json:"total_stock_value"`
	LowStockItems   []Material `json:"low_stock_items"`
}

// DailyReport sums all daily-log costs for one report date.
type DailyReport struct {
	Date      string         `json:"date"`
	Logs      []SiteDailyLog `json:"logs"`
	TotalCost float64        `json:"total_cost"`
}
