package models

// SiteStatus represents the lifecycle status of a site (mirrors DB enum site_status)
type SiteStatus string

const (
	SiteStatusRunning   SiteStatus = "Running"
	SiteStatusCompleted SiteStatus = "Completed"
	SiteStatusOnHold    SiteStatus = "On Hold"
)

// MaterialUnit represents the unit a material is tracked in
type MaterialUnit string

const (
	UnitBucket MaterialUnit = "bucket"
	UnitBag    MaterialUnit = "bag"
	UnitLiter  MaterialUnit = "liter"
	UnitKg     MaterialUnit = "kg"
	UnitMeter  MaterialUnit = "meter"
	UnitPiece  MaterialUnit = "piece"
)

// ValidUnits lists the accepted material units in display order.
var ValidUnits = []MaterialUnit{UnitBucket, UnitBag, UnitLiter, UnitKg, UnitMeter, UnitPiece}

// Site represents a physical job location under contract
// Backed by table `sites`
type Site struct {
	ID         string     `json:"site_id" db:"site_id"`
	Name       string     `json:"name" db:"name"`
	OwnerName  string     `json:"owner_name" db:"owner_name"`
	OwnerPhone string     `json:"owner_phone" db:"owner_phone"`
	OwnerEmail string     `json:"owner_email" db:"owner_email"`
	Location   string     `json:"location" db:"location"`
	MapsLink   *string    `json:"maps_link,omitempty" db:"maps_link"`
	StartDate  string     `json:"start_date" db:"start_date"`
	Status     SiteStatus `json:"status" db:"status"`
	CreatedAt  string     `json:"created_at,omitempty" db:"created_at"`
}

// Material represents a consumable inventory item in the central store
// Backed by table `materials`
type Material struct {
	ID           string       `json:"material_id" db:"material_id"`
	Name         string       `json:"name" db:"name"`
	Unit         MaterialUnit `json:"unit" db:"unit"`
	RatePerUnit  float64      `json:"rate_per_unit" db:"rate_per_unit"`
	CurrentStock float64      `json:"current_stock" db:"current_stock"`
	CreatedAt    string       `json:"created_at,omitempty" db:"created_at"`
}

// StockValue is the derived valuation of the material; it is computed on
// demand and never stored.
func (m Material) StockValue() float64 {
	return m.RatePerUnit * m.CurrentStock
}

// Labour represents a worker with a fixed daily pay rate
// Backed by table `labours`
type Labour struct {
	ID         string  `json:"labour_id" db:"labour_id"`
	Name       string  `json:"name" db:"name"`
	RatePerDay float64 `json:"rate_per_day" db:"rate_per_day"`
	CreatedAt  string  `json:"created_at,omitempty" db:"created_at"`
}

// MaterialUsed is one material line item on a daily log
type MaterialUsed struct {
	MaterialID   string  `json:"material_id"`
	MaterialName string  `json:"material_name"`
	Quantity     float64 `json:"quantity"`
	RatePerUnit  float64 `json:"rate_per_unit"`
	TotalCost    float64 `json:"total_cost"`
}

// LabourUsed is one labour line item on a daily log
type LabourUsed struct {
	LabourID   string  `json:"labour_id"`
	LabourName string  `json:"labour_name"`
	Count      int     `json:"count"`
	RatePerDay float64 `json:"rate_per_day"`
	TotalCost  float64 `json:"total_cost"`
}

// SiteDailyLog represents one day's costs attributed to a site.
// total_material_cost, total_labour_cost and total_cost are recomputed from
// the usage lines by the server on every mutation; consumers trust them.
// Backed by table `site_daily_logs` (usage lines as JSONB)
type SiteDailyLog struct {
	ID                string         `json:"log_id" db:"log_id"`
	SiteID            string         `json:"site_id" db:"site_id"`
	SiteName          string         `json:"site_name" db:"site_name"`
	LogDate           string         `json:"log_date" db:"log_date"`
	MaterialsUsed     []MaterialUsed `json:"materials_used" db:"materials_used"`
	LaboursUsed       []LabourUsed   `json:"labours_used" db:"labours_used"`
	Notes             *string        `json:"notes,omitempty" db:"notes"`
	TotalMaterialCost float64        `json:"total_material_cost" db:"total_material_cost"`
	TotalLabourCost   float64        `json:"total_labour_cost" db:"total_labour_cost"`
	TotalCost         float64        `json:"total_cost" db:"total_cost"`
	CreatedAt         string         `json:"created_at,omitempty" db:"created_at"`
}

// Overhead represents a miscellaneous non-material, non-labour expense
// Backed by table `overheads`
type Overhead struct {
	ID          string  `json:"overhead_id" db:"overhead_id"`
	SiteID      string  `json:"site_id" db:"site_id"`
	SiteName    string  `json:"site_name" db:"site_name"`
	Date        string  `json:"date" db:"date"`
	Category    string  `json:"category" db:"category"`
	Amount      float64 `json:"amount" db:"amount"`
	Description *string `json:"description,omitempty" db:"description"`
	CreatedAt   string  `json:"created_at,omitempty" db:"created_at"`
}
