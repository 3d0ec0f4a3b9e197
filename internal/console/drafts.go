package console

import (
	"strconv"
	"strings"

	"github.com/contractorhq/paintdesk/internal/models"
)

// Drafts hold form state as entered, field by field, as strings. Conversion
// to a wire model happens only at submit time; a draft that fails conversion
// simply never produces a request.

// SiteDraft is the site create/edit form.
type SiteDraft struct {
	Name       string
	OwnerName  string
	OwnerPhone string
	OwnerEmail string
	Location   string
	MapsLink   string
	StartDate  string
	Status     string
}

// NewSiteDraft returns an empty form with the default status preselected.
func NewSiteDraft() SiteDraft {
	return SiteDraft{Status: string(models.SiteStatusRunning)}
}

// SiteDraftFrom seeds an edit form from a snapshot row.
func SiteDraftFrom(s models.Site) SiteDraft {
	d := SiteDraft{
		Name:       s.Name,
		OwnerName:  s.OwnerName,
		OwnerPhone: s.OwnerPhone,
		OwnerEmail: s.OwnerEmail,
		Location:   s.Location,
		StartDate:  s.StartDate,
		Status:     string(s.Status),
	}
	if s.MapsLink != nil {
		d.MapsLink = *s.MapsLink
	}
	return d
}

// ToSite converts the draft to a wire model. The bool result is the
// validation gate: false means required fields are missing or malformed and
// no request should be made.
func (d SiteDraft) ToSite() (models.Site, bool) {
	site := models.Site{
		Name:       strings.TrimSpace(d.Name),
		OwnerName:  strings.TrimSpace(d.OwnerName),
		OwnerPhone: strings.TrimSpace(d.OwnerPhone),
		OwnerEmail: strings.TrimSpace(d.OwnerEmail),
		Location:   strings.TrimSpace(d.Location),
		StartDate:  strings.TrimSpace(d.StartDate),
		Status:     models.SiteStatus(d.Status),
	}
	if site.Name == "" || site.OwnerName == "" || site.OwnerPhone == "" ||
		site.Location == "" || site.StartDate == "" {
		return models.Site{}, false
	}
	if site.Status == "" {
		site.Status = models.SiteStatusRunning
	}
	switch site.Status {
	case models.SiteStatusRunning, models.SiteStatusCompleted, models.SiteStatusOnHold:
	default:
		return models.Site{}, false
	}
	if link := strings.TrimSpace(d.MapsLink); link != "" {
		site.MapsLink = &link
	}
	return site, true
}

// MaterialDraft is the material create/edit form.
type MaterialDraft struct {
	Name         string
	Unit         string
	RatePerUnit  string
	CurrentStock string
}

// MaterialDraftFrom seeds an edit form from a snapshot row.
func MaterialDraftFrom(m models.Material) MaterialDraft {
	return MaterialDraft{
		Name:         m.Name,
		Unit:         string(m.Unit),
		RatePerUnit:  formatNumber(m.RatePerUnit),
		CurrentStock: formatNumber(m.CurrentStock),
	}
}

// ToMaterial converts the draft to a wire model.
func (d MaterialDraft) ToMaterial() (models.Material, bool) {
	name := strings.TrimSpace(d.Name)
	unit := models.MaterialUnit(strings.TrimSpace(d.Unit))
	if name == "" || unit == "" {
		return models.Material{}, false
	}
	valid := false
	for _, u := range models.ValidUnits {
		if u == unit {
			valid = true
			break
		}
	}
	if !valid {
		return models.Material{}, false
	}
	rate, ok := parseNumber(d.RatePerUnit)
	if !ok {
		return models.Material{}, false
	}
	stock, ok := parseNumber(d.CurrentStock)
	if !ok {
		return models.Material{}, false
	}
	return models.Material{Name: name, Unit: unit, RatePerUnit: rate, CurrentStock: stock}, true
}

// LabourDraft is the labourer create/edit form.
type LabourDraft struct {
	Name       string
	RatePerDay string
}

// LabourDraftFrom seeds an edit form from a snapshot row.
func LabourDraftFrom(l models.Labour) LabourDraft {
	return LabourDraft{Name: l.Name, RatePerDay: formatNumber(l.RatePerDay)}
}

// ToLabour converts the draft to a wire model.
func (d LabourDraft) ToLabour() (models.Labour, bool) {
	name := strings.TrimSpace(d.Name)
	if name == "" {
		return models.Labour{}, false
	}
	rate, ok := parseNumber(d.RatePerDay)
	if !ok {
		return models.Labour{}, false
	}
	return models.Labour{Name: name, RatePerDay: rate}, true
}

// MaterialLineDraft is one material row on the daily-log form: a material
// picked from the inventory plus a quantity.
type MaterialLineDraft struct {
	MaterialID string
	Quantity   string
}

// LabourLineDraft is one labour row on the daily-log form.
type LabourLineDraft struct {
	LabourID string
	Count    string
}

// LogDraft is the daily-log create/edit form. Line items reference the
// inventory and roster by ID; names and rates are resolved from the current
// snapshot at submit time.
type LogDraft struct {
	SiteID    string
	LogDate   string
	Notes     string
	Materials []MaterialLineDraft
	Labours   []LabourLineDraft
}

// LogDraftFrom seeds an edit form from a snapshot row.
func LogDraftFrom(l models.SiteDailyLog) LogDraft {
	d := LogDraft{SiteID: l.SiteID, LogDate: l.LogDate}
	if l.Notes != nil {
		d.Notes = *l.Notes
	}
	for _, mu := range l.MaterialsUsed {
		d.Materials = append(d.Materials, MaterialLineDraft{
			MaterialID: mu.MaterialID,
			Quantity:   formatNumber(mu.Quantity),
		})
	}
	for _, lu := range l.LaboursUsed {
		d.Labours = append(d.Labours, LabourLineDraft{
			LabourID: lu.LabourID,
			Count:    strconv.Itoa(lu.Count),
		})
	}
	return d
}

// ToLog converts the draft to a wire model, resolving line items against the
// given snapshots. Unknown IDs and unparsable numbers fail validation.
func (d LogDraft) ToLog(sites []models.Site, materials []models.Material, labours []models.Labour) (models.SiteDailyLog, bool) {
	siteID := strings.TrimSpace(d.SiteID)
	logDate := strings.TrimSpace(d.LogDate)
	if siteID == "" || logDate == "" {
		return models.SiteDailyLog{}, false
	}

	siteName := ""
	for _, s := range sites {
		if s.ID == siteID {
			siteName = s.Name
			break
		}
	}
	if siteName == "" {
		return models.SiteDailyLog{}, false
	}

	log := models.SiteDailyLog{
		SiteID:        siteID,
		SiteName:      siteName,
		LogDate:       logDate,
		MaterialsUsed: []models.MaterialUsed{},
		LaboursUsed:   []models.LabourUsed{},
	}
	if notes := strings.TrimSpace(d.Notes); notes != "" {
		log.Notes = &notes
	}

	for _, line := range d.Materials {
		qty, ok := parseNumber(line.Quantity)
		if !ok || qty <= 0 {
			return models.SiteDailyLog{}, false
		}
		var mat *models.Material
		for i := range materials {
			if materials[i].ID == line.MaterialID {
				mat = &materials[i]
				break
			}
		}
		if mat == nil {
			return models.SiteDailyLog{}, false
		}
		used := models.MaterialUsed{
			MaterialID:   mat.ID,
			MaterialName: mat.Name,
			Quantity:     qty,
			RatePerUnit:  mat.RatePerUnit,
			TotalCost:    qty * mat.RatePerUnit,
		}
		log.MaterialsUsed = append(log.MaterialsUsed, used)
		log.TotalMaterialCost += used.TotalCost
	}

	for _, line := range d.Labours {
		count, err := strconv.Atoi(strings.TrimSpace(line.Count))
		if err != nil || count <= 0 {
			return models.SiteDailyLog{}, false
		}
		var lab *models.Labour
		for i := range labours {
			if labours[i].ID == line.LabourID {
				lab = &labours[i]
				break
			}
		}
		if lab == nil {
			return models.SiteDailyLog{}, false
		}
		used := models.LabourUsed{
			LabourID:   lab.ID,
			LabourName: lab.Name,
			Count:      count,
			RatePerDay: lab.RatePerDay,
			TotalCost:  float64(count) * lab.RatePerDay,
		}
		log.LaboursUsed = append(log.LaboursUsed, used)
		log.TotalLabourCost += used.TotalCost
	}

	log.TotalCost = log.TotalMaterialCost + log.TotalLabourCost
	return log, true
}

// OverheadDraft is the overhead expense create/edit form.
type OverheadDraft struct {
	SiteID      string
	Date        string
	Category    string
	Amount      string
	Description string
}

// OverheadDraftFrom seeds an edit form from a snapshot row.
func OverheadDraftFrom(o models.Overhead) OverheadDraft {
	d := OverheadDraft{
		SiteID:   o.SiteID,
		Date:     o.Date,
		Category: o.Category,
		Amount:   formatNumber(o.Amount),
	}
	if o.Description != nil {
		d.Description = *o.Description
	}
	return d
}

// ToOverhead converts the draft to a wire model, resolving the site name
// from the given snapshot.
func (d OverheadDraft) ToOverhead(sites []models.Site) (models.Overhead, bool) {
	siteID := strings.TrimSpace(d.SiteID)
	date := strings.TrimSpace(d.Date)
	category := strings.TrimSpace(d.Category)
	if siteID == "" || date == "" || category == "" {
		return models.Overhead{}, false
	}

	siteName := ""
	for _, s := range sites {
		if s.ID == siteID {
			siteName = s.Name
			break
		}
	}
	if siteName == "" {
		return models.Overhead{}, false
	}

	amount, ok := parseNumber(d.Amount)
	if !ok {
		return models.Overhead{}, false
	}

	oh := models.Overhead{
		SiteID:   siteID,
		SiteName: siteName,
		Date:     date,
		Category: category,
		Amount:   amount,
	}
	if desc := strings.TrimSpace(d.Description); desc != "" {
		oh.Description = &desc
	}
	return oh, true
}

// parseNumber parses a mandatory numeric form field. Blank or unparsable
// input fails the presence gate; the value itself is not range-checked, that
// is the backend's concern.
func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
