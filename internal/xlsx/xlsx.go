// Package xlsx renders the site and inventory reports as Excel workbooks
// for download.
package xlsx

import (
	"fmt"
	"time"

	"github.com/contractorhq/paintdesk/internal/models"
	"github.com/xuri/excelize/v2"
)

const headerFillColor = "366092"

func headerStyle(f *excelize.File) (int, error) {
	return f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{headerFillColor}},
	})
}

func titleStyle(f *excelize.File, size float64) (int, error) {
	return f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: size}})
}

func writeHeaderRow(f *excelize.File, sheet string, row int, style int, headers []string) error {
	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, cell, cell, style); err != nil {
			return err
		}
	}
	return nil
}

// BuildSiteWorkbook renders one site's daily logs, overheads and cost summary.
func BuildSiteWorkbook(site models.Site, logs []models.SiteDailyLog, overheads []models.Overhead) (*excelize.File, error) {
	f := excelize.NewFile()
	const sheet = "Site Report"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	header, err := headerStyle(f)
	if err != nil {
		return nil, err
	}
	title, err := titleStyle(f, 16)
	if err != nil {
		return nil, err
	}
	section, err := titleStyle(f, 14)
	if err != nil {
		return nil, err
	}

	f.SetCellValue(sheet, "A1", "Site Report")
	f.SetCellStyle(sheet, "A1", "A1", title)
	f.SetCellValue(sheet, "A2", fmt.Sprintf("Site Name: %s", site.Name))
	f.SetCellValue(sheet, "A3", fmt.Sprintf("Owner: %s", site.OwnerName))
	f.SetCellValue(sheet, "A4", fmt.Sprintf("Location: %s", site.Location))
	f.SetCellValue(sheet, "A5", fmt.Sprintf("Status: %s", site.Status))

	row := 7
	f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "Daily Logs")
	f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("A%d", row), section)
	row++

	if err := writeHeaderRow(f, sheet, row, header, []string{"Date", "Materials Cost", "Labour Cost", "Total Cost", "Notes"}); err != nil {
		return nil, err
	}
	row++

	var totalMaterial, totalLabour float64
	for _, l := range logs {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), l.LogDate)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), l.TotalMaterialCost)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), l.TotalLabourCost)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), l.TotalCost)
		if l.Notes != nil {
			f.SetCellValue(sheet, fmt.Sprintf("E%d", row), *l.Notes)
		}
		totalMaterial += l.TotalMaterialCost
		totalLabour += l.TotalLabourCost
		row++
	}

	row++
	f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "Overheads")
	f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("A%d", row), section)
	row++

	if err := writeHeaderRow(f, sheet, row, header, []string{"Date", "Category", "Amount", "Description"}); err != nil {
		return nil, err
	}
	row++

	var totalOverhead float64
	for _, o := range overheads {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), o.Date)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), o.Category)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), o.Amount)
		if o.Description != nil {
			f.SetCellValue(sheet, fmt.Sprintf("D%d", row), *o.Description)
		}
		totalOverhead += o.Amount
		row++
	}

	row++
	f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "Summary")
	f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("A%d", row), section)
	row++
	for _, line := range []struct {
		label string
		value float64
	}{
		{"Total Material Cost:", totalMaterial},
		{"Total Labour Cost:", totalLabour},
		{"Total Overhead Cost:", totalOverhead},
		{"Grand Total:", totalMaterial + totalLabour + totalOverhead},
	} {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), line.label)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), line.value)
		row++
	}

	f.SetColWidth(sheet, "A", "E", 22)
	return f, nil
}

// BuildInventoryWorkbook renders the central inventory valuation.
func BuildInventoryWorkbook(materials []models.Material, generatedAt time.Time) (*excelize.File, error) {
	f := excelize.NewFile()
	const sheet = "Inventory Report"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	header, err := headerStyle(f)
	if err != nil {
		return nil, err
	}
	title, err := titleStyle(f, 16)
	if err != nil {
		return nil, err
	}

	f.SetCellValue(sheet, "A1", "Central Material Inventory Report")
	f.SetCellStyle(sheet, "A1", "A1", title)
	f.SetCellValue(sheet, "A2", fmt.Sprintf("Generated on: %s", generatedAt.Format("2006-01-02 15:04")))

	if err := writeHeaderRow(f, sheet, 4, header, []string{"Material Name", "Unit", "Rate per Unit", "Current Stock", "Stock Value"}); err != nil {
		return nil, err
	}

	row := 5
	var totalValue float64
	for _, m := range materials {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), m.Name)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), string(m.Unit))
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), m.RatePerUnit)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), m.CurrentStock)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), m.StockValue())
		totalValue += m.StockValue()
		row++
	}

	row++
	f.SetCellValue(sheet, fmt.Sprintf("D%d", row), "Total Stock Value:")
	f.SetCellValue(sheet, fmt.Sprintf("E%d", row), totalValue)

	f.SetColWidth(sheet, "A", "E", 22)
	return f, nil
}
