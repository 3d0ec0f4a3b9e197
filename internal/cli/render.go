package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/contractorhq/paintdesk/internal/console"
	"github.com/contractorhq/paintdesk/internal/models"
)

var (
	heading = color.New(color.FgCyan, color.Bold)
	accent  = color.New(color.FgYellow)
	good    = color.New(color.FgGreen)
)

func renderDashboard(out io.Writer, store *console.Store) {
	heading.Fprintln(out, "Dashboard")
	fmt.Fprintln(out)

	sites := store.Sites()
	running := 0
	for _, s := range sites {
		if s.Status == models.SiteStatusRunning {
			running++
		}
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Sites\t%d (%d running)\n", len(sites), running)
	fmt.Fprintf(w, "Materials\t%d\n", len(store.Materials()))
	fmt.Fprintf(w, "Labourers\t%d\n", len(store.Labours()))
	fmt.Fprintf(w, "Daily logs\t%d\n", len(store.DailyLogs()))
	fmt.Fprintf(w, "Overheads\t%d\n", len(store.Overheads()))
	fmt.Fprintf(w, "Inventory value\t%.2f\n", store.TotalMaterialValue())
	w.Flush()
}

func renderSites(out io.Writer, sites []models.Site) {
	heading.Fprintln(out, "Sites")
	if len(sites) == 0 {
		fmt.Fprintln(out, "(none)")
		return
	}
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tOWNER\tPHONE\tLOCATION\tSTART\tSTATUS")
	for _, s := range sites {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			s.ID, s.Name, s.OwnerName, s.OwnerPhone, s.Location, s.StartDate, s.Status)
	}
	w.Flush()
}

func renderMaterials(out io.Writer, materials []models.Material) {
	heading.Fprintln(out, "Materials")
	if len(materials) == 0 {
		fmt.Fprintln(out, "(none)")
		return
	}
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tUNIT\tRATE\tSTOCK\tVALUE")
	for _, m := range materials {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2f\t%.2f\t%.2f\n",
			m.ID, m.Name, m.Unit, m.RatePerUnit, m.CurrentStock, m.StockValue())
	}
	w.Flush()
}

func renderLabours(out io.Writer, labours []models.Labour) {
	heading.Fprintln(out, "Labourers")
	if len(labours) == 0 {
		fmt.Fprintln(out, "(none)")
		return
	}
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tRATE/DAY")
	for _, l := range labours {
		fmt.Fprintf(w, "%s\t%s\t%.2f\n", l.ID, l.Name, l.RatePerDay)
	}
	w.Flush()
}

func renderLogs(out io.Writer, logs []models.SiteDailyLog) {
	heading.Fprintln(out, "Daily Logs")
	if len(logs) == 0 {
		fmt.Fprintln(out, "(none)")
		return
	}
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSITE\tDATE\tMATERIALS\tLABOUR\tTOTAL")
	for _, l := range logs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2f\t%.2f\t%.2f\n",
			l.ID, l.SiteName, l.LogDate, l.TotalMaterialCost, l.TotalLabourCost, l.TotalCost)
	}
	w.Flush()
}

func renderOverheads(out io.Writer, overheads []models.Overhead) {
	heading.Fprintln(out, "Overheads")
	if len(overheads) == 0 {
		fmt.Fprintln(out, "(none)")
		return
	}
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSITE\tDATE\tCATEGORY\tAMOUNT")
	for _, o := range overheads {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.2f\n", o.ID, o.SiteName, o.Date, o.Category, o.Amount)
	}
	w.Flush()
}

func renderSiteReport(out io.Writer, rep *models.SiteReport) {
	heading.Fprintf(out, "Site Report: %s\n", rep.Site.Name)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Owner\t%s (%s)\n", rep.Site.OwnerName, rep.Site.OwnerPhone)
	fmt.Fprintf(w, "Location\t%s\n", rep.Site.Location)
	fmt.Fprintf(w, "Status\t%s\n", rep.Site.Status)
	fmt.Fprintf(w, "Daily logs\t%d\n", rep.LogsCount)
	fmt.Fprintf(w, "Overheads\t%d\n", rep.OverheadsCount)
	fmt.Fprintf(w, "Material cost\t%.2f\n", rep.TotalMaterialCost)
	fmt.Fprintf(w, "Labour cost\t%.2f\n", rep.TotalLabourCost)
	fmt.Fprintf(w, "Overhead cost\t%.2f\n", rep.TotalOverheadCost)
	w.Flush()
	good.Fprintf(out, "Grand total: %.2f\n", rep.GrandTotal)
}

func renderInventoryReport(out io.Writer, rep *models.InventoryReport) {
	heading.Fprintln(out, "Inventory Report")
	renderMaterials(out, rep.Materials)
	good.Fprintf(out, "Total stock value: %.2f\n", rep.TotalStockValue)
	if len(rep.LowStockItems) > 0 {
		accent.Fprintln(out, "Low stock:")
		for _, m := range rep.LowStockItems {
			fmt.Fprintf(out, "  %s (%.2f %s left)\n", m.Name, m.CurrentStock, m.Unit)
		}
	}
}

func renderDailyReport(out io.Writer, rep *models.DailyReport) {
	heading.Fprintf(out, "Daily Report: %s\n", rep.Date)
	renderLogs(out, rep.Logs)
	good.Fprintf(out, "Total cost: %.2f\n", rep.TotalCost)
}
