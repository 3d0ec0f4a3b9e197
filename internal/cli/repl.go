package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/contractorhq/paintdesk/internal/console"
)

// repl is the interactive console loop. One command per line; the active tab
// decides which entity family list/add/edit/delete act on.
type repl struct {
	app *console.App
	in  *bufio.Reader
	out io.Writer
}

func newRepl(app *console.App, in *bufio.Reader, out io.Writer) *repl {
	return &repl{app: app, in: in, out: out}
}

func (r *repl) run(ctx context.Context) error {
	r.app.Store.Refresh(ctx)
	fmt.Fprintln(r.out, "paintdesk console. Type 'help' for commands.")

	for {
		fmt.Fprintf(r.out, "paintdesk/%s> ", r.app.Router.Active())
		line, err := r.in.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		cmd, args := fields[0], fields[1:]

		switch cmd {
		case "quit", "exit":
			return nil
		case "help":
			r.printHelp()
		case "tabs":
			for _, t := range console.Tabs {
				fmt.Fprintf(r.out, "  %s\n", t)
			}
		case "tab":
			if len(args) != 1 {
				fmt.Fprintln(r.out, "usage: tab <name>")
				continue
			}
			if !r.app.Router.Switch(console.Tab(args[0])) {
				fmt.Fprintf(r.out, "unknown tab: %s\n", args[0])
			}
		case "refresh":
			r.app.Store.Refresh(ctx)
		case "list":
			r.list()
		case "add":
			r.add(ctx)
		case "edit":
			if len(args) != 1 {
				fmt.Fprintln(r.out, "usage: edit <id>")
				continue
			}
			r.edit(args[0])
		case "set":
			if len(args) < 2 {
				fmt.Fprintln(r.out, "usage: set <field> <value>")
				continue
			}
			r.set(args[0], strings.Join(args[1:], " "))
		case "save":
			r.save(ctx)
		case "cancel":
			r.cancel()
		case "delete":
			if len(args) != 1 {
				fmt.Fprintln(r.out, "usage: delete <id>")
				continue
			}
			r.delete(ctx, args[0])
		case "select":
			if len(args) != 1 {
				fmt.Fprintln(r.out, "usage: select <site_id>")
				continue
			}
			r.app.Reports.SelectSite(args[0])
		case "report":
			if len(args) != 1 {
				fmt.Fprintln(r.out, "usage: report site|inventory|daily")
				continue
			}
			r.report(ctx, args[0])
		default:
			fmt.Fprintf(r.out, "unknown command: %s (try 'help')\n", cmd)
		}
	}
}

func (r *repl) printHelp() {
	fmt.Fprintln(r.out, `Commands:
  tabs                 list views
  tab <name>           switch view
  refresh              reload all data from the server
  list                 show the active view's data
  add                  create an entry in the active view (guided)
  edit <id>            start editing an entry
  set <field> <value>  set a field on the edit form (or the add draft)
  save                 submit the edit form
  cancel               discard the edit form
  delete <id>          delete an entry (asks for confirmation)
  select <site_id>     choose the site for the site report
  report site|inventory|daily
  quit`)
}

func (r *repl) list() {
	switch r.app.Router.Active() {
	case console.TabDashboard:
		renderDashboard(r.out, r.app.Store)
	case console.TabSites:
		renderSites(r.out, r.app.Store.Sites())
	case console.TabMaterials:
		renderMaterials(r.out, r.app.Store.Materials())
	case console.TabLabours:
		renderLabours(r.out, r.app.Store.Labours())
	case console.TabLogs:
		renderLogs(r.out, r.app.Store.DailyLogs())
	case console.TabOverheads:
		renderOverheads(r.out, r.app.Store.Overheads())
	case console.TabReports:
		r.listReports()
	}
}

func (r *repl) listReports() {
	if rep := r.app.Reports.Site(); rep != nil {
		renderSiteReport(r.out, rep)
		fmt.Fprintln(r.out)
	}
	if rep := r.app.Reports.Inventory(); rep != nil {
		renderInventoryReport(r.out, rep)
		fmt.Fprintln(r.out)
	}
	if rep := r.app.Reports.Daily(); rep != nil {
		renderDailyReport(r.out, rep)
	}
	if r.app.Reports.Site() == nil && r.app.Reports.Inventory() == nil && r.app.Reports.Daily() == nil {
		fmt.Fprintln(r.out, "No reports generated yet. Use 'report site|inventory|daily'.")
	}
}

func (r *repl) prompt(label, current string) string {
	if current != "" {
		fmt.Fprintf(r.out, "%s [%s]: ", label, current)
	} else {
		fmt.Fprintf(r.out, "%s: ", label)
	}
	line, err := r.in.ReadString('\n')
	if err != nil {
		return current
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return current
	}
	return line
}

func (r *repl) add(ctx context.Context) {
	switch r.app.Router.Active() {
	case console.TabSites:
		d := r.app.Sites.Draft()
		d.Name = r.prompt("Name", d.Name)
		d.OwnerName = r.prompt("Owner name", d.OwnerName)
		d.OwnerPhone = r.prompt("Owner phone", d.OwnerPhone)
		d.OwnerEmail = r.prompt("Owner email", d.OwnerEmail)
		d.Location = r.prompt("Location", d.Location)
		d.MapsLink = r.prompt("Maps link", d.MapsLink)
		d.StartDate = r.prompt("Start date (YYYY-MM-DD)", d.StartDate)
		d.Status = r.prompt("Status (Running/Completed/On Hold)", d.Status)
		r.app.Sites.Create(ctx)
	case console.TabMaterials:
		d := r.app.Materials.Draft()
		d.Name = r.prompt("Name", d.Name)
		d.Unit = r.prompt("Unit (bucket/bag/liter/kg/meter/piece)", d.Unit)
		d.RatePerUnit = r.prompt("Rate per unit", d.RatePerUnit)
		d.CurrentStock = r.prompt("Current stock", d.CurrentStock)
		r.app.Materials.Create(ctx)
	case console.TabLabours:
		d := r.app.Labours.Draft()
		d.Name = r.prompt("Name", d.Name)
		d.RatePerDay = r.prompt("Rate per day", d.RatePerDay)
		r.app.Labours.Create(ctx)
	case console.TabLogs:
		d := r.app.Logs.Draft()
		d.SiteID = r.prompt("Site ID", d.SiteID)
		d.LogDate = r.prompt("Log date (YYYY-MM-DD)", d.LogDate)
		d.Notes = r.prompt("Notes", d.Notes)
		d.Materials = r.promptMaterialLines(d.Materials)
		d.Labours = r.promptLabourLines(d.Labours)
		r.app.Logs.Create(ctx)
	case console.TabOverheads:
		d := r.app.Overheads.Draft()
		d.SiteID = r.prompt("Site ID", d.SiteID)
		d.Date = r.prompt("Date (YYYY-MM-DD)", d.Date)
		d.Category = r.prompt("Category", d.Category)
		d.Amount = r.prompt("Amount", d.Amount)
		d.Description = r.prompt("Description", d.Description)
		r.app.Overheads.Create(ctx)
	default:
		fmt.Fprintln(r.out, "nothing to add on this tab")
	}
}

func (r *repl) promptMaterialLines(lines []console.MaterialLineDraft) []console.MaterialLineDraft {
	lines = lines[:0]
	fmt.Fprintln(r.out, "Material lines (blank material ID to finish):")
	for {
		id := r.prompt("  Material ID", "")
		if id == "" {
			return lines
		}
		qty := r.prompt("  Quantity", "")
		lines = append(lines, console.MaterialLineDraft{MaterialID: id, Quantity: qty})
	}
}

func (r *repl) promptLabourLines(lines []console.LabourLineDraft) []console.LabourLineDraft {
	lines = lines[:0]
	fmt.Fprintln(r.out, "Labour lines (blank labour ID to finish):")
	for {
		id := r.prompt("  Labour ID", "")
		if id == "" {
			return lines
		}
		count := r.prompt("  Count", "")
		lines = append(lines, console.LabourLineDraft{LabourID: id, Count: count})
	}
}

func (r *repl) edit(id string) {
	switch r.app.Router.Active() {
	case console.TabSites:
		for _, s := range r.app.Store.Sites() {
			if s.ID == id {
				r.app.Sites.StartEdit(id, console.SiteDraftFrom(s))
				fmt.Fprintf(r.out, "editing site %s; use 'set', then 'save' or 'cancel'\n", id)
				return
			}
		}
	case console.TabMaterials:
		for _, m := range r.app.Store.Materials() {
			if m.ID == id {
				r.app.Materials.StartEdit(id, console.MaterialDraftFrom(m))
				fmt.Fprintf(r.out, "editing material %s\n", id)
				return
			}
		}
	case console.TabLabours:
		for _, l := range r.app.Store.Labours() {
			if l.ID == id {
				r.app.Labours.StartEdit(id, console.LabourDraftFrom(l))
				fmt.Fprintf(r.out, "editing labourer %s\n", id)
				return
			}
		}
	case console.TabLogs:
		for _, l := range r.app.Store.DailyLogs() {
			if l.ID == id {
				r.app.Logs.StartEdit(id, console.LogDraftFrom(l))
				fmt.Fprintf(r.out, "editing daily log %s\n", id)
				return
			}
		}
	case console.TabOverheads:
		for _, o := range r.app.Store.Overheads() {
			if o.ID == id {
				r.app.Overheads.StartEdit(id, console.OverheadDraftFrom(o))
				fmt.Fprintf(r.out, "editing overhead %s\n", id)
				return
			}
		}
	default:
		fmt.Fprintln(r.out, "nothing to edit on this tab")
		return
	}
	fmt.Fprintf(r.out, "no entry with ID %s\n", id)
}

// set writes to the edit form when a session is open, otherwise to the add
// draft.
func (r *repl) set(field, value string) {
	ok := false
	switch r.app.Router.Active() {
	case console.TabSites:
		d := r.app.Sites.Draft()
		if r.app.Sites.Editing() {
			d = r.app.Sites.Working()
		}
		ok = setSiteField(d, field, value)
	case console.TabMaterials:
		d := r.app.Materials.Draft()
		if r.app.Materials.Editing() {
			d = r.app.Materials.Working()
		}
		ok = setMaterialField(d, field, value)
	case console.TabLabours:
		d := r.app.Labours.Draft()
		if r.app.Labours.Editing() {
			d = r.app.Labours.Working()
		}
		ok = setLabourField(d, field, value)
	case console.TabLogs:
		d := r.app.Logs.Draft()
		if r.app.Logs.Editing() {
			d = r.app.Logs.Working()
		}
		ok = setLogField(d, field, value)
	case console.TabOverheads:
		d := r.app.Overheads.Draft()
		if r.app.Overheads.Editing() {
			d = r.app.Overheads.Working()
		}
		ok = setOverheadField(d, field, value)
	default:
		fmt.Fprintln(r.out, "no form on this tab")
		return
	}
	if !ok {
		fmt.Fprintf(r.out, "unknown field: %s\n", field)
	}
}

func setSiteField(d *console.SiteDraft, field, value string) bool {
	switch field {
	case "name":
		d.Name = value
	case "owner_name":
		d.OwnerName = value
	case "owner_phone":
		d.OwnerPhone = value
	case "owner_email":
		d.OwnerEmail = value
	case "location":
		d.Location = value
	case "maps_link":
		d.MapsLink = value
	case "start_date":
		d.StartDate = value
	case "status":
		d.Status = value
	default:
		return false
	}
	return true
}

func setMaterialField(d *console.MaterialDraft, field, value string) bool {
	switch field {
	case "name":
		d.Name = value
	case "unit":
		d.Unit = value
	case "rate", "rate_per_unit":
		d.RatePerUnit = value
	case "stock", "current_stock":
		d.CurrentStock = value
	default:
		return false
	}
	return true
}

func setLabourField(d *console.LabourDraft, field, value string) bool {
	switch field {
	case "name":
		d.Name = value
	case "rate", "rate_per_day":
		d.RatePerDay = value
	default:
		return false
	}
	return true
}

func setLogField(d *console.LogDraft, field, value string) bool {
	switch field {
	case "site_id":
		d.SiteID = value
	case "log_date":
		d.LogDate = value
	case "notes":
		d.Notes = value
	default:
		return false
	}
	return true
}

func setOverheadField(d *console.OverheadDraft, field, value string) bool {
	switch field {
	case "site_id":
		d.SiteID = value
	case "date":
		d.Date = value
	case "category":
		d.Category = value
	case "amount":
		d.Amount = value
	case "description":
		d.Description = value
	default:
		return false
	}
	return true
}

func (r *repl) save(ctx context.Context) {
	switch r.app.Router.Active() {
	case console.TabSites:
		r.app.Sites.SaveEdit(ctx)
	case console.TabMaterials:
		r.app.Materials.SaveEdit(ctx)
	case console.TabLabours:
		r.app.Labours.SaveEdit(ctx)
	case console.TabLogs:
		r.app.Logs.SaveEdit(ctx)
	case console.TabOverheads:
		r.app.Overheads.SaveEdit(ctx)
	}
}

func (r *repl) cancel() {
	switch r.app.Router.Active() {
	case console.TabSites:
		r.app.Sites.CancelEdit()
	case console.TabMaterials:
		r.app.Materials.CancelEdit()
	case console.TabLabours:
		r.app.Labours.CancelEdit()
	case console.TabLogs:
		r.app.Logs.CancelEdit()
	case console.TabOverheads:
		r.app.Overheads.CancelEdit()
	}
}

func (r *repl) delete(ctx context.Context, id string) {
	switch r.app.Router.Active() {
	case console.TabSites:
		r.app.Sites.Delete(ctx, id)
	case console.TabMaterials:
		r.app.Materials.Delete(ctx, id)
	case console.TabLabours:
		r.app.Labours.Delete(ctx, id)
	case console.TabLogs:
		r.app.Logs.Delete(ctx, id)
	case console.TabOverheads:
		r.app.Overheads.Delete(ctx, id)
	default:
		fmt.Fprintln(r.out, "nothing to delete on this tab")
	}
}

func (r *repl) report(ctx context.Context, kind string) {
	switch kind {
	case "site":
		r.app.Reports.LoadSiteReport(ctx)
		if rep := r.app.Reports.Site(); rep != nil {
			renderSiteReport(r.out, rep)
		}
	case "inventory":
		r.app.Reports.LoadInventoryReport(ctx)
		if rep := r.app.Reports.Inventory(); rep != nil {
			renderInventoryReport(r.out, rep)
		}
	case "daily":
		r.app.Reports.LoadDailyReport(ctx)
		if rep := r.app.Reports.Daily(); rep != nil {
			renderDailyReport(r.out, rep)
		}
	default:
		fmt.Fprintf(r.out, "unknown report: %s\n", kind)
	}
}
