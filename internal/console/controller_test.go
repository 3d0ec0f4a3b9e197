package console

import (
	"context"
	"testing"

	"github.com/contractorhq/paintdesk/internal/models"
)

func fillSiteDraft(d *SiteDraft) {
	d.Name = "Hill House"
	d.OwnerName = "Asha Rao"
	d.OwnerPhone = "9876543210"
	d.Location = "Mangalore"
	d.StartDate = "2026-01-15"
}

func TestCreate_InvalidDraftIsSilentlyIgnored(t *testing.T) {
	app, backend, notifier := newTestApp(t)

	// Missing every required field.
	app.Sites.Create(context.Background())

	if got := backend.requestCount("POST /api/sites"); got != 0 {
		t.Fatalf("invalid draft must not issue a request, got %d", got)
	}
	if len(notifier.alerts) != 0 {
		t.Fatalf("invalid draft must not alert, got %v", notifier.alerts)
	}
}

func TestCreateMaterial_BlankRateAndStockIsSilentlyIgnored(t *testing.T) {
	app, backend, notifier := newTestApp(t)

	d := app.Materials.Draft()
	d.Name = "Paint"
	d.Unit = "bucket"
	app.Materials.Create(context.Background())

	if got := backend.requestCount("POST /api/materials"); got != 0 {
		t.Fatalf("blank rate/stock must not issue a request, got %d", got)
	}
	if len(notifier.alerts) != 0 {
		t.Fatalf("blank rate/stock must not alert, got %v", notifier.alerts)
	}
	if app.Materials.Draft().Name != "Paint" {
		t.Fatal("draft must be preserved for correction")
	}
}

func TestCreate_SuccessResetsDraftAndRefreshes(t *testing.T) {
	app, _, notifier := newTestApp(t)
	fillSiteDraft(app.Sites.Draft())

	app.Sites.Create(context.Background())

	if len(notifier.alerts) != 0 {
		t.Fatalf("unexpected alerts: %v", notifier.alerts)
	}
	if app.Sites.Draft().Name != "" {
		t.Fatalf("expected draft reset after create, got %q", app.Sites.Draft().Name)
	}
	if app.Sites.Draft().Status != string(models.SiteStatusRunning) {
		t.Fatalf("expected fresh draft to default to Running, got %q", app.Sites.Draft().Status)
	}
	if len(app.Store.Sites()) != 1 {
		t.Fatalf("expected store refreshed with new site, got %d", len(app.Store.Sites()))
	}
}

func TestCreate_RequestFailureAlertsAndKeepsDraft(t *testing.T) {
	app, backend, notifier := newTestApp(t)
	backend.setFail("POST /api/sites", true)
	fillSiteDraft(app.Sites.Draft())

	app.Sites.Create(context.Background())

	if len(notifier.alerts) != 1 || notifier.alerts[0] != "Failed to create site" {
		t.Fatalf("expected create failure alert, got %v", notifier.alerts)
	}
	if app.Sites.Draft().Name != "Hill House" {
		t.Fatal("draft must survive a failed create for correction and retry")
	}
}

func TestStartEdit_SilentlyReplacesExistingSession(t *testing.T) {
	app, _, notifier := newTestApp(t)

	app.Sites.StartEdit("s1", SiteDraft{Name: "First"})
	app.Sites.StartEdit("s2", SiteDraft{Name: "Second"})

	if !app.Sites.Editing() || app.Sites.EditingID() != "s2" {
		t.Fatalf("expected session on s2, got editing=%v id=%s", app.Sites.Editing(), app.Sites.EditingID())
	}
	if app.Sites.Working().Name != "Second" {
		t.Fatalf("expected the second working copy, got %q", app.Sites.Working().Name)
	}
	if len(notifier.alerts) != 0 || len(notifier.confirms) != 0 {
		t.Fatal("replacing an edit session must not prompt")
	}
}

func TestSaveEdit_FailureKeepsSessionOpen(t *testing.T) {
	app, backend, notifier := newTestApp(t)
	backend.sites = []models.Site{{
		ID: "s1", Name: "Hill House", OwnerName: "Asha Rao", OwnerPhone: "9876543210",
		Location: "Mangalore", StartDate: "2026-01-15", Status: models.SiteStatusRunning,
	}}
	app.Store.Refresh(context.Background())
	backend.setFail("PUT /api/sites/:id", true)

	app.Sites.StartEdit("s1", SiteDraftFrom(backend.sites[0]))
	app.Sites.Working().Name = "Hill House East"
	app.Sites.SaveEdit(context.Background())

	if len(notifier.alerts) != 1 || notifier.alerts[0] != "Failed to update site" {
		t.Fatalf("expected update failure alert, got %v", notifier.alerts)
	}
	if !app.Sites.Editing() {
		t.Fatal("session must stay open after a failed save")
	}
	if app.Sites.Working().Name != "Hill House East" {
		t.Fatal("working copy must be preserved after a failed save")
	}
}

func TestSaveEdit_SuccessClosesSessionAndRefreshes(t *testing.T) {
	app, backend, _ := newTestApp(t)
	backend.sites = []models.Site{{
		ID: "s1", Name: "Hill House", OwnerName: "Asha Rao", OwnerPhone: "9876543210",
		Location: "Mangalore", StartDate: "2026-01-15", Status: models.SiteStatusRunning,
	}}
	app.Store.Refresh(context.Background())

	app.Sites.StartEdit("s1", SiteDraftFrom(backend.sites[0]))
	app.Sites.Working().Name = "Hill House East"
	app.Sites.SaveEdit(context.Background())

	if app.Sites.Editing() {
		t.Fatal("session must close after a successful save")
	}
	if app.Store.Sites()[0].Name != "Hill House East" {
		t.Fatalf("expected refreshed store to show the update, got %q", app.Store.Sites()[0].Name)
	}
}

func TestSaveEdit_InvalidWorkingCopyIsSilentlyIgnored(t *testing.T) {
	app, backend, notifier := newTestApp(t)

	app.Sites.StartEdit("s1", SiteDraft{Name: "Only a name"})
	app.Sites.SaveEdit(context.Background())

	if got := backend.requestCount("PUT /api/sites/:id"); got != 0 {
		t.Fatalf("invalid working copy must not issue a request, got %d", got)
	}
	if len(notifier.alerts) != 0 {
		t.Fatalf("invalid working copy must not alert, got %v", notifier.alerts)
	}
	if !app.Sites.Editing() {
		t.Fatal("session must stay open after a silent validation failure")
	}
}

func TestDelete_DeclinedConfirmationIsNoOp(t *testing.T) {
	app, backend, notifier := newTestApp(t)
	backend.sites = []models.Site{{ID: "s1", Name: "Hill House"}}
	notifier.answer = false

	app.Sites.Delete(context.Background(), "s1")

	if got := backend.requestCount("DELETE /api/sites/:id"); got != 0 {
		t.Fatalf("declined confirmation must not issue a request, got %d", got)
	}
	if len(notifier.confirms) != 1 {
		t.Fatalf("expected one confirmation prompt, got %d", len(notifier.confirms))
	}
}

func TestDelete_ClosesEditSessionForDeletedEntity(t *testing.T) {
	app, backend, notifier := newTestApp(t)
	backend.sites = []models.Site{{
		ID: "s1", Name: "Hill House", OwnerName: "Asha Rao", OwnerPhone: "9876543210",
		Location: "Mangalore", StartDate: "2026-01-15", Status: models.SiteStatusRunning,
	}}
	app.Store.Refresh(context.Background())
	notifier.answer = true

	app.Sites.StartEdit("s1", SiteDraftFrom(backend.sites[0]))
	app.Sites.Delete(context.Background(), "s1")

	if app.Sites.Editing() {
		t.Fatal("deleting the entity under edit must close the session")
	}
	if len(app.Store.Sites()) != 0 {
		t.Fatalf("expected site removed, got %d", len(app.Store.Sites()))
	}
}

func TestDeleteSite_RemovesDependentLogsOnRefresh(t *testing.T) {
	app, backend, notifier := newTestApp(t)
	backend.sites = []models.Site{{ID: "s1", Name: "Hill House"}, {ID: "s2", Name: "Lake View"}}
	backend.logs = []models.SiteDailyLog{
		{ID: "log1", SiteID: "s1"},
		{ID: "log2", SiteID: "s2"},
	}
	backend.overheads = []models.Overhead{{ID: "o1", SiteID: "s1", Amount: 50}}
	app.Store.Refresh(context.Background())
	notifier.answer = true

	app.Sites.Delete(context.Background(), "s1")

	if len(app.Store.DailyLogs()) != 1 || app.Store.DailyLogs()[0].SiteID != "s2" {
		t.Fatalf("expected s1's logs gone after cascade, got %+v", app.Store.DailyLogs())
	}
	if len(app.Store.Overheads()) != 0 {
		t.Fatalf("expected s1's overheads gone after cascade, got %+v", app.Store.Overheads())
	}
}

func TestDelete_RequestFailureAlerts(t *testing.T) {
	app, backend, notifier := newTestApp(t)
	backend.setFail("DELETE /api/materials/:id", true)
	notifier.answer = true

	app.Materials.Delete(context.Background(), "m1")

	if len(notifier.alerts) != 1 || notifier.alerts[0] != "Failed to delete material" {
		t.Fatalf("expected delete failure alert, got %v", notifier.alerts)
	}
}

func TestUpdateThenDeleteMaterial(t *testing.T) {
	app, backend, notifier := newTestApp(t)
	backend.materials = []models.Material{{ID: "m1", Name: "Paint", Unit: models.UnitBucket, RatePerUnit: 500, CurrentStock: 10}}
	app.Store.Refresh(context.Background())
	notifier.answer = true

	app.Materials.StartEdit("m1", MaterialDraftFrom(backend.materials[0]))
	app.Materials.Working().RatePerUnit = "550"
	app.Materials.SaveEdit(context.Background())
	app.Materials.Delete(context.Background(), "m1")

	if len(notifier.alerts) != 0 {
		t.Fatalf("unexpected alerts: %v", notifier.alerts)
	}
	for _, m := range app.Store.Materials() {
		if m.ID == "m1" {
			t.Fatal("m1 must be absent after update then delete")
		}
	}
}

func TestInventoryFlow_PaintAndPrimer(t *testing.T) {
	app, _, notifier := newTestApp(t)

	d := app.Materials.Draft()
	d.Name = "Paint"
	d.Unit = "bucket"
	d.RatePerUnit = "500"
	d.CurrentStock = "10"
	app.Materials.Create(context.Background())

	materials := app.Store.Materials()
	if len(materials) != 1 || materials[0].StockValue() != 5000 {
		t.Fatalf("expected Paint with stock value 5000, got %+v", materials)
	}

	d = app.Materials.Draft()
	d.Name = "Primer"
	d.Unit = "liter"
	d.RatePerUnit = "200"
	d.CurrentStock = "3"
	app.Materials.Create(context.Background())

	app.Reports.LoadInventoryReport(context.Background())
	rep := app.Reports.Inventory()
	if rep == nil {
		t.Fatal("expected an inventory report")
	}
	if len(rep.LowStockItems) != 1 || rep.LowStockItems[0].Name != "Primer" {
		t.Fatalf("expected Primer flagged as low stock, got %+v", rep.LowStockItems)
	}
	if rep.TotalStockValue < 5600 {
		t.Fatalf("expected total stock value of at least 5600, got %v", rep.TotalStockValue)
	}
	if len(notifier.alerts) != 0 {
		t.Fatalf("unexpected alerts: %v", notifier.alerts)
	}
}

func TestLogController_ResolvesLinesFromSnapshot(t *testing.T) {
	app, backend, notifier := newTestApp(t)
	backend.sites = []models.Site{{ID: "s1", Name: "Hill House"}}
	backend.materials = []models.Material{{ID: "m1", Name: "Paint", Unit: models.UnitBucket, RatePerUnit: 500, CurrentStock: 10}}
	backend.labours = []models.Labour{{ID: "l1", Name: "Ravi", RatePerDay: 800}}
	app.Store.Refresh(context.Background())

	d := app.Logs.Draft()
	d.SiteID = "s1"
	d.LogDate = "2026-02-10"
	d.Materials = []MaterialLineDraft{{MaterialID: "m1", Quantity: "2"}}
	d.Labours = []LabourLineDraft{{LabourID: "l1", Count: "3"}}
	app.Logs.Create(context.Background())

	if len(notifier.alerts) != 0 {
		t.Fatalf("unexpected alerts: %v", notifier.alerts)
	}
	logs := app.Store.DailyLogs()
	if len(logs) != 1 {
		t.Fatalf("expected 1 log in store, got %d", len(logs))
	}
	log := logs[0]
	if log.SiteName != "Hill House" {
		t.Fatalf("expected resolved site name, got %q", log.SiteName)
	}
	if log.TotalMaterialCost != 1000 || log.TotalLabourCost != 2400 || log.TotalCost != 3400 {
		t.Fatalf("unexpected totals: %v/%v/%v", log.TotalMaterialCost, log.TotalLabourCost, log.TotalCost)
	}
}

func TestLogController_UnknownMaterialFailsSilently(t *testing.T) {
	app, backend, notifier := newTestApp(t)
	backend.sites = []models.Site{{ID: "s1", Name: "Hill House"}}
	app.Store.Refresh(context.Background())

	d := app.Logs.Draft()
	d.SiteID = "s1"
	d.LogDate = "2026-02-10"
	d.Materials = []MaterialLineDraft{{MaterialID: "missing", Quantity: "2"}}
	app.Logs.Create(context.Background())

	if got := backend.requestCount("POST /api/site-logs"); got != 0 {
		t.Fatalf("unknown material must not issue a request, got %d", got)
	}
	if len(notifier.alerts) != 0 {
		t.Fatalf("validation failures are silent, got %v", notifier.alerts)
	}
}
