// Package console implements the management console's core: the entity
// store, the per-family CRUD controllers, edit sessions, the report loader
// and the view router. It is UI-agnostic; the terminal frontend lives in
// internal/cli.
package console

import (
	"context"

	"github.com/contractorhq/paintdesk/internal/client"
	"github.com/contractorhq/paintdesk/internal/models"
)

// App wires the console core together around one API client and one
// notifier.
type App struct {
	Client   *client.Client
	Notifier Notifier
	Store    *Store
	Router   *Router
	Reports  *Reports

	Sites     *Controller[SiteDraft]
	Materials *Controller[MaterialDraft]
	Labours   *Controller[LabourDraft]
	Logs      *Controller[LogDraft]
	Overheads *Controller[OverheadDraft]
}

// NewApp builds the console core. Nothing is fetched until the first
// Refresh.
func NewApp(c *client.Client, n Notifier) *App {
	store := NewStore(c)

	app := &App{
		Client:   c,
		Notifier: n,
		Store:    store,
		Router:   NewRouter(),
		Reports:  NewReports(c, n),
	}

	app.Sites = &Controller[SiteDraft]{
		entity:   "site",
		notifier: n,
		store:    store,
		draft:    NewSiteDraft(),
		newDraft: NewSiteDraft,
		validate: func(d SiteDraft) bool {
			_, ok := d.ToSite()
			return ok
		},
		createFn: func(ctx context.Context, d SiteDraft) error {
			site, _ := d.ToSite()
			_, err := c.CreateSite(ctx, site)
			return err
		},
		updateFn: func(ctx context.Context, id string, d SiteDraft) error {
			site, _ := d.ToSite()
			_, err := c.UpdateSite(ctx, id, site)
			return err
		},
		deleteFn: c.DeleteSite,
	}

	app.Materials = &Controller[MaterialDraft]{
		entity:   "material",
		notifier: n,
		store:    store,
		newDraft: func() MaterialDraft { return MaterialDraft{} },
		validate: func(d MaterialDraft) bool {
			_, ok := d.ToMaterial()
			return ok
		},
		createFn: func(ctx context.Context, d MaterialDraft) error {
			material, _ := d.ToMaterial()
			_, err := c.CreateMaterial(ctx, material)
			return err
		},
		updateFn: func(ctx context.Context, id string, d MaterialDraft) error {
			material, _ := d.ToMaterial()
			_, err := c.UpdateMaterial(ctx, id, material)
			return err
		},
		deleteFn: c.DeleteMaterial,
	}

	app.Labours = &Controller[LabourDraft]{
		entity:   "labourer",
		notifier: n,
		store:    store,
		newDraft: func() LabourDraft { return LabourDraft{} },
		validate: func(d LabourDraft) bool {
			_, ok := d.ToLabour()
			return ok
		},
		createFn: func(ctx context.Context, d LabourDraft) error {
			labour, _ := d.ToLabour()
			_, err := c.CreateLabour(ctx, labour)
			return err
		},
		updateFn: func(ctx context.Context, id string, d LabourDraft) error {
			labour, _ := d.ToLabour()
			_, err := c.UpdateLabour(ctx, id, labour)
			return err
		},
		deleteFn: c.DeleteLabour,
	}

	toLog := func(d LogDraft) (models.SiteDailyLog, bool) {
		return d.ToLog(store.Sites(), store.Materials(), store.Labours())
	}
	app.Logs = &Controller[LogDraft]{
		entity:   "daily log",
		notifier: n,
		store:    store,
		newDraft: func() LogDraft { return LogDraft{} },
		validate: func(d LogDraft) bool {
			_, ok := toLog(d)
			return ok
		},
		createFn: func(ctx context.Context, d LogDraft) error {
			log, _ := toLog(d)
			_, err := c.CreateSiteLog(ctx, log)
			return err
		},
		updateFn: func(ctx context.Context, id string, d LogDraft) error {
			log, _ := toLog(d)
			_, err := c.UpdateSiteLog(ctx, id, log)
			return err
		},
		deleteFn: c.DeleteSiteLog,
	}

	toOverhead := func(d OverheadDraft) (models.Overhead, bool) {
		return d.ToOverhead(store.Sites())
	}
	app.Overheads = &Controller[OverheadDraft]{
		entity:   "overhead",
		notifier: n,
		store:    store,
		newDraft: func() OverheadDraft { return OverheadDraft{} },
		validate: func(d OverheadDraft) bool {
			_, ok := toOverhead(d)
			return ok
		},
		createFn: func(ctx context.Context, d OverheadDraft) error {
			oh, _ := toOverhead(d)
			_, err := c.CreateOverhead(ctx, oh)
			return err
		},
		updateFn: func(ctx context.Context, id string, d OverheadDraft) error {
			oh, _ := toOverhead(d)
			_, err := c.UpdateOverhead(ctx, id, oh)
			return err
		},
		deleteFn: c.DeleteOverhead,
	}

	return app
}
