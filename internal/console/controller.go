package console

import "context"

// Controller runs the create/edit/delete lifecycle for one entity family.
// Validation failures are silent: an invalid draft produces no request and
// no message. A request that fails surfaces as a blocking alert naming the
// operation; on success the draft is reset and the store refreshed.
type Controller[D any] struct {
	entity   string
	notifier Notifier
	store    *Store
	session  Session[D]

	draft    D
	newDraft func() D
	validate func(D) bool
	createFn func(context.Context, D) error
	updateFn func(context.Context, string, D) error
	deleteFn func(context.Context, string) error
}

// Draft returns the mutable create form.
func (c *Controller[D]) Draft() *D {
	return &c.draft
}

// ResetDraft discards the create form.
func (c *Controller[D]) ResetDraft() {
	c.draft = c.newDraft()
}

// Create submits the current draft. An invalid draft is ignored without
// feedback; a failed request alerts and keeps the draft so the user can
// correct and retry.
func (c *Controller[D]) Create(ctx context.Context) {
	if !c.validate(c.draft) {
		return
	}
	if err := c.createFn(ctx, c.draft); err != nil {
		c.notifier.Alert("Failed to create " + c.entity)
		return
	}
	c.draft = c.newDraft()
	c.store.Refresh(ctx)
}

// StartEdit opens an edit session seeded with the given working copy. Any
// edit already in progress is silently replaced.
func (c *Controller[D]) StartEdit(id string, working D) {
	c.session.Start(id, working)
}

// CancelEdit discards the working copy.
func (c *Controller[D]) CancelEdit() {
	c.session.Cancel()
}

// Editing reports whether an edit session is open.
func (c *Controller[D]) Editing() bool {
	return c.session.Active()
}

// EditingID returns the entity under edit, or "" when idle.
func (c *Controller[D]) EditingID() string {
	return c.session.ID()
}

// Working returns the mutable edit form. Meaningless unless Editing.
func (c *Controller[D]) Working() *D {
	return c.session.Working()
}

// SaveEdit submits the working copy. On a failed request the session stays
// open with the working copy intact; on success it closes and the store is
// refreshed.
func (c *Controller[D]) SaveEdit(ctx context.Context) {
	if !c.session.Active() {
		return
	}
	working := *c.session.Working()
	if !c.validate(working) {
		return
	}
	if err := c.updateFn(ctx, c.session.ID(), working); err != nil {
		c.notifier.Alert("Failed to update " + c.entity)
		return
	}
	c.session.Cancel()
	c.store.Refresh(ctx)
}

// Delete removes the entity after a confirmation prompt. Declining is a
// no-op. Deleting the entity currently under edit also closes the session.
func (c *Controller[D]) Delete(ctx context.Context, id string) {
	if !c.notifier.Confirm("Are you sure you want to delete this " + c.entity + "?") {
		return
	}
	if err := c.deleteFn(ctx, id); err != nil {
		c.notifier.Alert("Failed to delete " + c.entity)
		return
	}
	if c.session.Active() && c.session.ID() == id {
		c.session.Cancel()
	}
	c.store.Refresh(ctx)
}
