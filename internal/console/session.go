package console

// Session tracks at most one in-progress edit for an entity family. Starting
// a new edit silently replaces any prior one; the replaced working copy is
// discarded without prompting.
type Session[D any] struct {
	active  bool
	id      string
	working D
}

// Start begins editing the entity with the given ID, seeding the working
// copy from the current snapshot.
func (s *Session[D]) Start(id string, working D) {
	s.active = true
	s.id = id
	s.working = working
}

// Cancel discards the working copy and returns to the idle state.
func (s *Session[D]) Cancel() {
	var zero D
	s.active = false
	s.id = ""
	s.working = zero
}

// Active reports whether an edit is in progress.
func (s *Session[D]) Active() bool {
	return s.active
}

// ID returns the entity being edited, or "" when idle.
func (s *Session[D]) ID() string {
	return s.id
}

// Working returns a mutable pointer to the working copy. Callers must check
// Active first; the pointer is meaningless when idle.
func (s *Session[D]) Working() *D {
	return &s.working
}
