package console

// Tab identifies one of the console's views.
type Tab string

const (
	TabDashboard Tab = "dashboard"
	TabSites     Tab = "sites"
	TabMaterials Tab = "materials"
	TabLabours   Tab = "labours"
	TabLogs      Tab = "logs"
	TabOverheads Tab = "overheads"
	TabReports   Tab = "reports"
)

// Tabs lists the views in display order.
var Tabs = []Tab{TabDashboard, TabSites, TabMaterials, TabLabours, TabLogs, TabOverheads, TabReports}

// Router tracks which view is active. Switching tabs never discards form or
// session state; each controller keeps its own.
type Router struct {
	active Tab
}

// NewRouter starts on the dashboard.
func NewRouter() *Router {
	return &Router{active: TabDashboard}
}

// Active returns the current view.
func (r *Router) Active() Tab {
	return r.active
}

// Switch changes the active view. Unknown tabs are ignored.
func (r *Router) Switch(t Tab) bool {
	for _, known := range Tabs {
		if known == t {
			r.active = t
			return true
		}
	}
	return false
}
