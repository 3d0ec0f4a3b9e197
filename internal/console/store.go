package console

import (
	"context"
	"sync"

	"github.com/contractorhq/paintdesk/internal/client"
	"github.com/contractorhq/paintdesk/internal/logging"
	"github.com/contractorhq/paintdesk/internal/models"
)

// Store is the console's in-memory cache of the five entity collections. It
// is rebuilt wholesale from the backend after every mutation; there is no
// merge-by-id path. Only Refresh mutates it.
type Store struct {
	client *client.Client

	mu        sync.RWMutex
	loading   bool
	sites     []models.Site
	materials []models.Material
	labours   []models.Labour
	dailyLogs []models.SiteDailyLog
	overheads []models.Overhead
}

// NewStore creates an empty store backed by the given API client.
func NewStore(c *client.Client) *Store {
	return &Store{client: c}
}

// Refresh fetches all five collections concurrently. Each collection is
// applied independently: a failed fetch leaves that collection at its
// previous (stale) value and is logged but never surfaced to the user.
func (s *Store) Refresh(ctx context.Context) {
	s.setLoading(true)
	defer s.setLoading(false)

	var wg sync.WaitGroup
	wg.Add(5)

	go func() {
		defer wg.Done()
		sites, err := s.client.ListSites(ctx)
		if err != nil {
			logging.LogKV("warn", "refresh failed", map[string]interface{}{"collection": "sites", "error": err.Error()})
			return
		}
		s.mu.Lock()
		s.sites = sites
		s.mu.Unlock()
	}()
	go func() {
		defer wg.Done()
		materials, err := s.client.ListMaterials(ctx)
		if err != nil {
			logging.LogKV("warn", "refresh failed", map[string]interface{}{"collection": "materials", "error": err.Error()})
			return
		}
		s.mu.Lock()
		s.materials = materials
		s.mu.Unlock()
	}()
	go func() {
		defer wg.Done()
		labours, err := s.client.ListLabours(ctx)
		if err != nil {
			logging.LogKV("warn", "refresh failed", map[string]interface{}{"collection": "labours", "error": err.Error()})
			return
		}
		s.mu.Lock()
		s.labours = labours
		s.mu.Unlock()
	}()
	go func() {
		defer wg.Done()
		logs, err := s.client.ListSiteLogs(ctx, "")
		if err != nil {
			logging.LogKV("warn", "refresh failed", map[string]interface{}{"collection": "site-logs", "error": err.Error()})
			return
		}
		s.mu.Lock()
		s.dailyLogs = logs
		s.mu.Unlock()
	}()
	go func() {
		defer wg.Done()
		overheads, err := s.client.ListOverheads(ctx, "")
		if err != nil {
			logging.LogKV("warn", "refresh failed", map[string]interface{}{"collection": "overheads", "error": err.Error()})
			return
		}
		s.mu.Lock()
		s.overheads = overheads
		s.mu.Unlock()
	}()

	wg.Wait()
}

func (s *Store) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}

// Loading reports whether a refresh is in flight.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Sites returns the latest committed sites snapshot.
func (s *Store) Sites() []models.Site {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sites
}

// Materials returns the latest committed materials snapshot.
func (s *Store) Materials() []models.Material {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.materials
}

// Labours returns the latest committed labour roster snapshot.
func (s *Store) Labours() []models.Labour {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.labours
}

// DailyLogs returns the latest committed daily-log snapshot.
func (s *Store) DailyLogs() []models.SiteDailyLog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dailyLogs
}

// Overheads returns the latest committed overheads snapshot.
func (s *Store) Overheads() []models.Overhead {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.overheads
}

// TotalMaterialValue computes the dashboard's inventory valuation from the
// current snapshot. The value is derived on every call, never cached.
func (s *Store) TotalMaterialValue() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var total float64
	for _, m := range s.materials {
		total += m.StockValue()
	}
	return total
}
