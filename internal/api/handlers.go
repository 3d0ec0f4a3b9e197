package api

import (
	"context"
	"net/http"
	"time"

	"github.com/contractorhq/paintdesk/internal/models"
	"github.com/gin-gonic/gin"
)

// Store is the persistence surface the handlers depend on.
// *db.Database satisfies it; tests substitute an in-memory fake.
type Store interface {
	Health(ctx context.Context) error

	ListSites(ctx context.Context) ([]models.Site, error)
	GetSite(ctx context.Context, id string) (*models.Site, error)
	CreateSite(ctx context.Context, site models.Site) (*models.Site, error)
	UpdateSite(ctx context.Context, id string, site models.Site) (*models.Site, error)
	DeleteSite(ctx context.Context, id string) error

	ListMaterials(ctx context.Context) ([]models.Material, error)
	CreateMaterial(ctx context.Context, material models.Material) (*models.Material, error)
	UpdateMaterial(ctx context.Context, id string, material models.Material) (*models.Material, error)
	DeleteMaterial(ctx context.Context, id string) error

	ListLabours(ctx context.Context) ([]models.Labour, error)
	CreateLabour(ctx context.Context, labour models.Labour) (*models.Labour, error)
	UpdateLabour(ctx context.Context, id string, labour models.Labour) (*models.Labour, error)
	DeleteLabour(ctx context.Context, id string) error

	ListSiteLogs(ctx context.Context, siteID string) ([]models.SiteDailyLog, error)
	GetSiteLog(ctx context.Context, id string) (*models.SiteDailyLog, error)
	CreateSiteLog(ctx context.Context, log models.SiteDailyLog) (*models.SiteDailyLog, error)
	UpdateSiteLog(ctx context.Context, id string, log models.SiteDailyLog) (*models.SiteDailyLog, error)
	DeleteSiteLog(ctx context.Context, id string) error

	ListOverheads(ctx context.Context, siteID string) ([]models.Overhead, error)
	CreateOverhead(ctx context.Context, overhead models.Overhead) (*models.Overhead, error)
	UpdateOverhead(ctx context.Context, id string, overhead models.Overhead) (*models.Overhead, error)
	DeleteOverhead(ctx context.Context, id string) error
}

// Handler holds the persistence layer and provides HTTP handlers
type Handler struct {
	store Store
	now   func() time.Time
}

// NewHandler creates a new handler instance
func NewHandler(store Store) *Handler {
	return &Handler{store: store, now: time.Now}
}

// Health handles GET /api/health (and /ready)
func (h *Handler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.store.Health(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "message": "Painting Contractor API is running"})
}
