package console

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/contractorhq/paintdesk/internal/client"
	"github.com/contractorhq/paintdesk/internal/models"
	"github.com/contractorhq/paintdesk/internal/report"
)

// testNotifier records alerts and answers every confirmation the same way.
type testNotifier struct {
	alerts   []string
	confirms []string
	answer   bool
}

func (n *testNotifier) Alert(msg string) { n.alerts = append(n.alerts, msg) }

func (n *testNotifier) Confirm(msg string) bool {
	n.confirms = append(n.confirms, msg)
	return n.answer
}

// fakeBackend is an in-memory paintdesk API for console tests. Routes can be
// made to fail by key, e.g. fail["POST /api/sites"] = true.
type fakeBackend struct {
	mu     sync.Mutex
	nextID int

	sites     []models.Site
	materials []models.Material
	labours   []models.Labour
	logs      []models.SiteDailyLog
	overheads []models.Overhead

	fail     map[string]bool
	requests map[string]int

	srv *httptest.Server
}

func newFakeBackend(t *testing.T) *fakeBackend {
	t.Helper()
	gin.SetMode(gin.TestMode)

	b := &fakeBackend{
		fail:     make(map[string]bool),
		requests: make(map[string]int),
	}

	r := gin.New()
	r.Use(func(c *gin.Context) {
		key := c.Request.Method + " " + c.FullPath()
		b.mu.Lock()
		b.requests[key]++
		failed := b.fail[key]
		b.mu.Unlock()
		if failed {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "injected failure"})
		}
	})

	api := r.Group("/api")

	api.GET("/sites", func(c *gin.Context) {
		b.mu.Lock()
		defer b.mu.Unlock()
		c.JSON(http.StatusOK, b.sites)
	})
	api.POST("/sites", func(c *gin.Context) {
		var site models.Site
		if err := c.ShouldBindJSON(&site); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}
		b.mu.Lock()
		defer b.mu.Unlock()
		site.ID = b.id("site")
		b.sites = append(b.sites, site)
		c.JSON(http.StatusCreated, site)
	})
	api.PUT("/sites/:id", func(c *gin.Context) {
		var site models.Site
		if err := c.ShouldBindJSON(&site); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}
		b.mu.Lock()
		defer b.mu.Unlock()
		for i := range b.sites {
			if b.sites[i].ID == c.Param("id") {
				site.ID = c.Param("id")
				b.sites[i] = site
				c.JSON(http.StatusOK, site)
				return
			}
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "Site not found"})
	})
	api.DELETE("/sites/:id", func(c *gin.Context) {
		b.mu.Lock()
		defer b.mu.Unlock()
		id := c.Param("id")
		for i := range b.sites {
			if b.sites[i].ID == id {
				b.sites = append(b.sites[:i], b.sites[i+1:]...)
				var logs []models.SiteDailyLog
				for _, l := range b.logs {
					if l.SiteID != id {
						logs = append(logs, l)
					}
				}
				b.logs = logs
				var overheads []models.Overhead
				for _, o := range b.overheads {
					if o.SiteID != id {
						overheads = append(overheads, o)
					}
				}
				b.overheads = overheads
				c.JSON(http.StatusOK, gin.H{"message": "Site deleted successfully"})
				return
			}
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "Site not found"})
	})

	api.GET("/materials", func(c *gin.Context) {
		b.mu.Lock()
		defer b.mu.Unlock()
		c.JSON(http.StatusOK, b.materials)
	})
	api.POST("/materials", func(c *gin.Context) {
		var m models.Material
		if err := c.ShouldBindJSON(&m); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}
		b.mu.Lock()
		defer b.mu.Unlock()
		m.ID = b.id("mat")
		b.materials = append(b.materials, m)
		c.JSON(http.StatusCreated, m)
	})
	api.PUT("/materials/:id", func(c *gin.Context) {
		var m models.Material
		if err := c.ShouldBindJSON(&m); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}
		b.mu.Lock()
		defer b.mu.Unlock()
		for i := range b.materials {
			if b.materials[i].ID == c.Param("id") {
				m.ID = c.Param("id")
				b.materials[i] = m
				c.JSON(http.StatusOK, m)
				return
			}
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "Material not found"})
	})
	api.DELETE("/materials/:id", func(c *gin.Context) {
		b.mu.Lock()
		defer b.mu.Unlock()
		for i := range b.materials {
			if b.materials[i].ID == c.Param("id") {
				b.materials = append(b.materials[:i], b.materials[i+1:]...)
				c.JSON(http.StatusOK, gin.H{"message": "Material deleted successfully"})
				return
			}
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "Material not found"})
	})

	api.GET("/labours", func(c *gin.Context) {
		b.mu.Lock()
		defer b.mu.Unlock()
		c.JSON(http.StatusOK, b.labours)
	})
	api.POST("/labours", func(c *gin.Context) {
		var l models.Labour
		if err := c.ShouldBindJSON(&l); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}
		b.mu.Lock()
		defer b.mu.Unlock()
		l.ID = b.id("lab")
		b.labours = append(b.labours, l)
		c.JSON(http.StatusCreated, l)
	})
	api.PUT("/labours/:id", func(c *gin.Context) {
		var l models.Labour
		if err := c.ShouldBindJSON(&l); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}
		b.mu.Lock()
		defer b.mu.Unlock()
		for i := range b.labours {
			if b.labours[i].ID == c.Param("id") {
				l.ID = c.Param("id")
				b.labours[i] = l
				c.JSON(http.StatusOK, l)
				return
			}
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "Labour not found"})
	})
	api.DELETE("/labours/:id", func(c *gin.Context) {
		b.mu.Lock()
		defer b.mu.Unlock()
		for i := range b.labours {
			if b.labours[i].ID == c.Param("id") {
				b.labours = append(b.labours[:i], b.labours[i+1:]...)
				c.JSON(http.StatusOK, gin.H{"message": "Labour deleted successfully"})
				return
			}
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "Labour not found"})
	})

	api.GET("/site-logs", func(c *gin.Context) {
		b.mu.Lock()
		defer b.mu.Unlock()
		siteID := c.Query("site_id")
		if siteID == "" {
			c.JSON(http.StatusOK, b.logs)
			return
		}
		out := []models.SiteDailyLog{}
		for _, l := range b.logs {
			if l.SiteID == siteID {
				out = append(out, l)
			}
		}
		c.JSON(http.StatusOK, out)
	})
	api.POST("/site-logs", func(c *gin.Context) {
		var l models.SiteDailyLog
		if err := c.ShouldBindJSON(&l); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}
		b.mu.Lock()
		defer b.mu.Unlock()
		l.ID = b.id("log")
		b.logs = append(b.logs, l)
		c.JSON(http.StatusCreated, l)
	})
	api.PUT("/site-logs/:id", func(c *gin.Context) {
		var l models.SiteDailyLog
		if err := c.ShouldBindJSON(&l); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}
		b.mu.Lock()
		defer b.mu.Unlock()
		for i := range b.logs {
			if b.logs[i].ID == c.Param("id") {
				l.ID = c.Param("id")
				b.logs[i] = l
				c.JSON(http.StatusOK, l)
				return
			}
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "Log not found"})
	})
	api.DELETE("/site-logs/:id", func(c *gin.Context) {
		b.mu.Lock()
		defer b.mu.Unlock()
		for i := range b.logs {
			if b.logs[i].ID == c.Param("id") {
				b.logs = append(b.logs[:i], b.logs[i+1:]...)
				c.JSON(http.StatusOK, gin.H{"message": "Log deleted successfully"})
				return
			}
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "Log not found"})
	})

	api.GET("/overheads", func(c *gin.Context) {
		b.mu.Lock()
		defer b.mu.Unlock()
		siteID := c.Query("site_id")
		if siteID == "" {
			c.JSON(http.StatusOK, b.overheads)
			return
		}
		out := []models.Overhead{}
		for _, o := range b.overheads {
			if o.SiteID == siteID {
				out = append(out, o)
			}
		}
		c.JSON(http.StatusOK, out)
	})
	api.POST("/overheads", func(c *gin.Context) {
		var o models.Overhead
		if err := c.ShouldBindJSON(&o); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}
		b.mu.Lock()
		defer b.mu.Unlock()
		o.ID = b.id("oh")
		b.overheads = append(b.overheads, o)
		c.JSON(http.StatusCreated, o)
	})
	api.PUT("/overheads/:id", func(c *gin.Context) {
		var o models.Overhead
		if err := c.ShouldBindJSON(&o); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}
		b.mu.Lock()
		defer b.mu.Unlock()
		for i := range b.overheads {
			if b.overheads[i].ID == c.Param("id") {
				o.ID = c.Param("id")
				b.overheads[i] = o
				c.JSON(http.StatusOK, o)
				return
			}
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "Overhead not found"})
	})
	api.DELETE("/overheads/:id", func(c *gin.Context) {
		b.mu.Lock()
		defer b.mu.Unlock()
		for i := range b.overheads {
			if b.overheads[i].ID == c.Param("id") {
				b.overheads = append(b.overheads[:i], b.overheads[i+1:]...)
				c.JSON(http.StatusOK, gin.H{"message": "Overhead deleted successfully"})
				return
			}
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "Overhead not found"})
	})

	api.GET("/reports/site/:site_id", func(c *gin.Context) {
		b.mu.Lock()
		defer b.mu.Unlock()
		for _, s := range b.sites {
			if s.ID == c.Param("site_id") {
				var logs []models.SiteDailyLog
				for _, l := range b.logs {
					if l.SiteID == s.ID {
						logs = append(logs, l)
					}
				}
				var overheads []models.Overhead
				for _, o := range b.overheads {
					if o.SiteID == s.ID {
						overheads = append(overheads, o)
					}
				}
				c.JSON(http.StatusOK, report.BuildSiteReport(s, logs, overheads))
				return
			}
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "Site not found"})
	})
	api.GET("/reports/inventory", func(c *gin.Context) {
		b.mu.Lock()
		defer b.mu.Unlock()
		c.JSON(http.StatusOK, report.BuildInventoryReport(b.materials))
	})
	api.GET("/reports/daily", func(c *gin.Context) {
		b.mu.Lock()
		defer b.mu.Unlock()
		date := c.Query("date")
		if date == "" {
			date = "2026-02-10"
		}
		c.JSON(http.StatusOK, report.BuildDailyReport(date, b.logs))
	})

	b.srv = httptest.NewServer(r)
	t.Cleanup(b.srv.Close)
	return b
}

func (b *fakeBackend) id(prefix string) string {
	b.nextID++
	return fmt.Sprintf("%s-%d", prefix, b.nextID)
}

func (b *fakeBackend) setFail(key string, v bool) {
	b.mu.Lock()
	b.fail[key] = v
	b.mu.Unlock()
}

func (b *fakeBackend) requestCount(key string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.requests[key]
}

func newTestApp(t *testing.T) (*App, *fakeBackend, *testNotifier) {
	t.Helper()
	backend := newFakeBackend(t)
	notifier := &testNotifier{}
	app := NewApp(client.New(backend.srv.URL), notifier)
	return app, backend, notifier
}
