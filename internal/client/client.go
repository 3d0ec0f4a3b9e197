// Package client implements the paintdesk REST API contract consumed by the
// management console. Any non-2xx response is reported as an *APIError; the
// body is not interpreted beyond a best-effort error message.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/contractorhq/paintdesk/internal/models"
)

// APIError is a non-2xx response from the backend.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error: status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api error: status %d", e.StatusCode)
}

// Client talks to the paintdesk backend over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client for the given base URL, e.g. "http://localhost:8001".
func New(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
}

// do issues one JSON request. out, when non-nil, receives the decoded
// success body.
func (c *Client) do(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	var reqBody *bytes.Buffer
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewBuffer(encoded)
	} else {
		reqBody = &bytes.Buffer{}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var errBody struct {
			Error string `json:"error"`
		}
		if json.NewDecoder(resp.Body).Decode(&errBody) == nil {
			apiErr.Message = errBody.Error
		}
		return apiErr
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

// ListSites fetches all sites
func (c *Client) ListSites(ctx context.Context) ([]models.Site, error) {
	var sites []models.Site
	if err := c.do(ctx, http.MethodGet, "/api/sites", nil, &sites); err != nil {
		return nil, err
	}
	return sites, nil
}

// CreateSite creates a site and returns the server's copy
func (c *Client) CreateSite(ctx context.Context, site models.Site) (*models.Site, error) {
	var created models.Site
	if err := c.do(ctx, http.MethodPost, "/api/sites", site, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateSite replaces the site with the given ID
func (c *Client) UpdateSite(ctx context.Context, id string, site models.Site) (*models.Site, error) {
	var updated models.Site
	if err := c.do(ctx, http.MethodPut, "/api/sites/"+url.PathEscape(id), site, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteSite deletes the site with the given ID
func (c *Client) DeleteSite(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/sites/"+url.PathEscape(id), nil, nil)
}

// ListMaterials fetches the central inventory
func (c *Client) ListMaterials(ctx context.Context) ([]models.Material, error) {
	var materials []models.Material
	if err := c.do(ctx, http.MethodGet, "/api/materials", nil, &materials); err != nil {
		return nil, err
	}
	return materials, nil
}

// CreateMaterial creates a material and returns the server's copy
func (c *Client) CreateMaterial(ctx context.Context, material models.Material) (*models.Material, error) {
	var created models.Material
	if err := c.do(ctx, http.MethodPost, "/api/materials", material, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateMaterial replaces the material with the given ID
func (c *Client) UpdateMaterial(ctx context.Context, id string, material models.Material) (*models.Material, error) {
	var updated models.Material
	if err := c.do(ctx, http.MethodPut, "/api/materials/"+url.PathEscape(id), material, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteMaterial deletes the material with the given ID
func (c *Client) DeleteMaterial(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/materials/"+url.PathEscape(id), nil, nil)
}

// ListLabours fetches the labour roster
func (c *Client) ListLabours(ctx context.Context) ([]models.Labour, error) {
	var labours []models.Labour
	if err := c.do(ctx, http.MethodGet, "/api/labours", nil, &labours); err != nil {
		return nil, err
	}
	return labours, nil
}

// CreateLabour creates a labourer and returns the server's copy
func (c *Client) CreateLabour(ctx context.Context, labour models.Labour) (*models.Labour, error) {
	var created models.Labour
	if err := c.do(ctx, http.MethodPost, "/api/labours", labour, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateLabour replaces the labourer with the given ID
func (c *Client) UpdateLabour(ctx context.Context, id string, labour models.Labour) (*models.Labour, error) {
	var updated models.Labour
	if err := c.do(ctx, http.MethodPut, "/api/labours/"+url.PathEscape(id), labour, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteLabour deletes the labourer with the given ID
func (c *Client) DeleteLabour(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/labours/"+url.PathEscape(id), nil, nil)
}

// ListSiteLogs fetches daily logs, optionally scoped to one site
func (c *Client) ListSiteLogs(ctx context.Context, siteID string) ([]models.SiteDailyLog, error) {
	path := "/api/site-logs"
	if siteID != "" {
		path += "?site_id=" + url.QueryEscape(siteID)
	}
	var logs []models.SiteDailyLog
	if err := c.do(ctx, http.MethodGet, path, nil, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

// CreateSiteLog creates a daily log and returns the server's copy with
// recomputed totals
func (c *Client) CreateSiteLog(ctx context.Context, log models.SiteDailyLog) (*models.SiteDailyLog, error) {
	var created models.SiteDailyLog
	if err := c.do(ctx, http.MethodPost, "/api/site-logs", log, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateSiteLog replaces the daily log with the given ID
func (c *Client) UpdateSiteLog(ctx context.Context, id string, log models.SiteDailyLog) (*models.SiteDailyLog, error) {
	var updated models.SiteDailyLog
	if err := c.do(ctx, http.MethodPut, "/api/site-logs/"+url.PathEscape(id), log, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteSiteLog deletes the daily log with the given ID
func (c *Client) DeleteSiteLog(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/site-logs/"+url.PathEscape(id), nil, nil)
}

// ListOverheads fetches overhead expenses, optionally scoped to one site
func (c *Client) ListOverheads(ctx context.Context, siteID string) ([]models.Overhead, error) {
	path := "/api/overheads"
	if siteID != "" {
		path += "?site_id=" + url.QueryEscape(siteID)
	}
	var overheads []models.Overhead
	if err := c.do(ctx, http.MethodGet, path, nil, &overheads); err != nil {
		return nil, err
	}
	return overheads, nil
}

// CreateOverhead creates an overhead expense and returns the server's copy
func (c *Client) CreateOverhead(ctx context.Context, oh models.Overhead) (*models.Overhead, error) {
	var created models.Overhead
	if err := c.do(ctx, http.MethodPost, "/api/overheads", oh, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateOverhead replaces the overhead with the given ID
func (c *Client) UpdateOverhead(ctx context.Context, id string, oh models.Overhead) (*models.Overhead, error) {
	var updated models.Overhead
	if err := c.do(ctx, http.MethodPut, "/api/overheads/"+url.PathEscape(id), oh, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteOverhead deletes the overhead with the given ID
func (c *Client) DeleteOverhead(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/overheads/"+url.PathEscape(id), nil, nil)
}

// SiteReport fetches the aggregate cost report for one site
func (c *Client) SiteReport(ctx context.Context, siteID string) (*models.SiteReport, error) {
	var rep models.SiteReport
	if err := c.do(ctx, http.MethodGet, "/api/reports/site/"+url.PathEscape(siteID), nil, &rep); err != nil {
		return nil, err
	}
	return &rep, nil
}

// InventoryReport fetches the inventory valuation report
func (c *Client) InventoryReport(ctx context.Context) (*models.InventoryReport, error) {
	var rep models.InventoryReport
	if err := c.do(ctx, http.MethodGet, "/api/reports/inventory", nil, &rep); err != nil {
		return nil, err
	}
	return &rep, nil
}

// DailyReport fetches today's cost report
func (c *Client) DailyReport(ctx context.Context) (*models.DailyReport, error) {
	var rep models.DailyReport
	if err := c.do(ctx, http.MethodGet, "/api/reports/daily", nil, &rep); err != nil {
		return nil, err
	}
	return &rep, nil
}
