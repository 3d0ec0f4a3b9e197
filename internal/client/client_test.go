package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/contractorhq/paintdesk/internal/models"
)

func TestNew_TrimsTrailingSlash(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/sites" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		json.NewEncoder(w).Encode([]models.Site{})
	}))
	defer srv.Close()

	c := New(srv.URL + "/")
	if _, err := c.ListSites(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDo_NonTwoHundredIsAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "Site not found"})
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.SiteReport(context.Background(), "ghost")
	if err == nil {
		t.Fatal("expected an error")
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if apiErr.StatusCode != http.StatusNotFound || apiErr.Message != "Site not found" {
		t.Fatalf("unexpected APIError: %+v", apiErr)
	}
}

func TestDo_ErrorBodyWithoutMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := New(srv.URL)
	err := c.DeleteSite(context.Background(), "s1")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.Message != "" {
		t.Fatalf("expected empty message, got %q", apiErr.Message)
	}
}

func TestCreateSite_SendsJSONAndDecodesResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/sites" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("expected JSON content type, got %q", ct)
		}
		var site models.Site
		if err := json.NewDecoder(r.Body).Decode(&site); err != nil {
			t.Errorf("failed to decode body: %v", err)
		}
		site.ID = "site-1"
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(site)
	}))
	defer srv.Close()

	c := New(srv.URL)
	created, err := c.CreateSite(context.Background(), models.Site{Name: "Hill House"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != "site-1" || created.Name != "Hill House" {
		t.Fatalf("unexpected response: %+v", created)
	}
}

func TestUpdateSite_EscapesID(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		json.NewEncoder(w).Encode(models.Site{})
	}))
	defer srv.Close()

	c := New(srv.URL)
	if _, err := c.UpdateSite(context.Background(), "a/b", models.Site{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/api/sites/a%2Fb" {
		t.Fatalf("expected escaped path, got %q", gotPath)
	}
}

func TestListSiteLogs_SiteFilter(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		json.NewEncoder(w).Encode([]models.SiteDailyLog{})
	}))
	defer srv.Close()

	c := New(srv.URL)
	if _, err := c.ListSiteLogs(context.Background(), "s1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotQuery != "site_id=s1" {
		t.Fatalf("expected site_id filter, got %q", gotQuery)
	}

	if _, err := c.ListSiteLogs(context.Background(), ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotQuery != "" {
		t.Fatalf("expected no filter for empty site, got %q", gotQuery)
	}
}
