package export

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shilohridge/backoffice/internal/config"
	"github.com/shilohridge/backoffice/internal/manager"
	"github.com/shilohridge/backoffice/pkg/clients/farmapi"
)

func testService(baseURL string) *Service {
	client := farmapi.NewClient(config.FarmAPIConfig{BaseURL: baseURL, Timeout: 2 * time.Second})
	return NewService(client, nil)
}

func TestInventoryExportCarriesActiveFilters(t *testing.T) {
	var gotPath string
	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="inventory_export.csv"`)
		_, _ = w.Write([]byte("animal_id,breed\nSRF-001,Katahdin\n"))
	}))
	defer srv.Close()

	filter := manager.Filter{Query: "katahdin", Category: "sheep", Status: "available"}
	blob, err := testService(srv.URL).Inventory(context.Background(), FormatCSV, filter)
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	if gotPath != "/api/inventory/export/csv" {
		t.Fatalf("path = %s, want /api/inventory/export/csv", gotPath)
	}
	if got := gotQuery["animal_type"]; len(got) != 1 || got[0] != "sheep" {
		t.Fatalf("animal_type param = %v, want [sheep]", got)
	}
	if got := gotQuery["status"]; len(got) != 1 || got[0] != "available" {
		t.Fatalf("status param = %v, want [available]", got)
	}
	// Substring search is applied client side and never forwarded.
	if _, ok := gotQuery["q"]; ok {
		t.Fatal("q param must not be forwarded to exports")
	}

	if blob.Filename != "inventory_export.csv" {
		t.Fatalf("filename = %q, want inventory_export.csv", blob.Filename)
	}
	if blob.ContentType != "text/csv" {
		t.Fatalf("content type = %q, want text/csv", blob.ContentType)
	}
	if len(blob.Data) == 0 {
		t.Fatal("expected file bytes")
	}
}

func TestExportFilenameFallsBackToPath(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write([]byte("%PDF-1.4"))
	}))
	defer srv.Close()

	blob, err := testService(srv.URL).Sales(context.Background(), FormatPDF, manager.Filter{})
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if blob.Filename != "pdf" {
		t.Fatalf("filename = %q, want path base fallback", blob.Filename)
	}
}

func TestExportSurfacesBackendError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	if _, err := testService(srv.URL).Expenses(context.Background(), FormatCSV, manager.Filter{}); err == nil {
		t.Fatal("expected error from failed export")
	}
}
