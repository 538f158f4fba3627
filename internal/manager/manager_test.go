package manager

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shilohridge/backoffice/internal/config"
	"github.com/shilohridge/backoffice/internal/demo"
	"github.com/shilohridge/backoffice/internal/domain/models"
	"github.com/shilohridge/backoffice/internal/repository/fallback"
	"github.com/shilohridge/backoffice/internal/session"
	"github.com/shilohridge/backoffice/pkg/clients/farmapi"
)

func testClient(baseURL string) *farmapi.Client {
	return farmapi.NewClient(config.FarmAPIConfig{BaseURL: baseURL, Timeout: 2 * time.Second})
}

func demoSession() *session.Session {
	return &session.Session{Token: session.DemoToken, Username: "demo", Mode: session.ModeDemo}
}

func liveSession() *session.Session {
	return &session.Session{Token: "live-token", Username: "admin", Mode: session.ModeLive}
}

func demoInventory(t *testing.T, baseURL string) (*Collection[models.InventoryItem], fallback.Store) {
	t.Helper()
	store := fallback.NewMemoryStore()
	col := NewCollection(inventoryDescriptor(), testClient(baseURL), store, demoSession(), nil)
	return col, store
}

func TestDemoListSeedsOnFirstTouch(t *testing.T) {
	col, store := demoInventory(t, "http://127.0.0.1:1") // nothing listens here

	items, err := col.List(context.Background(), Filter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if want := len(demo.Inventory()); len(items) != want {
		t.Fatalf("got %d items, want %d seeds", len(items), want)
	}

	if _, ok, _ := store.ReadCache(fallback.KeyInventory); !ok {
		t.Fatal("expected seed collection persisted to fallback store")
	}
}

func TestDemoWritesNeverHitRemote(t *testing.T) {
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	col, _ := demoInventory(t, srv.URL)
	ctx := context.Background()

	if _, err := col.List(ctx, Filter{}); err != nil {
		t.Fatalf("list: %v", err)
	}

	created, err := col.Create(ctx, models.InventoryItem{
		AnimalID:   "TEST-001",
		AnimalType: models.AnimalSheep,
		Breed:      "Katahdin",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	created.Breed = "Dorper"
	if _, err := col.Update(ctx, created.ID, created); err != nil {
		t.Fatalf("update: %v", err)
	}
	if err := col.Patch(ctx, created.ID, "/status", "sold", func(item *models.InventoryItem) {
		item.Status = models.StatusSold
	}); err != nil {
		t.Fatalf("patch: %v", err)
	}
	if _, err := col.Mutate(ctx, created.ID, func(item *models.InventoryItem) {
		item.Notes = "mutated"
	}); err != nil {
		t.Fatalf("mutate: %v", err)
	}
	if err := col.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if n := calls.Load(); n != 0 {
		t.Fatalf("demo session made %d backend calls, want 0", n)
	}
}

func TestDemoCreateDeleteRoundtrip(t *testing.T) {
	col, _ := demoInventory(t, "http://127.0.0.1:1")
	ctx := context.Background()

	before, err := col.List(ctx, Filter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	created, err := col.Create(ctx, models.InventoryItem{
		AnimalID:   "RT-100",
		AnimalType: models.AnimalHog,
		Breed:      "Berkshire",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected generated id")
	}
	if created.Status != models.StatusAvailable {
		t.Fatalf("status = %q, want default available", created.Status)
	}

	if got, err := col.Get(ctx, created.ID); err != nil || got.AnimalID != "RT-100" {
		t.Fatalf("get after create: %v (animal_id %q)", err, got.AnimalID)
	}

	if err := col.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := col.Get(ctx, created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("get after delete: %v, want ErrNotFound", err)
	}

	after, err := col.List(ctx, Filter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(after) != len(before) {
		t.Fatalf("collection size %d after roundtrip, want %d", len(after), len(before))
	}
}

func TestDemoCreateValidation(t *testing.T) {
	col, _ := demoInventory(t, "http://127.0.0.1:1")

	_, err := col.Create(context.Background(), models.InventoryItem{AnimalType: models.AnimalSheep})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("create without animal_id: %v, want ErrValidation", err)
	}
}

func TestLiveListMirrorsAndServesCacheOnFailure(t *testing.T) {
	remote := []models.InventoryItem{
		{ID: "r1", AnimalID: "SRF-001", AnimalType: models.AnimalSheep, Breed: "Katahdin", Status: models.StatusAvailable},
		{ID: "r2", AnimalID: "SRF-002", AnimalType: models.AnimalCattle, Breed: "Angus", Status: models.StatusMarket},
	}

	var failing atomic.Bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/inventory" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if failing.Load() {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(map[string]string{"detail": "boom"})
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(remote)
	}))
	defer srv.Close()

	store := fallback.NewMemoryStore()
	col := NewCollection(inventoryDescriptor(), testClient(srv.URL), store, liveSession(), nil)
	ctx := context.Background()

	items, err := col.List(ctx, Filter{})
	if err != nil {
		t.Fatalf("live list: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	if _, ok, _ := store.ReadCache(fallback.KeyInventory); !ok {
		t.Fatal("expected successful read mirrored to cache")
	}

	failing.Store(true)
	cached, err := col.List(ctx, Filter{})
	if !errors.Is(err, ErrRemote) {
		t.Fatalf("list during outage: %v, want ErrRemote", err)
	}
	if len(cached) != 2 {
		t.Fatalf("cache fallback served %d items, want 2", len(cached))
	}
}

func TestLiveFailureWithEmptyCacheReturnsEmptyList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"detail": "down"})
	}))
	defer srv.Close()

	store := fallback.NewMemoryStore()
	col := NewCollection(inventoryDescriptor(), testClient(srv.URL), store, liveSession(), nil)

	items, err := col.List(context.Background(), Filter{})
	if !errors.Is(err, ErrRemote) {
		t.Fatalf("list: %v, want ErrRemote", err)
	}
	if len(items) != 0 {
		t.Fatalf("got %d items, want empty list (never the demo seed)", len(items))
	}
	if _, ok, _ := store.ReadCache(fallback.KeyInventory); ok {
		t.Fatal("failed live read must not seed the cache")
	}
}

func TestListFilters(t *testing.T) {
	col, _ := demoInventory(t, "http://127.0.0.1:1")
	ctx := context.Background()

	cases := []struct {
		name   string
		filter Filter
		check  func(t *testing.T, items []models.InventoryItem)
	}{
		{
			name:   "category",
			filter: Filter{Category: string(models.AnimalHog)},
			check: func(t *testing.T, items []models.InventoryItem) {
				if len(items) == 0 {
					t.Fatal("expected at least one hog")
				}
				for _, item := range items {
					if item.AnimalType != models.AnimalHog {
						t.Fatalf("filter leaked %s", item.AnimalType)
					}
				}
			},
		},
		{
			name:   "status",
			filter: Filter{Status: string(models.StatusMarket)},
			check: func(t *testing.T, items []models.InventoryItem) {
				for _, item := range items {
					if item.Status != models.StatusMarket {
						t.Fatalf("filter leaked status %s", item.Status)
					}
				}
			},
		},
		{
			name:   "query is case insensitive",
			filter: Filter{Query: "katahdin"},
			check: func(t *testing.T, items []models.InventoryItem) {
				if len(items) == 0 {
					t.Fatal("expected substring match on breed")
				}
			},
		},
		{
			name:   "query with no match",
			filter: Filter{Query: "zebra"},
			check: func(t *testing.T, items []models.InventoryItem) {
				if len(items) != 0 {
					t.Fatalf("got %d items, want none", len(items))
				}
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			items, err := col.List(ctx, tc.filter)
			if err != nil {
				t.Fatalf("list: %v", err)
			}
			tc.check(t, items)
		})
	}
}

func TestActiveFilters(t *testing.T) {
	cases := []struct {
		name   string
		filter Filter
		want   map[string]string
	}{
		{name: "empty", filter: Filter{}, want: map[string]string{}},
		{name: "category only", filter: Filter{Category: "sheep"}, want: map[string]string{"animal_type": "sheep"}},
		{
			name:   "category and status",
			filter: Filter{Category: "hog", Status: "market"},
			want:   map[string]string{"animal_type": "hog", "status": "market"},
		},
		{name: "query is client side only", filter: Filter{Query: "katahdin"}, want: map[string]string{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.filter.ActiveFilters()
			if len(got) != len(tc.want) {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
			for k, v := range tc.want {
				if got[k] != v {
					t.Fatalf("param %s = %q, want %q", k, got[k], v)
				}
			}
		})
	}
}

func TestSortByNewest(t *testing.T) {
	store := fallback.NewMemoryStore()
	desc := inventoryDescriptor()
	desc.Seed = func() []models.InventoryItem {
		base := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
		return []models.InventoryItem{
			{ID: "old", AnimalID: "A-1", AnimalType: models.AnimalSheep, Breed: "x", CreatedAt: base},
			{ID: "new", AnimalID: "A-2", AnimalType: models.AnimalSheep, Breed: "x", CreatedAt: base.AddDate(0, 1, 0)},
		}
	}
	col := NewCollection(desc, testClient("http://127.0.0.1:1"), store, demoSession(), nil)

	items, err := col.List(context.Background(), Filter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 2 || items[0].ID != "new" {
		t.Fatalf("expected newest first, got %+v", items)
	}
}

func TestNewRegistryAcceptsNilLogger(t *testing.T) {
	registry := NewRegistry(testClient("http://127.0.0.1:1"), fallback.NewMemoryStore(), demoSession(), nil)

	items, err := registry.Inventory.List(context.Background(), Filter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) == 0 {
		t.Fatal("expected seeded inventory")
	}
}

func TestDemoUpdateKeepsCreationTime(t *testing.T) {
	col, _ := demoInventory(t, "http://127.0.0.1:1")
	ctx := context.Background()

	original, err := col.Get(ctx, "demo-inv-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}

	// Edit forms resubmit the record without created_at.
	draft := original
	draft.CreatedAt = time.Time{}
	draft.Breed = "Dorper"

	updated, err := col.Update(ctx, "demo-inv-1", draft)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !updated.CreatedAt.Equal(original.CreatedAt) {
		t.Fatalf("created_at rewritten to %s, want %s", updated.CreatedAt, original.CreatedAt)
	}
	if !updated.UpdatedAt.After(original.UpdatedAt) {
		t.Fatalf("updated_at not advanced: %s", updated.UpdatedAt)
	}
	if updated.Breed != "Dorper" {
		t.Fatalf("breed = %q, want the edited value", updated.Breed)
	}
}
