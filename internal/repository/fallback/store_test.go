package fallback

import (
	"bytes"
	"path/filepath"
	"testing"
)

func stores(t *testing.T) map[string]Store {
	t.Helper()

	sqlite, err := NewSQLiteStore(filepath.Join(t.TempDir(), "state.db"))
	if err != nil {
		t.Fatalf("open sqlite store: %v", err)
	}
	t.Cleanup(func() { _ = sqlite.Close() })

	return map[string]Store{
		"memory": NewMemoryStore(),
		"sqlite": sqlite,
	}
}

func TestStoreRoundtrip(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			if _, ok, err := store.ReadCache(KeyInventory); err != nil || ok {
				t.Fatalf("empty store read: ok=%v err=%v", ok, err)
			}

			payload := []byte(`[{"id":"x"}]`)
			if err := store.WriteCache(KeyInventory, payload); err != nil {
				t.Fatalf("write: %v", err)
			}

			got, ok, err := store.ReadCache(KeyInventory)
			if err != nil || !ok {
				t.Fatalf("read back: ok=%v err=%v", ok, err)
			}
			if !bytes.Equal(got, payload) {
				t.Fatalf("got %s, want %s", got, payload)
			}

			// Overwrite replaces, never appends.
			replacement := []byte(`[]`)
			if err := store.WriteCache(KeyInventory, replacement); err != nil {
				t.Fatalf("overwrite: %v", err)
			}
			got, _, _ = store.ReadCache(KeyInventory)
			if !bytes.Equal(got, replacement) {
				t.Fatalf("after overwrite got %s, want %s", got, replacement)
			}

			if err := store.Delete(KeyInventory); err != nil {
				t.Fatalf("delete: %v", err)
			}
			if _, ok, _ := store.ReadCache(KeyInventory); ok {
				t.Fatal("bucket survived delete")
			}

			// Deleting a missing bucket is not an error.
			if err := store.Delete(KeyInventory); err != nil {
				t.Fatalf("delete missing: %v", err)
			}
		})
	}
}

func TestStoreBucketsAreIndependent(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			if err := store.WriteCache(KeyInventory, []byte("a")); err != nil {
				t.Fatalf("write: %v", err)
			}
			if err := store.WriteCache(KeySales, []byte("b")); err != nil {
				t.Fatalf("write: %v", err)
			}

			if err := store.Delete(KeyInventory); err != nil {
				t.Fatalf("delete: %v", err)
			}
			got, ok, _ := store.ReadCache(KeySales)
			if !ok || string(got) != "b" {
				t.Fatalf("sibling bucket affected: ok=%v got=%s", ok, got)
			}
		})
	}
}

func TestSQLiteStorePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")

	first, err := NewSQLiteStore(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := first.WriteCache(KeyToken, []byte("persisted-token")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	second, err := NewSQLiteStore(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer func() { _ = second.Close() }()

	got, ok, err := second.ReadCache(KeyToken)
	if err != nil || !ok {
		t.Fatalf("read after reopen: ok=%v err=%v", ok, err)
	}
	if string(got) != "persisted-token" {
		t.Fatalf("got %s, want persisted-token", got)
	}
}
