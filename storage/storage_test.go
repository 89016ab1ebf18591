// storage/storage_test.go
package storage

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"
)

// storeUnderTest exercises every adapter against the same contract.
func storesUnderTest(t *testing.T) map[string]Store {
	t.Helper()
	fileStore, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	sqliteStore, err := OpenSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("OpenSQLiteStore: %v", err)
	}
	t.Cleanup(func() { sqliteStore.Close() })

	return map[string]Store{
		"memory": NewMemStore(),
		"file":   fileStore,
		"sqlite": sqliteStore,
	}
}

func TestStoreContract(t *testing.T) {
	for name, store := range storesUnderTest(t) {
		t.Run(name, func(t *testing.T) {
			if _, err := store.Load("missing"); !errors.Is(err, ErrNotFound) {
				t.Errorf("Load(missing) err = %v, want ErrNotFound", err)
			}

			if err := store.Save("k", []byte(`{"v":1}`)); err != nil {
				t.Fatalf("Save: %v", err)
			}
			got, err := store.Load("k")
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if !bytes.Equal(got, []byte(`{"v":1}`)) {
				t.Errorf("Load = %s, want original payload", got)
			}

			// Save replaces.
			if err := store.Save("k", []byte(`{"v":2}`)); err != nil {
				t.Fatalf("Save replace: %v", err)
			}
			got, _ = store.Load("k")
			if !bytes.Equal(got, []byte(`{"v":2}`)) {
				t.Errorf("Load after replace = %s, want new payload", got)
			}

			if err := store.Clear("k"); err != nil {
				t.Fatalf("Clear: %v", err)
			}
			if _, err := store.Load("k"); !errors.Is(err, ErrNotFound) {
				t.Errorf("Load after Clear err = %v, want ErrNotFound", err)
			}

			// Clearing an absent key is not an error.
			if err := store.Clear("never-existed"); err != nil {
				t.Errorf("Clear(absent) = %v, want nil", err)
			}
		})
	}
}

func TestFileStoreSanitizesKeys(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	if err := store.Save("../escape/attempt", []byte("x")); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := store.Load("../escape/attempt")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if string(got) != "x" {
		t.Errorf("Load = %q, want x", got)
	}

	matches, _ := filepath.Glob(filepath.Join(dir, "*.json"))
	if len(matches) != 1 {
		t.Errorf("expected exactly one file inside the data dir, got %v", matches)
	}
}
