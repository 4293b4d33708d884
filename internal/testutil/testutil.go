// Package testutil provides shared test helpers for setting up vaults and databases.
package testutil

import (
	"io"
	"log/slog"
	"os"
	"testing"

	"github.com/starford/ansuz/internal/index"
	"github.com/starford/ansuz/internal/storage"
	"github.com/starford/ansuz/internal/vault"
)

// TestDB creates a temporary SQLite database that is automatically cleaned up.
func TestDB(t *testing.T) *index.DB {
	t.Helper()
	dbFile, err := os.CreateTemp("", "ansuz-test-*.db")
	if err != nil {
		t.Fatal(err)
	}
	dbFile.Close()
	t.Cleanup(func() { os.Remove(dbFile.Name()) })

	db, err := index.Open(dbFile.Name())
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// TestVault creates a temporary vault directory with a storage.Provider.
func TestVault(t *testing.T) (string, storage.Provider) {
	t.Helper()
	vaultDir := t.TempDir()
	store, err := storage.NewFS(vaultDir)
	if err != nil {
		t.Fatal(err)
	}
	return vaultDir, store
}

// TestLibrary wires a temporary vault and index into a Library with a
// discarding logger.
func TestLibrary(t *testing.T) (*vault.Library, storage.Provider, *index.DB) {
	t.Helper()
	_, store := TestVault(t)
	db := TestDB(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return vault.New(store, db, logger), store, db
}
