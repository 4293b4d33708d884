package index

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/starford/ansuz/internal/storage"
)

// watcherTestEnv sets up a vault dir, storage, and DB for watcher tests.
func watcherTestEnv(t *testing.T) (string, storage.Provider, *DB) {
	t.Helper()
	vaultDir := t.TempDir()
	store, err := storage.NewFS(vaultDir)
	if err != nil {
		t.Fatal(err)
	}
	return vaultDir, store, testDB(t)
}

// eventually polls fn every tick until it returns true or timeout elapses.
func eventually(t *testing.T, timeout, tick time.Duration, fn func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if fn() {
			return
		}
		time.Sleep(tick)
	}
	t.Error(msg)
}

type eventRecorder struct {
	mu     sync.Mutex
	events []string
}

func (r *eventRecorder) record(kind, name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, kind+":"+name)
}

func (r *eventRecorder) has(want string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.events {
		if e == want {
			return true
		}
	}
	return false
}

func TestWatcher_NewFileIndexed(t *testing.T) {
	vaultDir, store, db := watcherTestEnv(t)
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rec := &eventRecorder{}
	go Watch(ctx, db, store, vaultDir, logger, rec.record)
	time.Sleep(100 * time.Millisecond)

	if err := os.WriteFile(filepath.Join(vaultDir, "Trip.md"), []byte("see [[Flights]]"), 0o644); err != nil {
		t.Fatal(err)
	}

	eventually(t, 3*time.Second, 50*time.Millisecond, func() bool {
		paths, _ := db.PathsByName("Trip")
		return len(paths) == 1
	}, "new file was not indexed")

	eventually(t, 3*time.Second, 50*time.Millisecond, func() bool {
		return rec.has("created:Trip")
	}, "created event with display name missing")
}

func TestWatcher_RemoveDeletesIndexEntry(t *testing.T) {
	vaultDir, store, db := watcherTestEnv(t)
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	path := filepath.Join(vaultDir, "Trip.md")
	if err := os.WriteFile(path, []byte("body"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := Sync(db, store, logger); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rec := &eventRecorder{}
	go Watch(ctx, db, store, vaultDir, logger, rec.record)
	time.Sleep(100 * time.Millisecond)

	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}

	eventually(t, 3*time.Second, 50*time.Millisecond, func() bool {
		paths, _ := db.PathsByName("Trip")
		return len(paths) == 0
	}, "removed file still indexed")

	eventually(t, 3*time.Second, 50*time.Millisecond, func() bool {
		return rec.has("deleted:Trip")
	}, "deleted event with display name missing")
}

func TestWatcher_NewDirectoryScanned(t *testing.T) {
	vaultDir, store, db := watcherTestEnv(t)
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go Watch(ctx, db, store, vaultDir, logger, nil)
	time.Sleep(100 * time.Millisecond)

	sub := filepath.Join(vaultDir, "topics")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	// Give the watcher a moment to pick up the new directory.
	time.Sleep(200 * time.Millisecond)
	if err := os.WriteFile(filepath.Join(sub, "Flights.md"), []byte("book early"), 0o644); err != nil {
		t.Fatal(err)
	}

	eventually(t, 3*time.Second, 50*time.Millisecond, func() bool {
		paths, _ := db.PathsByName("Flights")
		return len(paths) == 1 && paths[0] == filepath.Join("topics", "Flights.md")
	}, "file in new directory was not indexed")
}
