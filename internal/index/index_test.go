package index

import (
	"os"
	"testing"
	"time"
)

func testDB(t *testing.T) *DB {
	t.Helper()
	f, err := os.CreateTemp("", "ansuz-test-*.db")
	if err != nil {
		t.Fatal(err)
	}
	f.Close()
	t.Cleanup(func() { os.Remove(f.Name()) })

	db, err := Open(f.Name())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func upsert(t *testing.T, db *DB, path, name, checksum, body string, links ...string) {
	t.Helper()
	row := NoteRow{Path: path, Name: name, Checksum: checksum, UpdatedAt: time.Now()}
	if err := db.UpsertNote(row, body, links); err != nil {
		t.Fatalf("UpsertNote %s: %v", path, err)
	}
}

func TestSchemaCreation(t *testing.T) {
	db := testDB(t)
	var count int
	if err := db.conn.QueryRow(`SELECT count(*) FROM notes`).Scan(&count); err != nil {
		t.Fatalf("notes table missing: %v", err)
	}
	if err := db.conn.QueryRow(`SELECT count(*) FROM links`).Scan(&count); err != nil {
		t.Fatalf("links table missing: %v", err)
	}
}

func TestPathsByName(t *testing.T) {
	db := testDB(t)
	upsert(t, db, "Trip.md", "Trip", "1", "body")
	upsert(t, db, "archive/Trip.md", "Trip", "2", "body")
	upsert(t, db, "Other.md", "Other", "3", "body")

	paths, err := db.PathsByName("Trip")
	if err != nil {
		t.Fatalf("PathsByName: %v", err)
	}
	if len(paths) != 2 || paths[0] != "Trip.md" || paths[1] != "archive/Trip.md" {
		t.Fatalf("paths = %v", paths)
	}

	paths, err = db.PathsByName("Missing")
	if err != nil {
		t.Fatalf("PathsByName: %v", err)
	}
	if len(paths) != 0 {
		t.Fatalf("paths = %v, want empty", paths)
	}
}

func TestAllChecksums(t *testing.T) {
	db := testDB(t)
	upsert(t, db, "a.md", "a", "cs-a", "body")
	upsert(t, db, "b.md", "b", "cs-b", "body")

	cs, err := db.AllChecksums()
	if err != nil {
		t.Fatalf("AllChecksums: %v", err)
	}
	if len(cs) != 2 || cs["a.md"] != "cs-a" || cs["b.md"] != "cs-b" {
		t.Fatalf("checksums = %v", cs)
	}
}

func TestBacklinksByDisplayName(t *testing.T) {
	db := testDB(t)
	upsert(t, db, "Trip.md", "Trip", "1", "see [[Flights]]", "Flights")
	upsert(t, db, "Packing.md", "Packing", "2", "see [[Flights]]", "Flights")
	upsert(t, db, "Flights.md", "Flights", "3", "book early")

	bl, err := db.Backlinks("Flights")
	if err != nil {
		t.Fatalf("Backlinks: %v", err)
	}
	// Source display names, sorted.
	if len(bl) != 2 || bl[0] != "Packing" || bl[1] != "Trip" {
		t.Fatalf("backlinks = %v", bl)
	}
}

func TestDeleteNote(t *testing.T) {
	db := testDB(t)
	upsert(t, db, "del.md", "del", "x", "body", "Target")

	if err := db.DeleteNote("del.md"); err != nil {
		t.Fatalf("DeleteNote: %v", err)
	}
	paths, _ := db.PathsByName("del")
	if len(paths) != 0 {
		t.Errorf("deleted note still resolves: %v", paths)
	}
	bl, _ := db.Backlinks("Target")
	if len(bl) != 0 {
		t.Errorf("expected 0 backlinks after delete, got %d", len(bl))
	}
}

func TestUpsertReplacesLinks(t *testing.T) {
	db := testDB(t)
	upsert(t, db, "up.md", "up", "1", "old body", "X")
	upsert(t, db, "up.md", "up", "2", "new body", "Y")

	cs, _ := db.AllChecksums()
	if cs["up.md"] != "2" {
		t.Errorf("checksum = %q, want 2", cs["up.md"])
	}
	if bl, _ := db.Backlinks("X"); len(bl) != 0 {
		t.Errorf("stale link to X survived upsert")
	}
	if bl, _ := db.Backlinks("Y"); len(bl) != 1 {
		t.Errorf("new link to Y missing")
	}
}

func TestListNotesPagination(t *testing.T) {
	db := testDB(t)
	upsert(t, db, "c.md", "Charlie", "1", "body")
	upsert(t, db, "a.md", "Alpha", "2", "body")
	upsert(t, db, "b.md", "Bravo", "3", "body")

	rows, total, err := db.ListNotes(2, 0)
	if err != nil {
		t.Fatalf("ListNotes: %v", err)
	}
	if total != 3 {
		t.Errorf("total = %d, want 3", total)
	}
	if len(rows) != 2 || rows[0].Name != "Alpha" || rows[1].Name != "Bravo" {
		t.Fatalf("page 1 = %+v", rows)
	}

	rows, _, err = db.ListNotes(2, 2)
	if err != nil {
		t.Fatalf("ListNotes: %v", err)
	}
	if len(rows) != 1 || rows[0].Name != "Charlie" {
		t.Fatalf("page 2 = %+v", rows)
	}
}

func TestGraph(t *testing.T) {
	db := testDB(t)
	upsert(t, db, "Trip.md", "Trip", "1", "see [[Flights]]", "Flights")
	upsert(t, db, "Flights.md", "Flights", "2", "book early")

	nodes, links, err := db.Graph()
	if err != nil {
		t.Fatalf("Graph: %v", err)
	}
	if len(nodes) != 2 {
		t.Fatalf("nodes = %+v", nodes)
	}
	if len(links) != 1 || links[0].Source != "Trip" || links[0].Target != "Flights" {
		t.Fatalf("links = %+v", links)
	}
}

func TestSearch(t *testing.T) {
	db := testDB(t)
	upsert(t, db, "Trip.md", "Trip", "1", "Remember to pack the binoculars.")
	upsert(t, db, "Other.md", "Other", "2", "Nothing relevant here.")

	results, err := db.Search("binoculars", 5)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 1 || results[0].Name != "Trip" {
		t.Fatalf("results = %+v", results)
	}
	if results[0].Snippet == "" {
		t.Error("snippet is empty")
	}
}

func TestSearchMatchesName(t *testing.T) {
	db := testDB(t)
	upsert(t, db, "Binoculars.md", "Binoculars", "1", "optics notes")

	results, err := db.Search("Binoculars", 5)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("results = %+v", results)
	}
}

func TestSearchDefaultLimit(t *testing.T) {
	db := testDB(t)
	for _, n := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		upsert(t, db, n+".md", n, "1", "common keyword everywhere")
	}

	results, err := db.Search("keyword", 0)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 5 {
		t.Fatalf("results = %d, want default limit 5", len(results))
	}
}
