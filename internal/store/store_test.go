package store_test

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/LayoffWatch/LW-Pipeline/internal/store"
	"github.com/LayoffWatch/LW-Pipeline/internal/warn"
)

// makeNotice builds a notice with a computed identity for merge tests.
func makeNotice(t *testing.T, company, noticeDate, city string) warn.Notice {
	t.Helper()
	n := warn.Notice{
		Company:    company,
		CleanName:  company,
		NoticeDate: noticeDate,
		City:       city,
		State:      "CA",
		SourceURL:  "https://example.com/report.xlsx",
	}
	n.HashID = n.Identity()
	return n
}

// TestSaveLoad_RoundTrip verifies a store survives a save/load cycle intact.
func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ca", "2025.csv")
	in := []warn.Notice{
		makeNotice(t, "Foo Inc", "2025-03-01", "Fresno"),
		makeNotice(t, "Bar LLC", "2025-02-15", "Sacramento"),
	}
	in[0].EmployeeCount = 150

	if err := store.Save(path, in); err != nil {
		t.Fatalf("Save: %v", err)
	}
	out := store.Load(path)
	if !reflect.DeepEqual(in, out) {
		t.Errorf("round trip mismatch:\n in: %+v\nout: %+v", in, out)
	}
}

// TestSave_HeaderOnlyWhenEmpty verifies an empty store still writes the
// canonical header row.
func TestSave_HeaderOnlyWhenEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	if err := store.Save(path, nil); err != nil {
		t.Fatalf("Save: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	want := "hash_id,company,clean_name,notice_date,effective_date,employee_count,city,state,source_url\n"
	if string(raw) != want {
		t.Errorf("empty store file = %q, want header only", string(raw))
	}
}

// TestLoad_MissingOrCorrupt verifies the recovery contract: absent and
// unreadable stores read as empty, never as an error.
func TestLoad_MissingOrCorrupt(t *testing.T) {
	if got := store.Load(filepath.Join(t.TempDir(), "nope.csv")); len(got) != 0 {
		t.Errorf("missing file: got %d rows, want 0", len(got))
	}

	corrupt := filepath.Join(t.TempDir(), "bad.csv")
	if err := os.WriteFile(corrupt, []byte("\"unterminated\nquote,,,"), 0o644); err != nil {
		t.Fatal(err)
	}
	if got := store.Load(corrupt); len(got) != 0 {
		t.Errorf("corrupt file: got %d rows, want 0", len(got))
	}
}

// TestUpsertBatch_FirstSeenWins verifies stored records never get their
// fields overwritten by later runs.
func TestUpsertBatch_FirstSeenWins(t *testing.T) {
	original := makeNotice(t, "Foo Inc", "2025-03-01", "Fresno")
	original.EmployeeCount = 100

	update := original
	update.EmployeeCount = 999 // same identity, drifted optional field

	merged, inserted := store.UpsertBatch([]warn.Notice{original}, []warn.Notice{update})
	if inserted != 0 {
		t.Errorf("inserted = %d, want 0", inserted)
	}
	if len(merged) != 1 || merged[0].EmployeeCount != 100 {
		t.Errorf("first-seen record was overwritten: %+v", merged)
	}
}

// TestUpsertBatch_Idempotent verifies upsert(upsert(S,B),B) == upsert(S,B).
func TestUpsertBatch_Idempotent(t *testing.T) {
	existing := []warn.Notice{makeNotice(t, "Foo Inc", "2025-03-01", "Fresno")}
	batch := []warn.Notice{
		makeNotice(t, "Bar LLC", "2025-02-15", "Sacramento"),
		makeNotice(t, "Baz Co", "2025-01-10", "Oakland"),
	}

	once, n1 := store.UpsertBatch(existing, batch)
	twice, n2 := store.UpsertBatch(once, batch)

	if n1 != 2 {
		t.Errorf("first apply inserted %d, want 2", n1)
	}
	if n2 != 0 {
		t.Errorf("second apply inserted %d, want 0", n2)
	}
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("upsert not idempotent:\nonce:  %+v\ntwice: %+v", once, twice)
	}
}

// TestUpsertBatch_DedupesWithinBatch verifies an internally duplicated batch
// inserts each identity once.
func TestUpsertBatch_DedupesWithinBatch(t *testing.T) {
	n := makeNotice(t, "Foo Inc", "2025-03-01", "Fresno")
	merged, inserted := store.UpsertBatch(nil, []warn.Notice{n, n, n})
	if inserted != 1 || len(merged) != 1 {
		t.Errorf("inserted = %d, len = %d, want 1 and 1", inserted, len(merged))
	}
}

// TestLoadAliases verifies the alias table reads as empty on absence or
// corruption and as the parsed mapping otherwise.
func TestLoadAliases(t *testing.T) {
	dir := t.TempDir()

	if got := store.LoadAliases(filepath.Join(dir, "nope.json")); len(got) != 0 {
		t.Errorf("missing alias file: got %v, want empty", got)
	}

	bad := filepath.Join(dir, "bad.json")
	os.WriteFile(bad, []byte("{not json"), 0o644)
	if got := store.LoadAliases(bad); len(got) != 0 {
		t.Errorf("corrupt alias file: got %v, want empty", got)
	}

	good := filepath.Join(dir, "mappings.json")
	os.WriteFile(good, []byte(`{"acme corp inc":"Acme Corporation"}`), 0o644)
	got := store.LoadAliases(good)
	if got["acme corp inc"] != "Acme Corporation" {
		t.Errorf("alias table = %v", got)
	}
}

// TestEnsureAliases verifies creation of an empty table without clobbering a
// curated one.
func TestEnsureAliases(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site", "mappings.json")
	if err := store.EnsureAliases(path); err != nil {
		t.Fatalf("EnsureAliases: %v", err)
	}
	raw, _ := os.ReadFile(path)
	if string(raw) != "{}" {
		t.Errorf("created table = %q, want {}", string(raw))
	}

	os.WriteFile(path, []byte(`{"k":"v"}`), 0o644)
	if err := store.EnsureAliases(path); err != nil {
		t.Fatalf("EnsureAliases on existing: %v", err)
	}
	raw, _ = os.ReadFile(path)
	if string(raw) != `{"k":"v"}` {
		t.Error("EnsureAliases clobbered a curated table")
	}
}

// TestSnapshot_RoundTripAndFallback verifies snapshot persistence and the
// empty-set fallback for missing history.
func TestSnapshot_RoundTripAndFallback(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "history_snapshot.json")

	if got := store.LoadSnapshot(path); len(got) != 0 {
		t.Errorf("missing snapshot: got %v, want empty", got)
	}

	if err := store.SaveSnapshot(path, []string{"a", "b"}); err != nil {
		t.Fatalf("SaveSnapshot: %v", err)
	}
	got := store.LoadSnapshot(path)
	if !got["a"] || !got["b"] || len(got) != 2 {
		t.Errorf("snapshot = %v, want {a,b}", got)
	}

	// supersede, not merge
	if err := store.SaveSnapshot(path, []string{"c"}); err != nil {
		t.Fatalf("SaveSnapshot: %v", err)
	}
	got = store.LoadSnapshot(path)
	if got["a"] || !got["c"] || len(got) != 1 {
		t.Errorf("superseded snapshot = %v, want {c}", got)
	}
}
