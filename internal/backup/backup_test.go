package backup

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeTarget(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "claude.json")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCreate(t *testing.T) {
	path := writeTarget(t, `{"projects": {}}`)

	m := NewManager()
	rec, err := m.Create(path)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if !rec.IntegrityOK {
		t.Error("IntegrityOK should be true after verification")
	}
	if rec.SizeBytes != int64(len(`{"projects": {}}`)) {
		t.Errorf("SizeBytes = %d", rec.SizeBytes)
	}
	if !strings.Contains(filepath.Base(rec.BackupPath), NameInfix) {
		t.Errorf("backup name %q missing infix", rec.BackupPath)
	}

	// Backup is a byte-identical sibling.
	got, err := os.ReadFile(rec.BackupPath)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != `{"projects": {}}` {
		t.Errorf("backup content = %q", got)
	}
	if filepath.Dir(rec.BackupPath) != filepath.Dir(path) {
		t.Error("backup should be a sibling of the original")
	}

	info, err := os.Stat(rec.BackupPath)
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != BackupPerm {
		t.Errorf("backup permissions = %o, want %o", perm, BackupPerm)
	}
}

func TestCreate_NameFormat(t *testing.T) {
	path := writeTarget(t, `{}`)

	fixed := time.Date(2026, 8, 30, 14, 30, 52, 0, time.UTC)
	m := NewManager(WithClock(func() time.Time { return fixed }))

	rec, err := m.Create(path)
	if err != nil {
		t.Fatal(err)
	}

	want := path + ".backup.20260830_143052"
	if rec.BackupPath != want {
		t.Errorf("BackupPath = %q, want %q", rec.BackupPath, want)
	}
}

func TestCreate_CollisionFails(t *testing.T) {
	path := writeTarget(t, `{}`)

	fixed := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	m := NewManager(WithClock(func() time.Time { return fixed }))

	if _, err := m.Create(path); err != nil {
		t.Fatal(err)
	}

	_, err := m.Create(path)
	if !errors.Is(err, ErrExists) {
		t.Errorf("expected ErrExists on timestamp collision, got %v", err)
	}

	// The original backup must be untouched.
	got, err := os.ReadFile(path + ".backup.20260830_100000")
	if err != nil || string(got) != `{}` {
		t.Errorf("existing backup was disturbed: %q, %v", got, err)
	}
}

func TestCreate_MissingSource(t *testing.T) {
	m := NewManager()
	_, err := m.Create(filepath.Join(t.TempDir(), "missing.json"))
	if err == nil {
		t.Error("expected error for missing source")
	}
}

func TestList(t *testing.T) {
	path := writeTarget(t, `{}`)

	times := []time.Time{
		time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC),
		time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC),
		time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC),
	}
	for _, ts := range times {
		m := NewManager(WithClock(func() time.Time { return ts }))
		if _, err := m.Create(path); err != nil {
			t.Fatal(err)
		}
	}

	// A stray file with a similar name must be ignored.
	stray := path + ".backup.notatimestamp"
	if err := os.WriteFile(stray, []byte("x"), 0600); err != nil {
		t.Fatal(err)
	}

	m := NewManager()
	records, err := m.List(path)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}

	if len(records) != 3 {
		t.Fatalf("List() returned %d records, want 3", len(records))
	}
	// Newest first.
	for i := 1; i < len(records); i++ {
		if records[i].CreatedAt.After(records[i-1].CreatedAt) {
			t.Error("records not sorted newest first")
		}
	}
	if records[0].CreatedAt.Day() != 30 {
		t.Errorf("newest record = %v", records[0].CreatedAt)
	}
	// List verifies nothing, so it must not claim integrity.
	for _, rec := range records {
		if rec.IntegrityOK {
			t.Errorf("IntegrityOK = true for unverified record %s", rec.BackupPath)
		}
	}
}

func TestList_NoBackups(t *testing.T) {
	path := writeTarget(t, `{}`)

	m := NewManager()
	_, err := m.List(path)
	if !errors.Is(err, ErrNoBackups) {
		t.Errorf("expected ErrNoBackups, got %v", err)
	}
}

func TestPrune(t *testing.T) {
	path := writeTarget(t, `{}`)

	for day := 20; day <= 24; day++ {
		ts := time.Date(2026, 8, day, 9, 0, 0, 0, time.UTC)
		m := NewManager(WithClock(func() time.Time { return ts }))
		if _, err := m.Create(path); err != nil {
			t.Fatal(err)
		}
	}

	m := NewManager()
	removed, err := m.Prune(path, 2)
	if err != nil {
		t.Fatalf("Prune() error = %v", err)
	}
	if removed != 3 {
		t.Errorf("Prune() removed %d, want 3", removed)
	}

	records, err := m.List(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 2 {
		t.Fatalf("%d backups remain, want 2", len(records))
	}
	// The two newest survive.
	if records[0].CreatedAt.Day() != 24 || records[1].CreatedAt.Day() != 23 {
		t.Errorf("wrong backups kept: %v, %v", records[0].CreatedAt, records[1].CreatedAt)
	}
}

func TestPrune_NothingToDo(t *testing.T) {
	path := writeTarget(t, `{}`)

	m := NewManager()
	removed, err := m.Prune(path, 5)
	if err != nil {
		t.Errorf("Prune() with no backups error = %v", err)
	}
	if removed != 0 {
		t.Errorf("removed = %d, want 0", removed)
	}
}

func TestPrune_NegativeKeep(t *testing.T) {
	path := writeTarget(t, `{}`)

	m := NewManager()
	if _, err := m.Prune(path, -1); err == nil {
		t.Error("expected error for negative keep")
	}
}

func TestRestore(t *testing.T) {
	original := `{"projects": {"p1": {"history": ["a"]}}}`
	path := writeTarget(t, original)

	m := NewManager()
	rec, err := m.Create(path)
	if err != nil {
		t.Fatal(err)
	}

	// Simulate a clean that emptied the document.
	if err := os.WriteFile(path, []byte(`{"projects": {}}`), 0600); err != nil {
		t.Fatal(err)
	}

	if err := m.Restore(*rec); err != nil {
		t.Fatalf("Restore() error = %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != original {
		t.Errorf("restored content = %q, want %q", got, original)
	}
}

func TestRestore_CorruptBackupRejected(t *testing.T) {
	path := writeTarget(t, `{"a": 1}`)

	m := NewManager()
	rec, err := m.Create(path)
	if err != nil {
		t.Fatal(err)
	}

	// Corrupt the backup after the fact.
	if err := os.WriteFile(rec.BackupPath, []byte("not json"), 0600); err != nil {
		t.Fatal(err)
	}

	err = m.Restore(*rec)
	if !errors.Is(err, ErrIntegrity) {
		t.Errorf("expected ErrIntegrity, got %v", err)
	}

	// Original untouched.
	got, _ := os.ReadFile(path)
	if string(got) != `{"a": 1}` {
		t.Errorf("original was modified: %q", got)
	}
}
