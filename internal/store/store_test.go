package store

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	return NewFileStore(filepath.Join(t.TempDir(), "site-config.json"))
}

func seedDoc(t *testing.T, s *FileStore, doc Document) {
	t.Helper()
	if err := s.WriteAll(context.Background(), doc); err != nil {
		t.Fatalf("seed document: %v", err)
	}
}

func TestReadAllBeforeFirstWrite(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.ReadAll(context.Background()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestWriteAllRoundTrip(t *testing.T) {
	s := newTestStore(t)
	seedDoc(t, s, Document{
		"stats":    json.RawMessage(`{"happyCustomers":12,"visible":true}`),
		"packages": json.RawMessage(`[{"id":1,"name":"Santorini Paradise"}]`),
	})

	got, err := s.ReadAll(context.Background())
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(got))
	}
	var stats struct {
		HappyCustomers int  `json:"happyCustomers"`
		Visible        bool `json:"visible"`
	}
	if err := json.Unmarshal(got["stats"], &stats); err != nil {
		t.Fatalf("decode stats: %v", err)
	}
	if stats.HappyCustomers != 12 || !stats.Visible {
		t.Fatalf("unexpected stats round-trip: %+v", stats)
	}
}

func TestWriteAllNilDocument(t *testing.T) {
	s := newTestStore(t)

	if err := s.WriteAll(context.Background(), nil); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestWriteSectionLeavesSiblingsUntouched(t *testing.T) {
	s := newTestStore(t)
	seedDoc(t, s, Document{
		"stats":    json.RawMessage(`{"happyCustomers":12}`),
		"packages": json.RawMessage(`[{"id":1,"name":"Santorini Paradise"},{"id":2,"name":"Bali Adventure"}]`),
	})

	updated, err := s.WriteSection(context.Background(), "stats", json.RawMessage(`{"happyCustomers":99}`))
	if err != nil {
		t.Fatalf("WriteSection: %v", err)
	}
	var stats struct {
		HappyCustomers int `json:"happyCustomers"`
	}
	if err := json.Unmarshal(updated["stats"], &stats); err != nil {
		t.Fatalf("decode stats: %v", err)
	}
	if stats.HappyCustomers != 99 {
		t.Fatalf("expected updated stats, got %+v", stats)
	}

	var pkgs []struct {
		ID int `json:"id"`
	}
	if err := json.Unmarshal(updated["packages"], &pkgs); err != nil {
		t.Fatalf("decode packages: %v", err)
	}
	if len(pkgs) != 2 {
		t.Fatalf("packages section changed by stats update: %d entries", len(pkgs))
	}
}

func TestWriteSectionRequiresExistingDocument(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.WriteSection(context.Background(), "stats", json.RawMessage(`{}`)); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestWriteSectionValidatesInput(t *testing.T) {
	s := newTestStore(t)
	seedDoc(t, s, Document{"stats": json.RawMessage(`{}`)})

	if _, err := s.WriteSection(context.Background(), "", json.RawMessage(`{}`)); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("empty name: expected ErrInvalidInput, got %v", err)
	}
	if _, err := s.WriteSection(context.Background(), "stats", nil); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("empty value: expected ErrInvalidInput, got %v", err)
	}
}

func TestDeleteSection(t *testing.T) {
	s := newTestStore(t)
	seedDoc(t, s, Document{
		"stats":   json.RawMessage(`{"happyCustomers":12}`),
		"contact": json.RawMessage(`{"visible":true}`),
	})

	got, err := s.DeleteSection(context.Background(), "contact")
	if err != nil {
		t.Fatalf("DeleteSection: %v", err)
	}
	if _, ok := got["contact"]; ok {
		t.Fatal("contact still present after delete")
	}
	if _, ok := got["stats"]; !ok {
		t.Fatal("stats removed by deleting contact")
	}
}

func TestDeleteSectionUnknownLeavesDocumentUnchanged(t *testing.T) {
	s := newTestStore(t)
	seedDoc(t, s, Document{"stats": json.RawMessage(`{"happyCustomers":12}`)})

	if _, err := s.DeleteSection(context.Background(), "nope"); !errors.Is(err, ErrSectionNotFound) {
		t.Fatalf("expected ErrSectionNotFound, got %v", err)
	}

	got, err := s.ReadAll(context.Background())
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("document changed by failed delete: %d sections", len(got))
	}
}

func TestCorruptedFileIsStorageError(t *testing.T) {
	s := newTestStore(t)
	if err := os.MkdirAll(filepath.Dir(s.Path()), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(s.Path(), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}

	if _, err := s.ReadAll(context.Background()); !errors.Is(err, ErrStorage) {
		t.Fatalf("expected ErrStorage, got %v", err)
	}
}

func TestWriteIsPrettyPrinted(t *testing.T) {
	s := newTestStore(t)
	seedDoc(t, s, Document{"stats": json.RawMessage(`{"happyCustomers":12}`)})

	data, err := os.ReadFile(s.Path())
	if err != nil {
		t.Fatalf("read file: %v", err)
	}
	if data[0] != '{' || data[1] != '\n' {
		t.Fatalf("document is not indented: %q", data[:min(len(data), 20)])
	}
}

func TestWriteLeavesNoTempFiles(t *testing.T) {
	s := newTestStore(t)
	seedDoc(t, s, Document{"stats": json.RawMessage(`{}`)})
	seedDoc(t, s, Document{"stats": json.RawMessage(`{"happyCustomers":1}`)})

	entries, err := os.ReadDir(filepath.Dir(s.Path()))
	if err != nil {
		t.Fatalf("readdir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected only the config file, found %d entries", len(entries))
	}
}
