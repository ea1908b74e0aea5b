package history

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"dreamholidays/api/internal/store"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	svc, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return svc
}

func docWithCustomers(n int) store.Document {
	return store.Document{
		"stats": json.RawMessage(fmt.Sprintf(`{"happyCustomers":%d}`, n)),
	}
}

func TestNewIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	if _, err := New(dir); err != nil {
		t.Fatalf("first New: %v", err)
	}
	if _, err := New(dir); err != nil {
		t.Fatalf("second New on existing repo: %v", err)
	}
}

func TestHistoryEmptyRepo(t *testing.T) {
	svc := newTestService(t)

	got, err := svc.History(context.Background(), 10)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no commits, got %d", len(got))
	}
}

func TestRecordAndHistory(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if err := svc.Record(ctx, docWithCustomers(1), "first save"); err != nil {
		t.Fatalf("first Record: %v", err)
	}
	if err := svc.Record(ctx, docWithCustomers(2), "second save"); err != nil {
		t.Fatalf("second Record: %v", err)
	}

	got, err := svc.History(ctx, 0)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 commits, got %d", len(got))
	}
	if got[0].Message != "second save" {
		t.Fatalf("expected newest first, got %q", got[0].Message)
	}
	if got[0].Author != authorName {
		t.Fatalf("unexpected author %q", got[0].Author)
	}
}

func TestHistoryLimit(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		if err := svc.Record(ctx, docWithCustomers(i), "save"); err != nil {
			t.Fatalf("Record %d: %v", i, err)
		}
	}

	got, err := svc.History(ctx, 3)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 commits with limit, got %d", len(got))
	}
}

func TestRecordUnchangedDocumentIsSkipped(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if err := svc.Record(ctx, docWithCustomers(1), "save"); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if err := svc.Record(ctx, docWithCustomers(1), "same again"); err != nil {
		t.Fatalf("identical Record should be a no-op: %v", err)
	}

	got, err := svc.History(ctx, 0)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 commit, got %d", len(got))
	}
}

func TestGetByHash(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if err := svc.Record(ctx, docWithCustomers(1), "first save"); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if err := svc.Record(ctx, docWithCustomers(2), "second save"); err != nil {
		t.Fatalf("Record: %v", err)
	}

	commits, err := svc.History(ctx, 0)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	oldest := commits[len(commits)-1]

	doc, info, err := svc.GetByHash(ctx, oldest.Hash)
	if err != nil {
		t.Fatalf("GetByHash: %v", err)
	}
	if info.Message != "first save" {
		t.Fatalf("unexpected commit %q", info.Message)
	}
	var stats struct {
		HappyCustomers int `json:"happyCustomers"`
	}
	if err := json.Unmarshal(doc["stats"], &stats); err != nil {
		t.Fatalf("decode stats: %v", err)
	}
	if stats.HappyCustomers != 1 {
		t.Fatalf("expected document at first commit, got %d", stats.HappyCustomers)
	}
}

func TestGetByHashUnknown(t *testing.T) {
	svc := newTestService(t)
	if err := svc.Record(context.Background(), docWithCustomers(1), "save"); err != nil {
		t.Fatalf("Record: %v", err)
	}

	if _, _, err := svc.GetByHash(context.Background(), "abcdef0"); err == nil {
		t.Fatal("expected error for unknown hash")
	}
}
