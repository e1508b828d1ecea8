package portfolio

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/tkremer/portfolio/contact"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data", "test_inbox.db")

	s, err := NewStore(path)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testMessage(name string, at time.Time) contact.Message {
	m := contact.NewMessage(contact.Submission{Name: name, Email: name + "@example.com", Message: "hello from " + name}, "203.0.113.7")
	m.ReceivedAt = at
	return m
}

func TestNewStore(t *testing.T) {
	s := setupTestStore(t)
	if s.db == nil {
		t.Fatal("db should not be nil")
	}
}

func TestNewStoreReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inbox.db")
	s, err := NewStore(path)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	ctx := context.Background()
	if err := s.Record(ctx, testMessage("ada", time.Now())); err != nil {
		t.Fatalf("Record: %v", err)
	}
	s.Close()

	s, err = NewStore(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()
	msgs, err := s.ListMessages(ctx)
	if err != nil {
		t.Fatalf("ListMessages: %v", err)
	}
	if len(msgs) != 1 {
		t.Errorf("got %d messages after reopen, want 1", len(msgs))
	}
}

func TestRecordAndGetMessage(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	at := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)
	m := testMessage("ada", at)
	if err := s.Record(ctx, m); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	got, err := s.GetMessage(ctx, m.ID)
	if err != nil {
		t.Fatalf("GetMessage failed: %v", err)
	}
	if got.Name != "ada" {
		t.Errorf("Name = %q, want %q", got.Name, "ada")
	}
	if got.Email != "ada@example.com" {
		t.Errorf("Email = %q, want %q", got.Email, "ada@example.com")
	}
	if got.Body != "hello from ada" {
		t.Errorf("Body = %q", got.Body)
	}
	if got.RemoteIP != "203.0.113.7" {
		t.Errorf("RemoteIP = %q", got.RemoteIP)
	}
	if !got.ReceivedAt.Equal(at) {
		t.Errorf("ReceivedAt = %v, want %v", got.ReceivedAt, at)
	}
	if got.Read {
		t.Error("new message should be unread")
	}
}

func TestGetMessageNotFound(t *testing.T) {
	s := setupTestStore(t)
	_, err := s.GetMessage(context.Background(), "nonexistent")
	if err != sql.ErrNoRows {
		t.Errorf("expected sql.ErrNoRows, got %v", err)
	}
}

func TestRecordDuplicateID(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()
	m := testMessage("ada", time.Now())
	if err := s.Record(ctx, m); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if err := s.Record(ctx, m); err == nil {
		t.Error("expected error recording the same id twice")
	}
}

func TestListMessagesOrder(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, name := range []string{"first", "second", "third"} {
		if err := s.Record(ctx, testMessage(name, base.Add(time.Duration(i)*time.Hour))); err != nil {
			t.Fatalf("Record(%s): %v", name, err)
		}
	}

	msgs, err := s.ListMessages(ctx)
	if err != nil {
		t.Fatalf("ListMessages failed: %v", err)
	}
	if len(msgs) != 3 {
		t.Fatalf("got %d messages, want 3", len(msgs))
	}
	want := []string{"third", "second", "first"}
	for i, m := range msgs {
		if m.Name != want[i] {
			t.Errorf("msgs[%d].Name = %q, want %q", i, m.Name, want[i])
		}
	}
}

func TestListMessagesEmpty(t *testing.T) {
	s := setupTestStore(t)
	msgs, err := s.ListMessages(context.Background())
	if err != nil {
		t.Fatalf("ListMessages failed: %v", err)
	}
	if len(msgs) != 0 {
		t.Errorf("got %d messages, want 0", len(msgs))
	}
}

func TestMarkReadAndCountUnread(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	a := testMessage("a", time.Now())
	b := testMessage("b", time.Now())
	for _, m := range []contact.Message{a, b} {
		if err := s.Record(ctx, m); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}
	n, err := s.CountUnread(ctx)
	if err != nil || n != 2 {
		t.Fatalf("CountUnread = %d, %v; want 2", n, err)
	}

	if err := s.MarkRead(ctx, a.ID); err != nil {
		t.Fatalf("MarkRead: %v", err)
	}
	n, _ = s.CountUnread(ctx)
	if n != 1 {
		t.Errorf("CountUnread = %d, want 1", n)
	}
	got, _ := s.GetMessage(ctx, a.ID)
	if !got.Read {
		t.Error("message should be read")
	}

	if err := s.MarkRead(ctx, "missing"); err != sql.ErrNoRows {
		t.Errorf("MarkRead(missing) = %v, want sql.ErrNoRows", err)
	}
}

func TestDeleteMessage(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	m := testMessage("gone", time.Now())
	if err := s.Record(ctx, m); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if err := s.DeleteMessage(ctx, m.ID); err != nil {
		t.Fatalf("DeleteMessage failed: %v", err)
	}
	if _, err := s.GetMessage(ctx, m.ID); err != sql.ErrNoRows {
		t.Errorf("expected sql.ErrNoRows after delete, got %v", err)
	}
	if err := s.DeleteMessage(ctx, "nonexistent"); err != nil {
		t.Errorf("deleting a missing message should not fail: %v", err)
	}
}
