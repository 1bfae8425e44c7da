// ABOUTME: Tests for the SQLite mode store.
// ABOUTME: Covers round-trips, defaults, durability across reopen, and concurrency.

package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/projectnostradamus/amenbot/internal/mode"
)

func newTestStore(t *testing.T) (*SQLiteStore, string) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "modes.db")
	s, err := NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatalf("NewSQLiteStore failed: %v", err)
	}
	return s, dbPath
}

func TestNewSQLiteStore_CreatesDirectory(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "deeper", "modes.db")

	s, err := NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatalf("NewSQLiteStore failed: %v", err)
	}
	defer s.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("database file was not created in nested directory")
	}
}

func TestGet_DefaultsToNone(t *testing.T) {
	s, _ := newTestStore(t)
	defer s.Close()

	m, err := s.Get(context.Background(), 12345)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if m != mode.None {
		t.Errorf("expected mode.None for unknown user, got %q", m)
	}
}

func TestSetGet_RoundTrip(t *testing.T) {
	s, _ := newTestStore(t)
	defer s.Close()
	ctx := context.Background()

	for _, m := range mode.All() {
		if err := s.Set(ctx, 42, m); err != nil {
			t.Fatalf("Set(%q) failed: %v", m, err)
		}
		got, err := s.Get(ctx, 42)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if got != m {
			t.Errorf("round-trip mismatch: set %q, got %q", m, got)
		}
	}
}

func TestClear_ReturnsToNone(t *testing.T) {
	s, _ := newTestStore(t)
	defer s.Close()
	ctx := context.Background()

	if err := s.Set(ctx, 7, mode.Confidence); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := s.Clear(ctx, 7); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}

	got, err := s.Get(ctx, 7)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != mode.None {
		t.Errorf("expected mode.None after Clear, got %q", got)
	}
}

func TestClear_UnknownUserIsNoop(t *testing.T) {
	s, _ := newTestStore(t)
	defer s.Close()

	if err := s.Clear(context.Background(), 999); err != nil {
		t.Errorf("Clear of unknown user should not fail: %v", err)
	}
}

func TestMode_SurvivesReopen(t *testing.T) {
	s, dbPath := newTestStore(t)
	ctx := context.Background()

	if err := s.Set(ctx, 1001, mode.Technical); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reopened, err := NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatalf("reopening store failed: %v", err)
	}
	defer reopened.Close()

	got, err := reopened.Get(ctx, 1001)
	if err != nil {
		t.Fatalf("Get after reopen failed: %v", err)
	}
	if got != mode.Technical {
		t.Errorf("mode did not survive reopen: got %q", got)
	}
}

func TestUsers_AreIndependent(t *testing.T) {
	s, _ := newTestStore(t)
	defer s.Close()
	ctx := context.Background()

	if err := s.Set(ctx, 1, mode.Price); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := s.Set(ctx, 2, mode.Crypto); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	m1, _ := s.Get(ctx, 1)
	m2, _ := s.Get(ctx, 2)
	if m1 != mode.Price || m2 != mode.Crypto {
		t.Errorf("cross-user interference: user1=%q user2=%q", m1, m2)
	}
}

func TestConcurrentReads(t *testing.T) {
	s, _ := newTestStore(t)
	defer s.Close()
	ctx := context.Background()

	if err := s.Set(ctx, 55, mode.CryptoInfo); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	var wg sync.WaitGroup
	errs := make(chan error, 20)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m, err := s.Get(ctx, 55)
			if err != nil {
				errs <- err
				return
			}
			if m != mode.CryptoInfo {
				errs <- fmt.Errorf("unexpected mode %q", m)
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}
