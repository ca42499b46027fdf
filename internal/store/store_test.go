package store

import (
	"bytes"
	"context"
	"errors"
	"log"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sandeepkv93/daybook/internal/model"
	"github.com/sandeepkv93/daybook/internal/storage"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func newTestStore(t *testing.T) (*TaskStore, *storage.MemoryRepository, *fakeClock) {
	t.Helper()
	repo := storage.NewMemoryRepository()
	clock := &fakeClock{now: time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC)}
	s, err := Open(context.Background(), repo, WithClock(clock.Now), WithLogger(log.New(&bytes.Buffer{}, "", 0)))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	return s, repo, clock
}

func mustAdd(t *testing.T, s *TaskStore, title string) model.Task {
	t.Helper()
	task, err := s.Add(context.Background(), title, "")
	if err != nil {
		t.Fatalf("add %q: %v", title, err)
	}
	return task
}

func TestAddAssignsIncreasingIDsAcrossDeletes(t *testing.T) {
	s, _, _ := newTestStore(t)
	ctx := context.Background()

	a := mustAdd(t, s, "one")
	b := mustAdd(t, s, "two")
	if _, _, err := s.Delete(ctx, b.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	c := mustAdd(t, s, "three")
	if _, _, err := s.Delete(ctx, a.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	d := mustAdd(t, s, "four")

	got := []int{a.ID, b.ID, c.ID, d.ID}
	want := []int{1, 2, 3, 4}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ids = %v, want %v", got, want)
		}
	}
	if s.NextID() != 5 {
		t.Fatalf("expected next id 5, got %d", s.NextID())
	}
}

func TestAddDefaultsAndTimestamps(t *testing.T) {
	s, _, clock := newTestStore(t)
	task, err := s.Add(context.Background(), "Buy milk", "")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if task.Description != model.DefaultDescription {
		t.Fatalf("expected placeholder description, got %q", task.Description)
	}
	if task.Timestamp != clock.now.UnixMilli() {
		t.Fatalf("unexpected timestamp: %d", task.Timestamp)
	}
	if task.Date != model.FormatDate(clock.now) {
		t.Fatalf("unexpected date: %q", task.Date)
	}
	if task.Important || task.Completed {
		t.Fatalf("expected flags false: %+v", task)
	}
}

func TestAddRejectsBlankTitle(t *testing.T) {
	s, repo, _ := newTestStore(t)
	ctx := context.Background()
	for _, title := range []string{"", "   "} {
		if _, err := s.Add(ctx, title, "x"); !errors.Is(err, ErrEmptyTitle) {
			t.Fatalf("title %q: expected ErrEmptyTitle, got %v", title, err)
		}
	}
	if s.Len() != 0 || s.NextID() != 1 {
		t.Fatalf("rejected add mutated store: len=%d next=%d", s.Len(), s.NextID())
	}
	if _, err := repo.Get(ctx, KeyTasks); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("rejected add must not persist, got %v", err)
	}
}

func TestToggleImportantTwiceRestores(t *testing.T) {
	s, _, _ := newTestStore(t)
	ctx := context.Background()
	task := mustAdd(t, s, "flag me")

	first, found, err := s.ToggleImportant(ctx, task.ID)
	if err != nil || !found || !first.Important {
		t.Fatalf("first toggle: %+v found=%v err=%v", first, found, err)
	}
	second, found, err := s.ToggleImportant(ctx, task.ID)
	if err != nil || !found || second.Important {
		t.Fatalf("second toggle: %+v found=%v err=%v", second, found, err)
	}
}

func TestToggleCompleted(t *testing.T) {
	s, _, _ := newTestStore(t)
	task := mustAdd(t, s, "finish")
	got, found, err := s.ToggleCompleted(context.Background(), task.ID)
	if err != nil || !found || !got.Completed {
		t.Fatalf("toggle completed: %+v found=%v err=%v", got, found, err)
	}
	stored, _ := s.Get(task.ID)
	if !stored.Completed {
		t.Fatal("expected stored task completed")
	}
}

func TestUnknownIDIsNoop(t *testing.T) {
	s, _, _ := newTestStore(t)
	ctx := context.Background()
	mustAdd(t, s, "a")
	mustAdd(t, s, "b")
	mustAdd(t, s, "c")
	before := s.Tasks()

	if _, found, err := s.Delete(ctx, 999); found || err != nil {
		t.Fatalf("delete 999: found=%v err=%v", found, err)
	}
	if _, found, err := s.ToggleImportant(ctx, 999); found || err != nil {
		t.Fatalf("toggle important 999: found=%v err=%v", found, err)
	}
	if _, found, err := s.ToggleCompleted(ctx, 999); found || err != nil {
		t.Fatalf("toggle completed 999: found=%v err=%v", found, err)
	}
	after := s.Tasks()
	if len(before) != len(after) {
		t.Fatalf("store changed: %d -> %d", len(before), len(after))
	}
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("task %d changed: %+v -> %+v", i, before[i], after[i])
		}
	}
}

func TestTasksReturnsCopy(t *testing.T) {
	s, _, _ := newTestStore(t)
	mustAdd(t, s, "first draft")
	tasks := s.Tasks()
	tasks[0].Title = "mutated"
	if got, _ := s.Get(1); got.Title != "first draft" {
		t.Fatalf("store leaked internal slice, title=%q", got.Title)
	}
}

func TestPersistLoadRoundTrip(t *testing.T) {
	s, repo, clock := newTestStore(t)
	ctx := context.Background()
	mustAdd(t, s, "one")
	two := mustAdd(t, s, "two")
	mustAdd(t, s, "three")
	if _, _, err := s.ToggleImportant(ctx, two.ID); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if _, _, err := s.ToggleCompleted(ctx, 3); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if _, _, err := s.Delete(ctx, 1); err != nil {
		t.Fatalf("delete: %v", err)
	}

	reloaded, err := Open(ctx, repo, WithClock(clock.Now))
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	want := s.Tasks()
	got := reloaded.Tasks()
	if len(got) != len(want) {
		t.Fatalf("expected %d tasks, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("task %d mismatch: got %+v want %+v", i, got[i], want[i])
		}
	}
	if reloaded.NextID() != 4 {
		t.Fatalf("expected next id 4 (never reuse deleted ids), got %d", reloaded.NextID())
	}
}

func TestLoadEmptyRepository(t *testing.T) {
	s, _, _ := newTestStore(t)
	if s.Len() != 0 || s.NextID() != 1 {
		t.Fatalf("expected empty store, len=%d next=%d", s.Len(), s.NextID())
	}
}

func TestLoadCoercesTextTimestamps(t *testing.T) {
	repo := storage.NewMemoryRepository()
	ctx := context.Background()
	raw := `[{"id":4,"title":"legacy","description":"d","date":"x","important":true,"timestamp":"1770638400000","completed":false},
		{"id":2,"title":"partial","timestamp":"abc"}]`
	if err := repo.Put(ctx, storage.Entry{Key: KeyTasks, Value: raw}); err != nil {
		t.Fatalf("seed: %v", err)
	}
	s, err := Open(ctx, repo)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	tasks := s.Tasks()
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(tasks))
	}
	if tasks[0].Timestamp != 1770638400000 || !tasks[0].Important {
		t.Fatalf("unexpected legacy task: %+v", tasks[0])
	}
	if tasks[1].Timestamp != 0 {
		t.Fatalf("expected unparseable timestamp to become 0, got %d", tasks[1].Timestamp)
	}
	if s.NextID() != 5 {
		t.Fatalf("expected next id max+1 = 5, got %d", s.NextID())
	}
}

func TestLoadCounterPrecedence(t *testing.T) {
	ctx := context.Background()
	cases := []struct {
		name    string
		counter string
		want    int
	}{
		{"counter ahead wins", "10", 10},
		{"counter behind is clamped", "2", 4},
		{"malformed counter ignored", "oops", 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := storage.NewMemoryRepository()
			if err := repo.Put(ctx,
				storage.Entry{Key: KeyTasks, Value: `[{"id":1,"title":"a"},{"id":3,"title":"b"}]`},
				storage.Entry{Key: KeyCounter, Value: tc.counter},
			); err != nil {
				t.Fatalf("seed: %v", err)
			}
			var logs bytes.Buffer
			s, err := Open(ctx, repo, WithLogger(log.New(&logs, "", 0)))
			if err != nil {
				t.Fatalf("open: %v", err)
			}
			if s.NextID() != tc.want {
				t.Fatalf("next id = %d, want %d", s.NextID(), tc.want)
			}
		})
	}
}

func TestLoadCounterWithoutTasks(t *testing.T) {
	ctx := context.Background()
	repo := storage.NewMemoryRepository()
	if err := repo.Put(ctx, storage.Entry{Key: KeyCounter, Value: "7"}); err != nil {
		t.Fatalf("seed: %v", err)
	}
	s, err := Open(ctx, repo)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if s.Len() != 0 || s.NextID() != 7 {
		t.Fatalf("unexpected state: len=%d next=%d", s.Len(), s.NextID())
	}
}

func TestLoadMalformedBlobDegradesToEmpty(t *testing.T) {
	ctx := context.Background()
	repo := storage.NewMemoryRepository()
	if err := repo.Put(ctx, storage.Entry{Key: KeyTasks, Value: "{not json"}); err != nil {
		t.Fatalf("seed: %v", err)
	}
	var logs bytes.Buffer
	s, err := Open(ctx, repo, WithLogger(log.New(&logs, "", 0)))
	if err != nil {
		t.Fatalf("malformed data must not fail load: %v", err)
	}
	if s.Len() != 0 || s.NextID() != 1 {
		t.Fatalf("expected empty store, len=%d next=%d", s.Len(), s.NextID())
	}
	if !strings.Contains(logs.String(), "malformed") {
		t.Fatalf("expected malformed entry to be logged, got %q", logs.String())
	}
}

type failingRepo struct {
	storage.Repository
	putErr error
	getErr error
}

func (f failingRepo) Put(context.Context, ...storage.Entry) error { return f.putErr }

func (f failingRepo) Get(ctx context.Context, key string) (storage.Entry, error) {
	if f.getErr != nil {
		return storage.Entry{}, f.getErr
	}
	return f.Repository.Get(ctx, key)
}

func TestPersistErrorIsReported(t *testing.T) {
	boom := errors.New("disk full")
	s := New(failingRepo{Repository: storage.NewMemoryRepository(), putErr: boom})
	task, err := s.Add(context.Background(), "keep me", "")
	if !errors.Is(err, boom) {
		t.Fatalf("expected persist error, got %v", err)
	}
	if task.ID != 1 || s.Len() != 1 {
		t.Fatalf("in-memory add should stand, task=%+v len=%d", task, s.Len())
	}
}

func TestLoadReadErrorPropagates(t *testing.T) {
	boom := errors.New("io error")
	_, err := Open(context.Background(), failingRepo{Repository: storage.NewMemoryRepository(), getErr: boom})
	if !errors.Is(err, boom) {
		t.Fatalf("expected read error, got %v", err)
	}
}

func TestResetClearsKeys(t *testing.T) {
	s, repo, _ := newTestStore(t)
	ctx := context.Background()
	mustAdd(t, s, "a")
	if err := s.Reset(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if s.Len() != 0 || s.NextID() != 1 {
		t.Fatalf("unexpected state after reset: len=%d next=%d", s.Len(), s.NextID())
	}
	if _, err := repo.Get(ctx, KeyTasks); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected tasks key removed, got %v", err)
	}
	if err := s.Reset(ctx); err != nil {
		t.Fatalf("second reset should be a no-op: %v", err)
	}
}

func TestStoreOverSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "daybook.db")
	repo, err := storage.OpenSQLite(path)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	ctx := context.Background()
	s, err := Open(ctx, repo)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	mustAdd(t, s, "persisted")
	if err := repo.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	repo, err = storage.OpenSQLite(path)
	if err != nil {
		t.Fatalf("reopen sqlite: %v", err)
	}
	defer repo.Close()
	s, err = Open(ctx, repo)
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	if s.Len() != 1 || s.Tasks()[0].Title != "persisted" || s.NextID() != 2 {
		t.Fatalf("unexpected reloaded state: %+v next=%d", s.Tasks(), s.NextID())
	}
}
