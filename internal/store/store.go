// Package store owns the task list and keeps it in sync with the persistence medium.
package store

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/sandeepkv93/daybook/internal/model"
	"github.com/sandeepkv93/daybook/internal/storage"
)

var ErrEmptyTitle = model.ErrEmptyTitle

// TaskStore is the only writer of tasks. It is not safe for concurrent use;
// the UI event loop is its single caller.
type TaskStore struct {
	repo   storage.Repository
	tasks  []model.Task
	nextID int
	now    func() time.Time
	logger *log.Logger
}

type Option func(*TaskStore)

func WithClock(now func() time.Time) Option {
	return func(s *TaskStore) {
		if now != nil {
			s.now = now
		}
	}
}

func WithLogger(l *log.Logger) Option {
	return func(s *TaskStore) {
		if l != nil {
			s.logger = l
		}
	}
}

func New(repo storage.Repository, opts ...Option) *TaskStore {
	s := &TaskStore{
		repo:   repo,
		nextID: 1,
		now:    time.Now,
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open builds a store and loads whatever the repository already holds.
func Open(ctx context.Context, repo storage.Repository, opts ...Option) (*TaskStore, error) {
	s := New(repo, opts...)
	if err := s.Load(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *TaskStore) Now() time.Time {
	return s.now()
}

// Tasks returns a copy of the tasks in insertion order.
func (s *TaskStore) Tasks() []model.Task {
	out := make([]model.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

func (s *TaskStore) Len() int { return len(s.tasks) }

func (s *TaskStore) NextID() int { return s.nextID }

func (s *TaskStore) Get(id int) (model.Task, bool) {
	if i := s.indexOf(id); i >= 0 {
		return s.tasks[i], true
	}
	return model.Task{}, false
}

func (s *TaskStore) Add(ctx context.Context, title, description string) (model.Task, error) {
	task, err := model.NewTask(s.nextID, title, description, s.now())
	if err != nil {
		return model.Task{}, err
	}
	s.nextID++
	s.tasks = append(s.tasks, task)
	if err := s.Persist(ctx); err != nil {
		return task, err
	}
	return task, nil
}

// ToggleImportant reports found=false and does nothing for an unknown id.
func (s *TaskStore) ToggleImportant(ctx context.Context, id int) (model.Task, bool, error) {
	return s.mutate(ctx, id, func(t *model.Task) { t.Important = !t.Important })
}

// ToggleCompleted reports found=false and does nothing for an unknown id.
func (s *TaskStore) ToggleCompleted(ctx context.Context, id int) (model.Task, bool, error) {
	return s.mutate(ctx, id, func(t *model.Task) { t.Completed = !t.Completed })
}

// Delete returns the removed task. Unknown ids are a no-op.
func (s *TaskStore) Delete(ctx context.Context, id int) (model.Task, bool, error) {
	i := s.indexOf(id)
	if i < 0 {
		return model.Task{}, false, nil
	}
	removed := s.tasks[i]
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	return removed, true, s.Persist(ctx)
}

func (s *TaskStore) mutate(ctx context.Context, id int, fn func(*model.Task)) (model.Task, bool, error) {
	i := s.indexOf(id)
	if i < 0 {
		return model.Task{}, false, nil
	}
	fn(&s.tasks[i])
	return s.tasks[i], true, s.Persist(ctx)
}

func (s *TaskStore) indexOf(id int) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

// Persist writes the task list and the id counter in a single repository call.
func (s *TaskStore) Persist(ctx context.Context) error {
	raw, err := encodeTasks(s.tasks)
	if err != nil {
		return fmt.Errorf("store: encode tasks: %w", err)
	}
	if err := s.repo.Put(ctx,
		storage.Entry{Key: KeyCounter, Value: encodeCounter(s.nextID)},
		storage.Entry{Key: KeyTasks, Value: raw},
	); err != nil {
		return fmt.Errorf("store: persist: %w", err)
	}
	return nil
}

// Load replaces the in-memory state with the persisted one. Missing or
// malformed task data leaves an empty store. The persisted counter wins over
// max(id)+1 but is never allowed below it.
func (s *TaskStore) Load(ctx context.Context) error {
	s.tasks = nil
	s.nextID = 1

	entry, err := s.repo.Get(ctx, KeyTasks)
	switch {
	case errors.Is(err, storage.ErrNotFound):
	case err != nil:
		return fmt.Errorf("store: load tasks: %w", err)
	default:
		tasks, decodeErr := decodeTasks(entry.Value)
		if decodeErr != nil {
			s.logger.Printf("store: ignoring malformed %q entry: %v", KeyTasks, decodeErr)
		} else {
			s.tasks = tasks
		}
	}

	floor := 1
	for _, t := range s.tasks {
		if t.ID >= floor {
			floor = t.ID + 1
		}
	}
	s.nextID = floor

	counter, err := s.repo.Get(ctx, KeyCounter)
	switch {
	case errors.Is(err, storage.ErrNotFound):
	case err != nil:
		return fmt.Errorf("store: load counter: %w", err)
	default:
		v, ok := decodeCounter(counter.Value)
		if !ok {
			s.logger.Printf("store: ignoring malformed %q entry: %q", KeyCounter, counter.Value)
			break
		}
		if v < floor {
			s.logger.Printf("store: persisted counter %d is below next free id %d, using %d", v, floor, floor)
			break
		}
		s.nextID = v
	}
	return nil
}

// Reset drops every task and both persisted keys. The counter restarts at 1.
func (s *TaskStore) Reset(ctx context.Context) error {
	for _, key := range []string{KeyTasks, KeyCounter} {
		if err := s.repo.Delete(ctx, key); err != nil && !errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("store: reset %s: %w", key, err)
		}
	}
	s.tasks = nil
	s.nextID = 1
	return nil
}
