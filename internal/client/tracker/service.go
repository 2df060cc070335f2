// Package tracker implements the user-facing mutations of weight entries,
// habits and tasks. Every mutation passes rate-limit admission, is written
// optimistically to the local store and is then queued for the backend.
package tracker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/trackkeeper/internal/client/storage"
	"github.com/iudanet/trackkeeper/internal/models"
	"github.com/iudanet/trackkeeper/internal/ratelimit"
	"github.com/iudanet/trackkeeper/internal/validation"
	pkgapi "github.com/iudanet/trackkeeper/pkg/api"
)

//go:generate moq -out queue_mock.go . Queue
//go:generate moq -out lister_mock.go . Lister

var (
	// ErrInvalidInput indicates rejected user input
	ErrInvalidInput = errors.New("invalid input")
)

// Queue accepts operations for background delivery.
type Queue interface {
	QueueOperation(ctx context.Context, kind models.OperationKind, collection string, payload map[string]any) (*models.Operation, error)
}

// Lister fetches the server copy of a collection.
type Lister interface {
	List(ctx context.Context, collection string) ([]pkgapi.RecordResponse, error)
}

// Service mutates tracked entities for one owner.
type Service struct {
	store   storage.Store
	queue   Queue
	limiter *ratelimit.Limiter
	logger  *slog.Logger
	now     func() time.Time
	owner   string
}

// NewService creates a tracker service bound to owner.
func NewService(store storage.Store, queue Queue, limiter *ratelimit.Limiter, owner string, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		store:   store,
		queue:   queue,
		limiter: limiter,
		owner:   owner,
		logger:  logger,
		now:     time.Now,
	}
}

// AddWeight records a weight measurement.
func (s *Service) AddWeight(ctx context.Context, weightKg float64, note string) (*models.WeightEntry, error) {
	if weightKg <= 0 || weightKg >= 1000 || math.IsNaN(weightKg) {
		return nil, fmt.Errorf("%w: weight must be between 0 and 1000 kg", ErrInvalidInput)
	}
	if err := s.admit(ratelimit.PresetCreate, models.CollectionEntries); err != nil {
		return nil, err
	}

	entry := &models.WeightEntry{
		ID:         uuid.NewString(),
		WeightKg:   weightKg,
		Note:       strings.TrimSpace(note),
		RecordedAt: s.now().UTC().Truncate(time.Second),
	}
	if err := s.commit(ctx, models.OperationCreate, models.CollectionEntries, entry.ID, entry, entry.Payload()); err != nil {
		return nil, err
	}
	return entry, nil
}

// AddHabit creates a habit.
func (s *Service) AddHabit(ctx context.Context, name string) (*models.Habit, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: habit name cannot be empty", ErrInvalidInput)
	}
	if err := s.admit(ratelimit.PresetCreate, models.CollectionHabits); err != nil {
		return nil, err
	}

	habit := &models.Habit{ID: uuid.NewString(), Name: name, CompletedDates: []string{}}
	if err := s.commit(ctx, models.OperationCreate, models.CollectionHabits, habit.ID, habit, habit.Payload()); err != nil {
		return nil, err
	}
	return habit, nil
}

// AddTask creates a task. dueDate is optional (YYYY-MM-DD).
func (s *Service) AddTask(ctx context.Context, title, dueDate string) (*models.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("%w: task title cannot be empty", ErrInvalidInput)
	}
	if dueDate != "" {
		if _, err := time.Parse(models.DateLayout, dueDate); err != nil {
			return nil, fmt.Errorf("%w: due date must be YYYY-MM-DD", ErrInvalidInput)
		}
	}
	if err := s.admit(ratelimit.PresetCreate, models.CollectionTasks); err != nil {
		return nil, err
	}

	task := &models.Task{ID: uuid.NewString(), Title: title, DueDate: dueDate}
	if err := s.commit(ctx, models.OperationCreate, models.CollectionTasks, task.ID, task, task.Payload()); err != nil {
		return nil, err
	}
	return task, nil
}

// ToggleHabit marks or unmarks day for a habit. An empty day means today.
// The returned bool reports whether the day is marked after the call.
func (s *Service) ToggleHabit(ctx context.Context, id, day string) (*models.Habit, bool, error) {
	if day == "" {
		day = s.now().Format(models.DateLayout)
	} else if _, err := time.Parse(models.DateLayout, day); err != nil {
		return nil, false, fmt.Errorf("%w: day must be YYYY-MM-DD", ErrInvalidInput)
	}

	habit := &models.Habit{}
	if err := s.load(ctx, models.CollectionHabits, id, habit); err != nil {
		return nil, false, err
	}
	if err := s.admit(ratelimit.PresetToggle, models.CollectionHabits); err != nil {
		return nil, false, err
	}

	marked := habit.Toggle(day)
	slices.Sort(habit.CompletedDates)
	if err := s.commit(ctx, models.OperationUpdate, models.CollectionHabits, habit.ID, habit, habit.Payload()); err != nil {
		return nil, false, err
	}
	return habit, marked, nil
}

// CompleteTask marks a task as done.
func (s *Service) CompleteTask(ctx context.Context, id string) (*models.Task, error) {
	task := &models.Task{}
	if err := s.load(ctx, models.CollectionTasks, id, task); err != nil {
		return nil, err
	}
	if err := s.admit(ratelimit.PresetWrite, models.CollectionTasks); err != nil {
		return nil, err
	}

	task.Done = true
	if err := s.commit(ctx, models.OperationUpdate, models.CollectionTasks, task.ID, task, task.Payload()); err != nil {
		return nil, err
	}
	return task, nil
}

// Delete removes a record locally and queues its remote deletion.
func (s *Service) Delete(ctx context.Context, collection, id string) error {
	if err := validation.ValidateCollection(collection); err != nil {
		return err
	}
	if err := validation.ValidateRecordID(id); err != nil {
		return err
	}
	if err := s.admit(ratelimit.PresetDelete, collection); err != nil {
		return err
	}

	s.store.Delete(ctx, collection, id)
	if _, err := s.queue.QueueOperation(ctx, models.OperationDelete, collection, map[string]any{models.PayloadIDField: id}); err != nil {
		return fmt.Errorf("failed to queue delete: %w", err)
	}
	return nil
}

// Weights returns cached weight entries, newest first.
func (s *Service) Weights(ctx context.Context) []models.WeightEntry {
	entries := decodeAll[models.WeightEntry](ctx, s, models.CollectionEntries)
	slices.SortFunc(entries, func(a, b models.WeightEntry) int {
		return b.RecordedAt.Compare(a.RecordedAt)
	})
	return entries
}

// Habits returns cached habits ordered by name.
func (s *Service) Habits(ctx context.Context) []models.Habit {
	habits := decodeAll[models.Habit](ctx, s, models.CollectionHabits)
	slices.SortFunc(habits, func(a, b models.Habit) int {
		return strings.Compare(a.Name, b.Name)
	})
	return habits
}

// Tasks returns cached tasks, open ones first.
func (s *Service) Tasks(ctx context.Context) []models.Task {
	tasks := decodeAll[models.Task](ctx, s, models.CollectionTasks)
	slices.SortFunc(tasks, func(a, b models.Task) int {
		if a.Done != b.Done {
			if a.Done {
				return 1
			}
			return -1
		}
		return strings.Compare(a.Title, b.Title)
	})
	return tasks
}

// Pull fetches the server copy of collection and upserts it into the local
// cache. Local records missing on the server are kept: they may still be queued.
func (s *Service) Pull(ctx context.Context, lister Lister, collection string) (int, error) {
	if err := validation.ValidateCollection(collection); err != nil {
		return 0, err
	}
	if err := s.admit(ratelimit.PresetFetch, collection); err != nil {
		return 0, err
	}

	records, err := lister.List(ctx, collection)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch %s: %w", collection, err)
	}

	stored := 0
	for _, r := range records {
		rec, err := storage.NewRecord(r.ID, s.owner, r.Data)
		if err != nil {
			s.logger.Warn("Skipping server record", "collection", collection, "id", r.ID, "error", err)
			continue
		}
		if s.store.Put(ctx, collection, rec) {
			stored++
		}
	}

	s.logger.Info("Collection pulled", "collection", collection, "records", stored)
	return stored, nil
}

// ClearCache drops the local copies of all tracked collections.
func (s *Service) ClearCache(ctx context.Context) {
	for _, collection := range models.TrackedCollections {
		s.store.Clear(ctx, collection)
	}
}

// admit проверяет лимит для класса операции и коллекции
func (s *Service) admit(preset, collection string) error {
	cfg := ratelimit.MustPreset(preset)
	key := ratelimit.Key(preset, collection)
	if s.limiter.CheckAndRecord(key, cfg) {
		s.logger.Warn("Rate limit exceeded", "key", key)
		return fmt.Errorf("%w: %s", ratelimit.ErrRateLimited, key)
	}
	return nil
}

// commit записывает сущность в локальный кэш и ставит операцию в очередь
func (s *Service) commit(ctx context.Context, kind models.OperationKind, collection, id string, entity any, payload map[string]any) error {
	rec, err := storage.NewRecord(id, s.owner, entity)
	if err != nil {
		return err
	}
	if !s.store.Put(ctx, collection, rec) {
		s.logger.Warn("Local cache write failed", "collection", collection, "id", id)
	}

	if _, err := s.queue.QueueOperation(ctx, kind, collection, payload); err != nil {
		return fmt.Errorf("failed to queue %s: %w", kind, err)
	}
	return nil
}

func (s *Service) load(ctx context.Context, collection, id string, v any) error {
	rec, ok := s.store.Get(ctx, collection, id)
	if !ok || (s.owner != "" && rec.Owner != s.owner) {
		return fmt.Errorf("%w: %s/%s", storage.ErrRecordNotFound, collection, id)
	}
	return rec.Decode(v)
}

func decodeAll[T any](ctx context.Context, s *Service, collection string) []T {
	records := s.store.GetAll(ctx, collection, s.owner)

	out := make([]T, 0, len(records))
	for _, rec := range records {
		var v T
		if err := rec.Decode(&v); err != nil {
			s.logger.Warn("Skipping unreadable record", "collection", collection, "id", rec.ID, "error", err)
			continue
		}
		out = append(out, v)
	}
	return out
}
