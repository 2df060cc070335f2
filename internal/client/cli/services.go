package cli

import (
	"context"

	"github.com/iudanet/trackkeeper/internal/client/auth"
	"github.com/iudanet/trackkeeper/internal/client/sync"
	"github.com/iudanet/trackkeeper/internal/client/tracker"
	"github.com/iudanet/trackkeeper/internal/models"
)

//go:generate moq -out auth_mock.go . AuthService
//go:generate moq -out tracker_mock.go . TrackerService
//go:generate moq -out sync_mock.go . SyncService
//go:generate moq -out remote_mock.go . Remote
//go:generate moq -out network_mock.go . Network

// AuthService регистрирует пользователей и управляет локальной сессией
type AuthService interface {
	Register(ctx context.Context, username, password string) (string, error)
	Login(ctx context.Context, username, password string) (*auth.Session, error)
	Restore(ctx context.Context) (*auth.Session, error)
	Logout(ctx context.Context)
}

// TrackerService изменяет и читает записи трекера
type TrackerService interface {
	AddWeight(ctx context.Context, weightKg float64, note string) (*models.WeightEntry, error)
	AddHabit(ctx context.Context, name string) (*models.Habit, error)
	AddTask(ctx context.Context, title, dueDate string) (*models.Task, error)
	ToggleHabit(ctx context.Context, id, day string) (*models.Habit, bool, error)
	CompleteTask(ctx context.Context, id string) (*models.Task, error)
	Delete(ctx context.Context, collection, id string) error
	Weights(ctx context.Context) []models.WeightEntry
	Habits(ctx context.Context) []models.Habit
	Tasks(ctx context.Context) []models.Task
	Pull(ctx context.Context, lister tracker.Lister, collection string) (int, error)
	ClearCache(ctx context.Context)
}

// SyncService управляет очередью операций и кладбищем
type SyncService interface {
	ProcessSync(ctx context.Context) (sync.Result, error)
	Status(ctx context.Context) sync.Status
	FailedOperations(ctx context.Context) []models.FailedOperation
	RetryFailedItem(ctx context.Context, id string) error
	RetryAllFailed(ctx context.Context) (int, error)
	DiscardFailedItem(ctx context.Context, id string) error
	DiscardAllFailed(ctx context.Context) (int, error)
	Reset(ctx context.Context)
}

// Remote is the server as seen by read-side commands.
type Remote interface {
	tracker.Lister
	Health(ctx context.Context) error
}

// Network принимает результат проверки доступности сервера
type Network interface {
	IsOnline() bool
	SetOnline(online bool)
}

var (
	_ TrackerService = (*tracker.Service)(nil)
	_ SyncService    = (*sync.Manager)(nil)
	_ AuthService    = (*auth.Service)(nil)
)
