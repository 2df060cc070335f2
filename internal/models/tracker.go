package models

import "time"

// Имена коллекций, которые синхронизируются с сервером
const (
	CollectionEntries = "entries"
	CollectionHabits  = "habits"
	CollectionTasks   = "tasks"
)

// TrackedCollections lists the collections the backend accepts.
var TrackedCollections = []string{CollectionEntries, CollectionHabits, CollectionTasks}

// DateLayout формат дат для привычек и задач
const DateLayout = "2006-01-02"

// WeightEntry представляет одно измерение веса
type WeightEntry struct {
	RecordedAt time.Time `json:"recorded_at"` // RecordedAt время измерения
	ID         string    `json:"id"`          // ID уникальный идентификатор записи (UUID)
	Note       string    `json:"note"`        // Note опциональная заметка
	WeightKg   float64   `json:"weight_kg"`   // WeightKg вес в килограммах
}

// Payload converts the entry into an operation payload.
func (e *WeightEntry) Payload() map[string]any {
	return map[string]any{
		"id":          e.ID,
		"weight_kg":   e.WeightKg,
		"note":        e.Note,
		"recorded_at": e.RecordedAt.UTC().Format(time.RFC3339),
	}
}

// Habit представляет привычку с отмеченными днями
type Habit struct {
	ID             string   `json:"id"`              // ID уникальный идентификатор привычки (UUID)
	Name           string   `json:"name"`            // Name название привычки
	CompletedDates []string `json:"completed_dates"` // CompletedDates дни выполнения в формате YYYY-MM-DD
}

// Payload converts the habit into an operation payload.
func (h *Habit) Payload() map[string]any {
	dates := make([]any, 0, len(h.CompletedDates))
	for _, d := range h.CompletedDates {
		dates = append(dates, d)
	}
	return map[string]any{
		"id":              h.ID,
		"name":            h.Name,
		"completed_dates": dates,
	}
}

// Toggle отмечает день выполненным или снимает отметку.
// Возвращает true, если после вызова день отмечен.
func (h *Habit) Toggle(day string) bool {
	for i, d := range h.CompletedDates {
		if d == day {
			h.CompletedDates = append(h.CompletedDates[:i], h.CompletedDates[i+1:]...)
			return false
		}
	}
	h.CompletedDates = append(h.CompletedDates, day)
	return true
}

// Task представляет задачу
type Task struct {
	ID      string `json:"id"`       // ID уникальный идентификатор задачи (UUID)
	Title   string `json:"title"`    // Title текст задачи
	DueDate string `json:"due_date"` // DueDate срок в формате YYYY-MM-DD (опционально)
	Done    bool   `json:"done"`     // Done флаг выполнения
}

// Payload converts the task into an operation payload.
func (t *Task) Payload() map[string]any {
	return map[string]any{
		"id":       t.ID,
		"title":    t.Title,
		"due_date": t.DueDate,
		"done":     t.Done,
	}
}
