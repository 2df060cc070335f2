package api

import "time"

// RecordResponse представляет одну запись коллекции на сервере
type RecordResponse struct {
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	Data       map[string]any `json:"data"`
	ID         string         `json:"id"`
	Collection string         `json:"collection"`
}

// ListRecordsResponse представляет ответ со списком записей коллекции
type ListRecordsResponse struct {
	Records []RecordResponse `json:"records"`
}

// HealthResponse представляет ответ проверки доступности сервера
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}
