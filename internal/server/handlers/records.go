package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/iudanet/trackkeeper/internal/models"
	"github.com/iudanet/trackkeeper/internal/server/storage"
	"github.com/iudanet/trackkeeper/internal/validation"
	"github.com/iudanet/trackkeeper/pkg/api"
)

// MaxRecordBodyBytes ограничение размера тела запроса с записью
const MaxRecordBodyBytes = 1 << 20

// RecordsHandler обслуживает коллекции записей пользователя.
// Все методы требуют user_id в контексте (см. middleware.AuthMiddleware).
type RecordsHandler struct {
	logger  *slog.Logger
	records storage.RecordStorage
}

// NewRecordsHandler создает новый handler коллекций
func NewRecordsHandler(logger *slog.Logger, records storage.RecordStorage) *RecordsHandler {
	return &RecordsHandler{
		logger:  logger,
		records: records,
	}
}

// Insert обрабатывает POST /api/v1/collections/{collection}.
// Запись идентифицируется полем id payload; повторная вставка заменяет данные.
func (h *RecordsHandler) Insert(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, collection, ok := h.scope(w, r)
	if !ok {
		return
	}

	payload, ok := h.decodePayload(w, r)
	if !ok {
		return
	}

	id, err := validation.PayloadID(payload)
	if err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	record := &models.Record{
		ID:         id,
		UserID:     userID,
		Collection: collection,
		Data:       payload,
	}
	created, err := h.records.UpsertRecord(ctx, record)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to upsert record",
			slog.String("collection", collection),
			slog.String("id", id),
			slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.DebugContext(ctx, "record stored",
		slog.String("user_id", userID),
		slog.String("collection", collection),
		slog.String("id", id),
		slog.Bool("created", created))

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	sendJSON(h.logger, w, toRecordResponse(record), status)
}

// Update обрабатывает PATCH /api/v1/collections/{collection}/{id}.
// Поля payload поверхностно сливаются с сохраненными данными.
func (h *RecordsHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, collection, ok := h.scope(w, r)
	if !ok {
		return
	}
	id, ok := h.recordID(w, r)
	if !ok {
		return
	}

	patch, ok := h.decodePayload(w, r)
	if !ok {
		return
	}
	if raw, exists := patch[models.PayloadIDField]; exists && raw != id {
		sendError(h.logger, w, "payload id does not match path", http.StatusBadRequest)
		return
	}

	record, err := h.records.UpdateRecord(ctx, userID, collection, id, patch)
	if err != nil {
		if errors.Is(err, storage.ErrRecordNotFound) {
			sendError(h.logger, w, "record not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to update record",
			slog.String("collection", collection),
			slog.String("id", id),
			slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	sendJSON(h.logger, w, toRecordResponse(record), http.StatusOK)
}

// Delete обрабатывает DELETE /api/v1/collections/{collection}/{id}.
// Удаление отсутствующей записи тоже успешно.
func (h *RecordsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, collection, ok := h.scope(w, r)
	if !ok {
		return
	}
	id, ok := h.recordID(w, r)
	if !ok {
		return
	}

	deleted, err := h.records.DeleteRecord(ctx, userID, collection, id)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to delete record",
			slog.String("collection", collection),
			slog.String("id", id),
			slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.DebugContext(ctx, "record deleted",
		slog.String("collection", collection),
		slog.String("id", id),
		slog.Bool("existed", deleted))

	w.WriteHeader(http.StatusNoContent)
}

// List обрабатывает GET /api/v1/collections/{collection}
func (h *RecordsHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, collection, ok := h.scope(w, r)
	if !ok {
		return
	}

	records, err := h.records.ListRecords(ctx, userID, collection)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list records",
			slog.String("collection", collection),
			slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	resp := api.ListRecordsResponse{Records: make([]api.RecordResponse, 0, len(records))}
	for _, record := range records {
		resp.Records = append(resp.Records, toRecordResponse(record))
	}
	sendJSON(h.logger, w, resp, http.StatusOK)
}

// scope извлекает пользователя из контекста и проверяет коллекцию из пути
func (h *RecordsHandler) scope(w http.ResponseWriter, r *http.Request) (string, string, bool) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return "", "", false
	}

	collection := r.PathValue("collection")
	if err := validation.ValidateCollection(collection); err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return "", "", false
	}
	return userID, collection, true
}

func (h *RecordsHandler) recordID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := r.PathValue("id")
	if err := validation.ValidateRecordID(id); err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return "", false
	}
	return id, true
}

func (h *RecordsHandler) decodePayload(w http.ResponseWriter, r *http.Request) (map[string]any, bool) {
	var payload map[string]any
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxRecordBodyBytes)).Decode(&payload); err != nil {
		h.logger.WarnContext(r.Context(), "failed to decode record payload", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return nil, false
	}
	if payload == nil {
		sendError(h.logger, w, "payload must be a JSON object", http.StatusBadRequest)
		return nil, false
	}
	return payload, true
}

func toRecordResponse(record *models.Record) api.RecordResponse {
	return api.RecordResponse{
		ID:         record.ID,
		Collection: record.Collection,
		Data:       record.Data,
		CreatedAt:  record.CreatedAt,
		UpdatedAt:  record.UpdatedAt,
	}
}
