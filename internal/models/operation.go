package models

import (
	"errors"
	"fmt"
	"time"
)

// OperationKind тип отложенной операции над удаленной коллекцией
type OperationKind string

const (
	OperationCreate OperationKind = "create"
	OperationUpdate OperationKind = "update"
	OperationDelete OperationKind = "delete"
)

// Valid reports whether k is one of the known operation kinds.
func (k OperationKind) Valid() bool {
	switch k {
	case OperationCreate, OperationUpdate, OperationDelete:
		return true
	}
	return false
}

// PayloadIDField поле payload, которое идентифицирует удаленную запись
const PayloadIDField = "id"

var (
	// ErrUnknownOperationKind indicates an operation kind outside create/update/delete
	ErrUnknownOperationKind = errors.New("unknown operation kind")

	// ErrEmptyCollection indicates an operation without a target collection
	ErrEmptyCollection = errors.New("target collection is empty")

	// ErrMissingRecordID indicates an update/delete payload without an id field
	ErrMissingRecordID = errors.New("payload must contain a string id")
)

// Operation представляет одну отложенную запись, ожидающую отправки на сервер.
// Операции одной очереди обрабатываются строго в порядке EnqueuedAt.
type Operation struct {
	EnqueuedAt time.Time      `json:"enqueued_at"` // EnqueuedAt время постановки в очередь (FIFO)
	Payload    map[string]any `json:"payload"`     // Payload поля записи; для update/delete содержит id
	ID         string         `json:"id"`          // ID уникальный идентификатор операции (UUID)
	Kind       OperationKind  `json:"kind"`        // Kind create, update или delete
	Collection string         `json:"collection"`  // Collection имя удаленной коллекции
	OwnerID    string         `json:"owner_id"`    // OwnerID владелец очереди (пользователь)
	RetryCount int            `json:"retry_count"` // RetryCount количество неудачных попыток
}

// RecordID returns the remote record id carried in the payload.
func (o *Operation) RecordID() (string, bool) {
	if o.Payload == nil {
		return "", false
	}
	id, ok := o.Payload[PayloadIDField].(string)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}

// Validate checks the operation shape before it is persisted.
func (o *Operation) Validate() error {
	if !o.Kind.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownOperationKind, o.Kind)
	}
	if o.Collection == "" {
		return ErrEmptyCollection
	}
	if o.Kind == OperationUpdate || o.Kind == OperationDelete {
		if _, ok := o.RecordID(); !ok {
			return fmt.Errorf("%w (kind %s)", ErrMissingRecordID, o.Kind)
		}
	}
	return nil
}

// Clone создает копию операции с поверхностной копией payload
func (o *Operation) Clone() *Operation {
	payload := make(map[string]any, len(o.Payload))
	for k, v := range o.Payload {
		payload[k] = v
	}

	clone := *o
	clone.Payload = payload
	return &clone
}

// FailedOperation запись "кладбища": операция, исчерпавшая бюджет повторов.
// Запись никогда не изменяется на месте - только удаляется (discard)
// или заменяется новой операцией в очереди (retry).
type FailedOperation struct {
	FailedAt     time.Time `json:"failed_at"`               // FailedAt момент переноса в кладбище
	ErrorMessage string    `json:"error_message,omitempty"` // ErrorMessage последняя ошибка сервера
	Operation
}
