package validation

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/iudanet/trackkeeper/internal/models"
)

var (
	// ErrUnknownCollection indicates a collection the backend does not track
	ErrUnknownCollection = errors.New("unknown collection")

	// ErrInvalidRecordID indicates an empty or malformed record id
	ErrInvalidRecordID = errors.New("invalid record id")
)

// MaxRecordIDLen ограничение длины id записи
const MaxRecordIDLen = 128

// ValidateCollection accepts only the tracked collections.
func ValidateCollection(collection string) error {
	if !slices.Contains(models.TrackedCollections, collection) {
		return fmt.Errorf("%w: %q", ErrUnknownCollection, collection)
	}
	return nil
}

// ValidateRecordID checks that id is non-empty, bounded and has no path separators.
func ValidateRecordID(id string) error {
	switch {
	case strings.TrimSpace(id) == "":
		return fmt.Errorf("%w: id cannot be empty", ErrInvalidRecordID)
	case len(id) > MaxRecordIDLen:
		return fmt.Errorf("%w: must not exceed %d characters", ErrInvalidRecordID, MaxRecordIDLen)
	case strings.ContainsAny(id, "/\\"):
		return fmt.Errorf("%w: must not contain path separators", ErrInvalidRecordID)
	}
	return nil
}

// PayloadID extracts and validates the id field of a record payload.
func PayloadID(payload map[string]any) (string, error) {
	raw, ok := payload[models.PayloadIDField]
	if !ok {
		return "", fmt.Errorf("%w: payload has no %q field", ErrInvalidRecordID, models.PayloadIDField)
	}
	id, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("%w: %q must be a string", ErrInvalidRecordID, models.PayloadIDField)
	}
	if err := ValidateRecordID(id); err != nil {
		return "", err
	}
	return id, nil
}
