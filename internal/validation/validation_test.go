package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		errMsg   string
		wantErr  bool
	}{
		{name: "valid lowercase", username: "alice"},
		{name: "valid mixed case with digits", username: "Alice_42"},
		{name: "valid max length", username: strings.Repeat("a", 32)},
		{name: "empty", username: "", wantErr: true, errMsg: "cannot be empty"},
		{name: "too short", username: "ab", wantErr: true, errMsg: "at least 3 characters"},
		{name: "too long", username: strings.Repeat("a", 33), wantErr: true, errMsg: "must not exceed 32"},
		{name: "with dash", username: "alice-smith", wantErr: true, errMsg: "only letters"},
		{name: "with space", username: "alice smith", wantErr: true, errMsg: "only letters"},
		{name: "cyrillic", username: "алиса", wantErr: true, errMsg: "only letters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUsername(tt.username)
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrInvalidUsername)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		errMsg   string
		wantErr  bool
	}{
		{name: "exactly 8 chars", password: "pass1234"},
		{name: "unicode counted by runes", password: "пароль12"},
		{name: "empty", password: "", wantErr: true, errMsg: "cannot be empty"},
		{name: "too short", password: "pass123", wantErr: true, errMsg: "at least 8 characters"},
		{name: "over bcrypt limit", password: strings.Repeat("p", 73), wantErr: true, errMsg: "72 bytes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrInvalidPassword)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestValidateCollection(t *testing.T) {
	for _, c := range []string{"entries", "habits", "tasks"} {
		assert.NoError(t, ValidateCollection(c))
	}
	for _, c := range []string{"", "queue", "users", "Entries"} {
		assert.ErrorIs(t, ValidateCollection(c), ErrUnknownCollection)
	}
}

func TestPayloadID(t *testing.T) {
	id, err := PayloadID(map[string]any{"id": "abc-123"})
	require.NoError(t, err)
	assert.Equal(t, "abc-123", id)

	tests := []struct {
		payload map[string]any
		name    string
	}{
		{name: "missing", payload: map[string]any{"title": "x"}},
		{name: "not a string", payload: map[string]any{"id": 42.0}},
		{name: "blank", payload: map[string]any{"id": "  "}},
		{name: "slash", payload: map[string]any{"id": "a/b"}},
		{name: "too long", payload: map[string]any{"id": strings.Repeat("x", 129)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := PayloadID(tt.payload)
			assert.ErrorIs(t, err, ErrInvalidRecordID)
		})
	}
}
