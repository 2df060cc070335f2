package retry

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/url"
	"strings"
	"syscall"
)

// TransientCode классифицирует транспортные сбои, которые имеет смысл повторить
type TransientCode string

const (
	CodeNone            TransientCode = ""
	CodeConnectionReset TransientCode = "connection_reset"
	CodeTimeout         TransientCode = "timeout"
	CodeNetwork         TransientCode = "network"
)

// RemoteError is the tagged error produced by remote backend calls.
// HTTPStatus is zero when no response was received.
type RemoteError struct {
	Err        error
	Code       TransientCode
	Message    string
	HTTPStatus int
}

func (e *RemoteError) Error() string {
	switch {
	case e.HTTPStatus != 0 && e.Message != "":
		return fmt.Sprintf("remote error (%d): %s", e.HTTPStatus, e.Message)
	case e.HTTPStatus != 0:
		return fmt.Sprintf("remote error (%d)", e.HTTPStatus)
	case e.Message != "":
		return e.Message
	case e.Err != nil:
		return e.Err.Error()
	case e.Code != CodeNone:
		return "remote error: " + string(e.Code)
	}
	return "remote error"
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

// NewStatusError creates a RemoteError for a non-2xx response.
func NewStatusError(status int, message string) *RemoteError {
	return &RemoteError{HTTPStatus: status, Message: message}
}

// NewTransportError wraps a transport failure (no response) and tags it with
// the matching transient code.
func NewTransportError(err error) *RemoteError {
	return &RemoteError{Err: err, Code: TransientCodeOf(err)}
}

// TransientCodeOf maps a transport error to a transient code.
func TransientCodeOf(err error) TransientCode {
	if err == nil {
		return CodeNone
	}
	if errors.Is(err, syscall.ECONNRESET) || errors.Is(err, syscall.ECONNABORTED) || errors.Is(err, syscall.EPIPE) {
		return CodeConnectionReset
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, syscall.ETIMEDOUT) {
		return CodeTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return CodeTimeout
	}
	return CodeNetwork
}

type permanentError struct {
	cause error
}

func (e permanentError) Error() string {
	if e.cause == nil {
		return "permanent error"
	}
	return e.cause.Error()
}

func (e permanentError) Unwrap() error {
	return e.cause
}

// Permanent marks an error as non-retryable regardless of its other markers.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return permanentError{cause: err}
}

// IsPermanent reports whether err was explicitly marked as non-retryable.
func IsPermanent(err error) bool {
	var target permanentError
	return errors.As(err, &target)
}

// transientSubstrings сравниваются с сообщением ошибки с учетом регистра
var transientSubstrings = []string{"network", "timeout", "connection"}

// IsRetryable is the default classifier. An error is retryable when it is a
// network failure, carries status 429 or 5xx, carries a transient connection
// code, or its message contains "network", "timeout" or "connection".
func IsRetryable(err error) bool {
	if err == nil || IsPermanent(err) {
		return false
	}

	var remote *RemoteError
	if errors.As(err, &remote) {
		// Ответ сервера получен: решает только статус
		if remote.HTTPStatus != 0 {
			return remote.HTTPStatus == 429 || (remote.HTTPStatus >= 500 && remote.HTTPStatus <= 599)
		}
		if remote.Code != CodeNone {
			return true
		}
	}

	if isNetworkFailure(err) {
		return true
	}

	msg := err.Error()
	for _, s := range transientSubstrings {
		if strings.Contains(msg, s) {
			return true
		}
	}
	return false
}

// isNetworkFailure распознает ошибки транспорта без ответа сервера
func isNetworkFailure(err error) bool {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return true
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	return errors.Is(err, io.ErrUnexpectedEOF) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, context.DeadlineExceeded)
}
