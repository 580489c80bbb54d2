package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
)

// ErrorCode classifies failures of host-runtime calls and the settings store
type ErrorCode int

const (
	ErrCodeUnknown ErrorCode = iota
	ErrCodePathResolution
	ErrCodeWindowState
	ErrCodeDialog
	ErrCodeScope
	ErrCodeSpawn
	ErrCodeNotAllowed
	ErrCodeTimeout
	ErrCodeConnection
	ErrCodeBusy
	ErrCodeCorruption
	ErrCodePermission
	ErrCodeDiskSpace
	ErrCodeSchema
	ErrCodeValidation
	ErrCodeInternal
)

// String returns a string representation of the error code
func (e ErrorCode) String() string {
	switch e {
	case ErrCodePathResolution:
		return "PATH_RESOLUTION"
	case ErrCodeWindowState:
		return "WINDOW_STATE"
	case ErrCodeDialog:
		return "DIALOG"
	case ErrCodeScope:
		return "SCOPE"
	case ErrCodeSpawn:
		return "SPAWN"
	case ErrCodeNotAllowed:
		return "NOT_ALLOWED"
	case ErrCodeTimeout:
		return "TIMEOUT"
	case ErrCodeConnection:
		return "CONNECTION"
	case ErrCodeBusy:
		return "BUSY"
	case ErrCodeCorruption:
		return "CORRUPTION"
	case ErrCodePermission:
		return "PERMISSION"
	case ErrCodeDiskSpace:
		return "DISK_SPACE"
	case ErrCodeSchema:
		return "SCHEMA"
	case ErrCodeValidation:
		return "VALIDATION"
	case ErrCodeInternal:
		return "INTERNAL"
	default:
		return "UNKNOWN"
	}
}

// HostError represents a failed host-runtime or store operation with context
// and retry information
type HostError struct {
	Op        string            // operation name
	Err       error             // underlying error
	Code      ErrorCode         // error classification
	Retryable bool              // whether the error is retryable
	Context   map[string]string // additional context information
	Timestamp time.Time         // when the error occurred
}

func (e *HostError) Error() string {
	// Guard against nil receiver
	if e == nil {
		return "host error"
	}

	var parts []string

	if e.Op != "" {
		parts = append(parts, fmt.Sprintf("op=%s", e.Op))
	}

	if e.Code != ErrCodeUnknown {
		parts = append(parts, fmt.Sprintf("code=%s", e.Code.String()))
	}

	if e.Retryable {
		parts = append(parts, "retryable=true")
	}

	// Context in deterministic key order
	if len(e.Context) > 0 {
		keys := make([]string, 0, len(e.Context))
		for k := range e.Context {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, k := range keys {
			parts = append(parts, fmt.Sprintf("%s=%s", k, e.Context[k]))
		}
	}

	contextStr := ""
	if len(parts) > 0 {
		contextStr = fmt.Sprintf(" [%s]", strings.Join(parts, " "))
	}

	if e.Err != nil {
		return e.Err.Error() + contextStr
	}
	return "host error" + contextStr
}

func (e *HostError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is implements error matching for errors.Is
func (e *HostError) Is(target error) bool {
	if e == nil {
		return false
	}
	if t, ok := target.(*HostError); ok {
		return e.Code == t.Code
	}
	if e.Err != nil {
		return errors.Is(e.Err, target)
	}
	return false
}

// IsRetryable returns whether the error is retryable
func (e *HostError) IsRetryable() bool {
	if e == nil {
		return false
	}
	return e.Retryable
}

// GetCode returns the error code as a string (for logging interface compatibility)
func (e *HostError) GetCode() string {
	if e == nil {
		return ErrCodeUnknown.String()
	}
	return e.Code.String()
}

// GetContext returns the error context (for logging interface compatibility)
func (e *HostError) GetContext() map[string]string {
	if e == nil || e.Context == nil {
		return make(map[string]string)
	}
	return e.Context
}

// GetTimestamp returns the error timestamp (for logging interface compatibility)
func (e *HostError) GetTimestamp() time.Time {
	if e == nil {
		return time.Time{}
	}
	return e.Timestamp
}

// WithContext adds context information to the error by mutating the receiver.
// Not safe once the error has been shared between goroutines; use
// NewHostErrorWithContext for that case.
func (e *HostError) WithContext(key, value string) *HostError {
	if e.Context == nil {
		e.Context = make(map[string]string)
	}
	e.Context[key] = value
	return e
}

// NewHostError creates a new host error with the given parameters
func NewHostError(op string, err error, code ErrorCode) *HostError {
	return &HostError{
		Op:        op,
		Err:       err,
		Code:      code,
		Retryable: isRetryableError(code, err),
		Context:   make(map[string]string),
		Timestamp: time.Now(),
	}
}

// NewHostErrorWithContext creates a new host error with additional context
func NewHostErrorWithContext(op string, err error, code ErrorCode, context map[string]string) *HostError {
	hostErr := NewHostError(op, err, code)
	if context != nil {
		// Clone so callers can keep mutating their map
		hostErr.Context = make(map[string]string, len(context))
		for k, v := range context {
			hostErr.Context[k] = v
		}
	}
	return hostErr
}

// isRetryableError determines if an error is retryable based on its classification
func isRetryableError(code ErrorCode, err error) bool {
	switch code {
	case ErrCodeConnection, ErrCodeTimeout, ErrCodeBusy:
		return true
	case ErrCodePathResolution, ErrCodeWindowState, ErrCodeDialog, ErrCodeScope,
		ErrCodeSpawn, ErrCodeNotAllowed, ErrCodeValidation, ErrCodePermission,
		ErrCodeCorruption, ErrCodeDiskSpace, ErrCodeSchema, ErrCodeInternal:
		return false
	default:
		// Unknown code: fall back to the underlying error message
		if err != nil {
			errStr := strings.ToLower(err.Error())
			return strings.Contains(errStr, "temporary") ||
				strings.Contains(errStr, "retry") ||
				strings.Contains(errStr, "busy") ||
				strings.Contains(errStr, "locked")
		}
		return false
	}
}

// IsScope checks if the error is a filesystem scope violation
func IsScope(err error) bool {
	var hostErr *HostError
	if errors.As(err, &hostErr) {
		return hostErr.Code == ErrCodeScope
	}
	return false
}

// IsNotAllowed checks if the error is a command-allowlist rejection
func IsNotAllowed(err error) bool {
	var hostErr *HostError
	if errors.As(err, &hostErr) {
		return hostErr.Code == ErrCodeNotAllowed
	}
	return false
}

// IsConnection checks if the error is a store connection error
func IsConnection(err error) bool {
	var hostErr *HostError
	if errors.As(err, &hostErr) {
		return hostErr.Code == ErrCodeConnection
	}
	return false
}

// IsTimeout checks if the error is a timeout error
func IsTimeout(err error) bool {
	var hostErr *HostError
	if errors.As(err, &hostErr) {
		return hostErr.Code == ErrCodeTimeout
	}
	return false
}

// IsRetryable checks if the error is retryable
func IsRetryable(err error) bool {
	var hostErr *HostError
	if errors.As(err, &hostErr) {
		return hostErr.Retryable
	}
	return false
}
