package errors

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"github.com/mattn/go-sqlite3"
)

func TestClassifySQLiteDriverErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{"busy", sqlite3.Error{Code: sqlite3.ErrBusy}, ErrCodeBusy},
		{"locked", sqlite3.Error{Code: sqlite3.ErrLocked}, ErrCodeBusy},
		{"corrupt", sqlite3.Error{Code: sqlite3.ErrCorrupt}, ErrCodeCorruption},
		{"not a db", sqlite3.Error{Code: sqlite3.ErrNotADB}, ErrCodeCorruption},
		{"readonly", sqlite3.Error{Code: sqlite3.ErrReadonly}, ErrCodePermission},
		{"cantopen", sqlite3.Error{Code: sqlite3.ErrCantOpen}, ErrCodeConnection},
		{"ioerr", sqlite3.Error{Code: sqlite3.ErrIoErr}, ErrCodeConnection},
		{"full", sqlite3.Error{Code: sqlite3.ErrFull}, ErrCodeDiskSpace},
		{"schema", sqlite3.Error{Code: sqlite3.ErrSchema}, ErrCodeSchema},
		{"misuse", sqlite3.Error{Code: sqlite3.ErrMisuse}, ErrCodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyStoreError(tt.err); got != tt.want {
				t.Errorf("ClassifyStoreError() = %s, want %s", got.String(), tt.want.String())
			}
		})
	}
}

func TestClassifyStandardErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{"deadline", context.DeadlineExceeded, ErrCodeTimeout},
		{"cancelled", context.Canceled, ErrCodeTimeout},
		{"no rows", sql.ErrNoRows, ErrCodeValidation},
		{"nil", nil, ErrCodeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyStoreError(tt.err); got != tt.want {
				t.Errorf("ClassifyStoreError() = %s, want %s", got.String(), tt.want.String())
			}
		})
	}
}

func TestClassifyByMessageFallback(t *testing.T) {
	tests := []struct {
		msg  string
		want ErrorCode
	}{
		{"database is locked", ErrCodeBusy},
		{"database disk image is malformed", ErrCodeCorruption},
		{"no such table: window_state", ErrCodeSchema},
		{"permission denied", ErrCodePermission},
		{"no space left on device", ErrCodeDiskSpace},
		{"unable to open database file", ErrCodeConnection},
		{"something else entirely", ErrCodeUnknown},
	}

	for _, tt := range tests {
		if got := ClassifyStoreError(fmt.Errorf("%s", tt.msg)); got != tt.want {
			t.Errorf("ClassifyStoreError(%q) = %s, want %s", tt.msg, got.String(), tt.want.String())
		}
	}
}

func TestNewStoreErrorCarriesClassification(t *testing.T) {
	err := NewStoreError("Save", sqlite3.Error{Code: sqlite3.ErrBusy})
	if err.Code != ErrCodeBusy {
		t.Errorf("NewStoreError() code = %s, want BUSY", err.GetCode())
	}
	if !err.IsRetryable() {
		t.Error("busy store error should be retryable")
	}
	if err.Op != "Save" {
		t.Errorf("NewStoreError() op = %q, want %q", err.Op, "Save")
	}
}
