package testutils

import "testing"

// recordingT captures Errorf calls without failing the real test
type recordingT struct {
	errors []string
}

func (r *recordingT) Errorf(format string, args ...any) {
	r.errors = append(r.errors, format)
}

func TestFieldsToMapWellFormed(t *testing.T) {
	rec := &recordingT{}
	result := FieldsToMap(rec, []any{"a", 1, "b", "two"})

	if len(rec.errors) != 0 {
		t.Errorf("unexpected errors: %v", rec.errors)
	}
	if result["a"] != 1 {
		t.Errorf("a = %v, want 1", result["a"])
	}
	if result["b"] != "two" {
		t.Errorf("b = %v, want two", result["b"])
	}
}

func TestFieldsToMapMissingValue(t *testing.T) {
	rec := &recordingT{}
	result := FieldsToMap(rec, []any{"a", 1, "dangling"})

	if len(rec.errors) != 1 {
		t.Errorf("errors reported = %d, want 1", len(rec.errors))
	}
	if _, ok := result["dangling"]; ok {
		t.Error("dangling key stored despite missing value")
	}
	if result["a"] != 1 {
		t.Errorf("a = %v, want 1", result["a"])
	}
}

func TestFieldsToMapNonStringKey(t *testing.T) {
	rec := &recordingT{}
	result := FieldsToMap(rec, []any{42, "value", "ok", true})

	if len(rec.errors) != 1 {
		t.Errorf("errors reported = %d, want 1", len(rec.errors))
	}
	if result["ok"] != true {
		t.Errorf("ok = %v, want true", result["ok"])
	}
}

func TestFieldsToMapEmpty(t *testing.T) {
	rec := &recordingT{}
	result := FieldsToMap(rec, nil)

	if len(result) != 0 {
		t.Errorf("result = %v, want empty map", result)
	}
	if len(rec.errors) != 0 {
		t.Errorf("unexpected errors: %v", rec.errors)
	}
}
