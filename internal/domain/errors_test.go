package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidationError_Is(t *testing.T) {
	t.Parallel()

	verr := &ValidationError{}
	verr.Add("stages[0].primary[1].type", "unknown command type \"hover\"")

	wrapped := fmt.Errorf("build routine: %w", verr)
	if !errors.Is(wrapped, ErrValidation) {
		t.Errorf("errors.Is(wrapped, ErrValidation) = false, want true")
	}

	var target *ValidationError
	if !errors.As(wrapped, &target) {
		t.Fatalf("errors.As(wrapped, *ValidationError) = false, want true")
	}
	if got := len(target.Fields); got != 1 {
		t.Errorf("len(Fields) = %d, want 1", got)
	}
}

func TestValidationError_OrNil(t *testing.T) {
	t.Parallel()

	var empty ValidationError
	if err := empty.OrNil(); err != nil {
		t.Errorf("empty.OrNil() = %v, want nil", err)
	}

	var nilErr *ValidationError
	if err := nilErr.OrNil(); err != nil {
		t.Errorf("nil.OrNil() = %v, want nil", err)
	}

	var filled ValidationError
	filled.Add("speed", "must be in (0, 1]")
	if err := filled.OrNil(); err == nil {
		t.Error("filled.OrNil() = nil, want error")
	}
}

func TestValidationError_ErrorIsSorted(t *testing.T) {
	t.Parallel()

	verr := &ValidationError{Fields: map[string]string{
		"b": "second",
		"a": "first",
	}}

	want := "validation error: a: first; b: second"
	if got := verr.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
