package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidationError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := NewValidationError("number", "must be exactly 6 characters")
		want := "validation: number: must be exactly 6 characters"
		if err.Error() != want {
			t.Errorf("Error() = %q; want %q", err.Error(), want)
		}
	})

	t.Run("matches ErrInvalidInput", func(t *testing.T) {
		err := NewValidationError("number", "not a digit")
		if !errors.Is(err, ErrInvalidInput) {
			t.Error("ValidationError should match ErrInvalidInput")
		}
		if !IsInvalidInput(err) {
			t.Error("IsInvalidInput should be true for ValidationError")
		}
	})

	t.Run("matches through wrapping", func(t *testing.T) {
		err := fmt.Errorf("encrypting: %w", NewValidationError("number", "too short"))
		if !IsInvalidInput(err) {
			t.Error("wrapped ValidationError should still match ErrInvalidInput")
		}

		var verr *ValidationError
		if !As(err, &verr) {
			t.Fatal("As should find the ValidationError")
		}
		if verr.Field != "number" {
			t.Errorf("Field = %q; want %q", verr.Field, "number")
		}
	})
}

func TestWrap(t *testing.T) {
	t.Run("nil error", func(t *testing.T) {
		if Wrap(nil, "context") != nil {
			t.Error("Wrap(nil) should return nil")
		}
	})

	t.Run("adds context", func(t *testing.T) {
		err := Wrap(ErrInvalidInput, "parsing entry")
		if err.Error() != "parsing entry: invalid input" {
			t.Errorf("unexpected message: %q", err.Error())
		}
		if !Is(err, ErrInvalidInput) {
			t.Error("wrapped error should match the sentinel")
		}
	})
}

func TestIsInvalidInput(t *testing.T) {
	if IsInvalidInput(nil) {
		t.Error("nil is not invalid input")
	}
	if IsInvalidInput(errors.New("other")) {
		t.Error("unrelated errors should not match")
	}
	if !IsInvalidInput(ErrInvalidInput) {
		t.Error("sentinel should match itself")
	}
}
