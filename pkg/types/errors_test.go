package types

import (
	"errors"
	"strings"
	"testing"
)

func TestValidationError(t *testing.T) {
	t.Run("no violations yields nil", func(t *testing.T) {
		verr := &ValidationError{}
		if verr.Err() != nil {
			t.Fatal("expected nil error for empty violation set")
		}
	})

	t.Run("message names every violation", func(t *testing.T) {
		verr := &ValidationError{}
		verr.Add("f1", "Name is required")
		verr.Add("f2", "Price is required")

		err := verr.Err()
		if err == nil {
			t.Fatal("expected an error")
		}
		msg := err.Error()
		if !strings.Contains(msg, "Name is required") || !strings.Contains(msg, "Price is required") {
			t.Fatalf("expected both violations in message, got %q", msg)
		}
	})

	t.Run("errors.As recovers the violation set", func(t *testing.T) {
		verr := &ValidationError{}
		verr.Add("f1", "bad")

		var target *ValidationError
		if !errors.As(verr.Err(), &target) {
			t.Fatal("expected errors.As to match")
		}
		if len(target.Violations) != 1 {
			t.Fatalf("expected 1 violation, got %d", len(target.Violations))
		}
	})
}
