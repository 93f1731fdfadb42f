package apperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestCodeOf(t *testing.T) {
	err := New(CodeNotFound, "product not found")
	if CodeOf(err) != CodeNotFound {
		t.Fatalf("got %s", CodeOf(err))
	}
	// Plain errors default to internal.
	if CodeOf(errors.New("boom")) != CodeInternal {
		t.Fatalf("got %s", CodeOf(errors.New("boom")))
	}
	// Codes survive wrapping by callers.
	wrapped := fmt.Errorf("handler: %w", err)
	if !Is(wrapped, CodeNotFound) {
		t.Fatal("code lost through fmt.Errorf wrapping")
	}
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(CodeInternal, cause, "store unavailable")
	if !errors.Is(err, cause) {
		t.Fatal("cause not reachable through Unwrap")
	}
	if err.Error() != "store unavailable" {
		t.Fatalf("message = %q", err.Error())
	}
}
