// ABOUTME: Tests for clipboard writes with a stubbed platform primitive
// ABOUTME: Verifies pass-through, error wrapping, and restoration

package clipboard

import (
	"errors"
	"testing"
)

func TestWrite_UsesPrimitive(t *testing.T) {
	orig := WriteFunc
	defer func() { WriteFunc = orig }()

	var got string
	WriteFunc = func(s string) error {
		got = s
		return nil
	}

	if err := Write("hello"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "hello" {
		t.Errorf("primitive received %q, want %q", got, "hello")
	}
}

func TestWrite_WrapsError(t *testing.T) {
	orig := WriteFunc
	defer func() { WriteFunc = orig }()

	sentinel := errors.New("no backend")
	WriteFunc = func(string) error { return sentinel }

	err := Write("x")
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, sentinel) {
		t.Errorf("expected wrapped sentinel, got %v", err)
	}
}
