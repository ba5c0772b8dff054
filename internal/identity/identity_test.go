package identity

import (
	"errors"
	"testing"

	gokeyring "github.com/zalando/go-keyring"
)

func TestSetAndGetCurrent(t *testing.T) {
	// Use mock keyring for testing
	gokeyring.MockInit()

	provider := NewKeyringProvider()

	if err := provider.SetCurrent("user-ext-123"); err != nil {
		t.Fatalf("SetCurrent() failed: %v", err)
	}

	principal, err := provider.Current()
	if err != nil {
		t.Fatalf("Current() failed: %v", err)
	}
	if principal != "user-ext-123" {
		t.Errorf("Current() = %q, want %q", principal, "user-ext-123")
	}
}

func TestSetCurrentEmpty(t *testing.T) {
	gokeyring.MockInit()

	provider := NewKeyringProvider()
	if err := provider.SetCurrent(""); err == nil {
		t.Error("SetCurrent(\"\") should return an error")
	}
}

func TestCurrentWhenSignedOut(t *testing.T) {
	gokeyring.MockInit()

	provider := NewKeyringProvider()
	_ = provider.Clear()

	_, err := provider.Current()
	if !errors.Is(err, ErrNoPrincipal) {
		t.Errorf("Current() error = %v, want ErrNoPrincipal", err)
	}
}

func TestClearIsIdempotent(t *testing.T) {
	gokeyring.MockInit()

	provider := NewKeyringProvider()
	if err := provider.SetCurrent("someone"); err != nil {
		t.Fatalf("SetCurrent() failed: %v", err)
	}

	if err := provider.Clear(); err != nil {
		t.Fatalf("Clear() failed: %v", err)
	}
	if err := provider.Clear(); err != nil {
		t.Errorf("Clear() on empty keyring failed: %v", err)
	}

	if _, err := provider.Current(); !errors.Is(err, ErrNoPrincipal) {
		t.Errorf("Current() after Clear() error = %v, want ErrNoPrincipal", err)
	}
}
