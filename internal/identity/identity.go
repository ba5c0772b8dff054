// Package identity resolves the signed-in principal. The principal is an
// opaque external identifier; storage maps it to an internal user id.
package identity

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"

	"github.com/julianstephens/offscreen/internal/constants"
)

const keyringAccount = "current-principal"

// ErrNoPrincipal is returned when no one is signed in. Commands that need a
// user surface this before any calculation runs.
var ErrNoPrincipal = errors.New("not signed in, run 'offscreen login' first")

// Provider supplies the current authenticated principal.
type Provider interface {
	Current() (string, error)
	SetCurrent(principal string) error
	Clear() error
}

// KeyringProvider stores the principal in the OS keyring.
type KeyringProvider struct{}

func NewKeyringProvider() *KeyringProvider {
	return &KeyringProvider{}
}

func (p *KeyringProvider) Current() (string, error) {
	principal, err := keyring.Get(constants.AppName, keyringAccount)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", ErrNoPrincipal
		}
		return "", fmt.Errorf("failed to read principal from keyring: %w", err)
	}
	if principal == "" {
		return "", ErrNoPrincipal
	}
	return principal, nil
}

func (p *KeyringProvider) SetCurrent(principal string) error {
	if principal == "" {
		return fmt.Errorf("principal cannot be empty")
	}
	if err := keyring.Set(constants.AppName, keyringAccount, principal); err != nil {
		return fmt.Errorf("failed to store principal in keyring: %w", err)
	}
	return nil
}

func (p *KeyringProvider) Clear() error {
	err := keyring.Delete(constants.AppName, keyringAccount)
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("failed to clear principal from keyring: %w", err)
	}
	return nil
}
