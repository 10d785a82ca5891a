package session

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"
)

// KeyringService is the service name refresh tokens are stored under.
const KeyringService = "wellness-hub"

// Vault keeps the refresh token outside the session cache.
type Vault interface {
	Get() (string, error)
	Set(token string) error
	Delete() error
}

// KeyringVault stores the refresh token in the OS keyring, one entry per
// server address.
type KeyringVault struct {
	user string
}

func NewKeyringVault(server string) *KeyringVault {
	return &KeyringVault{user: server}
}

// Get returns "" when no token is stored.
func (v *KeyringVault) Get() (string, error) {
	token, err := keyring.Get(KeyringService, v.user)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("keyring get: %w", err)
	}
	return token, nil
}

func (v *KeyringVault) Set(token string) error {
	if err := keyring.Set(KeyringService, v.user, token); err != nil {
		return fmt.Errorf("keyring set: %w", err)
	}
	return nil
}

func (v *KeyringVault) Delete() error {
	err := keyring.Delete(KeyringService, v.user)
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("keyring delete: %w", err)
	}
	return nil
}
