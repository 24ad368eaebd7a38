// Copyright (c) 2025 Quillbox
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Session snapshot persistence. CLI processes are short-lived, so the
// command layer persists a minimal snapshot to the OS keychain after
// successful operations; it is display-state only, never consulted by the
// controller's guards.

package session

import (
	"encoding/json"

	"quillbox/cli/internal/keychain"
)

// Snapshot is the persisted session snapshot for the current user.
type Snapshot struct {
	LoggedIn bool   `json:"logged_in"`
	Account  string `json:"account"`
}

// LoadSnapshot reads the snapshot from the keychain. Missing state yields
// the zero value.
func LoadSnapshot() (Snapshot, error) {
	var s Snapshot
	km, err := keychain.GetManager()
	if err != nil {
		return s, err
	}

	data, err := km.LoadSessionState()
	if err != nil {
		// Missing entries surface as backend-specific lookup errors.
		return s, nil
	}
	if len(data) == 0 {
		return s, nil
	}

	if err := json.Unmarshal(data, &s); err != nil {
		return s, err
	}
	return s, nil
}

// SaveSnapshot writes the snapshot to the keychain.
func SaveSnapshot(s Snapshot) error {
	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	km, err := keychain.GetManager()
	if err != nil {
		return err
	}
	return km.SaveSessionState(b)
}

// ClearSnapshot removes the snapshot from the keychain.
func ClearSnapshot() error {
	km, err := keychain.GetManager()
	if err != nil {
		return err
	}
	return km.ClearSessionState()
}
