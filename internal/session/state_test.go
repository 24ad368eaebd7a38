// Copyright (c) 2025 Quillbox
// Licensed under the MIT License. See LICENSE file in the project root for details.

package session

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"quillbox/cli/internal/backend"
)

func TestNewStateDefaults(t *testing.T) {
	s := NewState()

	assert.False(t, s.IsAuthenticated())
	assert.Nil(t, s.User())
	assert.Equal(t, Busy{}, s.Busy())
}

func TestBusyFlagsAreIndependent(t *testing.T) {
	s := NewState()

	assert.True(t, s.BeginLogin())
	s.MarkLoginCheck(true)
	s.SetBusyRegister(true)

	busy := s.Busy()
	assert.True(t, busy.Login)
	assert.True(t, busy.LoginCheck)
	assert.True(t, busy.Register)
	assert.False(t, busy.Logout)

	s.EndLogin()
	busy = s.Busy()
	assert.False(t, busy.Login)
	assert.True(t, busy.LoginCheck, "ending login must not touch other flags")
	assert.True(t, busy.Register)
}

func TestBeginLoginGuards(t *testing.T) {
	s := NewState()

	assert.True(t, s.BeginLogin())
	assert.False(t, s.BeginLogin(), "second claim while busy must fail")
	s.EndLogin()
	assert.True(t, s.BeginLogin(), "claim succeeds again after release")
	s.EndLogin()

	s.SetLoggedIn(true)
	assert.False(t, s.BeginLogin(), "already-authenticated suppresses login")
	assert.False(t, s.Busy().Login, "failed claim leaves no busy flag behind")
}

func TestBeginLogoutGuardsOnBusyOnly(t *testing.T) {
	s := NewState()

	// Not authenticated: logout is still admitted.
	assert.True(t, s.BeginLogout())
	assert.False(t, s.BeginLogout())
	s.EndLogout()
	assert.True(t, s.BeginLogout())
}

func TestSetUserReplacesWholesale(t *testing.T) {
	s := NewState()
	s.SetUser(&backend.User{ID: 1, Username: "a", Email: "a@example.com"})
	s.SetUser(&backend.User{ID: 2, Username: "b"})

	u := s.User()
	assert.Equal(t, int64(2), u.ID)
	assert.Equal(t, "b", u.Username)
	assert.Empty(t, u.Email, "records are replaced, never merged")
}
