// Package session manages client-side authentication session state for the CLI.
// It holds the single source of truth for "is this session authenticated",
// guards each session operation against overlapping in-flight requests, and
// drives the token lifecycle through the backend service and secure
// credential storage.
package session

import (
	"sync"

	"quillbox/cli/internal/backend"
)

// Busy tracks one in-flight flag per operation kind. The flags are fully
// independent of each other; register is reserved for the account-creation
// flow, which lives outside this package.
type Busy struct {
	Register   bool
	Login      bool
	LoginCheck bool
	Logout     bool
}

// State holds the current session data: the last-known authenticated user
// record, the authenticated flag, and the per-operation busy flags.
// It carries no business logic; only the Controller mutates it, while reads
// are allowed from anywhere. All methods are safe for concurrent use.
type State struct {
	mu       sync.RWMutex
	user     *backend.User
	loggedIn bool
	busy     Busy
}

// NewState returns a State with all fields at their defaults: no user,
// not authenticated, no operation busy.
func NewState() *State {
	return &State{}
}

// IsAuthenticated reports whether the server currently considers this
// session valid. The flag is only ever written from a server response.
func (s *State) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loggedIn
}

// User returns the last-known authenticated user record, or nil.
// After a successful logout the record may be stale; IsAuthenticated is the
// authority on session validity.
func (s *State) User() *backend.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// Busy returns a snapshot of the per-operation busy flags.
func (s *State) Busy() Busy {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.busy
}

// SetUser replaces the user record wholesale. Records are never merged.
func (s *State) SetUser(u *backend.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = u
}

// SetLoggedIn updates the authenticated flag from a server response.
func (s *State) SetLoggedIn(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loggedIn = v
}

// SetBusyRegister updates the register busy flag without touching the others.
func (s *State) SetBusyRegister(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.busy.Register = v
}

// BeginLogin atomically claims the login busy flag. It returns false when a
// login is already in flight or the session is already authenticated, in
// which case nothing was changed. The check and the flag write happen under
// one lock so concurrent callers cannot both pass the guard.
func (s *State) BeginLogin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.busy.Login || s.loggedIn {
		return false
	}
	s.busy.Login = true
	return true
}

// EndLogin releases the login busy flag.
func (s *State) EndLogin() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.busy.Login = false
}

// BeginLogout atomically claims the logout busy flag. It returns false only
// when a logout is already in flight; there is no already-logged-out
// suppression.
func (s *State) BeginLogout() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.busy.Logout {
		return false
	}
	s.busy.Logout = true
	return true
}

// EndLogout releases the logout busy flag.
func (s *State) EndLogout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.busy.Logout = false
}

// MarkLoginCheck sets or clears the login-check busy flag. Unlike login and
// logout there is no admission guard: overlapping checks are not prevented
// from starting, only their in-flight visibility is tracked.
func (s *State) MarkLoginCheck(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.busy.LoginCheck = v
}
