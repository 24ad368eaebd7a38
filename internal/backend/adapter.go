// Copyright (c) 2025 Quillbox
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package backend provides interfaces and implementations for communicating with the Quillbox auth service.
// It defines the API contract for session operations and version checking.
// The package includes both interface definitions and HTTP-based implementations.
package backend

import "context"

// User is the authenticated-user record returned by the auth service.
// The login and login-check bodies share this shape; the session layer
// replaces its copy wholesale on every successful response.
type User struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"displayName,omitempty"`
	Email       string `json:"email,omitempty"`
	LoggedIn    bool   `json:"loggedIn"`
}

// LoginReply carries the login response body plus the bearer credential
// issued in the response headers.
type LoginReply struct {
	User  *User
	Token string
}

// LogoutReply is the logout response body.
type LogoutReply struct {
	LoggedIn bool `json:"loggedIn"`
}

// CheckReply carries the login-check response body plus an optional
// refreshed bearer credential from the response headers.
type CheckReply struct {
	LoggedIn bool `json:"loggedIn"`
	Token    string
}

// API defines backend operations the CLI depends on.
// Implementations may call real HTTP endpoints or provide mocks for tests.
type API interface {
	GetVersion(ctx context.Context) (string, error)
	// Login submits credentials and returns the user record and issued token.
	Login(ctx context.Context, username, password string) (*LoginReply, error)
	// Logout invalidates the given token on the backend. The token travels in
	// the request header; an empty token sends no credential.
	Logout(ctx context.Context, token string) (*LogoutReply, error)
	// LoginCheck validates session state with the backend. A non-empty token
	// is attached as a request header; the reply may carry a refreshed token.
	LoginCheck(ctx context.Context, token string) (*CheckReply, error)
}
