// Copyright (c) 2025 Quillbox
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package manifest handles dynamic backend endpoint configuration.
package manifest

import (
	"net/url"
	"strings"
)

// Manifest represents the endpoint configuration from the server.
type Manifest struct {
	Version int           `json:"version"`
	API     APIEndpoints  `json:"api"`
	HTTP    HTTPEndpoints `json:"http"`
}

// APIEndpoints identifies where the REST API is hosted.
type APIEndpoints struct {
	Origin string `json:"origin"` // Full URL with scheme (e.g., "https://quillbox.app")
}

// HTTPEndpoints contains REST API endpoint paths.
type HTTPEndpoints struct {
	Login      string `json:"auth_login"`       // e.g., "/api/auth/login"
	Logout     string `json:"auth_logout"`      // e.g., "/api/auth/logout"
	LoginCheck string `json:"auth_login_check"` // e.g., "/api/auth/login-check"
	Health     string `json:"health"`           // e.g., "/api/health"
	Version    string `json:"version"`          // e.g., "/api/version"
}

// HTTPBaseURL returns the API origin without a trailing slash.
func (m *Manifest) HTTPBaseURL() string {
	u, err := url.Parse(m.API.Origin)
	if err != nil {
		return ""
	}

	base := u.Scheme + "://" + u.Host
	return strings.TrimRight(base, "/")
}
