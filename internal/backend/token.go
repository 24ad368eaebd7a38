// Copyright (c) 2025 Quillbox
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

import (
	"net/http"
	"strings"
)

// AccessTokenHeader is the header the auth service uses to carry the bearer
// credential on both requests and responses.
const AccessTokenHeader = "access-token"

// parseBearerToken extracts token from a value like "Bearer <token>" case-insensitively.
// Returns the token string without the "Bearer " prefix, or empty string if invalid format.
func parseBearerToken(value string) string {
	v := strings.TrimSpace(value)
	if len(v) < 7 {
		return ""
	}
	// case-insensitive prefix match
	if strings.EqualFold(v[0:6], "bearer") {
		rest := strings.TrimSpace(v[6:])
		if rest != "" {
			return rest
		}
	}
	return ""
}

// tokenFromHeaders extracts the issued bearer credential from a response.
// The service sends it in the access-token header; an Authorization header
// with a Bearer scheme is accepted as a fallback.
func tokenFromHeaders(h http.Header) string {
	if t := strings.TrimSpace(h.Get(AccessTokenHeader)); t != "" {
		return t
	}
	if t := parseBearerToken(h.Get("Authorization")); t != "" {
		return t
	}
	return ""
}
