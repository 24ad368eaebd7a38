// Copyright (c) 2025 Quillbox
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quillbox/cli/internal/manifest"
)

var testEndpoints = manifest.HTTPEndpoints{
	Login:      "/api/auth/login",
	Logout:     "/api/auth/logout",
	LoginCheck: "/api/auth/login-check",
	Version:    "/api/version",
}

func TestLoginSendsCredentialsAndReadsHeaderToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "a", body["username"])
		assert.Equal(t, "p", body["password"])

		w.Header().Set(AccessTokenHeader, "T1")
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id": 1, "username": "a", "loggedIn": true,
		})
	}))
	defer srv.Close()

	h := newHTTP(srv.URL, testEndpoints)
	reply, err := h.Login(context.Background(), "a", "p")
	require.NoError(t, err)

	assert.Equal(t, "T1", reply.Token)
	assert.Equal(t, int64(1), reply.User.ID)
	assert.Equal(t, "a", reply.User.Username)
	assert.True(t, reply.User.LoggedIn)
}

func TestLoginNonOKStatusIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
	}))
	defer srv.Close()

	h := newHTTP(srv.URL, testEndpoints)
	_, err := h.Login(context.Background(), "a", "wrong")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
	assert.Contains(t, err.Error(), "invalid credentials")
}

func TestLogoutAttachesCallerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/logout", r.URL.Path)
		assert.Equal(t, "T1", r.Header.Get(AccessTokenHeader))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"loggedIn": false})
	}))
	defer srv.Close()

	h := newHTTP(srv.URL, testEndpoints)
	reply, err := h.Logout(context.Background(), "T1")
	require.NoError(t, err)
	assert.False(t, reply.LoggedIn)
}

func TestLoginCheckOmitsHeaderWithoutToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/login-check", r.URL.Path)

		_, present := r.Header[http.CanonicalHeaderKey(AccessTokenHeader)]
		assert.False(t, present, "no credential header may be sent without a token")

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"loggedIn": false})
	}))
	defer srv.Close()

	h := newHTTP(srv.URL, testEndpoints)
	reply, err := h.LoginCheck(context.Background(), "")
	require.NoError(t, err)
	assert.False(t, reply.LoggedIn)
	assert.Empty(t, reply.Token)
}

func TestLoginCheckReturnsRefreshedToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "T1", r.Header.Get(AccessTokenHeader))

		w.Header().Set(AccessTokenHeader, "T2")
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"loggedIn": true})
	}))
	defer srv.Close()

	h := newHTTP(srv.URL, testEndpoints)
	reply, err := h.LoginCheck(context.Background(), "T1")
	require.NoError(t, err)
	assert.True(t, reply.LoggedIn)
	assert.Equal(t, "T2", reply.Token)
}

func TestLoginCheckCancelledContext(t *testing.T) {
	started := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// The request context is only cancelled once the body is consumed;
		// the server's disconnect detection waits for the body read.
		_, _ = io.Copy(io.Discard, r.Body)
		close(started)
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-started
		cancel()
	}()

	h := newHTTP(srv.URL, testEndpoints)
	_, err := h.LoginCheck(ctx, "T1")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGetVersion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/version", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"version": "1.4.0"})
	}))
	defer srv.Close()

	h := newHTTP(srv.URL, testEndpoints)
	v, err := h.GetVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1.4.0", v)
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{name: "standard bearer", value: "Bearer abc123", want: "abc123"},
		{name: "lowercase scheme", value: "bearer abc123", want: "abc123"},
		{name: "extra whitespace", value: "  Bearer   abc123  ", want: "abc123"},
		{name: "missing token", value: "Bearer ", want: ""},
		{name: "wrong scheme", value: "Basic abc123", want: ""},
		{name: "empty", value: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseBearerToken(tt.value))
		})
	}
}
