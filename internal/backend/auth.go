// Copyright (c) 2025 Quillbox
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Login calls POST {login} with {username, password} as the JSON body.
// On success the issued bearer credential is read from the response headers
// and returned alongside the decoded user record.
func (h *HTTP) Login(ctx context.Context, username, password string) (*LoginReply, error) {
	body := map[string]string{
		"username": username,
		"password": password,
	}
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.baseURL+h.endpoints.Login, bytes.NewReader(jsonBody))
	if err != nil {
		return nil, err
	}
	h.setStandardHeaders(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, statusError("login", resp)
	}

	var user User
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, err
	}

	return &LoginReply{
		User:  &user,
		Token: tokenFromHeaders(resp.Header),
	}, nil
}

// Logout calls POST {logout} with an empty JSON body.
// The caller-supplied token travels in the access-token request header.
func (h *HTTP) Logout(ctx context.Context, token string) (*LogoutReply, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.baseURL+h.endpoints.Logout, strings.NewReader("{}"))
	if err != nil {
		return nil, err
	}
	h.setStandardHeaders(req)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set(AccessTokenHeader, token)
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, statusError("logout", resp)
	}

	var out LogoutReply
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

// LoginCheck calls POST {login-check} with an empty JSON body.
// A non-empty token is attached as the access-token request header; with no
// token the request carries whatever ambient credential the transport layer
// supplies (cookies). A refreshed credential may come back in the headers.
func (h *HTTP) LoginCheck(ctx context.Context, token string) (*CheckReply, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.baseURL+h.endpoints.LoginCheck, strings.NewReader("{}"))
	if err != nil {
		return nil, err
	}
	h.setStandardHeaders(req)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set(AccessTokenHeader, token)
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, statusError("login-check", resp)
	}

	var out CheckReply
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	out.Token = tokenFromHeaders(resp.Header)
	return &out, nil
}

// statusError turns a non-OK response into an error carrying the status code
// and the trimmed body text for diagnostics.
func statusError(op string, resp *http.Response) error {
	b, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
	msg := strings.TrimSpace(string(b))
	if msg == "" {
		return fmt.Errorf("%s failed: status %d", op, resp.StatusCode)
	}
	return fmt.Errorf("%s failed: status %d: %s", op, resp.StatusCode, msg)
}
