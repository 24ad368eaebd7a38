// Copyright (c) 2025 Quillbox
// Licensed under the MIT License. See LICENSE file in the project root for details.

package session

import (
	"context"
	"errors"

	"quillbox/cli/internal/backend"
	qerrors "quillbox/cli/internal/errors"
)

// TokenStore is the durable bearer-credential store the controller writes
// to on success paths. internal/secure provides the keychain-backed
// implementation; tests inject an in-memory one.
type TokenStore interface {
	SetToken(value string) error
	UnsetToken() error
}

// LoginPayload carries the credentials for a login request.
type LoginPayload struct {
	Username string
	Password string
}

// LogoutPayload carries the caller-supplied bearer token to invalidate.
// The token is sent as a request header, not read from the token store.
type LogoutPayload struct {
	Token string
}

// CheckPayload optionally carries a bearer token for a login check.
// With no token the request relies on whatever ambient credential the
// transport layer supplies.
type CheckPayload struct {
	Token string
}

// Controller exposes the three session operations. Each one follows the same
// skeleton: guard check, mark busy, perform the network call, update state
// from the response, clear busy on every exit path, and report the outcome.
//
// Suppressed invocations (guard not passed) return ok=false with a nil error:
// declining to run is not a failure. Transport failures are wrapped with a
// kind the caller can branch on while keeping the original cause.
type Controller struct {
	state   *State
	be      backend.API
	tokens  TokenStore
	cancels cancelRegistry
}

// NewController wires a Controller to its injected collaborators.
func NewController(state *State, be backend.API, tokens TokenStore) *Controller {
	return &Controller{
		state:  state,
		be:     be,
		tokens: tokens,
	}
}

// State returns the session state this controller mutates.
func (c *Controller) State() *State {
	return c.state
}

// Cancel aborts the in-flight request that was started with the given
// payload, if any. The aborted operation observes a cancellation failure and
// still clears its busy flag. Reports whether a request was found.
func (c *Controller) Cancel(payload any) bool {
	return c.cancels.cancel(payload)
}

// Login submits credentials to the auth service.
//
// It is suppressed (ok=false, no network call, no state change) while another
// login is in flight or the session is already authenticated. On success the
// issued credential is persisted, the authenticated flag is set from the
// response, and the user record is replaced wholesale. On failure the state
// and stored credential are left exactly as they were.
func (c *Controller) Login(ctx context.Context, payload LoginPayload) (*backend.User, bool, error) {
	if !c.state.BeginLogin() {
		return nil, false, nil
	}
	defer c.state.EndLogin()

	ctx, release := c.cancels.bind(ctx, payload)
	defer release()

	reply, err := c.be.Login(ctx, payload.Username, payload.Password)
	if err != nil {
		return nil, true, wrapTransport("login request failed", err)
	}

	if reply.Token != "" {
		if err := c.tokens.SetToken(reply.Token); err != nil {
			return nil, true, qerrors.Wrap(qerrors.KeychainFailed, "store credential", err)
		}
	}
	c.state.SetLoggedIn(reply.User.LoggedIn)
	c.state.SetUser(reply.User)

	return reply.User, true, nil
}

// Logout invalidates the caller-supplied token on the auth service.
//
// It is suppressed (ok=false) only while another logout is in flight. Once a
// response arrives the stored credential is cleared unconditionally,
// whatever the response's loggedIn value; a failed request never clears it.
// The user record is deliberately left as-is, so it may read stale alongside
// IsAuthenticated()==false.
func (c *Controller) Logout(ctx context.Context, payload LogoutPayload) (*backend.LogoutReply, bool, error) {
	if !c.state.BeginLogout() {
		return nil, false, nil
	}
	defer c.state.EndLogout()

	ctx, release := c.cancels.bind(ctx, payload)
	defer release()

	reply, err := c.be.Logout(ctx, payload.Token)
	if err != nil {
		return nil, true, wrapTransport("logout request failed", err)
	}

	if err := c.tokens.UnsetToken(); err != nil {
		return nil, true, qerrors.Wrap(qerrors.KeychainFailed, "clear credential", err)
	}
	c.state.SetLoggedIn(reply.LoggedIn)

	return reply, true, nil
}

// LoginCheck validates session state with the auth service.
//
// There is no admission guard: overlapping checks are not prevented from
// starting, only tracked as busy while in flight. A refreshed credential in
// the response is persisted only when the check also reports a live session;
// the authenticated flag is set from the response either way.
func (c *Controller) LoginCheck(ctx context.Context, payload CheckPayload) (*backend.CheckReply, error) {
	c.state.MarkLoginCheck(true)
	defer c.state.MarkLoginCheck(false)

	ctx, release := c.cancels.bind(ctx, payload)
	defer release()

	reply, err := c.be.LoginCheck(ctx, payload.Token)
	if err != nil {
		return nil, wrapTransport("login check failed", err)
	}

	if reply.Token != "" && reply.LoggedIn {
		if err := c.tokens.SetToken(reply.Token); err != nil {
			return nil, qerrors.Wrap(qerrors.KeychainFailed, "store credential", err)
		}
	}
	c.state.SetLoggedIn(reply.LoggedIn)

	return reply, nil
}

// wrapTransport classifies a transport failure, distinguishing explicit
// cancellation from other causes. The original error stays reachable through
// errors.Is/As.
func wrapTransport(msg string, err error) error {
	if errors.Is(err, context.Canceled) {
		return qerrors.Wrap(qerrors.RequestCancelled, msg, err)
	}
	return qerrors.Wrap(qerrors.TransportFailed, msg, err)
}
