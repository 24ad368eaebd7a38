// Copyright (c) 2025 Quillbox
// Licensed under the MIT License. See LICENSE file in the project root for details.

package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quillbox/cli/internal/backend"
)

func TestServerInitRunsLoginCheckOnce(t *testing.T) {
	be := &fakeBackend{checkReply: &backend.CheckReply{LoggedIn: true}}
	ctl := newTestController(be, &fakeStore{})
	b := NewBootstrapper(ctl)

	assert.False(t, b.ServerInitCalled())

	require.NoError(t, b.ServerInit(context.Background()))
	assert.True(t, b.ServerInitCalled())
	assert.True(t, ctl.State().IsAuthenticated())

	require.NoError(t, b.ServerInit(context.Background()))
	_, _, checks := be.calls()
	assert.Equal(t, 1, checks, "subsequent init calls must not dispatch again")

	be.mu.Lock()
	assert.Empty(t, be.lastCheckToken, "bootstrap dispatches an empty payload")
	be.mu.Unlock()
}

func TestServerInitFailureStillRecordsInit(t *testing.T) {
	be := &fakeBackend{checkErr: errors.New("offline")}
	ctl := newTestController(be, &fakeStore{})
	b := NewBootstrapper(ctl)

	require.Error(t, b.ServerInit(context.Background()))
	assert.True(t, b.ServerInitCalled())
	assert.False(t, ctl.State().IsAuthenticated())

	// Init is once per process even when the check failed.
	require.NoError(t, b.ServerInit(context.Background()))
	_, _, checks := be.calls()
	assert.Equal(t, 1, checks)
}

func TestClientInitFlag(t *testing.T) {
	b := NewBootstrapper(newTestController(&fakeBackend{}, &fakeStore{}))

	assert.False(t, b.ClientInitCalled())
	b.ClientInit()
	assert.True(t, b.ClientInitCalled())
}
