// Copyright (c) 2025 Quillbox
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package cmd provides the command-line interface for the Quillbox CLI application.
// It implements session commands (login, logout, whoami) and version reporting
// using the Cobra CLI framework, with a terminal UI built on pterm and
// inline spinners for network waits.
package cmd

import (
	"context"
	"sync"

	"quillbox/cli/internal/backend"
	"quillbox/cli/internal/manifest"
	"quillbox/cli/internal/secure"
	"quillbox/cli/internal/session"
)

// Process-wide session runtime. Commands share one controller and one
// bootstrapper so the once-per-process init contract holds.
var (
	runtimeOnce sync.Once
	runtimeErr  error
	sessionCtl  *session.Controller
	sessionBoot *session.Bootstrapper
)

// sessionRuntime builds the manifest-backed controller and bootstrapper on
// first use and returns the shared instances afterwards.
func sessionRuntime(ctx context.Context) (*session.Controller, *session.Bootstrapper, error) {
	runtimeOnce.Do(func() {
		m, err := manifest.GetEndpoints(ctx)
		if err != nil {
			runtimeErr = err
			return
		}
		be := backend.New(m.HTTPBaseURL(), m.HTTP)
		sessionCtl = session.NewController(session.NewState(), be, secure.KeychainStore{})
		sessionBoot = session.NewBootstrapper(sessionCtl)
	})
	return sessionCtl, sessionBoot, runtimeErr
}
