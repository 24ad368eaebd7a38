package session

import (
	"context"
	"sync"
)

// Bootstrapper runs the one-shot process initialization hooks. The init
// flags live outside State on purpose: they track whether bootstrap ran,
// not anything about session validity.
type Bootstrapper struct {
	mu               sync.Mutex
	serverInitCalled bool
	clientInitCalled bool
	ctl              *Controller
}

// NewBootstrapper wraps a controller with the process-level init hooks.
func NewBootstrapper(ctl *Controller) *Bootstrapper {
	return &Bootstrapper{ctl: ctl}
}

// ServerInit establishes initial session validity by dispatching a login
// check with an empty payload, exactly once per process. Subsequent calls
// are no-ops. The check participates in the same guard and state contract
// as any other invocation.
func (b *Bootstrapper) ServerInit(ctx context.Context) error {
	b.mu.Lock()
	if b.serverInitCalled {
		b.mu.Unlock()
		return nil
	}
	b.serverInitCalled = true
	b.mu.Unlock()

	_, err := b.ctl.LoginCheck(ctx, CheckPayload{})
	return err
}

// ServerInitCalled reports whether ServerInit has run.
func (b *Bootstrapper) ServerInitCalled() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.serverInitCalled
}

// ClientInit records that client-side initialization ran. It performs no
// network call.
func (b *Bootstrapper) ClientInit() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.clientInitCalled = true
}

// ClientInitCalled reports whether ClientInit has run.
func (b *Bootstrapper) ClientInitCalled() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.clientInitCalled
}
