package manifest

import (
	"context"
	"fmt"

	"github.com/pterm/pterm"

	"quillbox/cli/internal/config"
)

// Default endpoint paths, used when a base-URL override skips manifest discovery.
const (
	defaultLoginPath      = "/api/auth/login"
	defaultLogoutPath     = "/api/auth/logout"
	defaultLoginCheckPath = "/api/auth/login-check"
	defaultHealthPath     = "/api/health"
	defaultVersionPath    = "/api/version"
)

// GetEndpoints returns the manifest endpoints, using the RAM cache if available.
// If not cached, it fetches from the server and caches the result.
// A configured base-URL override short-circuits discovery with default paths.
// This function is the main entry point for retrieving backend configuration.
func GetEndpoints(ctx context.Context) (*Manifest, error) {
	// Check RAM cache first
	if cached := GetCached(); cached != nil {
		return cached, nil
	}

	// Self-hosted deployments point the CLI directly at their origin
	if cfg, err := config.Load(); err == nil && cfg.BaseURL != "" {
		m := defaultManifest(cfg.BaseURL)
		SetCached(m)
		return m, nil
	}

	// Fetch from server
	manifest, err := fetchFromServer(ctx)
	if err != nil {
		return nil, formatServerError(err)
	}

	// Cache in RAM for future calls within this process
	SetCached(manifest)

	return manifest, nil
}

// defaultManifest builds a manifest for a fixed origin with the default paths.
func defaultManifest(origin string) *Manifest {
	return &Manifest{
		Version: 1,
		API:     APIEndpoints{Origin: origin},
		HTTP: HTTPEndpoints{
			Login:      defaultLoginPath,
			Logout:     defaultLogoutPath,
			LoginCheck: defaultLoginCheckPath,
			Health:     defaultHealthPath,
			Version:    defaultVersionPath,
		},
	}
}

// formatServerError creates user-friendly error messages for manifest fetch failures.
func formatServerError(err error) error {
	pterm.Error.Println("Cannot connect to quillbox.app")
	pterm.Println()
	pterm.Info.Println("Please check:")
	pterm.Println("  • Your internet connection")
	pterm.Println("  • That quillbox.app is reachable from your network")
	pterm.Println()
	return fmt.Errorf("fetch endpoint manifest: %w", err)
}
