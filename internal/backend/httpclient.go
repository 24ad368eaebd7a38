package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"quillbox/cli/internal/manifest"
)

// HTTP implements API client over REST endpoints.
// It provides methods for session operations and version checking.
type HTTP struct {
	// baseURL is the base URL for all HTTP requests (e.g., "https://quillbox.app")
	baseURL string
	// endpoints contains the URL paths for various API endpoints
	endpoints manifest.HTTPEndpoints
	// client is the underlying HTTP client with configured timeout
	client *http.Client
}

// newHTTP creates a new HTTP client with the given base URL and endpoints.
// It configures a 10-second timeout for all requests.
func newHTTP(baseURL string, endpoints manifest.HTTPEndpoints) *HTTP {
	return &HTTP{
		baseURL:   strings.TrimRight(baseURL, "/"),
		endpoints: endpoints,
		client:    &http.Client{Timeout: 10 * time.Second},
	}
}

// setStandardHeaders applies headers every request carries.
func (h *HTTP) setStandardHeaders(req *http.Request) {
	req.Header.Set("User-Agent", "quillbox-cli/1.0")
	req.Header.Set("Accept", "application/json, */*")
}

// GetVersion calls GET /api/version and returns the version string when available.
// No authentication required. This can be used to check connectivity to the backend service.
func (h *HTTP) GetVersion(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.baseURL+h.endpoints.Version, nil)
	if err != nil {
		return "", err
	}
	h.setStandardHeaders(req)
	resp, err := h.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "unknown", nil
	}
	var out struct {
		Version string `json:"version"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if out.Version == "" {
		return "unknown", nil
	}
	return out.Version, nil
}
