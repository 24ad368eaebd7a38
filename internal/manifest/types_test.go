// Copyright (c) 2025 Quillbox
// Licensed under the MIT License. See LICENSE file in the project root for details.

package manifest

import (
	"testing"
)

func TestHTTPBaseURL(t *testing.T) {
	tests := []struct {
		name   string
		origin string
		want   string
	}{
		{
			name:   "plain origin",
			origin: "https://quillbox.app",
			want:   "https://quillbox.app",
		},
		{
			name:   "origin with trailing slash",
			origin: "https://quillbox.app/",
			want:   "https://quillbox.app",
		},
		{
			name:   "origin with path is reduced to host",
			origin: "https://quillbox.app/api",
			want:   "https://quillbox.app",
		},
		{
			name:   "localhost with port",
			origin: "http://localhost:8080",
			want:   "http://localhost:8080",
		},
		{
			name:   "unparseable origin",
			origin: "://not-a-url",
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &Manifest{API: APIEndpoints{Origin: tt.origin}}
			if got := m.HTTPBaseURL(); got != tt.want {
				t.Errorf("HTTPBaseURL() = %v, want %v", got, tt.want)
			}
		})
	}
}
