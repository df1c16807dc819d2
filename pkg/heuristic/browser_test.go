package heuristic_test

import (
	"testing"

	"github.com/dante-securestack/pom-mono-yauaa/pkg/heuristic"
	"github.com/dante-securestack/pom-mono-yauaa/pkg/token"

	"github.com/stretchr/testify/assert"
)

// TestParseBrowser exercises the fallback keyword-based browser classifier
// used by the default rule set's catch-all matcher.
func TestParseBrowser(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		ua       string
		expected heuristic.Browser
	}{
		{
			name:     "Chrome",
			ua:       "mozilla/5.0 (windows nt 10.0; win64; x64) applewebkit/537.36 (khtml, like gecko) chrome/91.0.4472.124 safari/537.36",
			expected: heuristic.Browser{Name: heuristic.BrowserChrome, Version: "91.0.4472.124"},
		},
		{
			name:     "Firefox",
			ua:       "mozilla/5.0 (windows nt 10.0; win64; x64; rv:89.0) gecko/20100101 firefox/89.0",
			expected: heuristic.Browser{Name: heuristic.BrowserFirefox, Version: "89.0"},
		},
		{
			name:     "Edge (Chromium)",
			ua:       "mozilla/5.0 (windows nt 10.0; win64; x64) applewebkit/537.36 (khtml, like gecko) chrome/91.0.4472.124 safari/537.36 edg/91.0.864.59",
			expected: heuristic.Browser{Name: heuristic.BrowserEdge, Version: "91.0.864.59"},
		},
		{
			name:     "Safari",
			ua:       "mozilla/5.0 (macintosh; intel mac os x 10_15_7) applewebkit/605.1.15 (khtml, like gecko) version/14.1.1 safari/605.1.15",
			expected: heuristic.Browser{Name: heuristic.BrowserSafari, Version: "14.1.1"},
		},
		{
			name:     "Unknown",
			ua:       "some-custom-http-client/1.0",
			expected: heuristic.Browser{Name: heuristic.BrowserUnknown, Version: ""},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := heuristic.ParseBrowser(token.Tokenize(tc.ua))
			assert.Equal(t, tc.expected, got)
		})
	}
}
