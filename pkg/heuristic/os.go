package heuristic

import (
	"github.com/dante-securestack/pom-mono-yauaa/pkg/token"
)

// Operating system identifiers, the values ParseOS returns.
const (
	OSWindows      = "windows"
	OSWindowsPhone = "windows phone"
	OSMacOS        = "macos"
	OSiOS          = "ios"
	OSAndroid      = "android"
	OSLinux        = "linux"
	OSChromeOS     = "chromeos"
	OSHarmonyOS    = "harmonyos"
	OSFireOS       = "fireos"
	OSUnknown      = "unknown"
)

// OS detection keyword sets optimized for common traffic patterns
var (
	windowsPhoneKeywords = newKeywordSet("windows phone")
	windowsKeywords      = newKeywordSet("windows")
	iOSKeywords          = newKeywordSet("iphone", "ipad", "ipod")
	macOSKeywords        = newKeywordSet("macintosh", "mac os x")
	harmonyOSKeywords    = newKeywordSet("harmonyos")
	androidKeywords      = newKeywordSet("android")
	fireOSKeywords       = newKeywordSet("kindle", "silk")
	chromeOSKeywords     = newKeywordSet("cros", "chromeos", "chrome os")
	linuxKeywords        = newKeywordSet("linux", "ubuntu", "debian", "fedora", "mint", "x11")
)

// ParseOS identifies operating systems by walking t's products and
// comments. Order reflects typical web traffic patterns: Windows first,
// then mobile OSes.
func ParseOS(t *token.Tree) string {
	if t == nil || len(t.Products) == 0 {
		return OSUnknown
	}

	// Windows dominates desktop traffic, check it first
	if windowsKeywords.contains(t) {
		if windowsPhoneKeywords.contains(t) {
			return OSWindowsPhone
		}
		return OSWindows
	}

	if iOSKeywords.contains(t) {
		return OSiOS
	}

	if macOSKeywords.contains(t) {
		return OSMacOS
	}

	if androidKeywords.contains(t) {
		return OSAndroid
	}

	// Less common OSes use keyword sets for maintainability
	if harmonyOSKeywords.contains(t) {
		return OSHarmonyOS
	}

	if fireOSKeywords.contains(t) {
		return OSFireOS
	}

	if chromeOSKeywords.contains(t) {
		return OSChromeOS
	}

	if linuxKeywords.contains(t) {
		return OSLinux
	}

	return OSUnknown
}
