package heuristic

import (
	"github.com/dante-securestack/pom-mono-yauaa/pkg/token"
)

// Device type identifiers, the values ParseDeviceType returns.
const (
	DeviceTypeBot     = "bot"
	DeviceTypeMobile  = "mobile"
	DeviceTypeTablet  = "tablet"
	DeviceTypeDesktop = "desktop"
	DeviceTypeTV      = "tv"
	DeviceTypeConsole = "console"
	DeviceTypeUnknown = "unknown"
)

// Mobile device model identifiers, the values GetDeviceModel returns for
// DeviceTypeMobile.
const (
	MobileDeviceIPhone  = "iphone"
	MobileDeviceAndroid = "android"
	MobileDeviceSamsung = "samsung"
	MobileDeviceHuawei  = "huawei"
	MobileDeviceXiaomi  = "xiaomi"
	MobileDeviceOppo    = "oppo"
	MobileDeviceVivo    = "vivo"
	MobileDeviceUnknown = "unknown"
)

// Tablet device model identifiers, the values GetDeviceModel returns for
// DeviceTypeTablet.
const (
	TabletDeviceIPad       = "ipad"
	TabletDeviceAndroid    = "android"
	TabletDeviceSamsung    = "samsung"
	TabletDeviceHuawei     = "huawei"
	TabletDeviceKindleFire = "kindle"
	TabletDeviceSurface    = "surface"
	TabletDeviceUnknown    = "unknown"
)

// keywordSet is a small set of lowercase keywords tested against a token
// tree's products and comments.
type keywordSet map[string]struct{}

func newKeywordSet(keywords ...string) keywordSet {
	result := make(keywordSet, len(keywords))
	for _, word := range keywords {
		result[word] = struct{}{}
	}
	return result
}

func (k keywordSet) contains(t *token.Tree) bool {
	for keyword := range k {
		if treeContainsWord(t, keyword) {
			return true
		}
	}
	return false
}

// Keyword sets organized by device type for efficient classification.
// Bot detection includes social media crawlers and monitoring tools.
var (
	botKeywords     = newKeywordSet("bot", "spider", "crawler", "archiver", "ping", "lighthouse", "slurp", "daum", "sogou", "yeti", "facebook", "twitter", "slack", "linkedin", "whatsapp", "telegram", "discord", "camo asset", "generator", "monitor", "analyzer", "validator", "fetcher", "scraper", "check")
	tvKeywords      = newKeywordSet("tv", "appletv", "smarttv", "googletv", "android tv", "webos", "tizen")
	consoleKeywords = newKeywordSet("playstation", "xbox", "nintendo", "wiiu", "switch")
	tabletKeywords  = newKeywordSet("tablet", "kindle", "silk")
	mobileKeywords  = newKeywordSet("mobile", "iphone", "android", "windows phone", "iemobile", "blackberry", "nokia")
	desktopKeywords = newKeywordSet("windows", "macintosh", "mac os x", "linux", "x11", "ubuntu", "fedora", "debian", "chromeos", "cros")

	// Mobile device brand detection based on common UA patterns
	samsungMobileWords = newKeywordSet("samsung", "sm-g", "sm-a", "sm-n", "samsungbrowser")
	huaweiMobileWords  = newKeywordSet("huawei", "hwa-", "honor", "h60-", "h30-")
	xiaomiMobileWords  = newKeywordSet("xiaomi", "mi ", "redmi", "miui")
	oppoMobileWords    = newKeywordSet("oppo", "cph1", "cph2", "f1f")
	vivoMobileWords    = newKeywordSet("vivo", "viv-", "v1730", "v1731")

	// Tablet device brand detection patterns
	samsungTabletWords = newKeywordSet("sm-t", "gt-p", "sm-p")
	huaweiTabletWords  = newKeywordSet("mediapad", "agassi")
	kindleWords        = newKeywordSet("kindle", "silk", "kftt", "kfjwi")
)

// ParseDeviceType classifies devices by walking t's products and comments.
// Order matters: iOS devices first (unambiguous), then bot keywords, then
// Android logic, then the remaining keyword sets in descending specificity.
func ParseDeviceType(t *token.Tree) string {
	if t == nil || len(t.Products) == 0 {
		return DeviceTypeUnknown
	}

	// iOS devices have unambiguous identifiers
	if treeContainsWord(t, "ipad") {
		return DeviceTypeTablet
	}

	if treeContainsWord(t, "iphone") {
		return DeviceTypeMobile
	}

	if botKeywords.contains(t) {
		return DeviceTypeBot
	}

	// Android tablets omit 'Mobile' keyword, unlike phones
	if treeContainsWord(t, "android") {
		if !treeContainsWord(t, "mobile") {
			return DeviceTypeTablet
		}
		return DeviceTypeMobile
	}

	if tabletKeywords.contains(t) {
		return DeviceTypeTablet
	}

	if mobileKeywords.contains(t) {
		return DeviceTypeMobile
	}

	if tvKeywords.contains(t) {
		return DeviceTypeTV
	}

	if consoleKeywords.contains(t) {
		return DeviceTypeConsole
	}

	// Windows tablets require special detection before general desktop matching
	if treeContainsWord(t, "windows") &&
		(treeContainsWord(t, "touch") || treeContainsWord(t, "tablet")) {
		return DeviceTypeTablet
	}

	if desktopKeywords.contains(t) {
		return DeviceTypeDesktop
	}

	return DeviceTypeUnknown
}

// GetDeviceModel identifies specific device brands for mobile and tablet
// devices. Returns empty string for other device types since model
// detection isn't meaningful for them.
func GetDeviceModel(t *token.Tree, deviceType string) string {
	if deviceType != DeviceTypeMobile && deviceType != DeviceTypeTablet {
		return ""
	}

	if deviceType == DeviceTypeMobile {
		// Ordered by global market share for faster common-case detection
		if treeContainsWord(t, "iphone") {
			return MobileDeviceIPhone
		}

		if samsungMobileWords.contains(t) {
			return MobileDeviceSamsung
		}

		if huaweiMobileWords.contains(t) {
			return MobileDeviceHuawei
		}

		if xiaomiMobileWords.contains(t) {
			return MobileDeviceXiaomi
		}

		if oppoMobileWords.contains(t) {
			return MobileDeviceOppo
		}

		if vivoMobileWords.contains(t) {
			return MobileDeviceVivo
		}

		// Fallback for unrecognized Android devices
		if treeContainsWord(t, "android") {
			return MobileDeviceAndroid
		}

		return MobileDeviceUnknown
	}

	// Ordered by tablet market share
	if treeContainsWord(t, "ipad") {
		return TabletDeviceIPad
	}

	// Microsoft Surface detection via Windows + touch indicators
	if treeContainsWord(t, "windows") &&
		(treeContainsWord(t, "touch") || treeContainsWord(t, "tablet")) {
		return TabletDeviceSurface
	}

	if treeContainsWord(t, "samsung") || samsungTabletWords.contains(t) {
		return TabletDeviceSamsung
	}

	if treeContainsWord(t, "huawei") || huaweiTabletWords.contains(t) {
		return TabletDeviceHuawei
	}

	// Amazon's Android-based tablets
	if kindleWords.contains(t) {
		return TabletDeviceKindleFire
	}

	// Fallback for unrecognized Android tablets
	if treeContainsWord(t, "android") {
		return TabletDeviceAndroid
	}

	return TabletDeviceUnknown
}
