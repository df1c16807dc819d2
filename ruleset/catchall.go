package ruleset

import (
	"strings"

	"github.com/dante-securestack/pom-mono-yauaa/pkg/field"
	"github.com/dante-securestack/pom-mono-yauaa/pkg/heuristic"
	"github.com/dante-securestack/pom-mono-yauaa/pkg/rule"
	"github.com/dante-securestack/pom-mono-yauaa/pkg/token"
)

// pkg/heuristic's classifiers read t's token tree directly (product names,
// versions, and comments) and return lowercase, English-keyword-driven
// constants meant for fast internal comparison, not display. These tables
// translate those constants into the proper-cased names the field catalog
// expects; anything not listed falls back to titleCaseWords.

var deviceClassDisplayNames = map[string]string{
	heuristic.DeviceTypeBot:     "Robot",
	heuristic.DeviceTypeMobile:  "Mobile",
	heuristic.DeviceTypeTablet:  "Tablet",
	heuristic.DeviceTypeDesktop: "Desktop",
	heuristic.DeviceTypeTV:      "TV",
	heuristic.DeviceTypeConsole: "Game Console",
	heuristic.DeviceTypeUnknown: field.Unknown,
}

var osDisplayNames = map[string]string{
	heuristic.OSWindows:      "Windows",
	heuristic.OSWindowsPhone: "Windows Phone",
	heuristic.OSMacOS:        "Mac OS X",
	heuristic.OSiOS:          "iOS",
	heuristic.OSAndroid:      "Android",
	heuristic.OSLinux:        "Linux",
	heuristic.OSChromeOS:     "Chrome OS",
	heuristic.OSHarmonyOS:    "HarmonyOS",
	heuristic.OSFireOS:       "Fire OS",
	heuristic.OSUnknown:      field.Unknown,
}

var browserDisplayNames = map[string]string{
	heuristic.BrowserChrome:  "Chrome",
	heuristic.BrowserFirefox: "Firefox",
	heuristic.BrowserSafari:  "Safari",
	heuristic.BrowserEdge:    "Microsoft Edge",
	heuristic.BrowserOpera:   "Opera",
	heuristic.BrowserIE:      "Internet Explorer",
	heuristic.BrowserSamsung: "Samsung Internet",
	heuristic.BrowserUC:      "UC Browser",
	heuristic.BrowserQQ:      "QQ Browser",
	heuristic.BrowserHuawei:  "Huawei Browser",
	heuristic.BrowserVivo:    "Vivo Browser",
	heuristic.BrowserMIUI:    "Mi Browser",
	heuristic.BrowserBrave:   "Brave",
	heuristic.BrowserVivaldi: "Vivaldi",
	heuristic.BrowserYandex:  "Yandex Browser",
	heuristic.BrowserUnknown: field.Unknown,
}

var deviceModelDisplayNames = map[string]string{
	heuristic.MobileDeviceIPhone:     "iPhone",
	heuristic.MobileDeviceAndroid:    "Generic Android Device",
	heuristic.MobileDeviceSamsung:    "Samsung",
	heuristic.MobileDeviceHuawei:     "Huawei",
	heuristic.MobileDeviceXiaomi:     "Xiaomi",
	heuristic.MobileDeviceOppo:       "Oppo",
	heuristic.MobileDeviceVivo:       "Vivo",
	heuristic.TabletDeviceIPad:       "iPad",
	heuristic.TabletDeviceSurface:    "Surface",
	heuristic.TabletDeviceKindleFire: "Kindle Fire",
}

// addCatchAllMatchers registers the low-confidence matchers that fall
// back to pkg/heuristic's keyword classifiers when no specific matcher
// proposed a value. They have no required words (always candidates) and
// always succeed, so they only ever win a field when nothing else did.
func addCatchAllMatchers(b *rule.Builder) {
	b.Add("catchall-device-class", nil, nil,
		rule.Extract{Field: field.DeviceClass, Confidence: confidenceLow, Value: func(t *token.Tree) (string, bool) {
			class := heuristic.ParseDeviceType(t)
			return display(deviceClassDisplayNames, class), true
		}},
	)

	b.Add("catchall-device-model", nil, nil,
		rule.Extract{Field: field.DeviceName, Confidence: confidenceLow, Value: func(t *token.Tree) (string, bool) {
			class := heuristic.ParseDeviceType(t)
			model := heuristic.GetDeviceModel(t, class)
			if model == "" || model == heuristic.MobileDeviceUnknown || model == heuristic.TabletDeviceUnknown {
				return "", false
			}
			return display(deviceModelDisplayNames, model), true
		}},
	)

	b.Add("catchall-os-name", nil, nil,
		rule.Extract{Field: field.OperatingSystemName, Confidence: confidenceLow, Value: func(t *token.Tree) (string, bool) {
			return display(osDisplayNames, heuristic.ParseOS(t)), true
		}},
	)

	b.Add("catchall-browser", nil, nil,
		rule.Extract{Field: field.AgentName, Confidence: confidenceLow, Value: func(t *token.Tree) (string, bool) {
			browser := heuristic.ParseBrowser(t)
			return display(browserDisplayNames, browser.Name), true
		}},
		rule.Extract{Field: field.AgentVersion, Confidence: confidenceLow, Value: func(t *token.Tree) (string, bool) {
			browser := heuristic.ParseBrowser(t)
			if browser.Version == "" {
				return "", false
			}
			return browser.Version, true
		}},
	)
}

// display looks up a lowercase heuristic constant in table, falling back
// to a generic title-casing of the constant itself when unlisted.
func display(table map[string]string, key string) string {
	if v, ok := table[key]; ok {
		return v
	}
	return titleCaseWords(key)
}

// titleCaseWords upper-cases the first letter of every space-separated
// word, the default display transform for any heuristic constant this
// package's tables don't special-case.
func titleCaseWords(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
