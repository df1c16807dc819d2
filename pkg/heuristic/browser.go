package heuristic

import (
	"regexp"
	"strings"

	"github.com/dante-securestack/pom-mono-yauaa/pkg/token"
)

// Browser name identifiers, the values ParseBrowser returns in Browser.Name.
const (
	BrowserChrome  = "chrome"
	BrowserFirefox = "firefox"
	BrowserSafari  = "safari"
	BrowserEdge    = "edge"
	BrowserOpera   = "opera"
	BrowserIE      = "ie"
	BrowserSamsung = "samsung"
	BrowserUC      = "uc"
	BrowserQQ      = "qq"
	BrowserHuawei  = "huawei"
	BrowserVivo    = "vivo"
	BrowserMIUI    = "miui"
	BrowserBrave   = "brave"
	BrowserVivaldi = "vivaldi"
	BrowserYandex  = "yandex"
	BrowserUnknown = "unknown"
)

// Browser holds one classified browser name and version.
type Browser struct {
	Name    string
	Version string
}

// browserSignature identifies one browser family by the name of the
// product token that family's UA string carries. Most families report
// their own version on that same product; Safari is the outlier, whose
// version lives on a separate "Version" product alongside "Safari" itself.
// Excludes guards against a family whose product name is a substring
// match for another (kept for defensive symmetry with the other
// signatures even though the priority order below already settles Chrome
// vs. Safari without it).
type browserSignature struct {
	Name        string
	ProductName string
	VersionFrom string
	Excludes    []string
}

// browserSignatures is checked in order; the first product name that's
// present in the tree wins, so Chromium derivatives that also carry a
// plain "Chrome" product (Edge, Opera, Samsung Internet, …) must be listed
// ahead of the plain Chrome/Firefox/Safari entries.
var browserSignatures = []browserSignature{
	{Name: BrowserEdge, ProductName: "Edg"},
	{Name: BrowserEdge, ProductName: "EdgA"},
	{Name: BrowserEdge, ProductName: "EdgiOS"},
	{Name: BrowserSamsung, ProductName: "SamsungBrowser"},
	{Name: BrowserUC, ProductName: "UCBrowser"},
	{Name: BrowserQQ, ProductName: "QQBrowser"},
	{Name: BrowserQQ, ProductName: "MQQBrowser"},
	{Name: BrowserHuawei, ProductName: "HuaweiBrowser"},
	{Name: BrowserVivo, ProductName: "VivoBrowser"},
	{Name: BrowserMIUI, ProductName: "MiuiBrowser"},
	{Name: BrowserMIUI, ProductName: "MIUI"},
	{Name: BrowserYandex, ProductName: "YaBrowser"},
	{Name: BrowserYandex, ProductName: "YandexBrowser"},
	{Name: BrowserVivaldi, ProductName: "Vivaldi"},
	{Name: BrowserBrave, ProductName: "Brave"},
	{Name: BrowserOpera, ProductName: "OPR"},
	{Name: BrowserOpera, ProductName: "Opera"},
	{Name: BrowserChrome, ProductName: "Chrome"},
	{Name: BrowserFirefox, ProductName: "Firefox"},
	{Name: BrowserSafari, ProductName: "Safari", VersionFrom: "Version", Excludes: []string{"Chrome", "Firefox"}},
}

// msieVersionPattern extracts the version number out of an isolated "MSIE
// <version>" comment value; it is applied only to that one already-split
// comment, never to the raw input.
var msieVersionPattern = regexp.MustCompile(`(?i)msie\s+([\d.]+)`)

// ParseBrowser classifies the browser family and version by looking up
// known product names directly in t's token tree, rather than running a
// family of regexes over the raw string: a product's Version field is
// already the exact version substring the tokenizer split out, so there is
// nothing left to extract once the right product is found.
func ParseBrowser(t *token.Tree) Browser {
	if t == nil || len(t.Products) == 0 {
		return Browser{Name: BrowserUnknown}
	}

	for _, sig := range browserSignatures {
		p, ok := findProductNamed(t, sig.ProductName)
		if !ok {
			continue
		}
		if excludedBy(t, sig.Excludes) {
			continue
		}
		version := p.Version
		if sig.VersionFrom != "" {
			if vp, ok := findProductNamed(t, sig.VersionFrom); ok {
				version = vp.Version
			}
		}
		return Browser{Name: sig.Name, Version: limitVersionLength(version)}
	}

	// Legacy Internet Explorer identifies itself through a comment rather
	// than a product token: "MSIE 10.0" in older releases, or a bare
	// "Trident/7.0" with no MSIE token at all in IE 11.
	if v, ok := anyCommentValue(t, func(s string) bool {
		return msieVersionPattern.MatchString(s)
	}); ok {
		match := msieVersionPattern.FindStringSubmatch(v)
		return Browser{Name: BrowserIE, Version: limitVersionLength(match[1])}
	}
	if _, ok := anyCommentValue(t, func(s string) bool {
		return strings.HasPrefix(strings.ToLower(s), "trident/")
	}); ok {
		return Browser{Name: BrowserIE, Version: "11.0"}
	}

	return Browser{Name: BrowserUnknown}
}

func excludedBy(t *token.Tree, excludes []string) bool {
	for _, name := range excludes {
		if _, ok := findProductNamed(t, name); ok {
			return true
		}
	}
	return false
}

// limitVersionLength caps an extracted version to a sane display length,
// in case a product's "version" field picked up more than a dotted number.
func limitVersionLength(version string) string {
	const maxLen = 20
	if len(version) > maxLen {
		return version[:maxLen]
	}
	return version
}
