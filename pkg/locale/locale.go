// Package locale resolves the language/region tags carried in an
// Accept-Language-shaped comment token ("en-US", "nl", "zh-Hans-CN") into
// the human-readable display names the AgentLanguage field exposes,
// falling back from a full tag to its base language the same way
// Accept-Language negotiation does.
package locale

import (
	"strings"

	"golang.org/x/text/language"
)

// displayNames is the closed code->name table AgentLanguage is built
// from. Keys are canonical lowercase BCP-47 tags; a region-qualified tag
// not listed here falls back to its bare base-language entry. The table
// only needs to cover locales real User-Agent strings actually carry, not
// every tag BCP-47 permits.
var displayNames = map[string]string{
	"en":    "English",
	"en-us": "English (United States)",
	"en-gb": "English (United Kingdom)",
	"en-au": "English (Australia)",
	"en-ca": "English (Canada)",
	"en-nz": "English (New Zealand)",
	"en-ie": "English (Ireland)",
	"en-in": "English (India)",
	"en-za": "English (South Africa)",

	"nl":    "Dutch",
	"nl-nl": "Dutch (Netherlands)",
	"nl-be": "Dutch (Belgium)",

	"de":    "German",
	"de-de": "German (Germany)",
	"de-at": "German (Austria)",
	"de-ch": "German (Switzerland)",

	"fr":    "French",
	"fr-fr": "French (France)",
	"fr-ca": "French (Canada)",
	"fr-be": "French (Belgium)",
	"fr-ch": "French (Switzerland)",

	"es":    "Spanish",
	"es-es": "Spanish (Spain)",
	"es-mx": "Spanish (Mexico)",
	"es-ar": "Spanish (Argentina)",
	"es-us": "Spanish (United States)",

	"pt":    "Portuguese",
	"pt-br": "Portuguese (Brazil)",
	"pt-pt": "Portuguese (Portugal)",

	"it":    "Italian",
	"it-it": "Italian (Italy)",
	"it-ch": "Italian (Switzerland)",

	"ru":    "Russian",
	"ru-ru": "Russian (Russia)",

	"ja":    "Japanese",
	"ja-jp": "Japanese (Japan)",

	"ko":    "Korean",
	"ko-kr": "Korean (South Korea)",

	"zh":      "Chinese",
	"zh-cn":   "Chinese (China)",
	"zh-tw":   "Chinese (Taiwan)",
	"zh-hk":   "Chinese (Hong Kong)",
	"zh-hans": "Chinese (Simplified)",
	"zh-hant": "Chinese (Traditional)",

	"ar":    "Arabic",
	"ar-sa": "Arabic (Saudi Arabia)",
	"ar-eg": "Arabic (Egypt)",

	"tr":    "Turkish",
	"tr-tr": "Turkish (Turkey)",

	"pl":    "Polish",
	"pl-pl": "Polish (Poland)",

	"sv":    "Swedish",
	"sv-se": "Swedish (Sweden)",

	"da":    "Danish",
	"da-dk": "Danish (Denmark)",

	"fi":    "Finnish",
	"fi-fi": "Finnish (Finland)",

	"nb":    "Norwegian Bokmål",
	"nn":    "Norwegian Nynorsk",
	"no":    "Norwegian",
	"no-no": "Norwegian (Norway)",

	"cs":    "Czech",
	"cs-cz": "Czech (Czech Republic)",

	"sk":    "Slovak",
	"sk-sk": "Slovak (Slovakia)",

	"hu":    "Hungarian",
	"hu-hu": "Hungarian (Hungary)",

	"el":    "Greek",
	"el-gr": "Greek (Greece)",

	"he":    "Hebrew",
	"he-il": "Hebrew (Israel)",

	"th":    "Thai",
	"th-th": "Thai (Thailand)",

	"vi":    "Vietnamese",
	"vi-vn": "Vietnamese (Vietnam)",

	"id":    "Indonesian",
	"id-id": "Indonesian (Indonesia)",

	"uk":    "Ukrainian",
	"uk-ua": "Ukrainian (Ukraine)",

	"ro":    "Romanian",
	"ro-ro": "Romanian (Romania)",

	"bg":    "Bulgarian",
	"bg-bg": "Bulgarian (Bulgaria)",

	"hr":    "Croatian",
	"hr-hr": "Croatian (Croatia)",

	"sr":    "Serbian",
	"sr-rs": "Serbian (Serbia)",

	"sl":    "Slovenian",
	"sl-si": "Slovenian (Slovenia)",

	"lt":    "Lithuanian",
	"lt-lt": "Lithuanian (Lithuania)",

	"lv":    "Latvian",
	"lv-lv": "Latvian (Latvia)",

	"et":    "Estonian",
	"et-ee": "Estonian (Estonia)",
}

// DisplayName returns the closed-table display name for a language tag,
// e.g. "en-US" -> "English (United States)", "nl" -> "Dutch". A
// region-qualified tag this table doesn't carry falls back to its base
// language's entry, the same way Accept-Language negotiation degrades
// from "en-ZZ" to "en". A tag with no entry at any level, or input that
// doesn't parse as a BCP-47 tag, is returned unchanged rather than
// erroring, since AgentLanguage must stay populated even for codes this
// table doesn't recognize.
func DisplayName(code string) string {
	code = strings.TrimSpace(code)
	if code == "" {
		return code
	}
	tag, err := language.Parse(code)
	if err != nil {
		return code
	}
	canon := strings.ToLower(tag.String())
	if name, ok := displayNames[canon]; ok {
		return name
	}
	base, _ := tag.Base()
	if name, ok := displayNames[strings.ToLower(base.String())]; ok {
		return name
	}
	return code
}

// Code canonicalizes a language tag to its BCP-47 form ("EN_us" ->
// "en-US"), for the AgentLanguageCode field. Unparseable input is
// returned unchanged.
func Code(code string) string {
	code = strings.TrimSpace(code)
	if code == "" {
		return code
	}
	tag, err := language.Parse(code)
	if err != nil {
		return code
	}
	return tag.String()
}

// Base extracts just the base language subtag ("en-US" -> "en"). Used by
// calculators that only care about the language family, not the region.
func Base(code string) string {
	tag, err := language.Parse(strings.TrimSpace(code))
	if err != nil {
		return code
	}
	base, _ := tag.Base()
	return base.String()
}
