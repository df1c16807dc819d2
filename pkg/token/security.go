package token

// Security sentinel values historically sent by browsers in the first
// comment group to advertise (or lie about) their crypto export grade:
// "U" (strong/US), "I" (international/weak), "N" (none). Modern browsers
// never send these; they survive in the wild in very old UA strings.
const (
	SecurityStrong = "U"
	SecurityWeak   = "I"
	SecurityNone   = "N"
)

// IsSecuritySentinel reports whether a bare comment value is one of the
// legacy crypto-grade sentinels.
func IsSecuritySentinel(value string) bool {
	switch value {
	case SecurityStrong, SecurityWeak, SecurityNone:
		return true
	default:
		return false
	}
}

// likeGecko is the marker comment Gecko-compatible (and Gecko-spoofing)
// engines send, e.g. "(KHTML, like Gecko)".
const likeGecko = "like Gecko"

// IsLikeGecko reports whether a bare comment value is the "like Gecko"
// compatibility marker.
func IsLikeGecko(value string) bool {
	return value == likeGecko
}

// SecurityToken scans every comment of every product for a security
// sentinel and returns the first one found, or "" if none is present.
// Matchers use this instead of walking the tree themselves.
func (t *Tree) SecurityToken() string {
	for _, p := range t.Products {
		for _, c := range p.Comments {
			if c.Key == "" && IsSecuritySentinel(c.Value) {
				return c.Value
			}
		}
	}
	return ""
}
