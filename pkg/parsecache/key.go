package parsecache

import (
	"sort"
	"strings"
)

// KeyForHeaders builds the canonical cache key for a Client-Hints header
// map: the sorted known-header subset, concatenated as
// "header1=value1\nheader2=value2…". Unknown headers are ignored,
// matching the Client Hints parser's own tolerance for unrecognized
// headers.
func KeyForHeaders(headers map[string]string, knownHeaders []string) string {
	known := make(map[string]bool, len(knownHeaders))
	for _, h := range knownHeaders {
		known[strings.ToLower(h)] = true
	}

	type pair struct{ name, value string }
	var pairs []pair
	for k, v := range headers {
		if known[strings.ToLower(k)] {
			pairs = append(pairs, pair{name: strings.ToLower(k), value: v})
		}
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].name < pairs[j].name })

	var b strings.Builder
	for i, p := range pairs {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(p.name)
		b.WriteByte('=')
		b.WriteString(p.value)
	}
	return b.String()
}
