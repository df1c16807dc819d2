package postprocess

import (
	"fmt"
	"strings"

	"github.com/dante-securestack/pom-mono-yauaa/pkg/field"
	"github.com/dante-securestack/pom-mono-yauaa/pkg/locale"
)

// ClassFromName builds a calculator that looks name up in table and writes
// the corresponding class, or defaultClass if name has no entry.
func ClassFromName(name, class field.Field, table map[string]string, defaultClass string) Calculator {
	return Calculator{
		Name:   fmt.Sprintf("ClassFromName(%s)", class),
		Reads:  []field.Field{name},
		Writes: []field.Field{class},
		Apply: func(m *field.Map) error {
			if v, ok := table[m.Get(name)]; ok {
				m.Set(class, v)
			} else {
				m.Set(class, defaultClass)
			}
			return nil
		},
	}
}

// Composition builds a calculator that writes out = name + " " + version.
// When version is the unknown sentinel, the composed value is simply
// name + " ??" — no special casing needed since that's just string
// concatenation of the sentinel itself.
func Composition(name, version, out field.Field) Calculator {
	return Calculator{
		Name:   fmt.Sprintf("Composition(%s)", out),
		Reads:  []field.Field{name, version},
		Writes: []field.Field{out},
		Apply: func(m *field.Map) error {
			m.Set(out, m.Get(name)+" "+m.Get(version))
			return nil
		},
	}
}

// VersionMajorOf builds a calculator that writes major as the substring
// of version up to (not including) the first '.'. VersionUnknown passes
// through unchanged.
func VersionMajorOf(version, major field.Field) Calculator {
	return Calculator{
		Name:   fmt.Sprintf("VersionMajor(%s)", major),
		Reads:  []field.Field{version},
		Writes: []field.Field{major},
		Apply: func(m *field.Map) error {
			v := m.Get(version)
			if v == field.VersionUnknown {
				m.Set(major, field.VersionUnknown)
				return nil
			}
			if idx := strings.IndexByte(v, '.'); idx >= 0 {
				m.Set(major, v[:idx])
			} else {
				m.Set(major, v)
			}
			return nil
		},
	}
}

// LanguageExpansion builds a calculator that expands a language code
// field (e.g. "en-us") into its human-readable display name via
// pkg/locale.
func LanguageExpansion(code, display field.Field) Calculator {
	return Calculator{
		Name:   "LanguageExpansion",
		Reads:  []field.Field{code},
		Writes: []field.Field{display},
		Apply: func(m *field.Map) error {
			c := m.Get(code)
			if c == field.Unknown || c == "" {
				m.Set(display, field.Unknown)
				return nil
			}
			m.Set(display, locale.DisplayName(c))
			return nil
		},
	}
}

// MinimalVersionTrim builds a calculator that reduces version to its
// first n dot-separated components, enabled by the showMinimalVersion
// builder option. Declared last for any version it touches, since every
// other calculator that reads that field expects the untrimmed value.
func MinimalVersionTrim(version field.Field, components int) Calculator {
	return Calculator{
		Name:   fmt.Sprintf("MinimalVersionTrim(%s)", version),
		Reads:  []field.Field{version},
		Writes: []field.Field{version},
		Apply: func(m *field.Map) error {
			v := m.Get(version)
			if v == field.VersionUnknown || components <= 0 {
				return nil
			}
			parts := strings.Split(v, ".")
			if len(parts) > components {
				parts = parts[:components]
			}
			m.Set(version, strings.Join(parts, "."))
			return nil
		},
	}
}
