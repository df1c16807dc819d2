package field

import "strings"

// Proposal is a single (field, value, confidence) suggestion produced by a
// matcher match. Confidence is non-negative; higher wins.
type Proposal struct {
	Field      Field
	Value      string
	Confidence int
}

// Map is the mutable field map used while resolving and post-processing a
// single parse. It is never exposed to callers directly; Freeze produces the
// immutable Result that is.
type Map struct {
	values map[Field]string
}

// NewMap creates an empty mutable field map.
func NewMap() *Map {
	return &Map{values: make(map[Field]string, len(AllFields))}
}

// Get returns the field's value, or its default sentinel if unset.
func (m *Map) Get(f Field) string {
	if v, ok := m.values[f]; ok {
		return v
	}
	return Default(f)
}

// Has reports whether f has been explicitly set (as opposed to defaulted).
func (m *Map) Has(f Field) bool {
	_, ok := m.values[f]
	return ok
}

// Set assigns a value to a field, overwriting any previous value.
func (m *Map) Set(f Field, value string) {
	if value == "" {
		value = Default(f)
	}
	m.values[f] = value
}

// Freeze produces an immutable Result snapshot of the current field values,
// filling any unset field in fields (or the full catalog if fields is empty)
// with its default sentinel.
func (m *Map) Freeze(raw string, fields []Field) *Result {
	if len(fields) == 0 {
		fields = AllFields
	}
	values := make(map[Field]string, len(fields))
	for _, f := range fields {
		values[f] = m.Get(f)
	}
	return &Result{raw: raw, values: values, order: append([]Field(nil), fields...)}
}

// FromValues rebuilds a Result directly from a raw input and a plain
// field-name -> value map, for cache backends that deserialize a
// previously frozen Result (e.g. pkg/redis's distributed parsecache.Store)
// rather than building one fresh through Map.Freeze. Field order is
// reconstructed from the closed catalog's declaration order, restricted to
// whatever names are present in values; unrecognized names are dropped.
func FromValues(raw string, values map[string]string) *Result {
	out := make(map[Field]string, len(values))
	var order []Field
	for _, f := range AllFields {
		if v, ok := values[string(f)]; ok {
			out[f] = v
			order = append(order, f)
		}
	}
	return &Result{raw: raw, values: out, order: order}
}

// Result is an immutable snapshot of field values for one parsed input. It
// is safe to share across goroutines: nothing in Result is ever mutated
// after Freeze returns it.
type Result struct {
	raw    string
	values map[Field]string
	order  []Field
}

// Raw returns the original input this Result was produced from. For
// Client-Hints parses it is the raw User-Agent header value (possibly
// empty).
func (r *Result) Raw() string { return r.raw }

// Get returns the value of field f, or the appropriate default sentinel
// ("Unknown" for categorical fields, "??" for version-shaped fields) if f is
// unknown or was not included in the restricted field set this Result was
// built with.
func (r *Result) Get(f Field) string {
	if v, ok := r.values[f]; ok {
		return v
	}
	if !Known(f) {
		return Unknown
	}
	return Default(f)
}

// ToMap returns a plain map for the requested fields, or every field present
// in this Result if fields is empty.
func (r *Result) ToMap(fields ...Field) map[string]string {
	if len(fields) == 0 {
		fields = r.order
	}
	out := make(map[string]string, len(fields))
	for _, f := range fields {
		out[string(f)] = r.Get(f)
	}
	return out
}

// AllFieldNames returns the ordered set of field names this Result carries.
func (r *Result) AllFieldNames() []string {
	names := make([]string, len(r.order))
	for i, f := range r.order {
		names[i] = string(f)
	}
	return names
}

// String renders a compact multi-line representation for diagnostics.
func (r *Result) String() string {
	var b strings.Builder
	b.WriteString("Result{\n")
	for _, f := range r.order {
		b.WriteString("  ")
		b.WriteString(string(f))
		b.WriteString("=")
		b.WriteString(r.Get(f))
		b.WriteString("\n")
	}
	b.WriteString("}")
	return b.String()
}
