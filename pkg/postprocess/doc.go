// Package postprocess runs the calculator pipeline the resolver's field
// map passes through before being frozen into a Result: class-from-name
// lookups, name/version composition, version-major shortening, language
// expansion, and (when configured) minimal-version trimming. See
// pkg/resolve for the stage that precedes this one.
package postprocess
