// Package postprocess runs the ordered calculator pipeline that derives
// and normalizes secondary fields once the resolver has produced its
// initial field map.
package postprocess

import (
	"errors"
	"fmt"

	"github.com/dante-securestack/pom-mono-yauaa/pkg/field"
)

// Calculator is one pure, named step of the pipeline: it reads a declared
// set of fields already finalized by earlier calculators (or the
// resolver) and writes a declared set of fields of its own.
type Calculator struct {
	Name   string
	Reads  []field.Field
	Writes []field.Field
	Apply  func(m *field.Map) error
}

// Sentinel build-time errors. ConfigError in the root package wraps
// these when compiling the built-in pipeline.
var (
	ErrDuplicateWrite = errors.New("postprocess: field written by more than one calculator")
	ErrCyclicPipeline = errors.New("postprocess: calculator dependency cycle")
	ErrOutOfOrder     = errors.New("postprocess: calculator reads a field before its writer runs")
)

// Pipeline is the immutable, validated, ordered sequence of calculators.
type Pipeline struct {
	calculators []Calculator
}

// NewPipeline validates and freezes a sequence of calculators, in the
// order they should run. Validation checks: (1) no field is written by
// more than one calculator, (2) the reads/writes dependency graph has no
// cycle, (3) the declared order is itself a valid linearization of that
// graph (every read of a calculator-written field happens after the
// calculator that writes it). Any violation is a construction-time
// failure, never surfaced at parse time.
func NewPipeline(calculators ...Calculator) (*Pipeline, error) {
	writer := make(map[field.Field]int, len(calculators))
	for i, c := range calculators {
		for _, w := range c.Writes {
			if prev, ok := writer[w]; ok {
				return nil, fmt.Errorf("%w: %s written by both %q and %q",
					ErrDuplicateWrite, w, calculators[prev].Name, c.Name)
			}
			writer[w] = i
		}
	}

	// producer excludes self-transform writes (a calculator that both
	// reads and writes the same field, e.g. MinimalVersionTrim): such a
	// calculator narrows a field in place for later consumers, but it
	// never produced the field's first value, so it imposes no ordering
	// constraint on calculators that read the pre-transform value. Only
	// producer entries feed the cycle graph and the order check below.
	producer := make(map[field.Field]int, len(writer))
	for w, i := range writer {
		if !fieldIn(calculators[i].Reads, w) {
			producer[w] = i
		}
	}

	adj := make([][]int, len(calculators))
	indegree := make([]int, len(calculators))
	for j, c := range calculators {
		seen := make(map[int]bool)
		for _, r := range c.Reads {
			i, ok := producer[r]
			if !ok || i == j || seen[i] {
				continue
			}
			seen[i] = true
			adj[i] = append(adj[i], j)
			indegree[j]++
		}
	}
	if hasCycle(adj, indegree) {
		return nil, ErrCyclicPipeline
	}

	for j, c := range calculators {
		for _, r := range c.Reads {
			if i, ok := producer[r]; ok && i > j {
				return nil, fmt.Errorf("%w: %q reads %s before %q writes it",
					ErrOutOfOrder, c.Name, r, calculators[i].Name)
			}
		}
	}

	return &Pipeline{calculators: calculators}, nil
}

// fieldIn reports whether f appears in fields.
func fieldIn(fields []field.Field, f field.Field) bool {
	for _, x := range fields {
		if x == f {
			return true
		}
	}
	return false
}

// hasCycle runs Kahn's algorithm over the writer->reader dependency graph.
func hasCycle(adj [][]int, indegree []int) bool {
	indeg := append([]int(nil), indegree...)
	queue := make([]int, 0, len(indeg))
	for i, d := range indeg {
		if d == 0 {
			queue = append(queue, i)
		}
	}
	visited := 0
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		visited++
		for _, v := range adj[u] {
			indeg[v]--
			if indeg[v] == 0 {
				queue = append(queue, v)
			}
		}
	}
	return visited != len(indegree)
}

// Run executes every calculator in declared order against m. A
// calculator's Apply is expected never to fail in practice (all of
// ruleset's calculators are pure lookups over already-finalized fields),
// but Run still propagates an error if one does, wrapped with the
// calculator's name for diagnostics.
func (p *Pipeline) Run(m *field.Map) error {
	for _, c := range p.calculators {
		if err := c.Apply(m); err != nil {
			return fmt.Errorf("postprocess: calculator %q: %w", c.Name, err)
		}
	}
	return nil
}

// Len reports how many calculators the pipeline runs.
func (p *Pipeline) Len() int { return len(p.calculators) }
