// Package generator emits recursive induction benchmark problems.
//
// A problem of size n is a chain of Horn clauses
//
//	p(n1) :- p(n0), q(n1).
//	q(n1) :- p(n0), q(n0).
//	...
//	p(n<n>) :- p(n<n-1>), q(n<n>).
//	q(n<n>) :- p(n<n-1>), q(n<n-1>).
//
// closed by the base facts p(n0) and q(n0). Deriving p(n<n>) forces an
// evaluator to walk the whole chain, which makes the family a useful
// stress test for rule engines.
package generator

import (
	"github.com/tlipoca9/probgen/probkit"
)

// ToolName is the name of this tool, used in suite configurations.
const ToolName = "induction"

// Generator emits induction chain problems.
type Generator struct{}

// New creates a new Generator.
func New() *Generator {
	return &Generator{}
}

// Name returns the tool name.
func (ig *Generator) Name() string {
	return ToolName
}

// Generate emits the induction chain of the given size into p.
// For each i in [0, size) it emits the rule pair for step i+1, then the
// two base facts. A size <= 0 produces the base facts only.
func (ig *Generator) Generate(p *probkit.Problem, size int) error {
	for i := 0; i < size; i++ {
		p.Pf("p(n%d) :- p(n%d), q(n%d).", i+1, i, i+1)
		p.Pf("q(n%d) :- p(n%d), q(n%d).", i+1, i, i)
	}
	p.P("p(n0).")
	p.P("q(n0).")
	return nil
}
