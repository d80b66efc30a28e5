package lra

import (
	"context"
	"time"
)

// Builder accumulates variables and clauses for one formula. Hard clauses
// are permanent; assumptions are named so a caller (the group optimiser,
// binary-searching over plate extents) can retract and replace them
// between Solve calls without rebuilding the rest of the formula.
type Builder struct {
	nextVar     VarID
	varNames    map[VarID]string
	hard        []Clause
	assumptions map[string]Clause
	assumeOrder []string
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{
		varNames:    map[VarID]string{},
		assumptions: map[string]Clause{},
	}
}

// NewVar allocates a fresh real-valued decision or auxiliary variable.
// name is carried only for diagnostics.
func (b *Builder) NewVar(name string) VarID {
	id := b.nextVar
	b.nextVar++
	b.varNames[id] = name
	return id
}

// NumVars reports how many variables have been allocated so far - the
// "hidden-variable counter" the refinement loop bumps by 2 per added
// line-non-intersection clause.
func (b *Builder) NumVars() int {
	return int(b.nextVar)
}

// AssertHard adds a permanent clause. A clause with a single literal is an
// ordinary assertion; one with several is a disjunction.
func (b *Builder) AssertHard(lits ...Literal) {
	b.hard = append(b.hard, Clause(lits))
}

// AssertAssumption registers (or replaces) a named, retractable clause.
func (b *Builder) AssertAssumption(name string, lits ...Literal) {
	if _, exists := b.assumptions[name]; !exists {
		b.assumeOrder = append(b.assumeOrder, name)
	}
	b.assumptions[name] = Clause(lits)
}

// RemoveAssumption drops a previously registered assumption.
func (b *Builder) RemoveAssumption(name string) error {
	if _, ok := b.assumptions[name]; !ok {
		return ErrUnknownAssumption
	}
	delete(b.assumptions, name)
	for i, n := range b.assumeOrder {
		if n == name {
			b.assumeOrder = append(b.assumeOrder[:i], b.assumeOrder[i+1:]...)
			break
		}
	}
	return nil
}

// Vars returns every variable allocated on this builder, in allocation
// order.
func (b *Builder) Vars() []VarID {
	vars := make([]VarID, b.nextVar)
	for i := range vars {
		vars[i] = VarID(i)
	}
	return vars
}

// Solve checks the current formula (hard clauses plus all live
// assumptions) for satisfiability, honouring both ctx and timeout as a
// soft deadline for the search.
func (b *Builder) Solve(ctx context.Context, timeout time.Duration) (Status, Model) {
	clauses := make([]Clause, 0, len(b.hard)+len(b.assumeOrder))
	clauses = append(clauses, b.hard...)
	for _, name := range b.assumeOrder {
		clauses = append(clauses, b.assumptions[name])
	}

	deadline := time.Now().Add(timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}

	e := newEngine(b.Vars(), clauses, deadline, timeout > 0)
	return e.solve(ctx)
}
