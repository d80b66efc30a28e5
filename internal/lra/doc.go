// Package lra implements a small DPLL(T)-style decision procedure for
// quantifier-free linear real arithmetic, specialised to the disjunctive
// constraint shapes the sequential arrangement solver needs: bed bounding,
// temporal ordering, point-outside-polygon, and line-non-intersection.
//
// No off-the-shelf SMT backend in the surrounding ecosystem exposes an
// incremental LRA theory with assumption-based retraction, so this package
// hand-rolls one: a Builder that accumulates variables and clauses (hard,
// or named assumptions that can be added and removed between calls without
// rebuilding the formula), and an unexported search engine that
// case-splits over each clause's literals, delegating conjunctive
// feasibility checks to a phase-1 simplex tableau (simplex.go).
//
// What:
//
//   - Builder: variable allocation, hard clauses, named assumptions.
//   - engine (engine.go): Builder.Solve runs its case-split search with a
//     soft deadline,
//     mirroring the branch-and-bound engine-struct shape used elsewhere in
//     this codebase (dedicated struct, explicit state, sparse deadline
//     checks) rather than building the search out of closures.
//   - simplex.go: bounded phase-1 simplex (Bland's rule, no cycling) that
//     decides feasibility only, used as the theory solver for each
//     candidate literal assignment.
//
// Why:
//
//   - Keeping the search (engine.go) and the theory (simplex.go) in
//     separate files lets each be tested independently: the theory solver
//     against hand-built linear systems, the search against small
//     hand-built clause sets with known SAT/UNSAT answers.
//
// Complexity:
//
//   - Solve: worst case exponential in the number of clauses (this is a
//     case-split search, not a full CDCL(T) implementation with clause
//     learning); in practice the deadline bounds wall-clock time and the
//     caller treats a timeout as UNSAT for that call (see §6 of
//     SPEC_FULL.md).
//   - Theory check: O(variables^2 * constraints) per simplex pivot.
package lra
