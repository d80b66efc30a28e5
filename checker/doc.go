// Package checker independently re-verifies a proposed arrangement: given
// the same printer geometry and the scheduled plate the solver produced,
// it re-tests every ordered pair of objects for collision using plain
// geometric predicates (no SMT backend), so a bug in the constraint
// builder cannot silently slip an overlapping arrangement through.
//
// What:
//
//   - Check: walks every plate, every ordered pair of objects on it, and
//     tests the earlier object's footprint against the later object's
//     unreachable zones with both a point-in-polygon test and an open
//     (non-touching) segment-intersection test, in both directions.
//
// Why:
//
//   - The solver's own refinement loop can only find violations it knows
//     to look for (the edges it has walked so far); an independent checker
//     re-derives collisions from scratch instead of trusting the model
//     that produced the schedule.
package checker
