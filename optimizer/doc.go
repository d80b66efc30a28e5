// Package optimizer implements the binary-centred group optimiser: given a
// formula with a mix of already-decided (fixed) and undecided objects, it
// searches for the plate size - expressed as a half-width inset from each
// side of the full bed - that admits a feasible placement of every
// undecided object, preferring the tightest margin.
//
// What:
//
//   - Optimize: the bisection search over inset half-widths described by
//     the design notes, back-ended by internal/lra's Builder/Refine for
//     each candidate size.
//   - Fast rejection: a total-area check and a fixed-object-extents check
//     that both skip the solver call entirely when a candidate size is
//     obviously infeasible.
//
// Why:
//
//   - Calling the solver at every candidate inset is the expensive path;
//     the two fast-rejection checks exist purely to avoid it when the
//     answer is already known.
//
// Complexity:
//
//   - O(log(plate_size)) solver calls per Optimize, each itself bounded by
//     internal/lra's refinement loop and deadline.
package optimizer
