// Package rational implements an exact fraction type with int64 numerator
// and denominator. No other package of this module imports it: the
// engine's solver values and temporal values are float64.
//
// Design goals:
//   - Fidelity over elegance: comparisons go through a float64 projection,
//     matching the feasibility decisions of the system this engine
//     reproduces. Switching to exact cross-multiplication comparisons would
//     change which pairs of edges are judged "intersecting" during
//     refinement and can push searches past their timeout on otherwise
//     solvable inputs - see Less and Greater.
//   - No canonicalisation: Num/Den pairs are never reduced to lowest terms.
//     A denominator may be negative; IsPositive and IsNegative account for
//     that by inspecting the sign of the product Num*Den rather than Num
//     alone.
//   - Silent overflow by default: arithmetic wraps on int64 overflow; only
//     the checked helper AddIntChecked returns ErrArithmeticOverflow.
package rational
