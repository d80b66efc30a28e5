// Package preprocess turns raw seq.ObjectToPrint values and a
// seq.PrinterGeometry into the flat, solver-ready shape every downstream
// package (internal/lra, optimizer, scheduler, checker) consumes: a
// PreparedObject carrying one counter-clockwise footprint polygon plus its
// ordered unreachable-zone polygons, in solver units.
//
// What:
//
//   - ScaleDown/ScaleUp: the lossless slicer-unit <-> solver-unit
//     round trip (divide/multiply by seq.SolverScaleFactor).
//   - Decimate: Douglas-Peucker-style vertex reduction followed by
//     counter-clockwise normalisation.
//   - CheckSize: rejects objects whose bounding box cannot fit the bed.
//   - BuildUnreachableZones: derives, per printer slice height, the
//     polygon another object's reference point may not enter.
//   - Prepare: the end-to-end pipeline from ObjectToPrint to PreparedObject.
//
// Why:
//
//   - Keeping the solver and scheduler free of polygon simplification and
//     unit-conversion concerns keeps internal/lra's constraint code
//     readable; every quantity it touches is already in solver units.
//
// Errors:
//
//   - ObjectTooLargeError: an object's bounding box exceeds the bed.
package preprocess
