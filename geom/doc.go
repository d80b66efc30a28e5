// Package geom provides integer-coordinate geometry primitives used by the
// arrangement engine: points, polygons, axis-aligned bounding boxes,
// segment intersection, convex hull, and half-plane tests.
//
// Coordinates are plain ints throughout ("scaled micrometres" or solver
// units, depending on the caller's stage of processing); geom itself is
// agnostic to which scale is in play. Polygons are ordered vertex slices
// with an implicit wrap-around edge from the last point back to the first.
//
// # Conventions
//
//   - A Polygon is considered well-formed for containment tests once it has
//     at least 3 points; shorter polygons contribute no constraints
//     upstream (see the preprocess and internal/lra packages).
//   - Orientation matters for the half-plane test: polygons are expected to
//     be counter-clockwise once they reach the constraint builder. Use
//     Orientation and Reverse to normalize untrusted input.
package geom
