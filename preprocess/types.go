package preprocess

import "github.com/gosequential/seqarrange/geom"

// ZoneHeight pairs a printer slice height with the unreachable-zone polygon
// an object's footprint casts at that height.
type ZoneHeight struct {
	Height int
	Zone   geom.Polygon
	// Box marks a box-height zone (extended along both axes by the
	// object's bounding box) as opposed to a convex-height zone (expanded
	// via convex-hull union).
	Box bool
}

// PreparedObject is one object reduced to the shape every solver-facing
// package operates on: a single counter-clockwise footprint polygon, in
// solver units, plus its ordered unreachable-zone polygons.
type PreparedObject struct {
	ID          int
	Footprint   geom.Polygon
	Zones       []ZoneHeight
	LepoxToNext bool
	// TotalHeight is the object's full print height, in the same units as
	// ZoneHeight.Height, used to gate box-height zones against neighbors
	// short enough to pass underneath them.
	TotalHeight int
}

// AppliesTo reports whether zone constrains placement against a neighbor
// whose full height is neighborTotalHeight: a box-height zone models an
// infinite bar (e.g. the filament hose or gantry) that may freely overlap
// bed area and objects shorter than it, colliding only with neighbors
// tall enough to reach it. Convex-height zones are precise silhouettes
// and always apply.
func (z ZoneHeight) AppliesTo(neighborTotalHeight int) bool {
	return !z.Box || neighborTotalHeight > z.Height
}
