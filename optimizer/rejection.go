package optimizer

import (
	"github.com/gosequential/seqarrange/geom"
	"github.com/gosequential/seqarrange/preprocess"
)

// areaExceedsPlate is the quick area-rejection check: if the combined area
// of every fixed and undecided footprint polygon exceeds the candidate
// plate's area, the size cannot be feasible and the solver need not be
// asked.
func areaExceedsPlate(fixed []FixedObject, undecided []preprocess.PreparedObject, plateWidth, plateHeight int) bool {
	var total float64
	for _, f := range fixed {
		total += geom.Area(f.Object.Footprint)
	}
	for _, u := range undecided {
		total += geom.Area(u.Footprint)
	}
	return total > float64(plateWidth)*float64(plateHeight)
}

// fixedOutsideCandidate is the quick extents-rejection check: if any
// already-fixed object's footprint, translated by its known offset, does
// not lie entirely within the candidate box, the size cannot be feasible.
func fixedOutsideCandidate(fixed []FixedObject, halfX, halfY, plateSizeX, plateSizeY int) bool {
	for _, f := range fixed {
		bb := geom.AABB(f.Object.Footprint)
		minX, maxX := bb.MinX+f.X, bb.MaxX+f.X
		minY, maxY := bb.MinY+f.Y, bb.MaxY+f.Y

		if minX < halfX || maxX > plateSizeX-halfX {
			return true
		}
		if minY < halfY || maxY > plateSizeY-halfY {
			return true
		}
	}
	return false
}
