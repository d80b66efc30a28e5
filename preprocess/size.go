package preprocess

import (
	"github.com/gosequential/seqarrange/geom"
	"github.com/gosequential/seqarrange/seq"
)

// CheckSize reports whether p's axis-aligned bounding box - p given in
// slicer units, bed given in solver units - fits within the bed's width
// and height under some translation. It does not check for a specific
// placement, only that one could exist.
func CheckSize(bed geom.Polygon, p geom.Polygon, scaleFactor int) bool {
	bedBB := geom.AABB(bed)
	pBB := geom.AABB(p)

	pWidth := pBB.Width() / scaleFactor
	pHeight := pBB.Height() / scaleFactor

	return pWidth <= bedBB.Width() && pHeight <= bedBB.Height()
}

// CheckAndWrap calls CheckSize and, on failure, returns a *seq.ObjectTooLargeError
// tagged with id.
func CheckAndWrap(bed geom.Polygon, p geom.Polygon, scaleFactor, id int) error {
	if CheckSize(bed, p, scaleFactor) {
		return nil
	}
	return &seq.ObjectTooLargeError{ID: id}
}
