package seq

import "github.com/gosequential/seqarrange/geom"

// SlicerScaleFactor converts slicer-unit coordinates ("scaled micrometres")
// to millimetres: one millimetre is SlicerScaleFactor slicer units.
const SlicerScaleFactor = 100000

// SolverScaleFactor converts slicer units down to the coarser integer grid
// the constraint solver reasons over. Distinct from SlicerScaleFactor: a
// PrinterGeometry's X/Y size is already expressed in solver units (slicer
// units / SlicerScaleFactor), while individual object polygons are scaled
// down by SolverScaleFactor during preprocessing (see the preprocess
// package).
const SolverScaleFactor = 50000

// GroundPresenceTime is the base temporal offset the scheduler starts
// numbering decided objects' T values from, on every plate.
const GroundPresenceTime = 32

// TemporalAbsenceThreshold and TemporalPresenceThreshold pin an object's T
// value in consequential mode: objects designated "missing" get
// T < TemporalAbsenceThreshold, objects designated "present" get
// T > TemporalPresenceThreshold. Independent of a configuration's
// TemporalSpread.
const (
	TemporalAbsenceThreshold  = -16
	TemporalPresenceThreshold = 16
)

// IntersectionRepulsionMin and IntersectionRepulsionMax bound the
// line-parameter separation band [-0.01, 1.01] used by the line-
// non-intersection constraint family: a line parameter outside this band
// is considered "off the segment" for separation purposes.
const (
	IntersectionRepulsionMin = -0.01
	IntersectionRepulsionMax = 1.01
)

// HeightPolygon pairs a height (a key into a PrinterGeometry's slice sets)
// with the object's convex-hull footprint polygon above that height.
type HeightPolygon struct {
	Height  int
	Polygon geom.Polygon
}

// ObjectToPrint is one object to be arranged. LepoxToNext forces it to be
// scheduled immediately before the next object in the input list, on the
// same plate, once both are decided.
type ObjectToPrint struct {
	ID              int
	LepoxToNext     bool
	TotalHeight     int
	PolygonsAtHeight []HeightPolygon
}

// PrinterGeometry describes the printer's bed and the moving print-head
// assembly's cross-section at each distinguished height. ConvexHeights
// slices are treated as convex carriers that may not overlap any object;
// BoxHeights slices are treated as infinite bars along both axes that may
// overlap bed area but not taller objects. X/Y size are in solver units.
type PrinterGeometry struct {
	XSize          int
	YSize          int
	ConvexHeights  []int
	BoxHeights     []int
	ExtruderSlices map[int][]geom.Polygon
}

// Bed returns the printer's bed polygon as an axis-aligned rectangle
// spanning [0, XSize] x [0, YSize].
func (g PrinterGeometry) Bed() geom.Polygon {
	return geom.Polygon{
		{X: 0, Y: 0},
		{X: g.XSize, Y: 0},
		{X: g.XSize, Y: g.YSize},
		{X: 0, Y: g.YSize},
	}
}

// DecimationPrecision selects the tolerance used when simplifying object
// polygons during preprocessing.
type DecimationPrecision int

const (
	// DecimationUndefined disables decimation.
	DecimationUndefined DecimationPrecision = iota
	// DecimationLow applies a coarser (larger-tolerance) simplification.
	DecimationLow
	// DecimationHigh applies a finer (smaller-tolerance) simplification.
	DecimationHigh
)

// ScheduledObject is one object's decided placement, in slicer units.
type ScheduledObject struct {
	ID   int
	X, Y int
}

// ScheduledPlate is an ordered list of scheduled objects, ascending by
// their internal temporal value: ScheduledObjects[0] prints first.
type ScheduledPlate struct {
	ScheduledObjects []ScheduledObject
}
