package printer

import (
	"github.com/gosequential/seqarrange/geom"
	"github.com/gosequential/seqarrange/seq"
)

// Height keys the print head's moving assembly is sliced at, matching the
// heights the original fixtures tag nozzle/extruder/hose/gantry polygons
// with: nozzle at ground level, extruder above it, then the filament hose
// and the gantry bar at increasing height.
const (
	HeightNozzle   = 0
	HeightExtruder = 2000000
	HeightHose     = 18000000
	HeightGantry   = 26000000
)

// ConvexLevels and BoxLevels record a ring count for the nozzle/extruder
// silhouette (convex rings) and the hose/gantry silhouette (box rings) of
// a given printer profile. preprocess.BuildUnreachableZones does not read
// them: it builds exactly one zone per printer slice.
type Levels struct {
	ConvexLevels int
	BoxLevels    int
}

var (
	// LevelsMK3S describes the Original Prusa MK3S+ print head.
	LevelsMK3S = Levels{ConvexLevels: 2, BoxLevels: 1}
	// LevelsMK4 describes the Original Prusa MK4 print head.
	LevelsMK4 = Levels{ConvexLevels: 3, BoxLevels: 2}
	// LevelsXL describes one toolhead of the Original Prusa XL.
	LevelsXL = Levels{ConvexLevels: 2, BoxLevels: 2}
)

func centeredSquare(halfSide int) geom.Polygon {
	return geom.Polygon{
		{X: -halfSide, Y: -halfSide},
		{X: halfSide, Y: -halfSide},
		{X: halfSide, Y: halfSide},
		{X: -halfSide, Y: halfSide},
	}
}

func centeredBar(halfWidth, halfLength int, alongX bool) geom.Polygon {
	if alongX {
		return geom.Polygon{
			{X: -halfLength, Y: -halfWidth},
			{X: halfLength, Y: -halfWidth},
			{X: halfLength, Y: halfWidth},
			{X: -halfLength, Y: halfWidth},
		}
	}
	return geom.Polygon{
		{X: -halfWidth, Y: -halfLength},
		{X: halfWidth, Y: -halfLength},
		{X: halfWidth, Y: halfLength},
		{X: -halfWidth, Y: halfLength},
	}
}

func slices(nozzle, extruder, hose, gantry geom.Polygon) map[int][]geom.Polygon {
	return map[int][]geom.Polygon{
		HeightNozzle:   {nozzle},
		HeightExtruder: {extruder},
		HeightHose:     {hose},
		HeightGantry:   {gantry},
	}
}

// PrusaMK3S is the Original Prusa MK3S+ fixture: a 250x210mm bed.
var PrusaMK3S = seq.PrinterGeometry{
	XSize:         250,
	YSize:         210,
	ConvexHeights: []int{HeightNozzle, HeightExtruder},
	BoxHeights:    []int{HeightHose, HeightGantry},
	ExtruderSlices: slices(
		centeredSquare(2),
		centeredSquare(15),
		centeredBar(10, 130, true),
		centeredBar(6, 125, false),
	),
}

// PrusaMK4 is the Original Prusa MK4 fixture: a 250x220mm bed with a bulkier
// extruder and filament-hose silhouette than the MK3S.
var PrusaMK4 = seq.PrinterGeometry{
	XSize:         250,
	YSize:         220,
	ConvexHeights: []int{HeightNozzle, HeightExtruder},
	BoxHeights:    []int{HeightHose, HeightGantry},
	ExtruderSlices: slices(
		centeredSquare(2),
		centeredSquare(18),
		centeredBar(12, 135, true),
		centeredBar(7, 130, false),
	),
}

// PrusaXL is a single-toolhead Original Prusa XL fixture: a 360x360mm bed.
var PrusaXL = seq.PrinterGeometry{
	XSize:         360,
	YSize:         360,
	ConvexHeights: []int{HeightNozzle, HeightExtruder},
	BoxHeights:    []int{HeightHose, HeightGantry},
	ExtruderSlices: slices(
		centeredSquare(2),
		centeredSquare(16),
		centeredBar(11, 190, true),
		centeredBar(6, 185, false),
	),
}

// ForGeometry maps a printer's bed dimensions to its unreachable-zone ring
// counts, so callers that only hold a seq.PrinterGeometry (e.g. loaded from
// a file) can still look up the matching profile's Levels by value.
func ForGeometry(g seq.PrinterGeometry) (Levels, bool) {
	switch {
	case g.XSize == PrusaMK3S.XSize && g.YSize == PrusaMK3S.YSize:
		return LevelsMK3S, true
	case g.XSize == PrusaMK4.XSize && g.YSize == PrusaMK4.YSize:
		return LevelsMK4, true
	case g.XSize == PrusaXL.XSize && g.YSize == PrusaXL.YSize:
		return LevelsXL, true
	default:
		return Levels{}, false
	}
}
