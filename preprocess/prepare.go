package preprocess

import (
	"github.com/samber/lo"

	"github.com/gosequential/seqarrange/geom"
	"github.com/gosequential/seqarrange/seq"
)

// Prepare reduces a single ObjectToPrint into a PreparedObject: it picks the
// ground-level (height 0) polygon as the object's footprint, scales it down
// to solver units, optionally decimates it, checks it against the bed, and
// builds its unreachable zones from the printer's slice set.
//
// Returns a *seq.ObjectTooLargeError if obj's footprint cannot fit the bed.
func Prepare(cfg seq.SolverConfiguration, printer seq.PrinterGeometry, obj seq.ObjectToPrint) (PreparedObject, error) {
	ground, found := lo.Find(obj.PolygonsAtHeight, func(hp seq.HeightPolygon) bool {
		return hp.Height == 0
	})
	if !found || len(ground.Polygon) == 0 {
		return PreparedObject{}, &seq.ObjectTooLargeError{ID: obj.ID}
	}
	groundPolygon := ground.Polygon

	if err := CheckAndWrap(printer.Bed(), groundPolygon, seq.SolverScaleFactor, obj.ID); err != nil {
		return PreparedObject{}, err
	}

	footprint := ScaleDown(groundPolygon, seq.SolverScaleFactor)
	if tol := ToleranceFor(cfg.DecimationPrecision); tol > 0 {
		footprint = Decimate(footprint, tol/float64(seq.SolverScaleFactor))
	} else {
		footprint = geom.Normalize(footprint)
	}

	zones := BuildUnreachableZones(footprint, printer.ConvexHeights, printer.BoxHeights, printer.ExtruderSlices)

	return PreparedObject{
		ID:          obj.ID,
		Footprint:   footprint,
		Zones:       zones,
		LepoxToNext: obj.LepoxToNext,
		TotalHeight: obj.TotalHeight,
	}, nil
}

// PrepareAll prepares every object in objs, in order, stopping at the first
// ObjectTooLargeError.
func PrepareAll(cfg seq.SolverConfiguration, printer seq.PrinterGeometry, objs []seq.ObjectToPrint) ([]PreparedObject, error) {
	prepared := make([]PreparedObject, 0, len(objs))
	for _, obj := range objs {
		p, err := Prepare(cfg, printer, obj)
		if err != nil {
			return nil, err
		}
		prepared = append(prepared, p)
	}
	return prepared, nil
}
