package preprocess_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gosequential/seqarrange/geom"
	"github.com/gosequential/seqarrange/preprocess"
	"github.com/gosequential/seqarrange/printer"
	"github.com/gosequential/seqarrange/seq"
)

func scaledSquare(side int) geom.Polygon {
	return geom.Polygon{
		{X: 0, Y: 0},
		{X: side, Y: 0},
		{X: side, Y: side},
		{X: 0, Y: side},
	}
}

func TestScaleRoundTripIsExact(t *testing.T) {
	p := scaledSquare(10 * seq.SolverScaleFactor)
	down := preprocess.ScaleDown(p, seq.SolverScaleFactor)
	up := preprocess.ScaleUp(down, seq.SolverScaleFactor)
	assert.Equal(t, p, up)
}

func TestToleranceForMapping(t *testing.T) {
	assert.Equal(t, 450000.0, preprocess.ToleranceFor(seq.DecimationLow))
	assert.Equal(t, 150000.0, preprocess.ToleranceFor(seq.DecimationHigh))
	assert.Equal(t, 0.0, preprocess.ToleranceFor(seq.DecimationUndefined))
}

func TestDecimateDropsNearCollinearVertices(t *testing.T) {
	p := geom.Polygon{
		{X: 0, Y: 0}, {X: 5, Y: 1}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10},
	}
	out := preprocess.Decimate(p, 5)
	assert.Less(t, len(out), len(p))
	assert.True(t, geom.IsCounterClockwise(out))
}

func TestCheckSizeRejectsOversizedObject(t *testing.T) {
	bed := seq.PrinterGeometry{XSize: 250, YSize: 210}.Bed()
	huge := scaledSquare(300 * seq.SolverScaleFactor)
	assert.False(t, preprocess.CheckSize(bed, huge, seq.SolverScaleFactor))

	err := preprocess.CheckAndWrap(bed, huge, seq.SolverScaleFactor, 42)
	require.Error(t, err)
	var tooLarge *seq.ObjectTooLargeError
	assert.ErrorAs(t, err, &tooLarge)
	assert.Equal(t, 42, tooLarge.ID)
}

func TestBuildUnreachableZonesCoversAllHeights(t *testing.T) {
	footprint := scaledSquare(10)
	zones := preprocess.BuildUnreachableZones(footprint, printer.PrusaMK3S.ConvexHeights, printer.PrusaMK3S.BoxHeights, printer.PrusaMK3S.ExtruderSlices)
	assert.Len(t, zones, 4)
}

func TestPrepareEndToEnd(t *testing.T) {
	cfg := seq.DefaultSolverConfiguration(printer.PrusaMK3S)
	obj := seq.ObjectToPrint{
		ID:          1,
		TotalHeight: 1,
		PolygonsAtHeight: []seq.HeightPolygon{
			{Height: 0, Polygon: scaledSquare(10 * seq.SolverScaleFactor)},
		},
	}

	prepared, err := preprocess.Prepare(cfg, printer.PrusaMK3S, obj)
	require.NoError(t, err)
	assert.Equal(t, 1, prepared.ID)
	assert.True(t, geom.IsCounterClockwise(prepared.Footprint))
	assert.Len(t, prepared.Zones, 4)
}

func TestPrepareRejectsOversizedObject(t *testing.T) {
	cfg := seq.DefaultSolverConfiguration(printer.PrusaMK3S)
	obj := seq.ObjectToPrint{
		ID: 2,
		PolygonsAtHeight: []seq.HeightPolygon{
			{Height: 0, Polygon: scaledSquare(300 * seq.SolverScaleFactor)},
		},
	}

	_, err := preprocess.Prepare(cfg, printer.PrusaMK3S, obj)
	require.Error(t, err)
}

func TestPrepareAllStopsAtFirstFailure(t *testing.T) {
	cfg := seq.DefaultSolverConfiguration(printer.PrusaMK3S)
	objs := []seq.ObjectToPrint{
		{ID: 1, PolygonsAtHeight: []seq.HeightPolygon{{Height: 0, Polygon: scaledSquare(10 * seq.SolverScaleFactor)}}},
		{ID: 2, PolygonsAtHeight: []seq.HeightPolygon{{Height: 0, Polygon: scaledSquare(300 * seq.SolverScaleFactor)}}},
	}

	_, err := preprocess.PrepareAll(cfg, printer.PrusaMK3S, objs)
	require.Error(t, err)
}
