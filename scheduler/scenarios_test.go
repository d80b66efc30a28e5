package scheduler_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	seqarrange "github.com/gosequential/seqarrange"
	"github.com/gosequential/seqarrange/geom"
	"github.com/gosequential/seqarrange/seq"
)

// rawRect returns a width x height footprint polygon in raw slicer units, the
// form ObjectToPrint.PolygonsAtHeight expects: a multiple of
// seq.SolverScaleFactor per axis so preprocess.ScaleDown divides exactly.
func rawRect(width, height int) geom.Polygon {
	w := width * seq.SolverScaleFactor
	h := height * seq.SolverScaleFactor
	return geom.Polygon{{X: 0, Y: 0}, {X: w, Y: 0}, {X: w, Y: h}, {X: 0, Y: h}}
}

func rawSquare(side int) geom.Polygon {
	return rawRect(side, side)
}

func rectObject(id, width, height int) seq.ObjectToPrint {
	return seq.ObjectToPrint{
		ID:               id,
		PolygonsAtHeight: []seq.HeightPolygon{{Height: 0, Polygon: rawRect(width, height)}},
	}
}

func squareObject(id, side int) seq.ObjectToPrint {
	return rectObject(id, side, side)
}

func testConfig(printer seq.PrinterGeometry) seq.SolverConfiguration {
	cfg := seq.DefaultSolverConfiguration(printer)
	cfg.OptimizationTimeout = 2 * time.Second
	cfg.TemporalSpread = 4
	return cfg
}

// S1: a single object that comfortably fits the bed lands on one plate at
// the origin.
func TestScenarioS1SingleObjectAtOrigin(t *testing.T) {
	printer := seq.PrinterGeometry{XSize: 250, YSize: 210}
	cfg := testConfig(printer)
	objects := []seq.ObjectToPrint{squareObject(1, 50)}

	plates, err := seqarrange.Schedule(context.Background(), cfg, printer, objects, nil)
	require.NoError(t, err)
	require.Len(t, plates, 1)
	require.Len(t, plates[0].ScheduledObjects, 1)
	assert.Equal(t, 0, plates[0].ScheduledObjects[0].X)
	assert.Equal(t, 0, plates[0].ScheduledObjects[0].Y)
}

// S2: four identical objects that fit together land on one plate, footprints
// pairwise clear and passing the independent checker.
func TestScenarioS2FourObjectsShareOnePlate(t *testing.T) {
	printer := seq.PrinterGeometry{XSize: 250, YSize: 210}
	cfg := testConfig(printer)
	cfg.ObjectGroupSize = 4

	var objects []seq.ObjectToPrint
	for id := 1; id <= 4; id++ {
		objects = append(objects, squareObject(id, 60))
	}

	plates, err := seqarrange.Schedule(context.Background(), cfg, printer, objects, nil)
	require.NoError(t, err)
	require.Len(t, plates, 1)
	require.Len(t, plates[0].ScheduledObjects, 4)

	ok, err := seqarrange.Check(cfg, printer, objects, plates)
	require.NoError(t, err)
	assert.True(t, ok)
}

// S3: twelve identical objects, whose combined area alone exceeds a single
// 250x210 bed, must spill across multiple plates, each individually
// printable.
func TestScenarioS3TwelveObjectsSpanMultiplePlates(t *testing.T) {
	printer := seq.PrinterGeometry{XSize: 250, YSize: 210}
	cfg := testConfig(printer)

	var objects []seq.ObjectToPrint
	for id := 1; id <= 12; id++ {
		objects = append(objects, squareObject(id, 80))
	}

	plates, err := seqarrange.Schedule(context.Background(), cfg, printer, objects, nil)
	require.NoError(t, err)
	assert.Greater(t, len(plates), 1)

	total := 0
	for _, p := range plates {
		total += len(p.ScheduledObjects)
	}
	assert.Equal(t, 12, total)

	ok, err := seqarrange.Check(cfg, printer, objects, plates)
	require.NoError(t, err)
	assert.True(t, ok)
}

// S4: an object too large for the bed in either dimension fails preprocessing
// with the offending object's id attached, before any plate is produced.
func TestScenarioS4ObjectTooLargeForBed(t *testing.T) {
	printer := seq.PrinterGeometry{XSize: 250, YSize: 210}
	cfg := testConfig(printer)
	objects := []seq.ObjectToPrint{squareObject(9, 300)}

	_, err := seqarrange.Schedule(context.Background(), cfg, printer, objects, nil)
	require.Error(t, err)

	var tooLarge *seq.ObjectTooLargeError
	require.True(t, errors.As(err, &tooLarge))
	assert.Equal(t, 9, tooLarge.ID)
}

// S5: a lepox-linked pair that lands on the same plate keeps the glued
// object immediately ahead of its successor in print order.
func TestScenarioS5LepoxPairStaysAdjacent(t *testing.T) {
	printer := seq.PrinterGeometry{XSize: 250, YSize: 210}
	cfg := testConfig(printer)

	first := squareObject(1, 30)
	first.LepoxToNext = true
	second := squareObject(2, 30)
	objects := []seq.ObjectToPrint{first, second}

	plates, err := seqarrange.Schedule(context.Background(), cfg, printer, objects, nil)
	require.NoError(t, err)
	require.Len(t, plates, 1)
	require.Len(t, plates[0].ScheduledObjects, 2)

	idx := make(map[int]int, 2)
	for i, o := range plates[0].ScheduledObjects {
		idx[o.ID] = i
	}
	assert.Equal(t, idx[1]+1, idx[2], "lepox-linked object must immediately precede its successor")
}

// S6: two objects whose footprints don't overlap each other are still kept
// off the same plate when one's footprint falls inside the other's
// gantry-level (box-height) unreachable zone - a case a naive 2D packer
// working from footprints alone would accept.
func TestScenarioS6GantryZoneForcesSeparatePlates(t *testing.T) {
	// A print-head cross-section, at the gantry's height, wider and taller
	// than the bed itself: wherever its owning object ends up, the box
	// zone it casts covers the whole bed, so no second object can share
	// the plate without falling inside it.
	gantrySlice := geom.Polygon{
		{X: -250, Y: -250}, {X: 250, Y: -250}, {X: 250, Y: 250}, {X: -250, Y: 250},
	}
	const gantryHeight = 5000000
	printer := seq.PrinterGeometry{
		XSize:          250,
		YSize:          210,
		BoxHeights:     []int{gantryHeight},
		ExtruderSlices: map[int][]geom.Polygon{gantryHeight: {gantrySlice}},
	}
	cfg := testConfig(printer)
	cfg.ObjectGroupSize = 2

	first := squareObject(1, 20)
	first.TotalHeight = 10000000 // taller than the gantry height
	second := squareObject(2, 20)
	second.TotalHeight = 10000000
	objects := []seq.ObjectToPrint{first, second}

	plates, err := seqarrange.Schedule(context.Background(), cfg, printer, objects, nil)
	require.NoError(t, err)
	require.Len(t, plates, 2)
	assert.Len(t, plates[0].ScheduledObjects, 1)
	assert.Len(t, plates[1].ScheduledObjects, 1)

	ok, err := seqarrange.Check(cfg, printer, objects, plates)
	require.NoError(t, err)
	assert.True(t, ok)
}
