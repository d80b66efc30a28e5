package geom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gosequential/seqarrange/geom"
)

func square(side int) geom.Polygon {
	return geom.Polygon{
		{X: 0, Y: 0},
		{X: side, Y: 0},
		{X: side, Y: side},
		{X: 0, Y: side},
	}
}

func TestAABB(t *testing.T) {
	p := square(10).Translate(5, -3)
	bb := geom.AABB(p)
	assert.Equal(t, geom.BoundingBox{MinX: 5, MinY: -3, MaxX: 15, MaxY: 7}, bb)
}

func TestAreaAndOrientation(t *testing.T) {
	p := square(10)
	assert.True(t, geom.IsCounterClockwise(p))
	assert.Equal(t, 100.0, geom.Area(p))

	rev := geom.Reverse(p)
	assert.False(t, geom.IsCounterClockwise(rev))
	assert.Equal(t, 100.0, geom.Area(rev))
}

func TestNormalizeFlipsClockwise(t *testing.T) {
	cw := geom.Reverse(square(10))
	norm := geom.Normalize(cw)
	assert.True(t, geom.IsCounterClockwise(norm))
}

func TestSegmentsIntersectCrossing(t *testing.T) {
	a, u := geom.Point{X: 0, Y: 0}, geom.Point{X: 10, Y: 10}
	b, v := geom.Point{X: 0, Y: 10}, geom.Point{X: 10, Y: -10}
	assert.True(t, geom.SegmentsIntersect(a, u, b, v))
}

func TestSegmentsIntersectParallelNoCross(t *testing.T) {
	a, u := geom.Point{X: 0, Y: 0}, geom.Point{X: 10, Y: 0}
	b, v := geom.Point{X: 0, Y: 5}, geom.Point{X: 10, Y: 0}
	assert.False(t, geom.SegmentsIntersect(a, u, b, v))
}

func TestSegmentsIntersectOpenToleratesSharedVertex(t *testing.T) {
	// Two segments sharing exactly the endpoint (10,10): the closed test
	// reports a touch, the open test does not.
	a, u := geom.Point{X: 0, Y: 0}, geom.Point{X: 10, Y: 10}
	b, v := geom.Point{X: 10, Y: 10}, geom.Point{X: 20, Y: 0}
	assert.True(t, geom.SegmentsIntersect(a, u, b, v))
	assert.False(t, geom.SegmentsIntersectOpen(a, u, b, v))
}

func TestConvexHullSquareWithInteriorPoint(t *testing.T) {
	pts := []geom.Point{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10},
		{X: 5, Y: 5}, // interior, must be dropped
	}
	hull := geom.ConvexHull(pts)
	assert.Len(t, hull, 4)
	assert.True(t, geom.IsCounterClockwise(hull))
}

func TestHalfPlaneOutside(t *testing.T) {
	p := square(10)
	assert.True(t, geom.PointOutsidePolygon(p, geom.Point{X: 20, Y: 20}))
	assert.False(t, geom.PointOutsidePolygon(p, geom.Point{X: 5, Y: 5}))
}

func TestPointOutsidePolygonDegenerate(t *testing.T) {
	var tiny geom.Polygon = []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 1}}
	assert.True(t, geom.PointOutsidePolygon(tiny, geom.Point{X: 0, Y: 0}))
}
