package preprocess

import "github.com/gosequential/seqarrange/geom"

// BuildConvexZone derives a convex-height unreachable zone: the convex hull
// of the footprint's points together with every footprint vertex offset by
// every slice vertex, in the footprint's own coordinates (no centring is
// applied). Any reference point
// the other object places inside this hull would collide the moving head
// (shaped like slice) with this object's footprint.
func BuildConvexZone(footprint, slice geom.Polygon) geom.Polygon {
	if len(slice) == 0 {
		return nil
	}
	pts := make([]geom.Point, 0, len(footprint)+len(slice))
	pts = append(pts, footprint...)
	for _, s := range slice {
		for _, f := range footprint {
			pts = append(pts, geom.Point{X: s.X + f.X, Y: s.Y + f.Y})
		}
	}
	return geom.ConvexHull(pts)
}

// BuildBoxZone derives a box-height unreachable zone: the slice polygon
// extended along both principal axes by the footprint's bounding box, since
// a box-height level is treated as an infinite bar rather than a precise
// silhouette.
func BuildBoxZone(footprint, slice geom.Polygon) geom.Polygon {
	if len(slice) == 0 {
		return nil
	}
	fbb := geom.AABB(footprint)
	sbb := geom.AABB(slice)

	minX := sbb.MinX + fbb.MinX
	maxX := sbb.MaxX + fbb.MaxX
	minY := sbb.MinY + fbb.MinY
	maxY := sbb.MaxY + fbb.MaxY

	return geom.Polygon{
		{X: minX, Y: minY},
		{X: maxX, Y: minY},
		{X: maxX, Y: maxY},
		{X: minX, Y: maxY},
	}
}

// BuildUnreachableZones derives one zone per printer slice height for the
// given footprint, using convexHeights' slices for convex zones and
// boxHeights' slices for box zones. slices maps a height to the (already
// scaled-down) print-head cross-section polygon at that height.
func BuildUnreachableZones(footprint geom.Polygon, convexHeights, boxHeights []int, slices map[int][]geom.Polygon) []ZoneHeight {
	var zones []ZoneHeight

	for _, h := range convexHeights {
		for _, slice := range slices[h] {
			zones = append(zones, ZoneHeight{Height: h, Zone: BuildConvexZone(footprint, slice), Box: false})
		}
	}
	for _, h := range boxHeights {
		for _, slice := range slices[h] {
			zones = append(zones, ZoneHeight{Height: h, Zone: BuildBoxZone(footprint, slice), Box: true})
		}
	}

	return zones
}
