package geom

// Point is an integer-coordinate 2D point.
type Point struct {
	X, Y int
}

// Add returns p translated by (dx, dy).
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Polygon is an ordered sequence of vertices with an implicit closing edge
// from the last point back to the first. Nil and short (<3 point) polygons
// are valid values that simply carry no area and contribute no containment
// constraints to callers.
type Polygon []Point

// Segment is a directed edge from A to B.
type Segment struct {
	A, B Point
}

// Vector returns B - A.
func (s Segment) Vector() Point {
	return s.B.Sub(s.A)
}

// BoundingBox is an axis-aligned bounding box, inclusive of both extremes.
type BoundingBox struct {
	MinX, MinY, MaxX, MaxY int
}

// Width returns MaxX - MinX.
func (b BoundingBox) Width() int { return b.MaxX - b.MinX }

// Height returns MaxY - MinY.
func (b BoundingBox) Height() int { return b.MaxY - b.MinY }

// Contains reports whether p lies within the box, inclusive of the border.
func (b BoundingBox) Contains(p Point) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY
}

// Translate returns b shifted by (dx, dy).
func (b BoundingBox) Translate(dx, dy int) BoundingBox {
	return BoundingBox{MinX: b.MinX + dx, MaxX: b.MaxX + dx, MinY: b.MinY + dy, MaxY: b.MaxY + dy}
}

// FitsWithin reports whether b's dimensions fit within outer's dimensions,
// i.e. a translated copy of b could be placed inside outer. It does not
// check actual placement, only extents.
func (b BoundingBox) FitsWithin(outer BoundingBox) bool {
	return b.Width() <= outer.Width() && b.Height() <= outer.Height()
}
