package geom

// Quadrant names one of the four equal parts of a Rect.
// North is towards smaller Y, west towards smaller X.
type Quadrant int

const (
	NW Quadrant = iota
	NE
	SW
	SE
)

func (q Quadrant) String() string {
	switch q {
	case NW:
		return "NW"
	case NE:
		return "NE"
	case SW:
		return "SW"
	case SE:
		return "SE"
	default:
		return "Quadrant(?)"
	}
}

// Rect is an axis-aligned rectangle stored as a center and half extents.
type Rect struct {
	Center        Point
	HalfDimension Point
}

// RectFromBounds returns the rectangle spanning [minX, maxX] x [minY, maxY].
func RectFromBounds(minX, minY, maxX, maxY float64) Rect {
	return Rect{
		Center:        Point{X: (minX + maxX) / 2, Y: (minY + maxY) / 2},
		HalfDimension: Point{X: (maxX - minX) / 2, Y: (maxY - minY) / 2},
	}
}

// Around returns the square of half size r centered on p.
func Around(p Point, r float64) Rect {
	return Rect{Center: p, HalfDimension: Point{X: r, Y: r}}
}

// Min returns the top-left corner.
func (b Rect) Min() Point {
	return b.Center.Sub(b.HalfDimension)
}

// Max returns the bottom-right corner.
func (b Rect) Max() Point {
	return b.Center.Add(b.HalfDimension)
}

// Width returns the horizontal extent.
func (b Rect) Width() float64 {
	return 2 * b.HalfDimension.X
}

// Height returns the vertical extent.
func (b Rect) Height() float64 {
	return 2 * b.HalfDimension.Y
}

// Contains reports whether p lies in the rectangle. All four edges are
// inclusive, so a point on a shared edge is contained by both neighbours.
func (b Rect) Contains(p Point) bool {
	return p.X >= b.Center.X-b.HalfDimension.X &&
		p.X <= b.Center.X+b.HalfDimension.X &&
		p.Y >= b.Center.Y-b.HalfDimension.Y &&
		p.Y <= b.Center.Y+b.HalfDimension.Y
}

// Intersects reports whether the rectangles overlap. Edges are inclusive
// to match Contains: rectangles that only touch do intersect.
func (b Rect) Intersects(other Rect) bool {
	return b.Center.X+b.HalfDimension.X >= other.Center.X-other.HalfDimension.X &&
		b.Center.X-b.HalfDimension.X <= other.Center.X+other.HalfDimension.X &&
		b.Center.Y+b.HalfDimension.Y >= other.Center.Y-other.HalfDimension.Y &&
		b.Center.Y-b.HalfDimension.Y <= other.Center.Y+other.HalfDimension.Y
}

// Quadrant returns the requested quarter of the rectangle, split at the
// midpoint.
func (b Rect) Quadrant(q Quadrant) Rect {
	half := Point{X: b.HalfDimension.X / 2, Y: b.HalfDimension.Y / 2}
	c := b.Center
	switch q {
	case NW:
		c = Point{X: c.X - half.X, Y: c.Y - half.Y}
	case NE:
		c = Point{X: c.X + half.X, Y: c.Y - half.Y}
	case SW:
		c = Point{X: c.X - half.X, Y: c.Y + half.Y}
	default:
		c = Point{X: c.X + half.X, Y: c.Y + half.Y}
	}
	return Rect{Center: c, HalfDimension: half}
}
