/*
Package quadtree implements a region quadtree over points carrying a payload.

A leaf stores up to its capacity of items. The first insertion beyond that
subdivides the region into four quadrants, once, and every later insertion
is routed into a quadrant. Items that were stored before the split stay
where they landed, so an internal region may still hold up to capacity
items of its own. Queries visit both.

A Quadtree is not safe for concurrent mutation. Concurrent queries are fine
once insertion has finished.
*/
package quadtree

import "github.com/gogpu/treegen/geom"

// Item is a stored point and its payload.
type Item[T any] struct {
	Point geom.Point
	Value T
}

// Quadtree is one region of the partition.
type Quadtree[T any] struct {
	boundary geom.Rect
	capacity int
	items    []Item[T]

	// children is nil until the region subdivides, then holds the NW, NE,
	// SW and SE quadrants in that order.
	children *[4]Quadtree[T]
}

// New returns an empty quadtree covering boundary. A capacity below 1 is
// raised to 1.
func New[T any](boundary geom.Rect, capacity int) *Quadtree[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &Quadtree[T]{
		boundary: boundary,
		capacity: capacity,
		items:    make([]Item[T], 0, capacity),
	}
}

// Boundary returns the region covered by q.
func (q *Quadtree[T]) Boundary() geom.Rect {
	return q.boundary
}

// Capacity returns the number of items a region holds before subdividing.
func (q *Quadtree[T]) Capacity() int {
	return q.capacity
}

// Divided reports whether q has subdivided.
func (q *Quadtree[T]) Divided() bool {
	return q.children != nil
}

// Insert stores v at p. It returns false, leaving q unchanged, when p lies
// outside the boundary. Points on a shared quadrant edge go to the first
// quadrant, in NW, NE, SW, SE order, whose boundary contains them.
func (q *Quadtree[T]) Insert(p geom.Point, v T) bool {
	if !q.boundary.Contains(p) {
		return false
	}
	if q.children == nil && len(q.items) < q.capacity {
		q.items = append(q.items, Item[T]{Point: p, Value: v})
		return true
	}
	if q.children == nil {
		q.subdivide()
	}
	for i := range q.children {
		if q.children[i].Insert(p, v) {
			return true
		}
	}
	// unreachable while the quadrants cover the boundary
	return false
}

// subdivide creates the four quadrants. Stored items are not moved.
func (q *Quadtree[T]) subdivide() {
	q.children = new([4]Quadtree[T])
	for i := range q.children {
		q.children[i] = Quadtree[T]{
			boundary: q.boundary.Quadrant(geom.Quadrant(i)),
			capacity: q.capacity,
			items:    make([]Item[T], 0, q.capacity),
		}
	}
}

// Query appends to acc every item whose point lies in r and returns the
// extended slice. Regions whose boundary does not intersect r are skipped
// without visiting their items.
func (q *Quadtree[T]) Query(r geom.Rect, acc []Item[T]) []Item[T] {
	if !q.boundary.Intersects(r) {
		return acc
	}
	for _, it := range q.items {
		if r.Contains(it.Point) {
			acc = append(acc, it)
		}
	}
	if q.children == nil {
		return acc
	}
	for i := range q.children {
		acc = q.children[i].Query(r, acc)
	}
	return acc
}

// Len returns the number of stored items.
func (q *Quadtree[T]) Len() int {
	n := len(q.items)
	if q.children != nil {
		for i := range q.children {
			n += q.children[i].Len()
		}
	}
	return n
}

// Depth returns the number of levels below q; a leaf has depth 0.
func (q *Quadtree[T]) Depth() int {
	if q.children == nil {
		return 0
	}
	d := 0
	for i := range q.children {
		d = max(d, q.children[i].Depth())
	}
	return d + 1
}

// Walk calls fn for every region in pre-order with its depth and the items
// stored at that level. Walking stops early when fn returns false.
func (q *Quadtree[T]) Walk(fn func(depth int, boundary geom.Rect, items []Item[T]) bool) {
	q.walk(0, fn)
}

func (q *Quadtree[T]) walk(depth int, fn func(int, geom.Rect, []Item[T]) bool) bool {
	if !fn(depth, q.boundary, q.items) {
		return false
	}
	if q.children == nil {
		return true
	}
	for i := range q.children {
		if !q.children[i].walk(depth+1, fn) {
			return false
		}
	}
	return true
}
