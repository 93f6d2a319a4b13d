// Package geom holds the axis-aligned box used for every collision test.
package geom

// Rect is an axis-aligned box anchored at its centre.
type Rect struct {
	X, Y          float64 // Centre
	Width, Height float64
}

// Left returns the x of the left edge.
func (r Rect) Left() float64 { return r.X - r.Width/2 }

// Right returns the x of the right edge.
func (r Rect) Right() float64 { return r.X + r.Width/2 }

// Top returns the y of the top edge.
func (r Rect) Top() float64 { return r.Y - r.Height/2 }

// Bottom returns the y of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height/2 }

// Overlaps reports whether the two boxes share any interior area.
// Boxes that only touch along an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.Left() < o.Right() &&
		r.Right() > o.Left() &&
		r.Top() < o.Bottom() &&
		r.Bottom() > o.Top()
}
