package marquee

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Hosts convert at draw time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default node tint.
var ColorWhite = Color{1, 1, 1, 1}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// NodeType distinguishes rendering behavior for a Node.
type NodeType uint8

const (
	NodeTypeContainer NodeType = iota // group node with no visual output
	NodeTypeRect                      // solid rectangle of Width x Height
	NodeTypeText                      // single line of text; hosts measure Width
)

// LayoutMode is the layout a node applies to its children.
type LayoutMode uint8

const (
	LayoutNone  LayoutMode = iota // children keep their own X/Y
	LayoutStrip                   // children are tiled left to right, no gaps
)

// Direction is the sign of travel of a marquee strip.
type Direction int8

const (
	DirectionLeft  Direction = 1  // content moves toward negative X
	DirectionRight Direction = -1 // content moves toward positive X
)

// Valid reports whether d is one of the two travel directions.
func (d Direction) Valid() bool {
	return d == DirectionLeft || d == DirectionRight
}

// Opposite returns the reversed direction.
func (d Direction) Opposite() Direction {
	if d == DirectionRight {
		return DirectionLeft
	}
	return DirectionRight
}

func (d Direction) String() string {
	switch d {
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	default:
		return "invalid"
	}
}
