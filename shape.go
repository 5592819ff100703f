package verlet

import (
	"fmt"
	"math"

	"github.com/setanarut/v"
)

// Shape is an immutable geometric description in a body's local frame,
// independent of position and orientation. The variant set is closed:
// Circle and Polygon.
type Shape interface {
	shapeVariant()
}

// Circle is a circle of fixed radius centered at the local origin.
type Circle struct {
	radius float64
}

// NewCircle returns a circle shape with the given non-negative radius.
func NewCircle(radius float64) *Circle {
	if radius < 0 {
		panic(fmt.Sprintf("verlet: negative circle radius %v", radius))
	}
	return &Circle{radius: radius}
}

// Radius returns the radius of the circle.
func (c *Circle) Radius() float64 {
	return c.radius
}

func (c *Circle) shapeVariant() {}

// Edge is a directed segment between two consecutive polygon vertices.
type Edge struct {
	A, B v.Vec
}

// Polygon is a closed loop of vertices in the body's local frame.
//
// Vertices are assumed to form a single non-self-intersecting loop; the
// collision predicate additionally assumes convexity. Neither is validated,
// and collision results for malformed polygons are undefined.
type Polygon struct {
	verts []v.Vec
}

// NewPolygon returns a polygon shape with the caller-supplied vertices,
// taken verbatim.
func NewPolygon(verts []v.Vec) *Polygon {
	vs := make([]v.Vec, len(verts))
	copy(vs, verts)
	return &Polygon{verts: vs}
}

// RegularPolygon returns a regular polygon with vertices placed evenly
// around the local origin at the given circumradius.
//
// The 4-sided polygon is rotated by an extra 1/8 turn so a square presents
// a flat top edge instead of a vertex. Panics if sides < 3.
func RegularPolygon(sides int, radius float64) *Polygon {
	if sides < 3 {
		panic(fmt.Sprintf("verlet: regular polygon needs at least 3 sides, got %d", sides))
	}
	var offset float64
	if sides == 4 {
		offset = math.Pi / 4
	}
	verts := make([]v.Vec, sides)
	for i := range sides {
		a := offset + float64(i)*(2*math.Pi/float64(sides))
		verts[i] = v.Vec{X: math.Cos(a) * radius, Y: math.Sin(a) * radius}
	}
	return &Polygon{verts: verts}
}

// Triangle returns an equilateral triangle with the given circumradius.
func Triangle(radius float64) *Polygon {
	return RegularPolygon(3, radius)
}

// Square returns an axis-aligned square with the given circumradius.
func Square(radius float64) *Polygon {
	return RegularPolygon(4, radius)
}

// Pentagon returns a regular pentagon with the given circumradius.
func Pentagon(radius float64) *Polygon {
	return RegularPolygon(5, radius)
}

// Hexagon returns a regular hexagon with the given circumradius.
func Hexagon(radius float64) *Polygon {
	return RegularPolygon(6, radius)
}

// Verts returns a copy of the polygon's local-frame vertices.
func (p *Polygon) Verts() []v.Vec {
	vs := make([]v.Vec, len(p.verts))
	copy(vs, p.verts)
	return vs
}

// WorldVerts returns the polygon's vertices transformed into world space:
// rotated by angle about the local origin, then translated by position.
func (p *Polygon) WorldVerts(position v.Vec, angle float64) []v.Vec {
	cos, sin := math.Cos(angle), math.Sin(angle)
	verts := make([]v.Vec, len(p.verts))
	for i, vt := range p.verts {
		verts[i] = rotate(vt, cos, sin).Add(position)
	}
	return verts
}

// WorldEdges returns the polygon's edges in world space, consecutive vertex
// pairs including the wrap-around edge closing the loop.
func (p *Polygon) WorldEdges(position v.Vec, angle float64) []Edge {
	verts := p.WorldVerts(position, angle)
	edges := make([]Edge, len(verts))
	for i := range verts {
		edges[i] = Edge{verts[i], verts[(i+1)%len(verts)]}
	}
	return edges
}

func (p *Polygon) shapeVariant() {}

// rotate applies the rotation basis (cos, sin) to a local-frame point.
func rotate(p v.Vec, cos, sin float64) v.Vec {
	return v.Vec{X: p.X*cos - p.Y*sin, Y: p.X*sin + p.Y*cos}
}
