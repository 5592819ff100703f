package verlet

import (
	"github.com/setanarut/v"
)

// ShapeView is the render-ready payload of a shape in world space. The
// variant set mirrors Shape: CircleView and PolygonView.
type ShapeView interface {
	shapeViewVariant()
}

// CircleView is a circle resolved to its world-space center.
type CircleView struct {
	Center v.Vec
	Radius float64
}

func (CircleView) shapeViewVariant() {}

// PolygonView is a polygon resolved to its world-space vertices.
type PolygonView struct {
	Verts []v.Vec
}

func (PolygonView) shapeViewVariant() {}

// View is an immutable snapshot of one body for a rendering collaborator:
// world-space position, heading, and resolved shape geometry. It carries no
// reference back into simulation state.
type View struct {
	Position v.Vec
	Angle    float64
	Shape    ShapeView
}

// Drawer is implemented by rendering backends. The core never imports a
// graphics API; a backend receives resolved world-space geometry and turns
// it into drawable primitives.
type Drawer interface {
	DrawCircle(center v.Vec, angle, radius float64)
	DrawPolygon(verts []v.Vec)
}

// DrawView draws a single view with the drawer implementation.
func DrawView(view View, drawer Drawer) {
	switch shape := view.Shape.(type) {
	case CircleView:
		drawer.DrawCircle(shape.Center, view.Angle, shape.Radius)
	case PolygonView:
		drawer.DrawPolygon(shape.Verts)
	default:
		panic("verlet: unknown shape view variant")
	}
}

// DrawWorld draws every object in the world with the drawer implementation.
func DrawWorld(w *World, drawer Drawer) {
	for _, view := range w.ViewData() {
		DrawView(view, drawer)
	}
}
