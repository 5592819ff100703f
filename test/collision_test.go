package verlet_test

import (
	"math"
	"testing"

	"github.com/setanarut/v"
	"github.com/setanarut/verlet"
)

// unitSquare is a square of side 2 centered on the body position.
func unitSquare(pos v.Vec) *verlet.Body {
	return verlet.NewBody(verlet.NewPolygon([]v.Vec{{X: 1, Y: 1}, {X: -1, Y: 1}, {X: -1, Y: -1}, {X: 1, Y: -1}}), pos)
}

func TestCircleCircle(t *testing.T) {
	a := verlet.NewBody(verlet.NewCircle(1), v.Vec{})

	touching := verlet.NewBody(verlet.NewCircle(1), v.Vec{X: 2, Y: 0})
	if !verlet.Colliding(a, touching) {
		t.Error("touching circles must collide")
	}

	apart := verlet.NewBody(verlet.NewCircle(1), v.Vec{X: 2.0001, Y: 0})
	if verlet.Colliding(a, apart) {
		t.Error("separated circles must not collide")
	}

	nested := verlet.NewBody(verlet.NewCircle(0.1), v.Vec{X: 0.2, Y: 0})
	if !verlet.Colliding(a, nested) {
		t.Error("a contained circle must collide")
	}
}

func TestPolygonPolygonSeparated(t *testing.T) {
	if verlet.Colliding(unitSquare(v.Vec{}), unitSquare(v.Vec{X: 10, Y: 0})) {
		t.Error("distant squares must not collide")
	}
	if verlet.Colliding(unitSquare(v.Vec{}), unitSquare(v.Vec{X: 0, Y: 2.001})) {
		t.Error("squares past the touch distance must not collide")
	}
}

func TestPolygonPolygonOverlapping(t *testing.T) {
	if !verlet.Colliding(unitSquare(v.Vec{}), unitSquare(v.Vec{X: 1, Y: 0})) {
		t.Error("overlapping squares must collide")
	}
	if !verlet.Colliding(unitSquare(v.Vec{}), unitSquare(v.Vec{})) {
		t.Error("coincident squares must collide")
	}
}

func TestPolygonPolygonBoundaryTouch(t *testing.T) {
	if !verlet.Colliding(unitSquare(v.Vec{}), unitSquare(v.Vec{X: 2, Y: 0})) {
		t.Error("squares sharing an edge must collide")
	}
	if !verlet.Colliding(unitSquare(v.Vec{}), unitSquare(v.Vec{X: 2, Y: 2})) {
		t.Error("squares sharing a corner must collide")
	}
}

func TestPolygonPolygonRotated(t *testing.T) {
	// a square rotated 1/8 turn pokes its corner into the neighbor
	diamond := verlet.NewOrientedBody(verlet.NewPolygon([]v.Vec{{X: 1, Y: 1}, {X: -1, Y: 1}, {X: -1, Y: -1}, {X: 1, Y: -1}}), v.Vec{X: 2.2, Y: 0}, math.Pi/4)
	if !verlet.Colliding(unitSquare(v.Vec{}), diamond) {
		t.Error("rotated square's corner must reach the neighbor")
	}

	far := verlet.NewOrientedBody(verlet.NewPolygon([]v.Vec{{X: 1, Y: 1}, {X: -1, Y: 1}, {X: -1, Y: -1}, {X: 1, Y: -1}}), v.Vec{X: 2.5, Y: 0}, math.Pi/4)
	if verlet.Colliding(unitSquare(v.Vec{}), far) {
		t.Error("rotated square past its corner reach must not collide")
	}
}

func TestPolygonPolygonTriangles(t *testing.T) {
	a := verlet.NewBody(verlet.Triangle(1), v.Vec{})
	b := verlet.NewBody(verlet.Triangle(1), v.Vec{X: 0.5, Y: 0})
	if !verlet.Colliding(a, b) {
		t.Error("overlapping triangles must collide")
	}

	c := verlet.NewBody(verlet.Triangle(1), v.Vec{X: 5, Y: 0})
	if verlet.Colliding(a, c) {
		t.Error("distant triangles must not collide")
	}
}

func TestDiagonalEdgeNormalSeparates(t *testing.T) {
	// the two right triangles overlap on both axis-aligned projections;
	// only the normal of the diagonal hypotenuse separates them
	a := verlet.NewBody(verlet.NewPolygon([]v.Vec{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 0, Y: 2}}), v.Vec{})
	b := verlet.NewBody(verlet.NewPolygon([]v.Vec{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 0, Y: 2}}), v.Vec{X: 1.6, Y: 1.6})

	if verlet.Colliding(a, b) {
		t.Error("triangles separated along the hypotenuse normal must not collide")
	}

	near := verlet.NewBody(verlet.NewPolygon([]v.Vec{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 0, Y: 2}}), v.Vec{X: 0.5, Y: 0.5})
	if !verlet.Colliding(a, near) {
		t.Error("overlapping triangles must collide")
	}
}

// The polygon-circle pair is an explicit gap: it always reports no
// collision, even for plainly overlapping geometry. Implementing it is a
// contract change and must break this test.
func TestPolygonCircleGap(t *testing.T) {
	square := unitSquare(v.Vec{})
	circle := verlet.NewBody(verlet.NewCircle(1), v.Vec{})

	if verlet.Colliding(square, circle) {
		t.Error("polygon-circle must report no collision")
	}
	if verlet.Colliding(circle, square) {
		t.Error("circle-polygon must report no collision")
	}
}

func TestDegenerateEdgeSkipped(t *testing.T) {
	// duplicate vertex yields a zero-length edge with no normal; it must
	// not poison the remaining axes
	a := verlet.NewBody(verlet.NewPolygon([]v.Vec{{X: 1, Y: 1}, {X: 1, Y: 1}, {X: -1, Y: 1}, {X: -1, Y: -1}, {X: 1, Y: -1}}), v.Vec{})
	if !verlet.Colliding(a, unitSquare(v.Vec{X: 1, Y: 0})) {
		t.Error("overlap must be detected despite a degenerate edge")
	}
	if verlet.Colliding(a, unitSquare(v.Vec{X: 10, Y: 0})) {
		t.Error("separation must be detected despite a degenerate edge")
	}
}
