package verlet

import (
	"github.com/setanarut/v"
)

// Colliding reports whether the two bodies' shapes overlap in world space.
//
// Circle pairs compare center distance against the radius sum, polygon
// pairs run the separating axis test; both are boundary-inclusive, so
// shapes that merely touch count as colliding. The polygon-circle pair is
// not implemented and always reports false.
func Colliding(a, b *Body) bool {
	switch sa := a.shape.(type) {
	case *Circle:
		if sb, ok := b.shape.(*Circle); ok {
			return circlesOverlap(sa, a.position, sb, b.position)
		}
		return false
	case *Polygon:
		if sb, ok := b.shape.(*Polygon); ok {
			return polygonsOverlap(sa, a.position, a.angle, sb, b.position, b.angle)
		}
		return false
	}
	return false
}

func circlesOverlap(a *Circle, posA v.Vec, b *Circle, posB v.Vec) bool {
	return posA.Dist(posB) <= a.radius+b.radius
}

// polygonsOverlap is the separating axis test: the polygons overlap iff no
// edge normal of either polygon separates their vertex projections.
func polygonsOverlap(a *Polygon, posA v.Vec, angleA float64, b *Polygon, posB v.Vec, angleB float64) bool {
	vertsA := a.WorldVerts(posA, angleA)
	vertsB := b.WorldVerts(posB, angleB)

	for _, axis := range separatingAxes(a.WorldEdges(posA, angleA)) {
		if separates(axis, vertsA, vertsB) {
			return false
		}
	}
	for _, axis := range separatingAxes(b.WorldEdges(posB, angleB)) {
		if separates(axis, vertsA, vertsB) {
			return false
		}
	}
	return true
}

// separatingAxes returns a candidate axis per edge, the unit normal of the
// edge direction. Degenerate zero-length edges have no normal and are
// skipped.
func separatingAxes(edges []Edge) []v.Vec {
	axes := make([]v.Vec, 0, len(edges))
	for _, e := range edges {
		dir := e.B.Sub(e.A)
		if dir.MagSq() == 0 {
			continue
		}
		axes = append(axes, v.Vec{X: -dir.Y, Y: dir.X}.Unit())
	}
	return axes
}

// separates reports whether the vertex projections of the two polygons onto
// axis form disjoint intervals. Touching intervals overlap, so an exact
// boundary touch never separates. An empty vertex set yields no interval
// and cannot separate.
func separates(axis v.Vec, vertsA, vertsB []v.Vec) bool {
	minA, maxA, okA := projectOnto(axis, vertsA)
	minB, maxB, okB := projectOnto(axis, vertsB)
	if !okA || !okB {
		return false
	}
	return maxA < minB || maxB < minA
}

// projectOnto returns the min and max signed distance of the vertices along
// the axis direction. ok is false when there are no vertices.
func projectOnto(axis v.Vec, verts []v.Vec) (min, max float64, ok bool) {
	if len(verts) == 0 {
		return 0, 0, false
	}
	min = axis.Dot(verts[0])
	max = min
	for _, vt := range verts[1:] {
		d := axis.Dot(vt)
		if d < min {
			min = d
		}
		if d > max {
			max = d
		}
	}
	return min, max, true
}
