package verlet

import (
	"fmt"

	"github.com/setanarut/v"
)

// Body is a rigid body owning one shape and Verlet-style motion state.
//
// Instead of storing velocity, a Body keeps its current and previous
// position (and angle); the difference between the two halves of a pair is
// the displacement one step applies. Mutators rewrite only the "previous"
// half, so a newly set velocity takes effect without moving the body
// instantaneously.
type Body struct {
	shape Shape

	position     v.Vec
	positionPrev v.Vec

	angle     float64
	anglePrev float64

	age float64
}

// NewBody returns a body with the given shape at the given position, at
// rest with zero heading.
func NewBody(shape Shape, position v.Vec) *Body {
	return &Body{
		shape:        shape,
		position:     position,
		positionPrev: position,
	}
}

// NewOrientedBody returns a body with the given shape, position and initial
// heading, at rest.
func NewOrientedBody(shape Shape, position v.Vec, angle float64) *Body {
	return &Body{
		shape:        shape,
		position:     position,
		positionPrev: position,
		angle:        angle,
		anglePrev:    angle,
	}
}

// String returns a short description of the body.
func (b *Body) String() string {
	return fmt.Sprintf("Body %T at %v", b.shape, b.position)
}

// Shape returns the body's shape.
func (b *Body) Shape() Shape {
	return b.shape
}

// Position returns the current position of the body.
func (b *Body) Position() v.Vec {
	return b.position
}

// SetPosition relocates the body, preserving its current velocity.
func (b *Body) SetPosition(position v.Vec) {
	delta := b.position.Sub(b.positionPrev)
	b.position = position
	b.positionPrev = position.Sub(delta)
}

// Velocity returns the body's velocity, derived from the position pair as
// (position - positionPrev) / TimeStep.
func (b *Body) Velocity() v.Vec {
	return b.position.Sub(b.positionPrev).Scale(1 / TimeStep)
}

// SetVelocity sets the body's velocity by rewriting the previous position.
// The current position is untouched.
func (b *Body) SetVelocity(vel v.Vec) {
	b.positionPrev = b.position.Sub(vel.Scale(TimeStep))
}

// AddVelocity adds vel to the body's current velocity.
func (b *Body) AddVelocity(vel v.Vec) {
	b.positionPrev = b.positionPrev.Sub(vel.Scale(TimeStep))
}

// Angle returns the body's heading in radians.
func (b *Body) Angle() float64 {
	return b.angle
}

// SetAngle sets the body's heading and zeroes its angular velocity.
func (b *Body) SetAngle(angle float64) {
	b.angle = angle
	b.anglePrev = angle
}

// AngularVelocity returns the body's angular velocity in radians per
// second, derived from the angle pair.
func (b *Body) AngularVelocity() float64 {
	return (b.angle - b.anglePrev) / TimeStep
}

// SetAngularVelocity sets the body's angular velocity by rewriting the
// previous angle. The current heading is untouched.
func (b *Body) SetAngularVelocity(w float64) {
	b.anglePrev = b.angle - w*TimeStep
}

// Age returns the simulated time in seconds since the body was created.
func (b *Body) Age() float64 {
	return b.age
}

// Integrate advances the body by one time step.
//
// The displacement accumulated in each Verlet pair is re-applied forward:
// absent any mutator call between steps the body keeps constant linear and
// angular velocity. Age grows by exactly one TimeStep.
func (b *Body) Integrate() {
	delta := b.position.Sub(b.positionPrev)
	b.positionPrev = b.position
	b.position = b.position.Add(delta)

	dAngle := b.angle - b.anglePrev
	b.anglePrev = b.angle
	b.angle += dAngle

	b.age += TimeStep
}

// View returns an immutable world-space snapshot of the body for rendering.
func (b *Body) View() View {
	view := View{
		Position: b.position,
		Angle:    b.angle,
	}
	switch shape := b.shape.(type) {
	case *Circle:
		view.Shape = CircleView{Center: b.position, Radius: shape.radius}
	case *Polygon:
		view.Shape = PolygonView{Verts: shape.WorldVerts(b.position, b.angle)}
	default:
		panic("verlet: unknown shape variant")
	}
	return view
}
