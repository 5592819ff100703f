package verlet

import (
	"fmt"
	"slices"
)

// Group tags objects for selective rule application, removal and overlap
// queries. Callers define their own constants; the world treats the tag as
// an opaque value compared by equality.
type Group int

// ObjectID uniquely identifies an object within a World for as long as the
// object is present. IDs are never reused.
type ObjectID string

// GroupedBody pairs a body with the group it belongs to, for seeding a new
// world.
type GroupedBody struct {
	Group Group
	Body  *Body
}

// Object is one entry of the world's table: an id, the group tag, and the
// live body.
type Object struct {
	ID    ObjectID
	Group Group
	Body  *Body
}

// UpdateFunc mutates a single body. It must not touch other objects; the
// world applies it to each selected body independently.
type UpdateFunc func(*Body)

// Predicate reports whether a body matches, for scoped removal.
type Predicate func(*Body) bool

// Collider is one participant of a reported collision: its id, group, and a
// snapshot of the body taken when the query ran.
type Collider struct {
	ID    ObjectID
	Group Group
	Body  Body
}

// Collision is one detected overlap between two objects.
type Collision struct {
	A, B Collider
}

// World owns a keyed collection of grouped bodies and advances them in
// fixed time steps.
//
// Objects are kept in insertion order and every query walks that order, so
// for identical input state and call sequence the resulting state and
// reported collisions are reproducible bit for bit.
type World struct {
	// Declared simulation bounds. The world does not enforce them; clamping
	// or wrapping is caller policy, typically an update rule.
	Width, Height float64

	objects         []Object
	timeSteps       int
	createdThisStep int
}

// NewWorld returns a world with the given bounds, seeded with the initial
// objects through the same path as AddObject.
func NewWorld(width, height float64, initial ...GroupedBody) *World {
	w := &World{Width: width, Height: height}
	for _, gb := range initial {
		w.AddObject(gb.Group, gb.Body)
	}
	return w
}

// AddObject inserts the body under the given group and returns its freshly
// minted id. Never fails.
func (w *World) AddObject(group Group, body *Body) ObjectID {
	id := ObjectID(fmt.Sprintf("%d-%d", w.timeSteps, w.createdThisStep))
	w.createdThisStep++
	w.objects = append(w.objects, Object{ID: id, Group: group, Body: body})
	return id
}

// RemoveObject removes the object with the given id. Removing an absent id
// is a no-op.
func (w *World) RemoveObject(id ObjectID) {
	for i := range w.objects {
		if w.objects[i].ID == id {
			w.objects = append(w.objects[:i], w.objects[i+1:]...)
			return
		}
	}
}

// RemoveObjectIf removes every object whose group is in groups and whose
// body satisfies pred. Objects in other groups are untouched regardless of
// the predicate.
func (w *World) RemoveObjectIf(groups []Group, pred Predicate) {
	w.objects = slices.DeleteFunc(w.objects, func(obj Object) bool {
		return slices.Contains(groups, obj.Group) && pred(obj.Body)
	})
}

// MembersOf returns the bodies of every object in the given group, in
// insertion order.
func (w *World) MembersOf(group Group) []*Body {
	var members []*Body
	for _, obj := range w.objects {
		if obj.Group == group {
			members = append(members, obj.Body)
		}
	}
	return members
}

// Objects returns the id, group and body of every object whose group is in
// groups, in insertion order. With no groups it returns every object.
func (w *World) Objects(groups ...Group) []Object {
	var objs []Object
	for _, obj := range w.objects {
		if len(groups) == 0 || slices.Contains(groups, obj.Group) {
			objs = append(objs, obj)
		}
	}
	return objs
}

// Count returns the number of objects in the world.
func (w *World) Count() int {
	return len(w.objects)
}

// Contains reports whether an object with the given id is present.
func (w *World) Contains(id ObjectID) bool {
	return slices.ContainsFunc(w.objects, func(obj Object) bool {
		return obj.ID == id
	})
}

// UpdateGroups applies fn to every body whose group is in groups, leaving
// others unchanged.
func (w *World) UpdateGroups(groups []Group, fn UpdateFunc) {
	for _, obj := range w.objects {
		if slices.Contains(groups, obj.Group) {
			fn(obj.Body)
		}
	}
}

// UpdateAll applies fn to every body in the world.
func (w *World) UpdateAll(fn UpdateFunc) {
	for _, obj := range w.objects {
		fn(obj.Body)
	}
}

// Simulate advances the simulation by one time step: every body is
// integrated exactly once, the step counter grows, and the per-step
// creation counter resets. This is the only operation that advances
// simulated time.
func (w *World) Simulate() {
	for _, obj := range w.objects {
		obj.Body.Integrate()
	}
	w.timeSteps++
	w.createdThisStep = 0
}

// Overlaps tests every member of groupA against every member of groupB and
// returns a Collision per overlapping pair, in insertion order of A then B.
//
// The query is pure: nothing is removed or mutated, reaction is entirely
// the caller's. When groupA == groupB each colliding pair of distinct
// objects is reported in both orders; an object is never tested against
// itself.
func (w *World) Overlaps(groupA, groupB Group) []Collision {
	var collisions []Collision
	for _, a := range w.objects {
		if a.Group != groupA {
			continue
		}
		for _, b := range w.objects {
			if b.Group != groupB || b.ID == a.ID {
				continue
			}
			if Colliding(a.Body, b.Body) {
				collisions = append(collisions, Collision{
					A: Collider{ID: a.ID, Group: a.Group, Body: *a.Body},
					B: Collider{ID: b.ID, Group: b.Group, Body: *b.Body},
				})
			}
		}
	}
	return collisions
}

// ViewData returns the render snapshot of every object, in insertion order.
func (w *World) ViewData() []View {
	views := make([]View, len(w.objects))
	for i, obj := range w.objects {
		views[i] = obj.Body.View()
	}
	return views
}
