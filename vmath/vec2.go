// Package vmath is the 2D vector math of the scene. Vec2 keeps named
// fields for readability and delegates to mgl64 for the arithmetic.
package vmath

import "github.com/go-gl/mathgl/mgl64"

// Vec2 is a 2D vector in world pixels
type Vec2 struct {
	X, Y float64
}

// FromMgl converts an mgl64 vector
func FromMgl(v mgl64.Vec2) Vec2 {
	return Vec2{X: v[0], Y: v[1]}
}

// Mgl converts v to an mgl64 vector
func (v Vec2) Mgl() mgl64.Vec2 {
	return mgl64.Vec2{v.X, v.Y}
}

// V is shorthand for Vec2{x, y}
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o
func (v Vec2) Add(o Vec2) Vec2 {
	return FromMgl(v.Mgl().Add(o.Mgl()))
}

// Sub returns v - o
func (v Vec2) Sub(o Vec2) Vec2 {
	return FromMgl(v.Mgl().Sub(o.Mgl()))
}

// Scale multiplies both axes by s
func (v Vec2) Scale(s float64) Vec2 {
	return FromMgl(v.Mgl().Mul(s))
}

// Mul multiplies component-wise
func (v Vec2) Mul(o Vec2) Vec2 {
	return Vec2{v.X * o.X, v.Y * o.Y}
}

// Len returns the euclidean length
func (v Vec2) Len() float64 {
	return v.Mgl().Len()
}

// Normalize returns the unit vector, zero-safe
func (v Vec2) Normalize() Vec2 {
	if v.Len() == 0 {
		return Vec2{}
	}
	return FromMgl(v.Mgl().Normalize())
}

// Distance returns |a - b|
func Distance(a, b Vec2) float64 {
	return b.Sub(a).Len()
}

// Rotate rotates v by deg degrees clockwise in screen space (y down)
func (v Vec2) Rotate(deg float64) Vec2 {
	return FromMgl(mgl64.Rotate2D(mgl64.DegToRad(deg)).Mul2x1(v.Mgl()))
}

// MoveTowards steps pos toward target by speed*dt.
// Nothing moves while pos is within rng of target, and a step never
// passes the target.
func MoveTowards(pos, target Vec2, speed, dt, rng float64) Vec2 {
	dir := target.Sub(pos)
	length := dir.Len()
	if length <= rng || length == 0 {
		return pos
	}

	step := speed * dt
	if step > length {
		step = length
	}
	return pos.Add(dir.Scale(step / length))
}
