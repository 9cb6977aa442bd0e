// Package core provides fundamental types and utilities for the game platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect represents an integer axis-aligned rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Box is a centre-anchored axis-aligned rectangle in world units.
// Overlap tests are inclusive: touching edges count as contact.
type Box struct {
	X, Y   float64 // Centre
	SX, SY float64 // Full extents
}

// Square returns a Box with equal extents centred at (x, y).
func Square(x, y, size float64) Box {
	return Box{X: x, Y: y, SX: size, SY: size}
}

// Overlaps reports whether two boxes touch or intersect.
func (b Box) Overlaps(o Box) bool {
	return math.Abs(b.X-o.X) <= (b.SX+o.SX)*0.5 &&
		math.Abs(b.Y-o.Y) <= (b.SY+o.SY)*0.5
}

// Contains reports whether the point lies inside or on the box edge.
func (b Box) Contains(x, y float64) bool {
	return math.Abs(x-b.X) <= b.SX*0.5 && math.Abs(y-b.Y) <= b.SY*0.5
}

// MinX returns the left edge.
func (b Box) MinX() float64 { return b.X - b.SX*0.5 }

// MinY returns the bottom edge.
func (b Box) MinY() float64 { return b.Y - b.SY*0.5 }

// Dist2 returns the squared distance between two points.
func Dist2(ax, ay, bx, by float64) float64 {
	dx, dy := ax-bx, ay-by
	return dx*dx + dy*dy
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
