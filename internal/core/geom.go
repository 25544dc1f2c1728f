// Package core provides fundamental types and utilities shared by the engine
// and the platform adapters. It has no external dependencies (especially no
// Bubble Tea) to keep game logic pure and testable.
package core

import "math"

// Galaxy dimensions. The galaxy is an 8x8 grid of quadrants, each holding an
// 8x8 grid of sectors, giving 64x64 addressable cells.
const (
	QuadrantSize = 8
	GalaxySize   = QuadrantSize * QuadrantSize
)

// Coord is a cell position in galaxy-wide sector space (0..63 on each axis).
type Coord struct {
	X, Y int
}

// NewCoord creates a coordinate from absolute sector-space components.
func NewCoord(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// Add returns the coordinate offset by d.
func (c Coord) Add(d Coord) Coord {
	return Coord{X: c.X + d.X, Y: c.Y + d.Y}
}

// Outside reports whether the coordinate lies beyond the galactic perimeter.
func (c Coord) Outside() bool {
	return c.X < 0 || c.X >= GalaxySize || c.Y < 0 || c.Y >= GalaxySize
}

// Quadrant returns the quadrant position (0..7 on each axis).
// Only meaningful for coordinates inside the galaxy.
func (c Coord) Quadrant() Coord {
	return Coord{X: c.X / QuadrantSize, Y: c.Y / QuadrantSize}
}

// Sector returns the sector position within the quadrant (0..7 on each axis).
func (c Coord) Sector() Coord {
	return Coord{X: c.X % QuadrantSize, Y: c.Y % QuadrantSize}
}

// Origin returns the sector-space coordinate of the quadrant's first cell,
// treating c as a quadrant position.
func (c Coord) Origin() Coord {
	return Coord{X: c.X * QuadrantSize, Y: c.Y * QuadrantSize}
}

// InQuadrant reports whether c is a valid quadrant position (0..7).
func (c Coord) InQuadrant() bool {
	return c.X >= 0 && c.X < QuadrantSize && c.Y >= 0 && c.Y < QuadrantSize
}

// SameQuadrant reports whether both coordinates are inside the galaxy and in
// the same quadrant.
func (c Coord) SameQuadrant(other Coord) bool {
	if c.Outside() || other.Outside() {
		return false
	}
	return c.Quadrant() == other.Quadrant()
}

// Distance returns the euclidean distance between two coordinates.
func (c Coord) Distance(other Coord) float64 {
	dx := float64(c.X - other.X)
	dy := float64(c.Y - other.Y)
	return math.Sqrt(dx*dx + dy*dy)
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
