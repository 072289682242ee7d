// SPDX-License-Identifier: MIT
// Package: hexwave/geometry
//
// point.go — the 2D value type shared by every package.
//
// Contract:
//   • Point is a plain value; all operations return new Points.
//   • Angles are radians, measured on a y-down canvas (positive = clockwise).
//
// Complexity: every operation in this file is O(1).

package geometry

import "math"

// Epsilon is the tolerance used by AlmostEqual and by the package tests.
const Epsilon = 1e-9

// Point is a 2D coordinate. Values are never mutated after construction;
// every method returns a new Point.
type Point struct {
	X, Y float64
}

// Origin is the zero point.
var Origin = Point{}

// Polar returns the point at distance r and angle theta (radians) from the origin.
// Complexity: O(1).
func Polar(r, theta float64) Point {
	return Point{X: r * math.Cos(theta), Y: r * math.Sin(theta)}
}

// Add returns p + q.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// Sub returns p - q.
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

// Scale returns p·k.
func (p Point) Scale(k float64) Point { return Point{X: p.X * k, Y: p.Y * k} }

// Len returns the Euclidean norm of p. Hypot avoids overflow on large
// coordinates.
func (p Point) Len() float64 { return math.Hypot(p.X, p.Y) }

// Distance returns |p - q|.
func (p Point) Distance(q Point) float64 { return p.Sub(q).Len() }

// Angle returns atan2(y, x) of p.
func (p Point) Angle() float64 { return math.Atan2(p.Y, p.X) }

// AlmostEqual reports whether p and q differ by at most eps on both axes.
// Complexity: O(1).
func (p Point) AlmostEqual(q Point, eps float64) bool {
	return math.Abs(p.X-q.X) <= eps && math.Abs(p.Y-q.Y) <= eps
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 { return deg * math.Pi / 180 }
