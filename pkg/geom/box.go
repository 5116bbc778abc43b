package geom

import "math"

// spanEpsilon is the minimum extent used per axis when a bounding box is
// degenerate, so framing math never divides by zero.
const spanEpsilon = 1e-9

// Box is an axis-aligned bounding box.
type Box struct {
	Min, Max Vec3
}

// BoxOf computes the bounding box of a point set. The second return value
// is false when the set is empty.
func BoxOf(points []Vec3) (Box, bool) {
	if len(points) == 0 {
		return Box{}, false
	}
	b := Box{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		b.Min.X = math.Min(b.Min.X, p.X)
		b.Min.Y = math.Min(b.Min.Y, p.Y)
		b.Min.Z = math.Min(b.Min.Z, p.Z)
		b.Max.X = math.Max(b.Max.X, p.X)
		b.Max.Y = math.Max(b.Max.Y, p.Y)
		b.Max.Z = math.Max(b.Max.Z, p.Z)
	}
	return b, true
}

// Center returns the box centroid.
func (b Box) Center() Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Size returns the box extents per axis, each clamped to spanEpsilon.
// A single point or an axis-flat mesh produces a legal, non-zero size.
func (b Box) Size() Vec3 {
	return Vec3{
		X: math.Max(b.Max.X-b.Min.X, spanEpsilon),
		Y: math.Max(b.Max.Y-b.Min.Y, spanEpsilon),
		Z: math.Max(b.Max.Z-b.Min.Z, spanEpsilon),
	}
}

// Diagonal returns the length of the box diagonal using the clamped size.
func (b Box) Diagonal() float64 {
	s := b.Size()
	return math.Sqrt(s.X*s.X + s.Y*s.Y + s.Z*s.Z)
}
