// Package pov plans and serializes POV-Ray scene descriptions from parsed
// mesh geometry.
package pov

import (
	"errors"
	"math"

	"github.com/Faultbox/obj2pov/pkg/geom"
)

// Planning errors.
var (
	ErrNonPositiveDistance = errors.New("camera distance multiplier must be positive")
)

// FOV is the fixed field of view in degrees used for framing.
const FOV = 35.0

// framingPad leaves 20% of slack around the bounding box diagonal.
const framingPad = 1.2

// CameraConfig holds user-supplied camera parameters. Angles are in
// degrees; Distance multiplies the computed framing distance.
type CameraConfig struct {
	Pitch    float64
	Yaw      float64
	Roll     float64
	Distance float64
	// Rotation is the legacy single-axis rotation. It composes additively
	// with Yaw.
	Rotation float64
}

// DefaultCameraConfig returns the neutral framing configuration.
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{Distance: 1.0}
}

// Camera is a fully planned camera. It is computed once from the finalized
// mesh bounds and never mutated afterwards.
type Camera struct {
	Position geom.Vec3
	LookAt   geom.Vec3
	Up       geom.Vec3
	Angle    float64

	// BaseDistance is the unscaled framing distance; light placement
	// derives from it.
	BaseDistance float64
}

// PlanCamera derives the camera from the mesh bounding box. The base
// position sits above the centroid at the distance needed to frame the
// whole box diagonal at the fixed FOV; the offset is rotated by the legacy
// rotation and yaw (composing additively) about the vertical axis, then by
// pitch about the horizontal axis, and finally scaled by the distance
// multiplier. Roll does not move the camera, it only tilts the up vector.
func PlanCamera(box geom.Box, cfg CameraConfig) (*Camera, error) {
	if cfg.Distance <= 0 {
		return nil, ErrNonPositiveDistance
	}

	center := box.Center()
	base := box.Diagonal() / 2 / math.Tan(radians(FOV/2)) * framingPad

	offset := geom.Vec3{Y: base}
	offset = offset.RotateY(radians(cfg.Rotation + cfg.Yaw))
	offset = offset.RotateX(radians(cfg.Pitch))
	offset = offset.Scale(cfg.Distance)

	pos := center.Add(offset)
	view := center.Sub(pos).Normalize()

	up := geom.Vec3{Y: 1}
	// A camera looking almost straight up or down needs a different up
	// axis to keep the view transform well defined.
	if math.Abs(view.Dot(up)) > 0.999 {
		up = geom.Vec3{Z: 1}
	}
	if cfg.Roll != 0 {
		up = up.RotateAbout(view, radians(cfg.Roll))
	}

	return &Camera{
		Position:     pos,
		LookAt:       center,
		Up:           up,
		Angle:        FOV,
		BaseDistance: base,
	}, nil
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
