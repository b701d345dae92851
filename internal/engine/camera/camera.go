// Package camera provides the free-flying yaw/pitch camera, its projection
// and the first-person controller that drives it.
package camera

import (
	gomath "math"

	"github.com/Sycrosity/unknown-engine/pkg/math"
)

// CorrectionMatrix remaps clip-space depth from the OpenGL [-1,1]
// convention produced by math.Perspective to the [0,1] convention the
// target graphics API expects. Applied on the left of the projection.
var CorrectionMatrix = math.Mat4{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 0.5, 0,
	0, 0, 0.5, 1,
}

// Camera is a viewpoint into the scene: a position plus horizontal (yaw)
// and vertical (pitch) rotation, both in radians. Roll is intentionally
// omitted; pitch feeds the forward direction's Y component and yaw its
// X/Z, a simplified FPS model rather than a full spherical basis.
type Camera struct {
	Position math.Vec3
	Yaw      float32
	Pitch    float32
}

// New returns a camera at position with the given yaw and pitch in radians.
func New(position math.Vec3, yaw, pitch float32) *Camera {
	return &Camera{Position: position, Yaw: yaw, Pitch: pitch}
}

// ViewMatrix returns the right-handed world-to-view transform for the
// camera's current position and orientation.
func (c *Camera) ViewMatrix() math.Mat4 {
	sinYaw, cosYaw := sincos(c.Yaw)
	sinPitch, _ := sincos(c.Pitch)

	dir := math.Vec3{X: cosYaw, Y: sinPitch, Z: sinYaw}.Normalize()
	return math.LookTo(c.Position, dir, math.UnitY)
}

// Projection holds how the camera perceives the scene: aspect ratio,
// vertical field of view in radians, and the near/far clip planes.
type Projection struct {
	Aspect float32
	Fovy   float32
	Znear  float32
	Zfar   float32
}

// NewProjection builds a projection for an output surface of the given
// pixel size. height must be positive.
func NewProjection(width, height uint32, fovy, znear, zfar float32) *Projection {
	return &Projection{
		Aspect: float32(width) / float32(height),
		Fovy:   fovy,
		Znear:  znear,
		Zfar:   zfar,
	}
}

// Resize recomputes the aspect ratio for a new surface size. Call whenever
// the output surface changes; height must be positive.
func (p *Projection) Resize(width, height uint32) {
	p.Aspect = float32(width) / float32(height)
}

// Matrix returns the perspective projection with the depth-range
// correction applied.
func (p *Projection) Matrix() math.Mat4 {
	return CorrectionMatrix.Mul(math.Perspective(p.Fovy, p.Aspect, p.Znear, p.Zfar))
}

func sincos(a float32) (sin, cos float32) {
	s, c := gomath.Sincos(float64(a))
	return float32(s), float32(c)
}
