package camera

import (
	"github.com/Sycrosity/unknown-engine/pkg/math"
)

// Uniform is the camera data handed to the render pipeline: the composed
// view-projection transform and the homogeneous view position (needed for
// specular lighting).
type Uniform struct {
	ViewPosition math.Vec4
	ViewProj     math.Mat4
}

// NewUniform returns a uniform with an identity transform.
func NewUniform() *Uniform {
	return &Uniform{
		ViewProj: math.Identity(),
	}
}

// Update recomputes the uniform from the camera and projection. Call once
// per frame, after the controller's Update and before the frame is drawn.
func (u *Uniform) Update(cam *Camera, proj *Projection) {
	u.ViewPosition = cam.Position.Homogeneous()
	u.ViewProj = proj.Matrix().Mul(cam.ViewMatrix())
}
