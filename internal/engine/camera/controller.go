package camera

import (
	gomath "math"
	"time"

	"github.com/Sycrosity/unknown-engine/pkg/math"
)

// safeHalfPi stops the camera looking exactly straight up or down, which
// would degenerate the view basis at the poles.
const safeHalfPi = float32(gomath.Pi/2) - 0.0001

// Key is a platform-neutral movement key. The window layer translates its
// native key codes into these before handing events to the controller.
type Key int

// Movement keys recognized by the controller. Each direction has two
// bindings: WASD and the arrow keys, plus Space/LeftShift for vertical.
const (
	KeyW Key = iota
	KeyA
	KeyS
	KeyD
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeySpace
	KeyLShift
)

// ScrollUnit tags the unit of a scroll delta as delivered by the event
// source.
type ScrollUnit int

const (
	// ScrollLines is a discrete wheel step; treated as roughly 100 pixels.
	ScrollLines ScrollUnit = iota
	// ScrollPixels is a precise (touchpad) delta in pixels.
	ScrollPixels
)

// Controller accumulates input between frames and integrates it into a
// Camera once per frame. Movement intents persist while a key is held;
// rotation and scroll deltas are consumed (reset to zero) by Update, so a
// frame with no input produces no phantom motion.
type Controller struct {
	amountLeft     float32
	amountRight    float32
	amountForward  float32
	amountBackward float32
	amountUp       float32
	amountDown     float32

	rotateHorizontal float32
	rotateVertical   float32
	scroll           float32

	speed       float32
	sensitivity float32
}

// NewController returns a controller with the given movement speed (world
// units per second) and rotation sensitivity.
func NewController(speed, sensitivity float32) *Controller {
	return &Controller{
		speed:       speed,
		sensitivity: sensitivity,
	}
}

// ProcessKeyboard records a key press or release. It reports whether the
// key is one the controller understands, so the caller can mark the event
// consumed.
func (c *Controller) ProcessKeyboard(key Key, pressed bool) bool {
	amount := float32(0)
	if pressed {
		amount = 1
	}
	switch key {
	case KeyW, KeyUp:
		c.amountForward = amount
	case KeyS, KeyDown:
		c.amountBackward = amount
	case KeyA, KeyLeft:
		c.amountLeft = amount
	case KeyD, KeyRight:
		c.amountRight = amount
	case KeySpace:
		c.amountUp = amount
	case KeyLShift:
		c.amountDown = amount
	default:
		return false
	}
	return true
}

// ProcessMouse records a mouse motion delta for the next Update. Calling
// it again before Update overwrites the pending delta; the last write wins.
func (c *Controller) ProcessMouse(dx, dy float64) {
	c.rotateHorizontal = float32(dx)
	c.rotateVertical = float32(dy)
}

// ProcessScroll records a scroll delta for the next Update, normalizing
// line units to approximate pixels. Overwrite semantics, like ProcessMouse.
func (c *Controller) ProcessScroll(amount float32, unit ScrollUnit) {
	if unit == ScrollLines {
		amount *= 100
	}
	c.scroll = -amount
}

// Update integrates the accumulated input into cam over the elapsed frame
// time dt. Rotation and scroll deltas are reset to zero once consumed.
func (c *Controller) Update(cam *Camera, dt time.Duration) {
	dtSec := float32(dt.Seconds())

	// Move forward/backward and left/right in the horizontal plane.
	yawSin, yawCos := sincos(cam.Yaw)
	forward := math.Vec3{X: yawCos, Z: yawSin}.Normalize()
	right := math.Vec3{X: -yawSin, Z: yawCos}.Normalize()
	cam.Position = cam.Position.Add(forward.Scale((c.amountForward - c.amountBackward) * c.speed * dtSec))
	cam.Position = cam.Position.Add(right.Scale((c.amountRight - c.amountLeft) * c.speed * dtSec))

	// Move in/out along the look direction. Not a true zoom: the camera
	// physically moves toward or away from what it is looking at.
	pitchSin, pitchCos := sincos(cam.Pitch)
	scrollward := math.Vec3{X: pitchCos * yawCos, Y: pitchSin, Z: pitchCos * yawSin}.Normalize()
	cam.Position = cam.Position.Add(scrollward.Scale(c.scroll * c.speed * c.sensitivity * dtSec))
	c.scroll = 0

	// No roll, so vertical motion is a plain Y offset.
	cam.Position.Y += (c.amountUp - c.amountDown) * c.speed * dtSec

	cam.Yaw += c.rotateHorizontal * c.sensitivity * dtSec
	cam.Pitch -= c.rotateVertical * c.sensitivity * dtSec

	// Rotation deltas are consumed here; if they carried over, the camera
	// would keep turning on frames without mouse input.
	c.rotateHorizontal = 0
	c.rotateVertical = 0

	if cam.Pitch < -safeHalfPi {
		cam.Pitch = -safeHalfPi
	} else if cam.Pitch > safeHalfPi {
		cam.Pitch = safeHalfPi
	}
}
