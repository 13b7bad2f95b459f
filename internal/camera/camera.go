package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Defaults for the viewer camera: 75° vertical fov, looking at the origin from (0, 5, 25).
const (
	DefaultFovY    = 75
	DefaultNear    = 0.1
	DefaultFar     = 1000
	DefaultDamping = 0.05

	minRadius = 5
	maxRadius = 120
	// maxPitch keeps the orbit away from the poles so LookAt's up vector stays valid.
	maxPitch = math32.Pi/2 - 0.05
)

var defaultEye = mgl32.Vec3{0, 5, 25}

// Ray is a half-line from Origin along the unit vector Dir.
type Ray struct {
	Origin mgl32.Vec3
	Dir    mgl32.Vec3
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float32) mgl32.Vec3 {
	return r.Origin.Add(r.Dir.Mul(t))
}

// Camera is a perspective camera orbiting a target with damped inertia (orbit controls).
// Position is derived from target, radius, yaw and pitch; Update integrates pending rotation and zoom.
type Camera struct {
	FovY    float32 // degrees
	Near    float32
	Far     float32
	Damping float32

	width, height int
	target        mgl32.Vec3
	radius        float32
	yaw, pitch    float32

	yawVel, pitchVel, zoomVel float32
}

// New returns a camera for a viewport of w×h pixels at the default eye position.
func New(w, h int) *Camera {
	c := &Camera{
		FovY:    DefaultFovY,
		Near:    DefaultNear,
		Far:     DefaultFar,
		Damping: DefaultDamping,
	}
	c.Resize(w, h)
	c.SetEye(defaultEye)
	return c
}

// SetEye places the camera at eye, keeping the current target, and clears inertia.
func (c *Camera) SetEye(eye mgl32.Vec3) {
	off := eye.Sub(c.target)
	c.radius = off.Len()
	if c.radius == 0 {
		c.radius = minRadius
		off = mgl32.Vec3{0, 0, c.radius}
	}
	c.pitch = math32.Asin(off[1] / c.radius)
	c.yaw = math32.Atan2(off[0], off[2])
	c.yawVel, c.pitchVel, c.zoomVel = 0, 0, 0
}

// Resize updates the viewport size; projection follows immediately. Non-positive sizes are ignored (minimised window).
func (c *Camera) Resize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	c.width, c.height = w, h
}

// Viewport returns the current viewport size in pixels.
func (c *Camera) Viewport() (w, h int) {
	return c.width, c.height
}

// Aspect returns width/height of the viewport.
func (c *Camera) Aspect() float32 {
	if c.height == 0 {
		return 1
	}
	return float32(c.width) / float32(c.height)
}

// Target returns the orbit centre.
func (c *Camera) Target() mgl32.Vec3 {
	return c.target
}

// Position returns the eye position in world space.
func (c *Camera) Position() mgl32.Vec3 {
	cp := math32.Cos(c.pitch)
	return c.target.Add(mgl32.Vec3{
		c.radius * cp * math32.Sin(c.yaw),
		c.radius * math32.Sin(c.pitch),
		c.radius * cp * math32.Cos(c.yaw),
	})
}

// View returns the world-to-camera matrix.
func (c *Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position(), c.target, mgl32.Vec3{0, 1, 0})
}

// Projection returns the perspective matrix for the current aspect ratio.
func (c *Camera) Projection() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FovY), c.Aspect(), c.Near, c.Far)
}

// Project maps a world point to normalized device coordinates (x right, y up, both in [-1, 1] when visible).
func (c *Camera) Project(p mgl32.Vec3) mgl32.Vec3 {
	clip := c.Projection().Mul4(c.View()).Mul4x1(p.Vec4(1))
	if clip[3] == 0 {
		return mgl32.Vec3{}
	}
	return clip.Vec3().Mul(1 / clip[3])
}

// NDC converts window pixel coordinates (origin top-left) to normalized device coordinates.
func (c *Camera) NDC(x, y float32) (float32, float32) {
	return NDC(x, y, c.width, c.height)
}

// NDC converts pixel coordinates within a w×h viewport to [-1, 1] on both axes, y up.
func NDC(x, y float32, w, h int) (float32, float32) {
	if w <= 0 || h <= 0 {
		return 0, 0
	}
	return x/float32(w)*2 - 1, -(y/float32(h))*2 + 1
}

// ScreenFromNDC is the inverse of NDC.
func ScreenFromNDC(nx, ny float32, w, h int) (float32, float32) {
	return (nx*0.5 + 0.5) * float32(w), (-ny*0.5 + 0.5) * float32(h)
}

// Ray returns the pick ray from the eye through the given NDC point.
func (c *Camera) Ray(nx, ny float32) Ray {
	inv := c.Projection().Mul4(c.View()).Inv()
	far := inv.Mul4x1(mgl32.Vec4{nx, ny, 1, 1})
	if far[3] != 0 {
		far = far.Mul(1 / far[3])
	}
	origin := c.Position()
	return Ray{Origin: origin, Dir: far.Vec3().Sub(origin).Normalize()}
}

// Rotate queues an orbit rotation from a pointer drag of dx, dy pixels.
func (c *Camera) Rotate(dx, dy float32) {
	if c.height == 0 {
		return
	}
	c.yawVel -= 2 * math32.Pi * dx / float32(c.height)
	c.pitchVel += 2 * math32.Pi * dy / float32(c.height)
}

// Zoom queues a dolly step; positive delta moves the eye closer.
func (c *Camera) Zoom(delta float32) {
	c.zoomVel -= delta * 0.1
}

// Update applies a damped fraction of the queued motion and decays what remains. Call once per frame.
func (c *Camera) Update() {
	d := c.Damping
	if d <= 0 || d > 1 {
		d = 1
	}
	c.yaw += c.yawVel * d
	c.pitch = clamp(c.pitch+c.pitchVel*d, -maxPitch, maxPitch)
	c.radius = clamp(c.radius*(1+c.zoomVel*d), minRadius, maxRadius)

	c.yawVel *= 1 - d
	c.pitchVel *= 1 - d
	c.zoomVel *= 1 - d
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
