// Package render draws a portfolio session with raylib: the 3D world first, then the HTML-like overlay.
package render

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"portfolio3d/internal/app"
	"portfolio3d/internal/camera"
	"portfolio3d/internal/primitives"
	"portfolio3d/internal/scene"
	"portfolio3d/internal/sprite"
)

const (
	spriteSize = 32
	spriteBlur = 4
	// barOpacity is applied to every skill bar.
	barOpacity = 0.8
)

// Renderer owns GPU resources. Create it after the window exists.
type Renderer struct {
	reg    *primitives.Registry
	sprite rl.Texture2D
	font   rl.Font
}

// New returns a renderer. GPU resources are created lazily on the first Draw.
func New() *Renderer {
	reg := primitives.NewRegistry()
	reg.SetLight(primitives.DefaultLight())
	return &Renderer{reg: reg}
}

// SetFont sets the overlay font. A zero texture ID means raylib's default font.
func (r *Renderer) SetFont(font rl.Font) {
	r.font = font
}

// Draw renders one frame of a. Call between BeginDrawing and EndDrawing.
func (r *Renderer) Draw(a *app.App) {
	cam := Camera3D(a.Camera())
	eye := a.Camera().Position()
	r.reg.SetView([3]float32{eye[0], eye[1], eye[2]})

	rl.BeginMode3D(cam)
	s := a.Scene()
	r.drawPlatform(s.Platform())
	for _, isl := range s.Islands() {
		r.drawIsland(isl)
	}
	for _, p := range s.Projects() {
		r.drawProject(p)
	}
	r.drawAvatar(s.Avatar())
	r.drawParticles(cam, s.Particles())
	rl.EndMode3D()

	r.DrawDocument(a.Document())
}

// Unload frees GPU resources.
func (r *Renderer) Unload() {
	r.reg.Unload()
	if rl.IsTextureValid(r.sprite) {
		rl.UnloadTexture(r.sprite)
	}
}

// Camera3D mirrors the viewer camera into raylib's camera struct.
func Camera3D(c *camera.Camera) rl.Camera3D {
	pos, target := c.Position(), c.Target()
	return rl.Camera3D{
		Position:   vec(pos),
		Target:     vec(target),
		Up:         rl.NewVector3(0, 1, 0),
		Fovy:       c.FovY,
		Projection: rl.CameraPerspective,
	}
}

func (r *Renderer) drawPlatform(p scene.Platform) {
	d := 2 * p.Radius
	r.reg.Draw(primitives.Cylinder, arr(p.Position), [3]float32{d, p.Height, d}, 0, p.Color)
}

func (r *Renderer) drawIsland(isl *scene.Island) {
	d := 2 * isl.Radius
	r.reg.Draw(primitives.Cone, arr(isl.Position), [3]float32{d, isl.Height, d}, isl.Yaw, isl.Color)
	rot := mgl32.HomogRotate3DY(isl.Yaw)
	for _, b := range isl.Bars {
		off := rot.Mul4x1(b.Offset.Vec4(1)).Vec3()
		r.reg.Draw(primitives.Cube, arr(isl.Position.Add(off)), arr(b.Size), isl.Yaw, fade(b.Color, barOpacity))
	}
}

func (r *Renderer) drawProject(p *scene.Project) {
	switch p.Kind {
	case scene.ShapeBox:
		r.reg.Draw(primitives.Cube, arr(p.Position), arr(p.Size), p.Yaw, p.Color)
	case scene.ShapeCylinder:
		r.reg.Draw(primitives.Cylinder, arr(p.Position), [3]float32{2 * p.Size[0], p.Size[2], 2 * p.Size[1]}, p.Yaw, p.Color)
	case scene.ShapeSphere:
		d := 2 * p.Size[0]
		r.reg.Draw(primitives.Sphere, arr(p.Position), [3]float32{d, d, d}, p.Yaw, p.Color)
	}
}

func (r *Renderer) drawAvatar(av *scene.Avatar) {
	if av == nil {
		return
	}
	rot := mgl32.HomogRotate3DY(av.Yaw)
	for _, part := range av.Parts {
		off := rot.Mul4x1(part.Offset.Mul(av.Scale).Vec4(1)).Vec3()
		pos := arr(av.Position.Add(off))
		size := part.Size.Mul(av.Scale)
		switch part.Kind {
		case scene.ShapeSphere:
			d := 2 * size[0]
			r.reg.Draw(primitives.Sphere, pos, [3]float32{d, d, d}, av.Yaw, part.Color)
		case scene.ShapeCylinder:
			r.reg.Draw(primitives.Cylinder, pos, [3]float32{2 * size[0], size[2], 2 * size[1]}, av.Yaw, part.Color)
		case scene.ShapeBox:
			r.reg.Draw(primitives.Cube, pos, arr(size), av.Yaw, part.Color)
		}
	}
}

func (r *Renderer) drawParticles(cam rl.Camera3D, p *scene.Particles) {
	if p == nil || p.Len() == 0 {
		return
	}
	if !rl.IsTextureValid(r.sprite) {
		img := rl.NewImageFromImage(sprite.SoftDisc(spriteSize, spriteBlur))
		r.sprite = rl.LoadTextureFromImage(img)
		rl.UnloadImage(img)
	}
	alpha := uint8(p.Opacity * 255)
	rl.BeginBlendMode(rl.BlendAdditive)
	rl.DisableDepthMask()
	for i := 0; i < p.Len(); i++ {
		pos := rl.NewVector3(p.Positions[i*3], p.Positions[i*3+1], p.Positions[i*3+2])
		tint := color.RGBA{
			R: uint8(p.Colors[i*3] * 255),
			G: uint8(p.Colors[i*3+1] * 255),
			B: uint8(p.Colors[i*3+2] * 255),
			A: alpha,
		}
		rl.DrawBillboard(cam, r.sprite, pos, p.Size, tint)
	}
	rl.EnableDepthMask()
	rl.EndBlendMode()
}

func vec(v mgl32.Vec3) rl.Vector3 {
	return rl.NewVector3(v[0], v[1], v[2])
}

func arr(v mgl32.Vec3) [3]float32 {
	return [3]float32{v[0], v[1], v[2]}
}

func fade(c color.RGBA, opacity float32) color.RGBA {
	c.A = uint8(float32(c.A) * opacity)
	return c
}
