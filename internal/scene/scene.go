package scene

import (
	"image/color"
	"math/rand/v2"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/lucasb-eyer/go-colorful"
)

const (
	islandRingRadius = 20
	islandBaseY      = -2
	islandJitter     = 1.5
	islandConeRadius = 4
	islandConeHeight = 1
	barsPerIsland    = 4
	barWidth         = 0.5
	barSpacing       = 0.6
	barGroupY        = 0.5
	// ProxyRadius is the radius of the invisible pick sphere around each island.
	// Larger than the cone so islands are easy to click.
	ProxyRadius = 6

	projectRingRadius = 6

	platformRadius = 6
	platformHeight = 0.4
	platformY      = -3

	// DefaultParticleCount is the size of the ambient particle field.
	DefaultParticleCount = 400
	particleSpread       = 100
	// ParticleLower and ParticleUpper bound every particle's Y. Crossing one bound wraps to the other.
	ParticleLower = -30
	ParticleUpper = 30
)

// ShapeKind is the geometry of a project marker.
type ShapeKind int

const (
	ShapeBox ShapeKind = iota
	ShapeCylinder
	ShapeSphere
)

func (k ShapeKind) String() string {
	switch k {
	case ShapeBox:
		return "box"
	case ShapeCylinder:
		return "cylinder"
	case ShapeSphere:
		return "sphere"
	}
	return "unknown"
}

// Bar is a decorative skill bar parented to an island. Offset is relative to the island origin and rotates with it.
type Bar struct {
	Offset mgl32.Vec3
	Size   mgl32.Vec3
	Color  color.RGBA
}

// Proxy is the invisible pick volume paired with an island.
type Proxy struct {
	Position mgl32.Vec3
	Radius   float32
}

// Island is a landmark for one skill category. ID is its stable ring index.
type Island struct {
	ID       int
	Category string
	Position mgl32.Vec3
	Yaw      float32
	Radius   float32
	Height   float32
	Color    color.RGBA
	Bars     []Bar
	Proxy    Proxy
}

// Project is a floating, non-pickable project marker.
type Project struct {
	Index    int
	Kind     ShapeKind
	Size     mgl32.Vec3 // box: edge lengths; cylinder: radius, radius, height; sphere: radius
	Color    color.RGBA
	Position mgl32.Vec3
	Yaw      float32
}

// Part is one primitive of the avatar figure, placed relative to the avatar origin.
type Part struct {
	Kind   ShapeKind
	Offset mgl32.Vec3
	Size   mgl32.Vec3
	Color  color.RGBA
}

// Avatar is the two-primitive figure standing in the middle of the scene.
type Avatar struct {
	Position mgl32.Vec3
	Scale    float32
	Yaw      float32
	Parts    []Part
}

// Particles is the ambient point cloud stored as flat xyz / rgb buffers.
type Particles struct {
	Positions []float32
	Colors    []float32
	Size      float32
	Opacity   float32
}

// Len returns the number of points.
func (p *Particles) Len() int {
	return len(p.Positions) / 3
}

// Y returns the vertical coordinate of point i.
func (p *Particles) Y(i int) float32 {
	return p.Positions[i*3+1]
}

// Platform is the static ground disc.
type Platform struct {
	Position mgl32.Vec3
	Radius   float32
	Height   float32
	Color    color.RGBA
}

// Options controls world construction.
// Categories must be non-empty and distinct; they become islands in order.
type Options struct {
	Categories    []string
	ParticleCount int
}

// State is the whole scene for one session: built once by New, advanced by Advance.
type State struct {
	rng       *rand.Rand
	platform  Platform
	islands   []*Island
	byID      map[int]*Island
	projects  []*Project
	avatar    *Avatar
	particles *Particles
	frames    uint64
}

// New builds the world. rng drives decorative variation only (jitter, bar heights and colours, initial yaw).
func New(rng *rand.Rand, opts Options) *State {
	if opts.ParticleCount <= 0 {
		opts.ParticleCount = DefaultParticleCount
	}
	s := &State{rng: rng, byID: make(map[int]*Island)}
	s.buildEnvironment(opts)
	s.buildProjects()
	s.buildAvatar()
	return s
}

func (s *State) buildEnvironment(opts Options) {
	s.platform = Platform{
		Position: mgl32.Vec3{0, platformY, 0},
		Radius:   platformRadius,
		Height:   platformHeight,
		Color:    hexColor(0x222222),
	}
	s.buildIslands(opts.Categories)
	s.buildParticles(opts.ParticleCount)
}

func (s *State) buildIslands(categories []string) {
	n := len(categories)
	for i, cat := range categories {
		angle := float32(i) / float32(n) * 2 * math32.Pi
		pos := mgl32.Vec3{
			math32.Cos(angle) * islandRingRadius,
			islandBaseY + (s.rng.Float32()*2*islandJitter - islandJitter),
			math32.Sin(angle) * islandRingRadius,
		}
		isl := &Island{
			ID:       i,
			Category: cat,
			Position: pos,
			Yaw:      s.rng.Float32() * 2 * math32.Pi,
			Radius:   islandConeRadius,
			Height:   islandConeHeight,
			Color:    hslColor(float64(30+i*50), 0.7, 0.5),
			Proxy:    Proxy{Position: pos, Radius: ProxyRadius},
		}
		for j := 0; j < barsPerIsland; j++ {
			h := 0.8 + s.rng.Float32()*2
			isl.Bars = append(isl.Bars, Bar{
				Offset: mgl32.Vec3{(float32(j) - 1.5) * barSpacing, barGroupY + h/2, 0},
				Size:   mgl32.Vec3{barWidth, h, barWidth},
				Color:  hslColor(s.rng.Float64()*60, 0.8, 0.6),
			})
		}
		s.islands = append(s.islands, isl)
		s.byID[isl.ID] = isl
	}
}

func (s *State) buildParticles(count int) {
	p := &Particles{
		Positions: make([]float32, count*3),
		Colors:    make([]float32, count*3),
		Size:      0.2,
		Opacity:   0.6,
	}
	for i := 0; i < count; i++ {
		p.Positions[i*3] = (s.rng.Float32() - 0.5) * particleSpread
		p.Positions[i*3+1] = ParticleLower + s.rng.Float32()*(ParticleUpper-ParticleLower)
		p.Positions[i*3+2] = (s.rng.Float32() - 0.5) * particleSpread

		p.Colors[i*3] = 0.3 + s.rng.Float32()*0.7
		p.Colors[i*3+1] = 0.3 + s.rng.Float32()*0.7
		p.Colors[i*3+2] = 0.3 + s.rng.Float32()*0.7
	}
	s.particles = p
}

var projectDefs = []struct {
	kind  ShapeKind
	size  mgl32.Vec3
	color uint32
}{
	{ShapeBox, mgl32.Vec3{1.5, 1.5, 1.5}, 0x3498db},
	{ShapeCylinder, mgl32.Vec3{0.8, 0.8, 2}, 0x2ecc71},
	{ShapeSphere, mgl32.Vec3{1, 1, 1}, 0xe74c3c},
}

func (s *State) buildProjects() {
	n := len(projectDefs)
	for i, d := range projectDefs {
		angle := float32(i) * 2 * math32.Pi / float32(n)
		s.projects = append(s.projects, &Project{
			Index:    i,
			Kind:     d.kind,
			Size:     d.size,
			Color:    hexColor(d.color),
			Position: mgl32.Vec3{math32.Cos(angle) * projectRingRadius, 0, math32.Sin(angle) * projectRingRadius},
		})
	}
}

func (s *State) buildAvatar() {
	s.avatar = &Avatar{
		Position: mgl32.Vec3{0, -2, 0},
		Scale:    0.8,
		Parts: []Part{
			{Kind: ShapeSphere, Offset: mgl32.Vec3{0, 1.5, 0}, Size: mgl32.Vec3{0.6, 0.6, 0.6}, Color: hexColor(0xf1c40f)},
			{Kind: ShapeCylinder, Offset: mgl32.Vec3{0, 0.5, 0}, Size: mgl32.Vec3{0.4, 0.4, 1.5}, Color: hexColor(0x2980b9)},
		},
	}
}

// Platform returns the ground disc.
func (s *State) Platform() Platform { return s.platform }

// Islands returns islands in ring order. The slice is shared; callers must not reorder it.
func (s *State) Islands() []*Island { return s.islands }

// IslandByID resolves a stable island id.
func (s *State) IslandByID(id int) (*Island, bool) {
	isl, ok := s.byID[id]
	return isl, ok
}

// Projects returns the project markers.
func (s *State) Projects() []*Project { return s.projects }

// Avatar returns the avatar figure.
func (s *State) Avatar() *Avatar { return s.avatar }

// Particles returns the particle buffers.
func (s *State) Particles() *Particles { return s.particles }

// Frames returns how many times Advance has run.
func (s *State) Frames() uint64 { return s.frames }

func hexColor(v uint32) color.RGBA {
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}
}

func hslColor(h, sat, l float64) color.RGBA {
	r, g, b := colorful.Hsl(h, sat, l).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
