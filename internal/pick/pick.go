package pick

import (
	"sort"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"portfolio3d/internal/camera"
	"portfolio3d/internal/scene"
)

// Target is a pickable sphere tagged with the id of the object it stands in for.
type Target struct {
	ID     int
	Center mgl32.Vec3
	Radius float32
}

// Hit is one ray/target intersection at Distance along the ray.
type Hit struct {
	ID       int
	Distance float32
	Point    mgl32.Vec3
}

// IntersectSphere returns the distance to the first point where r enters the sphere,
// or to the exit point when the origin is inside it. ok is false on a miss or when the sphere is behind the ray.
func IntersectSphere(r camera.Ray, center mgl32.Vec3, radius float32) (dist float32, ok bool) {
	oc := r.Origin.Sub(center)
	b := oc.Dot(r.Dir)
	c := oc.Dot(oc) - radius*radius
	disc := b*b - c
	if disc < 0 {
		return 0, false
	}
	sq := math32.Sqrt(disc)
	t0, t1 := -b-sq, -b+sq
	if t0 >= 0 {
		return t0, true
	}
	if t1 >= 0 {
		return t1, true
	}
	return 0, false
}

// Cast intersects r with every target and returns hits nearest first.
func Cast(r camera.Ray, targets []Target) []Hit {
	var hits []Hit
	for _, t := range targets {
		if d, ok := IntersectSphere(r, t.Center, t.Radius); ok {
			hits = append(hits, Hit{ID: t.ID, Distance: d, Point: r.At(d)})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Distance < hits[j].Distance
	})
	return hits
}

// ProxyTargets returns the current proxy spheres of all islands, keyed by island id.
func ProxyTargets(s *scene.State) []Target {
	islands := s.Islands()
	out := make([]Target, 0, len(islands))
	for _, isl := range islands {
		out = append(out, Target{ID: isl.ID, Center: isl.Proxy.Position, Radius: isl.Proxy.Radius})
	}
	return out
}

// Dispatcher turns a click in window pixels into the island whose proxy the click ray hits first.
type Dispatcher struct {
	cam   *camera.Camera
	scene *scene.State
}

// NewDispatcher returns a dispatcher reading proxies from s and casting through cam.
func NewDispatcher(cam *camera.Camera, s *scene.State) *Dispatcher {
	return &Dispatcher{cam: cam, scene: s}
}

// Pick resolves a click at window pixel (x, y). A miss, or a hit whose id no longer maps to an island, returns false.
func (d *Dispatcher) Pick(x, y float32) (*scene.Island, bool) {
	nx, ny := d.cam.NDC(x, y)
	return d.PickNDC(nx, ny)
}

// PickNDC is Pick for a point already in normalized device coordinates.
func (d *Dispatcher) PickNDC(nx, ny float32) (*scene.Island, bool) {
	hits := Cast(d.cam.Ray(nx, ny), ProxyTargets(d.scene))
	if len(hits) == 0 {
		return nil, false
	}
	return d.scene.IslandByID(hits[0].ID)
}
