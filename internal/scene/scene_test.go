package scene

import (
	"math/rand/v2"
	"testing"
)

var testCategories = []string{"Frontend", "Backend", "Game Dev", "Web Tech", "Databases", "Tools"}

func newTestState(seed uint64) *State {
	return New(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)), Options{Categories: testCategories})
}

func TestNewBuildsWorld(t *testing.T) {
	s := newTestState(1)
	if got := len(s.Islands()); got != 6 {
		t.Errorf("islands = %d, want 6", got)
	}
	if got := len(s.Projects()); got != 3 {
		t.Errorf("projects = %d, want 3", got)
	}
	if s.Avatar() == nil || len(s.Avatar().Parts) != 2 {
		t.Errorf("avatar = %+v, want two parts", s.Avatar())
	}
	if got := s.Particles().Len(); got != DefaultParticleCount {
		t.Errorf("particles = %d, want %d", got, DefaultParticleCount)
	}
	if got := len(s.Particles().Colors); got != DefaultParticleCount*3 {
		t.Errorf("particle colors = %d, want %d", got, DefaultParticleCount*3)
	}
}

func TestIslandsDistinctAndStable(t *testing.T) {
	s := newTestState(2)
	seen := make(map[string]bool)
	for i, isl := range s.Islands() {
		if isl.ID != i {
			t.Errorf("island %d has ID %d", i, isl.ID)
		}
		if seen[isl.Category] {
			t.Errorf("duplicate category %q", isl.Category)
		}
		seen[isl.Category] = true
		if isl.Category != testCategories[i] {
			t.Errorf("island %d category = %q, want %q", i, isl.Category, testCategories[i])
		}
		if len(isl.Bars) != 4 {
			t.Errorf("island %d bars = %d, want 4", i, len(isl.Bars))
		}
		got, ok := s.IslandByID(i)
		if !ok || got != isl {
			t.Errorf("IslandByID(%d) = %v, %v", i, got, ok)
		}
	}
	if _, ok := s.IslandByID(99); ok {
		t.Error("IslandByID(99) should miss")
	}
}

func TestIslandsOnRing(t *testing.T) {
	s := newTestState(3)
	for _, isl := range s.Islands() {
		x, z := isl.Position[0], isl.Position[2]
		r2 := x*x + z*z
		if r2 < 399.9 || r2 > 400.1 {
			t.Errorf("island %d radius^2 = %v, want 400", isl.ID, r2)
		}
		if y := isl.Position[1]; y < -3.5 || y > -0.5 {
			t.Errorf("island %d y = %v outside jitter band", isl.ID, y)
		}
	}
}

func TestSeedDeterminism(t *testing.T) {
	a, b := newTestState(7), newTestState(7)
	for i := range a.Islands() {
		if a.Islands()[i].Position != b.Islands()[i].Position || a.Islands()[i].Yaw != b.Islands()[i].Yaw {
			t.Fatalf("island %d differs between equal seeds", i)
		}
	}
	for i := range a.Particles().Positions {
		if a.Particles().Positions[i] != b.Particles().Positions[i] {
			t.Fatalf("particle component %d differs between equal seeds", i)
		}
	}
}

func TestProxySyncAfterAdvance(t *testing.T) {
	s := newTestState(4)
	for f := 0; f < 250; f++ {
		s.Advance(float32(f) / 60)
		for _, isl := range s.Islands() {
			if isl.Proxy.Position != isl.Position {
				t.Fatalf("frame %d island %d proxy %v != mesh %v", f, isl.ID, isl.Proxy.Position, isl.Position)
			}
		}
	}
	if s.Frames() != 250 {
		t.Errorf("Frames() = %d, want 250", s.Frames())
	}
}

func TestAdvanceSpinAndBob(t *testing.T) {
	s := newTestState(5)
	yaw0 := make([]float32, len(s.Islands()))
	for i, isl := range s.Islands() {
		yaw0[i] = isl.Yaw
	}
	avatarYaw := s.Avatar().Yaw
	s.Advance(0)
	for i, isl := range s.Islands() {
		want := yaw0[i] + islandSpinRate*float32(i+1)
		if d := isl.Yaw - want; d > 1e-5 || d < -1e-5 {
			t.Errorf("island %d yaw = %v, want %v", i, isl.Yaw, want)
		}
	}
	if y := s.Islands()[0].Position[1]; y != islandBaseY {
		t.Errorf("island 0 y at t=0 = %v, want %v", y, islandBaseY)
	}
	if y := s.Projects()[0].Position[1]; y != 0 {
		t.Errorf("project 0 y at t=0 = %v, want 0", y)
	}
	if d := s.Avatar().Yaw - avatarYaw - avatarSpin; d > 1e-6 || d < -1e-6 {
		t.Errorf("avatar yaw delta = %v, want %v", s.Avatar().Yaw-avatarYaw, avatarSpin)
	}
}

func TestWrapY(t *testing.T) {
	tests := []struct {
		name string
		in   float32
		want float32
	}{
		{"inside", 12, 12},
		{"at upper bound", ParticleUpper, ParticleUpper},
		{"just above upper", ParticleUpper + 0.001, ParticleLower},
		{"at lower bound", ParticleLower, ParticleLower},
		{"just below lower", ParticleLower - 0.001, ParticleUpper},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := wrapY(tc.in); got != tc.want {
				t.Errorf("wrapY(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestParticleWrapAtBoundary(t *testing.T) {
	s := newTestState(6)
	p := s.Particles()
	// Point 0 has flat index 0, so its drift at elapsed π/2 is +particleDrift.
	p.Positions[1] = ParticleUpper
	s.Advance(1.5707964)
	if got := p.Y(0); got != ParticleLower {
		t.Errorf("particle 0 y = %v, want wrap to %v", got, ParticleLower)
	}
}

func TestParticlesStayInBounds(t *testing.T) {
	s := newTestState(8)
	for f := 0; f < 2000; f++ {
		s.Advance(float32(f) * 0.016)
	}
	p := s.Particles()
	for i := 0; i < p.Len(); i++ {
		if y := p.Y(i); y < ParticleLower || y > ParticleUpper {
			t.Fatalf("particle %d y = %v out of [%v, %v]", i, y, ParticleLower, ParticleUpper)
		}
	}
}
