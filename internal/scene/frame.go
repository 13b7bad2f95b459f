package scene

import (
	"github.com/chewxy/math32"
)

const (
	islandSpinRate  = 0.001
	islandBobAmp    = 0.5
	projectSpinRate = 0.005
	projectBobAmp   = 0.3
	// projectPhase spreads project markers further apart in their bob cycle than islands.
	projectPhase  = 2
	avatarSpin    = 0.01
	particleDrift = 0.008
)

// Advance moves every animated object to time elapsed (seconds since start).
// Spin increments are per call, matching one call per displayed frame. Proxies are re-synced to their island each call.
func (s *State) Advance(elapsed float32) {
	for i, isl := range s.islands {
		isl.Yaw += islandSpinRate * float32(i+1)
		isl.Position[1] = islandBaseY + math32.Sin(elapsed+float32(i))*islandBobAmp
		isl.Proxy.Position = isl.Position
	}

	for i, p := range s.projects {
		p.Yaw += projectSpinRate * float32(i+1)
		p.Position[1] = math32.Sin(elapsed+float32(i)*projectPhase) * projectBobAmp
	}

	if s.avatar != nil {
		s.avatar.Yaw += avatarSpin
	}

	if s.particles != nil {
		pos := s.particles.Positions
		for i := 0; i+2 < len(pos); i += 3 {
			pos[i+1] = wrapY(pos[i+1] + math32.Sin(elapsed+float32(i))*particleDrift)
		}
	}
	s.frames++
}

// wrapY keeps y inside [ParticleLower, ParticleUpper]. Leaving through one bound re-enters at the other.
func wrapY(y float32) float32 {
	if y > ParticleUpper {
		return ParticleLower
	}
	if y < ParticleLower {
		return ParticleUpper
	}
	return y
}
