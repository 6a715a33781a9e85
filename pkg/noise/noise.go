// Package noise wraps OpenSimplex noise behind the sampler interface the
// materials consume.
package noise

import "github.com/ojrac/opensimplex-go"

// DefaultSeed keeps every run of the scene visually identical.
const DefaultSeed = 1337

// DefaultFrequency scales query coordinates before sampling, so material
// zoom factors select detail bands rather than raw lattice coordinates.
const DefaultFrequency = 0.01

// Sampler is a seeded, stateless OpenSimplex source. Queries are
// deterministic and safe for concurrent use.
type Sampler struct {
	src  opensimplex.Noise
	freq float64
}

// New creates a sampler with the given seed and the default frequency.
func New(seed int64) *Sampler {
	return &Sampler{
		src:  opensimplex.New(seed),
		freq: DefaultFrequency,
	}
}

// NewWithFrequency creates a sampler with an explicit coordinate scale.
func NewWithFrequency(seed int64, freq float64) *Sampler {
	return &Sampler{
		src:  opensimplex.New(seed),
		freq: freq,
	}
}

// Noise2D samples the 2D field at (x, y). Results lie in [-1, 1].
func (s *Sampler) Noise2D(x, y float64) float64 {
	return s.src.Eval2(x*s.freq, y*s.freq)
}

// Noise3D samples the 3D field at (x, y, z). Results lie in [-1, 1].
func (s *Sampler) Noise3D(x, y, z float64) float64 {
	return s.src.Eval3(x*s.freq, y*s.freq, z*s.freq)
}
