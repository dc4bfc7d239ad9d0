package sway

import "time"

// Palette is a small set of discrete variants selected by index:
// Base + (i mod Mod) * Step. With Flip set, odd indices are negated, which
// gives the alternating left/right drift and tilt of the original layouts.
// A zero Mod always yields Base.
type Palette struct {
	Base float64
	Step float64
	Mod  int
	Flip bool
}

// At returns the palette value for index i.
func (p Palette) At(i int) float64 {
	v := p.Base
	if p.Mod > 0 {
		v += float64(i%p.Mod) * p.Step
	}
	if p.Flip && i%2 == 1 {
		v = -v
	}
	return v
}

// FieldSpec holds the integer strides and palettes a particle field is
// generated from. It is comparable and is the FieldCache key.
type FieldSpec struct {
	Count int
	// StrideX and StrideY spread particles over the container:
	// x = (i*StrideX) mod 100, y = (i*StrideY) mod 100, in percent.
	StrideX, StrideY int

	Size    Palette // pixels
	Opacity Palette // [0, 1]
	Phase   Palette // seconds of start delay
	Period  Palette // seconds per loop; zero means static
	Drift   Palette // horizontal travel in pixels over one loop
	Rotate  Palette // degrees
}

// Particle is one generated ambient particle descriptor.
type Particle struct {
	Index   int
	X, Y    float64 // percent of the container
	Size    float64
	Opacity float64
	Phase   time.Duration
	Period  time.Duration
	Drift   float64
	Rotate  float64
}

// ParticleField is a fixed-size, immutable sequence of particles.
type ParticleField struct {
	spec      FieldSpec
	particles []Particle
}

// GenerateField lays out spec.Count particles. It reads no entropy source:
// the same spec always yields the same field, which keeps the first paint
// identical to every later one.
func GenerateField(spec FieldSpec) ParticleField {
	n := spec.Count
	if n < 0 {
		n = 0
	}
	ps := make([]Particle, n)
	for i := range ps {
		ps[i] = Particle{
			Index:   i,
			X:       float64(posMod(i*spec.StrideX, 100)),
			Y:       float64(posMod(i*spec.StrideY, 100)),
			Size:    spec.Size.At(i),
			Opacity: clamp(spec.Opacity.At(i), 0, 1),
			Phase:   seconds(spec.Phase.At(i)),
			Period:  seconds(spec.Period.At(i)),
			Drift:   spec.Drift.At(i),
			Rotate:  spec.Rotate.At(i),
		}
	}
	return ParticleField{spec: spec, particles: ps}
}

// posMod is a modulo that stays non-negative for negative strides.
func posMod(a, m int) int {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

// Spec returns the spec the field was generated from.
func (f ParticleField) Spec() FieldSpec {
	return f.spec
}

// Len returns the number of particles.
func (f ParticleField) Len() int {
	return len(f.particles)
}

// At returns particle i.
func (f ParticleField) At(i int) Particle {
	return f.particles[i]
}

// Particles returns a copy of the particle sequence.
func (f ParticleField) Particles() []Particle {
	out := make([]Particle, len(f.particles))
	copy(out, f.particles)
	return out
}

// Equal reports whether two fields hold identical particles.
func (f ParticleField) Equal(other ParticleField) bool {
	if len(f.particles) != len(other.particles) {
		return false
	}
	for i := range f.particles {
		if f.particles[i] != other.particles[i] {
			return false
		}
	}
	return true
}

// FieldCache memoizes generated fields per spec. Each view owns its cache;
// there is no process-wide instance.
type FieldCache struct {
	fields map[FieldSpec]ParticleField
}

// NewFieldCache creates an empty cache.
func NewFieldCache() *FieldCache {
	return &FieldCache{fields: make(map[FieldSpec]ParticleField)}
}

// Get returns the field for spec, generating it on first use.
func (c *FieldCache) Get(spec FieldSpec) ParticleField {
	if f, ok := c.fields[spec]; ok {
		return f
	}
	f := GenerateField(spec)
	c.fields[spec] = f
	return f
}

// Len returns the number of cached fields.
func (c *FieldCache) Len() int {
	return len(c.fields)
}

// Field presets used by the landing page.
var (
	// HeroDots are the glowing dots floating behind the hero.
	HeroDots = FieldSpec{
		Count: 22, StrideX: 41, StrideY: 27,
		Size:    Palette{Base: 2, Step: 1, Mod: 4},
		Opacity: Palette{Base: 0.14, Step: 0.07, Mod: 6},
		Phase:   Palette{Step: 0.35, Mod: 7},
		Period:  Palette{Base: 5.5},
	}

	// FooterDots are the dots behind the footer.
	FooterDots = FieldSpec{
		Count: 18, StrideX: 41, StrideY: 29,
		Size:    Palette{Base: 2, Step: 1, Mod: 4},
		Opacity: Palette{Base: 0.14, Step: 0.07, Mod: 6},
		Phase:   Palette{Step: 0.35, Mod: 7},
		Period:  Palette{Base: 5.5},
	}

	// Snowfall flakes start above the hero and fall through it, drifting
	// alternately left and right.
	Snowfall = FieldSpec{
		Count: 70, StrideX: 37,
		Size:    Palette{Base: 1.5, Step: 1, Mod: 5},
		Opacity: Palette{Base: 0.18, Step: 0.1, Mod: 6},
		Phase:   Palette{Step: 0.35, Mod: 10},
		Period:  Palette{Base: 7, Step: 1, Mod: 7},
		Drift:   Palette{Base: 14, Step: 8, Mod: 6, Flip: true},
	}

	// GamepadPattern is the faint tilted icon pattern behind the hero.
	GamepadPattern = FieldSpec{
		Count: 20, StrideX: 23, StrideY: 41,
		Size:    Palette{Base: 22, Step: 7, Mod: 4},
		Opacity: Palette{Base: 0.05, Step: 0.02, Mod: 5},
		Phase:   Palette{Step: 0.6, Mod: 6},
		Period:  Palette{Base: 10, Step: 1, Mod: 5},
		Rotate:  Palette{Base: -10, Step: -6, Mod: 4, Flip: true},
	}
)
