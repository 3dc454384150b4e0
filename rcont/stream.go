package rcont

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"

	"golang.org/x/exp/rand"
)

// Stream is a seedable source of uniform variates backed by a PCG
// generator. A Stream is exclusively owned: exactly one goroutine may draw
// from it for its entire lifetime. The batch driver never shares a Stream;
// it derives one per worker with Derive.
type Stream struct {
	seed uint64
	rng  *rand.Rand
}

// NewStream returns a Stream seeded deterministically from seed.
func NewStream(seed uint64) *Stream {
	return &Stream{seed: seed, rng: rand.New(rand.NewSource(seed))}
}

// NewOSStream returns a Stream seeded from operating-system entropy.
func NewOSStream() (*Stream, error) {
	var buf [8]byte
	if _, err := crand.Read(buf[:]); err != nil {
		return nil, fmt.Errorf("rcont: reading OS entropy: %w", err)
	}
	return NewStream(binary.LittleEndian.Uint64(buf[:])), nil
}

// Derive returns a statistically independent Stream for the given
// discriminator. The derived seed mixes the root seed with the
// discriminator through splitmix64, so distinct discriminators on the same
// root yield uncorrelated sequences and the mapping is reproducible.
func (s *Stream) Derive(discriminator uint64) *Stream {
	return NewStream(splitmix64(s.seed ^ (discriminator+1)*0x9E3779B97F4A7C15))
}

// splitmix64 is the finalizer of Vigna's SplitMix64 generator, the usual
// mixer for expanding one seed into several.
func splitmix64(x uint64) uint64 {
	x += 0x9E3779B97F4A7C15
	x = (x ^ (x >> 30)) * 0xBF58476D1CE4E5B9
	x = (x ^ (x >> 27)) * 0x94D049BB133111EB
	return x ^ (x >> 31)
}

// openFloat64 draws a uniform variate from the open interval (0, 1).
// rand.Float64 is half-open at zero; a zero draw is rejected and redrawn
// so the inverse-CDF search never accepts an outcome with zero mass.
func (s *Stream) openFloat64() float64 {
	for {
		if f := s.rng.Float64(); f > 0 {
			return f
		}
	}
}
