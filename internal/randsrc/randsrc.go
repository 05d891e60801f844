// Package randsrc supplies the masking randomness the prover uses to
// zero-knowledge-blind witness and permutation polynomials.
//
// Masking randomness is kept strictly separate from the Fiat-Shamir
// transcript: drawing blinders from the transcript would let a verifier
// predict them, and the construction's zero-knowledge property is
// statistical on masking randomness being private to the prover.
package randsrc

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Source draws fresh scalar blinders.
type Source interface {
	// Element draws one uniformly random field element.
	Element() fr.Element
}

// osSource is the default, OS-seeded source (fr.Element.SetRandom reads
// crypto/rand internally).
type osSource struct{}

// OS is the default masking-randomness source.
var OS Source = osSource{}

func (osSource) Element() fr.Element {
	var e fr.Element
	if _, err := e.SetRandom(); err != nil {
		// SetRandom only fails if the OS entropy source itself fails; the
		// sponge/FFT/RNG layers are assumed infallible (spec §7), so treat
		// this as the bug it would be.
		panic(err)
	}
	return e
}

// Deterministic returns a Source that derives its output from a fixed seed
// instead of the OS entropy pool. It is permitted for testing only (the
// construction then trades zero-knowledge soundness assumptions, not
// computational soundness) and MUST NOT be used to prove statements whose
// privacy matters.
//
// The seed is stretched with a counter-mode expansion so repeated calls to
// Element() do not collide, and so two prover runs seeded identically
// produce byte-identical blinders (spec §5, §8 property 5).
func Deterministic(seed [32]byte) Source {
	return &detSource{seed: seed}
}

type detSource struct {
	seed    [32]byte
	counter uint64
}

func (d *detSource) Element() fr.Element {
	var e fr.Element
	var buf [fr.Bytes]byte
	copy(buf[:], d.nextBlock())
	e.SetBytes(buf[:])
	return e
}

// nextBlock expands (seed, counter) into a pseudo-random block. Collision
// resistance is irrelevant here: only reproducibility across prover
// invocations given the same seed is required.
func (d *detSource) nextBlock() []byte {
	var out [32]byte
	state := uint64(0xcbf29ce484222325) ^ d.counter
	for i := range out {
		state ^= uint64(d.seed[i])
		state *= 0x100000001b3
		out[i] = byte(state >> 56)
	}
	d.counter++
	return out[:]
}
