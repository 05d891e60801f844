package plonkdlog

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/nume-crypto/plonkcore/internal/randsrc"
	"github.com/nume-crypto/plonkcore/plonk"
)

// PolyComm is a single polynomial commitment: a multi-exponentiation of
// the polynomial's coefficients against a fixed basis of group elements,
// the vector-Pedersen commitment the dlog/IPA variant opens. The real
// construction's commitments may carry a degree-bound "shifted" point
// alongside the unshifted one; this module only ever commits to
// polynomials already bounded by the basis length it was built with, so
// that extra component is omitted (degree-bound enforcement is a
// verifier-side concern, and this module implements a prover only).
type PolyComm struct {
	Point bn254.G1Affine
}

// OpeningProof is the recursive inner-product-argument transcript proving
// a batch of committed polynomials evaluates to the claimed values at a
// point: one (L, R) commitment pair per halving round, plus the final
// folded scalar and basis point. There is no verifier in this module
// (out of scope, per spec.md's non-goals); Open's job is only to produce
// this data the way the prover side of the construction would.
type OpeningProof struct {
	LR          [][2]bn254.G1Affine
	FinalScalar fr.Element
	FinalBasis  bn254.G1Affine
}

// Committer abstracts the dlog variant's commitment scheme behind the
// interface the prover drives against, per SPEC_FULL.md §2's "IPA-shaped
// batched opening behind an abstract Committer interface" — instead of
// hard-wiring one bulletproof implementation into the quotient/opening
// code. No off-the-shelf Go IPA/bulletproof library ships in this
// module's retrieval pack, so the one concrete implementation here
// (PedersenIPA) is built directly from gnark-crypto's bn254 group
// operations (MultiExp, ScalarMultiplication, affine Add), the same curve
// layer already used for the pairing variant's KZG scheme.
type Committer interface {
	Commit(poly []fr.Element) (PolyComm, error)
	// Open batches polys into one opening proof at point, drawing its
	// batching and per-round folding challenges from fs so the whole
	// argument stays Fiat-Shamir-bound to the rest of the proof.
	Open(polys [][]fr.Element, point fr.Element, fs *plonk.Transcript) (OpeningProof, error)
}

// PedersenIPA is a Committer backed by a fixed basis of group elements
// and a textbook inner-product-argument folding for Open.
type PedersenIPA struct {
	basis []bn254.G1Affine
}

// NewPedersenIPA derives a committer whose basis has room for polynomials
// up to size elements (Open pads the polynomials it batches up to the next
// power of two itself, so size only needs to be at least that large, not
// itself a power of two). The basis points are derived from
// a fixed label rather than drawn from the proof's own randomness or
// transcript, the way a real trusted/structured setup's basis would be
// fixed independently of any single proof.
func NewPedersenIPA(size int) *PedersenIPA {
	basis := make([]bn254.G1Affine, size)
	_, _, g1gen, _ := bn254.Generators()
	seed := randsrc.Deterministic([32]byte{'p', 'e', 'd', 'e', 'r', 's', 'e', 'n', '-', 'b', 'a', 's', 'i', 's'})
	for i := range basis {
		s := seed.Element()
		var sb big.Int
		s.BigInt(&sb)
		basis[i].ScalarMultiplication(&g1gen, &sb)
	}
	return &PedersenIPA{basis: basis}
}

// Commit computes sum_i poly[i]*basis[i].
func (c *PedersenIPA) Commit(poly []fr.Element) (PolyComm, error) {
	if len(poly) > len(c.basis) {
		return PolyComm{}, fmt.Errorf("plonkdlog: polynomial of size %d exceeds basis size %d", len(poly), len(c.basis))
	}
	var p bn254.G1Affine
	p.MultiExp(c.basis[:len(poly)], poly, ecc.MultiExpConfig{})
	return PolyComm{Point: p}, nil
}

// Open combines polys with sequential powers of a transcript-drawn
// challenge v into one aggregate polynomial, then runs log2(n) halving
// rounds of the inner-product argument over it, binding each round's
// (L, R) pair into the transcript before drawing that round's folding
// challenge. Grounded on the batching-then-fold shape of
// BatchOpenSinglePoint in the pack's own gnark-crypto kzg.go (combine
// polynomials under a transcript-derived challenge before dividing),
// generalized here to an IPA fold instead of a single KZG division.
func (c *PedersenIPA) Open(polys [][]fr.Element, point fr.Element, fs *plonk.Transcript) (OpeningProof, error) {
	if len(polys) == 0 {
		return OpeningProof{}, errors.New("plonkdlog: no polynomials to open")
	}

	// The batched polynomials here (blinded witness columns, the folded
	// quotient, the linearization polynomial) carry a few extra blinding
	// coefficients apiece, so their lengths rarely land on a power of
	// two. The halving fold needs one, so every polynomial is zero-padded
	// up to the smallest power of two at least as large as the longest
	// one before aggregating, rather than requiring the caller to already
	// supply power-of-two-sized polynomials.
	maxLen := 0
	for _, p := range polys {
		if len(p) > maxLen {
			maxLen = len(p)
		}
	}
	n := nextPowerOfTwo(maxLen)
	if n > len(c.basis) {
		return OpeningProof{}, fmt.Errorf("plonkdlog: opened polynomial length %d exceeds basis size %d", n, len(c.basis))
	}

	v, err := fs.BindAndDraw("v")
	if err != nil {
		return OpeningProof{}, err
	}

	agg := make([]fr.Element, n)
	copy(agg, polys[0])
	power := v
	for _, p := range polys[1:] {
		var t fr.Element
		for i := range p {
			t.Mul(&p[i], &power)
			agg[i].Add(&agg[i], &t)
		}
		power.Mul(&power, &v)
	}

	basis := append([]bn254.G1Affine(nil), c.basis[:n]...)
	var proof OpeningProof

	for len(agg) > 1 {
		half := len(agg) / 2
		lo, hi := agg[:half], agg[half:]
		basisLo, basisHi := basis[:half], basis[half:]

		var L, R bn254.G1Affine
		L.MultiExp(basisHi, lo, ecc.MultiExpConfig{})
		R.MultiExp(basisLo, hi, ecc.MultiExpConfig{})
		proof.LR = append(proof.LR, [2]bn254.G1Affine{L, R})

		u, err := fs.BindAndDraw("ipa-fold", L.Marshal(), R.Marshal())
		if err != nil {
			return OpeningProof{}, err
		}
		var uInv fr.Element
		uInv.Inverse(&u)

		folded := make([]fr.Element, half)
		foldedBasis := make([]bn254.G1Affine, half)
		var t fr.Element
		var uInvBig big.Int
		uInv.BigInt(&uInvBig)
		for i := 0; i < half; i++ {
			t.Mul(&hi[i], &u)
			folded[i].Add(&lo[i], &t)

			var scaled bn254.G1Affine
			scaled.ScalarMultiplication(&basisHi[i], &uInvBig)
			foldedBasis[i].Add(&basisLo[i], &scaled)
		}
		agg, basis = folded, foldedBasis
	}

	proof.FinalScalar = agg[0]
	proof.FinalBasis = basis[0]
	return proof, nil
}

func nextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
