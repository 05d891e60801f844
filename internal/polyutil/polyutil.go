// Package polyutil holds the polynomial-manipulation helpers shared by the
// pairing and dlog prover variants: interpolation-with-masking, coset
// evaluation and Montgomery-trick batch inversion. Grounded on
// vck3000-gnark's internal/backend/bls12-381/plonk/prove.go
// (blindPoly/evaluateOddCosetsHDomain), which both variants of this module
// generalize.
package polyutil

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr/fft"

	"github.com/nume-crypto/plonkcore/internal/randsrc"
)

// InterpolateColumn reads len(domain) scalars out of witness at the
// indices gate wires select, and returns the column in monomial
// (coefficient) form.
func InterpolateColumn(domain *fft.Domain, witness []fr.Element, wireIndex func(row int) int) []fr.Element {
	n := int(domain.Cardinality)
	col := make([]fr.Element, n, n+2) // +2 headroom for blinding
	for row := 0; row < n; row++ {
		col[row].Set(&witness[wireIndex(row)])
	}
	domain.FFTInverse(col, fft.DIF)
	fft.BitReverse(col)
	return col
}

// BlindPoly adds a random multiple of the vanishing polynomial X^rou - 1 to
// cp, of blinding order bo (bo+1 fresh random coefficients). cp must have
// spare capacity rou+bo+1. The result agrees with cp on the domain of size
// rou and has degree rou+bo.
func BlindPoly(cp []fr.Element, rou, bo uint64, rng randsrc.Source) []fr.Element {
	total := rou + bo
	res := cp[:total+1]

	blind := make([]fr.Element, bo+1)
	for i := range blind {
		blind[i] = rng.Element()
	}
	for i := uint64(0); i < bo+1; i++ {
		res[i].Sub(&res[i], &blind[i])
		res[rou+i].Add(&res[rou+i], &blind[i])
	}
	return res
}

// EvalOnCoset evaluates a monomial-form polynomial (degree < domainH's
// cardinality) over the odd coset of domainH, returning the result in
// bit-reversed order (matching the teacher's evaluateOddCosetsHDomain,
// which leaves the bit-reversal to its caller).
func EvalOnCoset(poly []fr.Element, domainH *fft.Domain) []fr.Element {
	res := make([]fr.Element, domainH.Cardinality)
	copy(res, poly)
	domainH.FFT(res, fft.DIF, fft.OnCoset())
	return res
}

// BatchInvertGrandProduct runs Montgomery's trick over a slice, returning
// a new slice holding the inverse of each element. Required for the permutation
// argument's grand-product accumulator (spec.md §4.3): computing n
// independent inverses one at a time costs n field inversions, batching
// costs one inversion and 3n multiplications.
func BatchInvertGrandProduct(values []fr.Element) []fr.Element {
	return fr.BatchInvert(values)
}
