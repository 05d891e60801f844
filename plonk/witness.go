package plonk

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr/fft"

	"github.com/nume-crypto/plonkcore/circuit"
	"github.com/nume-crypto/plonkcore/internal/polyutil"
	"github.com/nume-crypto/plonkcore/internal/randsrc"
)

// computeLRO reads the L, R, O columns out of the flat witness pool
// through each gate's wiring, in Lagrange (evaluation-over-H) form.
// Grounded on vck3000-gnark's computeLRO, generalized from a solved
// SparseR1CS's VariableID() indirection to this module's direct
// Gate.Wires indirection into the witness pool (see circuit.Gate).
func computeLRO(idx *Index, witness []fr.Element) (l, r, o []fr.Element, err error) {
	if len(witness) != idx.WitnessLen() {
		return nil, nil, nil, ErrWitnessCsInconsistent
	}
	n := idx.N()
	l = make([]fr.Element, n)
	r = make([]fr.Element, n)
	o = make([]fr.Element, n)
	for j, g := range idx.Gates {
		l[j].Set(&witness[g.Wires.L])
		r[j].Set(&witness[g.Wires.R])
		o[j].Set(&witness[g.Wires.O])
	}
	return l, r, o, nil
}

// computePublicPoly builds p = -interp(witness[0:idx.Public]), the unmasked
// public-input polynomial added to the quotient's generic-arithmetic
// contribution. Grounded on
// original_source/pairing/plonk/src/prover.rs's "let p =
// -interpolate(public)" (no blinding: p is disclosed, not hidden).
func computePublicPoly(idx *Index, witness []fr.Element) []fr.Element {
	n := idx.N()
	lagrange := make([]fr.Element, n)
	for i := 0; i < idx.Public; i++ {
		lagrange[i].Neg(&witness[i])
	}
	return circuit.ToMonomial(&idx.Domain, lagrange)
}

// toBlindedMonomial converts a Lagrange-form column to monomial form with
// headroom for blinding, then blinds it with blinding order 1 (matching
// the teacher's blindPoly(cl, n, 1) call for l, r, o).
func toBlindedMonomial(domain *fft.Domain, lagrange []fr.Element, rng randsrc.Source) []fr.Element {
	n := uint64(domain.Cardinality)
	c := make([]fr.Element, n, n+2)
	copy(c, lagrange)
	domain.FFTInverse(c, fft.DIF)
	fft.BitReverse(c)
	return polyutil.BlindPoly(c, n, 1, rng)
}
