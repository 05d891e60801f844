package plonkdlog

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr/fft"

	"github.com/nume-crypto/plonkcore/circuit"
	"github.com/nume-crypto/plonkcore/internal/polyutil"
	"github.com/nume-crypto/plonkcore/internal/randsrc"
)

// computeLRO reads the three witness columns out of the flat 3n witness
// pool through each gate's wire indirection. Identical in shape to
// plonk/witness.go's computeLRO (both variants read the same data model);
// kept as its own small copy rather than a shared export because the two
// packages' Index types carry different commitment machinery alongside
// the same circuit.Core.
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

// computePublicPoly mirrors plonk/witness.go's computePublicPoly: p =
// -interp(witness[0:idx.Public]), unmasked.
func computePublicPoly(idx *Index, witness []fr.Element) []fr.Element {
	n := idx.N()
	lagrange := make([]fr.Element, n)
	for i := 0; i < idx.Public; i++ {
		lagrange[i].Neg(&witness[i])
	}
	return circuit.ToMonomial(&idx.Domain, lagrange)
}

// toBlindedMonomial interpolates a column and blinds it with blinding
// order bo, grounded on polyutil.BlindPoly (shared with the pairing
// variant).
func toBlindedMonomial(domain *fft.Domain, lagrange []fr.Element, bo uint64, rng randsrc.Source) []fr.Element {
	n := domain.Cardinality
	c := make([]fr.Element, n, n+bo+1)
	copy(c, lagrange)
	domain.FFTInverse(c, fft.DIF)
	fft.BitReverse(c)
	return polyutil.BlindPoly(c, n, bo, rng)
}
