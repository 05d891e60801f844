package plonkdlog

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/nume-crypto/plonkcore/internal/utils"
	"github.com/nume-crypto/plonkcore/plonk"
)

// computeLinearizedPolynomial mirrors plonk/linearization.go's
// computeLinearizedPolynomial (generic-arithmetic + permutation terms,
// beta kept distinct from gamma in both), plus
// the four dlog gate families' own linearization contributions: each
// family's selector monomial scaled by its identity's value once l, r, o
// are fixed to their zeta evaluations — the same zeta-substitution
// SPEC_FULL.md §4.6 describes for the generic gate, applied per family
// and scaled by the alpha power assigned to it (see prove.go).
func computeLinearizedPolynomial(idx *Index, l, r, o, beta, gamma, alphaRaw, zeta, zu fr.Element, alpha [4]fr.Element, z []fr.Element) []fr.Element {
	var rl fr.Element
	rl.Mul(&r, &l)

	s1 := plonk.EvalMonomial(idx.SigmaM[0], &zeta)
	t := plonk.EvalMonomial(idx.SigmaM[1], &zeta)
	var bs1, bt fr.Element
	bs1.Mul(&s1, &beta).Add(&bs1, &l).Add(&bs1, &gamma)
	bt.Mul(&t, &beta).Add(&bt, &r).Add(&bt, &gamma)
	bs1.Mul(&bs1, &bt).Mul(&bs1, &zu).Mul(&bs1, &beta)

	var s2, sid fr.Element
	sid.Mul(&beta, &zeta)
	s2.Add(&l, &sid).Add(&s2, &gamma)
	t.Mul(&idx.R, &sid).Add(&t, &r).Add(&t, &gamma)
	s2.Mul(&s2, &t)
	t.Mul(&idx.O, &sid).Add(&t, &o).Add(&t, &gamma)
	s2.Mul(&s2, &t)
	s2.Neg(&s2)

	var lagrange, one, den, frNbElmt fr.Element
	one.SetOne()
	n := int64(idx.N())
	lagrange.Set(&zeta).Exp(lagrange, big.NewInt(n)).Sub(&lagrange, &one)
	frNbElmt.SetUint64(uint64(n))
	den.Sub(&zeta, &one).Mul(&den, &frNbElmt).Inverse(&den)
	lagrange.Mul(&lagrange, &den).Mul(&lagrange, &alpha[0])

	linPol := make([]fr.Element, len(z))
	copy(linPol, z)

	sigma3 := idx.SigmaM[2]
	ql, qr, qm, qo, qc := idx.QlM, idx.QrM, idx.QmM, idx.QoM, idx.QcM

	utils.Parallelize(len(linPol), func(start, end int) {
		var t0, t1 fr.Element
		for i := start; i < end; i++ {
			linPol[i].Mul(&linPol[i], &s2)
			if i < len(sigma3) {
				t0.Mul(&sigma3[i], &bs1)
				linPol[i].Add(&linPol[i], &t0)
			}
			linPol[i].Mul(&linPol[i], &alphaRaw)

			if i < len(qm) {
				t1.Mul(&qm[i], &rl)
				t0.Mul(&ql[i], &l)
				t0.Add(&t0, &t1)
				linPol[i].Add(&linPol[i], &t0)

				t0.Mul(&qr[i], &r)
				linPol[i].Add(&linPol[i], &t0)

				t0.Mul(&qo[i], &o).Add(&t0, &qc[i])
				linPol[i].Add(&linPol[i], &t0)
			}

			t0.Mul(&z[i], &lagrange)
			linPol[i].Add(&linPol[i], &t0)
		}
	})

	// Gate-family coefficients: boundary already spent alpha[0] (alpha^2)
	// above. alpha[1..3] (alpha^3..alpha^5) cover three of the four
	// families directly; the fourth (endomul) is derived as alpha[3]*
	// alphaRaw (alpha^6), since the fixed four-entry vector this module
	// carries (per DESIGN.md's alpha-vector indexing note) runs out of
	// slots one family short of the real construction's larger set.
	var endoMulScalar fr.Element
	endoMulScalar.Mul(&alpha[3], &alphaRaw)
	familyCoeffs := [4]fr.Element{alpha[1], alpha[2], alpha[3], endoMulScalar}

	families := [4][]fr.Element{idx.PoseidonM, idx.ECAddM, idx.VarBaseMulM, idx.EndoMulM}
	identities := [4]func(l, r, o *fr.Element) fr.Element{
		poseidonIdentity, ecAddIdentity, varBaseMulIdentity, endoMulIdentity,
	}
	for k, fam := range families {
		scalar := identities[k](&l, &r, &o)
		scalar.Mul(&scalar, &familyCoeffs[k])
		var t0 fr.Element
		for i := range fam {
			if i >= len(linPol) {
				break
			}
			t0.Mul(&fam[i], &scalar)
			linPol[i].Add(&linPol[i], &t0)
		}
	}

	return linPol
}
