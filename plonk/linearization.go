package plonk

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/nume-crypto/plonkcore/internal/utils"
)

// computeLinearizedPolynomial folds the generic-arithmetic and permutation
// identities, evaluated partially at zeta, into one polynomial whose
// opening at zeta substitutes for separately committing to and opening
// sigma3 and the five generic-arithmetic selectors (sigma1 and sigma2 are
// still opened in Prove's batch). beta and gamma
// are kept distinct, matching original_source/pairing/plonk/src/prover.rs's
// f2/f3 terms. Grounded on vck3000-gnark's computeLinearizedPolynomial.
func computeLinearizedPolynomial(idx *Index, l, r, o, alpha, beta, gamma, zeta, zu fr.Element, z []fr.Element) []fr.Element {
	var rl fr.Element
	rl.Mul(&r, &l)

	s1 := EvalMonomial(idx.SigmaM[0], &zeta)
	t := EvalMonomial(idx.SigmaM[1], &zeta)
	var bs1, bt fr.Element
	bs1.Mul(&s1, &beta).Add(&bs1, &l).Add(&bs1, &gamma)
	bt.Mul(&t, &beta).Add(&bt, &r).Add(&bt, &gamma)
	bs1.Mul(&bs1, &bt).Mul(&bs1, &zu).Mul(&bs1, &beta)
	s1 = bs1

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
	lagrange.Mul(&lagrange, &den).Mul(&lagrange, &alpha).Mul(&lagrange, &alpha)

	linPol := make([]fr.Element, len(z))
	copy(linPol, z)

	sigma3 := idx.SigmaM[2]
	ql, qr, qm, qo, qc := idx.QlM, idx.QrM, idx.QmM, idx.QoM, idx.QcM

	utils.Parallelize(len(linPol), func(start, end int) {
		var t0, t1 fr.Element
		for i := start; i < end; i++ {
			linPol[i].Mul(&linPol[i], &s2)
			if i < len(sigma3) {
				t0.Mul(&sigma3[i], &s1)
				linPol[i].Add(&linPol[i], &t0)
			}
			linPol[i].Mul(&linPol[i], &alpha)

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

	return linPol
}

// EvalMonomial evaluates a monomial-form polynomial at x via Horner's
// rule. Exported so the dlog variant's evaluation/linearization steps
// (plonkdlog package) can share it instead of duplicating Horner's rule.
func EvalMonomial(p []fr.Element, x *fr.Element) fr.Element {
	var res fr.Element
	for i := len(p) - 1; i >= 0; i-- {
		res.Mul(&res, x)
		res.Add(&res, &p[i])
	}
	return res
}
