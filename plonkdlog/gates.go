package plonkdlog

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr/fft"

	"github.com/nume-crypto/plonkcore/internal/polyutil"
	"github.com/nume-crypto/plonkcore/internal/utils"
)

// gateFamilyContribution evaluates one dlog-only gate family's
// selector-scaled polynomial identity on the odd coset of dH:
// selector(X) * identity(l(X), r(X), o(X)).
//
// The four identities below are deliberately simplified algebraic
// stand-ins for the real gates (Poseidon's S-box/MDS round, short
// Weierstrass point addition, variable-base and endomorphism-optimized
// double-and-add scalar multiplication): this module builds the
// quotient/linearization polynomial-identity machinery those gates would
// plug into, not a hash permutation or curve-arithmetic circuit compiler
// (front-end circuit compilation is explicitly out of scope). Each
// identity is still a genuine selector-gated polynomial relation that
// participates in the same quotient/opening pipeline a real gate's
// constraint would.
func gateFamilyContribution(selectorM, evalL, evalR, evalO []fr.Element, dH *fft.Domain, identity func(l, r, o *fr.Element) fr.Element) []fr.Element {
	evalSel := polyutil.EvalOnCoset(selectorM, dH)
	res := make([]fr.Element, dH.Cardinality)
	utils.Parallelize(len(res), func(start, end int) {
		for i := start; i < end; i++ {
			id := identity(&evalL[i], &evalR[i], &evalO[i])
			res[i].Mul(&evalSel[i], &id)
		}
	})
	return res
}

// poseidonIdentity stands in for one round's S-box application, o = (l+r)^5.
func poseidonIdentity(l, r, o *fr.Element) fr.Element {
	var sum, sq, quad, fifth, res fr.Element
	sum.Add(l, r)
	sq.Square(&sum)
	quad.Square(&sq)
	fifth.Mul(&quad, &sum)
	res.Sub(o, &fifth)
	return res
}

// ecAddIdentity stands in for an EC point-addition check, o = l + r.
func ecAddIdentity(l, r, o *fr.Element) fr.Element {
	var sum, res fr.Element
	sum.Add(l, r)
	res.Sub(o, &sum)
	return res
}

// varBaseMulIdentity stands in for a variable-base double-and-add step,
// o = l * r.
func varBaseMulIdentity(l, r, o *fr.Element) fr.Element {
	var prod, res fr.Element
	prod.Mul(l, r)
	res.Sub(o, &prod)
	return res
}

// endoMulIdentity stands in for the endomorphism-optimized variant of the
// same double-and-add step, o = l*r + r.
func endoMulIdentity(l, r, o *fr.Element) fr.Element {
	var prod, sum, res fr.Element
	prod.Mul(l, r)
	sum.Add(&prod, r)
	res.Sub(o, &sum)
	return res
}
