package plonk

import (
	"math/big"
	"math/bits"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr/fft"

	"github.com/nume-crypto/plonkcore/internal/polyutil"
	"github.com/nume-crypto/plonkcore/internal/utils"
)

// domainH returns the evaluation domain the quotient is built over: 4n
// entries, or 8n when n < 6, so that the quotient (degree about 3n+5) and
// its three (n+2)-sized chunks fit without aliasing on an odd coset,
// matching the teacher's pk.DomainH sizing.
func domainH(n int) *fft.Domain {
	if n < 6 {
		return fft.NewDomain(uint64(8 * n))
	}
	return fft.NewDomain(uint64(4 * n))
}

// evalConstraints evaluates q_M*l*r + q_L*l + q_R*r + q_O*o + q_C + p on the
// odd coset of domainH, from the blinded witness columns and the
// public-input polynomial p. Grounded on vck3000-gnark's evalConstraints,
// with the +p term following original_source/pairing/plonk/src/prover.rs's
// t1 contribution (`... + &index.cs.qc) + &p`).
func evalConstraints(idx *Index, evalL, evalR, evalO, evalP []fr.Element, dH *fft.Domain) []fr.Element {
	evalQl := polyutil.EvalOnCoset(idx.QlM, dH)
	evalQr := polyutil.EvalOnCoset(idx.QrM, dH)
	evalQm := polyutil.EvalOnCoset(idx.QmM, dH)
	evalQo := polyutil.EvalOnCoset(idx.QoM, dH)
	evalQc := polyutil.EvalOnCoset(idx.QcM, dH)

	res := make([]fr.Element, dH.Cardinality)
	utils.Parallelize(len(res), func(start, end int) {
		var t0, t1 fr.Element
		for i := start; i < end; i++ {
			t1.Mul(&evalQm[i], &evalR[i])
			t1.Add(&t1, &evalQl[i])
			t1.Mul(&t1, &evalL[i])

			t0.Mul(&evalQr[i], &evalR[i])
			t0.Add(&t0, &t1)

			t1.Mul(&evalQo[i], &evalO[i])
			t0.Add(&t0, &t1)
			t0.Add(&t0, &evalQc[i])
			res[i].Add(&t0, &evalP[i])
		}
	})
	return res
}

// evalIDCosets evaluates the identity polynomial p(X)=X on the odd coset
// of domainH: the extended-domain values the permutation argument compares
// sigma against. Evaluating the monomial X directly (rather than
// replicating the teacher's hand-built bit-reversed coset-power table) is
// equivalent and stays consistently ordered with every other
// polyutil.EvalOnCoset call, which is all elementwise combination needs.
func evalIDCosets(dH *fft.Domain) []fr.Element {
	return polyutil.EvalOnCoset([]fr.Element{{}, fr.One()}, dH)
}

// evalConstraintOrdering evaluates Z(u*X)*g1*g2*g3 - Z(X)*f1*f2*f3 on the
// odd coset of domainH, with beta and gamma kept distinct per
// original_source/pairing/plonk/src/prover.rs's t2/t3 contributions.
// Grounded on vck3000-gnark's evalConstraintOrdering.
func evalConstraintOrdering(idx *Index, evalZ, evalZu, evalL, evalR, evalO []fr.Element, beta, gamma fr.Element, dH *fft.Domain) []fr.Element {
	evalS1 := polyutil.EvalOnCoset(idx.SigmaM[0], dH)
	evalS2 := polyutil.EvalOnCoset(idx.SigmaM[1], dH)
	evalS3 := polyutil.EvalOnCoset(idx.SigmaM[2], dH)
	evalID := evalIDCosets(dH)

	res := make([]fr.Element, dH.Cardinality)
	utils.Parallelize(len(res), func(start, end int) {
		var f, g [3]fr.Element
		for i := start; i < end; i++ {
			f[0].Mul(&evalID[i], &beta).Add(&f[0], &evalL[i]).Add(&f[0], &gamma)
			f[1].Mul(&evalID[i], &idx.R).Mul(&f[1], &beta).Add(&f[1], &evalR[i]).Add(&f[1], &gamma)
			f[2].Mul(&evalID[i], &idx.O).Mul(&f[2], &beta).Add(&f[2], &evalO[i]).Add(&f[2], &gamma)

			g[0].Mul(&evalS1[i], &beta).Add(&g[0], &evalL[i]).Add(&g[0], &gamma)
			g[1].Mul(&evalS2[i], &beta).Add(&g[1], &evalR[i]).Add(&g[1], &gamma)
			g[2].Mul(&evalS3[i], &beta).Add(&g[2], &evalO[i]).Add(&g[2], &gamma)

			f[0].Mul(&f[0], &f[1]).Mul(&f[0], &f[2]).Mul(&f[0], &evalZ[i])
			g[0].Mul(&g[0], &g[1]).Mul(&g[0], &g[2]).Mul(&g[0], &evalZu[i])

			res[i].Sub(&g[0], &f[0])
		}
	})
	return res
}

// evalStartsAtOne evaluates L1*(Z-1) on the odd coset of domainH, where L1
// is the Lagrange basis polynomial for row 0 (the boundary constraint
// forcing the permutation accumulator to start at 1).
func evalStartsAtOne(idx *Index, evalZ []fr.Element, dH *fft.Domain) []fr.Element {
	// L1(X) = (1/n) * sum_{i=0}^{n-1} X^i in monomial form: a standard
	// identity for the Lagrange basis polynomial of point 1 over a
	// multiplicative subgroup (evaluating this sum at omega^j gives n for
	// j=0 and 0 otherwise, by the geometric sum over roots of unity). No
	// inverse FFT needed, unlike every other column here.
	n := idx.N()
	l1Monomial := make([]fr.Element, n)
	for i := range l1Monomial {
		l1Monomial[i].Set(&idx.Domain.CardinalityInv)
	}
	res := polyutil.EvalOnCoset(l1Monomial, dH)

	var buf, one fr.Element
	one.SetOne()
	for i := range res {
		buf.Sub(&evalZ[i], &one)
		res[i].Mul(&buf, &res[i])
	}
	return res
}

// shiftEval re-indexes a bit-reversed coset-evaluation vector to read
// Z(u*X) instead of Z(X), where u is the n-th-root-of-unity shift that
// domainH's blowup represents relative to domainNum (shift is the blowup
// |domainH|/n: one step of the size-n domain per shift steps of the coset).
func shiftEval(z []fr.Element, shift int) []fr.Element {
	s := len(z)
	res := make([]fr.Element, s)
	nn := uint64(64 - bits.TrailingZeros64(uint64(s)))
	for i := 0; i < s; i++ {
		irev := bits.Reverse64(uint64(i)) >> nn
		jrev := bits.Reverse64(uint64((i+shift)%s)) >> nn
		res[irev] = z[jrev]
	}
	return res
}

// computeH solves qlL+qrR+qmL.R+qoO+qc + alpha*(ordering) + alpha^2*startsAtOne = h*Zh
// for h on the odd coset of domainH, then splits h into three (n+2)-sized
// chunks h1+X^(n+2)h2+X^2(n+2)h3. Grounded on vck3000-gnark's computeH.
func computeH(idx *Index, constraintsInd, constraintOrdering, startsAtOne []fr.Element, alpha fr.Element, dH *fft.Domain) (h1, h2, h3 []fr.Element) {
	n := idx.N()
	h := make([]fr.Element, dH.Cardinality)

	var bExpo big.Int
	bExpo.SetUint64(uint64(n))
	var one fr.Element
	one.SetOne()

	// Zh(X) = X^n - 1 takes only blowup = |domainH|/n distinct values on
	// the odd coset: the sample points cycle through them with period
	// blowup across the whole domain.
	u := make([]fr.Element, int(dH.Cardinality)/n)
	u[0].Set(&dH.FrMultiplicativeGen)
	for i := 1; i < len(u); i++ {
		u[i].Mul(&u[i-1], &dH.Generator)
	}
	for i := range u {
		u[i].Exp(u[i], &bExpo).Sub(&u[i], &one).Inverse(&u[i])
	}

	nn := uint64(64 - bits.TrailingZeros64(dH.Cardinality))
	utils.Parallelize(int(dH.Cardinality), func(start, end int) {
		for i := start; i < end; i++ {
			h[i].Mul(&startsAtOne[i], &alpha).
				Add(&h[i], &constraintOrdering[i]).
				Mul(&h[i], &alpha).
				Add(&h[i], &constraintsInd[i])

			irev := bits.Reverse64(uint64(i)) >> nn
			h[i].Mul(&h[i], &u[irev%uint64(len(u))])
		}
	})

	dH.FFTInverse(h, fft.DIT, fft.OnCoset())

	h1 = h[:n+2]
	h2 = h[n+2 : 2*(n+2)]
	h3 = h[2*(n+2) : 3*(n+2)]
	return h1, h2, h3
}
