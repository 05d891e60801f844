package plonkdlog

import (
	"math/big"
	"math/bits"
	"sync"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr/fft"

	"github.com/nume-crypto/plonkcore/internal/dag"
	"github.com/nume-crypto/plonkcore/internal/polyutil"
	"github.com/nume-crypto/plonkcore/internal/utils"
)

// domainH mirrors plonk/quotient.go's domainH: a 4x-blowup evaluation
// domain (8x when n < 6, so the three (n+2)-sized quotient chunks fit).
func domainH(n int) *fft.Domain {
	if n < 6 {
		return fft.NewDomain(uint64(8 * n))
	}
	return fft.NewDomain(uint64(4 * n))
}

// evalConstraints is the same generic-arithmetic identity as
// plonk/quotient.go's evalConstraints, including the +p public-input term
// (both variants share this part of the quotient unchanged, per
// SPEC_FULL.md §4.4).
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

func evalIDCosets(dH *fft.Domain) []fr.Element {
	return polyutil.EvalOnCoset([]fr.Element{{}, fr.One()}, dH)
}

// evalConstraintOrdering is grounded on
// original_source/dlog/plonk/src/prover.rs's permutation-ordering
// contribution, with beta and gamma kept distinct (see permutation.go).
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

func evalStartsAtOne(idx *Index, evalZ []fr.Element, dH *fft.Domain) []fr.Element {
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

// gateFamilyContributions runs the four dlog-only gate families'
// evaluations: they read only shared read-only index state and write
// disjoint output slots, so they have no dependencies on each other and
// internal/dag's level scheduler places all four into a single level,
// which is run concurrently. Grounded on SPEC_FULL.md §4.4's instruction
// to combine these "through internal/dag's level scheduler since the
// contributions are mutually independent."
func gateFamilyContributions(idx *Index, evalL, evalR, evalO []fr.Element, dH *fft.Domain) [4][]fr.Element {
	var out [4][]fr.Element
	selectors := [4][]fr.Element{idx.PoseidonM, idx.ECAddM, idx.VarBaseMulM, idx.EndoMulM}
	identities := [4]func(l, r, o *fr.Element) fr.Element{
		poseidonIdentity, ecAddIdentity, varBaseMulIdentity, endoMulIdentity,
	}

	d := dag.New(4)
	for i := 0; i < 4; i++ {
		d.AddNode(dag.Node(i))
	}

	for _, level := range d.Levels() {
		var wg sync.WaitGroup
		wg.Add(len(level.Nodes))
		for _, n := range level.Nodes {
			n := n
			go func() {
				defer wg.Done()
				out[n] = gateFamilyContribution(selectors[n], evalL, evalR, evalO, dH, identities[n])
			}()
		}
		wg.Wait()
	}
	return out
}

// computeH folds the generic, permutation-ordering, boundary and four
// gate-family contributions into one combined evaluation vector (scaled
// by the alpha powers assigned in prove.go — see DESIGN.md's open-question
// resolution on the alpha-vector indexing), divides by the vanishing
// polynomial on the odd coset of dH, and splits the quotient into three
// (n+2)-sized chunks. The division-by-vanishing-polynomial and
// bit-reversal bookkeeping is identical to plonk/quotient.go's computeH
// (both variants share the same coset-evaluation technique for this
// step, a deliberate simplification unifying the two variants' quotient
// splitting rather than reproducing the original construction's separate
// long-division branch for the boundary term).
func computeH(idx *Index, generic, ordering, boundary []fr.Element, families [4][]fr.Element, combined [6]fr.Element, dH *fft.Domain) (h1, h2, h3 []fr.Element) {
	n := idx.N()
	h := make([]fr.Element, dH.Cardinality)

	var bExpo big.Int
	bExpo.SetUint64(uint64(n))
	var one fr.Element
	one.SetOne()

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
		var t fr.Element
		for i := start; i < end; i++ {
			h[i].Set(&generic[i])

			t.Mul(&ordering[i], &combined[0])
			h[i].Add(&h[i], &t)
			t.Mul(&boundary[i], &combined[1])
			h[i].Add(&h[i], &t)
			for k := 0; k < 4; k++ {
				t.Mul(&families[k][i], &combined[2+k])
				h[i].Add(&h[i], &t)
			}

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
