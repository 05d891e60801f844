package plonkdlog

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/nume-crypto/plonkcore/internal/polyutil"
)

// computeZ builds the permutation accumulator in Lagrange form, with beta
// and gamma kept as two distinct challenges (as in the pairing variant's
// computeZ): grounded directly on
// original_source/dlog/plonk/src/prover.rs's `z` loop, which scales the
// identity/sigma terms by beta before adding gamma
// (`witness[j] + sigmal1[k][j]*beta + gamma`), using idx.Sid (identity
// evaluations) in place of recomputing omega^i at each step. The product
// runs through all n rows; the closing value (not part of the returned
// column) must land back on 1 for a satisfying witness, matching the
// original prover's check before it pops that entry off.
func computeZ(idx *Index, l, r, o []fr.Element, beta, gamma fr.Element) ([]fr.Element, error) {
	n := idx.N()
	zFull := make([]fr.Element, n+1)
	gInv := make([]fr.Element, n+1)

	var f, g, u [3]fr.Element
	zFull[0].SetOne()
	gInv[0].SetOne()

	for i := 0; i < n; i++ {
		u[0].Mul(&idx.Sid[i], &beta)
		u[1].Mul(&idx.Sid[i], &idx.R).Mul(&u[1], &beta)
		u[2].Mul(&idx.Sid[i], &idx.O).Mul(&u[2], &beta)

		f[0].Add(&l[i], &u[0]).Add(&f[0], &gamma)
		f[1].Add(&r[i], &u[1]).Add(&f[1], &gamma)
		f[2].Add(&o[i], &u[2]).Add(&f[2], &gamma)

		g[0].Mul(&idx.SigmaL[0][i], &beta).Add(&g[0], &l[i]).Add(&g[0], &gamma)
		g[1].Mul(&idx.SigmaL[1][i], &beta).Add(&g[1], &r[i]).Add(&g[1], &gamma)
		g[2].Mul(&idx.SigmaL[2][i], &beta).Add(&g[2], &o[i]).Add(&g[2], &gamma)

		f[0].Mul(&f[0], &f[1]).Mul(&f[0], &f[2])
		g[0].Mul(&g[0], &g[1]).Mul(&g[0], &g[2])

		gInv[i+1] = g[0]
		zFull[i+1].Mul(&zFull[i], &f[0])
	}

	gInv = polyutil.BatchInvertGrandProduct(gInv)
	acc := fr.One()
	for i := 1; i <= n; i++ {
		acc.Mul(&acc, &gInv[i])
		zFull[i].Mul(&zFull[i], &acc)
	}

	if !zFull[n].IsOne() {
		return nil, ErrProofCreation
	}

	z := make([]fr.Element, n, uint64(n)+3)
	copy(z, zFull[:n])
	return z, nil
}
