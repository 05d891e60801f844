package circuit

import (
	"fmt"
	"math/bits"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr/fft"
)

// Core is the part of a preprocessed circuit ("index") shared by every
// PLONK variant: the evaluation domain, the gate list, the permutation
// argument's polynomials and the two column-separating non-residues.
//
// It is read-only for the duration of a prover call and may be shared by
// reference across any number of concurrent prover invocations.
type Core struct {
	Domain fft.Domain // H, cardinality n, a power of two
	Public int        // k, number of disclosed witness entries

	Gates []Gate // length n

	SigmaL [3][]fr.Element // sigma_1..3 in evaluation form over H
	SigmaM [3][]fr.Element // sigma_1..3 in monomial form
	Sid    []fr.Element    // identity permutation evaluations over H

	R, O fr.Element // non-residues; H, r*H, o*H pairwise disjoint

	MaxPolySize int
	MaxQuotSize int
}

// N returns n, the number of gates/domain size.
func (c *Core) N() int { return int(c.Domain.Cardinality) }

// WitnessLen returns the expected witness length, 3n.
func (c *Core) WitnessLen() int { return 3 * c.N() }

// NewCore builds the domain, permutation and sigma polynomials for a gate
// list. len(gates) must be a power of two; public must not exceed it.
//
// This is the minimal preprocessor this module ships since no external
// circuit compiler is part of the retrieval pack the prover was built
// against (spec.md treats the preprocessor as an out-of-scope external
// collaborator); it is grounded on the teacher's
// internal/backend/bw6-761/plonk/setup.go buildPermutation/
// ccomputePermutationPolynomials pair, generalized to operate directly on
// gate wiring instead of a solved R1CS.
func NewCore(gates []Gate, public int) (*Core, error) {
	n := len(gates)
	if n == 0 || n&(n-1) != 0 {
		return nil, fmt.Errorf("circuit: gate count %d is not a power of two", n)
	}
	if public < 0 || public > n {
		return nil, fmt.Errorf("circuit: public input count %d out of range for n=%d", public, n)
	}

	c := &Core{
		Domain:      *fft.NewDomain(uint64(n)),
		Public:      public,
		Gates:       gates,
		MaxPolySize: n,
	}

	c.R.Set(&c.Domain.FrMultiplicativeGen)
	c.O.Square(&c.R)

	c.Sid = make([]fr.Element, n)
	c.Sid[0].SetOne()
	for i := 1; i < n; i++ {
		c.Sid[i].Mul(&c.Sid[i-1], &c.Domain.Generator)
	}

	perm := buildPermutation(gates, n)
	idWithCosets := idOnCosets(&c.Domain, n)

	for col := 0; col < 3; col++ {
		c.SigmaL[col] = make([]fr.Element, n)
		for i := 0; i < n; i++ {
			c.SigmaL[col][i].Set(&idWithCosets[perm[col*n+i]])
		}
		c.SigmaM[col] = make([]fr.Element, n)
		copy(c.SigmaM[col], c.SigmaL[col])
		c.Domain.FFTInverse(c.SigmaM[col], fft.DIF)
		fft.BitReverse(c.SigmaM[col])
	}

	return c, nil
}

// buildPermutation builds the cycle decomposition of the wiring: position i
// of the flattened l||r||o array ([0,3n)) maps to perm[i], the previous
// position seen aliasing the same witness slot (or, for the first position
// in a cycle, the last position in the cycle).
func buildPermutation(gates []Gate, n int) []int {
	lro := make([]int, 3*n)
	for j, g := range gates {
		lro[j] = g.Wires.L
		lro[n+j] = g.Wires.R
		lro[2*n+j] = g.Wires.O
	}

	lastSeen := make(map[int]int, len(lro))
	perm := make([]int, 3*n)
	for i := range perm {
		perm[i] = -1
	}
	for i, v := range lro {
		if last, ok := lastSeen[v]; ok {
			perm[i] = last
		}
		lastSeen[v] = i
	}
	for i, v := range lro {
		if perm[i] == -1 {
			perm[i] = lastSeen[v]
		}
	}
	return perm
}

// idOnCosets returns the identity evaluations 1, omega, ..., omega^(n-1)
// concatenated with their r- and o-shifted cosets, i.e. the Lagrange-basis
// values sigma would take if the wiring were the identity permutation.
func idOnCosets(domain *fft.Domain, n int) []fr.Element {
	res := make([]fr.Element, 3*n)
	res[0].SetOne()
	res[n].Set(&domain.FrMultiplicativeGen)
	res[2*n].Square(&domain.FrMultiplicativeGen)
	for i := 1; i < n; i++ {
		res[i].Mul(&res[i-1], &domain.Generator)
		res[n+i].Mul(&res[n+i-1], &domain.Generator)
		res[2*n+i].Mul(&res[2*n+i-1], &domain.Generator)
	}
	return res
}

// log2 returns floor(log2(x)). Nothing in this module calls it.
func log2(x uint64) int {
	return bits.Len64(x) - 1
}
