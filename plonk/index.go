// Package plonk implements the pairing (KZG) PLONK prover variant: a
// generic-arithmetic gate, a permutation argument enforcing copy
// constraints, and a quotient polynomial opened via KZG at two points
// (zeta and zeta*omega).
//
// Grounded throughout on vck3000-gnark's
// internal/backend/bls12-381/plonk/prove.go, generalized from a
// SparseR1CS-derived ProvingKey to this module's circuit.Index and
// rebound from bls12-381 to bn254 to match this module's curve choice.
package plonk

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr/kzg"

	"github.com/nume-crypto/plonkcore/circuit"
)

// Index is a circuit.Index augmented with a KZG SRS and the precomputed
// commitments to sigma1, sigma2 (the pieces only the pairing variant
// needs: the dlog variant commits sigma through an abstract Committer
// instead).
type Index struct {
	*circuit.Index
	SRS *kzg.SRS

	// S1Commit, S2Commit are commitments to SigmaM[0], SigmaM[1], computed
	// once since the sigma polynomials are fixed by the circuit. sigma3 is
	// folded into the linearization polynomial instead of opened
	// separately, so it has no corresponding commitment here (mirrors
	// vck3000-gnark's vk.S[0], vk.S[1] use in BatchOpenSinglePoint, vk.S[2]
	// going unused by the prover).
	S1Commit, S2Commit kzg.Digest
}

// NewIndex pairs a compiled circuit with a KZG structured reference
// string and precomputes the sigma1/sigma2 commitments. The SRS must
// cover degree >= n+2, the largest single polynomial ever committed (the
// blinded permutation accumulator Z and the linearization polynomial built
// on it, n+3 coefficients; each quotient chunk has n+2).
func NewIndex(idx *circuit.Index, srs *kzg.SRS) (*Index, error) {
	need := idx.N() + 2
	if len(srs.G1) <= need {
		return nil, fmt.Errorf("plonk: SRS too small: have degree %d, need >= %d", len(srs.G1)-1, need)
	}
	s1, err := kzg.Commit(idx.SigmaM[0], srs)
	if err != nil {
		return nil, err
	}
	s2, err := kzg.Commit(idx.SigmaM[1], srs)
	if err != nil {
		return nil, err
	}
	return &Index{Index: idx, SRS: srs, S1Commit: s1, S2Commit: s2}, nil
}
