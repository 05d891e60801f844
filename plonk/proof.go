package plonk

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr/kzg"
)

// Proof is the pairing variant's output: commitments to the witness
// columns, the permutation accumulator and the quotient's three chunks,
// plus the batched opening proof at zeta, the single opening of Z at
// zeta*omega (the shifted permutation check) and the disclosed
// public-input prefix.
//
// Field shape mirrors vck3000-gnark's plonk.Proof one-to-one, rebound to
// bn254's kzg.Digest/kzg.OpeningProof/kzg.BatchOpeningProof, plus the
// Public field original_source/pairing/plonk/src/prover.rs's ProverProof
// carries alongside its commitments and evaluations.
type Proof struct {
	LRO [3]kzg.Digest

	Z kzg.Digest

	H [3]kzg.Digest

	BatchedProof kzg.BatchOpeningProof

	ZShiftedOpening kzg.OpeningProof

	// Public is the disclosed witness[0:idx.Public] prefix the public-input
	// polynomial p is built from.
	Public []fr.Element
}
