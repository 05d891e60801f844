package plonkdlog

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Evaluations is the set of values the verifier would check the opening
// proofs against, at one evaluation point: l, r, o, z, t, sigma1, sigma2, f
// per SPEC_FULL.md §3's dlog ProofEvaluations. Unlike kzg.OpeningProof
// (used by the pairing variant), PedersenIPA's OpeningProof carries no
// claimed value of its own, so this module records them explicitly
// alongside the proof.
type Evaluations struct {
	L, R, O fr.Element
	Z       fr.Element
	T       fr.Element
	S1, S2  fr.Element
	F       fr.Element
}

// Proof is the dlog/IPA variant's output: commitments to the witness
// columns, the permutation accumulator, the quotient's three chunks and
// the linearization polynomial, the full evaluation set at zeta and the
// single evaluation of Z at zeta*omega (no other polynomial is evaluated
// at zeta*omega), the two IPA opening proofs (the main batch at zeta, and
// Z alone at zeta*omega), and the disclosed public-input prefix. Shape
// mirrors plonk.Proof's LRO/Z/H/opening/Public layout, generalized from
// kzg.Digest/kzg.OpeningProof to this package's PolyComm/OpeningProof.
type Proof struct {
	LRO [3]PolyComm
	Z   PolyComm
	H   [3]PolyComm

	Linearization PolyComm

	EvalsZeta       Evaluations
	EvalShiftedZ    fr.Element
	BatchedOpening  OpeningProof
	ZShiftedOpening OpeningProof

	Public []fr.Element
}
