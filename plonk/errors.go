package plonk

import "errors"

// ErrWitnessCsInconsistent is returned when the supplied witness does not
// have the length the index expects (3n, one entry per wire slot). Gate
// constraints are not checked against the witness.
var ErrWitnessCsInconsistent = errors.New("plonk: witness inconsistent with constraint system")

// ErrProofCreation is returned when the permutation grand product does not
// close back to 1, and in place of any commitment or opening error
// part-way through proof construction. Transcript errors are returned
// as they are.
var ErrProofCreation = errors.New("plonk: proof creation failed")

// ErrPolyDivision names a nonzero remainder when dividing out the
// vanishing polynomial to form the quotient. Neither prover checks that
// remainder (the quotient is formed by pointwise division on a coset), so
// neither returns this error.
var ErrPolyDivision = errors.New("plonk: polynomial division failed")
