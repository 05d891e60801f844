package plonkdlog

import "github.com/nume-crypto/plonkcore/plonk"

// The dlog variant reuses the pairing variant's sentinel errors, per
// SPEC_FULL.md §6: one error-sentinel set shared by both backends.
var (
	ErrWitnessCsInconsistent = plonk.ErrWitnessCsInconsistent
	ErrProofCreation         = plonk.ErrProofCreation
	ErrPolyDivision          = plonk.ErrPolyDivision
)
