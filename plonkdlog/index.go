package plonkdlog

import (
	"github.com/nume-crypto/plonkcore/circuit"
)

// Index is the dlog variant's preprocessed circuit: the shared
// circuit.DlogIndex shape plus the commitment scheme and the two
// permutation-sigma commitments, computed once at index-build time
// (mirrors plonk.Index's S1Commit/S2Commit). Unlike the pairing variant,
// Prove does not read them: the IPA opening takes the sigma polynomials
// themselves.
type Index struct {
	*circuit.DlogIndex
	Committer Committer

	S1Commit, S2Commit PolyComm
}

// NewIndex commits the permutation polynomials once at index-build time.
func NewIndex(idx *circuit.DlogIndex, committer Committer) (*Index, error) {
	s1, err := committer.Commit(idx.SigmaM[0])
	if err != nil {
		return nil, err
	}
	s2, err := committer.Commit(idx.SigmaM[1])
	if err != nil {
		return nil, err
	}
	return &Index{DlogIndex: idx, Committer: committer, S1Commit: s1, S2Commit: s2}, nil
}
