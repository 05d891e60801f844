package circuit

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr/fft"
)

// Selectors carries the generic-arithmetic gate selectors
// (q_L*l + q_R*r + q_M*l*r + q_O*o + q_C = 0) in evaluation-over-H form,
// one entry per gate.
type Selectors struct {
	Ql, Qr, Qm, Qo, Qc []fr.Element
}

// Index is a preprocessed circuit ready for proving: Core's shared shape
// plus the generic-arithmetic selector polynomials, in both evaluation and
// monomial form (the quotient builder needs evaluations on cosets, the
// linearization step needs monomial coefficients).
type Index struct {
	*Core
	Selectors Selectors

	// monomial forms, derived once at Compile time
	QlM, QrM, QmM, QoM, QcM []fr.Element
}

// Compile builds an Index from a gate list, the number of disclosed public
// inputs, and the generic-arithmetic selectors (evaluation form, aligned
// with gates[i]).
//
// No front-end circuit compiler ships in this module (out of scope); this
// is the minimal preprocessor used by tests and examples to turn a
// directly-authored gate list into something the prover packages accept.
// Grounded on the teacher's internal/backend/bw6-761/plonk/setup.go, which
// plays the same role (turning a solved constraint system into an indexed,
// FFT-ready preprocessed circuit) one layer up the stack.
func Compile(gates []Gate, public int, sel Selectors) (*Index, error) {
	core, err := NewCore(gates, public)
	if err != nil {
		return nil, err
	}
	n := core.N()
	for name, col := range map[string][]fr.Element{
		"ql": sel.Ql, "qr": sel.Qr, "qm": sel.Qm, "qo": sel.Qo, "qc": sel.Qc,
	} {
		if len(col) != n {
			return nil, fmt.Errorf("circuit: selector %s has length %d, want %d", name, len(col), n)
		}
	}

	idx := &Index{Core: core, Selectors: sel}
	idx.QlM = ToMonomial(&core.Domain, sel.Ql)
	idx.QrM = ToMonomial(&core.Domain, sel.Qr)
	idx.QmM = ToMonomial(&core.Domain, sel.Qm)
	idx.QoM = ToMonomial(&core.Domain, sel.Qo)
	idx.QcM = ToMonomial(&core.Domain, sel.Qc)
	return idx, nil
}

// ToMonomial converts an evaluation-over-H column to monomial (coefficient)
// form. Exported so the dlog variant's extra gate-family selectors (circuit
// package, dlog.go) can be compiled through the same step.
func ToMonomial(domain *fft.Domain, evals []fr.Element) []fr.Element {
	m := make([]fr.Element, len(evals))
	copy(m, evals)
	domain.FFTInverse(m, fft.DIF)
	fft.BitReverse(m)
	return m
}
