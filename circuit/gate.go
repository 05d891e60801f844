// Package circuit defines the data model the prover consumes: the
// preprocessed circuit ("index") and the gate/witness layout it is built
// from. Producing an index from a front-end circuit description is out of
// scope (spec non-goal); this package only carries the index shape and
// offers a minimal preprocessor good enough to build indexes for tests and
// examples, grounded on the teacher's own PLONK setup step.
package circuit

// Wires identifies, for one gate (one row of the circuit), the three
// positions in the flat witness vector ([0, 3n)) that the row's left,
// right and output cells are aliased to. A row usually wires to its own
// column entries (L_j, n+R_j, 2n+O_j) but may alias any position; the
// permutation argument is built from exactly this aliasing so that copy
// constraints among rows are enforced.
type Wires struct {
	L, R, O int
}

// Gate is a single row of the preprocessed circuit. The generic-arithmetic
// selectors (qm, ql, qr, qo, qc) and any dlog-only gate-family selectors
// live alongside the gate list in Index/Core, indexed by row; Gate itself
// only carries the wiring.
type Gate struct {
	Wires Wires
}
