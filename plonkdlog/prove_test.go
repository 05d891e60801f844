package plonkdlog

import (
	"context"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/stretchr/testify/require"

	"github.com/nume-crypto/plonkcore/circuit"
	"github.com/nume-crypto/plonkcore/internal/randsrc"
)

// dlogIdentityCircuit builds an n=4 index with one real multiplication
// gate, all-zero dlog gate-family selectors (no family active), and
// three padding gates whose wires alias nothing else, mirroring
// plonk/prove_test.go's identityCircuit scenario for the dlog variant.
func dlogIdentityCircuit(t *testing.T) (*Index, []fr.Element) {
	t.Helper()
	gates := []circuit.Gate{
		{Wires: circuit.Wires{L: 0, R: 1, O: 2}},
		{Wires: circuit.Wires{L: 3, R: 4, O: 5}},
		{Wires: circuit.Wires{L: 6, R: 7, O: 8}},
		{Wires: circuit.Wires{L: 9, R: 10, O: 11}},
	}
	zero := func(n int) []fr.Element { return make([]fr.Element, n) }
	ql, qr, qm, qo, qc := zero(4), zero(4), zero(4), zero(4), zero(4)
	qm[0].SetOne()
	qo[0].SetOne()
	qo[0].Neg(&qo[0])

	dlogSel := circuit.DlogSelectors{
		Poseidon:   zero(4),
		ECAdd:      zero(4),
		VarBaseMul: zero(4),
		EndoMul:    zero(4),
	}

	cidx, err := circuit.CompileDlog(gates, 0, circuit.Selectors{Ql: ql, Qr: qr, Qm: qm, Qo: qo, Qc: qc}, dlogSel)
	require.NoError(t, err)

	committer := NewPedersenIPA(16)
	idx, err := NewIndex(cidx, committer)
	require.NoError(t, err)

	var a, b, c fr.Element
	a.SetUint64(6)
	b.SetUint64(7)
	c.Mul(&a, &b)

	witness := make([]fr.Element, idx.WitnessLen())
	witness[0] = a
	witness[1] = b
	witness[2] = c
	return idx, witness
}

// dlogPoseidonCircuit activates the poseidon family on gate 0 (o = (l+r)^5)
// and leaves the rest of the circuit trivially satisfied, exercising the
// gate-family quotient and linearization contributions end to end.
func dlogPoseidonCircuit(t *testing.T) (*Index, []fr.Element) {
	t.Helper()
	gates := []circuit.Gate{
		{Wires: circuit.Wires{L: 0, R: 1, O: 2}},
		{Wires: circuit.Wires{L: 3, R: 4, O: 5}},
		{Wires: circuit.Wires{L: 6, R: 7, O: 8}},
		{Wires: circuit.Wires{L: 9, R: 10, O: 11}},
	}
	zero := func(n int) []fr.Element { return make([]fr.Element, n) }
	sel := circuit.Selectors{Ql: zero(4), Qr: zero(4), Qm: zero(4), Qo: zero(4), Qc: zero(4)}

	poseidonSel := zero(4)
	poseidonSel[0].SetOne()
	dlogSel := circuit.DlogSelectors{
		Poseidon:   poseidonSel,
		ECAdd:      zero(4),
		VarBaseMul: zero(4),
		EndoMul:    zero(4),
	}

	cidx, err := circuit.CompileDlog(gates, 0, sel, dlogSel)
	require.NoError(t, err)

	committer := NewPedersenIPA(16)
	idx, err := NewIndex(cidx, committer)
	require.NoError(t, err)

	var l, r, sum, sq, quad, o fr.Element
	l.SetUint64(2)
	r.SetUint64(3)
	sum.Add(&l, &r)
	sq.Square(&sum)
	quad.Square(&sq)
	o.Mul(&quad, &sum)

	witness := make([]fr.Element, idx.WitnessLen())
	witness[0] = l
	witness[1] = r
	witness[2] = o
	return idx, witness
}

// dlogIdentityCircuitWithPublicInput mirrors dlogIdentityCircuit but
// discloses witness[0] as a public input, mirroring
// plonk/prove_test.go's identityCircuitWithPublicInput for the dlog
// variant.
func dlogIdentityCircuitWithPublicInput(t *testing.T) (*Index, []fr.Element) {
	t.Helper()
	gates := []circuit.Gate{
		{Wires: circuit.Wires{L: 0, R: 1, O: 2}},
		{Wires: circuit.Wires{L: 3, R: 4, O: 5}},
		{Wires: circuit.Wires{L: 6, R: 7, O: 8}},
		{Wires: circuit.Wires{L: 9, R: 10, O: 11}},
	}
	zero := func(n int) []fr.Element { return make([]fr.Element, n) }
	ql, qr, qm, qo, qc := zero(4), zero(4), zero(4), zero(4), zero(4)
	qm[0].SetOne()
	qo[0].SetOne()
	qo[0].Neg(&qo[0])

	dlogSel := circuit.DlogSelectors{
		Poseidon:   zero(4),
		ECAdd:      zero(4),
		VarBaseMul: zero(4),
		EndoMul:    zero(4),
	}

	cidx, err := circuit.CompileDlog(gates, 1, circuit.Selectors{Ql: ql, Qr: qr, Qm: qm, Qo: qo, Qc: qc}, dlogSel)
	require.NoError(t, err)

	committer := NewPedersenIPA(16)
	idx, err := NewIndex(cidx, committer)
	require.NoError(t, err)

	var a, b, c fr.Element
	a.SetUint64(6)
	b.SetUint64(7)
	c.Mul(&a, &b)

	witness := make([]fr.Element, idx.WitnessLen())
	witness[0] = a
	witness[1] = b
	witness[2] = c
	return idx, witness
}

func TestDlogProveIdentityCircuit(t *testing.T) {
	assert := require.New(t)
	idx, witness := dlogIdentityCircuit(t)

	proof, err := Prove(context.Background(), idx, witness, WithRandomness(randsrc.Deterministic([32]byte{1})))
	assert.NoError(err)
	assert.NotNil(proof)
	for _, c := range proof.LRO {
		assert.False(c.Point.IsInfinity())
	}
}

func TestDlogProvePoseidonGate(t *testing.T) {
	assert := require.New(t)
	idx, witness := dlogPoseidonCircuit(t)

	proof, err := Prove(context.Background(), idx, witness, WithRandomness(randsrc.Deterministic([32]byte{3})))
	assert.NoError(err)
	assert.NotNil(proof)
}

func TestDlogProveIdentityCircuitWithPublicInput(t *testing.T) {
	assert := require.New(t)
	idx, witness := dlogIdentityCircuitWithPublicInput(t)

	proof, err := Prove(context.Background(), idx, witness, WithRandomness(randsrc.Deterministic([32]byte{4})))
	assert.NoError(err)
	assert.NotNil(proof)
	assert.Len(proof.Public, 1)
	assert.True(proof.Public[0].Equal(&witness[0]))
}

// TestDlogProvePermutationViolationAborts corrupts sigma_1's first entry
// away from the identity wiring dlogIdentityCircuit compiles, breaking the
// grand product's telescoping identity the same way
// plonk.TestProvePermutationViolationAborts does for the pairing variant.
func TestDlogProvePermutationViolationAborts(t *testing.T) {
	assert := require.New(t)
	idx, witness := dlogIdentityCircuit(t)

	var bump fr.Element
	bump.SetOne()
	idx.SigmaL[0][0].Add(&idx.SigmaL[0][0], &bump)

	_, err := Prove(context.Background(), idx, witness, WithRandomness(randsrc.Deterministic([32]byte{3})))
	assert.ErrorIs(err, ErrProofCreation)
}

func TestDlogProveWrongWitnessLength(t *testing.T) {
	assert := require.New(t)
	idx, witness := dlogIdentityCircuit(t)

	_, err := Prove(context.Background(), idx, witness[:len(witness)-1])
	assert.ErrorIs(err, ErrWitnessCsInconsistent)
}

func TestDlogProveDeterministic(t *testing.T) {
	assert := require.New(t)
	idx, witness := dlogIdentityCircuit(t)
	seed := [32]byte{9, 9, 9}

	p1, err := Prove(context.Background(), idx, witness, WithRandomness(randsrc.Deterministic(seed)))
	assert.NoError(err)
	p2, err := Prove(context.Background(), idx, witness, WithRandomness(randsrc.Deterministic(seed)))
	assert.NoError(err)

	assert.Equal(p1.LRO[0].Point.Marshal(), p2.LRO[0].Point.Marshal())
	assert.Equal(p1.Z.Point.Marshal(), p2.Z.Point.Marshal())
	assert.Equal(p1.H[0].Point.Marshal(), p2.H[0].Point.Marshal())
}

func TestDlogProveRandomnessVaries(t *testing.T) {
	assert := require.New(t)
	idx, witness := dlogIdentityCircuit(t)

	p1, err := Prove(context.Background(), idx, witness, WithRandomness(randsrc.Deterministic([32]byte{1})))
	assert.NoError(err)
	p2, err := Prove(context.Background(), idx, witness, WithRandomness(randsrc.Deterministic([32]byte{2})))
	assert.NoError(err)

	assert.NotEqual(p1.LRO[0].Point.Marshal(), p2.LRO[0].Point.Marshal())
}
