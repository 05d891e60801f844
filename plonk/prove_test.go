package plonk

import (
	"context"
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr/kzg"
	"github.com/stretchr/testify/require"

	"github.com/nume-crypto/plonkcore/circuit"
	"github.com/nume-crypto/plonkcore/internal/randsrc"
)

// testSRS builds a toy KZG setup with a known (insecure) trapdoor, good
// enough for exercising the prover in tests. Never use in production: the
// trapdoor here is a fixed, publicly-known scalar.
func testSRS(t *testing.T, size int) *kzg.SRS {
	t.Helper()
	var alpha big.Int
	alpha.SetInt64(987654321)
	srs, err := kzg.NewSRS(uint64(size), &alpha)
	require.NoError(t, err)
	return srs
}

// identityCircuit builds an n=4 index with one real multiplication gate
// (a*b=c) and three all-zero padding gates whose wires never alias
// another gate's, so the permutation is the identity (the "identity
// circuit" scenario).
func identityCircuit(t *testing.T) (*Index, []fr.Element) {
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
	qo[0].Neg(&qo[0]) // o*(-1)

	cidx, err := circuit.Compile(gates, 0, circuit.Selectors{Ql: ql, Qr: qr, Qm: qm, Qo: qo, Qc: qc})
	require.NoError(t, err)

	srs := testSRS(t, cidx.N()+3)
	idx, err := NewIndex(cidx, srs)
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

// permutationOnlyCircuit builds an n=4 index whose generic-arithmetic
// selectors are all zero (every gate trivially satisfied) but whose wires
// alias two gates' L inputs together, exercising the permutation argument
// independent of the arithmetic gate.
func permutationOnlyCircuit(t *testing.T) (*Index, []fr.Element) {
	t.Helper()
	gates := []circuit.Gate{
		{Wires: circuit.Wires{L: 0, R: 1, O: 2}},
		{Wires: circuit.Wires{L: 0, R: 4, O: 5}}, // aliases gate 0's L
		{Wires: circuit.Wires{L: 6, R: 7, O: 8}},
		{Wires: circuit.Wires{L: 9, R: 10, O: 11}},
	}
	zero := func(n int) []fr.Element { return make([]fr.Element, n) }
	sel := circuit.Selectors{Ql: zero(4), Qr: zero(4), Qm: zero(4), Qo: zero(4), Qc: zero(4)}

	cidx, err := circuit.Compile(gates, 0, sel)
	require.NoError(t, err)
	srs := testSRS(t, cidx.N()+3)
	idx, err := NewIndex(cidx, srs)
	require.NoError(t, err)

	witness := make([]fr.Element, idx.WitnessLen())
	witness[0].SetUint64(42)
	return idx, witness
}

// identityCircuitWithPublicInput mirrors identityCircuit but discloses
// witness[0] (the multiplicand a) as a public input, exercising p and the
// proof's disclosed prefix on the "identity circuit, n=4, 1 public input"
// scenario.
func identityCircuitWithPublicInput(t *testing.T) (*Index, []fr.Element) {
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

	cidx, err := circuit.Compile(gates, 1, circuit.Selectors{Ql: ql, Qr: qr, Qm: qm, Qo: qo, Qc: qc})
	require.NoError(t, err)

	srs := testSRS(t, cidx.N()+3)
	idx, err := NewIndex(cidx, srs)
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

// singleMultiplicationTwoPublicInputs builds an n=8 index with one real
// multiplication gate and seven all-zero padding gates on an identity
// wiring, disclosing witness[0] and witness[1] (a and b) as public inputs,
// the "single multiplication, n=8, 2 public inputs" scenario.
func singleMultiplicationTwoPublicInputs(t *testing.T) (*Index, []fr.Element) {
	t.Helper()
	const n = 8
	gates := make([]circuit.Gate, n)
	for i := range gates {
		gates[i] = circuit.Gate{Wires: circuit.Wires{L: 3 * i, R: 3*i + 1, O: 3*i + 2}}
	}
	zero := func(k int) []fr.Element { return make([]fr.Element, k) }
	ql, qr, qm, qo, qc := zero(n), zero(n), zero(n), zero(n), zero(n)
	qm[0].SetOne()
	qo[0].SetOne()
	qo[0].Neg(&qo[0])

	cidx, err := circuit.Compile(gates, 2, circuit.Selectors{Ql: ql, Qr: qr, Qm: qm, Qo: qo, Qc: qc})
	require.NoError(t, err)

	srs := testSRS(t, cidx.N()+3)
	idx, err := NewIndex(cidx, srs)
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

func TestProveIdentityCircuit(t *testing.T) {
	assert := require.New(t)
	idx, witness := identityCircuit(t)

	proof, err := Prove(context.Background(), idx, witness, WithRandomness(randsrc.Deterministic([32]byte{1})))
	assert.NoError(err)
	assert.NotNil(proof)
	for _, d := range proof.LRO {
		assert.False(d.IsInfinity())
	}
}

func TestProvePermutationOnly(t *testing.T) {
	assert := require.New(t)
	idx, witness := permutationOnlyCircuit(t)

	proof, err := Prove(context.Background(), idx, witness, WithRandomness(randsrc.Deterministic([32]byte{2})))
	assert.NoError(err)
	assert.NotNil(proof)
}

func TestProveIdentityCircuitWithPublicInput(t *testing.T) {
	assert := require.New(t)
	idx, witness := identityCircuitWithPublicInput(t)

	proof, err := Prove(context.Background(), idx, witness, WithRandomness(randsrc.Deterministic([32]byte{4})))
	assert.NoError(err)
	assert.NotNil(proof)
	assert.Len(proof.Public, 1)
	assert.True(proof.Public[0].Equal(&witness[0]))
}

func TestProveSingleMultiplicationTwoPublicInputs(t *testing.T) {
	assert := require.New(t)
	idx, witness := singleMultiplicationTwoPublicInputs(t)

	proof, err := Prove(context.Background(), idx, witness, WithRandomness(randsrc.Deterministic([32]byte{5})))
	assert.NoError(err)
	assert.NotNil(proof)
	assert.Len(proof.Public, 2)
	assert.True(proof.Public[0].Equal(&witness[0]))
	assert.True(proof.Public[1].Equal(&witness[1]))
}

// TestProvePermutationViolationAborts corrupts the circuit's committed
// permutation so it no longer matches the gate wiring permutationOnlyCircuit
// built (gate 1's L wire reuses gate 0's): sigma_1 at row 1 should carry the
// row-0 coset value back, but bumping it away from that breaks the grand
// product's telescoping identity. This is the soundness boundary
// computeZ checks before handing back the accumulator, mirroring
// original_source's z.pop().unwrap() != E::Fr::one() abort.
func TestProvePermutationViolationAborts(t *testing.T) {
	assert := require.New(t)
	idx, witness := permutationOnlyCircuit(t)

	var bump fr.Element
	bump.SetOne()
	idx.SigmaL[0][1].Add(&idx.SigmaL[0][1], &bump)

	_, err := Prove(context.Background(), idx, witness, WithRandomness(randsrc.Deterministic([32]byte{3})))
	assert.ErrorIs(err, ErrProofCreation)
}

func TestProveWrongWitnessLength(t *testing.T) {
	assert := require.New(t)
	idx, witness := identityCircuit(t)

	_, err := Prove(context.Background(), idx, witness[:len(witness)-1])
	assert.ErrorIs(err, ErrWitnessCsInconsistent)
}

func TestProveDeterministic(t *testing.T) {
	assert := require.New(t)
	idx, witness := identityCircuit(t)
	seed := [32]byte{9, 9, 9}

	p1, err := Prove(context.Background(), idx, witness, WithRandomness(randsrc.Deterministic(seed)))
	assert.NoError(err)
	p2, err := Prove(context.Background(), idx, witness, WithRandomness(randsrc.Deterministic(seed)))
	assert.NoError(err)

	assert.Equal(p1.LRO[0].Marshal(), p2.LRO[0].Marshal())
	assert.Equal(p1.Z.Marshal(), p2.Z.Marshal())
	assert.Equal(p1.H[0].Marshal(), p2.H[0].Marshal())
}

func TestProveRandomnessVaries(t *testing.T) {
	assert := require.New(t)
	idx, witness := identityCircuit(t)

	p1, err := Prove(context.Background(), idx, witness, WithRandomness(randsrc.Deterministic([32]byte{1})))
	assert.NoError(err)
	p2, err := Prove(context.Background(), idx, witness, WithRandomness(randsrc.Deterministic([32]byte{2})))
	assert.NoError(err)

	assert.NotEqual(p1.LRO[0].Marshal(), p2.LRO[0].Marshal())
}
