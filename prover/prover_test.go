package prover

import (
	"context"
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr/kzg"
	"github.com/stretchr/testify/require"

	"github.com/nume-crypto/plonkcore/circuit"
	"github.com/nume-crypto/plonkcore/internal/randsrc"
	"github.com/nume-crypto/plonkcore/plonk"
	"github.com/nume-crypto/plonkcore/plonkdlog"
)

func identityGates() []circuit.Gate {
	return []circuit.Gate{
		{Wires: circuit.Wires{L: 0, R: 1, O: 2}},
		{Wires: circuit.Wires{L: 3, R: 4, O: 5}},
		{Wires: circuit.Wires{L: 6, R: 7, O: 8}},
		{Wires: circuit.Wires{L: 9, R: 10, O: 11}},
	}
}

func identitySelectors() circuit.Selectors {
	zero := func() []fr.Element { return make([]fr.Element, 4) }
	ql, qr, qm, qo, qc := zero(), zero(), zero(), zero(), zero()
	qm[0].SetOne()
	qo[0].SetOne()
	qo[0].Neg(&qo[0])
	return circuit.Selectors{Ql: ql, Qr: qr, Qm: qm, Qo: qo, Qc: qc}
}

func identityWitness(idx interface{ WitnessLen() int }) []fr.Element {
	var a, b, c fr.Element
	a.SetUint64(6)
	b.SetUint64(7)
	c.Mul(&a, &b)
	witness := make([]fr.Element, idx.WitnessLen())
	witness[0], witness[1], witness[2] = a, b, c
	return witness
}

func TestProveDispatchesPairingVariant(t *testing.T) {
	assert := require.New(t)

	cidx, err := circuit.Compile(identityGates(), 0, identitySelectors())
	assert.NoError(err)

	var alpha big.Int
	alpha.SetInt64(987654321)
	srs, err := kzg.NewSRS(uint64(cidx.N()+3), &alpha)
	assert.NoError(err)

	idx, err := plonk.NewIndex(cidx, srs)
	assert.NoError(err)

	witness := identityWitness(idx)

	proof, err := Prove(context.Background(), idx, witness, WithRandomness(randsrc.Deterministic([32]byte{1})))
	assert.NoError(err)
	assert.Equal(VariantPairing, proof.ProofVariant())

	_, ok := proof.(PairingProof)
	assert.True(ok)
}

func TestProveDispatchesDlogVariant(t *testing.T) {
	assert := require.New(t)

	zero := func() []fr.Element { return make([]fr.Element, 4) }
	dlogSel := circuit.DlogSelectors{Poseidon: zero(), ECAdd: zero(), VarBaseMul: zero(), EndoMul: zero()}

	cidx, err := circuit.CompileDlog(identityGates(), 0, identitySelectors(), dlogSel)
	assert.NoError(err)

	committer := plonkdlog.NewPedersenIPA(16)
	idx, err := plonkdlog.NewIndex(cidx, committer)
	assert.NoError(err)

	witness := identityWitness(idx)

	proof, err := Prove(context.Background(), idx, witness, WithRandomness(randsrc.Deterministic([32]byte{1})))
	assert.NoError(err)
	assert.Equal(VariantDlog, proof.ProofVariant())

	_, ok := proof.(DlogProof)
	assert.True(ok)
}

func TestProveRejectsUnknownIndexType(t *testing.T) {
	assert := require.New(t)

	_, err := Prove(context.Background(), "not an index", nil)
	assert.Error(err)
}
