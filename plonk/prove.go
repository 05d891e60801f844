package plonk

import (
	"context"
	"crypto/sha256"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr/fft"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr/kzg"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr/polynomial"

	"github.com/nume-crypto/plonkcore/internal/polyutil"
	"github.com/nume-crypto/plonkcore/internal/randsrc"
)

// Prove builds a pairing-variant proof that witness satisfies idx,
// sequencing exactly the pipeline vck3000-gnark's plonk.Prove runs:
// absorb the public-input prefix, commit witness columns, derive beta and
// gamma, commit the permutation accumulator, derive alpha, commit the
// quotient's three chunks, derive zeta, open Z at zeta*omega and
// batch-open the rest of the opening set at zeta.
func Prove(ctx context.Context, idx *Index, witness []fr.Element, opts ...ProverOption) (*Proof, error) {
	cfg := newProverConfig(opts)
	log := cfg.logger

	fs := newTranscript()
	proof := &Proof{}

	l, r, o, err := computeLRO(idx, witness)
	if err != nil {
		return nil, err
	}

	public := append([]fr.Element(nil), witness[:idx.Public]...)
	proof.Public = public
	p := computePublicPoly(idx, witness)

	publicBytes := make([][]byte, len(public))
	for i := range public {
		b := public[i].Bytes()
		publicBytes[i] = b[:]
	}
	if _, err := bindAndDraw(fs, "public", publicBytes...); err != nil {
		return nil, err
	}

	bcl := toBlindedMonomial(&idx.Domain, l, cfg.rng)
	bcr := toBlindedMonomial(&idx.Domain, r, cfg.rng)
	bco := toBlindedMonomial(&idx.Domain, o, cfg.rng)

	lroDigests, err := commitThree(ctx, idx.SRS, [3][]fr.Element{bcl, bcr, bco})
	if err != nil {
		return nil, ErrProofCreation
	}
	proof.LRO = lroDigests
	log.Debug().Msg("committed witness columns")

	beta, err := bindAndDraw(fs, "beta", proof.LRO[0].Marshal(), proof.LRO[1].Marshal())
	if err != nil {
		return nil, err
	}
	gamma, err := bindAndDraw(fs, "gamma", proof.LRO[2].Marshal())
	if err != nil {
		return nil, err
	}

	z, err := computeZ(idx, l, r, o, beta, gamma)
	if err != nil {
		return nil, err
	}
	bz := toBlindedZ(&idx.Domain, z, cfg.rng)

	proof.Z, err = kzg.Commit(bz, idx.SRS)
	if err != nil {
		return nil, ErrProofCreation
	}
	log.Debug().Msg("committed permutation accumulator")

	alpha, err := bindAndDraw(fs, "alpha", proof.Z.Marshal())
	if err != nil {
		return nil, err
	}

	dH := domainH(idx.N())
	evalBlindedL := polyutil.EvalOnCoset(bcl, dH)
	evalBlindedR := polyutil.EvalOnCoset(bcr, dH)
	evalBlindedO := polyutil.EvalOnCoset(bco, dH)
	evalBlindedZ := polyutil.EvalOnCoset(bz, dH)
	evalBlindedZu := shiftEval(evalBlindedZ, int(dH.Cardinality)/idx.N())
	evalP := polyutil.EvalOnCoset(p, dH)

	constraintsInd := evalConstraints(idx, evalBlindedL, evalBlindedR, evalBlindedO, evalP, dH)
	constraintOrdering := evalConstraintOrdering(idx, evalBlindedZ, evalBlindedZu, evalBlindedL, evalBlindedR, evalBlindedO, beta, gamma, dH)
	startsAtOne := evalStartsAtOne(idx, evalBlindedZ, dH)

	h1, h2, h3 := computeH(idx, constraintsInd, constraintOrdering, startsAtOne, alpha, dH)

	hDigests, err := commitThree(ctx, idx.SRS, [3][]fr.Element{h1, h2, h3})
	if err != nil {
		return nil, ErrProofCreation
	}
	proof.H = hDigests
	log.Debug().Msg("committed quotient chunks")

	zeta, err := bindAndDraw(fs, "zeta",
		proof.H[0].Marshal(), proof.H[1].Marshal(), proof.H[2].Marshal())
	if err != nil {
		return nil, err
	}

	var zetaShifted fr.Element
	zetaShifted.Mul(&zeta, &idx.Domain.Generator)
	proof.ZShiftedOpening, err = kzg.Open(bz, &zetaShifted, dH, idx.SRS)
	if err != nil {
		return nil, ErrProofCreation
	}
	bzuzeta := proof.ZShiftedOpening.ClaimedValue

	blzeta := EvalMonomial(bcl, &zeta)
	brzeta := EvalMonomial(bcr, &zeta)
	bozeta := EvalMonomial(bco, &zeta)

	linearizedPolynomial := computeLinearizedPolynomial(idx, blzeta, brzeta, bozeta, alpha, beta, gamma, zeta, bzuzeta, bz)

	m := idx.N() + 2
	var zetaPowerm fr.Element
	zetaPowerm.Exp(zeta, big.NewInt(int64(m)))
	var bZetaPowerm big.Int
	zetaPowerm.ToBigIntRegular(&bZetaPowerm)

	foldedHDigest := proof.H[2]
	foldedHDigest.ScalarMultiplication(&foldedHDigest, &bZetaPowerm)
	foldedHDigest.Add(&foldedHDigest, &proof.H[1])
	foldedHDigest.ScalarMultiplication(&foldedHDigest, &bZetaPowerm)
	foldedHDigest.Add(&foldedHDigest, &proof.H[0])

	foldedH := h3
	for i := range foldedH {
		foldedH[i].Mul(&foldedH[i], &zetaPowerm)
		foldedH[i].Add(&foldedH[i], &h2[i])
		foldedH[i].Mul(&foldedH[i], &zetaPowerm)
		foldedH[i].Add(&foldedH[i], &h1[i])
	}

	linearizedPolynomialDigest, err := kzg.Commit(linearizedPolynomial, idx.SRS)
	if err != nil {
		return nil, ErrProofCreation
	}

	proof.BatchedProof, err = kzg.BatchOpenSinglePoint(
		[]polynomial.Polynomial{
			foldedH,
			linearizedPolynomial,
			bcl,
			bcr,
			bco,
			idx.SigmaM[0],
			idx.SigmaM[1],
		},
		[]kzg.Digest{
			foldedHDigest,
			linearizedPolynomialDigest,
			proof.LRO[0],
			proof.LRO[1],
			proof.LRO[2],
			idx.S1Commit,
			idx.S2Commit,
		},
		&zeta,
		sha256.New(),
		dH,
		idx.SRS,
	)
	if err != nil {
		return nil, ErrProofCreation
	}
	log.Debug().Msg("opened quotient and witness set")

	return proof, nil
}

// toBlindedZ mirrors toBlindedMonomial but with blinding order 2 (the
// permutation accumulator needs one extra masking coefficient, since its
// shifted evaluation Z(zeta*omega) is opened separately and must stay
// hidden along with Z(zeta)), matching the teacher's blindPoly(z, n, 2).
func toBlindedZ(domain *fft.Domain, lagrange []fr.Element, rng randsrc.Source) []fr.Element {
	n := uint64(domain.Cardinality)
	c := make([]fr.Element, n, n+3)
	copy(c, lagrange)
	domain.FFTInverse(c, fft.DIF)
	fft.BitReverse(c)
	return polyutil.BlindPoly(c, n, 2, rng)
}
