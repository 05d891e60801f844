package plonkdlog

import (
	"context"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/nume-crypto/plonkcore/internal/polyutil"
	"github.com/nume-crypto/plonkcore/plonk"
)

// newTranscript declares every squeezed-challenge label this variant's
// proof draws, up front (gnark-crypto's fiat-shamir transcript requires
// every label a Bind/ComputeChallenge call uses to already be declared at
// construction): public for the disclosed witness prefix, beta and gamma
// for the two-challenge permutation grand product (permutation.go), alpha
// for the quotient combination, zeta for the evaluation point, and
// v/ipa-fold for PedersenIPA.Open's batching and per-round folding
// challenges (ipa-fold is drawn once per halving round, reusing the same
// declared label each time).
func newTranscript() *plonk.Transcript {
	return plonk.NewTranscript("public", "beta", "gamma", "alpha", "zeta", "v", "ipa-fold")
}

// Prove builds a dlog/IPA-variant proof that witness satisfies idx,
// sequencing the same phase order as plonk.Prove (commit witness columns,
// derive beta and then gamma for permutation.go's two-challenge grand
// product, commit the permutation accumulator, derive
// alpha, commit the quotient chunks, derive zeta through the
// endomorphism-expansion scalar challenge, evaluate, linearize, and open),
// generalized to the four extra dlog gate families and the IPA-shaped
// Committer in place of KZG.
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
	if _, err := fs.BindAndDraw("public", publicBytes...); err != nil {
		return nil, err
	}

	bcl := toBlindedMonomial(&idx.Domain, l, 1, cfg.rng)
	bcr := toBlindedMonomial(&idx.Domain, r, 1, cfg.rng)
	bco := toBlindedMonomial(&idx.Domain, o, 1, cfg.rng)

	lComm, err := idx.Committer.Commit(bcl)
	if err != nil {
		return nil, ErrProofCreation
	}
	rComm, err := idx.Committer.Commit(bcr)
	if err != nil {
		return nil, ErrProofCreation
	}
	oComm, err := idx.Committer.Commit(bco)
	if err != nil {
		return nil, ErrProofCreation
	}
	proof.LRO = [3]PolyComm{lComm, rComm, oComm}
	log.Debug().Msg("committed witness columns")

	beta, err := fs.BindAndDraw("beta", proof.LRO[0].Point.Marshal(), proof.LRO[1].Point.Marshal())
	if err != nil {
		return nil, err
	}
	gamma, err := fs.BindAndDraw("gamma", proof.LRO[2].Point.Marshal())
	if err != nil {
		return nil, err
	}

	z, err := computeZ(idx, l, r, o, beta, gamma)
	if err != nil {
		return nil, err
	}
	bz := toBlindedMonomial(&idx.Domain, z, 2, cfg.rng)

	proof.Z, err = idx.Committer.Commit(bz)
	if err != nil {
		return nil, ErrProofCreation
	}
	log.Debug().Msg("committed permutation accumulator")

	alphaRaw, err := fs.BindAndDraw("alpha", proof.Z.Point.Marshal())
	if err != nil {
		return nil, err
	}

	// alpha holds alpha^2..alpha^5: the fixed four-slot power vector this
	// module carries (the bare alpha^1, alphaRaw, is used on its own for
	// the permutation-ordering term). See DESIGN.md's alpha-vector
	// indexing note.
	var alpha [4]fr.Element
	cur := alphaRaw
	for i := range alpha {
		cur.Mul(&cur, &alphaRaw)
		alpha[i] = cur
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
	families := gateFamilyContributions(idx, evalBlindedL, evalBlindedR, evalBlindedO, dH)

	var endoMulCoeff fr.Element
	endoMulCoeff.Mul(&alpha[3], &alphaRaw)
	combined := [6]fr.Element{alphaRaw, alpha[0], alpha[1], alpha[2], alpha[3], endoMulCoeff}

	h1, h2, h3 := computeH(idx, constraintsInd, constraintOrdering, startsAtOne, families, combined, dH)

	h1Comm, err := idx.Committer.Commit(h1)
	if err != nil {
		return nil, ErrProofCreation
	}
	h2Comm, err := idx.Committer.Commit(h2)
	if err != nil {
		return nil, ErrProofCreation
	}
	h3Comm, err := idx.Committer.Commit(h3)
	if err != nil {
		return nil, ErrProofCreation
	}
	proof.H = [3]PolyComm{h1Comm, h2Comm, h3Comm}
	log.Debug().Msg("committed quotient chunks")

	zetaRaw, err := fs.BindAndDraw("zeta",
		proof.H[0].Point.Marshal(), proof.H[1].Point.Marshal(), proof.H[2].Point.Marshal())
	if err != nil {
		return nil, err
	}
	zeta := ScalarChallenge(zetaRaw).ToField(&endoR)

	var zetaShifted fr.Element
	zetaShifted.Mul(&zeta, &idx.Domain.Generator)

	blzeta := plonk.EvalMonomial(bcl, &zeta)
	brzeta := plonk.EvalMonomial(bcr, &zeta)
	bozeta := plonk.EvalMonomial(bco, &zeta)
	bzuzeta := plonk.EvalMonomial(bz, &zetaShifted)
	s1zeta := plonk.EvalMonomial(idx.SigmaM[0], &zeta)
	s2zeta := plonk.EvalMonomial(idx.SigmaM[1], &zeta)

	m := idx.N() + 2
	var zetaPowerm fr.Element
	zetaPowerm.Exp(zeta, big.NewInt(int64(m)))
	h1Zeta := plonk.EvalMonomial(h1, &zeta)
	h2Zeta := plonk.EvalMonomial(h2, &zeta)
	h3Zeta := plonk.EvalMonomial(h3, &zeta)
	var tZeta fr.Element
	tZeta.Mul(&h3Zeta, &zetaPowerm).Add(&tZeta, &h2Zeta).Mul(&tZeta, &zetaPowerm).Add(&tZeta, &h1Zeta)

	linearizedPolynomial := computeLinearizedPolynomial(idx, blzeta, brzeta, bozeta, beta, gamma, alphaRaw, zeta, bzuzeta, alpha, bz)
	fZeta := plonk.EvalMonomial(linearizedPolynomial, &zeta)

	proof.EvalsZeta = Evaluations{L: blzeta, R: brzeta, O: bozeta, Z: plonk.EvalMonomial(bz, &zeta), T: tZeta, S1: s1zeta, S2: s2zeta, F: fZeta}
	proof.EvalShiftedZ = bzuzeta

	linComm, err := idx.Committer.Commit(linearizedPolynomial)
	if err != nil {
		return nil, ErrProofCreation
	}
	proof.Linearization = linComm

	proof.ZShiftedOpening, err = idx.Committer.Open([][]fr.Element{bz}, zetaShifted, fs)
	if err != nil {
		return nil, ErrProofCreation
	}

	// quotient folded as h1 + zeta^(n+2)*h2 + zeta^(2(n+2))*h3, whose value
	// at zeta is EvalsZeta.T
	foldedH := make([]fr.Element, len(h1))
	for i := range foldedH {
		foldedH[i].Mul(&h3[i], &zetaPowerm).Add(&foldedH[i], &h2[i]).Mul(&foldedH[i], &zetaPowerm).Add(&foldedH[i], &h1[i])
	}

	proof.BatchedOpening, err = idx.Committer.Open(
		[][]fr.Element{foldedH, linearizedPolynomial, bcl, bcr, bco, idx.SigmaM[0], idx.SigmaM[1]},
		zeta,
		fs,
	)
	if err != nil {
		return nil, ErrProofCreation
	}
	log.Debug().Msg("opened quotient and witness set")

	return proof, nil
}
