package plonk

import (
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestChallengeDomainSeparation samples many transcript binds and checks
// the derived challenges land outside the values that would break
// soundness: beta != gamma, gamma and alpha nonzero, alpha != 1 (a degenerate quotient
// combination), and zeta never an n-th root of unity (an element of H,
// which would make the vanishing polynomial zero at the evaluation
// point). Each of these holds except with negligible probability over a
// sound field and hash function; this test documents and checks that
// property statistically rather than asserting it for one fixed input.
func TestChallengeDomainSeparation(t *testing.T) {
	const n = 16
	var nBig big.Int
	nBig.SetUint64(n)

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("beta, gamma, alpha, zeta avoid degenerate values", prop.ForAll(
		func(seed []byte) bool {
			fs := newTranscript()
			// challenges are drawn in the order newTranscript declares them
			if _, err := bindAndDraw(fs, "public"); err != nil {
				return false
			}
			beta, err := bindAndDraw(fs, "beta", seed)
			if err != nil {
				return false
			}
			gamma, err := bindAndDraw(fs, "gamma", seed)
			if err != nil {
				return false
			}
			alpha, err := bindAndDraw(fs, "alpha", seed)
			if err != nil {
				return false
			}
			zeta, err := bindAndDraw(fs, "zeta", seed)
			if err != nil {
				return false
			}

			if beta.Equal(&gamma) || gamma.IsZero() || alpha.IsZero() {
				return false
			}
			var one fr.Element
			one.SetOne()
			if alpha.Equal(&one) {
				return false
			}

			var zetaN fr.Element
			zetaN.Exp(zeta, &nBig)
			return !zetaN.Equal(&one)
		},
		gen.SliceOfN(32, gen.UInt8Range(0, 255)).Map(func(bs []uint8) []byte {
			out := make([]byte, len(bs))
			for i, b := range bs {
				out[i] = byte(b)
			}
			return out
		}),
	))

	properties.TestingRun(t)
}
