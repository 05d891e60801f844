// Package prover is the variant-dispatch facade over this module's two
// PLONK provers: the pairing/KZG variant (plonk) and the dlog/IPA variant
// (plonkdlog). Grounded on the teacher's backend/groth16/groth16.go, which
// dispatches Prove/Setup/Verify across curve-typed R1CS implementations
// with a type switch rather than a shared interface method set; this
// package does the same thing one level up, dispatching across
// proof-system variants instead of curves.
package prover

import (
	"context"
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/rs/zerolog"

	"github.com/nume-crypto/plonkcore/internal/randsrc"
	"github.com/nume-crypto/plonkcore/plonk"
	"github.com/nume-crypto/plonkcore/plonkdlog"
)

// Variant names which of this module's two prover implementations
// produced a Proof.
type Variant int

const (
	VariantPairing Variant = iota
	VariantDlog
)

func (v Variant) String() string {
	switch v {
	case VariantPairing:
		return "pairing"
	case VariantDlog:
		return "dlog"
	default:
		return "unknown"
	}
}

// Proof is satisfied by both variants' proof types, tagged with the
// variant that produced them so a caller holding only a prover.Proof can
// still recover which concrete type to type-assert back to.
type Proof interface {
	ProofVariant() Variant
}

// PairingProof wraps *plonk.Proof to satisfy Proof.
type PairingProof struct{ *plonk.Proof }

func (PairingProof) ProofVariant() Variant { return VariantPairing }

// DlogProof wraps *plonkdlog.Proof to satisfy Proof.
type DlogProof struct{ *plonkdlog.Proof }

func (DlogProof) ProofVariant() Variant { return VariantDlog }

// config is the resolved set of options a facade Prove call runs with,
// translated into each variant's own ProverOption slice at dispatch time.
type config struct {
	rng    randsrc.Source
	logger zerolog.Logger
}

// Option configures a facade Prove call. Mirrors both variants' own
// functional-options shape (plonk.ProverOption / plonkdlog.ProverOption)
// so callers write one option list regardless of which index type they
// pass in.
type Option func(*config)

// WithRandomness overrides the masking-randomness source forwarded to
// whichever variant's Prove ends up running.
func WithRandomness(rng randsrc.Source) Option {
	return func(c *config) { c.rng = rng }
}

// WithLogger overrides the structured logger forwarded to whichever
// variant's Prove ends up running.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

func newConfig(opts []Option) config {
	c := config{rng: randsrc.OS, logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Prove runs whichever variant's Prove function matches idx's concrete
// type (*plonk.Index for the pairing variant, *plonkdlog.Index for the
// dlog/IPA variant), wrapping the result behind the shared Proof
// interface. Unrecognized index types are a caller error, not a
// recoverable condition, matching the teacher's own
// "panic on unrecognized curve type" stance in the switches this function
// is grounded on — except here it is surfaced as an error, since this
// facade's callers are expected to handle a bad index type gracefully
// rather than via the teacher's setup/serialization paths where a bad
// curve ID genuinely is a programmer error.
func Prove(ctx context.Context, idx interface{}, witness []fr.Element, opts ...Option) (Proof, error) {
	cfg := newConfig(opts)

	switch ix := idx.(type) {
	case *plonk.Index:
		p, err := plonk.Prove(ctx, ix, witness,
			plonk.WithRandomness(cfg.rng), plonk.WithLogger(cfg.logger))
		if err != nil {
			return nil, err
		}
		return PairingProof{p}, nil
	case *plonkdlog.Index:
		p, err := plonkdlog.Prove(ctx, ix, witness,
			plonkdlog.WithRandomness(cfg.rng), plonkdlog.WithLogger(cfg.logger))
		if err != nil {
			return nil, err
		}
		return DlogProof{p}, nil
	default:
		return nil, fmt.Errorf("prover: unrecognized index type %T", idx)
	}
}
