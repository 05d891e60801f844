package plonkdlog

import (
	"github.com/rs/zerolog"

	"github.com/nume-crypto/plonkcore/internal/randsrc"
)

// proverConfig is the resolved set of options a Prove call runs with.
type proverConfig struct {
	rng    randsrc.Source
	logger zerolog.Logger
}

// ProverOption configures a Prove call, mirroring plonk.ProverOption.
type ProverOption func(*proverConfig)

// WithRandomness overrides the masking-randomness source.
func WithRandomness(rng randsrc.Source) ProverOption {
	return func(c *proverConfig) { c.rng = rng }
}

// WithLogger overrides the structured logger Prove emits phase-transition
// events to.
func WithLogger(logger zerolog.Logger) ProverOption {
	return func(c *proverConfig) { c.logger = logger }
}

func newProverConfig(opts []ProverOption) proverConfig {
	c := proverConfig{
		rng:    randsrc.OS,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
