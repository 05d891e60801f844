package plonk

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr/kzg"
)

// commitThree commits to three polynomials concurrently and returns their
// digests in order, or the first error encountered. Replaces the
// teacher's hand-rolled channel/WaitGroup fan-out (prove.go's
// chCommit0/chCommit1 pair) with golang.org/x/sync/errgroup, per this
// module's concurrency model.
func commitThree(ctx context.Context, srs *kzg.SRS, polys [3][]fr.Element) ([3]kzg.Digest, error) {
	var digests [3]kzg.Digest
	g, _ := errgroup.WithContext(ctx)
	for i := 0; i < 3; i++ {
		i := i
		g.Go(func() error {
			d, err := kzg.Commit(polys[i], srs)
			if err != nil {
				return err
			}
			digests[i] = d
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return digests, err
	}
	return digests, nil
}
