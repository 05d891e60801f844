package circuit

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// DlogSelectors carries the dlog variant's extra gate-family selectors
// (Poseidon, EC-add, variable-base multiplication, group-endomorphism
// multiplication), in evaluation-over-H form aligned with Index.Gates.
// The pairing variant never sees these; only plonkdlog's quotient builder
// reads them.
type DlogSelectors struct {
	Poseidon, ECAdd, VarBaseMul, EndoMul []fr.Element
}

// DlogIndex extends Index with the dlog-only gate families: their selector
// polynomials in both forms, and a row-activity index per family (a cheap
// "is this family live at row i" test, per SPEC_FULL.md §3's expansion
// note, grounded on bits-and-blooms/bitset).
type DlogIndex struct {
	*Index
	Dlog DlogSelectors

	PoseidonM, ECAddM, VarBaseMulM, EndoMulM []fr.Element
	Active                                   [4]*ActiveRows
}

// CompileDlog builds on Compile, adding the dlog gate-family selectors.
func CompileDlog(gates []Gate, public int, sel Selectors, dlogSel DlogSelectors) (*DlogIndex, error) {
	idx, err := Compile(gates, public, sel)
	if err != nil {
		return nil, err
	}
	n := idx.N()
	for name, col := range map[string][]fr.Element{
		"poseidon": dlogSel.Poseidon, "ecadd": dlogSel.ECAdd,
		"varbasemul": dlogSel.VarBaseMul, "endomul": dlogSel.EndoMul,
	} {
		if len(col) != n {
			return nil, fmt.Errorf("circuit: dlog selector %s has length %d, want %d", name, len(col), n)
		}
	}

	di := &DlogIndex{Index: idx, Dlog: dlogSel}
	di.PoseidonM = ToMonomial(&idx.Domain, dlogSel.Poseidon)
	di.ECAddM = ToMonomial(&idx.Domain, dlogSel.ECAdd)
	di.VarBaseMulM = ToMonomial(&idx.Domain, dlogSel.VarBaseMul)
	di.EndoMulM = ToMonomial(&idx.Domain, dlogSel.EndoMul)

	di.Active[FamilyPoseidon] = activeRowsFrom(dlogSel.Poseidon, n)
	di.Active[FamilyECAdd] = activeRowsFrom(dlogSel.ECAdd, n)
	di.Active[FamilyVarBaseMul] = activeRowsFrom(dlogSel.VarBaseMul, n)
	di.Active[FamilyEndoMul] = activeRowsFrom(dlogSel.EndoMul, n)

	return di, nil
}

func activeRowsFrom(sel []fr.Element, n int) *ActiveRows {
	a := NewActiveRows(n)
	for i, v := range sel {
		if !v.IsZero() {
			a.Set(i)
		}
	}
	return a
}
