package circuit

import "github.com/bits-and-blooms/bitset"

// GateFamily names one of the dlog-variant's gate families beyond generic
// arithmetic and the permutation argument.
type GateFamily int

const (
	FamilyPoseidon GateFamily = iota
	FamilyECAdd
	FamilyVarBaseMul
	FamilyEndoMul
)

// ActiveRows is a row-activity index for one gate family: ActiveRows.Test(i)
// reports whether the family's selector is live at row i, without scanning
// the family's full selector polynomial (a vector of n field elements) for
// a yes/no answer. It does not replace the selector polynomial, which
// remains the source of truth the quotient is built from; it is purely an
// iteration-order optimization available to index builders and tests that
// need to decide which rows to populate for a given gate family.
type ActiveRows struct {
	bits *bitset.BitSet
}

// NewActiveRows builds an activity index over n rows, initially all clear.
func NewActiveRows(n int) *ActiveRows {
	return &ActiveRows{bits: bitset.New(uint(n))}
}

// Set marks row i as active for the family.
func (a *ActiveRows) Set(i int) { a.bits.Set(uint(i)) }

// Test reports whether row i is active for the family.
func (a *ActiveRows) Test(i int) bool { return a.bits.Test(uint(i)) }

// Count returns the number of active rows.
func (a *ActiveRows) Count() uint { return a.bits.Count() }

// Rows returns the sorted list of active row indices.
func (a *ActiveRows) Rows() []int {
	rows := make([]int, 0, a.bits.Count())
	for i, ok := a.bits.NextSet(0); ok; i, ok = a.bits.NextSet(i + 1) {
		rows = append(rows, int(i))
	}
	return rows
}
