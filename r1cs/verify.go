package r1cs

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// Verify reports whether the witness satisfies every constraint in the
// Builder. Satisfaction is a pure conjunction: the order of constraints
// does not affect the result, and neither Builder nor Witness is mutated.
//
// Variables absent from the witness are read as 0.
func Verify(b *Builder, w *Witness) bool {
	for _, c := range b.constraints {
		if !c.IsSatisfied(w) {
			return false
		}
	}
	return true
}

// FirstFailing returns the index of the first unsatisfied constraint,
// in insertion order. The second return value is false if every
// constraint is satisfied.
func FirstFailing(b *Builder, w *Witness) (int, bool) {
	for i, c := range b.constraints {
		if !c.IsSatisfied(w) {
			return i, true
		}
	}
	return 0, false
}

// UnboundVariableError is returned by [VerifyStrict] when a constraint
// references a variable absent from the witness.
type UnboundVariableError struct {
	Variable Variable
}

// Error implements the error interface.
func (e UnboundVariableError) Error() string {
	return fmt.Sprintf("variable %d referenced by a constraint is not assigned in the witness", e.Variable)
}

// VerifyStrict is like [Verify], but refuses to default missing variables
// to 0: if any constraint references a variable absent from the witness,
// it returns an [UnboundVariableError] for the smallest such variable.
func VerifyStrict(b *Builder, w *Witness) (bool, error) {
	vars := bitset.New(uint(b.nextVar))
	for _, c := range b.constraints {
		c.collectVariables(vars)
	}

	for x, ok := vars.NextSet(0); ok; x, ok = vars.NextSet(x + 1) {
		if _, assigned := w.Lookup(Variable(x)); !assigned {
			return false, UnboundVariableError{Variable: Variable(x)}
		}
	}

	return Verify(b, w), nil
}
