// Package r1cs implements a rank-1 constraint system builder and a direct
// witness checker. A constraint is a triple of linear combinations (A, B, C)
// asserting A(X) * B(X) - C(X) = 0 mod q for a witness X.
//
// This package checks satisfaction only: there is no proof object, no
// commitment, and no zero-knowledge or soundness property of any kind.
package r1cs

import (
	"github.com/sp301415/deltazk/field"
)

// Variable is an index into a witness assignment.
// Variables are allocated by [Builder.Alloc], starting at 0.
type Variable int

// Term is one weighted variable of a linear combination.
type Term struct {
	Coeff    uint64
	Variable Variable
}

// LinComb is a linear combination of variables plus a constant term.
//
// The same variable may appear in multiple terms; the coefficients are
// combined during evaluation, not at construction.
type LinComb struct {
	fd field.Field

	terms    []Term
	constant uint64
}

// NewLinComb creates a new empty LinComb over the given field.
func NewLinComb(fd field.Field) *LinComb {
	return &LinComb{
		fd: fd,

		terms: make([]Term, 0),
	}
}

// AddTerm appends the term coeff * x.
func (l *LinComb) AddTerm(coeff uint64, x Variable) {
	l.terms = append(l.terms, Term{Coeff: l.fd.Reduce(coeff), Variable: x})
}

// AddConst adds c to the constant term.
// Adding a constant twice accumulates mod q.
func (l *LinComb) AddConst(c uint64) {
	l.constant = l.fd.Add(l.constant, c)
}

// Terms returns the terms of the LinComb.
func (l *LinComb) Terms() []Term {
	return l.terms
}

// Constant returns the constant term of the LinComb.
func (l *LinComb) Constant() uint64 {
	return l.constant
}

// Evaluate computes the value of the LinComb under the given witness.
// Variables absent from the witness evaluate to 0; see [Witness.Value].
func (l *LinComb) Evaluate(w *Witness) uint64 {
	acc := l.constant
	for _, t := range l.terms {
		acc = l.fd.Add(acc, l.fd.Mul(t.Coeff, w.Value(t.Variable)))
	}
	return acc
}
