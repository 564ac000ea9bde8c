// Package poseidon implements a toy Poseidon-like permutation round over a
// prime field: a power S-box followed by a fixed MDS-style mixing matrix.
//
// This is a pedagogical stand-in for a cryptographic sponge round. It has no
// claimed resistance to cryptanalysis and must not be used as a security
// primitive.
package poseidon

import (
	"github.com/sp301415/deltazk/field"
)

// StateSize is the width of the permutation state.
const StateSize = 3

// DegreeSBox is the exponent of the power S-box.
const DegreeSBox = 5

// mds is the fixed mixing matrix.
var mds = [StateSize][StateSize]uint64{
	{2, 1, 1},
	{1, 2, 1},
	{1, 1, 2},
}

// RoundInPlace applies one permutation round to the state:
// the S-box x -> x^5 on every element, then the MDS matrix.
//
// The round is deterministic and mutates the state in place.
func RoundInPlace(fd field.Field, state *[StateSize]uint64) {
	sboxInPlace(fd, state)
	mixInPlace(fd, state)
}

// sboxInPlace applies x -> x^DegreeSBox to every state element.
func sboxInPlace(fd field.Field, state *[StateSize]uint64) {
	for i := range state {
		state[i] = fd.Exp(state[i], DegreeSBox)
	}
}

// mixInPlace multiplies the state vector by the MDS matrix.
func mixInPlace(fd field.Field, state *[StateSize]uint64) {
	var mixed [StateSize]uint64
	for i := 0; i < StateSize; i++ {
		acc := uint64(0)
		for j := 0; j < StateSize; j++ {
			acc = fd.Add(acc, fd.Mul(mds[i][j], state[j]))
		}
		mixed[i] = acc
	}
	*state = mixed
}
