// Copyright (c) 2019 Oasis Labs Inc. <info@oasislabs.com>
//
// Permission is hereby granted, free of charge, to any person obtaining
// a copy of this software and associated documentation files (the
// "Software"), to deal in the Software without restriction, including
// without limitation the rights to use, copy, modify, merge, publish,
// distribute, sublicense, and/or sell copies of the Software, and to
// permit persons to whom the Software is furnished to do so, subject to
// the following conditions:
//
// The above copyright notice and this permission notice shall be
// included in all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
// EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
// MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND
// NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS
// BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN
// ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
// CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package api

import "fmt"

// Op identifies a round primitive.
type Op int

const (
	OpAddRoundKey Op = iota
	OpSubNibbles
	OpShiftRows
	OpMixColumns
	OpInvSubNibbles
	OpInvShiftRows
	OpInvMixColumns
)

var opNames = [...]string{
	OpAddRoundKey:   "AddRoundKey",
	OpSubNibbles:    "SubNibbles",
	OpShiftRows:     "ShiftRows",
	OpMixColumns:    "MixColumns",
	OpInvSubNibbles: "InvSubNibbles",
	OpInvShiftRows:  "InvShiftRows",
	OpInvMixColumns: "InvMixColumns",
}

// String returns the name of the primitive.
func (op Op) String() string {
	if op < 0 || int(op) >= len(opNames) {
		return fmt.Sprintf("Op(%d)", int(op))
	}
	return opNames[op]
}

// Tracer observes the state after each primitive.  roundKey is only
// non-nil for OpAddRoundKey.
type Tracer func(round int, op Op, state State, roundKey *State)

// Emit invokes tr if it is non-nil.
func (tr Tracer) Emit(round int, op Op, state *State, roundKey *State) {
	if tr == nil {
		return
	}

	var rk *State
	if roundKey != nil {
		tmp := *roundKey
		rk = &tmp
	}
	tr(round, op, *state, rk)
}
