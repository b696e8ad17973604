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

// The round primitives operate on copies of the state; none of them
// modify their arguments.

// SubNibbles substitutes every nibble of s through SBox.
func SubNibbles(s State) State {
	return State{SBox[s[0]], SBox[s[1]], SBox[s[2]], SBox[s[3]]}
}

// InvSubNibbles substitutes every nibble of s through InvSBox.
func InvSubNibbles(s State) State {
	return State{InvSBox[s[0]], InvSBox[s[1]], InvSBox[s[2]], InvSBox[s[3]]}
}

// ShiftRows swaps the second row of the matrix (positions 1 and 3).
func ShiftRows(s State) State {
	return State{s[0], s[3], s[2], s[1]}
}

// InvShiftRows is ShiftRows, which is an involution.
func InvShiftRows(s State) State {
	return ShiftRows(s)
}

// MixColumns multiplies each column by the matrix [[3, 2], [2, 3]].
func MixColumns(s State) State {
	return State{
		Multiply(3, s[0]) ^ Multiply(2, s[1]),
		Multiply(2, s[0]) ^ Multiply(3, s[1]),
		Multiply(3, s[2]) ^ Multiply(2, s[3]),
		Multiply(2, s[2]) ^ Multiply(3, s[3]),
	}
}

// InvMixColumns is MixColumns, as [[3, 2], [2, 3]] squares to the
// identity over GF(2^4).
func InvMixColumns(s State) State {
	return MixColumns(s)
}

// AddRoundKey XORs the round key into s.
func AddRoundKey(s, rk State) State {
	return State{s[0] ^ rk[0], s[1] ^ rk[1], s[2] ^ rk[2], s[3] ^ rk[3]}
}
