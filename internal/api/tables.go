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

// Polynomial is the GF(2^4) reduction polynomial x^4 + x + 1.
const Polynomial = 0x13

var (
	// SBox is the nibble substitution table.
	SBox = [16]byte{
		0xe, 0x4, 0xd, 0x1, 0x2, 0xf, 0xb, 0x8,
		0x3, 0xa, 0x6, 0xc, 0x5, 0x9, 0x0, 0x7,
	}

	// InvSBox is the inverse of SBox, derived at initialization.
	InvSBox [16]byte

	// RCon holds the key schedule round constants.
	RCon = [Rounds]byte{0x1, 0x2}

	// gfMul[m][x] is m * x in GF(2^4) for the multipliers used by
	// MixColumns.
	gfMul = [4][16]byte{
		{0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0},
		{0x0, 0x1, 0x2, 0x3, 0x4, 0x5, 0x6, 0x7, 0x8, 0x9, 0xa, 0xb, 0xc, 0xd, 0xe, 0xf},
		{0x0, 0x2, 0x4, 0x6, 0x8, 0xa, 0xc, 0xe, 0x3, 0x1, 0x7, 0x5, 0xb, 0x9, 0xf, 0xd},
		{0x0, 0x3, 0x6, 0x5, 0xc, 0xf, 0xa, 0x9, 0xb, 0x8, 0xd, 0xe, 0x7, 0x4, 0x1, 0x2},
	}
)

// Multiply returns m * x in GF(2^4).  m MUST be in [0, 3] and x MUST be
// a nibble.
func Multiply(m, x byte) byte {
	return gfMul[m][x]
}

func init() {
	for i, v := range SBox {
		InvSBox[v] = byte(i)
	}
}
