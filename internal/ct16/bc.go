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

package ct16

import (
	"crypto/subtle"

	"github.com/oasisprotocol/miniaes/internal/api"
)

const (
	// Masks over the packed state.  Nibbles 0 and 2 are the top row.
	rowMask0  = 0xf0f0
	rowMask1  = 0x0f0f
	lsbMask   = 0x1111
	shiftMask = 0xeeee

	// x^4 = x + 1 in GF(2^4).
	reduce = api.Polynomial & api.NibbleMask
)

func load(s *api.State) uint16 {
	return uint16(s[0])<<12 | uint16(s[1])<<8 | uint16(s[2])<<4 | uint16(s[3])
}

func store(s *api.State, q uint16) {
	s[0] = byte(q>>12) & api.NibbleMask
	s[1] = byte(q>>8) & api.NibbleMask
	s[2] = byte(q>>4) & api.NibbleMask
	s[3] = byte(q) & api.NibbleMask
}

// lookup returns tbl[x], touching every entry of tbl.
func lookup(tbl *[16]byte, x byte) byte {
	var r byte
	for i := range tbl {
		mask := byte(-subtle.ConstantTimeByteEq(byte(i), x))
		r |= tbl[i] & mask
	}
	return r
}

func subNibbles(q uint16, tbl *[16]byte) uint16 {
	var r uint16
	for shift := 0; shift < 16; shift += 4 {
		r |= uint16(lookup(tbl, byte(q>>shift)&api.NibbleMask)) << shift
	}
	return r
}

// shiftRows swaps nibbles 1 and 3.
func shiftRows(q uint16) uint16 {
	return q&rowMask0 | (q&0x0f00)>>8 | (q&0x000f)<<8
}

// mul2 multiplies every nibble by x.
func mul2(q uint16) uint16 {
	carry := (q >> 3) & lsbMask
	return (q<<1)&shiftMask ^ carry*reduce
}

// swapRows exchanges the two nibbles of each column.
func swapRows(q uint16) uint16 {
	return (q&rowMask0)>>4 | (q&rowMask1)<<4
}

// mixColumns computes 3*c0 ^ 2*c1 for each nibble c0 and its column
// partner c1.
func mixColumns(q uint16) uint16 {
	return mul2(q) ^ q ^ mul2(swapRows(q))
}

func expandKey(rks *[api.RoundKeyCount]uint16, key *api.State) {
	w := load(key)
	rks[0] = w

	for i := 0; i < api.Rounds; i++ {
		t := uint16(lookup(&api.SBox, byte(w)&api.NibbleMask) ^ api.RCon[i])

		n0 := w>>12 ^ t
		n1 := (w>>8)&0xf ^ n0
		n2 := (w>>4)&0xf ^ n1
		n3 := w&0xf ^ n2

		w = n0<<12 | n1<<8 | n2<<4 | n3
		rks[i+1] = w
	}
}
