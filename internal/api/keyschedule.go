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

// ExpandKey derives the round keys from key.  The first round key is
// the key itself.
//
// This uses the variable time SBox lookup.
func ExpandKey(rks *RoundKeys, key *State) {
	var w [StateSize * RoundKeyCount]byte
	copy(w[:], key[:])

	for i := 0; i < Rounds; i++ {
		temp := SBox[w[4*i+3]] ^ RCon[i]
		w[4*i+4] = w[4*i+0] ^ temp
		w[4*i+5] = w[4*i+1] ^ w[4*i+4]
		w[4*i+6] = w[4*i+2] ^ w[4*i+5]
		w[4*i+7] = w[4*i+3] ^ w[4*i+6]
	}

	for i := range rks {
		copy(rks[i][:], w[i*StateSize:])
	}
	Bzero(w[:])
}
