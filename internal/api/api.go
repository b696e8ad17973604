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

// Package api provides the Mini-AES definitions shared by all of the
// block cipher implementations.
package api

const (
	// StateSize is the size of the cipher state in nibbles.
	StateSize = 4

	// KeySize is the size of the master key in nibbles.
	KeySize = 4

	// Rounds is the number of non-whitening rounds.
	Rounds = 2

	// RoundKeyCount is the number of round keys derived from a key.
	RoundKeyCount = Rounds + 1

	// NibbleMask masks a byte down to a single nibble.
	NibbleMask = 0x0f
)

// State is the 2x2 nibble matrix in column-major order, one nibble per
// byte.  Positions 0 and 1 are the first column, 2 and 3 the second.
type State [StateSize]byte

// RoundKeys is the expanded key schedule.
type RoundKeys [RoundKeyCount]State

// Factory constructs block cipher instances for a given implementation.
type Factory interface {
	// Name returns the name of the implementation.
	Name() string

	// New expands the key and returns a new instance.  The key MUST
	// consist of valid nibbles.
	New(key *State) Instance
}

// Instance is a keyed Mini-AES block cipher.
type Instance interface {
	// RoundKeys copies the expanded key schedule into rks.
	RoundKeys(rks *RoundKeys)

	// Encrypt encrypts src into dst, invoking tr (if non-nil) after
	// each primitive.
	Encrypt(dst, src *State, tr Tracer)

	// Decrypt decrypts src into dst, invoking tr (if non-nil) after
	// each primitive.
	Decrypt(dst, src *State, tr Tracer)

	// Reset clears the instance such that no key material remains in
	// memory.
	Reset()
}

// IsValid returns true iff every element of s is a nibble.
func (s *State) IsValid() bool {
	var acc byte
	for _, v := range s {
		acc |= v
	}
	return acc&^NibbleMask == 0
}

// Bzero clears b.
func Bzero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
