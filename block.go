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

package miniaes

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/oasisprotocol/miniaes/internal/api"
)

const (
	// BlockNibbles is the Mini-AES block size in nibbles.
	BlockNibbles = api.StateSize

	// KeyNibbles is the Mini-AES key size in nibbles.
	KeyNibbles = api.KeySize

	// RoundKeyCount is the number of round keys in the key schedule.
	RoundKeyCount = api.RoundKeyCount

	hexDigits = "0123456789ABCDEF"
)

var (
	// ErrInvalidLength is the error returned when a textual block or
	// key is not exactly four characters long.
	ErrInvalidLength = errors.New("miniaes: invalid hex length")

	// ErrInvalidDigit is the error returned when a textual block or
	// key contains a character that is not a hex digit.
	ErrInvalidDigit = errors.New("miniaes: invalid hex digit")
)

// Block is a 16 bit Mini-AES block, one nibble per element, in
// column-major order.
type Block [BlockNibbles]byte

// Key is a 16 bit Mini-AES key, one nibble per element.
type Key [KeyNibbles]byte

// RoundKeys is the expanded key schedule.  RoundKeys[0] is the key.
type RoundKeys [RoundKeyCount]Block

// BlockFromUint16 unpacks v into a Block, most significant nibble first.
func BlockFromUint16(v uint16) Block {
	return Block(unpack(v))
}

// KeyFromUint16 unpacks v into a Key, most significant nibble first.
func KeyFromUint16(v uint16) Key {
	return Key(unpack(v))
}

// ParseBlock decodes a block from exactly four hex digits.
func ParseBlock(s string) (Block, error) {
	n, err := parseNibbles(s)
	return Block(n), err
}

// ParseKey decodes a key from exactly four hex digits.
func ParseKey(s string) (Key, error) {
	n, err := parseNibbles(s)
	return Key(n), err
}

// Uint16 packs b, most significant nibble first.
func (b Block) Uint16() uint16 {
	return pack(b)
}

// IsValid returns true iff every element of b is a nibble.
func (b Block) IsValid() bool {
	return (*api.State)(&b).IsValid()
}

// String returns b as four upper case hex digits.
func (b Block) String() string {
	return formatNibbles(b)
}

// MarshalText implements encoding.TextMarshaler.
func (b Block) MarshalText() ([]byte, error) {
	if !b.IsValid() {
		return nil, ErrInvalidBlock
	}
	return []byte(b.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *Block) UnmarshalText(text []byte) error {
	v, err := ParseBlock(string(text))
	if err != nil {
		return err
	}
	*b = v
	return nil
}

// Uint16 packs k, most significant nibble first.
func (k Key) Uint16() uint16 {
	return pack(k)
}

// IsValid returns true iff every element of k is a nibble.
func (k Key) IsValid() bool {
	return (*api.State)(&k).IsValid()
}

// String returns k as four upper case hex digits.
func (k Key) String() string {
	return formatNibbles(k)
}

// MarshalText implements encoding.TextMarshaler.
func (k Key) MarshalText() ([]byte, error) {
	if !k.IsValid() {
		return nil, ErrInvalidKey
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Key) UnmarshalText(text []byte) error {
	v, err := ParseKey(string(text))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

func pack(n [4]byte) uint16 {
	return uint16(n[0]&api.NibbleMask)<<12 | uint16(n[1]&api.NibbleMask)<<8 |
		uint16(n[2]&api.NibbleMask)<<4 | uint16(n[3]&api.NibbleMask)
}

func unpack(v uint16) [4]byte {
	return [4]byte{
		byte(v>>12) & api.NibbleMask,
		byte(v>>8) & api.NibbleMask,
		byte(v>>4) & api.NibbleMask,
		byte(v) & api.NibbleMask,
	}
}

func parseNibbles(s string) ([4]byte, error) {
	var n [4]byte
	if l := utf8.RuneCountInString(s); l != len(n) {
		return n, fmt.Errorf("%w: %q has %d characters, want %d", ErrInvalidLength, s, l, len(n))
	}

	for i, c := range []rune(s) {
		switch {
		case '0' <= c && c <= '9':
			n[i] = byte(c - '0')
		case 'a' <= c && c <= 'f':
			n[i] = byte(c-'a') + 10
		case 'A' <= c && c <= 'F':
			n[i] = byte(c-'A') + 10
		default:
			return [4]byte{}, fmt.Errorf("%w: %q at position %d", ErrInvalidDigit, c, i)
		}
	}
	return n, nil
}

func formatNibbles(n [4]byte) string {
	var buf [4]byte
	for i, v := range n {
		if v > api.NibbleMask {
			return fmt.Sprintf("%%!(BADNIBBLE=%x)", n[:])
		}
		buf[i] = hexDigits[v]
	}
	return string(buf[:])
}
