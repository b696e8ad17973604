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

// Package miniaes implements Mini-AES, a 16 bit block cipher with the
// round structure of AES (SubNibbles, ShiftRows, MixColumns and
// AddRoundKey) over a 2x2 matrix of nibbles, keyed by a 16 bit key.
//
// WARNING: Mini-AES is a teaching cipher.  A 16 bit block and key offer
// no security whatsoever.
package miniaes

import (
	"crypto/cipher"
	"encoding/binary"
	"errors"

	"github.com/oasisprotocol/miniaes/internal/api"
	"github.com/oasisprotocol/miniaes/internal/ct16"
)

const (
	// BlockSize is the Mini-AES block size in bytes, as used by the
	// crypto/cipher.Block interface.
	BlockSize = 2

	// KeySize is the Mini-AES key size in bytes, as used by NewCipher.
	KeySize = 2
)

var (
	// ErrInvalidKey is the error returned when a key element is not a
	// nibble.
	ErrInvalidKey = errors.New("miniaes: invalid key nibble")

	// ErrInvalidBlock is the error returned when a block element is not
	// a nibble.
	ErrInvalidBlock = errors.New("miniaes: invalid block nibble")

	// ErrInvalidKeySize is the error returned when NewCipher is called
	// with a key that is not KeySize bytes.
	ErrInvalidKeySize = errors.New("miniaes: invalid key size")

	factory api.Factory = ct16.Factory
)

// Op identifies a round primitive in a trace.
type Op = api.Op

const (
	OpAddRoundKey   = api.OpAddRoundKey
	OpSubNibbles    = api.OpSubNibbles
	OpShiftRows     = api.OpShiftRows
	OpMixColumns    = api.OpMixColumns
	OpInvSubNibbles = api.OpInvSubNibbles
	OpInvShiftRows  = api.OpInvShiftRows
	OpInvMixColumns = api.OpInvMixColumns
)

// TraceStep is the state after a single round primitive.
type TraceStep struct {
	// Round is the round the primitive belongs to, 0 being the
	// whitening round.
	Round int

	// Op is the primitive that was applied.
	Op Op

	// State is the state after the primitive.
	State Block

	// RoundKey is the round key that was mixed in.  It is only set
	// for OpAddRoundKey.
	RoundKey Block
}

// TraceFunc receives each intermediate step of an encryption or
// decryption, in order.
type TraceFunc func(step TraceStep)

func (fn TraceFunc) tracer() api.Tracer {
	if fn == nil {
		return nil
	}
	return func(round int, op api.Op, state api.State, roundKey *api.State) {
		step := TraceStep{
			Round: round,
			Op:    op,
			State: Block(state),
		}
		if roundKey != nil {
			step.RoundKey = Block(*roundKey)
		}
		fn(step)
	}
}

// Cipher is a Mini-AES instance with an expanded key.
type Cipher struct {
	inst api.Instance
}

// BlockSize returns the cipher's block size in bytes.
func (c *Cipher) BlockSize() int {
	return BlockSize
}

// Encrypt encrypts the first block in src into dst.  The block is
// packed big endian, the first nibble in the high half of src[0].
// Dst and src must overlap entirely or not at all.
func (c *Cipher) Encrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("miniaes: input not full block")
	}
	if len(dst) < BlockSize {
		panic("miniaes: output not full block")
	}

	b := c.EncryptBlock(BlockFromUint16(binary.BigEndian.Uint16(src)))
	binary.BigEndian.PutUint16(dst, b.Uint16())
}

// Decrypt decrypts the first block in src into dst.  Dst and src must
// overlap entirely or not at all.
func (c *Cipher) Decrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("miniaes: input not full block")
	}
	if len(dst) < BlockSize {
		panic("miniaes: output not full block")
	}

	b := c.DecryptBlock(BlockFromUint16(binary.BigEndian.Uint16(src)))
	binary.BigEndian.PutUint16(dst, b.Uint16())
}

// EncryptBlock encrypts a single block.  It panics with ErrInvalidBlock
// if plaintext contains an element that is not a nibble.
func (c *Cipher) EncryptBlock(plaintext Block) Block {
	return c.TraceEncrypt(plaintext, nil)
}

// DecryptBlock decrypts a single block.  It panics with ErrInvalidBlock
// if ciphertext contains an element that is not a nibble.
func (c *Cipher) DecryptBlock(ciphertext Block) Block {
	return c.TraceDecrypt(ciphertext, nil)
}

// TraceEncrypt is EncryptBlock, calling fn (if non-nil) with the state
// after every primitive.
func (c *Cipher) TraceEncrypt(plaintext Block, fn TraceFunc) Block {
	if !plaintext.IsValid() {
		panic(ErrInvalidBlock)
	}

	var dst api.State
	c.inst.Encrypt(&dst, (*api.State)(&plaintext), fn.tracer())
	return Block(dst)
}

// TraceDecrypt is DecryptBlock, calling fn (if non-nil) with the state
// after every primitive.
func (c *Cipher) TraceDecrypt(ciphertext Block, fn TraceFunc) Block {
	if !ciphertext.IsValid() {
		panic(ErrInvalidBlock)
	}

	var dst api.State
	c.inst.Decrypt(&dst, (*api.State)(&ciphertext), fn.tracer())
	return Block(dst)
}

// RoundKeys returns the expanded key schedule.
func (c *Cipher) RoundKeys() RoundKeys {
	var rks api.RoundKeys
	c.inst.RoundKeys(&rks)

	var ret RoundKeys
	for i := range rks {
		ret[i] = Block(rks[i])
		api.Bzero(rks[i][:])
	}
	return ret
}

// Reset clears the Cipher instance such that no sensitive keying
// material remains in memory.
func (c *Cipher) Reset() {
	log.Tracef("Reset: clearing %s instance", factory.Name())
	c.inst.Reset()
}

// New creates a new Cipher with the provided key.
func New(key Key) (*Cipher, error) {
	if !key.IsValid() {
		return nil, ErrInvalidKey
	}

	log.Tracef("New: expanding key with %s implementation", factory.Name())

	return &Cipher{
		inst: factory.New((*api.State)(&key)),
	}, nil
}

// NewCipher creates a new cipher.Block from a KeySize byte key, packed
// the same way as blocks.
func NewCipher(key []byte) (cipher.Block, error) {
	if len(key) != KeySize {
		return nil, ErrInvalidKeySize
	}

	c, err := New(KeyFromUint16(binary.BigEndian.Uint16(key)))
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Encrypt encrypts a single block under key.
func Encrypt(plaintext Block, key Key) (Block, error) {
	if !plaintext.IsValid() {
		return Block{}, ErrInvalidBlock
	}

	c, err := New(key)
	if err != nil {
		return Block{}, err
	}
	defer c.Reset()

	return c.EncryptBlock(plaintext), nil
}

// Decrypt decrypts a single block under key.
func Decrypt(ciphertext Block, key Key) (Block, error) {
	if !ciphertext.IsValid() {
		return Block{}, ErrInvalidBlock
	}

	c, err := New(key)
	if err != nil {
		return Block{}, err
	}
	defer c.Reset()

	return c.DecryptBlock(ciphertext), nil
}

// ExpandKey returns the key schedule for key.
func ExpandKey(key Key) (RoundKeys, error) {
	c, err := New(key)
	if err != nil {
		return RoundKeys{}, err
	}
	defer c.Reset()

	return c.RoundKeys(), nil
}

var _ cipher.Block = (*Cipher)(nil)
