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
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseBlock(t *testing.T) {
	require := require.New(t)

	vectors := []struct {
		in       string
		expected Block
		err      error
	}{
		{"0000", Block{0x0, 0x0, 0x0, 0x0}, nil},
		{"E1E1", Block{0xe, 0x1, 0xe, 0x1}, nil},
		{"e1e1", Block{0xe, 0x1, 0xe, 0x1}, nil},
		{"aB9f", Block{0xa, 0xb, 0x9, 0xf}, nil},
		{"", Block{}, ErrInvalidLength},
		{"123", Block{}, ErrInvalidLength},
		{"12345", Block{}, ErrInvalidLength},
		{"0x12", Block{}, ErrInvalidDigit},
		{"12G4", Block{}, ErrInvalidDigit},
		{"12 4", Block{}, ErrInvalidDigit},
		{"-123", Block{}, ErrInvalidDigit},
		{"ÄÖÜß", Block{}, ErrInvalidDigit},
	}
	for _, vec := range vectors {
		b, err := ParseBlock(vec.in)
		if vec.err != nil {
			require.ErrorIs(err, vec.err, "ParseBlock(%q)", vec.in)
			continue
		}
		require.NoError(err, "ParseBlock(%q)", vec.in)
		require.Equal(vec.expected, b, "ParseBlock(%q)", vec.in)
	}

	_, err := ParseKey("F00")
	require.ErrorIs(err, ErrInvalidLength, "ParseKey(): Truncated")
	_, err = ParseKey("F00Z")
	require.ErrorIs(err, ErrInvalidDigit, "ParseKey(): Bad digit")
	require.Contains(err.Error(), "position 3", "ParseKey(): Bad digit position")

	k, err := ParseKey("beef")
	require.NoError(err, "ParseKey()")
	require.Equal(Key{0xb, 0xe, 0xe, 0xf}, k, "ParseKey()")
}

func TestString(t *testing.T) {
	require := require.New(t)

	require.Equal("E1E1", Block{0xe, 0x1, 0xe, 0x1}.String())
	require.Equal("0A0F", Key{0x0, 0xa, 0x0, 0xf}.String())
	require.Contains(Block{0x10}.String(), "BADNIBBLE")

	for v := 0; v <= 0xffff; v += 0x0123 {
		b := BlockFromUint16(uint16(v))
		require.Equal(uint16(v), b.Uint16(), "Uint16()")

		parsed, err := ParseBlock(b.String())
		require.NoError(err, "ParseBlock(String())")
		require.Equal(b, parsed, "ParseBlock(String())")

		k := KeyFromUint16(uint16(v))
		require.Equal(uint16(v), k.Uint16(), "Uint16()")
		require.Equal(b.String(), k.String(), "String()")
	}
}

func TestTextMarshaling(t *testing.T) {
	require := require.New(t)

	type doc struct {
		Key   Key
		Block Block
	}

	raw, err := json.Marshal(&doc{Key: Key{0x1, 0x2, 0x3, 0x4}, Block: Block{0xa, 0xb, 0xc, 0xd}})
	require.NoError(err, "json.Marshal()")
	require.JSONEq(`{"Key":"1234","Block":"ABCD"}`, string(raw))

	var d doc
	err = json.Unmarshal([]byte(`{"Key":"beef","Block":"0f0f"}`), &d)
	require.NoError(err, "json.Unmarshal()")
	require.Equal(Key{0xb, 0xe, 0xe, 0xf}, d.Key)
	require.Equal(Block{0x0, 0xf, 0x0, 0xf}, d.Block)

	err = json.Unmarshal([]byte(`{"Key":"beefy"}`), &d)
	require.ErrorIs(err, ErrInvalidLength, "json.Unmarshal(): Bad key")

	_, err = Block{0x0, 0x0, 0x0, 0x10}.MarshalText()
	require.Equal(ErrInvalidBlock, err, "MarshalText(): Invalid block")
	_, err = Key{0x20}.MarshalText()
	require.Equal(ErrInvalidKey, err, "MarshalText(): Invalid key")
}
