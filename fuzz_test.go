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
	"strings"
	"testing"

	fuzz "github.com/trailofbits/go-fuzz-utils"

	"github.com/oasisprotocol/miniaes/internal/api"
	"github.com/oasisprotocol/miniaes/internal/ct16"
	"github.com/oasisprotocol/miniaes/internal/vartime"
)

// FuzzImplementations encrypts and decrypts random blocks with both
// implementations, checking that they agree and that decryption
// inverts encryption.
func FuzzImplementations(f *testing.F) {
	f.Add([]byte{0x00, 0x00, 0x00, 0x00, 0x01})
	f.Add([]byte{0x12, 0x34, 0xab, 0xcd, 0x08})
	f.Add([]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x10})

	f.Fuzz(func(t *testing.T, data []byte) {
		tp, err := fuzz.NewTypeProvider(data)
		if err != nil {
			t.Skip(err)
		}

		rawKey, err := tp.GetUint16()
		if err != nil {
			t.Skip(err)
		}
		count, err := tp.GetByte()
		if err != nil {
			t.Skip(err)
		}

		key := api.State(KeyFromUint16(rawKey))
		ctInst, vtInst := ct16.Factory.New(&key), vartime.Factory.New(&key)

		for i := byte(0); i < count%32; i++ {
			rawPt, err := tp.GetUint16()
			if err != nil {
				t.Skip(err)
			}

			pt := api.State(BlockFromUint16(rawPt))

			var ct1, ct2, pt1, pt2 api.State
			ctInst.Encrypt(&ct1, &pt, nil)
			vtInst.Encrypt(&ct2, &pt, nil)
			if ct1 != ct2 {
				t.Fatalf("Divergent Encrypt(%x, %x): ct16 = %x, vartime = %x", pt, key, ct1, ct2)
			}

			ctInst.Decrypt(&pt1, &ct1, nil)
			vtInst.Decrypt(&pt2, &ct2, nil)
			if pt1 != pt || pt2 != pt {
				t.Fatalf("Decrypt(Encrypt(%x, %x)): ct16 = %x, vartime = %x", pt, key, pt1, pt2)
			}
		}
	})
}

// FuzzParseBlock checks that the hex adapter either round trips or
// fails with one of its sentinel errors.
func FuzzParseBlock(f *testing.F) {
	for _, s := range []string{"0000", "e1E1", "123", "12G4", "ÄÖÜß", ""} {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, s string) {
		b, err := ParseBlock(s)
		if err != nil {
			if !errors.Is(err, ErrInvalidLength) && !errors.Is(err, ErrInvalidDigit) {
				t.Fatalf("ParseBlock(%q): unexpected error %v", s, err)
			}
			return
		}

		if !b.IsValid() {
			t.Fatalf("ParseBlock(%q) = %v: not nibbles", s, [4]byte(b))
		}
		if got, want := b.String(), strings.ToUpper(s); got != want {
			t.Fatalf("ParseBlock(%q).String() = %q, want = %q", s, got, want)
		}
	})
}
