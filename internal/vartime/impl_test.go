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

package vartime

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oasisprotocol/miniaes/internal/api"
)

func TestInstance(t *testing.T) {
	require := require.New(t)

	key := api.State{0x1, 0x2, 0x3, 0x4}
	inst := Factory.New(&key)

	var rks api.RoundKeys
	inst.RoundKeys(&rks)
	require.Equal(api.RoundKeys{{0x1, 0x2, 0x3, 0x4}, {0x2, 0x0, 0x3, 0x7}, {0x8, 0x8, 0xb, 0xc}}, rks, "RoundKeys()")

	pt := api.State{0xa, 0xb, 0xc, 0xd}
	var ct, out api.State
	inst.Encrypt(&ct, &pt, nil)
	require.Equal(api.State{0x5, 0xa, 0x2, 0x7}, ct, "Encrypt()")

	// Decrypt must undo Encrypt step for step.
	var ops []api.Op
	inst.Decrypt(&out, &ct, func(_ int, op api.Op, _ api.State, _ *api.State) {
		ops = append(ops, op)
	})
	require.Equal(pt, out, "Decrypt()")
	require.Equal([]api.Op{
		api.OpAddRoundKey, api.OpInvShiftRows, api.OpInvSubNibbles,
		api.OpAddRoundKey, api.OpInvMixColumns, api.OpInvShiftRows, api.OpInvSubNibbles,
		api.OpAddRoundKey,
	}, ops, "Decrypt(): step order")

	inst.Reset()
	inst.RoundKeys(&rks)
	require.Equal(api.RoundKeys{}, rks, "Reset()")
}
