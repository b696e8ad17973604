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

// Package vartime provides a insecure/slow variable time Mini-AES
// implementation built directly from the table driven round primitives.
//
// WARNING: THIS IMPLEMENTATION MUST NOT BE USED FOR ANYTHING REQUIRING
// ACTUAL SECURITY.
package vartime

import "github.com/oasisprotocol/miniaes/internal/api"

var Factory api.Factory = &vartimeFactory{}

type vartimeFactory struct{}

func (f *vartimeFactory) Name() string {
	return "vartime"
}

func (f *vartimeFactory) New(key *api.State) api.Instance {
	var inner vartimeInstance
	api.ExpandKey(&inner.rks, key)
	return &inner
}

type vartimeInstance struct {
	rks api.RoundKeys
}

func (inst *vartimeInstance) RoundKeys(rks *api.RoundKeys) {
	*rks = inst.rks
}

func (inst *vartimeInstance) Reset() {
	for i := range inst.rks {
		api.Bzero(inst.rks[i][:])
	}
}

func (inst *vartimeInstance) Encrypt(dst, src *api.State, tr api.Tracer) {
	rks := &inst.rks

	// Whitening.
	s := api.AddRoundKey(*src, rks[0])
	tr.Emit(0, api.OpAddRoundKey, &s, &rks[0])

	for i := 0; i < api.Rounds; i++ {
		round := i + 1

		s = api.SubNibbles(s)
		tr.Emit(round, api.OpSubNibbles, &s, nil)

		s = api.ShiftRows(s)
		tr.Emit(round, api.OpShiftRows, &s, nil)

		// The final round omits MixColumns.
		if i == 0 {
			s = api.MixColumns(s)
			tr.Emit(round, api.OpMixColumns, &s, nil)
		}

		s = api.AddRoundKey(s, rks[round])
		tr.Emit(round, api.OpAddRoundKey, &s, &rks[round])
	}

	*dst = s
}

func (inst *vartimeInstance) Decrypt(dst, src *api.State, tr api.Tracer) {
	rks := &inst.rks

	// Round 2.
	s := api.AddRoundKey(*src, rks[2])
	tr.Emit(2, api.OpAddRoundKey, &s, &rks[2])

	s = api.InvShiftRows(s)
	tr.Emit(2, api.OpInvShiftRows, &s, nil)

	s = api.InvSubNibbles(s)
	tr.Emit(2, api.OpInvSubNibbles, &s, nil)

	// Round 1.  The round key goes in before InvMixColumns, undoing
	// the forward MixColumns -> AddRoundKey order.
	s = api.AddRoundKey(s, rks[1])
	tr.Emit(1, api.OpAddRoundKey, &s, &rks[1])

	s = api.InvMixColumns(s)
	tr.Emit(1, api.OpInvMixColumns, &s, nil)

	s = api.InvShiftRows(s)
	tr.Emit(1, api.OpInvShiftRows, &s, nil)

	s = api.InvSubNibbles(s)
	tr.Emit(1, api.OpInvSubNibbles, &s, nil)

	// Whitening.
	s = api.AddRoundKey(s, rks[0])
	tr.Emit(0, api.OpAddRoundKey, &s, &rks[0])

	*dst = s
}
