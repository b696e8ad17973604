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

// Package ct16 provides a portable constant time Mini-AES implementation.
//
// The state is packed into a single uint16, nibble 0 in the most
// significant position, so that ShiftRows and MixColumns are a handful
// of shifts and masks over all four nibbles at once.  The S-box is
// evaluated by scanning the whole table, so there are no memory accesses
// indexed by secret data.
package ct16

import "github.com/oasisprotocol/miniaes/internal/api"

var Factory api.Factory = &ct16Factory{}

type ct16Factory struct{}

func (f *ct16Factory) Name() string {
	return "ct16"
}

func (f *ct16Factory) New(key *api.State) api.Instance {
	var inner ct16Instance
	expandKey(&inner.rks, key)
	return &inner
}

type ct16Instance struct {
	rks [api.RoundKeyCount]uint16
}

func (inst *ct16Instance) RoundKeys(rks *api.RoundKeys) {
	for i := range inst.rks {
		store(&rks[i], inst.rks[i])
	}
}

func (inst *ct16Instance) Reset() {
	for i := range inst.rks {
		inst.rks[i] = 0
	}
}

func (inst *ct16Instance) Encrypt(dst, src *api.State, tr api.Tracer) {
	rks := &inst.rks

	q := load(src) ^ rks[0]
	emit(tr, 0, api.OpAddRoundKey, q, &rks[0])

	for i := 0; i < api.Rounds; i++ {
		round := i + 1

		q = subNibbles(q, &api.SBox)
		emit(tr, round, api.OpSubNibbles, q, nil)

		q = shiftRows(q)
		emit(tr, round, api.OpShiftRows, q, nil)

		if i == 0 {
			q = mixColumns(q)
			emit(tr, round, api.OpMixColumns, q, nil)
		}

		q ^= rks[round]
		emit(tr, round, api.OpAddRoundKey, q, &rks[round])
	}

	store(dst, q)
}

func (inst *ct16Instance) Decrypt(dst, src *api.State, tr api.Tracer) {
	rks := &inst.rks

	q := load(src) ^ rks[2]
	emit(tr, 2, api.OpAddRoundKey, q, &rks[2])

	q = shiftRows(q)
	emit(tr, 2, api.OpInvShiftRows, q, nil)

	q = subNibbles(q, &api.InvSBox)
	emit(tr, 2, api.OpInvSubNibbles, q, nil)

	q ^= rks[1]
	emit(tr, 1, api.OpAddRoundKey, q, &rks[1])

	q = mixColumns(q)
	emit(tr, 1, api.OpInvMixColumns, q, nil)

	q = shiftRows(q)
	emit(tr, 1, api.OpInvShiftRows, q, nil)

	q = subNibbles(q, &api.InvSBox)
	emit(tr, 1, api.OpInvSubNibbles, q, nil)

	q ^= rks[0]
	emit(tr, 0, api.OpAddRoundKey, q, &rks[0])

	store(dst, q)
}

func emit(tr api.Tracer, round int, op api.Op, q uint16, rk *uint16) {
	if tr == nil {
		return
	}

	var s api.State
	store(&s, q)
	if rk == nil {
		tr.Emit(round, op, &s, nil)
		return
	}

	var k api.State
	store(&k, *rk)
	tr.Emit(round, op, &s, &k)
}
