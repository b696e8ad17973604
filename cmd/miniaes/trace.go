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

package main

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/oasisprotocol/miniaes"
)

// traceTable collects trace steps and renders them as a table.
type traceTable struct {
	tw table.Writer
}

func newTraceTable(w io.Writer, dir direction, input miniaes.Block) *traceTable {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleLight)
	tw.SetTitle("Mini-AES %s", dir)
	tw.AppendHeader(table.Row{"Round", "Step", "Round Key", "State"})
	tw.AppendRow(table.Row{"", "Input", "", input.String()})

	return &traceTable{tw: tw}
}

func (tt *traceTable) record(step miniaes.TraceStep) {
	var rk string
	if step.Op == miniaes.OpAddRoundKey {
		rk = step.RoundKey.String()
	}

	tt.tw.AppendRow(table.Row{
		fmt.Sprintf("R%d", step.Round),
		step.Op.String(),
		rk,
		step.State.String(),
	})
}

func (tt *traceTable) render() {
	tt.tw.Render()
}
