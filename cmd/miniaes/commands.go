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

	"github.com/urfave/cli"

	"github.com/oasisprotocol/miniaes"
)

type direction int

const (
	dirEncrypt direction = iota
	dirDecrypt
)

func (d direction) String() string {
	if d == dirDecrypt {
		return "decrypt"
	}
	return "encrypt"
}

func (d direction) inputName() string {
	if d == dirDecrypt {
		return "ciphertext"
	}
	return "plaintext"
}

func (d direction) outputLabel() string {
	if d == dirDecrypt {
		return "Decrypted plaintext"
	}
	return "Ciphertext"
}

var encryptCommand = cli.Command{
	Name:      "encrypt",
	Usage:     "Encrypt a single block.",
	ArgsUsage: "plaintext key",
	Description: `
	Encrypt a 4 hex digit plaintext block under a 4 hex digit key and
	print the ciphertext.  Digits are case insensitive.

	Pass the global --trace flag to print every intermediate state.`,
	Action: encrypt,
}

func encrypt(ctx *cli.Context) error {
	if ctx.NArg() != 2 {
		return cli.ShowCommandHelp(ctx, "encrypt")
	}

	args := ctx.Args()
	return runCipher(ctx.App.Writer, dirEncrypt, args.Get(0), args.Get(1), ctx.GlobalBool("trace"))
}

var decryptCommand = cli.Command{
	Name:      "decrypt",
	Usage:     "Decrypt a single block.",
	ArgsUsage: "ciphertext key",
	Description: `
	Decrypt a 4 hex digit ciphertext block under a 4 hex digit key and
	print the recovered plaintext.`,
	Action: decrypt,
}

func decrypt(ctx *cli.Context) error {
	if ctx.NArg() != 2 {
		return cli.ShowCommandHelp(ctx, "decrypt")
	}

	args := ctx.Args()
	return runCipher(ctx.App.Writer, dirDecrypt, args.Get(0), args.Get(1), ctx.GlobalBool("trace"))
}

var expandKeyCommand = cli.Command{
	Name:      "expandkey",
	Usage:     "Print the round keys derived from a key.",
	ArgsUsage: "key",
	Action:    expandKey,
}

func expandKey(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return cli.ShowCommandHelp(ctx, "expandkey")
	}

	return runExpandKey(ctx.App.Writer, ctx.Args().First())
}

// runCipher parses the textual block and key, runs the cipher in the
// given direction and writes the result (and optionally the trace) to w.
func runCipher(w io.Writer, dir direction, text, keyText string, trace bool) error {
	blk, err := miniaes.ParseBlock(text)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", dir.inputName(), err)
	}
	key, err := miniaes.ParseKey(keyText)
	if err != nil {
		return fmt.Errorf("invalid key: %w", err)
	}

	c, err := miniaes.New(key)
	if err != nil {
		return err
	}
	defer c.Reset()

	var (
		tt *traceTable
		fn miniaes.TraceFunc
	)
	if trace {
		tt = newTraceTable(w, dir, blk)
		fn = tt.record
	}

	var out miniaes.Block
	switch dir {
	case dirEncrypt:
		out = c.TraceEncrypt(blk, fn)
	case dirDecrypt:
		out = c.TraceDecrypt(blk, fn)
	}

	log.Debugf("%s(%s) = %s", dir, blk, out)

	if tt != nil {
		tt.render()
	}
	_, err = fmt.Fprintf(w, "%s: %s\n", dir.outputLabel(), out)
	return err
}

func runExpandKey(w io.Writer, keyText string) error {
	key, err := miniaes.ParseKey(keyText)
	if err != nil {
		return fmt.Errorf("invalid key: %w", err)
	}

	rks, err := miniaes.ExpandKey(key)
	if err != nil {
		return err
	}

	for i, rk := range rks {
		if _, err = fmt.Fprintf(w, "Round Key %d: %s\n", i, rk); err != nil {
			return err
		}
	}
	return nil
}
