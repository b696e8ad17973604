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
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli"
	"golang.org/x/term"
)

const menu = `
Choose an operation:
1. Encrypt
2. Decrypt
3. Quit
`

var interactiveCommand = cli.Command{
	Name:  "interactive",
	Usage: "Run the menu driven encrypt/decrypt loop (the default).",
	Description: `
	Repeatedly prompt for an operation, a 4 hex digit block and a 4 hex
	digit key.  Invalid input is reported and the menu is shown again.
	Prompts are only printed when standard input is a terminal, so the
	loop can also be scripted.`,
	Action: interactive,
}

func interactive(ctx *cli.Context) error {
	prompt := term.IsTerminal(int(os.Stdin.Fd())) //nolint:gosec
	return runInteractive(os.Stdin, ctx.App.Writer, prompt, ctx.GlobalBool("trace"))
}

func runInteractive(r io.Reader, w io.Writer, prompt, trace bool) error {
	scanner := bufio.NewScanner(r)
	ask := func(label string) (string, bool) {
		if prompt {
			fmt.Fprint(w, label)
		}
		if !scanner.Scan() {
			return "", false
		}
		return strings.TrimSpace(scanner.Text()), true
	}

	for {
		if prompt {
			fmt.Fprint(w, menu)
		}

		choice, ok := ask("Enter choice (1/2/3): ")
		if !ok {
			return scanner.Err()
		}

		var dir direction
		switch choice {
		case "1":
			dir = dirEncrypt
		case "2":
			dir = dirDecrypt
		case "3":
			fmt.Fprintln(w, "Exiting.")
			return nil
		default:
			log.Debugf("Invalid menu choice %q", choice)
			fmt.Fprintf(w, "Invalid choice %q, please try again.\n", choice)
			continue
		}

		text, ok := ask(dir.inputName() + " (4 hex): ")
		if !ok {
			return scanner.Err()
		}
		keyText, ok := ask("key (4 hex): ")
		if !ok {
			return scanner.Err()
		}

		if err := runCipher(w, dir, text, keyText, trace); err != nil {
			log.Debugf("Rejected input: %v", err)
			fmt.Fprintf(w, "Error: %v\n", err)
		}
	}
}
