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
	"os"

	"github.com/urfave/cli"
)

const (
	appVersion      = "0.1.0"
	defaultLogLevel = "info"
)

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "[miniaes] %v\n", err)
	os.Exit(1)
}

func main() {
	app := cli.NewApp()
	app.Name = "miniaes"
	app.Version = appVersion
	app.Usage = "encrypt and decrypt 16 bit blocks with Mini-AES"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "loglevel",
			Value: defaultLogLevel,
			Usage: "logging level: trace, debug, info, warn, error, critical or off",
		},
		cli.BoolFlag{
			Name:  "trace",
			Usage: "print the state after every round primitive",
		},
	}
	app.Before = func(ctx *cli.Context) error {
		return setLogLevels(ctx.GlobalString("loglevel"))
	}
	app.Commands = []cli.Command{
		encryptCommand,
		decryptCommand,
		expandKeyCommand,
		interactiveCommand,
	}

	// With no command, behave like the classic menu driven program.
	app.Action = interactive

	if err := app.Run(os.Args); err != nil {
		fatal(err)
	}
}
