// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"
)

type metadata struct {
	file    string
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := cli.NewApp()
	app.Name = "avltool"
	app.Usage = "build and exercise AVL trees"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "config-file, c",
			Value: "",
			Usage: " workload configuration `FILE`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "build",
			Usage:     "insert keys into a new tree and display it",
			ArgsUsage: "KEY...\n   (* = required)",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "strings, s",
					Usage: " treat all keys as strings",
				},
			},
			Action: runBuild,
		},
		{
			Name:      "ascending",
			Usage:     "insert 1..N in order and compare the height with the AVL bound",
			ArgsUsage: "N\n   (* = required)",
			Action:    runAscending,
		},
		{
			Name:   "run",
			Usage:  "execute the workload from the configuration file",
			Action: runWorkload,
		},
		{
			Name:  "version",
			Usage: "display avltool version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		file := c.GlobalString("config-file")
		if "" != file {
			if _, err := os.Stat(file); nil != err {
				return err
			}
		}

		if verbose && "" != file {
			fmt.Fprintf(e, "file: %q\n", file)
		}

		c.App.Metadata["config"] = &metadata{
			file:    file,
			verbose: verbose,
			e:       e,
			w:       w,
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}
