/**
 * Filename: /Users/bao/code/uniflip/cmd/uniflip.go
 * Path: /Users/bao/code/uniflip/cmd
 * Created Date: Sunday, March 7th 2021, 4:28:17 pm
 * Author: bao
 *
 * Copyright (c) 2021 Haibao Tang
 */

package main

import (
	"os"
	"strconv"
	"time"

	logging "github.com/op/go-logging"
	"github.com/tanghaibao/uniflip"
	"github.com/urfave/cli"
)

// init customizes how cli layout the command interface
func init() {
	cli.AppHelpTemplate = `
 _    _ _   _ _____ ______ _      _____ _____
| |  | | \ | |_   _|  ____| |    |_   _|  __ \
| |  | |  \| | | | | |__  | |      | | | |__) |
| |  | | . ` + "`" + ` | | | | |  __| | |      | | |  ___/
| |__| | |\  |_| |_| |    | |____ _| |_| |
 \____/|_| \_|_____|_|    |______|_____|_|

` + cli.AppHelpTemplate
}

// main is the entrypoint for the entire program, routes to commands
func main() {
	logging.SetBackend(uniflip.BackendFormatter)

	app := cli.NewApp()
	app.Compiled = time.Now()
	app.Copyright = "(c) Haibao Tang 2021"
	app.Name = "uniflip"
	app.Usage = "Orient unitigs to minimize dummy nodes in the overlap graph"
	app.Version = uniflip.Version

	flipFlags := []cli.Flag{
		cli.StringFlag{
			Name:  "o",
			Usage: "Output file, .gz for gzip, - for stdout",
			Value: "-",
		},
		cli.IntFlag{
			Name:  "lineWidth",
			Usage: "Line width when writing FASTA, 0 for no wrap",
			Value: 60,
		},
	}

	app.Commands = []cli.Command{
		{
			Name:  "flip",
			Usage: "Orient unitigs and write them back out",
			UsageText: `
	uniflip flip fastafile k [options]

Flip function:
Given a FASTA/FASTQ file of unitigs and the k-mer size they were built
with, pick a Forward/Reverse orientation per unitig so that as few unitigs
as possible lack a valid incoming (k-1)-overlap, then write every unitig
out in its chosen orientation. Headers and quality scores are untouched.
`,
			Flags: flipFlags,
			Action: func(c *cli.Context) error {
				if c.NArg() < 2 {
					cli.ShowSubcommandHelp(c)
					return cli.NewExitError("Must specify fastafile and value k", 1)
				}

				fastafile := c.Args().Get(0)
				k, err := strconv.Atoi(c.Args().Get(1))
				if err != nil {
					return cli.NewExitError("Value k must be an integer", 1)
				}

				p := uniflip.Flipper{Fastafile: fastafile, K: k,
					Outfastafile: c.String("o"), LineWidth: c.Int("lineWidth")}
				if err := p.Run(); err != nil {
					return cli.NewExitError(err.Error(), 1)
				}
				return nil
			},
		},
		{
			Name:  "assess",
			Usage: "Score the orientations without writing sequences",
			UsageText: `
	uniflip assess fastafile k

Assess function:
Build the overlap graph and report how many unitigs have a valid
predecessor in the orientations as given, and how many would after
flipping. Useful to decide whether flipping is worth a rewrite of the
input file.
`,
			Action: func(c *cli.Context) error {
				if c.NArg() < 2 {
					cli.ShowSubcommandHelp(c)
					return cli.NewExitError("Must specify fastafile and value k", 1)
				}

				fastafile := c.Args().Get(0)
				k, err := strconv.Atoi(c.Args().Get(1))
				if err != nil {
					return cli.NewExitError("Value k must be an integer", 1)
				}

				p := uniflip.Assesser{Fastafile: fastafile, K: k}
				if err := p.Run(); err != nil {
					return cli.NewExitError(err.Error(), 1)
				}
				return nil
			},
		},
	}

	app.Run(os.Args)
}
