// SPDX-License-Identifier: EPL-2.0

// Command sdriq inspects and converts raw SDR IQ recordings.
package main

import (
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/ik5/sdriq/internal/cli"
	"github.com/ik5/sdriq/internal/logger"
)

// version is set via ldflags at build time
var version = "dev"

type CLI struct {
	Globals

	Info  InfoCmd  `cmd:"" help:"Decode a whole capture and print a summary."`
	Dump  DumpCmd  `cmd:"" help:"Print the first samples of a capture."`
	Wav   WavCmd   `cmd:"" help:"Export a capture as a stereo IQ WAV file (I left, Q right)."`
	Types TypesCmd `cmd:"" help:"List sample types and capture tool presets."`

	Version kong.VersionFlag `help:"Show version information."`
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		cli.PrintError(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	var c CLI
	parser, err := kong.New(&c,
		kong.Name("sdriq"),
		kong.Description("Decode raw IQ recordings from software-defined radios."),
		kong.Vars{"version": version},
		kong.Writers(stdout, stderr),
	)
	if err != nil {
		return err
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	c.Out = stdout
	c.Log = logger.New(c.LogLevel, stderr)
	return ctx.Run(&c.Globals)
}
