package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/rhythmrunner/descgen"
	"github.com/rhythmrunner/descgen/utils"
	flag "github.com/spf13/pflag"
)

const HelpBanner = `texture-gen %s

Writes a <name>.json texture descriptor for every image file given.

Usage:
  texture-gen [flags] <file> [<file> ...]
  texture-gen [flags] -- <-file> ...

`

// Version indicates the current build version.
var Version string

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "", 0)
	deco := utils.NewDecorator(stderr)

	flags := flag.NewFlagSet("texture-gen", flag.ContinueOnError)
	flags.SetOutput(stderr)

	outDir := flags.StringP("out", "o", ".", "Directory the descriptors are written to")
	quiet := flags.BoolP("quiet", "q", false, "Only report errors")
	schema := flags.Bool("schema", false, "Print the JSON Schema of texture descriptors")
	flags.Usage = func() {
		fmt.Fprintf(stderr, HelpBanner, Version)
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		logger.Print(deco.Text(err.Error(), utils.ErrorMessage))
		flags.Usage()
		return 2
	}

	if *schema {
		if err := descgen.EncodeSchema(stdout, descgen.TextureSchema()); err != nil {
			logger.Print(deco.Text(fmt.Sprintf("Error writing the schema: %v", err), utils.ErrorMessage))
			return 1
		}
		return 0
	}

	if flags.NArg() == 0 {
		return 0
	}

	now := time.Now()
	for _, filename := range flags.Args() {
		if _, err := descgen.TextureFormat(filename); err != nil && !*quiet {
			logger.Print(deco.Text(fmt.Sprintf("Warning: %s is not a recognized image format", filename), utils.WarningMessage))
		}

		path, err := descgen.NewTexture(filename).WriteFile(*outDir)
		if err != nil {
			logger.Print(deco.Text(fmt.Sprintf("Error generating the texture descriptor: %v", err), utils.ErrorMessage))
			return 1
		}
		if !*quiet {
			fmt.Fprintf(stderr, "The texture descriptor has been saved as: %s\n", deco.Text(path, utils.SuccessMessage))
		}
	}
	if !*quiet {
		fmt.Fprintf(stderr, "\nExecution time: %s\n", deco.Text(utils.FormatTime(time.Since(now)), utils.SuccessMessage))
	}
	return 0
}
