package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/rhythmrunner/descgen"
	"github.com/rhythmrunner/descgen/utils"
	flag "github.com/spf13/pflag"
)

const HelpBanner = `program-gen %s

Prints the JSON descriptor of a shader program.

Usage:
  program-gen -e | --example
  program-gen --schema

`

// notSupported is printed for every invocation that does not ask for the example.
const notSupported = "Doesn't generate yet"

// Version indicates the current build version.
var Version string

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "", 0)
	deco := utils.NewDecorator(stderr)

	flags := flag.NewFlagSet("program-gen", flag.ContinueOnError)
	flags.SetOutput(stderr)

	example := flags.BoolP("example", "e", false, "Print the example program descriptor")
	schema := flags.Bool("schema", false, "Print the JSON Schema of program descriptors (sole argument)")
	flags.Usage = func() {
		fmt.Fprintf(stderr, HelpBanner, Version)
		flags.PrintDefaults()
	}

	// The first argument alone selects the mode. The example flag ignores
	// whatever follows it; schema and help must be the only argument.
	if len(args) == 0 || !isModeFlag(args) {
		// TODO: build descriptors for arbitrary program names once the
		// uniform and attribute lists can be given on the command line.
		fmt.Fprintln(stdout, notSupported)
		return 0
	}
	if err := flags.Parse(args[:1]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(stdout, notSupported)
		return 0
	}

	var err error
	switch {
	case *schema:
		err = descgen.EncodeSchema(stdout, descgen.ProgramSchema())
	case *example:
		err = descgen.NewProgram(descgen.DefaultProgramName).Encode(stdout)
	}
	if err != nil {
		logger.Print(deco.Text(fmt.Sprintf("Error writing the program descriptor: %v", err), utils.ErrorMessage))
		return 1
	}
	return 0
}

// isModeFlag reports whether args starts with a flag that selects an output.
func isModeFlag(args []string) bool {
	switch args[0] {
	case "-e", "--example":
		return true
	case "--schema", "-h", "--help":
		return len(args) == 1
	}
	return false
}
