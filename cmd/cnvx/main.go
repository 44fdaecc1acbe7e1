// Command cnvx is a small CLI for loading a model file and solving it
// with the two-phase simplex engine.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cnvxlabs/cnvx"
	"github.com/cnvxlabs/cnvx/lang"
	"github.com/cnvxlabs/cnvx/lang/ampl"
	"github.com/cnvxlabs/cnvx/lang/gmpl"
	"github.com/cnvxlabs/cnvx/lang/mps"
)

// version is overridden at build time with -ldflags, mirroring the
// way the original CLI bakes in a version string at compile time.
var version = "dev"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(stderr, "Error: expected a command, one of: solve, version")
		return 1
	}

	switch args[0] {
	case "version", "v":
		fmt.Fprintf(stdout, "CNVX %s\n", version)
		return 0

	case "solve", "s":
		return runSolve(args[1:], stdout, stderr)

	case "help", "-h", "--help":
		printUsage(stdout)
		return 0

	default:
		fmt.Fprintf(stderr, "Error: unknown command %q\n", args[0])
		return 1
	}
}

func runSolve(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("solve", flag.ContinueOnError)
	fs.SetOutput(stderr)
	language := fs.String("language", "", "input format when reading from stdin: gmpl, ampl or mps")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, "Error: solve expects exactly one input file (use - for stdin)")
		return 1
	}
	input := fs.Arg(0)

	model, err := loadModel(input, *language)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	solution, err := cnvx.Solve(model)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	fmt.Fprintln(stdout, solution)
	return 0
}

func loadModel(input, language string) (*cnvx.Model, error) {
	var contents []byte
	var err error
	var ext string

	if input == "-" {
		if language == "" {
			return nil, fmt.Errorf("-language is required when reading from stdin")
		}
		ext = language
		contents, err = io.ReadAll(os.Stdin)
	} else {
		ext = extensionOf(input)
		contents, err = os.ReadFile(input)
	}
	if err != nil {
		return nil, err
	}

	parser, ok := parserFor(ext)
	if !ok {
		return nil, fmt.Errorf("unsupported file type: %q", ext)
	}

	return parser.Parse(string(contents))
}

func extensionOf(path string) string {
	idx := strings.LastIndex(path, ".")
	if idx < 0 {
		return ""
	}
	return path[idx+1:]
}

func parserFor(ext string) (lang.Parser, bool) {
	switch ext {
	case "gmpl":
		return gmpl.New(), true
	case "ampl":
		return ampl.New(), true
	case "mps":
		return mps.New(), true
	default:
		return nil, false
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "cnvx - a CLI for modeling and solving optimization problems")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  cnvx solve <file>      Solve a model from a .gmpl, .ampl or .mps file")
	fmt.Fprintln(w, "  cnvx solve -language=gmpl -   Solve a model read from stdin")
	fmt.Fprintln(w, "  cnvx version           Print the CLI version")
}
