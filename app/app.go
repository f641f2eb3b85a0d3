package app

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/nbodysim/pointgen/generator"
	"golang.org/x/exp/rand"
)

// DefaultMode is used when only the output file is given
const DefaultMode = "random"

// ErrShowUsage is returned by ParseArguments when the usage text should be
// printed instead of generating a file. It isn't a failure.
var ErrShowUsage = errors.New("show usage")

// Invocation is a resolved command line
type Invocation struct {
	Mode       string
	OutputFile string
	Pattern    generator.Pattern
}

// ParseArguments resolves the positional arguments: `[mode] output_file`.
func ParseArguments(args []string) (*Invocation, error) {
	if len(args) == 1 && args[0] == "help" {
		return nil, ErrShowUsage
	}
	if len(args) != 1 && len(args) != 2 {
		return nil, fmt.Errorf("%w: expected 1 or 2 arguments, got %d", ErrShowUsage, len(args))
	}
	mode := DefaultMode
	if len(args) == 2 {
		mode = args[0]
	}
	// The output file is always the last argument
	outputFile := args[len(args)-1]

	pattern, lookupErr := generator.Lookup(mode)
	if lookupErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrShowUsage, lookupErr)
	}
	return &Invocation{
		Mode:       mode,
		OutputFile: outputFile,
		Pattern:    pattern,
	}, nil
}

// PrintUsage writes the usage text with the list of available modes.
func PrintUsage(output io.Writer, program string) {
	fmt.Fprintf(output, "Usage: %s [mode] output_file\n", program)
	fmt.Fprintf(output, "Available modes: %s\n", strings.Join(generator.Names(), ", "))
}

// Run resolves args and either prints the usage text to stdout or writes the
// requested pattern. Usage is not an error; any returned error is fatal.
func Run(args []string,
	program string,
	stdout io.Writer,
	src rand.Source,
	log *slog.Logger) error {

	invocation, parseErr := ParseArguments(args)
	if parseErr != nil {
		if errors.Is(parseErr, ErrShowUsage) {
			log.Debug("Showing usage", "reason", parseErr)
			PrintUsage(stdout, program)
			return nil
		}
		return parseErr
	}
	log.Info("Generating pattern",
		"mode", invocation.Mode,
		"path", invocation.OutputFile)

	params := &ApplicationParams{
		OutputFile: invocation.OutputFile,
		Pattern:    invocation.Pattern,
		Src:        src,
	}
	summary, generateErr := GenerateFile(params, log)
	if generateErr != nil {
		return generateErr
	}
	log.Info("Pattern generated",
		"mode", invocation.Mode,
		"path", invocation.OutputFile,
		"count", summary.Count)
	return nil
}
