package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/vaultpass/password-generator/internal/generator"
	"github.com/vaultpass/password-generator/internal/model"
)

const helpText = `Usage: password-generator [options]

Options:
  --length [number]        Set the length of the password (default: 8)
  --numbers                Include numbers in the password
  --uppercase              Include uppercase letters in the password
  --symbols                Include symbols in the password
  --help                   Display this help message

Example:
  password-generator --length 12 --numbers --uppercase --symbols
`

const invalidLengthMessage = "Invalid length specified."

// Generator produces a password for a config. *service.GeneratorService implements it.
type Generator interface {
	Generate(cfg model.GenerationConfig) (string, error)
}

// Runner executes one invocation of the command line.
type Runner struct {
	Generator Generator
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
}

// Run parses args, prints help, an error line or the generated password,
// and returns the process exit status.
func (r *Runner) Run(args []string) int {
	logger := r.Logger
	if logger == nil {
		logger = slog.Default()
	}

	opts, err := Parse(args)
	if err != nil {
		logger.Debug("argument parsing failed", "args", args, "error", err)
		r.printError(err)
		return 1
	}

	if opts.Help {
		fmt.Fprint(r.Stdout, helpText)
		return 0
	}

	logger.Debug("generating password",
		"length", opts.Config.Length,
		"numbers", opts.Config.IncludeNumbers,
		"uppercase", opts.Config.IncludeUppercase,
		"symbols", opts.Config.IncludeSymbols,
	)

	password, err := r.Generator.Generate(opts.Config)
	if err != nil {
		r.printError(err)
		return 1
	}

	fmt.Fprintf(r.Stdout, "Generated Password: %s\n", password)
	return 0
}

func (r *Runner) printError(err error) {
	var unknown *UnknownOptionError
	switch {
	case errors.As(err, &unknown):
		fmt.Fprintln(r.Stderr, unknown.Error())
	case errors.Is(err, generator.ErrInvalidLength):
		fmt.Fprintln(r.Stderr, invalidLengthMessage)
	default:
		fmt.Fprintf(r.Stderr, "error: %v\n", err)
	}
}
