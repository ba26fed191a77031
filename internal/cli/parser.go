// Package cli implements the password-generator command line: argument
// parsing, help text and the run loop that prints the generated password.
package cli

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/vaultpass/password-generator/internal/generator"
	"github.com/vaultpass/password-generator/internal/model"
)

// UnknownOptionError reports an argument that matches no recognized flag.
type UnknownOptionError struct {
	Option string
}

func (e *UnknownOptionError) Error() string {
	return fmt.Sprintf("Unknown option: %s", e.Option)
}

// Options is the result of a successful Parse.
type Options struct {
	Config model.GenerationConfig
	Help   bool
}

// Parse scans args left to right. It stops at --help or at the first
// invalid token; later tokens are never looked at. When --length appears
// more than once the last value wins.
func Parse(args []string) (Options, error) {
	opts := Options{Config: model.DefaultConfig()}

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--help":
			opts.Help = true
			return opts, nil
		case "--length":
			if i+1 >= len(args) {
				return Options{}, generator.ErrInvalidLength
			}
			n, ok := leadingInt(args[i+1])
			if !ok || n <= 0 {
				return Options{}, generator.ErrInvalidLength
			}
			opts.Config.Length = n
			i++
		case "--numbers":
			opts.Config.IncludeNumbers = true
		case "--uppercase":
			opts.Config.IncludeUppercase = true
		case "--symbols":
			opts.Config.IncludeSymbols = true
		default:
			return Options{}, &UnknownOptionError{Option: args[i]}
		}
	}

	return opts, nil
}

// leadingInt reads the integer at the start of s after any leading
// whitespace, ignoring whatever follows the digits: "12abc" and "1.5"
// yield 12 and 1. It fails when no digit follows the optional sign or the
// value overflows an int.
func leadingInt(s string) (int, bool) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	start := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == start {
		return 0, false
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}
