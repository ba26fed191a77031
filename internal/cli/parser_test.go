package cli

import (
	"errors"
	"testing"

	"github.com/vaultpass/password-generator/internal/generator"
	"github.com/vaultpass/password-generator/internal/model"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want Options
	}{
		{
			name: "no arguments",
			args: nil,
			want: Options{Config: model.GenerationConfig{Length: 8}},
		},
		{
			name: "all flags",
			args: []string{"--length", "12", "--numbers", "--uppercase", "--symbols"},
			want: Options{Config: model.GenerationConfig{Length: 12, IncludeNumbers: true, IncludeUppercase: true, IncludeSymbols: true}},
		},
		{
			name: "flags in any order and repeated",
			args: []string{"--symbols", "--numbers", "--symbols"},
			want: Options{Config: model.GenerationConfig{Length: 8, IncludeNumbers: true, IncludeSymbols: true}},
		},
		{
			name: "last length wins",
			args: []string{"--length", "4", "--length", "20"},
			want: Options{Config: model.GenerationConfig{Length: 20}},
		},
		{
			name: "help stops scanning",
			args: []string{"--numbers", "--help", "--bogus", "--length", "abc"},
			want: Options{Config: model.GenerationConfig{Length: 8, IncludeNumbers: true}, Help: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.args)
			if err != nil {
				t.Fatalf("Parse() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Parse() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParse_InvalidLength(t *testing.T) {
	tests := map[string][]string{
		"zero":          {"--length", "0"},
		"negative":      {"--length", "-5"},
		"non-numeric":   {"--length", "abc"},
		"sign only":     {"--length", "-"},
		"blank":         {"--length", "   "},
		"negative text": {"--length", "-3px"},
		"overflow":      {"--length", "99999999999999999999999"},
		"missing":       {"--length"},
		"flag as value": {"--length", "--numbers"},
	}

	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(args)
			if !errors.Is(err, generator.ErrInvalidLength) {
				t.Errorf("Parse(%q) error = %v, want ErrInvalidLength", args, err)
			}
		})
	}
}

func TestParse_LengthLeadingInteger(t *testing.T) {
	tests := map[string]int{
		"12abc": 12,
		"1.5":   1,
		" 7":    7,
		"10px":  10,
		"+9":    9,
		"\t20 ": 20,
		"007":   7,
	}

	for value, want := range tests {
		t.Run(value, func(t *testing.T) {
			got, err := Parse([]string{"--length", value})
			if err != nil {
				t.Fatalf("Parse(--length %q) unexpected error: %v", value, err)
			}
			if got.Config.Length != want {
				t.Errorf("Parse(--length %q) length = %d, want %d", value, got.Config.Length, want)
			}
		})
	}
}

func TestParse_UnknownOption(t *testing.T) {
	_, err := Parse([]string{"--numbers", "--bogus", "--length", "0"})

	var unknown *UnknownOptionError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownOptionError, got %v", err)
	}
	if unknown.Option != "--bogus" {
		t.Errorf("expected option --bogus, got %q", unknown.Option)
	}
	if unknown.Error() != "Unknown option: --bogus" {
		t.Errorf("unexpected message: %s", unknown.Error())
	}
}

func TestParse_FirstErrorWins(t *testing.T) {
	_, err := Parse([]string{"--length", "abc", "--bogus"})
	if !errors.Is(err, generator.ErrInvalidLength) {
		t.Errorf("expected ErrInvalidLength, got %v", err)
	}
}
