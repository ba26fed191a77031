package generator

const (
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	numberChars    = "0123456789"
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	symbolChars    = "!@#$%^&*()_+[]{}|;:,.<>?"
)

// Classes selects the optional character classes appended to the lowercase letters.
type Classes struct {
	Numbers   bool
	Uppercase bool
	Symbols   bool
}

// BuildAlphabet returns the candidate characters for the given classes.
// Lowercase letters always come first; digits, uppercase letters and symbols
// follow in that order when selected.
func BuildAlphabet(c Classes) string {
	alphabet := lowercaseChars
	if c.Numbers {
		alphabet += numberChars
	}
	if c.Uppercase {
		alphabet += uppercaseChars
	}
	if c.Symbols {
		alphabet += symbolChars
	}
	return alphabet
}
