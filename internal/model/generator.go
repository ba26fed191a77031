package model

// DefaultLength is the password length used when none is requested.
const DefaultLength = 8

// GenerationConfig holds the options for a single password generation.
type GenerationConfig struct {
	Length           int `validate:"gt=0"`
	IncludeNumbers   bool
	IncludeUppercase bool
	IncludeSymbols   bool
}

// DefaultConfig returns a config of DefaultLength with only lowercase letters.
func DefaultConfig() GenerationConfig {
	return GenerationConfig{Length: DefaultLength}
}

// GenerateRequest represents a password generation request.
// A nil Length means DefaultLength; a present Length must be 1..1024.
type GenerateRequest struct {
	Length    *int `json:"length" validate:"omitnil,gt=0,lte=1024"`
	Numbers   bool `json:"numbers"`
	Uppercase bool `json:"uppercase"`
	Symbols   bool `json:"symbols"`
}

// Config converts the request into a GenerationConfig, applying defaults.
func (r GenerateRequest) Config() GenerationConfig {
	cfg := DefaultConfig()
	if r.Length != nil {
		cfg.Length = *r.Length
	}
	cfg.IncludeNumbers = r.Numbers
	cfg.IncludeUppercase = r.Uppercase
	cfg.IncludeSymbols = r.Symbols
	return cfg
}

// GenerateResponse represents a password generation response.
type GenerateResponse struct {
	Password string `json:"password"`
	Length   int    `json:"length"`
}
