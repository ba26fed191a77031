package service

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/vaultpass/password-generator/internal/generator"
	"github.com/vaultpass/password-generator/internal/model"
)

// GeneratorService handles password generation business logic.
type GeneratorService struct {
	mu       sync.Mutex
	sampler  *generator.Sampler
	validate *validator.Validate
	logger   *slog.Logger
}

// NewGeneratorService creates a new GeneratorService drawing from src.
// A nil src uses generator.NewSource; a nil logger uses slog.Default.
func NewGeneratorService(src generator.Source, logger *slog.Logger) *GeneratorService {
	if logger == nil {
		logger = slog.Default()
	}
	return &GeneratorService{
		sampler:  generator.NewSampler(src),
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logger,
	}
}

// Generate produces a password for cfg.
func (s *GeneratorService) Generate(cfg model.GenerationConfig) (string, error) {
	if err := s.validate.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return "", generator.ErrInvalidLength
		}
		return "", fmt.Errorf("validate config: %w", err)
	}

	alphabet := generator.BuildAlphabet(generator.Classes{
		Numbers:   cfg.IncludeNumbers,
		Uppercase: cfg.IncludeUppercase,
		Symbols:   cfg.IncludeSymbols,
	})
	s.logger.Debug("alphabet built", "size", len(alphabet), "length", cfg.Length)

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sampler.Sample(alphabet, cfg.Length)
}

// GenerateResponse validates req and produces the API response for it.
func (s *GeneratorService) GenerateResponse(req model.GenerateRequest) (model.GenerateResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return model.GenerateResponse{}, generator.ErrInvalidLength
		}
		return model.GenerateResponse{}, fmt.Errorf("validate request: %w", err)
	}

	password, err := s.Generate(req.Config())
	if err != nil {
		return model.GenerateResponse{}, err
	}

	return model.GenerateResponse{
		Password: password,
		Length:   len(password),
	}, nil
}
