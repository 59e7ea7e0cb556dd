package service

import (
	"errors"
	"sync"

	"github.com/vaultpass/pwstrength/internal/model"
	"github.com/vaultpass/pwstrength/internal/password"
)

// MaxCount is the most passwords a single generate request may ask for.
const MaxCount = 100

var (
	ErrPasswordRequired = errors.New("password is required")
	ErrCountOutOfRange  = errors.New("count must be between 1 and 100")
)

// StrengthService handles classification and generation business logic.
// It is safe for concurrent use.
type StrengthService struct {
	mu  sync.Mutex
	gen *password.Generator
}

// NewStrengthService creates a new StrengthService drawing from gen. A nil
// gen is replaced with one seeded from crypto/rand.
func NewStrengthService(gen *password.Generator) *StrengthService {
	if gen == nil {
		gen = password.NewRandomGenerator()
	}
	return &StrengthService{gen: gen}
}

// Classify reports the strength of the requested password without a
// zxcvbn estimate.
func (s *StrengthService) Classify(req model.ClassifyRequest) (model.ClassifyResponse, error) {
	if req.Password == nil {
		return model.ClassifyResponse{}, ErrPasswordRequired
	}

	r := password.Analyze(*req.Password)
	return model.ClassifyResponse{
		Strength:  r.Level,
		Length:    r.Length,
		Uppercase: r.Uppercase,
		Lowercase: r.Lowercase,
		Digit:     r.Digit,
		Symbol:    r.Symbol,
		Missing:   r.Missing,
	}, nil
}

// ClassifyWithEstimate is Classify plus a zxcvbn estimate over a bounded
// prefix of the password and hints.
func (s *StrengthService) ClassifyWithEstimate(req model.ClassifyRequest) (model.ClassifyResponse, error) {
	resp, err := s.Classify(req)
	if err != nil {
		return resp, err
	}
	est := password.EstimateStrength(*req.Password, req.Hints...)
	resp.Estimate = &est
	return resp, nil
}

// Generate produces one or more passwords for the requested level.
// An empty level defaults to Strong and a zero count to one.
func (s *StrengthService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	level := password.Strong
	if req.Level != "" {
		var err error
		if level, err = password.ParseLevel(req.Level); err != nil {
			return model.GenerateResponse{}, err
		}
	}

	count := req.Count
	if count == 0 {
		count = 1
	}
	if count < 1 || count > MaxCount {
		return model.GenerateResponse{}, ErrCountOutOfRange
	}

	passwords := make([]string, count)
	s.mu.Lock()
	for i := range passwords {
		passwords[i] = s.gen.Generate(level)
	}
	s.mu.Unlock()

	resp := model.GenerateResponse{
		Level:    level,
		Password: passwords[0],
		Length:   len(passwords[0]),
	}
	if count > 1 {
		resp.Passwords = passwords
	}
	return resp, nil
}
