package health

import (
	"context"
	"errors"
	"strings"
	"time"

	"dog-life/internal/platform/delay"
)

var ErrInvalidInput = errors.New("invalid input")

const maxVisitLimit = 200

type Options struct {
	Sleeper       delay.Sleeper
	AnalysisDelay time.Duration
}

type Service struct {
	repo          Repository
	sleeper       delay.Sleeper
	analysisDelay time.Duration
}

func NewService(repo Repository, opts Options) *Service {
	return &Service{
		repo:          repo,
		sleeper:       delay.Or(opts.Sleeper),
		analysisDelay: opts.AnalysisDelay,
	}
}

func (s *Service) Summary(ctx context.Context) (Summary, error) {
	return s.repo.Summary(ctx)
}

func (s *Service) VetVisits(ctx context.Context, filter ListFilter) ([]VetVisit, error) {
	if filter.Limit < 0 {
		return nil, ErrInvalidInput
	}
	if filter.Limit > maxVisitLimit {
		filter.Limit = maxVisitLimit
	}
	filter.Query = strings.TrimSpace(filter.Query)
	return s.repo.VetVisits(ctx, filter)
}

func (s *Service) Vaccinations(ctx context.Context) ([]Vaccination, error) {
	return s.repo.Vaccinations(ctx)
}

func (s *Service) Weight(ctx context.Context) ([]WeightPoint, error) {
	return s.repo.Weight(ctx)
}

func (s *Service) Behavior(ctx context.Context) ([]BehaviorPoint, error) {
	return s.repo.Behavior(ctx)
}

// Analysis es la salida del symptom checker.
type Analysis struct {
	Kind    MediaKind
	Results []AnalysisResult
}

// Analyze valida el archivo, simula el análisis y devuelve siempre la misma
// lista. Validación antes de esperar: un archivo inválido responde al instante.
func (s *Service) Analyze(ctx context.Context, m Media) (Analysis, error) {
	kind, err := ValidateMedia(m)
	if err != nil {
		return Analysis{}, err
	}

	if err := s.sleeper.Wait(ctx, s.analysisDelay); err != nil {
		return Analysis{}, err
	}

	out := make([]AnalysisResult, len(mockResults))
	copy(out, mockResults)
	return Analysis{Kind: kind, Results: out}, nil
}
