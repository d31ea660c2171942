package askai

import (
	"context"
	"errors"
	"strings"
	"time"

	"dog-life/internal/platform/delay"
	"dog-life/internal/ports/assets"
)

var ErrInvalidInput = errors.New("invalid input")

const maxQuestionLen = 2000

type Options struct {
	Sleeper     delay.Sleeper
	AnswerDelay time.Duration
}

type Service struct {
	repo        Repository
	sleeper     delay.Sleeper
	answerDelay time.Duration
}

func NewService(repo Repository, opts Options) *Service {
	return &Service{
		repo:        repo,
		sleeper:     delay.Or(opts.Sleeper),
		answerDelay: opts.AnswerDelay,
	}
}

func (s *Service) Popular(ctx context.Context) ([]string, error) {
	return s.repo.Popular(ctx)
}

// Community filtra por categoría (igualdad, "all" no filtra) y por texto
// (substring sin mayúsculas sobre pregunta, respuesta, raza y usuario),
// manteniendo el orden de origen.
func (s *Service) Community(ctx context.Context, filter ListFilter) ([]CommunityQuestion, error) {
	all, err := s.repo.Community(ctx)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(filter.Query))
	out := make([]CommunityQuestion, 0, len(all))
	for _, cq := range all {
		if filter.Category != "" && filter.Category != CategoryAll && cq.Category != filter.Category {
			continue
		}
		if q != "" && !matches(cq, q) {
			continue
		}
		cq.Avatar = assets.ImageOr(cq.Avatar, assets.DefaultAvatar)
		out = append(out, cq)
	}
	return out, nil
}

// matches busca q en cada campo por separado.
func matches(cq CommunityQuestion, q string) bool {
	for _, f := range []string{cq.Question, cq.AIResponse, cq.Breed, cq.User} {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

// Ask responde por palabras clave tras una latencia simulada.
func (s *Service) Ask(ctx context.Context, question string) (Answer, error) {
	question = strings.TrimSpace(question)
	if question == "" || len(question) > maxQuestionLen {
		return Answer{}, ErrInvalidInput
	}

	if err := s.sleeper.Wait(ctx, s.answerDelay); err != nil {
		return Answer{}, err
	}

	return Answer{
		Question: question,
		Response: answerFor(question),
		Avatar:   assets.DefaultAIAvatar,
	}, nil
}
